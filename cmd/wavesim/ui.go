package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/JulioGmz89/wave-director/engine"
	"github.com/JulioGmz89/wave-director/event"
	"github.com/JulioGmz89/wave-director/parameter"
	"github.com/JulioGmz89/wave-director/save"
)

// cueSystem maps pacing events to audio cues
type cueSystem struct {
	bpr *beeper
}

func (c *cueSystem) Name() string  { return "cues" }
func (c *cueSystem) Priority() int { return parameter.PriorityDiagnostics }

func (c *cueSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWaveStarted,
		event.EventBreatherStarted,
		event.EventHelpPowerUpRequest,
	}
}

func (c *cueSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventWaveStarted:
		if p, ok := ev.Payload.(*event.WaveStartedPayload); ok && p.Boss {
			c.bpr.cue(toneBossWave)
			return
		}
		c.bpr.cue(toneWaveStart)
	case event.EventBreatherStarted:
		c.bpr.cue(toneBreather)
	case event.EventHelpPowerUpRequest:
		c.bpr.cue(toneHelp)
	}
}

func (c *cueSystem) Update(dt float64) {}

// runUI drives the simulation at the fixed tick rate and renders the
// telemetry panel until the user quits
func runUI(sim *simulation, bpr *beeper, store *save.Store, seed uint64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	sim.world.AddSystem(&cueSystem{bpr: bpr})

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / parameter.TickRate)
	defer ticker.Stop()

	// Real elapsed time per frame, clamped so a stalled terminal cannot
	// produce a giant catch-up step
	clock := engine.NewTimeProvider()
	last := clock.Now()

	paused := false
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
					paused = !paused
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
					sim.world.Reset()
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'd':
					sim.player.Damage(20)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'h':
					sim.player.Heal(20)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'k':
					sim.player.KillBurst(5)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			now := clock.Now()
			dt := now.Sub(last).Seconds()
			last = now
			if dt > parameter.MaxDeltaTime {
				dt = parameter.MaxDeltaTime
			}
			if !paused {
				sim.world.Tick(dt)
			}
			drawPanel(screen, sim, store, seed, paused)
		}
	}
}

func drawPanel(s tcell.Screen, sim *simulation, store *save.Store, seed uint64, paused bool) {
	s.Clear()

	def := tcell.StyleDefault
	dim := def.Foreground(tcell.ColorGray)
	hot := def.Foreground(tcell.ColorRed)
	good := def.Foreground(tcell.ColorGreen)
	warn := def.Foreground(tcell.ColorYellow)

	title := fmt.Sprintf("wavesim  seed %d", seed)
	if paused {
		title += "  [PAUSED]"
	}
	drawText(s, 1, 0, def.Bold(true), title)
	drawText(s, 1, 1, dim, "p pause   r reset   d damage   h heal   k kill burst   q quit")

	cur := sim.spawn.CurrentWave()
	var waveLine string
	if cur != nil {
		tag := ""
		if cur.IsBoss {
			tag = " BOSS"
		} else if cur.IsSwarm {
			tag = " swarm"
		}
		waveLine = fmt.Sprintf("Wave      %d%s   alive %d / %d", cur.WaveNumber, tag, sim.spawn.AliveCount(), cur.EnemyCount)
	} else {
		waveLine = fmt.Sprintf("Wave      next in %.1fs", sim.spawn.TimeToNextWave())
	}
	drawText(s, 1, 3, def, waveLine)

	drawText(s, 1, 4, def, fmt.Sprintf("Phase     %-8s", sim.dir.Phase()))
	drawText(s, 16, 4, def, "intensity ")
	drawBar(s, 26, 4, 20, sim.dir.Intensity(), barStyleFor(sim.dir.Intensity(), good, warn, hot))
	drawText(s, 48, 4, dim, fmt.Sprintf("%.2f", sim.dir.Intensity()))

	drawText(s, 1, 5, def, fmt.Sprintf("Scaling   x%.2f   spawn x%.2f   drop +%.2f",
		sim.dir.DifficultyMultiplier(), sim.dir.SpawnIntervalMultiplier(), sim.dir.PowerUpChanceBonus()))

	hp := sim.perf.HealthPercent()
	drawText(s, 1, 6, def, "Health    ")
	drawBar(s, 11, 6, 20, hp, barStyleFor(1-hp, good, warn, hot))
	drawText(s, 33, 6, dim, fmt.Sprintf("%3.0f%%   deaths %d   pickups %d", hp*100, sim.player.Deaths(), sim.player.Pickups()))

	drawText(s, 1, 7, def, fmt.Sprintf("Kills     window %-3d total %-5d waves cleared %d",
		sim.perf.RecentKillCount(), sim.player.TotalKills(), sim.tally.wavesCleared))
	drawText(s, 1, 8, def, fmt.Sprintf("Pacing    breathers %d   help requests %d",
		sim.tally.breathers, sim.tally.helpRequests))

	peek := sim.gen.PeekNextWave()
	tag := ""
	if peek.IsBoss {
		tag = "  BOSS"
	} else if peek.IsSwarm {
		tag = "  swarm"
	}
	drawText(s, 1, 10, dim, fmt.Sprintf("Up next   wave %d, ~%d enemies%s", peek.WaveNumber, peek.EnemyCount, tag))

	if best := store.Best(); best != nil {
		drawText(s, 1, 11, dim, fmt.Sprintf("Best      wave %d (seed %d)", best.HighestWave, best.Seed))
	}

	s.Show()
}

func barStyleFor(v float64, good, warn, hot tcell.Style) tcell.Style {
	switch {
	case v > 0.8:
		return hot
	case v > 0.5:
		return warn
	default:
		return good
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawBar(s tcell.Screen, x, y, width int, frac float64, style tcell.Style) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	for i := 0; i < width; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		s.SetContent(x+i, y, r, nil, style)
	}
}
