// wavesim runs the wave pipeline against a synthetic player and shows the
// director's live pacing decisions in a terminal panel. It is the tuning
// harness: tweak the config, watch the loop react, compare recorded runs
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/quasilyte/gdata/v2"

	"github.com/JulioGmz89/wave-director/config"
	"github.com/JulioGmz89/wave-director/event"
	"github.com/JulioGmz89/wave-director/parameter"
	"github.com/JulioGmz89/wave-director/save"
)

var (
	seedFlag     = flag.Uint64("seed", 0, "Generation seed, 0 picks one from the clock")
	configFlag   = flag.String("config", "", "Path to a YAML tuning file, empty uses built-in defaults")
	muteFlag     = flag.Bool("mute", false, "Disable audio cues")
	headlessFlag = flag.Int("headless", 0, "Simulate N waves without the UI and print a report")
)

func main() {
	// Panic recovery: tcell restores the terminal through the deferred
	// Fini inside runUI; this catches everything else and keeps the
	// stack trace visible
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nwavesim crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var manager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: "wavesim"}); err == nil {
		manager = m
	} else {
		log.Printf("persistence unavailable: %v (records stay in memory)", err)
	}
	store := save.NewStore(manager)

	sim := newSimulation(cfg, seed)

	if *headlessFlag > 0 {
		runHeadless(sim, *headlessFlag)
	} else {
		bpr := newBeeper(*muteFlag)
		defer bpr.close()

		if err := runUI(sim, bpr, store, seed); err != nil {
			fmt.Fprintf(os.Stderr, "ui: %v\n", err)
			os.Exit(1)
		}
	}

	if sim.tally.highestWave > 0 {
		if err := store.Record(seed, sim.tally.highestWave, sim.player.TotalKills()); err != nil {
			log.Printf("could not record session: %v", err)
		}
	}
	printSummary(sim, store, seed)
}

// runHeadless ticks the simulation at full speed until the requested number
// of waves has been cleared, logging each wave boundary
func runHeadless(sim *simulation, waves int) {
	const dt = 1.0 / parameter.TickRate

	sim.world.AddSystem(&waveLogger{sim: sim})

	// Hard tick bound so a stalled configuration cannot spin forever
	maxTicks := waves * 60 * parameter.TickRate
	for i := 0; i < maxTicks && sim.tally.wavesCleared < waves; i++ {
		sim.world.Tick(dt)
	}
	if sim.tally.wavesCleared < waves {
		log.Printf("stopped after %d ticks with %d/%d waves cleared", maxTicks, sim.tally.wavesCleared, waves)
	}
}

// waveLogger prints wave boundaries and pacing events in headless runs
type waveLogger struct {
	sim *simulation
}

func (l *waveLogger) Name() string  { return "wavelog" }
func (l *waveLogger) Priority() int { return parameter.PriorityDiagnostics }

func (l *waveLogger) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWaveStarted,
		event.EventWaveCompleted,
		event.EventBreatherStarted,
		event.EventHelpPowerUpRequest,
	}
}

func (l *waveLogger) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventWaveStarted:
		if p, ok := ev.Payload.(*event.WaveStartedPayload); ok {
			tag := ""
			if p.Boss {
				tag = " [boss]"
			} else if p.Swarm {
				tag = " [swarm]"
			}
			fmt.Printf("wave %d%s: %d enemies, phase %s, mult %.2f\n",
				p.WaveNumber, tag, p.EnemyCount, l.sim.dir.Phase(), l.sim.dir.DifficultyMultiplier())
		}
	case event.EventWaveCompleted:
		if p, ok := ev.Payload.(*event.WaveCompletedPayload); ok {
			fmt.Printf("wave %d cleared in %.1fs (%d kills), health %.0f%%\n",
				p.WaveNumber, p.Duration, p.Kills, l.sim.perf.HealthPercent()*100)
		}
	case event.EventBreatherStarted:
		fmt.Println("breather")
	case event.EventHelpPowerUpRequest:
		if p, ok := ev.Payload.(*event.HelpPowerUpPayload); ok {
			fmt.Printf("help power-up (%v)\n", p.Reason)
		}
	}
}

func (l *waveLogger) Update(dt float64) {}

func printSummary(sim *simulation, store *save.Store, seed uint64) {
	fmt.Printf("\nseed %d: reached wave %d, cleared %d, %d kills, %d deaths, %d breathers, %d help drops\n",
		seed, sim.tally.highestWave, sim.tally.wavesCleared, sim.player.TotalKills(),
		sim.player.Deaths(), sim.tally.breathers, sim.tally.helpRequests)
	if best := store.Best(); best != nil {
		fmt.Printf("best recorded run: wave %d (seed %d, %s)\n", best.HighestWave, best.Seed, best.PlayedAt)
	}
}
