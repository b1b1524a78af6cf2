package main

import (
	"github.com/JulioGmz89/wave-director/config"
	"github.com/JulioGmz89/wave-director/engine"
	"github.com/JulioGmz89/wave-director/event"
	"github.com/JulioGmz89/wave-director/parameter"
	"github.com/JulioGmz89/wave-director/system"
	"github.com/JulioGmz89/wave-director/wave"
)

// simulation is the fully wired world plus the synthetic player driving it
type simulation struct {
	world  *engine.World
	cfg    *config.Config
	gen    *wave.Generator
	perf   *system.PerformanceSystem
	dir    *system.DirectorSystem
	spawn  *system.SpawnSystem
	player *simPlayer
	tally  *tally
}

func newSimulation(cfg *config.Config, seed uint64) *simulation {
	world := engine.NewWorld()
	gen := wave.NewGenerator(cfg, seed)
	perf := system.NewPerformanceSystem(world, cfg.Director)
	dir := system.NewDirectorSystem(world, cfg.Director, perf)
	player := newSimPlayer(world, seed, dir)
	spawn := system.NewSpawnSystem(world, gen, dir, player, player)
	t := &tally{}

	// Registration order is the event-handler order: measurements land
	// before pacing decisions, pacing before spawning
	world.AddSystem(perf)
	world.AddSystem(dir)
	world.AddSystem(spawn)
	world.AddSystem(player)
	world.AddSystem(t)

	return &simulation{
		world:  world,
		cfg:    cfg,
		gen:    gen,
		perf:   perf,
		dir:    dir,
		spawn:  spawn,
		player: player,
		tally:  t,
	}
}

// tally accumulates run totals for the summary and the session record
type tally struct {
	highestWave   int
	wavesCleared  int
	totalKills    int
	breathers     int
	helpRequests  int
	lastCompleted *event.WaveCompletedPayload
}

func (t *tally) Name() string  { return "tally" }
func (t *tally) Priority() int { return parameter.PriorityDiagnostics }

func (t *tally) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventEnemyKilled,
		event.EventWaveStarted,
		event.EventWaveCompleted,
		event.EventBreatherStarted,
		event.EventHelpPowerUpRequest,
	}
}

func (t *tally) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		*t = tally{}
	case event.EventEnemyKilled:
		t.totalKills++
	case event.EventWaveStarted:
		if p, ok := ev.Payload.(*event.WaveStartedPayload); ok && p.WaveNumber > t.highestWave {
			t.highestWave = p.WaveNumber
		}
	case event.EventWaveCompleted:
		t.wavesCleared++
		if p, ok := ev.Payload.(*event.WaveCompletedPayload); ok {
			t.lastCompleted = p
		}
	case event.EventBreatherStarted:
		t.breathers++
	case event.EventHelpPowerUpRequest:
		t.helpRequests++
	}
}

func (t *tally) Update(dt float64) {}
