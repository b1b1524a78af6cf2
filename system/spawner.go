package system

import (
	"log"
	"sync/atomic"

	"github.com/JulioGmz89/wave-director/core"
	"github.com/JulioGmz89/wave-director/engine"
	"github.com/JulioGmz89/wave-director/event"
	"github.com/JulioGmz89/wave-director/parameter"
	"github.com/JulioGmz89/wave-director/wave"
)

// EnemyFactory materializes an enemy archetype into the game world.
// SpawnEnemy returns false when the entity cannot be created (pool
// exhausted, entity cap); the spawner then skips the slot and moves on
type EnemyFactory interface {
	SpawnEnemy(catalogID string, x, y float64) bool
}

// Placement picks world positions for spawns and drops
type Placement interface {
	EnemySpawnPosition() (x, y float64)
	PowerUpSpawnPosition() (x, y float64)
}

// groupProgress tracks one wave group's spawn cadence
type groupProgress struct {
	group   wave.EnemyGroup
	spawned int
	timer   float64
}

// SpawnSystem drives the wave lifecycle: it pulls generated waves, schedules
// per-group spawns through the factory, counts the living, rolls kill drops,
// and announces wave boundaries on the event queue.
//
// The drop rolls use a dedicated random stream so gameplay randomness never
// perturbs the generator's wave sequence
type SpawnSystem struct {
	world    *engine.World
	gen      *wave.Generator
	director *DirectorSystem
	factory  EnemyFactory
	place    Placement
	rng      *core.Rand

	current       *wave.GeneratedWave
	groups        []groupProgress
	alive         int
	kills         int
	waveStartTime float64
	elapsed       float64

	// interWaveTimer counts down to the next wave start. Zero at session
	// start so the first wave begins immediately
	interWaveTimer float64

	statWave   *atomic.Int64
	statAlive  *atomic.Int64
	statDrops  *atomic.Int64
	statBudget *atomic.Int64
	statAborts *atomic.Int64
}

// NewSpawnSystem wires the spawner. The drop-roll stream is derived from the
// generator seed so a full session replays bit-identically
func NewSpawnSystem(world *engine.World, gen *wave.Generator, director *DirectorSystem, factory EnemyFactory, place Placement) *SpawnSystem {
	s := &SpawnSystem{
		world:    world,
		gen:      gen,
		director: director,
		factory:  factory,
		place:    place,
		rng:      core.Derive(gen.Seed(), dropStreamOffset),

		statWave:   world.Status.Ints.Get("spawn.wave"),
		statAlive:  world.Status.Ints.Get("spawn.alive"),
		statDrops:  world.Status.Ints.Get("spawn.drops"),
		statBudget: world.Status.Ints.Get("spawn.budget"),
		statAborts: world.Status.Ints.Get("wave.compose_aborts"),
	}
	s.init()
	return s
}

// dropStreamOffset separates the kill-drop stream from wave generation
const dropStreamOffset = 0xD09

func (s *SpawnSystem) init() {
	s.current = nil
	s.groups = nil
	s.alive = 0
	s.kills = 0
	s.waveStartTime = 0
	s.elapsed = 0
	s.interWaveTimer = 0
	s.rng = core.Derive(s.gen.Seed(), dropStreamOffset)

	s.statWave.Store(0)
	s.statAlive.Store(0)
	s.statDrops.Store(0)
	s.statBudget.Store(0)
	s.statAborts.Store(0)
}

func (s *SpawnSystem) Name() string {
	return "spawner"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventEnemyKilled,
	}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.init()
		s.gen.Reset()

	case event.EventEnemyKilled:
		if s.current == nil || s.alive == 0 {
			return // Kill from a finished wave, nothing left to account
		}
		s.alive--
		s.kills++
		s.statAlive.Store(int64(s.alive))

		chance := s.current.PowerUpChanceOnKill + s.director.PowerUpChanceBonus()
		if s.rng.Float64() < chance {
			x, y := s.killPosition(ev)
			s.world.PushEvent(event.EventPowerUpDropRequest, &event.PowerUpDropPayload{X: x, Y: y})
			s.statDrops.Add(1)
		}
	}
}

// Update runs the wave state machine: waiting, spawning, or clearing
func (s *SpawnSystem) Update(dt float64) {
	s.elapsed += dt

	if s.current == nil {
		s.interWaveTimer -= dt
		if s.interWaveTimer <= 0 {
			s.startNextWave()
		}
		return
	}

	s.advanceGroups(dt)

	if s.allSpawned() && s.alive == 0 {
		s.completeWave()
	}
}

func (s *SpawnSystem) startNextWave() {
	w := s.gen.NextWave()
	s.current = w
	s.kills = 0
	s.waveStartTime = s.elapsed

	s.groups = s.groups[:0]
	for _, g := range w.Groups {
		s.groups = append(s.groups, groupProgress{group: g})
	}

	s.statWave.Store(int64(w.WaveNumber))
	s.statBudget.Store(int64(w.Budget))
	s.statAborts.Store(int64(s.gen.ComposeAborts()))
	s.world.PushEvent(event.EventWaveStarted, &event.WaveStartedPayload{
		WaveNumber: w.WaveNumber,
		EnemyCount: w.EnemyCount,
		Boss:       w.IsBoss,
		Swarm:      w.IsSwarm,
	})

	// A wave with nothing to spawn completes on the next update
}

// advanceGroups accumulates each group's timer and spawns when its next
// threshold is crossed. The director's cadence multiplier applies to the
// inter-spawn interval, not the authored initial delay
func (s *SpawnSystem) advanceGroups(dt float64) {
	mult := s.director.SpawnIntervalMultiplier()
	for i := range s.groups {
		gp := &s.groups[i]
		if gp.spawned >= gp.group.Count {
			continue
		}
		gp.timer += dt
		for gp.spawned < gp.group.Count {
			threshold := gp.group.InitialDelay
			if gp.spawned > 0 {
				threshold = gp.group.SpawnInterval * mult
			}
			if gp.timer < threshold {
				break
			}
			gp.timer -= threshold
			s.spawnOne(gp.group.CatalogID)
			gp.spawned++
		}
	}
}

func (s *SpawnSystem) spawnOne(catalogID string) {
	x, y := s.place.EnemySpawnPosition()
	if !s.factory.SpawnEnemy(catalogID, x, y) {
		// Slot is consumed either way so the wave cannot stall on a full pool
		log.Printf("spawn refused for %q, skipping slot", catalogID)
		return
	}
	s.alive++
	s.statAlive.Store(int64(s.alive))
	s.world.PushEvent(event.EventEnemySpawned, &event.EnemySpawnedPayload{
		CatalogID: catalogID,
		X:         x,
		Y:         y,
	})
}

func (s *SpawnSystem) allSpawned() bool {
	for i := range s.groups {
		if s.groups[i].spawned < s.groups[i].group.Count {
			return false
		}
	}
	return true
}

func (s *SpawnSystem) completeWave() {
	w := s.current
	s.world.PushEvent(event.EventWaveCompleted, &event.WaveCompletedPayload{
		WaveNumber: w.WaveNumber,
		Duration:   s.elapsed - s.waveStartTime,
		Kills:      s.kills,
	})

	if w.SpawnPowerUpOnComplete {
		x, y := s.place.PowerUpSpawnPosition()
		s.world.PushEvent(event.EventPowerUpDropRequest, &event.PowerUpDropPayload{X: x, Y: y})
		s.statDrops.Add(1)
	}

	s.interWaveTimer = w.TimeToNextWave
	s.current = nil
	s.groups = s.groups[:0]
}

// killPosition reads the drop location from the kill payload, falling back
// to a placement pick for payload-less kills (tests, external sources)
func (s *SpawnSystem) killPosition(ev event.GameEvent) (float64, float64) {
	if p, ok := ev.Payload.(*event.EnemyKilledPayload); ok {
		return p.X, p.Y
	}
	return s.place.PowerUpSpawnPosition()
}

// CurrentWave returns the in-flight wave, nil between waves
func (s *SpawnSystem) CurrentWave() *wave.GeneratedWave {
	return s.current
}

// AliveCount returns enemies spawned and not yet killed
func (s *SpawnSystem) AliveCount() int {
	return s.alive
}

// TimeToNextWave returns the remaining inter-wave countdown, 0 mid-wave
func (s *SpawnSystem) TimeToNextWave() float64 {
	if s.current != nil {
		return 0
	}
	if s.interWaveTimer < 0 {
		return 0
	}
	return s.interWaveTimer
}
