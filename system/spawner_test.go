package system

import (
	"testing"

	"github.com/JulioGmz89/wave-director/config"
	"github.com/JulioGmz89/wave-director/engine"
	"github.com/JulioGmz89/wave-director/event"
	"github.com/JulioGmz89/wave-director/wave"
)

type fakeFactory struct {
	spawned []string
	refuse  bool
}

func (f *fakeFactory) SpawnEnemy(catalogID string, x, y float64) bool {
	if f.refuse {
		return false
	}
	f.spawned = append(f.spawned, catalogID)
	return true
}

type fakePlacement struct{}

func (fakePlacement) EnemySpawnPosition() (float64, float64)   { return 5, 5 }
func (fakePlacement) PowerUpSpawnPosition() (float64, float64) { return 1, 2 }

func newSpawnHarness(cfg *config.Config, seed uint64) (*engine.World, *SpawnSystem, *fakeFactory) {
	w := engine.NewWorld()
	perf := NewPerformanceSystem(w, cfg.Director)
	dir := NewDirectorSystem(w, cfg.Director, perf)
	fac := &fakeFactory{}
	sp := NewSpawnSystem(w, wave.NewGenerator(cfg, seed), dir, fac, fakePlacement{})
	w.AddSystem(perf)
	w.AddSystem(dir)
	w.AddSystem(sp)
	return w, sp, fac
}

// runUntilSpawned ticks until the current wave has spawned everything,
// failing the test if it never does
func runUntilSpawned(t *testing.T, w *engine.World, sp *SpawnSystem, fac *fakeFactory) *wave.GeneratedWave {
	t.Helper()
	for i := 0; i < 1000; i++ {
		w.Tick(0.25)
		if cur := sp.CurrentWave(); cur != nil && len(fac.spawned) >= cur.EnemyCount {
			return cur
		}
	}
	t.Fatal("wave never finished spawning")
	return nil
}

func killAll(w *engine.World, sp *SpawnSystem, x, y float64) {
	for i := sp.AliveCount(); i > 0; i-- {
		w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{X: x, Y: y})
	}
	w.Tick(0.1)
}

func TestFirstWaveStartsImmediately(t *testing.T) {
	w, sp, _ := newSpawnHarness(config.Default(), 1)
	rec := newRecorder(event.EventWaveStarted)
	w.AddSystem(rec)

	w.Tick(0.1)
	cur := sp.CurrentWave()
	if cur == nil || cur.WaveNumber != 1 {
		t.Fatalf("no wave in flight after first tick, got %+v", cur)
	}

	w.Tick(0.1)
	if rec.count(event.EventWaveStarted) != 1 {
		t.Error("wave start not announced")
	}
	p := rec.events[0].Payload.(*event.WaveStartedPayload)
	if p.WaveNumber != 1 || p.EnemyCount != cur.EnemyCount {
		t.Errorf("wave start payload %+v does not match wave %+v", p, cur)
	}
}

func TestSpawnsEveryScheduledEnemy(t *testing.T) {
	w, sp, fac := newSpawnHarness(config.Default(), 7)

	cur := runUntilSpawned(t, w, sp, fac)
	if len(fac.spawned) != cur.EnemyCount {
		t.Errorf("spawned %d, wave scheduled %d", len(fac.spawned), cur.EnemyCount)
	}
	if sp.AliveCount() != cur.EnemyCount {
		t.Errorf("alive %d, want %d with no kills", sp.AliveCount(), cur.EnemyCount)
	}
}

func TestWaveCompletionSchedulesNext(t *testing.T) {
	w, sp, fac := newSpawnHarness(config.Default(), 3)
	rec := newRecorder(event.EventWaveCompleted)
	w.AddSystem(rec)

	first := runUntilSpawned(t, w, sp, fac)
	killAll(w, sp, 9, 9)

	if sp.CurrentWave() != nil {
		t.Fatal("wave still in flight after clearing it")
	}
	if sp.TimeToNextWave() <= 0 {
		t.Fatal("no inter-wave countdown scheduled")
	}

	w.Tick(0.1)
	if rec.count(event.EventWaveCompleted) != 1 {
		t.Fatal("completion not announced")
	}
	p := rec.events[0].Payload.(*event.WaveCompletedPayload)
	if p.WaveNumber != 1 || p.Kills != first.EnemyCount {
		t.Errorf("completion payload %+v, want wave 1 with %d kills", p, first.EnemyCount)
	}

	// Ride out the countdown
	for i := 0; i < 200 && sp.CurrentWave() == nil; i++ {
		w.Tick(0.25)
	}
	cur := sp.CurrentWave()
	if cur == nil || cur.WaveNumber != 2 {
		t.Errorf("next wave not started, got %+v", cur)
	}
}

func TestBossWaveCompletionDrop(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty.BossWaveInterval = 1 // Every wave is a boss wave
	cfg.Difficulty.PowerUpChanceBase = 0
	cfg.Difficulty.PowerUpChanceIncrease = 0

	w, sp, fac := newSpawnHarness(cfg, 5)
	rec := newRecorder(event.EventPowerUpDropRequest)
	w.AddSystem(rec)

	runUntilSpawned(t, w, sp, fac)
	killAll(w, sp, 9, 9)
	w.Tick(0.1)

	// The guaranteed completion drop lands at the placement's pick; kill
	// drops would carry the kill position instead
	completionDrops := 0
	for _, ev := range rec.events {
		if p := ev.Payload.(*event.PowerUpDropPayload); p.X == 1 && p.Y == 2 {
			completionDrops++
		}
	}
	if completionDrops != 1 {
		t.Errorf("completion drops = %d, want exactly 1", completionDrops)
	}
}

func TestKillDropsAtFullChance(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty.PowerUpChanceBase = 1
	cfg.Difficulty.PowerUpChanceMax = 1

	w, sp, fac := newSpawnHarness(cfg, 5)
	rec := newRecorder(event.EventPowerUpDropRequest)
	w.AddSystem(rec)

	cur := runUntilSpawned(t, w, sp, fac)
	killAll(w, sp, 3, 4)
	w.Tick(0.1)

	killDrops := 0
	for _, ev := range rec.events {
		if p := ev.Payload.(*event.PowerUpDropPayload); p.X == 3 && p.Y == 4 {
			killDrops++
		}
	}
	if killDrops != cur.EnemyCount {
		t.Errorf("kill drops = %d, want %d at guaranteed chance", killDrops, cur.EnemyCount)
	}
}

func TestFactoryRefusalDoesNotStallWave(t *testing.T) {
	w, sp, fac := newSpawnHarness(config.Default(), 2)
	fac.refuse = true
	rec := newRecorder(event.EventWaveCompleted)
	w.AddSystem(rec)

	for i := 0; i < 600 && rec.count(event.EventWaveCompleted) == 0; i++ {
		w.Tick(0.25)
	}
	if rec.count(event.EventWaveCompleted) == 0 {
		t.Fatal("wave never completed with a refusing factory")
	}
	if sp.AliveCount() != 0 {
		t.Errorf("alive = %d with a refusing factory, want 0", sp.AliveCount())
	}
}

func TestStaleKillIgnoredBetweenWaves(t *testing.T) {
	w, sp, fac := newSpawnHarness(config.Default(), 3)

	runUntilSpawned(t, w, sp, fac)
	killAll(w, sp, 0, 0)

	// A duplicate kill arriving after the wave cleared must not corrupt
	// the next wave's accounting
	w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{})
	w.Tick(0.1)
	if sp.AliveCount() != 0 {
		t.Errorf("alive = %d after stale kill, want 0", sp.AliveCount())
	}
}

func TestResetRestartsWaveSequence(t *testing.T) {
	w, sp, fac := newSpawnHarness(config.Default(), 11)

	runUntilSpawned(t, w, sp, fac)
	firstRun := append([]string(nil), fac.spawned...)

	w.Reset()
	if sp.CurrentWave() != nil || sp.AliveCount() != 0 {
		t.Fatal("spawner state survived reset")
	}

	fac.spawned = fac.spawned[:0]
	runUntilSpawned(t, w, sp, fac)
	cur := sp.CurrentWave()
	if cur == nil || cur.WaveNumber != 1 {
		t.Fatalf("post-reset wave = %+v, want wave 1", cur)
	}
	if len(fac.spawned) != len(firstRun) {
		t.Errorf("post-reset run spawned %d, first run %d", len(fac.spawned), len(firstRun))
	}
}
