package wave

import (
	"testing"

	"github.com/JulioGmz89/wave-director/config"
)

func testDifficulty() config.DifficultyConfig {
	d := config.Default().Difficulty
	return d
}

func TestBudgetConcreteValues(t *testing.T) {
	d := testDifficulty()
	d.StartBudget = 30
	d.BudgetGrowth = 1.15
	d.BudgetFlatIncrease = 5
	d.MaxBudget = 500
	d.BossWaveInterval = 0
	c := NewCurve(d)

	if got := c.Budget(1); got != 30 {
		t.Errorf("budget(1) = %d, want 30", got)
	}
	// 30*1.15 + 5 = 39.5, round-half-up
	if got := c.Budget(2); got != 40 {
		t.Errorf("budget(2) = %d, want 40", got)
	}
}

func TestBudgetMonotonicAndCapped(t *testing.T) {
	d := testDifficulty()
	d.BossWaveInterval = 0
	d.SwarmWaveInterval = 0
	c := NewCurve(d)

	prev := 0
	for w := 1; w <= 200; w++ {
		b := c.Budget(w)
		if b < prev {
			t.Fatalf("budget not monotonic: budget(%d)=%d < budget(%d)=%d", w, b, w-1, prev)
		}
		if b > d.MaxBudget {
			t.Fatalf("budget(%d)=%d exceeds cap %d", w, b, d.MaxBudget)
		}
		prev = b
	}
	if c.Budget(200) != d.MaxBudget {
		t.Errorf("expected cap %d reached by wave 200, got %d", d.MaxBudget, c.Budget(200))
	}
}

func TestBossBudgetMultiplier(t *testing.T) {
	d := testDifficulty()
	d.BossWaveInterval = 10
	d.BossBudgetMultiplier = 1.5
	d.MaxBudget = 100000
	c := NewCurve(d)

	noBoss := d
	noBoss.BossWaveInterval = 0
	plain := NewCurve(noBoss)

	if got, want := c.Budget(10), roundHalfUp(float64(plain.Budget(10))*1.5); got != want {
		t.Errorf("boss budget(10) = %d, want %d", got, want)
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	d := testDifficulty()
	c := NewCurve(d)
	for w := 1; w <= 300; w++ {
		if got := c.SpawnInterval(w); got < d.SpawnIntervalFloor {
			t.Fatalf("spawnInterval(%d) = %g below floor %g", w, got, d.SpawnIntervalFloor)
		}
	}
	if c.SpawnInterval(1) != d.SpawnIntervalBase {
		t.Errorf("spawnInterval(1) = %g, want base %g", c.SpawnInterval(1), d.SpawnIntervalBase)
	}
}

func TestTimeBetweenWavesFloor(t *testing.T) {
	d := testDifficulty()
	c := NewCurve(d)
	for w := 1; w <= 300; w++ {
		if got := c.TimeBetweenWaves(w); got < d.TimeBetweenWavesFloor {
			t.Fatalf("timeBetweenWaves(%d) = %g below floor %g", w, got, d.TimeBetweenWavesFloor)
		}
	}
}

func TestPowerUpChanceBounds(t *testing.T) {
	d := testDifficulty()
	c := NewCurve(d)
	for w := 1; w <= 300; w++ {
		got := c.PowerUpChance(w)
		if got < 0 || got > d.PowerUpChanceMax {
			t.Fatalf("powerUpChance(%d) = %g outside [0, %g]", w, got, d.PowerUpChanceMax)
		}
	}
}

func TestBossSwarmExclusivity(t *testing.T) {
	d := testDifficulty()
	d.BossWaveInterval = 10
	d.SwarmWaveInterval = 5
	c := NewCurve(d)

	for w := 1; w <= 100; w++ {
		if c.IsBossWave(w) && c.IsSwarmWave(w) {
			t.Fatalf("wave %d is both boss and swarm", w)
		}
	}

	// Concrete schedule: 5 and 15 swarm, 10 and 20 boss
	cases := []struct {
		w     int
		boss  bool
		swarm bool
	}{
		{5, false, true},
		{10, true, false},
		{15, false, true},
		{20, true, false},
	}
	for _, tc := range cases {
		if got := c.IsBossWave(tc.w); got != tc.boss {
			t.Errorf("isBossWave(%d) = %v, want %v", tc.w, got, tc.boss)
		}
		if got := c.IsSwarmWave(tc.w); got != tc.swarm {
			t.Errorf("isSwarmWave(%d) = %v, want %v", tc.w, got, tc.swarm)
		}
	}
}

func TestDisabledIntervals(t *testing.T) {
	d := testDifficulty()
	d.BossWaveInterval = 0
	d.SwarmWaveInterval = 0
	c := NewCurve(d)
	for w := 1; w <= 50; w++ {
		if c.IsBossWave(w) || c.IsSwarmWave(w) {
			t.Fatalf("wave %d flagged special with intervals disabled", w)
		}
	}
}
