package wave

import (
	"math"

	"github.com/JulioGmz89/wave-director/config"
)

// Curve evaluates the difficulty curve functions for a fixed config.
// All methods are pure and safe to call from preview tooling at any time;
// they never touch generator state
type Curve struct {
	d config.DifficultyConfig
}

// NewCurve wraps a difficulty config for evaluation
func NewCurve(d config.DifficultyConfig) Curve {
	return Curve{d: d}
}

// Budget returns the threat budget for wave w (1-indexed), boss
// multiplier applied, capped at MaxBudget
func (c Curve) Budget(w int) int {
	base := roundHalfUp(float64(c.d.StartBudget)*math.Pow(c.d.BudgetGrowth, float64(w-1)) +
		c.d.BudgetFlatIncrease*float64(w-1))
	if c.IsBossWave(w) {
		base = roundHalfUp(float64(base) * c.d.BossBudgetMultiplier)
	}
	if base > c.d.MaxBudget {
		return c.d.MaxBudget
	}
	return base
}

// SpawnInterval returns the base seconds between spawns for wave w,
// decaying per wave down to the floor
func (c Curve) SpawnInterval(w int) float64 {
	return math.Max(c.d.SpawnIntervalBase*math.Pow(c.d.SpawnIntervalDecay, float64(w-1)), c.d.SpawnIntervalFloor)
}

// TimeBetweenWaves returns the downtime after wave w clears (seconds)
func (c Curve) TimeBetweenWaves(w int) float64 {
	return math.Max(c.d.TimeBetweenWavesBase-c.d.TimeBetweenWavesReduction*float64(w-1), c.d.TimeBetweenWavesFloor)
}

// PowerUpChance returns the base on-kill drop chance for wave w
func (c Curve) PowerUpChance(w int) float64 {
	return math.Min(c.d.PowerUpChanceBase+c.d.PowerUpChanceIncrease*float64(w-1), c.d.PowerUpChanceMax)
}

// IsBossWave reports whether wave w is on the boss schedule
func (c Curve) IsBossWave(w int) bool {
	return c.d.BossWaveInterval > 0 && w%c.d.BossWaveInterval == 0
}

// IsSwarmWave reports whether wave w is on the swarm schedule
// Boss takes precedence; the two are mutually exclusive
func (c Curve) IsSwarmWave(w int) bool {
	return !c.IsBossWave(w) && c.d.SwarmWaveInterval > 0 && w%c.d.SwarmWaveInterval == 0
}

// roundHalfUp is the budget rounding rule: 39.5 rounds to 40
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
