// Package wave implements the deterministic wave-generation pipeline:
// difficulty curves, budget-constrained composition, and the pull-based
// unbounded wave provider. Everything here is pure relative to an injected
// random source; the live feedback loop lives in the system package.
package wave

// EnemyGroup is one archetype's slot in a generated wave
type EnemyGroup struct {
	CatalogID string
	Count     int

	// SpawnInterval is seconds between consecutive spawns within the group,
	// already scaled by the archetype's interval multiplier
	SpawnInterval float64

	// InitialDelay is seconds before the group's first spawn
	InitialDelay float64
}

// Composition is the raw output of the budget fill algorithm
type Composition struct {
	Groups     []EnemyGroup
	TotalCount int

	// BudgetSpent is the cost charged by budget-constrained selection.
	// Minimum-enemy backfill is deliberately exempt and not included
	BudgetSpent int

	// Backfilled counts enemies added past the budget to satisfy the
	// wave minimum
	Backfilled int

	// Aborted is set when the iteration cap ended composition early
	Aborted bool
}

// GeneratedWave is one wave handed to the spawner. Created fresh per pull,
// owned by the consumer until exhausted, then discarded
type GeneratedWave struct {
	WaveNumber int
	Groups     []EnemyGroup
	EnemyCount int

	// TimeToNextWave is the authored downtime after this wave clears (seconds)
	TimeToNextWave float64

	// PowerUpChanceOnKill is the curve's base drop chance; the spawner adds
	// the director's live bonus on top
	PowerUpChanceOnKill float64

	// SpawnPowerUpOnComplete requests a guaranteed drop when the wave
	// clears. Set for boss waves
	SpawnPowerUpOnComplete bool

	// DifficultyMultiplier is the static per-wave scaling baseline,
	// 1 + 0.1*(waveNumber-1). Live director scaling composes on top
	DifficultyMultiplier float64

	IsBoss  bool
	IsSwarm bool

	// Budget is the threat budget the composition drew against
	Budget int
}
