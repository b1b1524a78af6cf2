package parameter

// Wave Budget Curve
const (
	// DifficultyStartBudget is the wave-1 threat budget
	DifficultyStartBudget = 30

	// DifficultyBudgetGrowth is the multiplicative per-wave growth factor
	DifficultyBudgetGrowth = 1.15

	// DifficultyBudgetFlatIncrease is the additive per-wave budget increase
	DifficultyBudgetFlatIncrease = 5

	// DifficultyMaxBudget caps the budget curve
	DifficultyMaxBudget = 500
)

// Wave Composition Bounds
const (
	DifficultyMinEnemiesPerWave = 3
	DifficultyMaxEnemiesPerWave = 25

	// ComposerIterationCap ends composition on pathological configs
	ComposerIterationCap = 1000
)

// Spawn Pacing Curve
const (
	// DifficultySpawnIntervalBase is the wave-1 inter-spawn gap (seconds)
	DifficultySpawnIntervalBase = 2.0

	// DifficultySpawnIntervalFloor is the minimum inter-spawn gap (seconds)
	DifficultySpawnIntervalFloor = 0.35

	// DifficultySpawnIntervalDecay is the multiplicative per-wave decay
	DifficultySpawnIntervalDecay = 0.93
)

// Inter-Wave Pacing
const (
	// DifficultyTimeBetweenWavesBase is the wave-1 downtime (seconds)
	DifficultyTimeBetweenWavesBase = 8.0

	// DifficultyTimeBetweenWavesFloor is the minimum downtime (seconds)
	DifficultyTimeBetweenWavesFloor = 3.0

	// DifficultyTimeBetweenWavesReduction is the linear per-wave reduction (seconds)
	DifficultyTimeBetweenWavesReduction = 0.25
)

// Power-Up Chance Curve
const (
	DifficultyPowerUpChanceBase     = 0.05
	DifficultyPowerUpChanceIncrease = 0.005
	DifficultyPowerUpChanceMax      = 0.25
)

// Special Waves
const (
	// DifficultyBossWaveInterval schedules a boss wave every N waves (0 disables)
	DifficultyBossWaveInterval = 10

	// DifficultyBossBudgetMultiplier enlarges the boss-wave budget
	DifficultyBossBudgetMultiplier = 1.5

	// DifficultySwarmWaveInterval schedules a swarm wave every N waves (0 disables)
	// Boss takes precedence on collisions
	DifficultySwarmWaveInterval = 5

	// DifficultySwarmCountMultiplier raises the enemy-count cap on swarm waves
	DifficultySwarmCountMultiplier = 2.0
)
