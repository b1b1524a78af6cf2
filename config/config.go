package config

import "github.com/JulioGmz89/wave-director/parameter"

// EnemyCatalogEntry is the authored descriptor of one enemy archetype
// Loaded once at startup, never mutated at runtime
type EnemyCatalogEntry struct {
	ID              string  `yaml:"id"`
	DifficultyCost  int     `yaml:"difficultyCost"`
	MinWaveToAppear int     `yaml:"minWaveToAppear"`
	BaseWeight      float64 `yaml:"baseWeight"`
	IsBoss          bool    `yaml:"isBoss"`

	// MaxPerWave caps copies of this archetype in one wave, 0 = unlimited
	MaxPerWave int `yaml:"maxPerWave"`

	// IsUnique is authored data the composer does not currently enforce.
	// Kept so configs round-trip; see DESIGN.md
	IsUnique bool `yaml:"isUnique"`

	SpawnIntervalMultiplier float64 `yaml:"spawnIntervalMultiplier"`
	InitialSpawnDelay       float64 `yaml:"initialSpawnDelay"`
}

// DifficultyConfig holds the scalar parameters of the four curve functions
// and the special-wave schedule
type DifficultyConfig struct {
	StartBudget        int     `yaml:"startBudget"`
	BudgetGrowth       float64 `yaml:"budgetGrowth"`
	BudgetFlatIncrease float64 `yaml:"budgetFlatIncrease"`
	MaxBudget          int     `yaml:"maxBudget"`

	MinEnemiesPerWave int `yaml:"minEnemiesPerWave"`
	MaxEnemiesPerWave int `yaml:"maxEnemiesPerWave"`

	SpawnIntervalBase  float64 `yaml:"spawnIntervalBase"`
	SpawnIntervalFloor float64 `yaml:"spawnIntervalFloor"`
	SpawnIntervalDecay float64 `yaml:"spawnIntervalDecay"`

	TimeBetweenWavesBase      float64 `yaml:"timeBetweenWavesBase"`
	TimeBetweenWavesFloor     float64 `yaml:"timeBetweenWavesFloor"`
	TimeBetweenWavesReduction float64 `yaml:"timeBetweenWavesReduction"`

	PowerUpChanceBase     float64 `yaml:"powerUpChanceBase"`
	PowerUpChanceIncrease float64 `yaml:"powerUpChanceIncrease"`
	PowerUpChanceMax      float64 `yaml:"powerUpChanceMax"`

	BossWaveInterval     int     `yaml:"bossWaveInterval"`
	BossBudgetMultiplier float64 `yaml:"bossBudgetMultiplier"`

	SwarmWaveInterval    int     `yaml:"swarmWaveInterval"`
	SwarmCountMultiplier float64 `yaml:"swarmCountMultiplier"`
}

// DirectorConfig tunes the intensity phase machine and its derived signals
type DirectorConfig struct {
	BuildUpDuration         float64 `yaml:"buildUpDuration"`
	PeakDuration            float64 `yaml:"peakDuration"`
	RelaxDuration           float64 `yaml:"relaxDuration"`
	MinTimeBetweenBreathers float64 `yaml:"minTimeBetweenBreathers"`

	RapidKillThreshold   int     `yaml:"rapidKillThreshold"`
	KillTrackingWindow   float64 `yaml:"killTrackingWindow"`
	KillDroughtThreshold float64 `yaml:"killDroughtThreshold"`
	ExpectedWaveDuration float64 `yaml:"expectedWaveDuration"`
	IntensitySmoothRate  float64 `yaml:"intensitySmoothRate"`

	LowHealthPercent      float64 `yaml:"lowHealthPercent"`
	CriticalHealthPercent float64 `yaml:"criticalHealthPercent"`
	HighHealthPercent     float64 `yaml:"highHealthPercent"`

	LowHealthPowerUpBonus      float64 `yaml:"lowHealthPowerUpBonus"`
	CriticalHealthPowerUpBonus float64 `yaml:"criticalHealthPowerUpBonus"`
}

// Config is the aggregate authored configuration surface
type Config struct {
	Difficulty DifficultyConfig    `yaml:"difficulty"`
	Director   DirectorConfig      `yaml:"director"`
	Enemies    []EnemyCatalogEntry `yaml:"enemies"`
}

// Default returns a complete playable tuning, used when no config file is
// supplied and as the baseline the simulator starts from
func Default() *Config {
	return &Config{
		Difficulty: DifficultyConfig{
			StartBudget:        parameter.DifficultyStartBudget,
			BudgetGrowth:       parameter.DifficultyBudgetGrowth,
			BudgetFlatIncrease: parameter.DifficultyBudgetFlatIncrease,
			MaxBudget:          parameter.DifficultyMaxBudget,

			MinEnemiesPerWave: parameter.DifficultyMinEnemiesPerWave,
			MaxEnemiesPerWave: parameter.DifficultyMaxEnemiesPerWave,

			SpawnIntervalBase:  parameter.DifficultySpawnIntervalBase,
			SpawnIntervalFloor: parameter.DifficultySpawnIntervalFloor,
			SpawnIntervalDecay: parameter.DifficultySpawnIntervalDecay,

			TimeBetweenWavesBase:      parameter.DifficultyTimeBetweenWavesBase,
			TimeBetweenWavesFloor:     parameter.DifficultyTimeBetweenWavesFloor,
			TimeBetweenWavesReduction: parameter.DifficultyTimeBetweenWavesReduction,

			PowerUpChanceBase:     parameter.DifficultyPowerUpChanceBase,
			PowerUpChanceIncrease: parameter.DifficultyPowerUpChanceIncrease,
			PowerUpChanceMax:      parameter.DifficultyPowerUpChanceMax,

			BossWaveInterval:     parameter.DifficultyBossWaveInterval,
			BossBudgetMultiplier: parameter.DifficultyBossBudgetMultiplier,

			SwarmWaveInterval:    parameter.DifficultySwarmWaveInterval,
			SwarmCountMultiplier: parameter.DifficultySwarmCountMultiplier,
		},
		Director: DirectorConfig{
			BuildUpDuration:         parameter.DirectorBuildUpDuration,
			PeakDuration:            parameter.DirectorPeakDuration,
			RelaxDuration:           parameter.DirectorRelaxDuration,
			MinTimeBetweenBreathers: parameter.DirectorMinTimeBetweenBreathers,

			RapidKillThreshold:   parameter.DirectorRapidKillThreshold,
			KillTrackingWindow:   parameter.DirectorKillTrackingWindow,
			KillDroughtThreshold: parameter.DirectorKillDroughtThreshold,
			ExpectedWaveDuration: parameter.DirectorExpectedWaveDuration,
			IntensitySmoothRate:  parameter.DirectorIntensitySmoothRate,

			LowHealthPercent:      parameter.DirectorLowHealthPercent,
			CriticalHealthPercent: parameter.DirectorCriticalHealthPercent,
			HighHealthPercent:     parameter.DirectorHighHealthPercent,

			LowHealthPowerUpBonus:      parameter.DirectorLowHealthPowerUpBonus,
			CriticalHealthPowerUpBonus: parameter.DirectorCriticalHealthPowerUpBonus,
		},
		Enemies: DefaultCatalog(),
	}
}

// DefaultCatalog returns the stock arena-shooter enemy set
func DefaultCatalog() []EnemyCatalogEntry {
	return []EnemyCatalogEntry{
		{ID: "swarmling", DifficultyCost: 1, MinWaveToAppear: 1, BaseWeight: 10, SpawnIntervalMultiplier: 0.5},
		{ID: "chaser", DifficultyCost: 2, MinWaveToAppear: 1, BaseWeight: 8, SpawnIntervalMultiplier: 1.0},
		{ID: "shooter", DifficultyCost: 3, MinWaveToAppear: 2, BaseWeight: 6, SpawnIntervalMultiplier: 1.2},
		{ID: "splitter", DifficultyCost: 4, MinWaveToAppear: 3, BaseWeight: 4, SpawnIntervalMultiplier: 1.2, InitialSpawnDelay: 1.0},
		{ID: "tank", DifficultyCost: 6, MinWaveToAppear: 4, BaseWeight: 3, MaxPerWave: 3, SpawnIntervalMultiplier: 1.6, InitialSpawnDelay: 2.0},
		{ID: "elite", DifficultyCost: 8, MinWaveToAppear: 6, BaseWeight: 2, MaxPerWave: 2, SpawnIntervalMultiplier: 1.8, InitialSpawnDelay: 2.5},
		{ID: "boss_bruiser", DifficultyCost: 20, MinWaveToAppear: 10, BaseWeight: 3, IsBoss: true, MaxPerWave: 1, IsUnique: true, SpawnIntervalMultiplier: 2.0, InitialSpawnDelay: 3.0},
		{ID: "boss_artillery", DifficultyCost: 25, MinWaveToAppear: 20, BaseWeight: 2, IsBoss: true, MaxPerWave: 1, IsUnique: true, SpawnIntervalMultiplier: 2.0, InitialSpawnDelay: 3.0},
	}
}
