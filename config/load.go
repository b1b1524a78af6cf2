package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads, normalizes and validates a YAML config file
// Recoverable author mistakes (floor above base, inverted bounds) are
// clamped and logged; structural faults (empty catalog, bad ids) are errors
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	for _, warning := range cfg.Normalize() {
		log.Printf("config: %s", warning)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Normalize clamps recoverable author errors in place and returns a
// description of every correction applied
func (c *Config) Normalize() []string {
	var fixes []string
	clampf := func(field string, val *float64, min float64) {
		if *val < min {
			fixes = append(fixes, fmt.Sprintf("%s %.3g below %.3g, clamped", field, *val, min))
			*val = min
		}
	}

	d := &c.Difficulty
	if d.SpawnIntervalFloor > d.SpawnIntervalBase {
		fixes = append(fixes, fmt.Sprintf("spawnIntervalFloor %.3g above base %.3g, clamped to base", d.SpawnIntervalFloor, d.SpawnIntervalBase))
		d.SpawnIntervalFloor = d.SpawnIntervalBase
	}
	if d.TimeBetweenWavesFloor > d.TimeBetweenWavesBase {
		fixes = append(fixes, fmt.Sprintf("timeBetweenWavesFloor %.3g above base %.3g, clamped to base", d.TimeBetweenWavesFloor, d.TimeBetweenWavesBase))
		d.TimeBetweenWavesFloor = d.TimeBetweenWavesBase
	}
	if d.MaxEnemiesPerWave < d.MinEnemiesPerWave {
		fixes = append(fixes, fmt.Sprintf("maxEnemiesPerWave %d below min %d, clamped to min", d.MaxEnemiesPerWave, d.MinEnemiesPerWave))
		d.MaxEnemiesPerWave = d.MinEnemiesPerWave
	}
	if d.PowerUpChanceMax > 1 {
		fixes = append(fixes, fmt.Sprintf("powerUpChanceMax %.3g above 1, clamped", d.PowerUpChanceMax))
		d.PowerUpChanceMax = 1
	}
	clampf("bossBudgetMultiplier", &d.BossBudgetMultiplier, 1)
	clampf("swarmCountMultiplier", &d.SwarmCountMultiplier, 1)

	dir := &c.Director
	if dir.CriticalHealthPercent > dir.LowHealthPercent {
		fixes = append(fixes, fmt.Sprintf("criticalHealthPercent %.3g above lowHealthPercent %.3g, clamped", dir.CriticalHealthPercent, dir.LowHealthPercent))
		dir.CriticalHealthPercent = dir.LowHealthPercent
	}

	for i := range c.Enemies {
		e := &c.Enemies[i]
		if e.MinWaveToAppear < 1 {
			fixes = append(fixes, fmt.Sprintf("enemy %q minWaveToAppear %d below 1, clamped", e.ID, e.MinWaveToAppear))
			e.MinWaveToAppear = 1
		}
		if e.SpawnIntervalMultiplier <= 0 {
			fixes = append(fixes, fmt.Sprintf("enemy %q spawnIntervalMultiplier %.3g not positive, reset to 1", e.ID, e.SpawnIntervalMultiplier))
			e.SpawnIntervalMultiplier = 1
		}
		if e.InitialSpawnDelay < 0 {
			fixes = append(fixes, fmt.Sprintf("enemy %q initialSpawnDelay %.3g negative, clamped to 0", e.ID, e.InitialSpawnDelay))
			e.InitialSpawnDelay = 0
		}
		if e.MaxPerWave < 0 {
			fixes = append(fixes, fmt.Sprintf("enemy %q maxPerWave %d negative, reset to unlimited", e.ID, e.MaxPerWave))
			e.MaxPerWave = 0
		}
	}

	return fixes
}

// Validate reports structural faults that cannot be clamped away
// This is the single caller-visible setup failure the core may surface
func (c *Config) Validate() error {
	if len(c.Enemies) == 0 {
		return fmt.Errorf("enemy catalog cannot be empty")
	}

	seen := make(map[string]bool, len(c.Enemies))
	for _, e := range c.Enemies {
		if e.ID == "" {
			return fmt.Errorf("enemy catalog entry with empty id")
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate enemy id %q", e.ID)
		}
		seen[e.ID] = true
		if e.DifficultyCost <= 0 {
			return fmt.Errorf("enemy %q difficultyCost must be positive, got %d", e.ID, e.DifficultyCost)
		}
		if e.BaseWeight <= 0 {
			return fmt.Errorf("enemy %q baseWeight must be positive, got %g", e.ID, e.BaseWeight)
		}
	}

	d := c.Difficulty
	if d.StartBudget <= 0 {
		return fmt.Errorf("startBudget must be positive, got %d", d.StartBudget)
	}
	if d.MaxBudget < d.StartBudget {
		return fmt.Errorf("maxBudget %d below startBudget %d", d.MaxBudget, d.StartBudget)
	}
	if d.MinEnemiesPerWave < 0 {
		return fmt.Errorf("minEnemiesPerWave must be >= 0, got %d", d.MinEnemiesPerWave)
	}
	if d.BudgetGrowth <= 0 {
		return fmt.Errorf("budgetGrowth must be positive, got %g", d.BudgetGrowth)
	}

	dir := c.Director
	if dir.RapidKillThreshold < 1 {
		return fmt.Errorf("rapidKillThreshold must be >= 1, got %d", dir.RapidKillThreshold)
	}
	if dir.KillTrackingWindow <= 0 {
		return fmt.Errorf("killTrackingWindow must be positive, got %g", dir.KillTrackingWindow)
	}

	return nil
}
