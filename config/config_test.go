package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if fixes := cfg.Normalize(); len(fixes) != 0 {
		t.Errorf("default config needed corrections: %v", fixes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestNormalizeClampsInvertedFloors(t *testing.T) {
	cfg := Default()
	cfg.Difficulty.SpawnIntervalBase = 1.0
	cfg.Difficulty.SpawnIntervalFloor = 2.0
	cfg.Difficulty.TimeBetweenWavesBase = 4.0
	cfg.Difficulty.TimeBetweenWavesFloor = 9.0

	fixes := cfg.Normalize()
	if len(fixes) < 2 {
		t.Fatalf("expected at least 2 corrections, got %v", fixes)
	}
	if cfg.Difficulty.SpawnIntervalFloor != 1.0 {
		t.Errorf("spawnIntervalFloor = %g, want clamped to base 1.0", cfg.Difficulty.SpawnIntervalFloor)
	}
	if cfg.Difficulty.TimeBetweenWavesFloor != 4.0 {
		t.Errorf("timeBetweenWavesFloor = %g, want clamped to base 4.0", cfg.Difficulty.TimeBetweenWavesFloor)
	}
}

func TestNormalizeClampsEnemyBounds(t *testing.T) {
	cfg := Default()
	cfg.Difficulty.MinEnemiesPerWave = 10
	cfg.Difficulty.MaxEnemiesPerWave = 5
	cfg.Enemies[0].MinWaveToAppear = 0
	cfg.Enemies[0].SpawnIntervalMultiplier = -1
	cfg.Enemies[0].InitialSpawnDelay = -0.5

	cfg.Normalize()

	if cfg.Difficulty.MaxEnemiesPerWave != 10 {
		t.Errorf("maxEnemiesPerWave = %d, want 10", cfg.Difficulty.MaxEnemiesPerWave)
	}
	if cfg.Enemies[0].MinWaveToAppear != 1 {
		t.Errorf("minWaveToAppear = %d, want 1", cfg.Enemies[0].MinWaveToAppear)
	}
	if cfg.Enemies[0].SpawnIntervalMultiplier != 1 {
		t.Errorf("spawnIntervalMultiplier = %g, want 1", cfg.Enemies[0].SpawnIntervalMultiplier)
	}
	if cfg.Enemies[0].InitialSpawnDelay != 0 {
		t.Errorf("initialSpawnDelay = %g, want 0", cfg.Enemies[0].InitialSpawnDelay)
	}
}

func TestValidateRejectsEmptyCatalog(t *testing.T) {
	cfg := Default()
	cfg.Enemies = nil
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty catalog")
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	cfg := Default()
	cfg.Enemies = append(cfg.Enemies, cfg.Enemies[0])
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for duplicate enemy id")
	}
}

func TestValidateRejectsNonPositiveCost(t *testing.T) {
	cfg := Default()
	cfg.Enemies[0].DifficultyCost = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero difficultyCost")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
difficulty:
  startBudget: 30
  budgetGrowth: 1.15
  budgetFlatIncrease: 5
  maxBudget: 500
  minEnemiesPerWave: 3
  maxEnemiesPerWave: 25
  spawnIntervalBase: 2.0
  spawnIntervalFloor: 0.35
  spawnIntervalDecay: 0.93
  timeBetweenWavesBase: 8.0
  timeBetweenWavesFloor: 3.0
  timeBetweenWavesReduction: 0.25
  powerUpChanceBase: 0.05
  powerUpChanceIncrease: 0.005
  powerUpChanceMax: 0.25
  bossWaveInterval: 10
  bossBudgetMultiplier: 1.5
  swarmWaveInterval: 5
  swarmCountMultiplier: 2.0
director:
  buildUpDuration: 15
  peakDuration: 20
  relaxDuration: 8
  minTimeBetweenBreathers: 45
  rapidKillThreshold: 10
  killTrackingWindow: 10
  killDroughtThreshold: 12
  expectedWaveDuration: 45
  intensitySmoothRate: 2
  lowHealthPercent: 0.4
  criticalHealthPercent: 0.2
  highHealthPercent: 0.7
  lowHealthPowerUpBonus: 0.1
  criticalHealthPowerUpBonus: 0.25
enemies:
  - id: chaser
    difficultyCost: 2
    minWaveToAppear: 1
    baseWeight: 8
    spawnIntervalMultiplier: 1.0
  - id: boss_bruiser
    difficultyCost: 20
    minWaveToAppear: 10
    baseWeight: 3
    isBoss: true
    maxPerWave: 1
    spawnIntervalMultiplier: 2.0
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Difficulty.StartBudget != 30 {
		t.Errorf("startBudget = %d, want 30", cfg.Difficulty.StartBudget)
	}
	if len(cfg.Enemies) != 2 {
		t.Fatalf("expected 2 enemies, got %d", len(cfg.Enemies))
	}
	if !cfg.Enemies[1].IsBoss {
		t.Error("boss flag lost in round trip")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
