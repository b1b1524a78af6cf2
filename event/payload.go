package event

// EnemySpawnedPayload describes one spawned enemy instance
type EnemySpawnedPayload struct {
	CatalogID  string
	WaveNumber int
	X, Y       float64
}

// EnemyKilledPayload describes one defeated enemy
// Position is where the enemy died, used for drop placement
type EnemyKilledPayload struct {
	CatalogID  string
	WaveNumber int
	X, Y       float64
}

// PlayerDamagedPayload carries a single damage application
type PlayerDamagedPayload struct {
	Amount float64
}

// HealthChangedPayload carries the player health reading after a change
// Max <= 0 readings are ignored by consumers (stale source guard)
type HealthChangedPayload struct {
	Current float64
	Max     float64
}

// WaveStartedPayload announces a freshly pulled wave
type WaveStartedPayload struct {
	WaveNumber int
	EnemyCount int
	Boss       bool
	Swarm      bool
}

// WaveCompletedPayload announces a fully cleared wave
type WaveCompletedPayload struct {
	WaveNumber int
	Duration   float64 // Seconds from wave start to last death
	Kills      int
}

// BreatherStartedPayload carries the planned relax duration in seconds
type BreatherStartedPayload struct {
	Duration float64
}

// LowHealthPayload distinguishes the low and critical thresholds
type LowHealthPayload struct {
	Critical bool
}

// PowerUpDropPayload requests a power-up at a world position
type PowerUpDropPayload struct {
	X, Y float64
}

// HelpPowerUpReason identifies why the director asked for assistance
type HelpPowerUpReason int

const (
	HelpReasonCriticalHealth HelpPowerUpReason = iota
	HelpReasonOverlongWave
	HelpReasonKillDrought
)

func (r HelpPowerUpReason) String() string {
	switch r {
	case HelpReasonCriticalHealth:
		return "critical health"
	case HelpReasonOverlongWave:
		return "overlong wave"
	case HelpReasonKillDrought:
		return "kill drought"
	default:
		return "unknown"
	}
}

// HelpPowerUpPayload requests an immediate assistance drop near the player
type HelpPowerUpPayload struct {
	Reason HelpPowerUpReason
}
