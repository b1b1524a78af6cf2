package event

// EventType represents the type of game event
type EventType int

const (
	// EventGameReset requests a full session reset
	// Trigger: composition root / simulator restart
	// Consumer: all systems | Payload: nil
	EventGameReset EventType = iota

	// === Combat Events ===

	// EventEnemySpawned signals an enemy instance entered the arena
	// Trigger: SpawnSystem after a successful factory call
	// Consumer: telemetry, simulator | Payload: *EnemySpawnedPayload
	EventEnemySpawned

	// EventEnemyKilled signals a defeated enemy
	// Trigger: external combat collaborator (simulator player model)
	// Consumer: SpawnSystem, PerformanceSystem, DirectorSystem | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventPlayerDamaged signals the player took a hit
	// Trigger: external combat collaborator
	// Consumer: PerformanceSystem | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventPlayerHealthChanged carries the authoritative health reading
	// Trigger: player-health collaborator on any change
	// Consumer: PerformanceSystem, DirectorSystem | Payload: *HealthChangedPayload
	EventPlayerHealthChanged

	// === Wave Events ===

	// EventWaveStarted signals the first spawn of a new wave is scheduled
	// Trigger: SpawnSystem when a wave is pulled from the Generator
	// Consumer: UI/telemetry, DirectorSystem | Payload: *WaveStartedPayload
	EventWaveStarted

	// EventWaveCompleted signals all spawned enemies of a wave are dead
	// Trigger: SpawnSystem
	// Consumer: UI/telemetry, DirectorSystem | Payload: *WaveCompletedPayload
	EventWaveCompleted

	// === Director Events ===

	// EventBreatherStarted signals the director entered Relax
	// Trigger: DirectorSystem phase transition
	// Consumer: spawner pacing, UI, audio | Payload: *BreatherStartedPayload
	EventBreatherStarted

	// EventBreatherEnded signals the director left Relax
	// Trigger: DirectorSystem phase transition
	// Consumer: spawner pacing, UI, audio | Payload: nil
	EventBreatherEnded

	// EventLowHealthEntered fires on the healthy -> low/critical edge
	// Trigger: PerformanceSystem health update
	// Consumer: DirectorSystem, UI | Payload: *LowHealthPayload
	EventLowHealthEntered

	// EventLowHealthExited fires on the low/critical -> healthy edge
	// Trigger: PerformanceSystem health update
	// Consumer: DirectorSystem, UI | Payload: nil
	EventLowHealthExited

	// EventPowerUpDropRequest asks the power-up collaborator for a drop
	// Trigger: SpawnSystem on lucky kills and boss-wave completion
	// Consumer: power-up spawner (simulator) | Payload: *PowerUpDropPayload
	EventPowerUpDropRequest

	// EventHelpPowerUpRequest asks for an immediate assistance drop
	// Trigger: DirectorSystem when help conditions newly hold
	// Consumer: power-up spawner (simulator) | Payload: *HelpPowerUpPayload
	EventHelpPowerUpRequest
)

// GameEvent is the unit routed through the queue each tick
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
