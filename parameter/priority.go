package parameter

// System Execution Priorities (lower runs first)
// Performance must observe the tick before the director derives signals
// from it, and the spawner consumes director multipliers last
const (
	PriorityPerformance = 10
	PriorityDirector    = 20
	PrioritySpawn       = 30
	PriorityDiagnostics = 1000 // After all others, telemetry collection
)
