package parameter

// Event Queue
const (
	// EventQueueSize is the ring buffer capacity, must be a power of 2
	EventQueueSize uint64 = 1024

	// EventBufferMask converts absolute indices to ring slots
	EventBufferMask = EventQueueSize - 1
)

// Simulation
const (
	// TickRate is the nominal simulator update frequency (Hz)
	TickRate = 30

	// MaxDeltaTime caps a single tick's dt in seconds
	// Protects timers from runaway catch-up after a host stall
	MaxDeltaTime = 0.25
)
