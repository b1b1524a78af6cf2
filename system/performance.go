// Package system contains the tick-driven closed loop around the wave
// generator: performance tracking, the intensity director, and the spawner.
// Systems communicate only through the world's event queue and the query
// methods exposed here; there is no shared global state.
package system

import (
	"math"
	"sync/atomic"

	"github.com/JulioGmz89/wave-director/config"
	"github.com/JulioGmz89/wave-director/engine"
	"github.com/JulioGmz89/wave-director/event"
	"github.com/JulioGmz89/wave-director/parameter"
	"github.com/JulioGmz89/wave-director/status"
)

// PerformanceSystem observes kill, damage and health events and maintains
// the rolling signals the director derives intensity from. It holds no
// opinions about pacing; it only measures
type PerformanceSystem struct {
	world *engine.World
	cfg   config.DirectorConfig

	// now is accumulated session time in seconds. All windows and
	// timestamps use it instead of wall clock so ticks stay deterministic
	now float64

	killTimes           []float64 // Rolling window, oldest first
	timeSinceLastKill   float64
	timeSinceLastDamage float64

	healthPercent  float64
	lowHealth      bool
	criticalHealth bool

	// Cached metric pointers
	statRecentKills *atomic.Int64
	statHealth      *status.AtomicFloat
	statLowHealth   *atomic.Bool
}

// NewPerformanceSystem creates the tracker and caches its metric pointers
func NewPerformanceSystem(world *engine.World, cfg config.DirectorConfig) *PerformanceSystem {
	s := &PerformanceSystem{
		world: world,
		cfg:   cfg,

		statRecentKills: world.Status.Ints.Get("perf.recent_kills"),
		statHealth:      world.Status.Floats.Get("perf.health"),
		statLowHealth:   world.Status.Bools.Get("perf.low_health"),
	}
	s.init()
	return s
}

func (s *PerformanceSystem) init() {
	s.now = 0
	s.killTimes = s.killTimes[:0]
	// Large initial values so a fresh session is neither a kill streak
	// nor an instant drought escalation target
	s.timeSinceLastKill = s.cfg.KillDroughtThreshold
	s.timeSinceLastDamage = math.MaxFloat64 / 2
	s.healthPercent = 1
	s.lowHealth = false
	s.criticalHealth = false

	s.statRecentKills.Store(0)
	s.statHealth.Set(1)
	s.statLowHealth.Store(false)
}

func (s *PerformanceSystem) Name() string {
	return "performance"
}

func (s *PerformanceSystem) Priority() int {
	return parameter.PriorityPerformance
}

func (s *PerformanceSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventEnemyKilled,
		event.EventPlayerDamaged,
		event.EventPlayerHealthChanged,
	}
}

func (s *PerformanceSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.init()

	case event.EventEnemyKilled:
		s.killTimes = append(s.killTimes, s.now)
		s.timeSinceLastKill = 0

	case event.EventPlayerDamaged:
		s.timeSinceLastDamage = 0

	case event.EventPlayerHealthChanged:
		payload, ok := ev.Payload.(*event.HealthChangedPayload)
		if !ok || payload.Max <= 0 {
			return // Stale or malformed source, ignore
		}
		s.applyHealth(payload.Current / payload.Max)
	}
}

// Update advances timers and lazily purges expired kill timestamps
func (s *PerformanceSystem) Update(dt float64) {
	s.now += dt
	s.timeSinceLastKill += dt
	s.timeSinceLastDamage += dt

	s.purgeKillWindow()
	s.statRecentKills.Store(int64(len(s.killTimes)))
}

// applyHealth recomputes the low/critical flags and fires edge events
// Escalation from low to critical re-fires the entered event so consumers
// can distinguish the regimes without polling
func (s *PerformanceSystem) applyHealth(pct float64) {
	pct = math.Max(0, math.Min(1, pct))
	s.healthPercent = pct
	s.statHealth.Set(pct)

	wasLow, wasCritical := s.lowHealth, s.criticalHealth
	s.criticalHealth = pct <= s.cfg.CriticalHealthPercent
	s.lowHealth = pct <= s.cfg.LowHealthPercent
	s.statLowHealth.Store(s.lowHealth)

	entered := (s.lowHealth && !wasLow) || (s.criticalHealth && !wasCritical)
	if entered {
		s.world.PushEvent(event.EventLowHealthEntered, &event.LowHealthPayload{Critical: s.criticalHealth})
	} else if wasLow && !s.lowHealth {
		s.world.PushEvent(event.EventLowHealthExited, nil)
	}
}

func (s *PerformanceSystem) purgeKillWindow() {
	cutoff := s.now - s.cfg.KillTrackingWindow
	drop := 0
	for drop < len(s.killTimes) && s.killTimes[drop] < cutoff {
		drop++
	}
	if drop > 0 {
		s.killTimes = s.killTimes[drop:]
	}
}

// Now returns accumulated session time in seconds
func (s *PerformanceSystem) Now() float64 {
	return s.now
}

// RecentKillCount returns kills inside the tracking window
func (s *PerformanceSystem) RecentKillCount() int {
	s.purgeKillWindow()
	return len(s.killTimes)
}

// TimeSinceLastKill returns seconds since the most recent kill
func (s *PerformanceSystem) TimeSinceLastKill() float64 {
	return s.timeSinceLastKill
}

// TimeSinceLastDamage returns seconds since the player last took a hit
func (s *PerformanceSystem) TimeSinceLastDamage() float64 {
	return s.timeSinceLastDamage
}

// HealthPercent returns the last reported health fraction in [0, 1]
func (s *PerformanceSystem) HealthPercent() float64 {
	return s.healthPercent
}

// IsLowHealth reports health at or below the low threshold
func (s *PerformanceSystem) IsLowHealth() bool {
	return s.lowHealth
}

// IsCriticalHealth reports health at or below the critical threshold
func (s *PerformanceSystem) IsCriticalHealth() bool {
	return s.criticalHealth
}
