package system

import (
	"sync/atomic"

	"github.com/JulioGmz89/wave-director/config"
	"github.com/JulioGmz89/wave-director/engine"
	"github.com/JulioGmz89/wave-director/event"
	"github.com/JulioGmz89/wave-director/parameter"
	"github.com/JulioGmz89/wave-director/status"
)

// Phase is the current pacing regime of the intensity director
type Phase int

const (
	PhaseBuildUp Phase = iota
	PhasePeak
	PhaseSustain
	PhaseRelax
)

func (p Phase) String() string {
	switch p {
	case PhaseBuildUp:
		return "BuildUp"
	case PhasePeak:
		return "Peak"
	case PhaseSustain:
		return "Sustain"
	case PhaseRelax:
		return "Relax"
	default:
		return "Unknown"
	}
}

// DirectorSystem is the closed-loop pacing controller. It watches the
// performance tracker, runs the BuildUp -> Peak -> Sustain -> Relax phase
// machine, and exposes the live multipliers the spawner folds into its
// cadence and drop chances.
//
// All timers accumulate the tick dt; the director never reads a wall clock
type DirectorSystem struct {
	world *engine.World
	cfg   config.DirectorConfig
	perf  *PerformanceSystem

	phase      Phase
	phaseTimer float64
	intensity  float64

	// lastBreatherTime is in tracker session time. Seeded so the cooldown
	// does not suppress a deserved breather early in a session
	lastBreatherTime float64

	waveActive    bool
	waveStartTime float64
	killsThisWave int

	helpPending bool // Edge detector for help requests

	// Cached metric pointers
	statPhase      *status.AtomicString
	statIntensity  *status.AtomicFloat
	statMultiplier *status.AtomicFloat
	statBreathers  *atomic.Int64
}

// NewDirectorSystem wires the director to the world and the tracker it reads
func NewDirectorSystem(world *engine.World, cfg config.DirectorConfig, perf *PerformanceSystem) *DirectorSystem {
	s := &DirectorSystem{
		world: world,
		cfg:   cfg,
		perf:  perf,

		statPhase:      world.Status.Strings.Get("director.phase"),
		statIntensity:  world.Status.Floats.Get("director.intensity"),
		statMultiplier: world.Status.Floats.Get("director.multiplier"),
		statBreathers:  world.Status.Ints.Get("director.breathers"),
	}
	s.init()
	return s
}

func (s *DirectorSystem) init() {
	s.phase = PhaseBuildUp
	s.phaseTimer = 0
	s.intensity = parameter.IntensityBuildUpStart
	s.lastBreatherTime = -s.cfg.MinTimeBetweenBreathers
	s.waveActive = false
	s.waveStartTime = 0
	s.killsThisWave = 0
	s.helpPending = false

	s.statPhase.Store(s.phase.String())
	s.statIntensity.Set(s.intensity)
	s.statMultiplier.Set(1)
	s.statBreathers.Store(0)
}

func (s *DirectorSystem) Name() string {
	return "director"
}

func (s *DirectorSystem) Priority() int {
	return parameter.PriorityDirector
}

func (s *DirectorSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventEnemyKilled,
		event.EventPlayerHealthChanged,
		event.EventWaveStarted,
		event.EventWaveCompleted,
	}
}

func (s *DirectorSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.init()

	case event.EventEnemyKilled:
		s.killsThisWave++
		// A rapid-kill streak can earn a breather mid-dispatch; the
		// tracker has already recorded this kill (registration order)
		if (s.phase == PhasePeak || s.phase == PhaseSustain) && s.ShouldTriggerBreather() {
			s.enterRelax()
		}

	case event.EventPlayerHealthChanged:
		// Tracker flags are current for this event (registration order),
		// so a newly-critical player gets help the same tick
		s.checkHelp()

	case event.EventWaveStarted:
		s.waveActive = true
		s.waveStartTime = s.perf.Now()
		s.killsThisWave = 0

	case event.EventWaveCompleted:
		s.waveActive = false
	}
}

// Update advances the phase machine and the smoothed intensity signal
func (s *DirectorSystem) Update(dt float64) {
	s.phaseTimer += dt

	switch s.phase {
	case PhaseBuildUp:
		if s.phaseTimer >= s.cfg.BuildUpDuration || s.perf.RecentKillCount() >= s.cfg.RapidKillThreshold/2 {
			s.enterPhase(PhasePeak)
		}
	case PhasePeak:
		if s.ShouldTriggerBreather() {
			s.enterRelax()
		} else if s.phaseTimer >= s.cfg.PeakDuration {
			s.enterPhase(PhaseSustain)
		}
	case PhaseSustain:
		if s.ShouldTriggerBreather() {
			s.enterRelax()
		} else if s.perf.RecentKillCount() >= s.cfg.RapidKillThreshold/2 {
			s.enterPhase(PhasePeak)
		}
	case PhaseRelax:
		if s.phaseTimer >= s.cfg.RelaxDuration {
			s.world.PushEvent(event.EventBreatherEnded, nil)
			s.enterPhase(PhaseBuildUp)
		}
	}

	// Exponential approach toward the per-phase target
	target := s.intensityTarget()
	step := s.cfg.IntensitySmoothRate * dt
	if step > 1 {
		step = 1
	}
	s.intensity += (target - s.intensity) * step

	s.checkHelp()

	s.statIntensity.Set(s.intensity)
	s.statMultiplier.Set(s.DifficultyMultiplier())
}

func (s *DirectorSystem) enterPhase(p Phase) {
	s.phase = p
	s.phaseTimer = 0
	s.statPhase.Store(p.String())
}

func (s *DirectorSystem) enterRelax() {
	s.lastBreatherTime = s.perf.Now()
	s.statBreathers.Add(1)
	s.world.PushEvent(event.EventBreatherStarted, &event.BreatherStartedPayload{Duration: s.cfg.RelaxDuration})
	s.enterPhase(PhaseRelax)
}

func (s *DirectorSystem) intensityTarget() float64 {
	switch s.phase {
	case PhaseBuildUp:
		// Linear ramp across the build-up window
		t := s.phaseTimer / s.cfg.BuildUpDuration
		if t > 1 {
			t = 1
		}
		return parameter.IntensityBuildUpStart + (parameter.IntensityBuildUpEnd-parameter.IntensityBuildUpStart)*t
	case PhasePeak:
		return parameter.IntensityPeak
	case PhaseSustain:
		return parameter.IntensitySustain
	case PhaseRelax:
		return parameter.IntensityRelax
	default:
		return parameter.IntensityBuildUpStart
	}
}

// checkHelp fires a single help request on the rising edge of the help
// condition and re-arms once it clears
func (s *DirectorSystem) checkHelp() {
	should := s.ShouldSpawnHelpPowerUp()
	if should && !s.helpPending {
		s.world.PushEvent(event.EventHelpPowerUpRequest, &event.HelpPowerUpPayload{Reason: s.helpReason()})
	}
	s.helpPending = should
}

func (s *DirectorSystem) helpReason() event.HelpPowerUpReason {
	switch {
	case s.perf.IsCriticalHealth():
		return event.HelpReasonCriticalHealth
	case s.waveOverrun(parameter.DirectorHelpWaveOverrunFactor):
		return event.HelpReasonOverlongWave
	default:
		return event.HelpReasonKillDrought
	}
}

// CurrentWaveDuration returns seconds the active wave has been running,
// 0 when no wave is active
func (s *DirectorSystem) CurrentWaveDuration() float64 {
	if !s.waveActive {
		return 0
	}
	return s.perf.Now() - s.waveStartTime
}

func (s *DirectorSystem) waveOverlong() bool {
	return s.waveOverrun(1)
}

func (s *DirectorSystem) waveOverrun(factor float64) bool {
	return s.waveActive && s.CurrentWaveDuration() > s.cfg.ExpectedWaveDuration*factor
}

func (s *DirectorSystem) killDrought() bool {
	return s.perf.TimeSinceLastKill() > s.cfg.KillDroughtThreshold
}

// Phase returns the current pacing phase
func (s *DirectorSystem) Phase() Phase {
	return s.phase
}

// PhaseTimer returns seconds since the last phase entry
func (s *DirectorSystem) PhaseTimer() float64 {
	return s.phaseTimer
}

// Intensity returns the smoothed 0..1 intensity signal
func (s *DirectorSystem) Intensity() float64 {
	return s.intensity
}

// KillsThisWave returns kills recorded since the active wave started
func (s *DirectorSystem) KillsThisWave() int {
	return s.killsThisWave
}

// ShouldTriggerBreather reports whether a relax phase is earned right now:
// cooldown elapsed and either a rapid-kill streak or an exhausted peak
func (s *DirectorSystem) ShouldTriggerBreather() bool {
	if s.perf.Now()-s.lastBreatherTime < s.cfg.MinTimeBetweenBreathers {
		return false
	}
	if s.perf.RecentKillCount() >= s.cfg.RapidKillThreshold {
		return true
	}
	return s.phase == PhasePeak && s.phaseTimer >= s.cfg.PeakDuration
}

// ShouldSpawnHelpPowerUp reports whether the player needs assistance now
func (s *DirectorSystem) ShouldSpawnHelpPowerUp() bool {
	if s.perf.IsCriticalHealth() {
		return true
	}
	if s.waveOverrun(parameter.DirectorHelpWaveOverrunFactor) {
		return true
	}
	return s.perf.IsLowHealth() && s.killDrought()
}

// DifficultyMultiplier composes the live scaling factor, clamped to
// [DirectorMultiplierMin, DirectorMultiplierMax]
func (s *DirectorSystem) DifficultyMultiplier() float64 {
	m := 1.0

	if s.perf.IsCriticalHealth() {
		m *= parameter.DirectorLowHealthFactor * parameter.DirectorCriticalExtraFactor
	} else if s.perf.IsLowHealth() {
		m *= parameter.DirectorLowHealthFactor
	}

	if s.perf.RecentKillCount() >= s.cfg.RapidKillThreshold/2 && s.perf.HealthPercent() > s.cfg.HighHealthPercent {
		m *= parameter.DirectorHighPerformanceFactor
	}
	if s.phase == PhaseRelax {
		m *= parameter.DirectorRelaxFactor
	}
	if s.waveOverlong() {
		m *= parameter.DirectorOverlongWaveFactor
	}

	if m < parameter.DirectorMultiplierMin {
		return parameter.DirectorMultiplierMin
	}
	if m > parameter.DirectorMultiplierMax {
		return parameter.DirectorMultiplierMax
	}
	return m
}

// PowerUpChanceBonus is the additive drop-chance assistance, clamped to [0, 1]
// Critical health takes precedence over low health; the two never stack
func (s *DirectorSystem) PowerUpChanceBonus() float64 {
	b := 0.0

	if s.perf.IsCriticalHealth() {
		b += s.cfg.CriticalHealthPowerUpBonus
	} else if s.perf.IsLowHealth() {
		b += s.cfg.LowHealthPowerUpBonus
	}

	if s.waveOverlong() {
		b += s.cfg.LowHealthPowerUpBonus * parameter.DirectorOverlongBonusScale
	}
	if s.phase == PhaseRelax {
		b += parameter.DirectorRelaxPowerUpBonus
	}
	if s.killDrought() {
		b += parameter.DirectorDroughtPowerUpBonus
	}

	if b < 0 {
		return 0
	}
	if b > 1 {
		return 1
	}
	return b
}

// SpawnIntervalMultiplier scales the spawner's cadence: slower during
// breathers and low health, faster at a healthy peak
func (s *DirectorSystem) SpawnIntervalMultiplier() float64 {
	switch {
	case s.phase == PhaseRelax:
		return parameter.DirectorRelaxSpawnIntervalMult
	case s.perf.IsLowHealth():
		return parameter.DirectorLowHealthSpawnIntervalMult
	case s.phase == PhasePeak && s.perf.HealthPercent() > s.cfg.HighHealthPercent:
		return parameter.DirectorPeakSpawnIntervalMult
	default:
		return 1.0
	}
}
