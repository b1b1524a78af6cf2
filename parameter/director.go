package parameter

// Intensity Phase Machine
const (
	// DirectorBuildUpDuration is the time-based BuildUp -> Peak transition (seconds)
	DirectorBuildUpDuration = 15.0

	// DirectorPeakDuration is the default sustained-peak length before
	// easing into Sustain or a breather (seconds)
	DirectorPeakDuration = 20.0

	// DirectorRelaxDuration is the default breather length (seconds)
	DirectorRelaxDuration = 8.0

	// DirectorMinTimeBetweenBreathers is the breather cooldown (seconds)
	DirectorMinTimeBetweenBreathers = 45.0

	// DirectorRapidKillThreshold is kills inside the tracking window that
	// count as a rapid streak
	DirectorRapidKillThreshold = 10

	// DirectorKillTrackingWindow is the rolling kill window (seconds)
	DirectorKillTrackingWindow = 10.0

	// DirectorKillDroughtThreshold is seconds without a kill that count
	// as a drought
	DirectorKillDroughtThreshold = 12.0

	// DirectorExpectedWaveDuration is the nominal wave length used by the
	// overlong-wave checks (seconds)
	DirectorExpectedWaveDuration = 45.0

	// DirectorIntensitySmoothRate is the exponential approach rate toward
	// the per-phase intensity target (1/seconds)
	DirectorIntensitySmoothRate = 2.0
)

// Intensity Targets
const (
	IntensityBuildUpStart = 0.3
	IntensityBuildUpEnd   = 0.7
	IntensityPeak         = 1.0
	IntensitySustain      = 0.7
	IntensityRelax        = 0.2
)

// Health Thresholds
const (
	// DirectorLowHealthPercent marks the low-health regime
	DirectorLowHealthPercent = 0.4

	// DirectorCriticalHealthPercent marks the critical regime
	DirectorCriticalHealthPercent = 0.2

	// DirectorHighHealthPercent is the "doing fine" cutoff used by the
	// high-performance and peak-pressure checks
	DirectorHighHealthPercent = 0.7
)

// Power-Up Assistance
const (
	// DirectorLowHealthPowerUpBonus is added to drop chance at low health
	DirectorLowHealthPowerUpBonus = 0.1

	// DirectorCriticalHealthPowerUpBonus is added instead at critical health
	DirectorCriticalHealthPowerUpBonus = 0.25
)

// Difficulty Multiplier Bounds
const (
	DirectorMultiplierMin = 0.5
	DirectorMultiplierMax = 1.5
)

// Multiplier Composition Factors
const (
	// DirectorLowHealthFactor eases difficulty below the low threshold
	DirectorLowHealthFactor = 0.7

	// DirectorCriticalExtraFactor stacks on the low factor at critical health
	DirectorCriticalExtraFactor = 0.8

	// DirectorHighPerformanceFactor raises difficulty for a healthy player
	// on a kill streak
	DirectorHighPerformanceFactor = 1.2

	// DirectorRelaxFactor eases difficulty during a breather
	DirectorRelaxFactor = 0.6

	// DirectorOverlongWaveFactor eases difficulty once a wave has outlived
	// its expected duration
	DirectorOverlongWaveFactor = 0.8
)

// Power-Up Bonus Composition
const (
	DirectorRelaxPowerUpBonus   = 0.1
	DirectorDroughtPowerUpBonus = 0.1

	// DirectorOverlongBonusScale scales the low-health bonus when a wave
	// runs past its expected duration
	DirectorOverlongBonusScale = 1.5

	// DirectorHelpWaveOverrunFactor is the wave-duration overrun (relative
	// to expected) that triggers help on its own
	DirectorHelpWaveOverrunFactor = 1.5
)

// Spawn Cadence Multipliers
const (
	DirectorRelaxSpawnIntervalMult     = 1.5
	DirectorLowHealthSpawnIntervalMult = 1.25
	DirectorPeakSpawnIntervalMult      = 0.85
)
