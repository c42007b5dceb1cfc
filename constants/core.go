package constants

// Stream geometry
const (
	// TrailMin is the shortest trail in rows
	TrailMin = 5

	// TrailSpan is the random range added to TrailMin, giving trails in [5, 24]
	TrailSpan = 20
)

// Per-stream speed in rows per tick, before the global multiplier
const (
	SpeedBase = 0.4
	SpeedSpan = 1.2
)

// ActivationDivisor scales density into the per-tick chance that an idle
// column starts raining (density / ActivationDivisor)
const ActivationDivisor = 200.0

// Frame pacing
const (
	DefaultFPS = 60
	MinFPS     = 10
	MaxFPS     = 240
)

// Run defaults
const (
	DefaultDensity = 0.25
	DefaultSpeed   = 1.0
)

// EventChanSize buffers terminal events between the poller goroutine and the
// frame loop
const EventChanSize = 256

// RampSteps is the number of precomputed trail intensity levels
const RampSteps = 16
