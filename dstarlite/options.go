package dstarlite

import "github.com/pcannon67/robotics-d-star-lite/numeric"

// defaultMaxSteps caps the repair loop so a malformed adapter or an
// unreachable goal fails fast instead of spinning forever. 10^6 is
// sufficient for grids up to roughly 10^4 cells.
const defaultMaxSteps = 1_000_000

// Logger is the minimal trace hook the engine calls into when
// installed via WithLogger. The core package never imports a logging
// library itself — a host wires a concrete logger (e.g. backed by
// charmbracelet/log, as cmd/dstarlite-demo does) through this
// interface.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// MetricsRecorder is the minimal instrumentation hook the engine calls
// into when installed via WithMetrics. A host wires a concrete
// recorder (e.g. backed by prometheus/client_golang, as package
// metrics does) through this interface.
type MetricsRecorder interface {
	// ObserveComputeIteration is called once per repair-loop
	// iteration.
	ObserveComputeIteration()
	// ObserveReplan is called once per Replan call with the outcome
	// and the number of _compute iterations it took.
	ObserveReplan(success bool, steps int)
}

// Options configures a Planner's tunable behaviour. Construct one via
// DefaultOptions and a sequence of Option values.
type Options struct {
	Epsilon  float64
	MaxSteps int
	Logger   Logger
	Metrics  MetricsRecorder
}

// DefaultOptions returns the Options a Planner uses when no Option
// overrides are supplied: epsilon = numeric.Epsilon, MaxSteps =
// 1,000,000, no logger, no metrics.
func DefaultOptions() Options {
	return Options{
		Epsilon:  numeric.Epsilon,
		MaxSteps: defaultMaxSteps,
	}
}

// Option is a functional option for New.
type Option func(*Options)

// WithEpsilon overrides the default tolerance used by every float
// comparison inside the planner. Panics if eps <= 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic(ErrInvalidOption.Error())
		}
		o.Epsilon = eps
	}
}

// WithMaxSteps overrides the default _compute iteration cap. Panics if
// n <= 0.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrInvalidOption.Error())
		}
		o.MaxSteps = n
	}
}

// WithLogger installs a trace hook called once per _compute iteration
// and once per Update call.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetrics installs an instrumentation hook called once per
// _compute iteration and once per Replan call.
func WithMetrics(m MetricsRecorder) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
