package linear

import "github.com/YuminosukeSato/golm/pkg/log"

const (
	// defaultRcond は数値的ランクを決める相対閾値
	defaultRcond = 1e-12
	// defaultParallelThreshold は Predict を並列化する行数の下限
	defaultParallelThreshold = 1000
)

// Option is a function that configures OLS
type Option func(*OLS)

// WithRcond sets the relative threshold below which singular values are
// treated as zero when determining the rank.
func WithRcond(rcond float64) Option {
	return func(o *OLS) {
		if rcond >= 0 {
			o.rcond = rcond
		}
	}
}

// WithParallelThreshold sets the row count above which Predict runs in parallel
func WithParallelThreshold(rows int) Option {
	return func(o *OLS) {
		o.parallelThreshold = rows
	}
}

// WithWorkers sets the number of prediction goroutines (0 = one per CPU)
func WithWorkers(n int) Option {
	return func(o *OLS) {
		o.workers = n
	}
}

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return func(o *OLS) {
		o.logger = logger
	}
}
