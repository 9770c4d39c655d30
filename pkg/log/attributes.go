// Package log defines standard attribute keys for golm operations.
//
// Keys follow a hierarchical naming convention (e.g. "ml.operation",
// "data.samples") so that records from the table builder, the encoders and
// the model backend can be filtered together.

package log

// Operation context
const (
	// ComponentKey identifies which package is logging.
	// Examples: "table", "preprocessing", "pipeline", "linear"
	ComponentKey = "ml.component"

	// OperationKey specifies the operation being performed.
	OperationKey = "ml.operation"

	// PhaseKey indicates which partition is being processed.
	// Values: PhaseTraining, PhaseTesting
	PhaseKey = "ml.phase"

	// ModelNameKey identifies the model backend.
	ModelNameKey = "model.name"

	// RunIDKey is a unique identifier attached to every record of one run.
	RunIDKey = "run.id"
)

// Data shape
const (
	// SamplesKey indicates the number of data rows.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of predictor columns, intercept included.
	FeaturesKey = "data.features"

	// LinesKey indicates the number of raw input lines, header included.
	LinesKey = "data.lines"

	// ColumnKey names the column a record refers to.
	ColumnKey = "column.name"

	// CategoriesKey records the number of distinct categories in a column.
	CategoriesKey = "column.categories"

	// ExtraColumnsKey records how many columns an encoding added.
	ExtraColumnsKey = "column.extra"
)

// Configuration
const (
	// StrategyKey records the category encoding strategy.
	StrategyKey = "encoding.strategy"

	// TestRatioKey records the requested held-out fraction.
	TestRatioKey = "config.test_ratio"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"

	// PathKey records a file written by the run.
	PathKey = "output.path"

	// TransformKey records the response transform.
	TransformKey = "config.transform"
)

// Metrics
const (
	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// RMSEKey records the root mean squared error on held-out data.
	RMSEKey = "metrics.rmse"

	// RankKey records the numerical rank of the design matrix.
	RankKey = "model.rank"
)

// Error context
const (
	// ErrorKey carries the error value itself.
	ErrorKey = "error"

	// StacktraceKey contains stack trace information extracted from
	// cockroachdb/errors values.
	StacktraceKey = "stacktrace"
)

// Standard attribute values.
const (
	OperationRead     = "read"
	OperationSplit    = "split"
	OperationBuild    = "build"
	OperationEncode   = "encode"
	OperationAssemble = "assemble"
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationScore    = "score"

	PhaseTraining = "training"
	PhaseTesting  = "testing"
)
