// Package pipeline wires the table builder, the category encoders, the
// train/test partition and the OLS backend into one run.
//
// Prepare turns raw lines into assembled design matrices. The held-out
// partition is always encoded with the EncodingState learned from the
// training partition. Fit then estimates the model and evaluates it.
package pipeline

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/google/uuid"

	"github.com/YuminosukeSato/golm/partition"
	"github.com/YuminosukeSato/golm/pkg/errors"
	"github.com/YuminosukeSato/golm/pkg/log"
	"github.com/YuminosukeSato/golm/preprocessing"
	"github.com/YuminosukeSato/golm/table"
)

// Options configures a run.
type Options struct {
	Strategy  preprocessing.Strategy
	Transform preprocessing.Transform
	// TestRatio is the fraction of data rows held out. Values outside
	// [0,1] hold nothing out.
	TestRatio float64
	// Rand drives the partition. Nil holds nothing out.
	Rand *rand.Rand
	// RunID tags every log record; a random UUID is used when empty.
	RunID  string
	Logger log.Logger
}

// Prepared は学習用と検証用の設計行列
type Prepared struct {
	RunID string

	Train *table.Design
	// Test is nil when no rows were held out.
	Test *table.Design

	// State is the encoding learned from the training partition.
	State *preprocessing.EncodingState

	// Declared is the predictor count from the header, Extra the number of
	// columns encoding added to it.
	Declared int
	Extra    int

	// Kinds are the column kinds fixed by the training rows, response and
	// intercept included.
	Kinds []table.Kind

	Transform preprocessing.Transform
}

func (o *Options) normalize() {
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}
	if o.Logger == nil {
		o.Logger = log.GetLoggerWithName("pipeline")
	}
	o.Logger = o.Logger.With(log.RunIDKey, o.RunID)
}

// Read reads r and prepares it.
func Read(r io.Reader, opts Options) (*Prepared, error) {
	lines, err := table.ReadLines(r)
	if err != nil {
		return nil, err
	}
	return Prepare(lines, opts)
}

// Prepare はヘッダー行を含む lines から設計行列を組み立てる
//
// 手順: 分割 → 学習側の構築とエンコード → 検証側の構築と再適用 → 行列化。
// 学習側の行数がエンコード後の列数に満たない場合は InsufficientRowsError。
func Prepare(lines []string, opts Options) (*Prepared, error) {
	opts.normalize()
	logger := opts.Logger

	if len(lines) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "no header line")
	}
	header, rows := lines[0], lines[1:]
	logger.Info("input read",
		log.OperationKey, log.OperationRead,
		log.LinesKey, len(lines),
	)

	split := partition.SplitRows(rows, opts.TestRatio, opts.Rand)
	logger.Info("rows partitioned",
		log.OperationKey, log.OperationSplit,
		log.TestRatioKey, opts.TestRatio,
		"train", len(split.Train),
		"held_out", len(split.HeldOut),
	)

	encoder := preprocessing.NewCategoryEncoder(opts.Strategy).WithLogger(logger)
	train, err := buildDesign(header, split.Train, encoder, nil, opts, log.PhaseTraining)
	if err != nil {
		return nil, err
	}

	prep := &Prepared{
		RunID:     opts.RunID,
		Train:     train.design,
		State:     encoder.State(),
		Declared:  train.table.Declared(),
		Extra:     train.table.Extra(),
		Kinds:     train.table.Kinds(),
		Transform: opts.Transform,
	}

	if len(split.HeldOut) > 0 {
		replay := preprocessing.NewReplayEncoder(prep.State).WithLogger(logger)
		test, err := buildDesign(header, split.HeldOut, replay, prep.Kinds, opts, log.PhaseTesting)
		if err != nil {
			return nil, errors.Wrap(err, "held-out partition")
		}
		if err := sameColumns(prep.Train.Names, test.design.Names); err != nil {
			return nil, err
		}
		prep.Test = test.design
	}

	return prep, nil
}

type built struct {
	table  *table.Table
	design *table.Design
}

// buildDesign builds one partition. kinds is nil for the training
// partition; the held-out partition reuses the training kinds.
func buildDesign(header string, rows []string, enc table.Encoder, kinds []table.Kind, opts Options, phase string) (*built, error) {
	logger := opts.Logger.With(log.PhaseKey, phase)

	builderOpts := []table.Option{
		table.WithEncoder(enc),
		table.WithResponseTransform(opts.Transform.Apply),
		table.WithLogger(logger),
	}
	if kinds != nil {
		builderOpts = append(builderOpts, table.WithKinds(kinds))
	}
	b := table.NewBuilder(builderOpts...)
	t, err := b.Build(header, rows)
	if err != nil {
		return nil, err
	}

	if phase == log.PhaseTraining && t.Rows < t.Predictors() {
		return nil, errors.NewInsufficientRowsError(t.Rows, t.Predictors())
	}

	d, err := table.Assemble(t)
	if err != nil {
		return nil, err
	}

	logger.Info("design assembled",
		log.OperationKey, log.OperationAssemble,
		log.StrategyKey, opts.Strategy.String(),
		log.SamplesKey, t.Rows,
		log.FeaturesKey, t.Predictors(),
		log.ExtraColumnsKey, t.Extra(),
	)
	return &built{table: t, design: d}, nil
}

// sameColumns は検証側の列が学習側と同じ名前・同じ順序であることを確認する
func sameColumns(train, test []string) error {
	if len(test) != len(train) {
		return errors.NewDimensionError("Prepare", len(train), len(test), 1)
	}
	for i := range train {
		if train[i] != test[i] {
			return errors.NewValueError("Prepare",
				fmt.Sprintf("held-out column %d is '%s', training has '%s'", i, test[i], train[i]))
		}
	}
	return nil
}
