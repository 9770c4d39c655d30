package preprocessing

import (
	"fmt"

	"github.com/YuminosukeSato/golm/pkg/errors"
	"github.com/YuminosukeSato/golm/pkg/log"
	"github.com/YuminosukeSato/golm/table"
)

// CategoryEncoder はカテゴリ列を数値列に変換する table.Encoder の実装
//
// NewCategoryEncoder で作成したエンコーダは、渡された列からカテゴリと統計量を学習し、
// State に記録する。NewReplayEncoder で作成したエンコーダは、既存の State を
// そのまま適用し、応答変数は参照しない。
type CategoryEncoder struct {
	strategy Strategy
	state    *EncodingState
	replay   bool
	logger   log.Logger
}

// NewCategoryEncoder は学習用のエンコーダを作成する
//
// 使用例:
//
//	enc := preprocessing.NewCategoryEncoder(preprocessing.MeanTarget)
//	b := table.NewBuilder(table.WithEncoder(enc))
func NewCategoryEncoder(strategy Strategy) *CategoryEncoder {
	return &CategoryEncoder{
		strategy: strategy,
		state:    NewEncodingState(strategy),
		logger:   log.GetLoggerWithName("preprocessing.CategoryEncoder"),
	}
}

// NewReplayEncoder は学習済みの state を再適用するエンコーダを作成する
// state は変更されない。
func NewReplayEncoder(state *EncodingState) *CategoryEncoder {
	return &CategoryEncoder{
		strategy: state.Strategy,
		state:    state,
		replay:   true,
		logger:   log.GetLoggerWithName("preprocessing.CategoryEncoder"),
	}
}

// WithLogger replaces the encoder's logger and returns the encoder.
func (e *CategoryEncoder) WithLogger(logger log.Logger) *CategoryEncoder {
	e.logger = logger
	return e
}

// Strategy returns the encoding strategy.
func (e *CategoryEncoder) Strategy() Strategy {
	return e.strategy
}

// State returns the encoding state learned so far.
func (e *CategoryEncoder) State() *EncodingState {
	return e.state
}

// Encode implements table.Encoder.
func (e *CategoryEncoder) Encode(col *table.Column, response []float64) ([]*table.Column, error) {
	raw, ok := col.Pending()
	if !ok {
		return nil, errors.NewValueError("CategoryEncoder.Encode",
			fmt.Sprintf("column '%s' is not a pending categorical column", col.Name))
	}
	if e.strategy.IsTarget() && !e.replay && len(response) != len(raw) {
		return nil, errors.NewDimensionError("CategoryEncoder.Encode", len(raw), len(response), 0)
	}

	enc, err := e.encoding(col.Name, raw, response)
	if err != nil {
		return nil, err
	}

	var out []*table.Column
	switch e.strategy {
	case OneHot:
		out = e.oneHot(col.Name, raw, enc)
	case MeanTarget, MedianTarget:
		out = []*table.Column{e.target(col.Name, raw, enc)}
	default:
		out = []*table.Column{table.NewNumericColumn(col.Name, make([]float64, len(raw)))}
	}

	e.logger.Debug("categorical column encoded",
		log.ColumnKey, col.Name,
		log.StrategyKey, e.strategy.String(),
		log.CategoriesKey, len(enc.Categories),
		"replay", e.replay,
	)
	return out, nil
}

// encoding は学習時は列から ColumnEncoding を作って State に追加し、
// 再適用時は State から取り出す
func (e *CategoryEncoder) encoding(name string, raw []string, response []float64) (*ColumnEncoding, error) {
	if e.replay {
		enc, ok := e.state.Lookup(name)
		if !ok {
			return nil, errors.NewUnseenColumnError(name)
		}
		return enc, nil
	}

	enc := ColumnEncoding{
		Column:     name,
		Categories: UniqueCategories(raw),
	}
	if e.strategy.IsTarget() {
		statistic := Mean
		if e.strategy == MedianTarget {
			statistic = Median
		}
		groups := groupResponse(raw, response, enc.Categories)
		enc.Statistics = make([]float64, len(groups))
		for k, g := range groups {
			enc.Statistics[k] = statistic(g)
		}
		enc.Fallback = statistic(response)
	}

	e.state.Columns = append(e.state.Columns, enc)
	return &e.state.Columns[len(e.state.Columns)-1], nil
}

// oneHot は参照水準（最後のカテゴリ）を除く k-1 個の指示変数列を作る
func (e *CategoryEncoder) oneHot(name string, raw []string, enc *ColumnEncoding) []*table.Column {
	k := len(enc.Categories)
	if k == 0 {
		return nil
	}

	cols := make([]*table.Column, k-1)
	values := make([][]float64, k-1)
	for j := range cols {
		values[j] = make([]float64, len(raw))
		cols[j] = table.NewNumericColumn(name+"_"+enc.Categories[j], values[j])
	}

	unseen := newUnseenReporter(name)
	for i, v := range raw {
		j, ok := enc.Index(v)
		if !ok {
			unseen.report(v)
			continue
		}
		if j < k-1 {
			values[j][i] = 1
		}
	}
	return cols
}

// target は各行をそのカテゴリの統計量で置き換えた列を作る
func (e *CategoryEncoder) target(name string, raw []string, enc *ColumnEncoding) *table.Column {
	values := make([]float64, len(raw))
	unseen := newUnseenReporter(name)
	for i, v := range raw {
		j, ok := enc.Index(v)
		if !ok {
			unseen.report(v)
			values[i] = enc.Fallback
			continue
		}
		values[i] = enc.Statistics[j]
	}
	return table.NewNumericColumn(name, values)
}

// unseenReporter は未知カテゴリごとに一度だけ警告を出す
type unseenReporter struct {
	column string
	seen   map[string]bool
}

func newUnseenReporter(column string) *unseenReporter {
	return &unseenReporter{column: column, seen: make(map[string]bool)}
}

func (u *unseenReporter) report(category string) {
	if u.seen[category] {
		return
	}
	u.seen[category] = true
	errors.Warn(errors.NewUnseenCategoryWarning(u.column, category))
}
