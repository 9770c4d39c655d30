package table

import (
	"strconv"
	"strings"

	"github.com/YuminosukeSato/golm/pkg/errors"
	"github.com/YuminosukeSato/golm/pkg/log"
)

// Encoder turns one pending categorical column into zero or more numeric
// columns. response holds the numeric response values of the same rows.
// The returned columns replace col in the table, in order.
type Encoder interface {
	Encode(col *Column, response []float64) ([]*Column, error)
}

// Builder は行データから Table を構築する
type Builder struct {
	encoder   Encoder
	kinds     []Kind
	transform func(response []float64) error
	logger    log.Logger
}

// Option は Builder の設定を行う関数型
type Option func(*Builder)

// WithEncoder sets the encoder applied to every categorical column.
// Without one, categorical columns stay pending and Assemble rejects them.
func WithEncoder(enc Encoder) Option {
	return func(b *Builder) {
		b.encoder = enc
	}
}

// WithKinds presets the kind of every header column, in SplitRow order.
// A held-out partition uses the kinds fixed by the training table, so a
// field disagreeing with them takes the type-mismatch path instead of
// retyping the column.
func WithKinds(kinds []Kind) Option {
	return func(b *Builder) {
		b.kinds = append([]Kind(nil), kinds...)
	}
}

// WithResponseTransform sets a function applied in place to the response
// values before any column is encoded, so target encodings see the same
// scale the model is fitted on.
func WithResponseTransform(fn func(response []float64) error) Option {
	return func(b *Builder) {
		b.transform = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder は新しい Builder を作成する
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = log.GetLoggerWithName("table.Builder")
	}
	return b
}

// BuildLines builds a table from lines whose first entry is the header.
func (b *Builder) BuildLines(lines []string) (*Table, error) {
	if len(lines) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "no header line")
	}
	return b.Build(lines[0], lines[1:])
}

// Build builds a table from a header line and data rows, then encodes every
// categorical predictor column.
//
// A row whose field count differs from the header fails with a
// ColumnCountError. A field whose kind disagrees with its column's kind
// raises a TypeMismatchWarning; numeric columns record 0 for it and
// categorical columns keep the raw string.
func (b *Builder) Build(header string, rows []string) (*Table, error) {
	names, declared := SplitRow(header, true)
	if b.kinds != nil && len(b.kinds) != len(names) {
		return nil, errors.NewDimensionError("Builder.Build", len(b.kinds), len(names), 1)
	}

	t := &Table{
		Columns:  make([]*Column, len(names)),
		Rows:     len(rows),
		declared: declared,
	}
	seen := make(map[string]int, len(names))
	for i, name := range names {
		if j, ok := seen[name]; ok {
			return nil, errors.Wrapf(errors.ErrDuplicateColumn, "column '%s' at positions %d and %d", name, j+1, i+1)
		}
		seen[name] = i
		t.Columns[i] = &Column{Name: name, Kind: Unset}
		if b.kinds != nil {
			t.Columns[i].Kind = b.kinds[i]
		}
	}

	for r, line := range rows {
		fields, got := SplitRow(line, false)
		if got != declared {
			// ヘッダーを1行目として数える
			return nil, errors.NewColumnCountError(r+2, declared, got)
		}
		for i, field := range fields {
			t.Columns[i].set(r, field, t.Rows)
		}
	}

	t.kinds = make([]Kind, len(t.Columns))
	for i, c := range t.Columns {
		t.kinds[i] = c.Kind
	}

	if t.Response().Kind == Categorical {
		return nil, errors.Wrapf(errors.ErrCategoricalResponse, "response column '%s'", t.Response().Name)
	}

	if b.transform != nil && t.Rows > 0 {
		y, _ := t.Response().Values()
		if err := b.transform(y); err != nil {
			return nil, errors.Wrapf(err, "transform response '%s'", t.Response().Name)
		}
	}

	if err := b.encode(t); err != nil {
		return nil, err
	}

	b.logger.Debug("table built",
		log.OperationKey, log.OperationBuild,
		log.SamplesKey, t.Rows,
		log.FeaturesKey, t.Predictors(),
		log.ExtraColumnsKey, t.extra,
	)
	return t, nil
}

// set writes field into row r, fixing the column kind on the first data row
// unless it was preset.
func (c *Column) set(r int, field string, rows int) {
	kind := DetectKind(field)
	if c.Kind == Unset {
		c.Kind = kind
	}
	if c.Data == nil {
		if c.Kind == Numeric {
			c.Data = make(NumericData, rows)
		} else {
			c.Data = make(PendingData, 0, rows)
		}
	}

	if kind != c.Kind {
		errors.Warn(errors.NewTypeMismatchWarning(c.Name, r+2, field, c.Kind.String()))
	}

	switch d := c.Data.(type) {
	case NumericData:
		if kind == Numeric {
			// DetectKind が通った文字列は必ず解析できる
			d[r], _ = strconv.ParseFloat(strings.TrimSpace(field), 64)
		}
	case PendingData:
		c.Data = append(d, field)
	}
}

func (b *Builder) encode(t *Table) error {
	if b.encoder == nil {
		return nil
	}

	var response []float64
	if t.Rows > 0 {
		response, _ = t.Response().Values()
	}

	for i := 1; i < len(t.Columns); {
		col := t.Columns[i]
		if !col.IsPending() {
			i++
			continue
		}

		replacement, err := b.encoder.Encode(col, response)
		if err != nil {
			return errors.Wrapf(err, "encode column '%s'", col.Name)
		}
		extra := t.splice(i, replacement)
		t.extra += extra

		b.logger.Debug("column encoded",
			log.OperationKey, log.OperationEncode,
			log.ColumnKey, col.Name,
			log.ExtraColumnsKey, extra,
		)
		i += len(replacement)
	}
	return nil
}
