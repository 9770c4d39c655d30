package preprocessing

// ColumnEncoding は1つのカテゴリ列について学習した内容
type ColumnEncoding struct {
	// Column is the header name of the original categorical column.
	Column string `json:"column"`

	// Categories are the distinct training values in lexicographic order.
	Categories []string `json:"categories"`

	// Statistics holds one response statistic per category (target
	// encodings only), parallel to Categories.
	Statistics []float64 `json:"statistics,omitempty"`

	// Fallback is the statistic over the whole training response, used for
	// categories that never occurred during training.
	Fallback float64 `json:"fallback,omitempty"`
}

// Index returns the position of category in Categories.
func (c *ColumnEncoding) Index(category string) (int, bool) {
	return indexOf(c.Categories, category)
}

// EncodingState records what a CategoryEncoder learned from the training
// partition so the identical encoding can be replayed on held-out data.
// Columns appear in the order they were encoded.
type EncodingState struct {
	Strategy Strategy         `json:"strategy"`
	Columns  []ColumnEncoding `json:"columns"`
}

// NewEncodingState returns an empty state for strategy.
func NewEncodingState(strategy Strategy) *EncodingState {
	return &EncodingState{Strategy: strategy}
}

// Lookup returns the learned encoding of the named column.
func (s *EncodingState) Lookup(column string) (*ColumnEncoding, bool) {
	for i := range s.Columns {
		if s.Columns[i].Column == column {
			return &s.Columns[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy.
func (s *EncodingState) Clone() *EncodingState {
	out := &EncodingState{
		Strategy: s.Strategy,
		Columns:  make([]ColumnEncoding, len(s.Columns)),
	}
	for i, c := range s.Columns {
		out.Columns[i] = ColumnEncoding{
			Column:     c.Column,
			Categories: append([]string(nil), c.Categories...),
			Statistics: append([]float64(nil), c.Statistics...),
			Fallback:   c.Fallback,
		}
	}
	return out
}
