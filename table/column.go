package table

// Data is the payload of a Column: NumericData once values are final,
// PendingData while a categorical column waits for encoding.
// A column with nil Data has not seen a data row yet.
type Data interface {
	// Len returns the number of rows held.
	Len() int
	isData()
}

// NumericData holds one float64 per row.
type NumericData []float64

// Len implements Data.
func (d NumericData) Len() int { return len(d) }

func (NumericData) isData() {}

// PendingData holds the raw strings of a categorical column in row order.
type PendingData []string

// Len implements Data.
func (d PendingData) Len() int { return len(d) }

func (PendingData) isData() {}

// Column is one named, row-aligned field of a Table.
type Column struct {
	Name string
	// Kind is fixed by the first data row and never changes afterwards.
	Kind Kind
	Data Data
}

// NewNumericColumn returns a numeric column holding values.
func NewNumericColumn(name string, values []float64) *Column {
	return &Column{Name: name, Kind: Numeric, Data: NumericData(values)}
}

// Values returns the numeric values if the column has been finalized.
func (c *Column) Values() ([]float64, bool) {
	d, ok := c.Data.(NumericData)
	return d, ok
}

// Pending returns the buffered raw strings of an unencoded categorical column.
func (c *Column) Pending() ([]string, bool) {
	d, ok := c.Data.(PendingData)
	return d, ok
}

// IsPending reports whether the column still needs encoding.
func (c *Column) IsPending() bool {
	_, ok := c.Data.(PendingData)
	return ok
}

// Table is an ordered sequence of columns sharing one row count.
// Columns[0] is the response and Columns[1] the intercept.
type Table struct {
	Columns []*Column
	Rows    int

	// declared is the predictor count established by the header.
	declared int
	// kinds are the column kinds fixed by the data rows, before encoding.
	kinds []Kind
	// extra is the number of columns added (or removed, if negative) by encoding.
	extra int
}

// Response returns the response column.
func (t *Table) Response() *Column {
	return t.Columns[0]
}

// Predictors returns the number of predictor columns, intercept included.
// After encoding this is the header count plus Extra().
func (t *Table) Predictors() int {
	return len(t.Columns) - 1
}

// Declared returns the predictor count established by the header row.
func (t *Table) Declared() int {
	return t.declared
}

// Extra returns how many columns encoding added to the header count.
func (t *Table) Extra() int {
	return t.extra
}

// Kinds returns the kind of every header column in SplitRow order, as
// fixed before encoding. Pass it to WithKinds to build another partition
// of the same input.
func (t *Table) Kinds() []Kind {
	return append([]Kind(nil), t.kinds...)
}

// Names returns the predictor column names in matrix order.
func (t *Table) Names() []string {
	names := make([]string, 0, t.Predictors())
	for _, c := range t.Columns[1:] {
		names = append(names, c.Name)
	}
	return names
}

// splice replaces the column at index i with cols and returns how many
// columns the replacement added.
func (t *Table) splice(i int, cols []*Column) int {
	tail := append([]*Column(nil), t.Columns[i+1:]...)
	t.Columns = append(append(t.Columns[:i], cols...), tail...)
	return len(cols) - 1
}
