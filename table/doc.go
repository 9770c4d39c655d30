// Package table builds a column-oriented table from comma-delimited text
// and assembles it into a gonum design matrix.
//
// The first input line is the header. Its first field names the response;
// a synthetic all-ones "intercept" column is inserted right after it, so
// column 0 of every Table is the response and column 1 is the intercept.
// Each remaining column is typed by its first data row: numeric fields are
// parsed immediately, categorical fields are buffered as raw strings until
// an Encoder turns them into numeric columns.
//
// Basic usage:
//
//	lines, err := table.ReadLines(os.Stdin)
//	if err != nil {
//		return err
//	}
//	b := table.NewBuilder(table.WithEncoder(enc))
//	t, err := b.Build(lines[0], lines[1:])
//	if err != nil {
//		return err
//	}
//	design, err := table.Assemble(t)
//
// This is not a general CSV parser: fields are split on every comma, with
// no quoting or embedded delimiters.
package table
