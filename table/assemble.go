package table

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/golm/pkg/errors"
)

// Design is an assembled design matrix with its response.
type Design struct {
	// X is rows × predictors, intercept in column 0.
	X *mat.Dense
	// Y is the response vector.
	Y *mat.VecDense
	// Names labels the columns of X.
	Names []string
	// Response is the name of the response column.
	Response string
}

// Assemble copies the predictor columns of t into a new matrix, in table
// order, skipping the response column.
//
// Every predictor column must hold numeric values. A column still pending
// encoding is an AssemblyError rather than a column of zeros.
func Assemble(t *Table) (*Design, error) {
	if t == nil || t.Rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "assemble: table has no rows")
	}
	p := t.Predictors()
	if p == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "assemble: table has no predictor columns")
	}

	y, ok := t.Response().Values()
	if !ok {
		return nil, errors.NewAssemblyError(t.Response().Name, "response is not numeric")
	}

	X := mat.NewDense(t.Rows, p, nil)
	for j, col := range t.Columns[1:] {
		values, ok := col.Values()
		if !ok {
			reason := "column has no values"
			if col.IsPending() {
				reason = "column still holds unencoded categorical values"
			}
			return nil, errors.NewAssemblyError(col.Name, reason)
		}
		if len(values) != t.Rows {
			return nil, errors.NewDimensionError("Assemble", t.Rows, len(values), 0)
		}
		X.SetCol(j, values)
	}

	return &Design{
		X:        X,
		Y:        mat.NewVecDense(t.Rows, append([]float64(nil), y...)),
		Names:    t.Names(),
		Response: t.Response().Name,
	}, nil
}
