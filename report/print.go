// Package report renders a fitted model as text, writes it to disk and
// draws a residual plot.
package report

import (
	"fmt"
	"io"

	"github.com/YuminosukeSato/golm/linear"
	"github.com/YuminosukeSato/golm/metrics"
	"github.com/YuminosukeSato/golm/pkg/errors"
)

// WriteCoefficients は係数表を書き出す
//
//	Coefficients:
//	             Name	Value		P-Value
//	        intercept	      3.5	0.0814...
func WriteCoefficients(w io.Writer, names []string, coef, pvalues []float64) error {
	if len(names) != len(coef) {
		return errors.NewDimensionError("WriteCoefficients", len(coef), len(names), 0)
	}
	if pvalues != nil && len(pvalues) != len(coef) {
		return errors.NewDimensionError("WriteCoefficients", len(coef), len(pvalues), 0)
	}

	ew := &errWriter{w: w}
	ew.printf("Coefficients:\n")
	ew.printf("%17.17s\tValue\t\tP-Value\n", "Name")
	for i, name := range names {
		p := "-"
		if pvalues != nil {
			p = fmt.Sprintf("%9.9g", pvalues[i])
		}
		ew.printf("%17.17s\t%9.9g\t%s\n", name, coef[i], p)
	}
	return ew.err
}

// WriteDiagnostics はモデル全体の指標を書き出す
func WriteDiagnostics(w io.Writer, d linear.Diagnostics) error {
	ew := &errWriter{w: w}
	ew.printf("Model Diagnostics:\n")
	ew.printf("\tObservations: %d\n", d.N)
	ew.printf("\tRank: %d\n", d.Rank)
	ew.printf("\tR-squared: %g\n", d.RSquared)
	ew.printf("\tAdjusted R-squared: %g\n", d.AdjRSquared)
	ew.printf("\tF-statistic: %g (p-value: %g)\n", d.FStatistic, d.FPValue)
	ew.printf("\tAIC: %g\n", d.AIC)
	ew.printf("\tBIC: %g\n", d.BIC)
	return ew.err
}

// WriteHeldOut は検証データでの誤差を書き出す
func WriteHeldOut(w io.Writer, s metrics.Summary) error {
	ew := &errWriter{w: w}
	ew.printf("Held-out Evaluation:\n")
	ew.printf("\tRows: %d\n", s.N)
	ew.printf("\tMSE: %g\n", s.MSE)
	ew.printf("\tRMSE: %g\n", s.RMSE)
	ew.printf("\tMAE: %g\n", s.MAE)
	ew.printf("\tR-squared: %g\n", s.R2)
	return ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
