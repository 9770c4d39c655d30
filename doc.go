// Package golm fits ordinary least squares models to comma separated
// tables with mixed numeric and categorical columns.
//
// The first column of the table is the response. An all-ones intercept
// column is inserted after it, and every categorical predictor is encoded
// into numbers before the design matrix is assembled.
//
// # Installation
//
//	go install github.com/YuminosukeSato/golm/cmd/lm@latest
//
// # Quick Start
//
//	lm --encoding onehot --test-ratio 0.2 --seed 42 data.csv
//
// or as a library:
//
//	package main
//
//	import (
//	    "log"
//	    "os"
//
//	    "github.com/YuminosukeSato/golm/pipeline"
//	    "github.com/YuminosukeSato/golm/preprocessing"
//	    "github.com/YuminosukeSato/golm/report"
//	)
//
//	func main() {
//	    f, err := os.Open("data.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer f.Close()
//
//	    prep, err := pipeline.Read(f, pipeline.Options{Strategy: preprocessing.MeanTarget})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    m, err := pipeline.Fit(prep, nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    report.WriteCoefficients(os.Stdout, m.Names, m.OLS.Coefficients(), m.PValues)
//	}
//
// # Packages
//
//   - table: line reader, row splitter, type detection, column table builder, matrix assembly
//   - preprocessing: categorical encodings (none, one-hot, mean/median target) and response transforms
//   - partition: reproducible train/held-out row split
//   - pipeline: read, split, encode, assemble, fit and evaluate in one run
//   - linear: OLS backend on gonum with p-values and model diagnostics
//   - metrics: MSE, RMSE, MAE, R²
//   - report: coefficient table, saved weights and encoding state, residual plot
//   - config: viper backed run configuration
//   - core/model, core/parallel: fitted state, persistence, chunked parallel loops
//   - pkg/errors, pkg/log: typed errors and warnings, zerolog based logging
//
// # Encodings
//
// Categories are always sorted lexicographically. Encodings learned on the
// training rows are replayed unchanged on held-out rows, so target
// statistics never see held-out responses.
//
// # License
//
// golm is released under the MIT License.
package golm
