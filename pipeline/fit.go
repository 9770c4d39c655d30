package pipeline

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/golm/linear"
	"github.com/YuminosukeSato/golm/metrics"
	"github.com/YuminosukeSato/golm/pkg/log"
)

// Model は学習結果と評価結果
type Model struct {
	OLS         *linear.OLS
	Names       []string
	Response    string
	PValues     []float64
	Diagnostics linear.Diagnostics

	// Fitted and Residuals are on the transformed (modelled) scale.
	Fitted    *mat.VecDense
	Residuals *mat.VecDense

	// HeldOut is nil when the run had no held-out rows. Its metrics are on
	// the original response scale.
	HeldOut *metrics.Summary
	// Predictions are the held-out predictions on the original scale.
	Predictions *mat.VecDense
}

// Fit は学習用の設計行列で OLS を推定し、検証用があれば評価する
func Fit(prep *Prepared, logger log.Logger, opts ...linear.Option) (*Model, error) {
	if logger == nil {
		logger = log.GetLoggerWithName("pipeline")
	}
	logger = logger.With(log.RunIDKey, prep.RunID)

	ols := linear.NewOLS(append([]linear.Option{linear.WithLogger(logger)}, opts...)...)
	if err := ols.Fit(prep.Train.X, prep.Train.Y); err != nil {
		return nil, err
	}

	pvalues, err := ols.PValues()
	if err != nil {
		return nil, err
	}
	diag, err := ols.Diagnose(prep.Train.Y)
	if err != nil {
		return nil, err
	}
	fitted, err := ols.Predict(prep.Train.X)
	if err != nil {
		return nil, err
	}
	var resid mat.VecDense
	resid.SubVec(prep.Train.Y, fitted)

	m := &Model{
		OLS:         ols,
		Names:       prep.Train.Names,
		Response:    prep.Train.Response,
		PValues:     pvalues,
		Diagnostics: diag,
		Fitted:      fitted,
		Residuals:   &resid,
	}

	if prep.Test != nil {
		pred, err := ols.Predict(prep.Test.X)
		if err != nil {
			return nil, err
		}
		truth := mat.VecDenseCopyOf(prep.Test.Y)
		prep.Transform.Inverse(truth.RawVector().Data)
		prep.Transform.Inverse(pred.RawVector().Data)

		summary, err := metrics.Evaluate(truth, pred)
		if err != nil {
			return nil, err
		}
		m.HeldOut = &summary
		m.Predictions = pred

		logger.Info("held-out evaluation",
			log.OperationKey, log.OperationScore,
			log.PhaseKey, log.PhaseTesting,
			log.SamplesKey, summary.N,
			log.RMSEKey, summary.RMSE,
			log.R2ScoreKey, summary.R2,
		)
	}

	return m, nil
}
