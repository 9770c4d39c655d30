package linear

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/golm/core/model"
	"github.com/YuminosukeSato/golm/core/parallel"
	"github.com/YuminosukeSato/golm/metrics"
	"github.com/YuminosukeSato/golm/pkg/errors"
	"github.com/YuminosukeSato/golm/pkg/log"
)

// OLS は最小二乗法による線形回帰モデル
//
// X には切片列が既に含まれている前提で、y = Xβ を特異値分解で解く。
// ランク落ちした X でも最小ノルム解を返す。
type OLS struct {
	model.BaseEstimator

	// Coef は係数（X の列と同じ順序）
	Coef *mat.VecDense
	// Cov は係数の分散共分散行列 σ²(XᵀX)⁺
	Cov *mat.SymDense
	// ChiSq は残差平方和
	ChiSq float64
	// Rank は X の数値的ランク
	Rank int

	rcond             float64
	parallelThreshold int
	workers           int
	logger            log.Logger
}

// NewOLS は新しい OLS モデルを作成する
//
// 使用例:
//
//	ols := linear.NewOLS(linear.WithRcond(1e-12))
//	if err := ols.Fit(design.X, design.Y); err != nil {
//		return err
//	}
func NewOLS(opts ...Option) *OLS {
	o := &OLS{
		rcond:             defaultRcond,
		parallelThreshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.GetLoggerWithName("linear.OLS")
	}
	return o
}

// Fit はモデルを学習する
// 行数が列数より少ない場合は InsufficientRowsError を返す。
func (o *OLS) Fit(X mat.Matrix, y mat.Vector) (err error) {
	defer errors.Recover(&err, "OLS.Fit")

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("OLS.Fit", "empty data", errors.ErrEmptyData)
	}
	if y.Len() != r {
		return errors.NewDimensionError("OLS.Fit", r, y.Len(), 0)
	}
	if r < c {
		return errors.NewInsufficientRowsError(r, c)
	}

	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDThin); !ok {
		return errors.NewModelError("OLS.Fit", "SVD did not converge", errors.ErrSingularMatrix)
	}
	rank := svd.Rank(o.rcond)
	if rank == 0 {
		return errors.NewModelError("OLS.Fit", "design matrix is zero", errors.ErrSingularMatrix)
	}

	coef := mat.NewVecDense(c, nil)
	svd.SolveVecTo(coef, y, rank)

	// 残差平方和
	var fitted mat.VecDense
	fitted.MulVec(X, coef)
	var resid mat.VecDense
	resid.SubVec(y, &fitted)
	chisq := mat.Dot(&resid, &resid)

	// 分散共分散行列: σ² V_r Σ_r⁻² V_rᵀ
	dof := r - rank
	sigma2 := math.NaN()
	if dof > 0 {
		sigma2 = chisq / float64(dof)
	}
	var v mat.Dense
	svd.VTo(&v)
	s := svd.Values(nil)
	cov := mat.NewSymDense(c, nil)
	for i := 0; i < c; i++ {
		for j := i; j < c; j++ {
			var sum float64
			for k := 0; k < rank; k++ {
				sum += v.At(i, k) * v.At(j, k) / (s[k] * s[k])
			}
			cov.SetSym(i, j, sigma2*sum)
		}
	}

	if err := errors.CheckNumericalStability("OLS.Fit", coef.RawVector().Data); err != nil {
		return err
	}
	if err := errors.CheckScalar("OLS.Fit", chisq); err != nil {
		return err
	}

	o.Coef = coef
	o.Cov = cov
	o.ChiSq = chisq
	o.Rank = rank
	o.SetFitted(r, c)

	o.logger.Info("model fitted",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.RankKey, rank,
	)
	return nil
}

// Predict は入力データに対する予測を行う
func (o *OLS) Predict(X mat.Matrix) (*mat.VecDense, error) {
	if !o.IsFitted() {
		return nil, errors.NewNotFittedError("OLS", "Predict")
	}

	r, c := X.Dims()
	if _, p := o.Dims(); c != p {
		return nil, errors.NewDimensionError("OLS.Predict", p, c, 1)
	}

	pred := make([]float64, r)
	coef := o.Coef.RawVector().Data
	parallel.ChunksAbove(r, o.parallelThreshold, o.workers, func(start, end int) {
		row := make([]float64, c)
		for i := start; i < end; i++ {
			mat.Row(row, i, X)
			pred[i] = floats.Dot(row, coef)
		}
	})

	return mat.NewVecDense(r, pred), nil
}

// Score は決定係数（R²）を返す
func (o *OLS) Score(X mat.Matrix, y mat.Vector) (float64, error) {
	pred, err := o.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(y, pred)
}

// Coefficients は係数をスライスで返す
func (o *OLS) Coefficients() []float64 {
	if o.Coef == nil {
		return nil
	}
	return append([]float64(nil), o.Coef.RawVector().Data...)
}

// DegreesOfFreedom は残差の自由度 n - rank を返す
func (o *OLS) DegreesOfFreedom() int {
	n, _ := o.Dims()
	return n - o.Rank
}
