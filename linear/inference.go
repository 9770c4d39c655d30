package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/golm/pkg/errors"
)

// StandardErrors returns sqrt(Cov[i,i]) for each coefficient.
func (o *OLS) StandardErrors() ([]float64, error) {
	if !o.IsFitted() {
		return nil, errors.NewNotFittedError("OLS", "StandardErrors")
	}
	_, p := o.Dims()
	se := make([]float64, p)
	for i := range se {
		se[i] = math.Sqrt(o.Cov.At(i, i))
	}
	return se, nil
}

// PValues は各係数の両側 t 検定の p 値を返す
//
// 自由度は n - rank。自由度が 0 の場合と、係数と標準誤差がともに 0 の場合は NaN になる。
func (o *OLS) PValues() ([]float64, error) {
	se, err := o.StandardErrors()
	if err != nil {
		return nil, err
	}

	dof := o.DegreesOfFreedom()
	p := make([]float64, len(se))
	if dof <= 0 {
		for i := range p {
			p[i] = math.NaN()
		}
		return p, nil
	}

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}
	for i, s := range se {
		t := math.Abs(o.Coef.AtVec(i) / s)
		if math.IsNaN(t) {
			p[i] = math.NaN()
			continue
		}
		p[i] = 2 * dist.Survival(t)
	}
	return p, nil
}

// Diagnostics はモデル全体の当てはまりの指標
type Diagnostics struct {
	N    int `json:"n"`
	Rank int `json:"rank"`

	RSquared    float64 `json:"r_squared"`
	AdjRSquared float64 `json:"adj_r_squared"`
	FStatistic  float64 `json:"f_statistic"`
	// FPValue は F 統計量の上側確率
	FPValue float64 `json:"f_p_value"`
	AIC     float64 `json:"aic"`
	BIC     float64 `json:"bic"`
	// LogLikelihood は正規誤差を仮定した対数尤度
	LogLikelihood float64 `json:"log_likelihood"`
}

// Diagnose は学習データ y に対する決定係数、F 統計量、AIC、BIC を計算する
//
// 説明変数の数は rank - 1（切片を除く）とみなす。定義できない値は NaN。
func (o *OLS) Diagnose(y mat.Vector) (Diagnostics, error) {
	if !o.IsFitted() {
		return Diagnostics{}, errors.NewNotFittedError("OLS", "Diagnose")
	}
	n, _ := o.Dims()
	if y.Len() != n {
		return Diagnostics{}, errors.NewDimensionError("OLS.Diagnose", n, y.Len(), 0)
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = y.AtVec(i)
	}
	mean := stat.Mean(values, nil)
	var tss float64
	for _, v := range values {
		tss += (v - mean) * (v - mean)
	}

	rss := o.ChiSq
	nf := float64(n)
	dfModel := float64(o.Rank - 1)
	dfResid := float64(n - o.Rank)

	d := Diagnostics{N: n, Rank: o.Rank}
	d.RSquared = ratioOrNaN(tss-rss, tss)
	d.AdjRSquared = 1 - (1-d.RSquared)*ratioOrNaN(nf-1, dfResid)
	d.FStatistic = ratioOrNaN(ratioOrNaN(tss-rss, dfModel), ratioOrNaN(rss, dfResid))
	d.FPValue = math.NaN()
	if dfModel > 0 && dfResid > 0 && !math.IsNaN(d.FStatistic) {
		d.FPValue = distuv.F{D1: dfModel, D2: dfResid}.Survival(d.FStatistic)
	}

	// 誤差分散も推定するのでパラメータ数は rank + 1
	d.LogLikelihood = -nf / 2 * (math.Log(2*math.Pi) + math.Log(rss/nf) + 1)
	k := float64(o.Rank + 1)
	d.AIC = 2*k - 2*d.LogLikelihood
	d.BIC = k*math.Log(nf) - 2*d.LogLikelihood

	return d, nil
}

func ratioOrNaN(num, den float64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return num / den
}
