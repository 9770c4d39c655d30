package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

func fittedNoisy(t *testing.T) (*OLS, *mat.VecDense) {
	t.Helper()
	y := mat.NewVecDense(4, []float64{6, 5, 7, 10})
	ols := quietOLS()
	if err := ols.Fit(design([]float64{1, 2, 3, 4}), y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	return ols, y
}

func TestPValues(t *testing.T) {
	ols, _ := fittedNoisy(t)

	p, err := ols.PValues()
	if err != nil {
		t.Fatalf("PValues() error = %v", err)
	}

	se, _ := ols.StandardErrors()
	tStat := 1.4 / se[1]
	want := 2 * distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 2}.Survival(tStat)
	if math.Abs(p[1]-want) > 1e-12 {
		t.Errorf("p[1] = %v, want %v", p[1], want)
	}
	for i, v := range p {
		if v < 0 || v > 1 {
			t.Errorf("p[%d] = %v out of [0,1]", i, v)
		}
	}
}

func TestPValuesZeroDegreesOfFreedom(t *testing.T) {
	ols := quietOLS()
	if err := ols.Fit(design([]float64{1, 2}), mat.NewVecDense(2, []float64{1, 3})); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	p, err := ols.PValues()
	if err != nil {
		t.Fatalf("PValues() error = %v", err)
	}
	for i, v := range p {
		if !math.IsNaN(v) {
			t.Errorf("p[%d] = %v, want NaN", i, v)
		}
	}
}

func TestDiagnose(t *testing.T) {
	ols, y := fittedNoisy(t)

	d, err := ols.Diagnose(y)
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}

	// TSS = 14, RSS = 4.2
	wantR2 := 1 - 4.2/14
	if math.Abs(d.RSquared-wantR2) > 1e-9 {
		t.Errorf("R² = %v, want %v", d.RSquared, wantR2)
	}
	wantAdj := 1 - (1-wantR2)*3/2
	if math.Abs(d.AdjRSquared-wantAdj) > 1e-9 {
		t.Errorf("adjusted R² = %v, want %v", d.AdjRSquared, wantAdj)
	}
	wantF := (14 - 4.2) / (4.2 / 2)
	if math.Abs(d.FStatistic-wantF) > 1e-9 {
		t.Errorf("F = %v, want %v", d.FStatistic, wantF)
	}
	if d.FPValue <= 0 || d.FPValue >= 1 {
		t.Errorf("F p-value = %v out of (0,1)", d.FPValue)
	}

	ll := -2.0 * (math.Log(2*math.Pi) + math.Log(4.2/4) + 1)
	if math.Abs(d.AIC-(6-2*ll)) > 1e-9 {
		t.Errorf("AIC = %v, want %v", d.AIC, 6-2*ll)
	}
	if math.Abs(d.BIC-(3*math.Log(4)-2*ll)) > 1e-9 {
		t.Errorf("BIC = %v, want %v", d.BIC, 3*math.Log(4)-2*ll)
	}
}

func TestDiagnoseNotFitted(t *testing.T) {
	if _, err := quietOLS().Diagnose(mat.NewVecDense(1, nil)); err == nil {
		t.Error("expected NotFittedError")
	}
}
