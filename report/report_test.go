package report

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/golm/linear"
	"github.com/YuminosukeSato/golm/metrics"
	"github.com/YuminosukeSato/golm/preprocessing"
)

func TestWriteCoefficients(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCoefficients(&buf, []string{"intercept", "a_very_long_column_name_indeed"}, []float64{3.5, 1.4}, []float64{0.08, math.NaN()})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Coefficients:", lines[0])
	assert.Equal(t, "             Name\tValue\t\tP-Value", lines[1])
	assert.Equal(t, "        intercept\t      3.5\t     0.08", lines[2])
	// 名前は 17 文字で切り詰められる
	assert.True(t, strings.HasPrefix(lines[3], "a_very_long_colum\t"))
	assert.Contains(t, lines[3], "NaN")
}

func TestWriteCoefficientsWithoutPValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCoefficients(&buf, []string{"x"}, []float64{2}, nil))
	assert.Contains(t, buf.String(), "\t-\n")
}

func TestWriteCoefficientsMismatch(t *testing.T) {
	assert.Error(t, WriteCoefficients(&bytes.Buffer{}, []string{"x"}, []float64{1, 2}, nil))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrors(t *testing.T) {
	assert.Error(t, WriteDiagnostics(failWriter{}, linear.Diagnostics{}))
	assert.Error(t, WriteHeldOut(failWriter{}, metrics.Summary{}))
}

func TestWriteDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDiagnostics(&buf, linear.Diagnostics{N: 10, Rank: 2, RSquared: 0.7, AdjRSquared: 0.55, FStatistic: 4.6, FPValue: 0.16, AIC: 17.2, BIC: 15.4}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Model Diagnostics:\n"))
	assert.Contains(t, out, "\tR-squared: 0.7\n")
	assert.Contains(t, out, "\tAdjusted R-squared: 0.55\n")
	assert.Contains(t, out, "\tAIC: 17.2\n")
	assert.Contains(t, out, "\tBIC: 15.4\n")
}

func TestSaveCoefficients(t *testing.T) {
	base := filepath.Join(t.TempDir(), "model")
	require.NoError(t, SaveCoefficients(base, []string{"intercept", "x"}, []float64{3.5, 1.4}))

	data, err := os.ReadFile(base + CoefExt)
	require.NoError(t, err)
	assert.Equal(t, "intercept\t3.5\nx\t1.4\n", string(data))
}

func testState() *preprocessing.EncodingState {
	return &preprocessing.EncodingState{
		Strategy: preprocessing.MeanTarget,
		Columns: []preprocessing.ColumnEncoding{
			{Column: "c", Categories: []string{"a", "b"}, Statistics: []float64{1.5, 4}, Fallback: 2.75},
		},
	}
}

func TestSaveLoadState(t *testing.T) {
	base := filepath.Join(t.TempDir(), "model")
	require.NoError(t, SaveState(base, testState()))

	state, err := LoadState(base + StateExt)
	require.NoError(t, err)
	assert.Equal(t, testState(), state)
}

func TestSaveLoadWeights(t *testing.T) {
	base := filepath.Join(t.TempDir(), "model")
	w := Weights([]string{"intercept", "c"}, []float64{1, 2}, []float64{0.01, math.NaN()},
		testState(), preprocessing.Log, linear.Diagnostics{N: 5, Rank: 2, RSquared: 0.9, FPValue: math.NaN()})
	require.NoError(t, SaveWeights(base, w))

	loaded, err := LoadWeights(base + JSONExt)
	require.NoError(t, err)
	assert.Equal(t, []string{"intercept", "c"}, loaded.Features)
	assert.Equal(t, []float64{1, 2}, loaded.Coefficients)
	assert.True(t, math.IsNaN(float64(loaded.PValues[1])))
	assert.Equal(t, "mean", loaded.Hyperparameters["encoding"])
	assert.Equal(t, "log", loaded.Hyperparameters["transform"])
	assert.Contains(t, loaded.Metadata, "encoding_state")
}

func TestPlotResiduals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resid.png")
	fitted := mat.NewVecDense(4, []float64{1, 2, 3, math.NaN()})
	resid := mat.NewVecDense(4, []float64{0.1, -0.2, 0.05, 1})

	require.NoError(t, PlotResiduals(path, "y", fitted, resid))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlotResidualsErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, PlotResiduals(filepath.Join(dir, "a.png"), "", mat.NewVecDense(2, nil), mat.NewVecDense(3, nil)))
	nan := mat.NewVecDense(1, []float64{math.NaN()})
	assert.Error(t, PlotResiduals(filepath.Join(dir, "b.png"), "", nan, nan))
}
