package report

import (
	"bufio"
	"os"

	"github.com/YuminosukeSato/golm/core/model"
	"github.com/YuminosukeSato/golm/linear"
	"github.com/YuminosukeSato/golm/pkg/errors"
	"github.com/YuminosukeSato/golm/preprocessing"
)

// 出力ファイルの拡張子
const (
	CoefExt  = ".coef"
	JSONExt  = ".json"
	StateExt = ".state"
)

// WeightsVersion は JSON 出力のフォーマットバージョン
const WeightsVersion = "1.0"

// SaveCoefficients は base+".coef" に "名前\t係数" の行を書き出す
func SaveCoefficients(base string, names []string, coef []float64) (err error) {
	if len(names) != len(coef) {
		return errors.NewDimensionError("SaveCoefficients", len(coef), len(names), 0)
	}

	path := base + CoefExt
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()

	bw := bufio.NewWriter(f)
	ew := &errWriter{w: bw}
	for i, name := range names {
		ew.printf("%s\t%g\n", name, coef[i])
	}
	if ew.err != nil {
		return errors.Wrapf(ew.err, "failed to write %s", path)
	}
	return bw.Flush()
}

// Weights は係数、p 値、エンコード状態、指標をまとめた ModelWeights を作る
func Weights(names []string, coef, pvalues []float64, state *preprocessing.EncodingState,
	transform preprocessing.Transform, diag linear.Diagnostics) *model.ModelWeights {
	return &model.ModelWeights{
		ModelType:    "OLS",
		Version:      WeightsVersion,
		Coefficients: append([]float64(nil), coef...),
		Features:     append([]string(nil), names...),
		PValues:      model.Floats(pvalues),
		Hyperparameters: map[string]interface{}{
			"encoding":  state.Strategy.String(),
			"transform": transform.String(),
		},
		Metadata: map[string]interface{}{
			"encoding_state": state,
			"diagnostics": map[string]interface{}{
				"n":              diag.N,
				"rank":           diag.Rank,
				"r_squared":      model.Float(diag.RSquared),
				"adj_r_squared":  model.Float(diag.AdjRSquared),
				"f_statistic":    model.Float(diag.FStatistic),
				"f_p_value":      model.Float(diag.FPValue),
				"aic":            model.Float(diag.AIC),
				"bic":            model.Float(diag.BIC),
				"log_likelihood": model.Float(diag.LogLikelihood),
			},
		},
		IsFitted: true,
	}
}

// SaveWeights は base+".json" に重みを書き出す
func SaveWeights(base string, w *model.ModelWeights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	data, err := w.ToJSON()
	if err != nil {
		return errors.Wrap(err, "failed to marshal weights")
	}
	path := base + JSONExt
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// LoadWeights は JSON 形式の重みを読み込む
func LoadWeights(path string) (*model.ModelWeights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	var w model.ModelWeights
	if err := w.FromJSON(data); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return &w, w.Validate()
}

// SaveState は base+".state" にエンコード状態を gob 形式で保存する
func SaveState(base string, state *preprocessing.EncodingState) error {
	return model.SaveModel(state, base+StateExt)
}

// LoadState は SaveState で保存したエンコード状態を読み込む
func LoadState(path string) (*preprocessing.EncodingState, error) {
	var state preprocessing.EncodingState
	if err := model.LoadModel(&state, path); err != nil {
		return nil, err
	}
	return &state, nil
}
