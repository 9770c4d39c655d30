package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
// X は切片列を含む設計行列、y は応答ベクトル
type Fitter interface {
	Fit(X mat.Matrix, y mat.Vector) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	Predict(X mat.Matrix) (*mat.VecDense, error)
}

// Regressor は学習と予測の両方を行うモデル
type Regressor interface {
	Fitter
	Predictor
}
