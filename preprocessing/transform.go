package preprocessing

import (
	"math"
	"strings"

	"github.com/YuminosukeSato/golm/pkg/errors"
)

// Offset は log_offset / exp_offset で加減するオフセット
const Offset = 0.01

// LogOffset returns log(x + Offset), defined for x > -Offset.
func LogOffset(x float64) float64 {
	return math.Log(x + Offset)
}

// ExpOffset is the inverse of LogOffset.
func ExpOffset(x float64) float64 {
	return math.Exp(x) - Offset
}

// Transform は応答変数の変換
type Transform int

const (
	// Identity は変換しない
	Identity Transform = iota
	// Log は自然対数
	Log
	// LogOffsetTransform は log(y + Offset)。0 を含む非負のデータ向け
	LogOffsetTransform
)

// String returns the transform name accepted by ParseTransform.
func (t Transform) String() string {
	switch t {
	case Log:
		return "log"
	case LogOffsetTransform:
		return "log_offset"
	default:
		return "none"
	}
}

// ParseTransform は変換名を解釈する。未知の名前はエラー。
func ParseTransform(name string) (Transform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "identity":
		return Identity, nil
	case "log":
		return Log, nil
	case "log_offset", "log-offset", "logoffset":
		return LogOffsetTransform, nil
	default:
		return Identity, errors.NewValidationError("transform", "unknown response transform", name)
	}
}

// Apply は y をその場で変換する
// 結果に NaN や Inf が現れた場合は NumericalInstabilityError を返す。
func (t Transform) Apply(y []float64) error {
	var fn func(float64) float64
	switch t {
	case Log:
		fn = math.Log
	case LogOffsetTransform:
		fn = LogOffset
	default:
		return nil
	}
	for i, v := range y {
		y[i] = fn(v)
	}
	return errors.CheckNumericalStability("Transform."+t.String(), y)
}

// Inverse は Apply の逆変換を y にその場で適用する
func (t Transform) Inverse(y []float64) {
	var fn func(float64) float64
	switch t {
	case Log:
		fn = math.Exp
	case LogOffsetTransform:
		fn = ExpOffset
	default:
		return
	}
	for i, v := range y {
		y[i] = fn(v)
	}
}
