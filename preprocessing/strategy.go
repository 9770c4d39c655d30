package preprocessing

import (
	"strings"

	"github.com/YuminosukeSato/golm/pkg/errors"
)

// Strategy はカテゴリ列のエンコード方式
type Strategy int

const (
	// None はカテゴリ情報を捨てる
	None Strategy = iota
	// OneHot はダミー変数（k-1 列）に展開する
	OneHot
	// MeanTarget はカテゴリごとの応答変数の平均で置き換える
	MeanTarget
	// MedianTarget はカテゴリごとの応答変数の中央値で置き換える
	MedianTarget
)

var strategyNames = map[string]Strategy{
	"none":          None,
	"onehot":        OneHot,
	"one-hot":       OneHot,
	"dummy":         OneHot,
	"mean":          MeanTarget,
	"mean-target":   MeanTarget,
	"median":        MedianTarget,
	"median-target": MedianTarget,
}

// String returns the canonical strategy name.
func (s Strategy) String() string {
	switch s {
	case OneHot:
		return "onehot"
	case MeanTarget:
		return "mean"
	case MedianTarget:
		return "median"
	default:
		return "none"
	}
}

// IsTarget reports whether the strategy uses the response variable.
func (s Strategy) IsTarget() bool {
	return s == MeanTarget || s == MedianTarget
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, ok := lookupStrategy(string(text))
	if !ok {
		return errors.NewValidationError("strategy", "unknown encoding strategy", string(text))
	}
	*s = v
	return nil
}

// ParseStrategy はエンコード方式の名前を解釈する
//
// 大文字小文字は区別しない。未知の名前は UnknownStrategyWarning を発生させ、
// None として扱う。
func ParseStrategy(name string) Strategy {
	s, ok := lookupStrategy(name)
	if !ok {
		errors.Warn(errors.NewUnknownStrategyWarning(name))
		return None
	}
	return s
}

func lookupStrategy(name string) (Strategy, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return None, true
	}
	s, ok := strategyNames[key]
	return s, ok
}
