package preprocessing

import (
	"slices"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// UniqueCategories returns the distinct values of raw in lexicographic order.
// raw is not modified.
func UniqueCategories(raw []string) []string {
	sorted := make([]string, len(raw))
	copy(sorted, raw)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

// Median は中央値を返す。偶数個の場合は中央の2値の平均。
// 空の場合は 0 を返す。values は変更しない。
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Mean は算術平均を返す。空の場合は 0 を返す。
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// groupResponse は各カテゴリに属する行の応答変数を集める
func groupResponse(raw []string, response []float64, categories []string) [][]float64 {
	groups := make([][]float64, len(categories))
	for i, v := range raw {
		if k, ok := indexOf(categories, v); ok {
			groups[k] = append(groups[k], response[i])
		}
	}
	return groups
}

// indexOf はソート済みの categories から v を二分探索する
func indexOf(categories []string, v string) (int, bool) {
	k := sort.SearchStrings(categories, v)
	if k < len(categories) && categories[k] == v {
		return k, true
	}
	return -1, false
}
