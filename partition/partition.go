// Package partition splits data rows into a training set and a held-out set.
package partition

import (
	"math"
	"math/rand"
	"sort"
)

// Split holds the two partitions. Both keep the original row order.
type Split struct {
	Train   []string
	HeldOut []string
}

// SplitRows は rows から round(ratio*n) 行を無作為に選んで HeldOut にし、
// 残りを Train にする
//
// ratio が [0,1] の範囲外または NaN の場合は 0 として扱う。
// rng が nil の場合も分割しない。
func SplitRows(rows []string, ratio float64, rng *rand.Rand) Split {
	n := len(rows)
	k := HeldOutSize(n, ratio)
	if k == 0 || rng == nil {
		return Split{Train: rows, HeldOut: []string{}}
	}

	// 部分 Fisher-Yates で k 個の添字を選ぶ
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	chosen := idx[:k]
	sort.Ints(chosen)

	split := Split{
		Train:   make([]string, 0, n-k),
		HeldOut: make([]string, 0, k),
	}
	c := 0
	for i, row := range rows {
		if c < k && chosen[c] == i {
			split.HeldOut = append(split.HeldOut, row)
			c++
			continue
		}
		split.Train = append(split.Train, row)
	}
	return split
}

// HeldOutSize returns round(ratio*n), treating an invalid ratio as 0.
func HeldOutSize(n int, ratio float64) int {
	if math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
		return 0
	}
	return int(math.Round(ratio * float64(n)))
}

// NewSource returns a generator seeded with seed. Seed 0 means the caller
// wants a fresh seed; the one chosen is returned so a run can be repeated.
func NewSource(seed int64, now func() int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = now()
	}
	return rand.New(rand.NewSource(seed)), seed
}
