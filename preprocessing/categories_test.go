package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueCategories(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{name: "sorted and deduplicated", raw: []string{"b", "a", "c", "a", "b"}, want: []string{"a", "b", "c"}},
		{name: "single", raw: []string{"x", "x"}, want: []string{"x"}},
		{name: "byte order", raw: []string{"b", "B", "a"}, want: []string{"B", "a", "b"}},
		{name: "empty", raw: []string{}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UniqueCategories(tt.raw))
		})
	}
}

func TestUniqueCategoriesDoesNotModifyInput(t *testing.T) {
	raw := []string{"c", "a", "b"}
	UniqueCategories(raw)
	assert.Equal(t, []string{"c", "a", "b"}, raw)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 3.0, Median([]float64{5, 3, 1}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))

	in := []float64{3, 1, 2}
	Median(in)
	assert.Equal(t, []float64{3, 1, 2}, in)
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}
