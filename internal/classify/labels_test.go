package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelIndex_FirstAppearanceOrder(t *testing.T) {
	li := newLabelIndex([]string{"dog", "cat", "dog", "bird", "cat"})

	require.Equal(t, 3, li.numClasses())
	assert.Equal(t, []string{"dog", "cat", "bird"}, li.classes)
	assert.Equal(t, []int{0, 1, 0, 2, 1}, li.encode([]string{"dog", "cat", "dog", "bird", "cat"}))
}

func TestLabelIndex_EmpiricalPriors(t *testing.T) {
	li := newLabelIndex([]int{1, 1, 1, 2})

	priors := li.empiricalPriors()
	require.Len(t, priors, 2)
	assert.InDelta(t, 0.75, priors[0], 1e-12)
	assert.InDelta(t, 0.25, priors[1], 1e-12)
}

func TestLabelIndex_EncodeUnseenPanics(t *testing.T) {
	li := newLabelIndex([]string{"a", "b"})
	assert.Panics(t, func() { li.encode([]string{"c"}) })
}

func TestScaler_ZeroMeanUnitVariance(t *testing.T) {
	x := denseOf(4, 2,
		1, 100,
		2, 200,
		3, 300,
		4, 400,
	)
	s := fitScaler(x)
	out := s.transform(x)

	for j := 0; j < 2; j++ {
		mean, variance := 0.0, 0.0
		for i := 0; i < 4; i++ {
			mean += out.At(i, j)
		}
		mean /= 4
		for i := 0; i < 4; i++ {
			d := out.At(i, j) - mean
			variance += d * d
		}
		variance /= 3
		assert.InDelta(t, 0.0, mean, 1e-12)
		assert.InDelta(t, 1.0, variance, 1e-12)
	}
	// The input is untouched.
	assert.Equal(t, 1.0, x.At(0, 0))
}

func TestScaler_ConstantColumn(t *testing.T) {
	x := denseOf(3, 2,
		5, 1,
		5, 2,
		5, 3,
	)
	s := fitScaler(x)
	out := s.transform(x)

	// A constant column is centered, not divided by zero.
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, out.At(i, 0))
	}
}
