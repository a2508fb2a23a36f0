package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneHot(t *testing.T) {
	y := OneHot([]int{0, 2, 1}, 3)
	assert.Equal(t, []float64{1, 0, 0}, y.RawRowView(0))
	assert.Equal(t, []float64{0, 0, 1}, y.RawRowView(1))
	assert.Equal(t, []float64{0, 1, 0}, y.RawRowView(2))

	assert.Panics(t, func() { OneHot([]int{3}, 3) })
	assert.Panics(t, func() { OneHot([]int{-1}, 3) })
}

func TestCrossEntropy_NonNegative(t *testing.T) {
	p := denseFrom(2, 2, 0.7, 0.3, 0.4, 0.6)
	y := OneHot([]int{0, 1}, 2)

	loss := CrossEntropy(p, y)
	assert.GreaterOrEqual(t, loss, 0.0)
	want := -(math.Log(0.7) + math.Log(0.6)) / 2
	assert.InDelta(t, want, loss, 1e-9)
}

// TestCrossEntropy_ConfidentLimit: loss tends to 0 as predicted
// probability on the true class tends to 1, never dips below 0, and is
// exactly 0 at probability 1.
func TestCrossEntropy_ConfidentLimit(t *testing.T) {
	y := OneHot([]int{0}, 2)

	prev := math.Inf(1)
	for _, conf := range []float64{0.9, 0.99, 0.9999, 1.0} {
		p := denseFrom(1, 2, conf, 1-conf)
		loss := CrossEntropy(p, y)
		assert.GreaterOrEqual(t, loss, 0.0, "conf %v", conf)
		assert.Less(t, loss, prev)
		prev = loss
	}
	assert.Equal(t, 0.0, prev, "perfectly confident correct prediction")
}

// TestCrossEntropy_UnderflowGuard: a zero predicted probability on the
// true class must produce a large finite loss, not -Inf/NaN.
func TestCrossEntropy_UnderflowGuard(t *testing.T) {
	p := denseFrom(1, 2, 0, 1)
	y := OneHot([]int{0}, 2)

	loss := CrossEntropy(p, y)
	assert.False(t, math.IsInf(loss, 0) || math.IsNaN(loss), "loss = %v", loss)
	assert.Greater(t, loss, 10.0)
}

// TestBackward_OutputError pins the closed-form output-layer error
// dZ = P - Y by checking the last layer's bias gradient, which equals
// the column means of dZ.
func TestBackward_OutputError(t *testing.T) {
	topo := Topology{InputDim: 2, Hidden: []int{2}, NumClasses: 2}
	p, err := Unflatten(make([]float64, topo.NumParameters()), topo)
	require.NoError(t, err)

	x := denseFrom(2, 2, 1, 2, -1, 0.5)
	y := OneHot([]int{0, 1}, 2)

	cache := Forward(x, p, Identity)
	grads := Backward(cache, y, p, Identity)

	probs := cache.Probs()
	for j := 0; j < 2; j++ {
		want := ((probs.At(0, j) - y.At(0, j)) + (probs.At(1, j) - y.At(1, j))) / 2
		assert.InDelta(t, want, grads.Biases[1].AtVec(j), 1e-12)
	}
}

// TestBackward_Shapes: gradient shapes must mirror parameter shapes for
// every layer.
func TestBackward_Shapes(t *testing.T) {
	topo := Topology{InputDim: 3, Hidden: []int{5, 4}, NumClasses: 3}
	p, err := Unflatten(make([]float64, topo.NumParameters()), topo)
	require.NoError(t, err)

	x := denseFrom(2, 3, 1, 2, 3, 4, 5, 6)
	y := OneHot([]int{0, 2}, 3)

	loss, grads := LossAndGrad(x, y, p, ReLU)
	assert.False(t, math.IsNaN(loss))
	require.Equal(t, p.NumLayers(), grads.NumLayers())

	for i := range p.Weights {
		pr, pc := p.Weights[i].Dims()
		gr, gc := grads.Weights[i].Dims()
		assert.Equal(t, pr, gr, "layer %d", i)
		assert.Equal(t, pc, gc, "layer %d", i)
		assert.Equal(t, p.Biases[i].Len(), grads.Biases[i].Len(), "layer %d", i)
	}
}
