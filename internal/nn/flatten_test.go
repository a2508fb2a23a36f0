package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFlatten_RoundTrip checks that Unflatten(Flatten(p)) reproduces p
// exactly, bit for bit, across a range of topologies.
func TestFlatten_RoundTrip(t *testing.T) {
	topologies := []Topology{
		{InputDim: 2, Hidden: []int{3}, NumClasses: 2},
		{InputDim: 4, Hidden: []int{5, 3}, NumClasses: 3},
		{InputDim: 10, Hidden: []int{7, 7, 4}, NumClasses: 5},
		{InputDim: 1, Hidden: []int{1}, NumClasses: 2},
	}

	rng := rand.New(rand.NewSource(42))
	for _, topo := range topologies {
		p := NewParameters(topo, Glorot, Zeros, rng)

		vec := Flatten(p)
		require.Len(t, vec, topo.NumParameters())

		back, err := Unflatten(vec, topo)
		require.NoError(t, err)
		require.Equal(t, p.NumLayers(), back.NumLayers())

		for i := range p.Weights {
			assert.Equal(t, p.Weights[i].RawMatrix().Data, back.Weights[i].RawMatrix().Data,
				"layer %d weights differ for %s", i, topo)
			assert.Equal(t, p.Biases[i].RawVector().Data, back.Biases[i].RawVector().Data,
				"layer %d biases differ for %s", i, topo)
		}
	}
}

// TestFlatten_Order pins the vector layout: per layer, row-major weights
// then bias. The optimizer contract depends on this exact ordering.
func TestFlatten_Order(t *testing.T) {
	topo := Topology{InputDim: 2, Hidden: []int{2}, NumClasses: 2}
	p := &Parameters{}
	p.Weights = append(p.Weights, denseFrom(2, 2, 1, 2, 3, 4))
	p.Biases = append(p.Biases, vecFrom(5, 6))
	p.Weights = append(p.Weights, denseFrom(2, 2, 7, 8, 9, 10))
	p.Biases = append(p.Biases, vecFrom(11, 12))

	vec := Flatten(p)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, vec)

	back, err := Unflatten(vec, topo)
	require.NoError(t, err)
	assert.Equal(t, 3.0, back.Weights[0].At(1, 0))
	assert.Equal(t, 6.0, back.Biases[0].AtVec(1))
	assert.Equal(t, 10.0, back.Weights[1].At(1, 1))
}

// TestUnflatten_LengthMismatch verifies the shape check.
func TestUnflatten_LengthMismatch(t *testing.T) {
	topo := Topology{InputDim: 3, Hidden: []int{4}, NumClasses: 2}

	_, err := Unflatten(make([]float64, topo.NumParameters()-1), topo)
	require.Error(t, err)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "nn.Unflatten", shapeErr.Op)
}

// TestUnflatten_CopiesInput checks the returned parameters do not alias
// the input vector.
func TestUnflatten_CopiesInput(t *testing.T) {
	topo := Topology{InputDim: 2, Hidden: []int{2}, NumClasses: 2}
	vec := make([]float64, topo.NumParameters())
	for i := range vec {
		vec[i] = float64(i)
	}

	p, err := Unflatten(vec, topo)
	require.NoError(t, err)

	vec[0] = 999
	assert.Equal(t, 0.0, p.Weights[0].At(0, 0))
}
