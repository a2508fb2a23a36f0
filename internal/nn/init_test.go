package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopology_Shapes(t *testing.T) {
	topo := Topology{InputDim: 4, Hidden: []int{6, 5}, NumClasses: 3}

	require.Equal(t, 3, topo.NumLayers())

	in, out := topo.LayerDims(0)
	assert.Equal(t, 4, in)
	assert.Equal(t, 6, out)

	in, out = topo.LayerDims(1)
	assert.Equal(t, 6, in)
	assert.Equal(t, 5, out)

	in, out = topo.LayerDims(2)
	assert.Equal(t, 5, in)
	assert.Equal(t, 3, out)

	assert.Equal(t, 4*6+6+6*5+5+5*3+3, topo.NumParameters())
}

func TestTopology_Validate(t *testing.T) {
	valid := Topology{InputDim: 2, Hidden: []int{3}, NumClasses: 2}
	assert.NoError(t, valid.Validate())

	for _, bad := range []Topology{
		{InputDim: 0, Hidden: []int{3}, NumClasses: 2},
		{InputDim: 2, Hidden: nil, NumClasses: 2},
		{InputDim: 2, Hidden: []int{0}, NumClasses: 2},
		{InputDim: 2, Hidden: []int{3}, NumClasses: 1},
	} {
		assert.Error(t, bad.Validate(), "%s", bad)
	}
}

// TestNewParameters_Reproducible: identical seeds must give identical
// parameters; the initializer may not touch any global random state.
func TestNewParameters_Reproducible(t *testing.T) {
	topo := Topology{InputDim: 5, Hidden: []int{8}, NumClasses: 3}

	a := NewParameters(topo, Glorot, Zeros, rand.New(rand.NewSource(11)))
	b := NewParameters(topo, Glorot, Zeros, rand.New(rand.NewSource(11)))
	c := NewParameters(topo, Glorot, Zeros, rand.New(rand.NewSource(12)))

	assert.Equal(t, Flatten(a), Flatten(b))
	assert.NotEqual(t, Flatten(a), Flatten(c))
}

// TestNewParameters_GlorotBound: every Glorot draw must respect the
// uniform bound sqrt(6/(fanIn+fanOut)).
func TestNewParameters_GlorotBound(t *testing.T) {
	topo := Topology{InputDim: 30, Hidden: []int{20}, NumClasses: 4}
	p := NewParameters(topo, Glorot, Zeros, rand.New(rand.NewSource(5)))

	for i := 0; i < topo.NumLayers(); i++ {
		fanIn, fanOut := topo.LayerDims(i)
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
		for _, v := range p.Weights[i].RawMatrix().Data {
			assert.LessOrEqual(t, math.Abs(v), bound, "layer %d", i)
		}
	}
}

// TestNewParameters_HeScale: He draws should be roughly N(0, 2/fanIn);
// with enough samples the empirical variance lands near the target.
func TestNewParameters_HeScale(t *testing.T) {
	topo := Topology{InputDim: 200, Hidden: []int{400}, NumClasses: 2}
	p := NewParameters(topo, He, Zeros, rand.New(rand.NewSource(17)))

	data := p.Weights[0].RawMatrix().Data
	variance := 0.0
	for _, v := range data {
		variance += v * v
	}
	variance /= float64(len(data))

	assert.InDelta(t, 2.0/200.0, variance, 2.0/200.0*0.15)
}

func TestNewParameters_BiasInit(t *testing.T) {
	topo := Topology{InputDim: 3, Hidden: []int{4}, NumClasses: 2}

	zeros := NewParameters(topo, Glorot, Zeros, rand.New(rand.NewSource(1)))
	for _, b := range zeros.Biases {
		for _, v := range b.RawVector().Data {
			assert.Equal(t, 0.0, v)
		}
	}

	ones := NewParameters(topo, Glorot, Ones, rand.New(rand.NewSource(1)))
	for _, b := range ones.Biases {
		for _, v := range b.RawVector().Data {
			assert.Equal(t, 1.0, v)
		}
	}
}
