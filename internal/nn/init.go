package nn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// WeightInit enumerates the supported weight initialization schemes.
type WeightInit int

const (
	// Glorot draws each weight from U(-b, b) with b = sqrt(6/(fanIn+fanOut)).
	// Keeps activation variance roughly constant across layers; the right
	// default for sigmoid and tanh networks.
	Glorot WeightInit = iota
	// He draws each weight from N(0, sqrt(2/fanIn)); preferred for ReLU.
	He
)

func (w WeightInit) String() string {
	switch w {
	case Glorot:
		return "glorot"
	case He:
		return "he"
	default:
		return "unknown"
	}
}

// Valid reports whether w is a member of the closed enumeration.
func (w WeightInit) Valid() bool {
	return w == Glorot || w == He
}

// BiasInit enumerates the supported bias initialization schemes.
type BiasInit int

const (
	Zeros BiasInit = iota
	Ones
)

func (b BiasInit) String() string {
	switch b {
	case Zeros:
		return "zeros"
	case Ones:
		return "ones"
	default:
		return "unknown"
	}
}

// Valid reports whether b is a member of the closed enumeration.
func (b BiasInit) Valid() bool {
	return b == Zeros || b == Ones
}

// NewParameters builds a freshly initialized parameter set for topology t.
//
// Draws come exclusively from rng, so two calls with identically seeded
// generators produce identical parameters. The function has no side
// effects beyond advancing rng.
func NewParameters(t Topology, weightInit WeightInit, biasInit BiasInit, rng *rand.Rand) *Parameters {
	p := &Parameters{
		Weights: make([]*mat.Dense, t.NumLayers()),
		Biases:  make([]*mat.VecDense, t.NumLayers()),
	}
	for i := 0; i < t.NumLayers(); i++ {
		fanIn, fanOut := t.LayerDims(i)

		w := make([]float64, fanOut*fanIn)
		switch weightInit {
		case He:
			sigma := math.Sqrt(2.0 / float64(fanIn))
			for j := range w {
				w[j] = rng.NormFloat64() * sigma
			}
		default: // Glorot
			bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
			for j := range w {
				w[j] = (rng.Float64()*2.0 - 1.0) * bound
			}
		}
		p.Weights[i] = mat.NewDense(fanOut, fanIn, w)

		b := make([]float64, fanOut)
		if biasInit == Ones {
			for j := range b {
				b[j] = 1
			}
		}
		p.Biases[i] = mat.NewVecDense(fanOut, b)
	}
	return p
}
