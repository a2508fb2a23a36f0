package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Parameters holds one weight matrix and one bias vector per weighted
// layer. Weights[i] has shape [out_i, in_i] and Biases[i] has length
// out_i, with dimensions derived from the Topology that produced them.
//
// A Parameters value is exclusively owned by its model or training run.
// Forward and inference never mutate it; training replaces it wholesale
// with the optimizer's result.
type Parameters struct {
	Weights []*mat.Dense
	Biases  []*mat.VecDense
}

// NumLayers returns the number of weighted layers.
func (p *Parameters) NumLayers() int {
	return len(p.Weights)
}

// Clone returns a deep copy sharing no backing storage with p.
func (p *Parameters) Clone() *Parameters {
	out := &Parameters{
		Weights: make([]*mat.Dense, len(p.Weights)),
		Biases:  make([]*mat.VecDense, len(p.Biases)),
	}
	for i, w := range p.Weights {
		out.Weights[i] = mat.DenseCopyOf(w)
	}
	for i, b := range p.Biases {
		out.Biases[i] = mat.VecDenseCopyOf(b)
	}
	return out
}
