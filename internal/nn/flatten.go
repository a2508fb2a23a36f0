package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// The flatten codec maps between a structured Parameters value and the
// single flat vector the optimizer works on. The layout is fixed: for
// each layer in order, the row-major entries of the weight matrix
// followed by the bias entries. Unflatten(Flatten(p), t) reproduces p
// exactly; the ordering is part of the optimizer contract and must not
// change.
//
// The codec is deliberately free of numerical logic. It copies values
// and nothing else, so vector indexing stays provably aligned with the
// layer shapes derived from Topology.

// Flatten serializes p into a new flat vector.
func Flatten(p *Parameters) []float64 {
	n := 0
	for i := range p.Weights {
		r, c := p.Weights[i].Dims()
		n += r*c + p.Biases[i].Len()
	}
	vec := make([]float64, 0, n)
	for i := range p.Weights {
		vec = append(vec, p.Weights[i].RawMatrix().Data...)
		vec = append(vec, p.Biases[i].RawVector().Data...)
	}
	return vec
}

// Unflatten rebuilds a Parameters from vec according to topology t.
// The returned value copies out of vec and shares no storage with it.
//
// Returns a *ShapeError if len(vec) does not equal t.NumParameters().
func Unflatten(vec []float64, t Topology) (*Parameters, error) {
	if len(vec) != t.NumParameters() {
		return nil, &ShapeError{
			Op:   "nn.Unflatten",
			Want: fmt.Sprintf("%d parameters for %s", t.NumParameters(), t),
			Got:  fmt.Sprintf("vector of length %d", len(vec)),
		}
	}
	p := &Parameters{
		Weights: make([]*mat.Dense, t.NumLayers()),
		Biases:  make([]*mat.VecDense, t.NumLayers()),
	}
	off := 0
	for i := 0; i < t.NumLayers(); i++ {
		in, out := t.LayerDims(i)

		w := make([]float64, out*in)
		copy(w, vec[off:off+out*in])
		p.Weights[i] = mat.NewDense(out, in, w)
		off += out * in

		b := make([]float64, out)
		copy(b, vec[off:off+out])
		p.Biases[i] = mat.NewVecDense(out, b)
		off += out
	}
	return p, nil
}
