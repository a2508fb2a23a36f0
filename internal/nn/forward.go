package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Cache holds the intermediate tensors of one forward pass, consumed by
// the immediately following Backward call. Activations[0] is always the
// input batch itself; Activations[i+1] and PreActs[i] belong to weighted
// layer i. The final activation is the softmax probability matrix.
//
// A Cache lives for exactly one training iteration and is not part of
// model state.
type Cache struct {
	Activations []*mat.Dense // len NumLayers()+1, index 0 is the input batch
	PreActs     []*mat.Dense // len NumLayers()
}

// Probs returns the final-layer class probability matrix.
func (c *Cache) Probs() *mat.Dense {
	return c.Activations[len(c.Activations)-1]
}

// Forward propagates the batch x [M, InputDim] through the network.
//
// Hidden layers compute A_i = act(A_{i-1} W_i^T + b_i); the output layer
// applies a numerically stable row-wise softmax to its pre-activations.
// The returned cache retains every intermediate, including x at
// activation index 0, so Backward can index Activations[i] for the input
// of weighted layer i with no off-by-one special case.
//
// Forward is a pure function of its inputs; neither x nor p is mutated.
func Forward(x *mat.Dense, p *Parameters, act Activation) *Cache {
	l := p.NumLayers()
	cache := &Cache{
		Activations: make([]*mat.Dense, l+1),
		PreActs:     make([]*mat.Dense, l),
	}
	cache.Activations[0] = x

	a := x
	for i := 0; i < l; i++ {
		z := linearForward(a, p.Weights[i], p.Biases[i])
		cache.PreActs[i] = z
		if i == l-1 {
			a = softmaxRows(z)
		} else {
			a = act.Apply(z)
		}
		cache.Activations[i+1] = a
	}
	return cache
}

// Infer runs the forward pass without retaining intermediates and
// returns only the class probability matrix.
func Infer(x *mat.Dense, p *Parameters, act Activation) *mat.Dense {
	a := x
	l := p.NumLayers()
	for i := 0; i < l; i++ {
		z := linearForward(a, p.Weights[i], p.Biases[i])
		if i == l-1 {
			return softmaxRows(z)
		}
		a = act.Apply(z)
	}
	return a
}

// linearForward computes Z = A W^T + b with b broadcast across rows.
func linearForward(a *mat.Dense, w *mat.Dense, b *mat.VecDense) *mat.Dense {
	m, _ := a.Dims()
	out, _ := w.Dims()
	z := mat.NewDense(m, out, nil)
	z.Mul(a, w.T())
	raw := z.RawMatrix()
	bias := b.RawVector().Data
	for i := 0; i < m; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+out]
		for j := range row {
			row[j] += bias[j]
		}
	}
	return z
}

// softmaxRows applies softmax to each row of z using the max-subtraction
// trick: exp(z - max(z)) / sum(exp(z - max(z))). Without the shift,
// exp overflows float64 for logits beyond ~709, which realistic unscaled
// inputs can produce.
func softmaxRows(z *mat.Dense) *mat.Dense {
	m, k := z.Dims()
	out := mat.NewDense(m, k, nil)
	for i := 0; i < m; i++ {
		row := z.RawRowView(i)
		maxv := row[0]
		for _, v := range row[1:] {
			if v > maxv {
				maxv = v
			}
		}
		dst := out.RawRowView(i)
		sum := 0.0
		for j, v := range row {
			e := math.Exp(v - maxv)
			dst[j] = e
			sum += e
		}
		for j := range dst {
			dst[j] /= sum
		}
	}
	return out
}
