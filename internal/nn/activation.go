package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Activation enumerates the hidden-layer activation functions. ReLU is
// the zero value and therefore the default.
//
// The output layer is not configurable: it is always a row-wise softmax,
// applied by Forward. Identity is useful for debugging and for reducing
// the network to multinomial logistic regression.
type Activation int

const (
	ReLU Activation = iota
	Sigmoid
	Tanh
	Identity
)

// String returns the lower-case name used in configuration and errors.
func (a Activation) String() string {
	switch a {
	case Identity:
		return "none"
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	default:
		return "unknown"
	}
}

// Valid reports whether a is a member of the closed enumeration.
func (a Activation) Valid() bool {
	return a >= ReLU && a <= Identity
}

// Apply returns f(z) element-wise as a new matrix. The input is never
// mutated.
func (a Activation) Apply(z *mat.Dense) *mat.Dense {
	r, c := z.Dims()
	out := mat.NewDense(r, c, nil)
	switch a {
	case Identity:
		out.Copy(z)
	case Sigmoid:
		out.Apply(func(_, _ int, v float64) float64 {
			return 1.0 / (1.0 + math.Exp(-v))
		}, z)
	case Tanh:
		out.Apply(func(_, _ int, v float64) float64 {
			return math.Tanh(v)
		}, z)
	case ReLU:
		out.Apply(func(_, _ int, v float64) float64 {
			return math.Max(0, v)
		}, z)
	}
	return out
}

// DerivFromOutput returns f'(z) computed from the activation output
// act = f(z). For every supported function the derivative is cheaper to
// express in terms of the output than the pre-activation:
//
//	sigmoid: a(1-a)    tanh: 1-a^2    relu: 1[a>0]    identity: 1
func (a Activation) DerivFromOutput(act *mat.Dense) *mat.Dense {
	r, c := act.Dims()
	out := mat.NewDense(r, c, nil)
	switch a {
	case Identity:
		data := out.RawMatrix().Data
		for i := range data {
			data[i] = 1
		}
	case Sigmoid:
		out.Apply(func(_, _ int, v float64) float64 {
			return v * (1 - v)
		}, act)
	case Tanh:
		out.Apply(func(_, _ int, v float64) float64 {
			return 1 - v*v
		}, act)
	case ReLU:
		out.Apply(func(_, _ int, v float64) float64 {
			if v > 0 {
				return 1
			}
			return 0
		}, act)
	}
	return out
}
