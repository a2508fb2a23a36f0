// Package optim implements unconstrained minimizers over flat parameter
// vectors.
//
// This package provides:
//   - Minimizer interface: the boundary the training driver depends on
//   - QuasiNewton: L-BFGS via gonum/optimize (the default)
//   - SGD: full-batch gradient descent with momentum
//   - Adam: adaptive moment estimation
//
// A minimizer sees only an Objective, a loss function and its gradient
// over a flat []float64, and never learns anything about network
// structure. Reaching the iteration limit without meeting the tolerances
// is not an error: the best-found point is returned with
// Result.Converged set to false.
package optim

// Objective is a differentiable scalar function of a flat parameter
// vector. Grad writes the gradient at x into grad, which has the same
// length as x.
type Objective struct {
	Func func(x []float64) float64
	Grad func(grad, x []float64)
}

// Settings carries the stopping controls shared by all minimizers.
type Settings struct {
	// IterationLimit bounds the number of major iterations. Zero or
	// negative means the minimizer's default.
	IterationLimit int
	// GradientTolerance stops when the infinity norm of the gradient
	// drops to or below this value.
	GradientTolerance float64
	// LossTolerance stops when the objective improvement between
	// successive iterations drops to or below this value.
	LossTolerance float64
	// StepTolerance stops when the parameter step between successive
	// iterations drops to or below this value.
	StepTolerance float64
}

// Result reports the outcome of a minimization.
type Result struct {
	X          []float64 // best parameter vector found
	Loss       float64   // objective value at X
	Iterations int       // major iterations performed
	Converged  bool      // false when stopped only by the iteration limit
	Status     string    // human-readable stopping reason
}

// Minimizer is the boundary between training and optimization. The
// training driver supplies an objective over flattened parameters and
// consumes the returned optimum; the minimizer's internals are opaque.
type Minimizer interface {
	Minimize(obj Objective, x0 []float64, s Settings) (*Result, error)
}

const defaultIterationLimit = 1000

func iterLimit(s Settings) int {
	if s.IterationLimit > 0 {
		return s.IterationLimit
	}
	return defaultIterationLimit
}
