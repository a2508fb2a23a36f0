package optim

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Adam implements Adaptive Moment Estimation over a flat parameter
// vector.
//
// Maintains exponential moving averages of the gradient (first moment)
// and the squared gradient (second moment), with bias correction:
//
//	m = beta1*m + (1-beta1)*g
//	v = beta2*v + (1-beta2)*g^2
//	x = x - lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization"
// (Kingma & Ba, 2014).
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
}

// AdamConfig holds configuration for the Adam minimizer.
type AdamConfig struct {
	LR    float64 // learning rate (default: 0.001)
	Beta1 float64 // first-moment decay (default: 0.9)
	Beta2 float64 // second-moment decay (default: 0.999)
	Eps   float64 // denominator guard (default: 1e-8)
}

// NewAdam creates an Adam minimizer, applying defaults for zero fields.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Beta1 == 0 {
		config.Beta1 = 0.9
	}
	if config.Beta2 == 0 {
		config.Beta2 = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{lr: config.LR, beta1: config.Beta1, beta2: config.Beta2, eps: config.Eps}
}

// Minimize iterates Adam steps from x0 until a stopping control fires.
// The returned X is a copy; x0 is not mutated.
func (a *Adam) Minimize(obj Objective, x0 []float64, set Settings) (*Result, error) {
	n := len(x0)
	x := make([]float64, n)
	copy(x, x0)

	grad := make([]float64, n)
	m := make([]float64, n)
	v := make([]float64, n)
	step := make([]float64, n)
	limit := iterLimit(set)

	loss := obj.Func(x)
	res := &Result{Status: "iteration limit"}

	for iter := 1; iter <= limit; iter++ {
		obj.Grad(grad, x)
		res.Iterations = iter

		if norm := floats.Norm(grad, math.Inf(1)); norm <= set.GradientTolerance {
			res.Converged = true
			res.Status = "gradient tolerance"
			break
		}

		// Moment updates with bias correction.
		c1 := 1 - math.Pow(a.beta1, float64(iter))
		c2 := 1 - math.Pow(a.beta2, float64(iter))
		for i := 0; i < n; i++ {
			g := grad[i]
			m[i] = a.beta1*m[i] + (1-a.beta1)*g
			v[i] = a.beta2*v[i] + (1-a.beta2)*g*g
			mHat := m[i] / c1
			vHat := v[i] / c2
			step[i] = a.lr * mHat / (math.Sqrt(vHat) + a.eps)
			x[i] -= step[i]
		}

		next := obj.Func(x)

		if set.StepTolerance > 0 && floats.Norm(step, math.Inf(1)) <= set.StepTolerance {
			loss = next
			res.Converged = true
			res.Status = "step tolerance"
			break
		}
		if set.LossTolerance > 0 && math.Abs(loss-next) <= set.LossTolerance {
			loss = next
			res.Converged = true
			res.Status = "loss tolerance"
			break
		}
		loss = next
	}

	res.X = x
	res.Loss = loss
	return res, nil
}
