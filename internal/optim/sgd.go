package optim

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SGD is full-batch gradient descent with optional momentum over a flat
// parameter vector.
//
// Update rule without momentum:
//
//	x = x - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	x = x - lr * velocity
//
// Momentum accelerates descent along persistent directions and dampens
// oscillation across the loss surface's narrow valleys.
type SGD struct {
	lr       float64
	momentum float64
}

// SGDConfig holds configuration for the SGD minimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum factor (default: 0, range [0, 1))
}

// NewSGD creates an SGD minimizer, applying defaults for zero fields.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR, momentum: config.Momentum}
}

// Minimize iterates full-batch descent steps from x0 until a stopping
// control fires. The returned X is a copy; x0 is not mutated.
func (s *SGD) Minimize(obj Objective, x0 []float64, set Settings) (*Result, error) {
	x := make([]float64, len(x0))
	copy(x, x0)

	grad := make([]float64, len(x))
	velocity := make([]float64, len(x))
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

		if s.momentum != 0 {
			floats.Scale(s.momentum, velocity)
			floats.Add(velocity, grad)
		} else {
			copy(velocity, grad)
		}
		floats.AddScaled(x, -s.lr, velocity)

		next := obj.Func(x)

		if set.StepTolerance > 0 && s.lr*floats.Norm(velocity, math.Inf(1)) <= set.StepTolerance {
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
