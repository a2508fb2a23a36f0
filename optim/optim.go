// Copyright 2026 Cortex ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "github.com/cortex-ml/cortex/internal/optim"

// Objective is a differentiable scalar function of a flat parameter
// vector.
type Objective = optim.Objective

// Settings carries the stopping controls shared by all minimizers.
type Settings = optim.Settings

// Result reports the outcome of a minimization.
type Result = optim.Result

// Minimizer is the common interface of all minimizers.
type Minimizer = optim.Minimizer

// QuasiNewton minimizes with limited-memory BFGS.
type QuasiNewton = optim.QuasiNewton

// NewQuasiNewton creates a quasi-Newton minimizer.
//
// Example:
//
//	min := optim.NewQuasiNewton()
//	result, err := min.Minimize(obj, x0, optim.Settings{GradientTolerance: 1e-6})
func NewQuasiNewton() *QuasiNewton {
	return optim.NewQuasiNewton()
}

// SGD is full-batch gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD minimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD minimizer.
//
// Example:
//
//	min := optim.NewSGD(optim.SGDConfig{LR: 0.01, Momentum: 0.9})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Adam is the adaptive moment estimation minimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam minimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam minimizer with bias correction.
//
// Example:
//
//	min := optim.NewAdam(optim.AdamConfig{LR: 0.001})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}
