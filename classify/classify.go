// Copyright 2026 Cortex ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package classify

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cortex-ml/cortex/internal/classify"
	"github.com/cortex-ml/cortex/internal/nn"
)

// Config collects every training option. The zero value is usable;
// see the field documentation for defaults.
type Config = classify.Config

// Model is a fitted classifier over labels of type L.
type Model[L comparable] = classify.Model[L]

// Fit trains a classifier on the feature matrix x (one row per sample)
// and labels y.
//
// Example:
//
//	model, err := classify.Fit(x, []string{"cat", "dog", ...}, classify.Config{})
func Fit[L comparable](x *mat.Dense, y []L, cfg Config) (*Model[L], error) {
	return classify.Fit(x, y, cfg)
}

// Accuracy computes the fraction of predictions matching the truth.
//
// Example:
//
//	acc := classify.Accuracy(pred, truth)
//	fmt.Printf("accuracy: %.2f%%\n", acc*100)
func Accuracy[L comparable](pred, truth []L) float64 {
	return classify.Accuracy(pred, truth)
}

// Activations

// Activation selects the hidden-layer activation function. The output
// layer is always softmax.
type Activation = nn.Activation

const (
	// Identity passes pre-activations through unchanged.
	Identity = nn.Identity
	// Sigmoid is the logistic function.
	Sigmoid = nn.Sigmoid
	// Tanh is the hyperbolic tangent.
	Tanh = nn.Tanh
	// ReLU is the rectified linear unit, the default.
	ReLU = nn.ReLU
)

// Initialization

// WeightInit selects the weight initialization scheme.
type WeightInit = nn.WeightInit

const (
	// Glorot draws weights uniformly with variance scaled to fan-in
	// plus fan-out, the default.
	Glorot = nn.Glorot
	// He draws normal weights with variance scaled to fan-in, suited
	// to ReLU networks.
	He = nn.He
)

// BiasInit selects the bias initialization scheme.
type BiasInit = nn.BiasInit

const (
	// Zeros initializes biases to zero, the default.
	Zeros = nn.Zeros
	// Ones initializes biases to one.
	Ones = nn.Ones
)

// Solvers

// Solver selects the training minimizer.
type Solver = classify.Solver

const (
	// LBFGS is limited-memory quasi-Newton, the default.
	LBFGS = classify.LBFGS
	// GradientDescent is full-batch descent with momentum.
	GradientDescent = classify.GradientDescent
	// Adam is adaptive moment estimation.
	Adam = classify.Adam
)

// Errors

// ConfigError reports an invalid or unsupported configuration value.
type ConfigError = classify.ConfigError

// DimensionError reports prediction input whose feature count does not
// match the fitted model.
type DimensionError = classify.DimensionError

// Common errors.
var (
	// ErrEmptyInput is returned by prediction when given zero rows.
	ErrEmptyInput = classify.ErrEmptyInput
	// ErrNotFitted is returned when inference is attempted on a model
	// that has no trained parameters.
	ErrNotFitted = classify.ErrNotFitted
)
