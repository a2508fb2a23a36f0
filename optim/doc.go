// Copyright 2026 Cortex ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim exposes the unconstrained minimizers the classifier
// trains with, usable on their own for any differentiable objective
// over a flat parameter vector.
//
// A minimizer sees only an Objective (a loss function and its gradient)
// and a Settings struct of stopping controls. Reaching the
// iteration limit without meeting a tolerance returns the best point
// found with Result.Converged set to false; it is not an error.
package optim
