// Copyright 2026 Cortex ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package classify is the public surface of the Cortex feed-forward
// classifier.
//
// A classifier is trained with Fit, which takes a feature matrix (one
// row per sample), a slice of labels of any comparable type, and a
// Config. The fitted Model is immutable and safe for concurrent use:
//
//	model, err := classify.Fit(x, labels, classify.Config{
//	    LayerSizes: []int{16, 8},
//	    Activation: classify.ReLU,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pred, err := model.Predict(newSamples)
//
// Training minimizes softmax cross-entropy with L-BFGS by default;
// gradient descent with momentum and Adam are available through
// Config.Solver. Reaching the iteration limit before convergence is
// reported through Model.Converged, not as an error.
package classify
