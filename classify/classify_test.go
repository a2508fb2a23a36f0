// Copyright 2026 Cortex ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package classify_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cortex-ml/cortex/classify"
)

// TestPublicAPI exercises the exported surface end to end: fit on a tiny
// separable problem, predict, and read the training report.
func TestPublicAPI(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := 40
	x := mat.NewDense(2*n, 2, nil)
	y := make([]string, 2*n)
	for i := 0; i < n; i++ {
		x.Set(i, 0, rng.NormFloat64())
		x.Set(i, 1, rng.NormFloat64())
		y[i] = "left"
		x.Set(n+i, 0, 6+rng.NormFloat64())
		x.Set(n+i, 1, 6+rng.NormFloat64())
		y[n+i] = "right"
	}

	model, err := classify.Fit(x, y, classify.Config{
		LayerSizes: []int{8},
		Activation: classify.ReLU,
		WeightInit: classify.He,
		Solver:     classify.LBFGS,
	})
	require.NoError(t, err)

	pred, err := model.Predict(x)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, classify.Accuracy(pred, y), 0.95)
	assert.Equal(t, []string{"left", "right"}, model.Classes())
}
