// Package dataset generates synthetic labeled data for training
// demonstrations and tests.
package dataset

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Blobs draws samplesPerClass points around each center from an
// isotropic Gaussian with the given standard deviation. It returns a
// feature matrix with one row per sample and the class index of each
// row. Rows are grouped by class in center order; callers that need a
// shuffled set can permute rows and labels together.
func Blobs(samplesPerClass int, centers [][]float64, stddev float64, rng *rand.Rand) (*mat.Dense, []int) {
	if len(centers) == 0 || samplesPerClass <= 0 {
		return nil, nil
	}
	dim := len(centers[0])
	total := samplesPerClass * len(centers)
	x := mat.NewDense(total, dim, nil)
	y := make([]int, total)

	row := 0
	for class, center := range centers {
		for i := 0; i < samplesPerClass; i++ {
			dst := x.RawRowView(row)
			for j := 0; j < dim; j++ {
				dst[j] = center[j] + rng.NormFloat64()*stddev
			}
			y[row] = class
			row++
		}
	}
	return x, y
}

// Shuffle permutes the rows of x and the entries of y with the same
// random permutation, in place.
func Shuffle(x *mat.Dense, y []int, rng *rand.Rand) {
	rows, cols := x.Dims()
	tmp := make([]float64, cols)
	rng.Shuffle(rows, func(i, j int) {
		copy(tmp, x.RawRowView(i))
		copy(x.RawRowView(i), x.RawRowView(j))
		copy(x.RawRowView(j), tmp)
		y[i], y[j] = y[j], y[i]
	})
}
