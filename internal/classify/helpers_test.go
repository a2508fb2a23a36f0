package classify

import "gonum.org/v1/gonum/mat"

func denseOf(r, c int, vals ...float64) *mat.Dense {
	return mat.NewDense(r, c, vals)
}
