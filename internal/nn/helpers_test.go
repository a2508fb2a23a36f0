package nn

import (
	"gonum.org/v1/gonum/mat"
)

// denseFrom builds an r x c matrix from values listed row-major.
func denseFrom(r, c int, vals ...float64) *mat.Dense {
	return mat.NewDense(r, c, vals)
}

// vecFrom builds a vector from its entries.
func vecFrom(vals ...float64) *mat.VecDense {
	return mat.NewVecDense(len(vals), vals)
}

// matEqual reports element-wise equality within tol (exact when tol==0).
func matEqual(a, b *mat.Dense, tol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			d := a.At(i, j) - b.At(i, j)
			if d < 0 {
				d = -d
			}
			if d > tol {
				return false
			}
		}
	}
	return true
}
