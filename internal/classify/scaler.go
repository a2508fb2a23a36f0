package classify

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// scaler standardizes features to zero mean and unit variance, fitted
// once on the training set and replayed unchanged at prediction time.
type scaler struct {
	mean []float64
	std  []float64
}

// fitScaler computes per-column statistics of x.
func fitScaler(x *mat.Dense) *scaler {
	rows, cols := x.Dims()
	s := &scaler{
		mean: make([]float64, cols),
		std:  make([]float64, cols),
	}
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		s.mean[j], s.std[j] = stat.MeanStdDev(col, nil)
		// Constant columns carry no information; leave them centered
		// rather than dividing by zero.
		if s.std[j] == 0 {
			s.std[j] = 1
		}
	}
	return s
}

// transform returns the standardized copy of x. The input is not
// mutated.
func (s *scaler) transform(x *mat.Dense) *mat.Dense {
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		src := x.RawRowView(i)
		dst := out.RawRowView(i)
		for j := 0; j < cols; j++ {
			dst[j] = (src[j] - s.mean[j]) / s.std[j]
		}
	}
	return out
}
