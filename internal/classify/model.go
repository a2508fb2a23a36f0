package classify

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cortex-ml/cortex/internal/nn"
)

// Model is a fitted feed-forward classifier. It is immutable after Fit
// returns and safe for concurrent prediction. The type parameter L is
// the label type of the training data; predictions come back as the
// same type.
type Model[L comparable] struct {
	topology   nn.Topology
	params     *nn.Parameters
	activation nn.Activation

	classes     []L
	classWeight []float64 // posterior reweighting factors, nil when unused
	costs       *mat.Dense
	scaler      *scaler

	converged  bool
	status     string
	loss       float64
	iterations int
}

// Classes returns the model's labels in class-index order. The returned
// slice is a copy.
func (m *Model[L]) Classes() []L {
	out := make([]L, len(m.classes))
	copy(out, m.classes)
	return out
}

// NumFeatures returns the feature count the model was fitted with.
func (m *Model[L]) NumFeatures() int { return m.topology.InputDim }

// Converged reports whether training met a tolerance before exhausting
// its iteration limit.
func (m *Model[L]) Converged() bool { return m.converged }

// Status describes how training stopped.
func (m *Model[L]) Status() string { return m.status }

// Loss returns the final training cross-entropy.
func (m *Model[L]) Loss() float64 { return m.loss }

// Iterations returns the optimizer iterations spent in training.
func (m *Model[L]) Iterations() int { return m.iterations }

// PredictProba returns class posterior probabilities for each row of x,
// one row per sample and one column per class in Classes order. If the
// model was configured with class priors the posteriors are reweighted
// toward them and renormalized per row.
func (m *Model[L]) PredictProba(x *mat.Dense) (*mat.Dense, error) {
	if m.params == nil {
		return nil, ErrNotFitted
	}
	rows, cols := x.Dims()
	if rows == 0 {
		return nil, ErrEmptyInput
	}
	if cols != m.topology.InputDim {
		return nil, &DimensionError{Want: m.topology.InputDim, Got: cols}
	}
	if m.scaler != nil {
		x = m.scaler.transform(x)
	}
	probs := nn.Infer(x, m.params, m.activation)
	if m.classWeight != nil {
		reweightRows(probs, m.classWeight)
	}
	return probs, nil
}

// Predict returns the predicted label for each row of x. Without a cost
// matrix the prediction is the posterior argmax; with one it is the
// class minimizing the expected misclassification cost under the
// posterior.
func (m *Model[L]) Predict(x *mat.Dense) ([]L, error) {
	probs, err := m.PredictProba(x)
	if err != nil {
		return nil, err
	}
	rows, _ := probs.Dims()
	out := make([]L, rows)
	for i := 0; i < rows; i++ {
		p := probs.RawRowView(i)
		var best int
		if m.costs != nil {
			best = minExpectedCost(p, m.costs)
		} else {
			best = argmax(p)
		}
		out[i] = m.classes[best]
	}
	return out, nil
}

// reweightRows multiplies each row elementwise by w and renormalizes it
// to sum to one.
func reweightRows(p *mat.Dense, w []float64) {
	rows, cols := p.Dims()
	for i := 0; i < rows; i++ {
		row := p.RawRowView(i)
		sum := 0.0
		for j := 0; j < cols; j++ {
			row[j] *= w[j]
			sum += row[j]
		}
		for j := 0; j < cols; j++ {
			row[j] /= sum
		}
	}
}

// minExpectedCost returns the class index j minimizing
// sum_i p[i]*costs[i][j].
func minExpectedCost(p []float64, costs *mat.Dense) int {
	k := len(p)
	best, bestCost := 0, 0.0
	for j := 0; j < k; j++ {
		expected := 0.0
		for i := 0; i < k; i++ {
			expected += p[i] * costs.At(i, j)
		}
		if j == 0 || expected < bestCost {
			best, bestCost = j, expected
		}
	}
	return best
}

func argmax(p []float64) int {
	best := 0
	for j := 1; j < len(p); j++ {
		if p[j] > p[best] {
			best = j
		}
	}
	return best
}

// Accuracy returns the fraction of predictions matching the truth.
// It panics if the slices differ in length.
func Accuracy[L comparable](pred, truth []L) float64 {
	if len(pred) != len(truth) {
		panic("classify: prediction and truth lengths differ")
	}
	if len(pred) == 0 {
		return 0
	}
	correct := 0
	for i := range pred {
		if pred[i] == truth[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(pred))
}
