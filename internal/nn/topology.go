package nn

import "fmt"

// Topology describes the fixed geometry of a feed-forward network:
// the input width, the widths of the hidden layers in order, and the
// number of output classes. The output layer is implicit; its width
// always equals NumClasses.
//
// A Topology is immutable for the lifetime of a model. Every layer shape
// is derivable from it, which lets the flatten codec and the gradient
// engine validate dimensions without inspecting parameter values.
type Topology struct {
	InputDim   int   // number of input features
	Hidden     []int // hidden layer widths, in order (length >= 1)
	NumClasses int   // output layer width
}

// NumLayers returns the number of weighted layers, hidden plus output.
func (t Topology) NumLayers() int {
	return len(t.Hidden) + 1
}

// LayerDims returns the (fanIn, fanOut) of weighted layer i, where
// i ranges over [0, NumLayers()).
func (t Topology) LayerDims(i int) (in, out int) {
	if i == 0 {
		in = t.InputDim
	} else {
		in = t.Hidden[i-1]
	}
	if i == len(t.Hidden) {
		out = t.NumClasses
	} else {
		out = t.Hidden[i]
	}
	return in, out
}

// NumParameters returns the total number of scalar parameters: the sum of
// every weight matrix size plus every bias length. This is the length of
// the flat vector handed to the optimizer.
func (t Topology) NumParameters() int {
	n := 0
	for i := 0; i < t.NumLayers(); i++ {
		in, out := t.LayerDims(i)
		n += out*in + out
	}
	return n
}

// Validate checks that the topology describes a realizable network.
func (t Topology) Validate() error {
	if t.InputDim < 1 {
		return fmt.Errorf("topology: input dimension must be positive, got %d", t.InputDim)
	}
	if len(t.Hidden) < 1 {
		return fmt.Errorf("topology: at least one hidden layer is required")
	}
	for i, h := range t.Hidden {
		if h < 1 {
			return fmt.Errorf("topology: hidden layer %d width must be positive, got %d", i, h)
		}
	}
	if t.NumClasses < 2 {
		return fmt.Errorf("topology: need at least 2 classes, got %d", t.NumClasses)
	}
	return nil
}

func (t Topology) String() string {
	return fmt.Sprintf("Topology(in=%d, hidden=%v, classes=%d)", t.InputDim, t.Hidden, t.NumClasses)
}
