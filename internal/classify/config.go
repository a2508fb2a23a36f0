package classify

import (
	"fmt"
	"math/rand"

	"github.com/cortex-ml/cortex/internal/nn"
)

// Solver enumerates the available training minimizers.
type Solver int

const (
	// LBFGS is the default: limited-memory quasi-Newton via gonum.
	LBFGS Solver = iota
	// GradientDescent is full-batch descent with momentum.
	GradientDescent
	// Adam is adaptive moment estimation.
	Adam
)

func (s Solver) String() string {
	switch s {
	case LBFGS:
		return "lbfgs"
	case GradientDescent:
		return "sgd"
	case Adam:
		return "adam"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a member of the closed enumeration.
func (s Solver) Valid() bool {
	return s >= LBFGS && s <= Adam
}

// Config collects every training option in one typed struct, validated
// eagerly by Fit before any numeric work. The zero value is usable:
// defaults are filled in by applyDefaults.
type Config struct {
	// LayerSizes lists the hidden layer widths in order. Default: [10].
	LayerSizes []int
	// Activation is the hidden-layer activation. Default: ReLU. The
	// output layer is always softmax and not configurable.
	Activation nn.Activation
	// WeightInit selects Glorot-uniform or He-normal weights.
	WeightInit nn.WeightInit
	// BiasInit selects all-zeros or all-ones biases.
	BiasInit nn.BiasInit
	// Solver picks the minimizer. Default: LBFGS.
	Solver Solver

	// IterationLimit bounds optimizer iterations. Default: 1000.
	IterationLimit int
	// GradientTolerance stops when the gradient infinity norm drops to
	// or below this value. Default: 1e-6.
	GradientTolerance float64
	// LossTolerance stops on loss plateau. Zero disables.
	LossTolerance float64
	// StepTolerance stops on small parameter steps. Zero disables.
	StepTolerance float64

	// LearningRate and Momentum apply to the GradientDescent and Adam
	// solvers only. Zero means the solver's default.
	LearningRate float64
	Momentum     float64

	// Standardize z-scores each feature column on the training set and
	// replays the same transform at prediction time.
	Standardize bool

	// ClassPriors optionally reweights class posteriors at prediction
	// time. Indexed in class-discovery order (first appearance in the
	// training labels); must be positive and have one entry per class.
	ClassPriors []float64
	// MisclassCosts optionally makes prediction minimize expected cost
	// instead of taking the posterior argmax. Costs[i][j] is the cost
	// of predicting class j when the truth is class i; the matrix must
	// be square with one row per class and a zero diagonal.
	MisclassCosts [][]float64

	// Rand is the source for parameter initialization. Nil means a
	// fixed-seed generator, making Fit deterministic by default.
	Rand *rand.Rand
}

// applyDefaults fills zero-valued fields. It returns a copy; the
// caller's Config is never mutated.
func (c Config) applyDefaults() Config {
	if c.LayerSizes == nil {
		c.LayerSizes = []int{10}
	}
	if c.IterationLimit == 0 {
		c.IterationLimit = 1000
	}
	if c.GradientTolerance == 0 {
		c.GradientTolerance = 1e-6
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(1))
	}
	return c
}

// validate runs every configuration check that does not depend on the
// training data. Class-count-dependent checks (priors and costs
// lengths) run in Fit once the label set is known.
func (c Config) validate() error {
	for i, h := range c.LayerSizes {
		if h < 1 {
			return &ConfigError{
				Field:  "LayerSizes",
				Reason: fmt.Sprintf("layer %d width must be positive, got %d", i, h),
			}
		}
	}
	if !c.Activation.Valid() {
		return &ConfigError{Field: "Activation", Reason: fmt.Sprintf("unsupported value %d", int(c.Activation))}
	}
	if !c.WeightInit.Valid() {
		return &ConfigError{Field: "WeightInit", Reason: fmt.Sprintf("unsupported value %d", int(c.WeightInit))}
	}
	if !c.BiasInit.Valid() {
		return &ConfigError{Field: "BiasInit", Reason: fmt.Sprintf("unsupported value %d", int(c.BiasInit))}
	}
	if !c.Solver.Valid() {
		return &ConfigError{Field: "Solver", Reason: fmt.Sprintf("unsupported value %d", int(c.Solver))}
	}
	if c.IterationLimit < 1 {
		return &ConfigError{Field: "IterationLimit", Reason: "must be positive"}
	}
	if c.GradientTolerance < 0 {
		return &ConfigError{Field: "GradientTolerance", Reason: "must be non-negative"}
	}
	if c.LossTolerance < 0 {
		return &ConfigError{Field: "LossTolerance", Reason: "must be non-negative"}
	}
	if c.StepTolerance < 0 {
		return &ConfigError{Field: "StepTolerance", Reason: "must be non-negative"}
	}
	if c.LearningRate < 0 {
		return &ConfigError{Field: "LearningRate", Reason: "must be non-negative"}
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return &ConfigError{Field: "Momentum", Reason: "must be in [0, 1)"}
	}
	for _, p := range c.ClassPriors {
		if p <= 0 {
			return &ConfigError{Field: "ClassPriors", Reason: "all priors must be positive"}
		}
	}
	for i, row := range c.MisclassCosts {
		if len(row) != len(c.MisclassCosts) {
			return &ConfigError{Field: "MisclassCosts", Reason: "matrix must be square"}
		}
		for j, v := range row {
			if v < 0 {
				return &ConfigError{Field: "MisclassCosts", Reason: "costs must be non-negative"}
			}
			if i == j && v != 0 {
				return &ConfigError{Field: "MisclassCosts", Reason: "diagonal must be zero"}
			}
		}
	}
	return nil
}
