package classify

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cortex-ml/cortex/internal/nn"
	"github.com/cortex-ml/cortex/internal/optim"
)

// Fit trains a feed-forward classifier on the feature matrix x (one row
// per sample) and labels y. The configuration is validated eagerly;
// invalid settings return a *ConfigError before any numeric work.
// Reaching the iteration limit without meeting a tolerance is not an
// error: the best parameters found are returned with Converged false.
func Fit[L comparable](x *mat.Dense, y []L, cfg Config) (*Model[L], error) {
	cfg = cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rows, cols := x.Dims()
	if rows == 0 {
		return nil, ErrEmptyInput
	}
	if len(y) != rows {
		return nil, &ConfigError{
			Field:  "y",
			Reason: fmt.Sprintf("got %d labels for %d samples", len(y), rows),
		}
	}

	labels := newLabelIndex(y)
	k := labels.numClasses()
	if k < 2 {
		return nil, &ConfigError{Field: "y", Reason: "need at least two distinct classes"}
	}
	if cfg.ClassPriors != nil && len(cfg.ClassPriors) != k {
		return nil, &ConfigError{
			Field:  "ClassPriors",
			Reason: fmt.Sprintf("got %d priors for %d classes", len(cfg.ClassPriors), k),
		}
	}
	if cfg.MisclassCosts != nil && len(cfg.MisclassCosts) != k {
		return nil, &ConfigError{
			Field:  "MisclassCosts",
			Reason: fmt.Sprintf("got %d cost rows for %d classes", len(cfg.MisclassCosts), k),
		}
	}

	var sc *scaler
	if cfg.Standardize {
		sc = fitScaler(x)
		x = sc.transform(x)
	}

	topo := nn.Topology{InputDim: cols, Hidden: cfg.LayerSizes, NumClasses: k}
	if err := topo.Validate(); err != nil {
		return nil, err
	}

	oneHot := nn.OneHot(labels.encode(y), k)
	params := nn.NewParameters(topo, cfg.WeightInit, cfg.BiasInit, cfg.Rand)
	x0 := nn.Flatten(params)

	result, err := minimize(cfg, objective(topo, x, oneHot, cfg.Activation), x0)
	if err != nil {
		return nil, err
	}

	fitted, err := nn.Unflatten(result.X, topo)
	if err != nil {
		return nil, err
	}

	m := &Model[L]{
		topology:   topo,
		params:     fitted,
		activation: cfg.Activation,
		classes:    labels.classes,
		scaler:     sc,
		converged:  result.Converged,
		status:     result.Status,
		loss:       result.Loss,
		iterations: result.Iterations,
	}
	if cfg.ClassPriors != nil {
		m.classWeight = priorWeights(cfg.ClassPriors, labels.empiricalPriors())
	}
	if cfg.MisclassCosts != nil {
		m.costs = mat.NewDense(k, k, nil)
		for i, row := range cfg.MisclassCosts {
			m.costs.SetRow(i, row)
		}
	}
	return m, nil
}

// objective wraps the network loss as a flat-vector objective. Gonum's
// optimizers evaluate Func and Grad separately at the same point, so the
// last evaluation is memoized to avoid doing every forward-backward pass
// twice.
func objective(topo nn.Topology, x, y *mat.Dense, act nn.Activation) optim.Objective {
	var (
		lastX    []float64
		lastLoss float64
		lastGrad []float64
	)
	eval := func(vec []float64) {
		if lastX != nil && floats.Equal(vec, lastX) {
			return
		}
		params, err := nn.Unflatten(vec, topo)
		if err != nil {
			panic(err) // optimizer never changes the vector length
		}
		loss, grad := nn.LossAndGrad(x, y, params, act)
		if lastX == nil {
			lastX = make([]float64, len(vec))
		}
		copy(lastX, vec)
		lastLoss = loss
		lastGrad = nn.Flatten(grad)
	}
	return optim.Objective{
		Func: func(vec []float64) float64 {
			eval(vec)
			return lastLoss
		},
		Grad: func(grad, vec []float64) {
			eval(vec)
			copy(grad, lastGrad)
		},
	}
}

// minimize dispatches on the configured solver.
func minimize(cfg Config, obj optim.Objective, x0 []float64) (*optim.Result, error) {
	settings := optim.Settings{
		IterationLimit:    cfg.IterationLimit,
		GradientTolerance: cfg.GradientTolerance,
		LossTolerance:     cfg.LossTolerance,
		StepTolerance:     cfg.StepTolerance,
	}
	var minimizer optim.Minimizer
	switch cfg.Solver {
	case GradientDescent:
		minimizer = optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate, Momentum: cfg.Momentum})
	case Adam:
		minimizer = optim.NewAdam(optim.AdamConfig{LR: cfg.LearningRate})
	default:
		minimizer = optim.NewQuasiNewton()
	}
	return minimizer.Minimize(obj, x0, settings)
}

// priorWeights converts target class priors into per-class posterior
// multipliers. The network's softmax outputs reflect the training-set
// class balance; dividing by the empirical frequency and multiplying by
// the target prior corrects the posterior toward the deployment
// distribution.
func priorWeights(target, empirical []float64) []float64 {
	w := make([]float64, len(target))
	sum := 0.0
	for _, p := range target {
		sum += p
	}
	for i, p := range target {
		w[i] = (p / sum) / empirical[i]
	}
	return w
}
