package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// logEps floors the probability fed to log when a prediction underflows
// to zero. Clamping keeps the loss exactly 0 at p=1 and non-negative
// everywhere; shifting by an additive epsilon would make log(1+eps)
// slightly positive and the loss slightly negative.
const logEps = 1e-12

// OneHot encodes class indices into an [M, numClasses] indicator matrix.
// Panics if any index is out of range; callers encode labels through the
// class index, so an out-of-range value is a programming error.
func OneHot(classes []int, numClasses int) *mat.Dense {
	y := mat.NewDense(len(classes), numClasses, nil)
	for i, c := range classes {
		if c < 0 || c >= numClasses {
			panic(fmt.Sprintf("nn.OneHot: class index %d out of range [0,%d)", c, numClasses))
		}
		y.Set(i, c, 1)
	}
	return y
}

// CrossEntropy computes the mean cross-entropy between predicted
// probabilities p and one-hot targets y, both [M, K]:
//
//	loss = -sum(y .* log(max(p, eps))) / M
//
// The result is non-negative and approaches 0 as the predicted
// probability on each true class approaches 1.
func CrossEntropy(p, y *mat.Dense) float64 {
	m, k := p.Dims()
	ym, yk := y.Dims()
	if ym != m || yk != k {
		panic(fmt.Sprintf("nn.CrossEntropy: probabilities are %dx%d but targets are %dx%d", m, k, ym, yk))
	}
	loss := 0.0
	for i := 0; i < m; i++ {
		prow := p.RawRowView(i)
		yrow := y.RawRowView(i)
		for j, t := range yrow {
			if t != 0 {
				loss -= t * math.Log(math.Max(prow[j], logEps))
			}
		}
	}
	return loss / float64(m)
}

// Backward computes the gradient of the mean cross-entropy loss with
// respect to every weight and bias, by reverse-mode chain rule over the
// fixed layer stack. cache must come from a Forward call on the same
// parameters, and y must be the one-hot target matrix for that batch.
//
// The output-layer error uses the combined softmax/cross-entropy form
// dZ = P - Y. Splitting it into a softmax Jacobian times a cross-entropy
// gradient divides by predicted probabilities and blows up as they
// approach zero; the closed form is exact and stable.
//
// All gradients are normalized by the row count of the batch in cache,
// matching the normalization CrossEntropy applies to the loss.
func Backward(cache *Cache, y *mat.Dense, p *Parameters, act Activation) *Parameters {
	probs := cache.Probs()
	m, k := probs.Dims()
	ym, yk := y.Dims()
	if ym != m || yk != k {
		panic(fmt.Sprintf("nn.Backward: probabilities are %dx%d but targets are %dx%d", m, k, ym, yk))
	}

	l := p.NumLayers()
	grads := &Parameters{
		Weights: make([]*mat.Dense, l),
		Biases:  make([]*mat.VecDense, l),
	}

	// dZ for the output layer: P - Y.
	dZ := mat.NewDense(m, k, nil)
	dZ.Sub(probs, y)

	invM := 1.0 / float64(m)
	for i := l - 1; i >= 0; i-- {
		// Activations[i] is the input to weighted layer i; index 0 holds
		// the batch itself, so the first hidden layer needs no special case.
		in := cache.Activations[i]

		_, inDim := in.Dims()
		outDim, _ := p.Weights[i].Dims()

		dW := mat.NewDense(outDim, inDim, nil)
		dW.Mul(dZ.T(), in)
		dW.Scale(invM, dW)
		grads.Weights[i] = dW

		db := mat.NewVecDense(outDim, nil)
		dzRaw := dZ.RawMatrix()
		dbData := db.RawVector().Data
		for r := 0; r < m; r++ {
			row := dzRaw.Data[r*dzRaw.Stride : r*dzRaw.Stride+outDim]
			for j, v := range row {
				dbData[j] += v
			}
		}
		db.ScaleVec(invM, db)
		grads.Biases[i] = db

		if i == 0 {
			break
		}

		// Propagate to the previous layer: dA = dZ W_i, then gate by the
		// activation derivative evaluated from the cached outputs.
		dA := mat.NewDense(m, inDim, nil)
		dA.Mul(dZ, p.Weights[i])
		deriv := act.DerivFromOutput(cache.Activations[i])
		dA.MulElem(dA, deriv)
		dZ = dA
	}
	return grads
}

// LossAndGrad runs a full forward/backward pass for the batch and
// returns the scalar loss together with the parameter gradients. This is
// the pair the flatten codec serializes for the optimizer.
func LossAndGrad(x, y *mat.Dense, p *Parameters, act Activation) (float64, *Parameters) {
	cache := Forward(x, p, act)
	loss := CrossEntropy(cache.Probs(), y)
	return loss, Backward(cache, y, p, act)
}
