// Package nn implements the numerical core of the feed-forward classifier:
//   - Topology: fixed layer geometry (input width, hidden widths, classes)
//   - Parameters: per-layer weight matrices and bias vectors
//   - Initializers: Glorot-uniform and He-normal weight schemes
//   - Flatten/Unflatten: lossless codec between structured parameters and
//     the flat vector consumed by the optimizer
//   - Forward: batched forward propagation with a softmax output head
//   - Loss/Backward: cross-entropy loss and analytic backpropagation
//
// All matrices follow the row-per-sample convention: an input batch is
// [batch, features] and layer i computes Z_i = A_{i-1} W_i^T + b_i.
// Gradients are derived in closed form for the fixed dense/softmax/
// cross-entropy stack; there is no computation graph.
package nn
