// Package classify implements the training and inference surface of the
// feed-forward classifier.
//
// This package provides:
//   - Config: every training option in one validated struct
//   - Fit: the training driver, mapping labeled data to a fitted Model
//   - Model: immutable fitted classifier with Predict and PredictProba
//   - label indexing between user label types and class indices
//
// Labels are generic over any comparable type; class indices are
// assigned in order of first appearance in the training labels and
// predictions map back to the original label values. Optional class
// priors reweight posteriors toward a deployment distribution, and an
// optional misclassification cost matrix switches Predict from
// posterior argmax to expected-cost minimization.
package classify
