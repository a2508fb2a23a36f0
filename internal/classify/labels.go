package classify

import "fmt"

// labelIndex maps between user-facing class labels and the contiguous
// class indices the network trains on. Labels are any comparable type
// (string categories, ints, bools); indices are assigned in order of
// first appearance in the training labels and are fixed for the model's
// lifetime.
type labelIndex[L comparable] struct {
	classes []L
	index   map[L]int
	counts  []int // training occurrences per class, for empirical priors
}

// newLabelIndex scans y once and assigns each distinct label the next
// free index.
func newLabelIndex[L comparable](y []L) *labelIndex[L] {
	li := &labelIndex[L]{index: make(map[L]int)}
	for _, label := range y {
		if _, ok := li.index[label]; !ok {
			li.index[label] = len(li.classes)
			li.classes = append(li.classes, label)
			li.counts = append(li.counts, 0)
		}
		li.counts[li.index[label]]++
	}
	return li
}

// numClasses returns the number of distinct labels seen.
func (li *labelIndex[L]) numClasses() int {
	return len(li.classes)
}

// encode converts labels to class indices. Every label must have been
// seen at construction; encode is only called on the training labels.
func (li *labelIndex[L]) encode(y []L) []int {
	out := make([]int, len(y))
	for i, label := range y {
		idx, ok := li.index[label]
		if !ok {
			panic(fmt.Sprintf("classify: label %v not in training label set", label))
		}
		out[i] = idx
	}
	return out
}

// empiricalPriors returns the training-set class frequencies.
func (li *labelIndex[L]) empiricalPriors() []float64 {
	total := 0
	for _, c := range li.counts {
		total += c
	}
	priors := make([]float64, len(li.counts))
	for i, c := range li.counts {
		priors[i] = float64(c) / float64(total)
	}
	return priors
}
