// Package main provides the Cortex classifier CLI.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/cortex-ml/cortex/classify"
	"github.com/cortex-ml/cortex/internal/dataset"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Cortex %s\n", version)
		return
	}
	if len(os.Args) > 1 && os.Args[1] == "demo" {
		if err := demo(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Cortex - feed-forward classification for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Train a classifier on synthetic Gaussian blobs")
}

// demo trains on synthetic blobs and reports training accuracy.
func demo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	samples := fs.Int("samples", 100, "samples per class")
	classes := fs.Int("classes", 3, "number of classes")
	stddev := fs.Float64("stddev", 1.0, "blob standard deviation")
	hidden := fs.Int("hidden", 10, "hidden layer width")
	iterations := fs.Int("iterations", 500, "optimizer iteration limit")
	seed := fs.Int64("seed", 1, "random seed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed))
	centers := make([][]float64, *classes)
	for c := range centers {
		centers[c] = []float64{rng.NormFloat64() * 5, rng.NormFloat64() * 5}
	}
	x, y := dataset.Blobs(*samples, centers, *stddev, rng)
	dataset.Shuffle(x, y, rng)

	model, err := classify.Fit(x, y, classify.Config{
		LayerSizes:     []int{*hidden},
		IterationLimit: *iterations,
		Standardize:    true,
		Rand:           rng,
	})
	if err != nil {
		return err
	}

	pred, err := model.Predict(x)
	if err != nil {
		return err
	}

	rows, _ := x.Dims()
	fmt.Printf("trained on %d samples, %d classes\n", rows, *classes)
	fmt.Printf("stopped after %d iterations (%s), loss %.6f\n",
		model.Iterations(), model.Status(), model.Loss())
	fmt.Printf("training accuracy: %.2f%%\n", classify.Accuracy(pred, y)*100)
	return nil
}
