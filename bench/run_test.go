package bench

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func caseNames(report Report) []string {
	var names []string
	for _, result := range report.Results {
		names = append(names, result.Name)
	}

	return names
}

func TestRun(t *testing.T) {
	report, err := Run(context.Background(), Options{Dim: 3, Rounds: 2, Iterations: 10})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	names := caseNames(report)
	for _, want := range []string{"dot", "normalize", "project", "transform", "matmul", "determinant", "cross"} {
		if !slices.Contains(names, want) {
			t.Fatalf("missing case %q in %v", want, names)
		}
	}

	if slices.Contains(names, "perp") {
		t.Fatalf("planar case in 3D run: %v", names)
	}

	for _, result := range report.Results {
		if result.Dim != 3 || result.Iterations != 10 || result.Timings.Rounds != 2 {
			t.Fatalf("result=%+v", result)
		}
	}
}

func TestRunEveryDimension(t *testing.T) {
	for dim := 1; dim <= 8; dim++ {
		report, err := Run(context.Background(), Options{Dim: dim, Rounds: 1, Iterations: 1})
		if err != nil {
			t.Fatalf("run dim %d: %v", dim, err)
		}

		if len(report.Results) == 0 {
			t.Fatalf("no results for dim %d", dim)
		}
	}

	report, err := Run(context.Background(), Options{Dim: 2, Rounds: 1, Iterations: 1})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	names := caseNames(report)
	if !slices.Contains(names, "perp") || !slices.Contains(names, "rotation") {
		t.Fatalf("missing planar cases in %v", names)
	}
}

func TestRunInvalidOptions(t *testing.T) {
	if _, err := Run(context.Background(), Options{Dim: 12}); err == nil {
		t.Fatalf("dimension 12 accepted")
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Dim: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}
