package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/vecmat/glm"
)

type Result struct {
	Name       string
	Dim        int
	Iterations int
	Timings    Timings

	// sum of all results, keeps the compiler from dropping the work
	Checksum float64
}

type Report struct {
	Options Options
	Results []Result
}

type benchCase struct {
	name string
	run  func() float32
}

// Run times every operation for the configured dimension. The context is
// checked between rounds.
func Run(ctx context.Context, opts Options) (Report, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return Report{}, fmt.Errorf("invalid options: %w", err)
	}

	fixtures, err := NewFixtures(opts.CacheSize)
	if err != nil {
		return Report{}, err
	}

	report := Report{Options: opts}

	for _, bc := range casesFor(opts.Dim, fixtures, opts.Seed) {
		result := Result{
			Name:       bc.name,
			Dim:        opts.Dim,
			Iterations: opts.Iterations,
		}

		for round := range opts.Rounds {
			if err := ctx.Err(); err != nil {
				return report, fmt.Errorf("%s round %d: %w", bc.name, round, err)
			}

			startTime := time.Now()
			for range opts.Iterations {
				result.Checksum += float64(bc.run())
			}

			result.Timings.update(time.Since(startTime))
		}

		slog.Debug("Finished benchmark case",
			slog.String("case", bc.name),
			slog.Int("dim", opts.Dim),
			slog.Duration("average", result.Timings.AverageDuration),
		)

		report.Results = append(report.Results, result)
	}

	return report, nil
}

func casesFor(dim int, f *Fixtures, seed int) []benchCase {
	switch dim {
	case 1:
		return cases[glm.D1](f, seed)
	case 2:
		return append(cases[glm.D2](f, seed), planarCases(f, seed)...)
	case 3:
		return append(cases[glm.D3](f, seed), spatialCases(f, seed)...)
	case 4:
		return cases[glm.D4](f, seed)
	case 5:
		return cases[glm.D5](f, seed)
	case 6:
		return cases[glm.D6](f, seed)
	case 7:
		return cases[glm.D7](f, seed)
	case 8:
		return cases[glm.D8](f, seed)
	}

	return nil
}

func cases[D glm.Dim](f *Fixtures, seed int) []benchCase {
	a := Vector[D](f, seed)
	b := Vector[D](f, seed+1)
	m := Matrix[D, D](f, seed)

	return []benchCase{
		{name: "dot", run: func() float32 { return a.Dot(b) }},
		{name: "normalize", run: func() float32 { return a.Normalize().At(0) }},
		{name: "project", run: func() float32 { return a.Project(b).At(0) }},
		{name: "distance", run: func() float32 { return a.Distance(b) }},
		{name: "transform", run: func() float32 { return m.Transform(a).At(0) }},
		{name: "transpose", run: func() float32 { return m.Transpose().At(0, 0) }},
		{name: "matmul", run: func() float32 { return m.Mul(m).At(0, 0) }},
		{name: "determinant", run: func() float32 { return glm.Determinant(m) }},
	}
}

func planarCases(f *Fixtures, seed int) []benchCase {
	v := glm.Vec2FromVecN(Vector[glm.D2](f, seed))
	theta := glm.Rad(v.X)

	return []benchCase{
		{name: "perp", run: func() float32 { return v.Perp().X }},
		{name: "rotation", run: func() float32 { return glm.Rotation[float32](theta).At(1, 0) }},
	}
}

func spatialCases(f *Fixtures, seed int) []benchCase {
	a := glm.Vec3FromVecN(Vector[glm.D3](f, seed))
	b := glm.Vec3FromVecN(Vector[glm.D3](f, seed+1))

	return []benchCase{
		{name: "cross", run: func() float32 { return a.Cross(b).Z }},
	}
}
