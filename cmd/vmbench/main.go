package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/oliverbestmann/vecmat/bench"
	"github.com/pkg/profile"
)

func main() {
	var opts bench.Options

	flag.IntVar(&opts.Dim, "dim", 4, "dimension of vectors and matrices")
	flag.IntVar(&opts.Rounds, "rounds", 5, "timed rounds per case")
	flag.IntVar(&opts.Iterations, "iterations", 1000, "operations per round")
	flag.IntVar(&opts.Seed, "seed", 1, "seed of the generated inputs")
	profileMode := flag.String("profile", "", "profile the run: cpu or mem")
	profileDir := flag.String("profile-dir", ".", "directory to write profiles to")
	verbose := flag.Bool("v", false, "log every finished case")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	slog.SetDefault(slog.New(handler))

	if err := run(opts, *profileMode, *profileDir); err != nil {
		slog.Error("Benchmark failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(opts bench.Options, profileMode, profileDir string) error {
	if profileMode != "" {
		mode, err := profileOption(profileMode)
		if err != nil {
			return err
		}

		defer profile.Start(mode, profile.ProfilePath(profileDir), profile.Quiet).Stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	report, err := bench.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("run benchmark: %w", err)
	}

	for _, result := range report.Results {
		slog.Info("Benchmark result",
			slog.String("case", result.Name),
			slog.Int("dim", result.Dim),
			slog.Duration("perOp", result.Timings.PerOp(result.Iterations)),
			slog.Duration("maxRound", result.Timings.MaxDuration),
			slog.Float64("checksum", result.Checksum),
		)
	}

	return nil
}

func profileOption(mode string) (func(*profile.Profile), error) {
	switch mode {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	}

	return nil, fmt.Errorf("unknown profile mode %q", mode)
}
