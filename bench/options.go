package bench

import (
	"fmt"

	"github.com/oliverbestmann/vecmat/glm"
)

type Options struct {
	// dimension of the vectors and square matrices, 1 to glm.MaxDim
	Dim int

	// number of timed rounds per case
	Rounds int

	// operations per round
	Iterations int

	// offset into the noise field the fixtures are sampled from
	Seed int

	// number of generated fixtures to keep around
	CacheSize int
}

func (opts Options) withDefaults() Options {
	if opts.Dim == 0 {
		opts.Dim = 4
	}

	if opts.Rounds == 0 {
		opts.Rounds = 5
	}

	if opts.Iterations == 0 {
		opts.Iterations = 1000
	}

	if opts.CacheSize == 0 {
		opts.CacheSize = 32
	}

	return opts
}

func (opts Options) validate() error {
	if opts.Dim < 1 || opts.Dim > glm.MaxDim {
		return fmt.Errorf("dimension %d not in range 1..%d", opts.Dim, glm.MaxDim)
	}

	if opts.Rounds < 0 {
		return fmt.Errorf("rounds must not be negative, got %d", opts.Rounds)
	}

	if opts.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", opts.Iterations)
	}

	if opts.CacheSize < 0 {
		return fmt.Errorf("cache size must not be negative, got %d", opts.CacheSize)
	}

	return nil
}
