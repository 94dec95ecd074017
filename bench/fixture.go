package bench

import (
	"fmt"

	"github.com/furui/fastnoiselite-go"
	"github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/vecmat/glm"
)

type fixtureKind int

const (
	kindVector fixtureKind = iota
	kindMatrix

	kindCount
)

type fixtureKey struct {
	Kind  fixtureKind
	Count int
	Seed  int
}

// Fixtures generates deterministic benchmark inputs from a noise field. The
// same kind, size and seed always yield the same values.
type Fixtures struct {
	noise *fastnoiselite.FastNoiseLite
	cache *lru.Cache[fixtureKey, []float32]
}

func NewFixtures(cacheSize int) (*Fixtures, error) {
	cache, err := lru.New[fixtureKey, []float32](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create fixture cache: %w", err)
	}

	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeOpenSimplex2)
	noise.FractalType = fastnoiselite.FractalTypeFBm
	noise.Frequency = 0.37
	noise.SetFractalOctaves(3)

	return &Fixtures{noise: noise, cache: cache}, nil
}

// CacheLen is the number of fixtures currently cached.
func (f *Fixtures) CacheLen() int {
	return f.cache.Len()
}

// values returns count samples in -1..1. The returned slice is shared with
// the cache and must not be modified.
func (f *Fixtures) values(kind fixtureKind, count, seed int) []float32 {
	key := fixtureKey{Kind: kind, Count: count, Seed: seed}

	cached, ok := f.cache.Get(key)
	if ok {
		return cached
	}

	// every kind samples its own row of the noise field
	row := seed*int(kindCount) + int(kind)

	values := make([]float32, count)
	for idx := range values {
		x := fastnoiselite.FNLfloat(idx)
		y := fastnoiselite.FNLfloat(row)
		values[idx] = float32(f.noise.GetNoise2D(x, y))
	}

	f.cache.Add(key, values)

	return values
}

func Vector[D glm.Dim](f *Fixtures, seed int) glm.VecNf[D] {
	var v glm.VecNf[D]
	return glm.VecNFromSlice[D](f.values(kindVector, v.Len(), seed))
}

func Matrix[R, C glm.Dim](f *Fixtures, seed int) glm.Matf[R, C] {
	var m glm.Matf[R, C]

	rows, cols := m.Rows(), m.Cols()
	values := f.values(kindMatrix, rows*cols, seed)

	for idx := range rows {
		m.SetRow(idx, glm.VecNFromSlice[C](values[idx*cols:(idx+1)*cols]))
	}

	return m
}
