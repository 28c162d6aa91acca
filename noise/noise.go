// Package noise provides the deterministic noise sources used by the
// world generator.
//
// The load-bearing primitive is Uniform, a pure function of
// (seed, x, y) that always yields the same value for the same triple,
// regardless of call order or platform. Every stochastic per-tile
// decision in the generator is derived from it, which is what makes
// generated worlds bit-reproducible.
package noise

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Mix combines a world seed and a tile coordinate into a single
// 64-bit value suitable for seeding a PRNG.
func Mix(seed int64, x, y int32) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(x))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(y))
	return xxhash.Sum64(buf[:])
}

// Uniform returns a uniform value in [0, 1) for the given seed and
// tile coordinate. It holds no state: a fresh PRNG is seeded from the
// mixed hash and exactly one sample is drawn.
func Uniform(seed int64, x, y int32) float64 {
	return rand.New(rand.NewSource(int64(Mix(seed, x, y)))).Float64()
}

// Octaves sums three octaves of Uniform at 1x/2x/4x frequency with
// amplitude weights 0.6/0.3/0.1. The result stays within [0, 1).
func Octaves(seed int64, x, y int32) float64 {
	return 0.6*Uniform(seed, x, y) +
		0.3*Uniform(seed, 2*x, 2*y) +
		0.1*Uniform(seed, 4*x, 4*y)
}

// Noise is a wrapper for opensimplex.Noise, initialized with
// a given seed, persistence, and number of octaves. Unlike Uniform it
// produces spatially coherent noise, which we use for fields that
// should vary smoothly (e.g. wind perturbation).
type Noise struct {
	Octaves     int
	Persistence float64
	Amplitudes  []float64
	Seed        int64
	OS          opensimplex.Noise
}

// NewNoise returns a new Noise.
func NewNoise(octaves int, persistence float64, seed int64) *Noise {
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Amplitudes:  make([]float64, octaves),
		Seed:        seed,
		OS:          opensimplex.NewNormalized(seed),
	}

	// Initialize the amplitudes.
	for i := range n.Amplitudes {
		n.Amplitudes[i] = math.Pow(persistence, float64(i))
	}

	return n
}

// Eval2 returns the noise value at the given point.
func (n *Noise) Eval2(x, y float64) float64 {
	var sum, sumOfAmplitudes float64
	for octave := 0; octave < n.Octaves; octave++ {
		frequency := 1 << octave
		fFreq := float64(frequency)
		sum += n.Amplitudes[octave] * n.OS.Eval2(x*fFreq, y*fFreq)
		sumOfAmplitudes += n.Amplitudes[octave]
	}
	return sum / sumOfAmplitudes
}

// PlusOneOctave returns a new Noise with one more octave.
func (n *Noise) PlusOneOctave() *Noise {
	return NewNoise(n.Octaves+1, n.Persistence, n.Seed)
}
