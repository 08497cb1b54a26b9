// Package samples generates the zero-rich random numbers the benchmark
// feeds to the trimming kernels.
//
// Each sample is built from three independent draws: a digit count in
// [1, maxDigits], a trailing-zero count strictly below the digit count, and
// a uniform significant prefix filling the remaining digits. The prefix may
// itself end in zero, so the drawn count is a floor rather than an exact
// target. Even so every trailing-zero count up to maxDigits-1 stays well
// represented, which a plain uniform draw over [0, 10^maxDigits) would not.
package samples

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/seehuhn/mt19937"
)

// mtStateWords is the number of 64-bit words in the Mersenne Twister state.
const mtStateWords = 312

var pow10tab = [...]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

// NewRand returns a Mersenne Twister backed generator seeded with a full
// state worth of entropy from crypto/rand.
func NewRand() (*rand.Rand, error) {
	buf := make([]byte, 8*mtStateWords)
	if _, err := crand.Read(buf); err != nil {
		return nil, fmt.Errorf("read seed entropy: %w", err)
	}
	seed := make([]uint64, mtStateWords)
	for i := range seed {
		seed[i] = binary.LittleEndian.Uint64(buf[8*i:])
	}
	mt := mt19937.New()
	mt.SeedFromSlice(seed)
	return rand.New(mt), nil
}

// Uint32s returns count samples of at most maxDigits significant digits.
// maxDigits must be in [1, 9].
func Uint32s(rng *rand.Rand, count, maxDigits int) []uint32 {
	if maxDigits < 1 || maxDigits > 9 {
		panic(fmt.Sprintf("maxDigits %d out of range [1, 9]", maxDigits))
	}
	return generate[uint32](rng, count, maxDigits)
}

// Uint64s returns count samples of at most maxDigits significant digits.
// maxDigits must be in [1, 19].
func Uint64s(rng *rand.Rand, count, maxDigits int) []uint64 {
	if maxDigits < 1 || maxDigits > 19 {
		panic(fmt.Sprintf("maxDigits %d out of range [1, 19]", maxDigits))
	}
	return generate[uint64](rng, count, maxDigits)
}

func generate[T ~uint32 | ~uint64](rng *rand.Rand, count, maxDigits int) []T {
	out := make([]T, count)
	for i := range out {
		digits := 1 + int(uniform(rng, uint64(maxDigits)))
		zeros := int(uniform(rng, uint64(digits)))
		lead := digits - zeros
		lo := pow10tab[lead-1]
		hi := pow10tab[lead] - 1
		out[i] = T((lo + uniform(rng, hi-lo+1)) * pow10tab[zeros])
	}
	return out
}

// uniform returns an unbiased draw from [0, n). Draws below 2^64 mod n are
// rejected so every residue is equally likely.
func uniform(rng *rand.Rand, n uint64) uint64 {
	low := -n % n
	for {
		if v := rng.Uint64(); v >= low {
			return v % n
		}
	}
}
