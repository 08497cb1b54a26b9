package trim_test

import (
	"math/rand"
	"testing"

	"github.com/seehuhn/mt19937"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/rtzbench/samples"
	"github.com/spacemeshos/rtzbench/trim"
)

// variants64 lists every 64-bit kernel; Naive64 heads the list and serves
// as the reference the others are checked against.
var variants64 = []struct {
	name string
	fn   func(uint64) (uint64, int)
}{
	{"Naive64", trim.Naive64},
	{"Naive64By2", trim.Naive64By2},
	{"Naive64By8", trim.Naive64By8},
	{"GranlundMontgomery64", trim.GranlundMontgomery64},
	{"GranlundMontgomery64By2", trim.GranlundMontgomery64By2},
	{"GranlundMontgomery64By8", trim.GranlundMontgomery64By8},
	{"Lemire64", trim.Lemire64},
	{"Lemire64By2", trim.Lemire64By2},
	{"Lemire64By8", trim.Lemire64By8},
	{"GeneralizedGranlundMontgomery64", trim.GeneralizedGranlundMontgomery64},
	{"GeneralizedGranlundMontgomery64By2", trim.GeneralizedGranlundMontgomery64By2},
	{"GeneralizedGranlundMontgomery64By8", trim.GeneralizedGranlundMontgomery64By8},
}

func TestTrim64KnownInputs(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		n     uint64
		want  uint64
		zeros int
	}{
		{n: 0, want: 0, zeros: 0},
		{n: 1, want: 1, zeros: 0},
		{n: 10, want: 1, zeros: 1},
		{n: 120000, want: 12, zeros: 4},
		{n: 1234500, want: 12345, zeros: 2},
		{n: 100000000, want: 1, zeros: 8},
		{n: 123400000000, want: 1234, zeros: 8},
		{n: 4790000000000000, want: 479, zeros: 13},
		{n: 1000000000000000, want: 1, zeros: 15},
		{n: 9999999999999999, want: 9999999999999999, zeros: 0},
		{n: 9999999999999990, want: 999999999999999, zeros: 1},
		// Largest multiple of 10^8 below the Lemire eight-digit bound.
		{n: 47795296500000000, want: 477952965, zeros: 8},
	} {
		for _, v := range variants64 {
			got, zeros := v.fn(tc.n)
			require.Equal(t, tc.want, got, "%s(%d)", v.name, tc.n)
			require.Equal(t, tc.zeros, zeros, "%s(%d)", v.name, tc.n)
		}
	}
}

func TestBaseline64LeavesInputUntouched(t *testing.T) {
	t.Parallel()
	for _, n := range []uint64{0, 5, 4790000000000000, ^uint64(0)} {
		got, zeros := trim.Baseline64(n)
		require.Equal(t, n, got)
		require.Zero(t, zeros)
	}
}

func TestTrim64MatchesNaiveExhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	t.Parallel()
	for n := uint64(0); n <= 1_000_000; n++ {
		want, zeros := trim.Naive64(n)
		for _, v := range variants64[1:] {
			q, z := v.fn(n)
			if q != want || z != zeros {
				t.Fatalf("%s(%d) = (%d, %d), want (%d, %d)", v.name, n, q, z, want, zeros)
			}
		}
	}
}

func TestTrim64MatchesNaiveRandom(t *testing.T) {
	t.Parallel()
	rng := rand.New(mt19937.New())
	for _, n := range samples.Uint64s(rng, 500_000, 16) {
		want, zeros := trim.Naive64(n)
		for _, v := range variants64[1:] {
			q, z := v.fn(n)
			if q != want || z != zeros {
				t.Fatalf("%s(%d) = (%d, %d), want (%d, %d)", v.name, n, q, z, want, zeros)
			}
		}
	}
}

// Multiples of 10^8 take the single-step fast path in the By8 kernels; make
// sure that path agrees with the reference for quotients of every size.
func TestTrim64EightZeroFastPath(t *testing.T) {
	t.Parallel()
	rng := rand.New(mt19937.New())
	for _, q := range samples.Uint32s(rng, 50_000, 8) {
		n := uint64(q) * 100000000
		want, zeros := trim.Naive64(n)
		for _, v := range variants64[1:] {
			got, z := v.fn(n)
			if got != want || z != zeros {
				t.Fatalf("%s(%d) = (%d, %d), want (%d, %d)", v.name, n, got, z, want, zeros)
			}
		}
	}
}

func TestTrim64RoundTrip(t *testing.T) {
	t.Parallel()
	rng := rand.New(mt19937.New())
	for _, n := range samples.Uint64s(rng, 100_000, 16) {
		for _, v := range variants64 {
			q, z := v.fn(n)
			if q%10 == 0 {
				t.Fatalf("%s(%d) = (%d, %d): trimmed value still ends in zero", v.name, n, q, z)
			}
			scaled := q
			for i := 0; i < z; i++ {
				scaled *= 10
			}
			if scaled != n {
				t.Fatalf("%s(%d) = (%d, %d): scales back to %d", v.name, n, q, z, scaled)
			}
		}
	}
}

var benchTrimmed64 uint64

func BenchmarkTrim64(b *testing.B) {
	rng := rand.New(mt19937.New())
	smp := samples.Uint64s(rng, 100_000, 16)
	run := func(fn func(uint64) (uint64, int)) func(*testing.B) {
		return func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchTrimmed64, benchZeros = fn(smp[i%len(smp)])
			}
		}
	}
	b.Run("Baseline64", run(trim.Baseline64))
	for _, v := range variants64 {
		b.Run(v.name, run(v.fn))
	}
}
