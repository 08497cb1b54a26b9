package trim

import (
	"math/bits"

	"github.com/spacemeshos/rtzbench/u128"
)

// Baseline64 returns n unchanged. Timing floor only; its result is wrong for
// any n with trailing zeros.
func Baseline64(n uint64) (uint64, int) {
	return n, 0
}

// Naive64 peels one digit at a time with direct division.
func Naive64(n uint64) (uint64, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for n%10 == 0 {
		n /= 10
		s++
	}
	return n, s
}

// Naive64By2 peels two digits at a time with direct division, then at most
// one more.
func Naive64By2(n uint64) (uint64, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for n%100 == 0 {
		n /= 100
		s += 2
	}
	if n%10 == 0 {
		n /= 10
		s++
	}
	return n, s
}

// Naive64By8 first tests divisibility by 10^8 and, on a hit, trims the
// quotient with Naive32By2. Otherwise it peels two digits at a time, then at
// most one more.
func Naive64By8(n uint64) (uint64, int) {
	if n == 0 {
		return 0, 0
	}
	if n%100000000 == 0 {
		q, s := Naive32By2(uint32(n / 100000000))
		return uint64(q), s + 8
	}
	s := 0
	for n%100 == 0 {
		n /= 100
		s += 2
	}
	if n%10 == 0 {
		n /= 10
		s++
	}
	return n, s
}

// GranlundMontgomery64 peels one digit at a time. 14757395258967641293 is
// the inverse of 5 mod 2^64; the threshold is floor(2^64/10)+1.
func GranlundMontgomery64(n uint64) (uint64, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for {
		r := bits.RotateLeft64(n*14757395258967641293, -1)
		if r >= 1844674407370955162 {
			break
		}
		n = r
		s++
	}
	return n, s
}

// GranlundMontgomery64By2 peels two digits at a time (10330176681277348905
// inverts 25 mod 2^64, rotate 2, threshold floor(2^64/100)+1), then at most
// one more.
func GranlundMontgomery64By2(n uint64) (uint64, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for {
		r := bits.RotateLeft64(n*10330176681277348905, -2)
		if r >= 184467440737095517 {
			break
		}
		n = r
		s += 2
	}
	if r := bits.RotateLeft64(n*14757395258967641293, -1); r < 1844674407370955162 {
		n = r
		s++
	}
	return n, s
}

// GranlundMontgomery64By8 first tests divisibility by 10^8 in one step:
// 10^8 * 28999941890838049 = 157209*2^64 + 2^8, so a multiple of 10^8 maps
// to 2^8 times its quotient and the rotate by 8 recovers the quotient,
// below threshold floor(2^64/10^8)+1. A hit trims the quotient with
// GranlundMontgomery32By2; a miss falls back to two-then-one peeling.
func GranlundMontgomery64By8(n uint64) (uint64, int) {
	if n == 0 {
		return 0, 0
	}
	if r := bits.RotateLeft64(n*28999941890838049, -8); r < 184467440738 {
		q, s := GranlundMontgomery32By2(uint32(r))
		return uint64(q), s + 8
	}
	s := 0
	for {
		r := bits.RotateLeft64(n*10330176681277348905, -2)
		if r >= 184467440737095517 {
			break
		}
		n = r
		s += 2
	}
	if r := bits.RotateLeft64(n*14757395258967641293, -1); r < 1844674407370955162 {
		n = r
		s++
	}
	return n, s
}

// Lemire64 peels one digit at a time. 1844674407370955162 = ceil(2^64/10);
// in the 128-bit product the low half flags divisibility and the high half
// is the quotient.
func Lemire64(n uint64) (uint64, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for {
		r := u128.Mul(n, 1844674407370955162)
		if r.Lo >= 1844674407370955162 {
			break
		}
		n = r.Hi
		s++
	}
	return n, s
}

// Lemire64By2 peels two digits at a time (184467440737095517 =
// ceil(2^64/100)), then at most one more.
func Lemire64By2(n uint64) (uint64, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for {
		r := u128.Mul(n, 184467440737095517)
		if r.Lo >= 184467440737095517 {
			break
		}
		n = r.Hi
		s += 2
	}
	if r := u128.Mul(n, 1844674407370955162); r.Lo < 1844674407370955162 {
		n = r.Hi
		s++
	}
	return n, s
}

// Lemire64By8 first tests divisibility by 10^8 with 12089258196146292 =
// ceil(2^80/10^8): the quotient lands in bits 80 and up of the product, so
// a hit needs bits 64..79 clear and the low half under the magic number.
// The eight-digit step is exact for n <= 47795296599999999. A hit trims the
// quotient with Lemire32By2; a miss falls back to two-then-one peeling.
func Lemire64By8(n uint64) (uint64, int) {
	if n == 0 {
		return 0, 0
	}
	const magic = 12089258196146292
	if r := u128.Mul(n, magic); r.Hi&0xffff == 0 && r.Lo < magic {
		q, s := Lemire32By2(uint32(r.Hi >> 16))
		return uint64(q), s + 8
	}
	s := 0
	for {
		r := u128.Mul(n, 184467440737095517)
		if r.Lo >= 184467440737095517 {
			break
		}
		n = r.Hi
		s += 2
	}
	if r := u128.Mul(n, 1844674407370955162); r.Lo < 1844674407370955162 {
		n = r.Hi
		s++
	}
	return n, s
}

// GeneralizedGranlundMontgomery64 peels one digit at a time with a shift in
// place of the rotate: 10*5534023222112865485 = 3*2^64 + 2, so for n
// divisible by 10 the product is twice the quotient and stays under the
// threshold.
func GeneralizedGranlundMontgomery64(n uint64) (uint64, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for {
		r := n * 5534023222112865485
		if r >= 1844674407370955163 {
			break
		}
		n = r >> 1
		s++
	}
	return n, s
}

// GeneralizedGranlundMontgomery64By2 peels two digits at a time
// (100*14941862699704736809 = 81*2^64 + 4), then at most one more.
func GeneralizedGranlundMontgomery64By2(n uint64) (uint64, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for {
		r := n * 14941862699704736809
		if r >= 184467440737095517 {
			break
		}
		n = r >> 2
		s += 2
	}
	if r := n * 5534023222112865485; r < 1844674407370955163 {
		n = r >> 1
		s++
	}
	return n, s
}

// GeneralizedGranlundMontgomery64By8 first tests divisibility by 10^8 with
// the same multiplier as GranlundMontgomery64By8 but a plain shift: a
// multiple of 10^8 maps to 2^8 times its quotient, under the threshold. A
// hit trims nm>>8 with GeneralizedGranlundMontgomery32By2; a miss falls
// back to two-then-one peeling.
func GeneralizedGranlundMontgomery64By8(n uint64) (uint64, int) {
	if n == 0 {
		return 0, 0
	}
	if nm := n * 28999941890838049; nm < 184467440969 {
		q, s := GeneralizedGranlundMontgomery32By2(uint32(nm >> 8))
		return uint64(q), s + 8
	}
	s := 0
	for {
		r := n * 14941862699704736809
		if r >= 184467440737095517 {
			break
		}
		n = r >> 2
		s += 2
	}
	if r := n * 5534023222112865485; r < 1844674407370955163 {
		n = r >> 1
		s++
	}
	return n, s
}
