package trim

import "math/bits"

// Baseline32 returns n unchanged. Timing floor only; its result is wrong for
// any n with trailing zeros.
func Baseline32(n uint32) (uint32, int) {
	return n, 0
}

// Naive32 peels one digit at a time with direct division.
func Naive32(n uint32) (uint32, int) {
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

// Naive32By2 peels two digits at a time with direct division, then at most
// one more.
func Naive32By2(n uint32) (uint32, int) {
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

// GranlundMontgomery32 peels one digit at a time.
// 3435973837 is the inverse of 5 mod 2^32; the rotate moves the factor-of-2
// bit out. A rotated product below floor(2^32/10)+1 = 429496730 means n was
// divisible by 10 and the rotated product is n/10.
func GranlundMontgomery32(n uint32) (uint32, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for {
		r := bits.RotateLeft32(n*3435973837, -1)
		if r >= 429496730 {
			break
		}
		n = r
		s++
	}
	return n, s
}

// GranlundMontgomery32By2 peels two digits at a time (3264175145 inverts 25
// mod 2^32, rotate 2, threshold floor(2^32/100)+1), then at most one more.
func GranlundMontgomery32By2(n uint32) (uint32, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for {
		r := bits.RotateLeft32(n*3264175145, -2)
		if r >= 42949673 {
			break
		}
		n = r
		s += 2
	}
	if r := bits.RotateLeft32(n*3435973837, -1); r < 429496730 {
		n = r
		s++
	}
	return n, s
}

// Lemire32 peels one digit at a time. 429496730 = ceil(2^32/10); in the
// 64-bit product the low half flags divisibility and the high half is the
// quotient.
func Lemire32(n uint32) (uint32, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for {
		r := uint64(n) * 429496730
		if uint32(r) >= 429496730 {
			break
		}
		n = uint32(r >> 32)
		s++
	}
	return n, s
}

// Lemire32By2 peels two digits at a time (42949673 = ceil(2^32/100)), then
// at most one more.
func Lemire32By2(n uint32) (uint32, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for {
		r := uint64(n) * 42949673
		if uint32(r) >= 42949673 {
			break
		}
		n = uint32(r >> 32)
		s += 2
	}
	if r := uint64(n) * 429496730; uint32(r) < 429496730 {
		n = uint32(r >> 32)
		s++
	}
	return n, s
}

// GeneralizedGranlundMontgomery32 peels one digit at a time with a shift in
// place of the rotate: 10*1288490189 = 3*2^32 + 2, so for n divisible by 10
// the product is twice the quotient and stays under the threshold.
func GeneralizedGranlundMontgomery32(n uint32) (uint32, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for {
		r := n * 1288490189
		if r >= 429496731 {
			break
		}
		n = r >> 1
		s++
	}
	return n, s
}

// GeneralizedGranlundMontgomery32By2 peels two digits at a time
// (100*42949673 = 2^32 + 4), then at most one more.
func GeneralizedGranlundMontgomery32By2(n uint32) (uint32, int) {
	if n == 0 {
		return 0, 0
	}
	s := 0
	for {
		r := n * 42949673
		if r >= 42949673 {
			break
		}
		n = r >> 2
		s += 2
	}
	if r := n * 1288490189; r < 429496731 {
		n = r >> 1
		s++
	}
	return n, s
}
