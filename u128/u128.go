// Package u128 provides the exact 128-bit product of two unsigned 64-bit
// integers, split into high and low halves.
package u128

import "math/bits"

// U128 is an unsigned 128-bit value held as two 64-bit halves.
type U128 struct {
	Hi uint64
	Lo uint64
}

// Mul returns the full 128-bit product of x and y. bits.Mul64 lowers to a
// single wide multiply on 64-bit targets.
func Mul(x, y uint64) U128 {
	hi, lo := bits.Mul64(x, y)
	return U128{Hi: hi, Lo: lo}
}

// mulGeneric builds the product from four 32x32 partial products. It is the
// portable reference for targets without a wide multiply and must agree with
// Mul on every input pair.
func mulGeneric(x, y uint64) U128 {
	a := uint32(x >> 32)
	b := uint32(x)
	c := uint32(y >> 32)
	d := uint32(y)

	ac := uint64(a) * uint64(c)
	bc := uint64(b) * uint64(c)
	ad := uint64(a) * uint64(d)
	bd := uint64(b) * uint64(d)

	intermediate := (bd >> 32) + uint64(uint32(ad)) + uint64(uint32(bc))

	return U128{
		Hi: ac + (intermediate >> 32) + (ad >> 32) + (bc >> 32),
		Lo: (intermediate << 32) + uint64(uint32(bd)),
	}
}
