// Package trim removes trailing zero decimal digits from unsigned integers.
//
// Each function returns the value with its trailing zero digits stripped and
// the count of digits removed, so that trimmed * 10^removed reconstructs the
// input exactly. All variants compute the same result; they differ in how
// they prove divisibility by a power of ten without a division instruction:
//
//   - Naive*: divide and take remainders directly. Correctness reference.
//   - GranlundMontgomery*: multiply by the modular inverse of the divisor's
//     odd part and rotate right across its power-of-two part; the result is
//     below floor(2^w/divisor)+1 exactly when the input was divisible, and is
//     then the quotient. See Granlund & Montgomery, "Division by Invariant
//     Integers using Multiplication",
//     https://gmplib.org/~tege/divcnst-pldi94.pdf.
//   - Lemire*: multiply by ceil(2^w/divisor) in double width; the low half
//     detects divisibility and the high half carries the quotient. See
//     Lemire, Kaser & Kurz, "Faster remainder by direct computation" (2019).
//   - GeneralizedGranlundMontgomery*: constants chosen so a plain right
//     shift replaces the rotate.
//
// By2 variants peel two digits per iteration with a one-digit finisher; the
// 64-bit By8 variants test divisibility by 10^8 in a single step and hand
// the quotient to the matching 32-bit By2 variant.
//
// The Naive and GranlundMontgomery kernels are exact over the full range of
// their input type. The Lemire and GeneralizedGranlundMontgomery kernels
// run the divisibility check at single width rather than double width, and
// the By8 fast paths require the 10^8 quotient to fit in 32 bits; both are
// exact only for digit-bounded inputs: at most 9 significant digits for the
// 32-bit kernels and at most 16 for the 64-bit ones. These are the domains
// the sample generator produces.
//
// Baseline32 and Baseline64 return their input untouched; they exist as a
// timing floor for benchmarks, not as trimmers.
//
// A zero input yields (0, 0) from every variant: zero has no significant
// digits to preserve and the peeling loops would otherwise never terminate.
package trim
