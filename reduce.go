package modexp

// Reduce computes out = a mod modulus by restoring long division.
//
// Each round doubles modulus until one more doubling would exceed the
// remainder, then subtracts that multiple. Doubling also stops once the
// shifted modulus reaches the top bit of the array, so operands without a
// spare leading word still terminate. out may alias a or modulus.
//
// Reduce panics if modulus is zero.
func Reduce(a, modulus, out []Word) {
	if IsZero(modulus) {
		panic("modexp: reduction by a zero modulus")
	}
	size := len(modulus)
	m := make([]Word, size)
	shifted := make([]Word, size)
	prevShifted := make([]Word, size)

	// Keep our own copy so that writing out cannot clobber the divisor
	Copy(modulus, m)
	Copy(a, out)
	for !GreaterThan(m, out) {
		Copy(m, shifted)
		Zero(prevShifted)
		for !GreaterThan(shifted, out) {
			Copy(shifted, prevShifted)
			if shifted[0]&_TOP != 0 {
				break
			}
			ShiftLeft1(shifted, shifted)
		}
		Sub(out, prevShifted, out)
	}
}

// ResidueTo2N computes out = 2^bitExponent mod modulus.
//
// Starting from 1, the value is doubled and reduced bitExponent times, so
// it never outgrows twice the modulus.
func ResidueTo2N(bitExponent int, modulus, out []Word) {
	setOne(out)
	// 1 itself needs reducing when modulus == 1
	Reduce(out, modulus, out)
	for i := 0; i < bitExponent; i++ {
		ShiftLeft1(out, out)
		Reduce(out, modulus, out)
	}
}
