package modexp

import "unsafe"

// overlaps reports whether x and y share any memory.
func overlaps(x, y []Word) bool {
	return len(x) > 0 && len(y) > 0 &&
		uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}

// MontgomeryProduct computes out = a * b * 2^(-32N) mod modulus, one bit
// of b at a time.
//
// With s starting at 0, every bit of b, from the least significant one
// upward, performs
//
//	q = (s - bit*a) & 1
//	s = (s + q*modulus + bit*a) / 2
//
// so the division by two is always exact and no division instruction is
// ever needed. All four candidates for the new s are formed on every step,
// and a masked select picks one, so the sequence of word operations does
// not depend on a or b.
//
// modulus must be odd, and modulus + a must not exceed 2^(32N-1). Taking
// a below a modulus of at most 32N-2 bits is enough. s then stays below
// modulus + a, and so does the result: it is congruent to the product but
// need not be fully reduced.
//
// out must not share memory with a, b or modulus: ErrAliasedOutput is
// returned in that case, and out is left untouched.
func MontgomeryProduct(a, b, modulus, out []Word) error {
	if overlaps(out, a) || overlaps(out, b) || overlaps(out, modulus) {
		return ErrAliasedOutput
	}
	size := len(modulus)

	// candidates[q<<1|bit] holds s + q*modulus + bit*a
	var candidates [4][]Word
	for i := range candidates {
		candidates[i] = make([]Word, size)
	}
	qSub := make([]Word, size)
	s := out

	Zero(s)
	for wordIndex := size - 1; wordIndex >= 0; wordIndex-- {
		w := b[wordIndex]
		for i := 0; i < _W; i++ {
			bit := choice((w >> i) & 1)

			Sub(s, a, qSub)
			q := choice(ctIfElse(bit, qSub[size-1], s[size-1]) & 1)

			Copy(s, candidates[0])
			Add(s, a, candidates[1])
			Add(s, modulus, candidates[2])
			Add(candidates[2], a, candidates[3])

			tag := Word(q<<1 | bit)
			for k := range candidates {
				assign(ctEq(tag, Word(k)), s, candidates[k])
			}
			ShiftRight1(s, s)
		}
	}
	return nil
}
