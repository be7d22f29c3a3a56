package modexp

import "math/bits"

// Word is a single 32 bit digit of a fixed width natural number.
type Word = uint32

const (
	// The number of bits in a Word
	_W = 32
	// The most significant bit of a Word
	_TOP = Word(1) << (_W - 1)
)

// A natural number is represented by a []Word of fixed length N.
//
// Unlike math/big, the most significant word comes first: index 0 holds
// the top 32 bits, and index N-1 the bottom 32 bits. This is the order
// hardware test benches consume the operands in, so keeping it in memory
// lets vectors be compared word for word.
//
// Every operand of an operation must have the same length. None of the
// functions in this file check this, nor do they allocate.

// choice represents a constant-time condition
//
// The value of choice is always either 1, or 0
type choice Word

// ctEq compares two words for equality
func ctEq(x, y Word) choice {
	// x ^ y is zero exactly when x == y. Widening to 64 bits lets the
	// subtraction underflow into the top half only in that case.
	return choice((uint64(x^y) - 1) >> 63)
}

// ctIfElse returns x if on == 1, and y if on == 0
//
// This leaks no information about which branch was chosen.
//
// If on is any value besides 1 or 0, the result is undefined.
func ctIfElse(on choice, x, y Word) Word {
	mask := -Word(on)
	return y ^ (mask & (y ^ x))
}

// assign sets x = y if on == 1, and otherwise does nothing
func assign(on choice, x, y []Word) {
	for i := range x {
		x[i] = ctIfElse(on, y[i], x[i])
	}
}

// Add computes out = a + b, dropping any carry out of the top word.
func Add(a, b, out []Word) {
	addIf(1, a, b, out)
}

// addIf computes out = a + b if on == 1, and out = a otherwise
//
// The carry out of the top word is returned, masked by on.
func addIf(on choice, a, b, out []Word) (c Word) {
	for i := len(a) - 1; i >= 0; i-- {
		var r Word
		r, c = bits.Add32(a[i], b[i], c)
		out[i] = ctIfElse(on, r, a[i])
	}
	return c & Word(on)
}

// Sub computes out = a - b, wrapping around when b > a.
//
// The difference is formed as a + ^b + 1, with the carry into the
// bottom word standing in for the 1.
func Sub(a, b, out []Word) {
	subIf(1, a, b, out)
}

// subIf computes out = a - b if on == 1, and out = a otherwise
//
// The returned borrow is 1 when b > a, masked by on.
func subIf(on choice, a, b, out []Word) (borrow Word) {
	c := Word(1)
	for i := len(a) - 1; i >= 0; i-- {
		var r Word
		r, c = bits.Add32(a[i], ^b[i], c)
		out[i] = ctIfElse(on, r, a[i])
	}
	return (1 ^ c) & Word(on)
}

// ShiftLeft1 computes out = a << 1, dropping the top bit of a.
func ShiftLeft1(a, out []Word) {
	// The bottom word is filled with a zero
	prev := Word(0)
	for i := len(a) - 1; i >= 0; i-- {
		w := a[i]
		out[i] = w<<1 | prev
		prev = w >> (_W - 1)
	}
}

// ShiftRight1 computes out = a >> 1, filling the top bit with zero.
func ShiftRight1(a, out []Word) {
	// The top word is filled with a zero
	prev := Word(0)
	for i := 0; i < len(a); i++ {
		w := a[i]
		out[i] = w>>1 | prev<<(_W-1)
		// The bit we drop becomes the top bit of the next, lower, word
		prev = w & 1
	}
}

// Zero sets every word of a to 0.
func Zero(a []Word) {
	for i := range a {
		a[i] = 0
	}
}

// Copy copies src into dst word for word.
func Copy(src, dst []Word) {
	copy(dst, src)
}

// setOne sets a to the number 1.
func setOne(a []Word) {
	Zero(a)
	a[len(a)-1] = 1
}

// GreaterThan reports whether a > b.
//
// Words are compared from the most significant one down, so the first
// difference decides.
func GreaterThan(a, b []Word) bool {
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return true
		}
		if a[i] < b[i] {
			return false
		}
	}
	return false
}

// cmpEq compares two natural numbers for equality
//
// Both operands should have the same length.
func cmpEq(a, b []Word) choice {
	equal := choice(1)
	for i := 0; i < len(a) && i < len(b); i++ {
		equal &= ctEq(a[i], b[i])
	}
	return equal
}

// cmpGeq calculates a >= b, returning 1 if this holds, and 0 otherwise
func cmpGeq(a, b []Word) choice {
	c := Word(1)
	for i := len(a) - 1; i >= 0; i-- {
		_, c = bits.Add32(a[i], ^b[i], c)
	}
	// Without a carry out, subtracting b underflowed
	return choice(c)
}

// Equal reports whether a and b have the same length and value.
func Equal(a, b []Word) bool {
	return len(a) == len(b) && cmpEq(a, b) == 1
}

// IsZero reports whether every word of a is 0.
func IsZero(a []Word) bool {
	var acc Word
	for _, w := range a {
		acc |= w
	}
	return acc == 0
}

// Bit returns bit i of a, counting from the least significant bit.
func Bit(a []Word, i int) Word {
	return (a[len(a)-1-i/_W] >> (i % _W)) & 1
}

// BitLen returns the index of the highest set bit of a plus one,
// or 0 if a is zero.
func BitLen(a []Word) int {
	for i, w := range a {
		if w == 0 {
			continue
		}
		return (len(a)-i-1)*_W + bits.Len32(w)
	}
	return 0
}
