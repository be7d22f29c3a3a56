package modexp

import "github.com/pkg/errors"

// Names of the stages reported to a Tracer, in order.
const (
	StageResidue = "residue"
	StageOne     = "one"
	StageBase    = "base"
	StageLadder  = "ladder"
	StageConvert = "convert"
)

// An Exponentiator computes modular exponentiations. The zero value is
// ready to use.
//
// An Exponentiator holds no state between calls and may be shared between
// goroutines, as long as each call uses its own operands.
type Exponentiator struct {
	// Tracer, if non-nil, receives the duration of every stage.
	Tracer Tracer
}

var defaultExponentiator Exponentiator

// ModExp computes out = x^e mod modulus.
//
// See Exponentiator.ModExp.
func ModExp(x, e, modulus, out []Word) error {
	return defaultExponentiator.ModExp(x, e, modulus, out)
}

// check validates the operands of ModExp.
func check(x, e, modulus, out []Word) error {
	size := len(modulus)
	for _, op := range []struct {
		name string
		v    []Word
	}{{"x", x}, {"e", e}, {"out", out}} {
		if len(op.v) != size {
			return errors.Wrapf(ErrLengthMismatch, "%s has %d words, modulus has %d", op.name, len(op.v), size)
		}
	}
	if size == 0 || IsZero(modulus) {
		return ErrZeroModulus
	}
	if modulus[size-1]&1 == 0 {
		return errors.Wrapf(ErrEvenModulus, "modulus ends in %#08x", modulus[size-1])
	}
	return nil
}

// modReduce maps a, known to be below 2*m, into [0, m).
func modReduce(a, m []Word) {
	subIf(cmpGeq(a, m), a, m, a)
}

// ModExp computes out = x^e mod modulus, with every multiplication done by
// MontgomeryProduct.
//
// All operands have the same length N, and modulus must be odd. In
// addition, x and modulus must fit in 32N-2 bits; reserving a zero top
// word, as for 1024 bit moduli over 33 words, is the usual way to meet
// this. out may alias any of the inputs.
//
// The exponent is scanned from its least significant bit up to its highest
// set bit:
//
//	Z = 1*R mod M, P = (x mod M)*R mod M
//	for each bit i of e: if e_i == 1 { Z = Z*P }; P = P*P
//	out = Z*R^-1 mod M
//
// where R = 2^32N and every product is a Montgomery product. Each product
// is brought back below M before it is used again, which keeps the sums
// inside MontgomeryProduct below 4M.
func (ex *Exponentiator) ModExp(x, e, modulus, out []Word) error {
	if err := check(x, e, modulus, out); err != nil {
		return err
	}
	size := len(modulus)
	clk := newClock(ex.Tracer)

	m := make([]Word, size)
	Copy(modulus, m)
	nr := make([]Word, size)
	one := make([]Word, size)
	z := make([]Word, size)
	p := make([]Word, size)
	xr := make([]Word, size)
	tmp := make([]Word, size)

	// R^2 mod M, the factor moving a number into Montgomery form
	ResidueTo2N(2*_W*size, m, nr)
	clk.stage(StageResidue)

	setOne(one)
	if err := MontgomeryProduct(one, nr, m, z); err != nil {
		return err
	}
	modReduce(z, m)
	clk.stage(StageOne)

	Reduce(x, m, xr)
	if err := MontgomeryProduct(xr, nr, m, p); err != nil {
		return err
	}
	modReduce(p, m)
	clk.stage(StageBase)

	// Bits above the highest set bit of e would only square P
	n := BitLen(e)
	for i := 0; i < n; i++ {
		if Bit(e, i) == 1 {
			if err := MontgomeryProduct(z, p, m, tmp); err != nil {
				return err
			}
			modReduce(tmp, m)
			Copy(tmp, z)
		}
		if err := MontgomeryProduct(p, p, m, tmp); err != nil {
			return err
		}
		modReduce(tmp, m)
		Copy(tmp, p)
	}
	clk.stage(StageLadder)

	if err := MontgomeryProduct(one, z, m, tmp); err != nil {
		return err
	}
	// Leaving Montgomery form yields at most M, which is 0 in disguise
	modReduce(tmp, m)
	Copy(tmp, out)
	clk.stage(StageConvert)
	return nil
}

