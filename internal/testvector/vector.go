// Package testvector produces and checks modular exponentiation test
// vectors.
//
// A vector pairs operands with the result computed by math/big, which
// serves as the source of truth for the word array engine, and for any
// hardware implementation fed the same vectors.
package testvector

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/modexp"
	"github.com/pkg/errors"
)

// A Vector is one exponentiation, Expected = X^E mod M, with every operand
// stored as Length words, most significant word first.
type Vector struct {
	// Generator names the suite that produced the vector.
	Generator string `yaml:"generator"`
	// Seed reproduces the vector when fed back to its suite.
	Seed     string   `yaml:"seed"`
	Length   int      `yaml:"length"`
	X        HexWords `yaml:"x"`
	E        HexWords `yaml:"e"`
	M        HexWords `yaml:"m"`
	Expected HexWords `yaml:"expected"`
}

// Name returns an identifier unique within a suite.
func (v *Vector) Name() string {
	return fmt.Sprintf("%s_%s", v.Generator, v.Seed)
}

// Validate checks that every operand has the announced length.
func (v *Vector) Validate() error {
	for _, op := range []struct {
		name string
		w    HexWords
	}{{"x", v.X}, {"e", v.E}, {"m", v.M}, {"expected", v.Expected}} {
		if len(op.w) != v.Length {
			return errors.Errorf("vector %s: %s has %d words, expected %d", v.Name(), op.name, len(op.w), v.Length)
		}
	}
	return nil
}

// ErrMismatch is returned by Check when the engine disagrees with a vector.
var ErrMismatch = errors.New("result does not match expected value")

// Check runs ex on the operands of v and compares with v.Expected.
func Check(ex *modexp.Exponentiator, v *Vector) error {
	if err := v.Validate(); err != nil {
		return err
	}
	z := make([]modexp.Word, v.Length)
	if err := ex.ModExp(v.X, v.E, v.M, z); err != nil {
		return errors.WithMessagef(err, "vector %s", v.Name())
	}
	if !modexp.Equal(z, v.Expected) {
		return errors.Wrapf(ErrMismatch, "vector %s: got %s, expected %s", v.Name(), HexWords(z), v.Expected)
	}
	return nil
}

// Words converts n into length words, most significant word first.
func Words(length int, n *big.Int) ([]modexp.Word, error) {
	if n.Sign() < 0 {
		return nil, errors.Errorf("negative value %s", n)
	}
	if n.BitLen() > 32*length {
		return nil, errors.Errorf("%d bit value does not fit in %d words", n.BitLen(), length)
	}
	out := make([]modexp.Word, length)
	// Bytes is big endian, so the last byte lands in the bottom of the last word
	b := n.Bytes()
	for j := len(b) - 1; j >= 0; j-- {
		k := len(b) - 1 - j
		out[length-1-k/4] |= modexp.Word(b[j]) << (8 * (k % 4))
	}
	return out, nil
}

// Int converts words, most significant word first, into a big.Int.
func Int(words []modexp.Word) *big.Int {
	n := new(big.Int)
	for _, w := range words {
		n.Lsh(n, 32)
		n.Or(n, new(big.Int).SetUint64(uint64(w)))
	}
	return n
}

// New builds a vector for x^e mod m, computing the expected value with
// math/big.
func New(generator, seed string, length int, x, e, m *big.Int) (*Vector, error) {
	z := new(big.Int).Exp(x, e, m)
	v := &Vector{Generator: generator, Seed: seed, Length: length}
	var err error
	for _, op := range []struct {
		dst *HexWords
		n   *big.Int
	}{{&v.X, x}, {&v.E, e}, {&v.M, m}, {&v.Expected, z}} {
		if *op.dst, err = Words(length, op.n); err != nil {
			return nil, errors.WithMessagef(err, "%s vector with seed %s", generator, seed)
		}
	}
	return v, nil
}
