package testvector

import (
	"math/big"
	"math/rand"
	"strconv"

	"github.com/pkg/errors"
)

// Kinds of suites.
const (
	// KindBasic draws a prime modulus, base and exponent of Bits bits.
	KindBasic = "basic"
	// KindF4 draws a prime modulus and base of Bits bits, with e = 65537.
	KindF4 = "f4"
	// KindRSA builds an RSA key from two primes of Bits bits and emits an
	// encryption and the matching decryption.
	KindRSA = "rsa"
)

// F4 is the usual RSA public exponent, 2^16 + 1.
const F4 = 65537

// A Suite describes a batch of vectors.
type Suite struct {
	Kind string `mapstructure:"kind"`
	// Bits is the bit length of the primes drawn for each vector.
	Bits int `mapstructure:"bits"`
	// Words is the length of every operand. The engine wants operands
	// two bits shorter than 32*Words.
	Words int `mapstructure:"words"`
	Count int `mapstructure:"count"`
}

// Validate checks that every vector of s fits its word length.
func (s Suite) Validate() error {
	var maxBits int
	switch s.Kind {
	case KindBasic, KindF4:
		maxBits = s.Bits
	case KindRSA:
		maxBits = 2 * s.Bits
	default:
		return errors.Errorf("unknown suite kind %q", s.Kind)
	}
	if s.Bits < 2 {
		return errors.Errorf("%s suite: need at least 2 bits, got %d", s.Kind, s.Bits)
	}
	if s.Kind == KindRSA && s.Bits < 8 {
		return errors.Errorf("rsa suite: need at least 8 bit primes, got %d", s.Bits)
	}
	if s.Count < 0 {
		return errors.Errorf("%s suite: negative count %d", s.Kind, s.Count)
	}
	if maxBits > 32*s.Words-2 {
		return errors.Errorf("%s suite: %d bit operands need more than %d words", s.Kind, maxBits, s.Words)
	}
	return nil
}

// NewSource returns the random source a plan seed stands for.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Generate produces s.Count vectors of suite s.
//
// Every vector is drawn from its own source, seeded from rng, and records
// that seed, so that Regenerate can rebuild it on its own.
func Generate(rng *rand.Rand, s Suite) ([]*Vector, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	var vectors []*Vector
	for i := 0; i < s.Count; i++ {
		vs, err := Regenerate(s, rng.Int63())
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, vs...)
	}
	return vectors, nil
}

// Regenerate rebuilds the vectors of suite s drawn from seed.
func Regenerate(s Suite, seed int64) ([]*Vector, error) {
	r := NewSource(seed)
	label := strconv.FormatInt(seed, 10)
	switch s.Kind {
	case KindBasic:
		m := probablePrime(r, s.Bits)
		x := probablePrime(r, s.Bits)
		e := probablePrime(r, s.Bits)
		v, err := New("BASIC", label, s.Words, x, e, m)
		if err != nil {
			return nil, err
		}
		return []*Vector{v}, nil
	case KindF4:
		m := probablePrime(r, s.Bits)
		x := probablePrime(r, s.Bits)
		v, err := New("65537_"+strconv.Itoa(s.Bits), label, s.Words, x, big.NewInt(F4), m)
		if err != nil {
			return nil, err
		}
		return []*Vector{v}, nil
	case KindRSA:
		return rsaVectors(r, s, label)
	}
	return nil, errors.Errorf("unknown suite kind %q", s.Kind)
}

// rsaVectors draws an RSA key and returns an encryption vector followed by
// the decryption that undoes it.
func rsaVectors(r *rand.Rand, s Suite, label string) ([]*Vector, error) {
	one := big.NewInt(1)
	e := big.NewInt(F4)
	for {
		p := probablePrime(r, s.Bits)
		q := probablePrime(r, s.Bits)
		if p.Cmp(q) == 0 {
			continue
		}
		n := new(big.Int).Mul(p, q)
		// φ(n) = (p - 1)(q - 1) = n - (p + q - 1)
		phi := new(big.Int).Sub(n, new(big.Int).Sub(new(big.Int).Add(p, q), one))
		if new(big.Int).GCD(nil, nil, e, phi).Cmp(one) != 0 {
			// e has no inverse, draw another key
			continue
		}
		d := new(big.Int).ModInverse(e, phi)

		x := probablePrime(r, 2*s.Bits-4)
		z := new(big.Int).Exp(x, e, n)

		suffix := "_2x" + strconv.Itoa(s.Bits)
		enc, err := New("RSA_ENCRYPT"+suffix, label, s.Words, x, e, n)
		if err != nil {
			return nil, err
		}
		dec, err := New("RSA_DECRYPT"+suffix, label, s.Words, z, d, n)
		if err != nil {
			return nil, err
		}
		return []*Vector{enc, dec}, nil
	}
}

// probablePrime returns a prime of exactly bitLen bits.
//
// Unlike crypto/rand.Prime, the result depends only on the state of r.
func probablePrime(r *rand.Rand, bitLen int) *big.Int {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bitLen))
	for {
		p := new(big.Int).Rand(r, limit)
		p.SetBit(p, bitLen-1, 1)
		p.SetBit(p, 0, 1)
		if p.ProbablyPrime(20) {
			return p
		}
	}
}
