package testvector

import (
	"math/big"
	"testing"

	"github.com/cronokirby/modexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuiteValidate(t *testing.T) {
	for _, tc := range []struct {
		suite Suite
		err   string
	}{
		{Suite{Kind: KindBasic, Bits: 30, Words: 1, Count: 1}, ""},
		{Suite{Kind: KindBasic, Bits: 31, Words: 1, Count: 1}, "basic suite: 31 bit operands need more than 1 words"},
		{Suite{Kind: KindRSA, Bits: 64, Words: 4, Count: 1}, "rsa suite: 128 bit operands need more than 4 words"},
		{Suite{Kind: KindRSA, Bits: 4, Words: 4, Count: 1}, "rsa suite: need at least 8 bit primes, got 4"},
		{Suite{Kind: KindF4, Bits: 1, Words: 1, Count: 1}, "f4 suite: need at least 2 bits, got 1"},
		{Suite{Kind: KindF4, Bits: 16, Words: 1, Count: -1}, "f4 suite: negative count -1"},
		{Suite{Kind: "dsa", Bits: 16, Words: 1}, `unknown suite kind "dsa"`},
	} {
		err := tc.suite.Validate()
		if tc.err == "" {
			assert.NoError(t, err)
			continue
		}
		assert.EqualError(t, err, tc.err)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	s := Suite{Kind: KindBasic, Bits: 33, Words: 2, Count: 3}
	a, err := Generate(NewSource(42), s)
	require.NoError(t, err)
	b, err := Generate(NewSource(42), s)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 3)
	require.NotEqual(t, a[0].Seed, a[1].Seed)
}

func TestRegenerateFromSeed(t *testing.T) {
	s := Suite{Kind: KindF4, Bits: 64, Words: 3, Count: 2}
	vectors, err := Generate(NewSource(7), s)
	require.NoError(t, err)

	for _, v := range vectors {
		seed, ok := new(big.Int).SetString(v.Seed, 10)
		require.True(t, ok)
		again, err := Regenerate(s, seed.Int64())
		require.NoError(t, err)
		require.Equal(t, []*Vector{v}, again)
	}
}

func TestGeneratedOperands(t *testing.T) {
	basic, err := Generate(NewSource(1), Suite{Kind: KindBasic, Bits: 126, Words: 4, Count: 2})
	require.NoError(t, err)
	for _, v := range basic {
		assert.Equal(t, "BASIC", v.Generator)
		for _, op := range []HexWords{v.X, v.E, v.M} {
			n := Int(op)
			assert.Equal(t, 126, n.BitLen())
			assert.True(t, n.ProbablyPrime(20))
		}
	}

	f4, err := Generate(NewSource(1), Suite{Kind: KindF4, Bits: 64, Words: 3, Count: 1})
	require.NoError(t, err)
	require.Len(t, f4, 1)
	assert.Equal(t, "65537_64", f4[0].Generator)
	assert.Equal(t, HexWords{0, 0, 0x00010001}, f4[0].E)

	rsa, err := Generate(NewSource(1), Suite{Kind: KindRSA, Bits: 64, Words: 5, Count: 1})
	require.NoError(t, err)
	require.Len(t, rsa, 2)
	enc, dec := rsa[0], rsa[1]
	assert.Equal(t, "RSA_ENCRYPT_2x64", enc.Generator)
	assert.Equal(t, "RSA_DECRYPT_2x64", dec.Generator)
	assert.Equal(t, enc.Seed, dec.Seed)
	assert.Equal(t, enc.M, dec.M)
	assert.Equal(t, enc.Expected, dec.X)
	assert.Equal(t, enc.X, dec.Expected)
	assert.Equal(t, 124, Int(enc.X).BitLen())

	var ex modexp.Exponentiator
	for _, v := range append(append(basic, f4...), rsa...) {
		require.NoError(t, Check(&ex, v))
	}
}
