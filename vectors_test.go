package modexp_test

import (
	"testing"

	"github.com/cronokirby/modexp"
	"github.com/cronokirby/modexp/internal/testvector"
	"github.com/stretchr/testify/require"
)

// testdata/vectors.yaml holds the vectors the C model was checked against.
func TestGoldenVectors(t *testing.T) {
	vectors, err := testvector.Load("testdata/vectors.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, vectors)

	var ex modexp.Exponentiator
	for _, v := range vectors {
		v := v
		t.Run(v.Name(), func(t *testing.T) {
			if testing.Short() && v.Length > 16 {
				t.Skip("skipping large vector in short mode")
			}
			require.NoError(t, testvector.Check(&ex, v))
		})
	}
}

func TestGeneratedVectors(t *testing.T) {
	suites := []testvector.Suite{
		{Kind: testvector.KindBasic, Bits: 33, Words: 2, Count: 5},
		{Kind: testvector.KindBasic, Bits: 30, Words: 1, Count: 5},
		{Kind: testvector.KindBasic, Bits: 126, Words: 4, Count: 2},
		{Kind: testvector.KindF4, Bits: 64, Words: 3, Count: 2},
		{Kind: testvector.KindF4, Bits: 256, Words: 9, Count: 1},
		{Kind: testvector.KindRSA, Bits: 64, Words: 5, Count: 1},
		{Kind: testvector.KindRSA, Bits: 128, Words: 9, Count: 1},
	}
	var ex modexp.Exponentiator
	for _, s := range suites {
		vectors, err := testvector.Generate(testvector.NewSource(0), s)
		require.NoError(t, err)
		for _, v := range vectors {
			require.NoError(t, testvector.Check(&ex, v))
		}
	}
}

// Decrypting the output of an encryption vector recovers the plaintext.
func TestRSARoundTrip(t *testing.T) {
	vectors, err := testvector.Generate(testvector.NewSource(1), testvector.Suite{
		Kind: testvector.KindRSA, Bits: 96, Words: 7, Count: 2,
	})
	require.NoError(t, err)
	require.Len(t, vectors, 4)

	for i := 0; i < len(vectors); i += 2 {
		enc, dec := vectors[i], vectors[i+1]
		c := make([]modexp.Word, enc.Length)
		require.NoError(t, modexp.ModExp(enc.X, enc.E, enc.M, c))
		x := make([]modexp.Word, dec.Length)
		require.NoError(t, modexp.ModExp(c, dec.E, dec.M, x))
		require.Equal(t, []modexp.Word(enc.X), x)
	}
}
