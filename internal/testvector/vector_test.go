package testvector

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/cronokirby/modexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	n, ok := new(big.Int).SetString("0123456789abcdef", 16)
	require.True(t, ok)

	w, err := Words(3, n)
	require.NoError(t, err)
	require.Equal(t, []modexp.Word{0, 0x01234567, 0x89abcdef}, w)
	require.Equal(t, 0, n.Cmp(Int(w)))

	w, err = Words(1, big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, []modexp.Word{0}, w)

	_, err = Words(1, n)
	require.EqualError(t, err, "57 bit value does not fit in 1 words")

	_, err = Words(2, big.NewInt(-1))
	require.Error(t, err)
}

func TestNewComputesExpected(t *testing.T) {
	v, err := New("T", "1", 2, big.NewInt(3), big.NewInt(7), big.NewInt(11))
	require.NoError(t, err)
	assert.Equal(t, HexWords{0, 9}, v.Expected)
	assert.Equal(t, "T_1", v.Name())
	require.NoError(t, v.Validate())

	v.E = v.E[:1]
	require.EqualError(t, v.Validate(), "vector T_1: e has 1 words, expected 2")
}

func TestCheck(t *testing.T) {
	var ex modexp.Exponentiator
	v, err := New("T", "1", 2, big.NewInt(3), big.NewInt(7), big.NewInt(11))
	require.NoError(t, err)
	require.NoError(t, Check(&ex, v))

	v.Expected = HexWords{0, 8}
	err = Check(&ex, v)
	require.ErrorIs(t, err, ErrMismatch)
	require.Contains(t, err.Error(), "got [0x00000000, 0x00000009], expected [0x00000000, 0x00000008]")

	v.M = HexWords{0, 10}
	require.ErrorIs(t, Check(&ex, v), modexp.ErrEvenModulus)
}

func TestEncodeDecode(t *testing.T) {
	v, err := New("T", "-5", 2, big.NewInt(0x1_0000_0002), big.NewInt(3), big.NewInt(0x1_0000_0007))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []*Vector{v}))
	require.Contains(t, buf.String(), "- \"0xffffff8a\"")

	got, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, []*Vector{v}, got)
}

func TestDecodeRejectsBadFiles(t *testing.T) {
	for _, tc := range []struct {
		name, doc, errContains string
	}{
		{"unknown field", "vectors:\n- generator: T\n  colour: red\n", "field colour not found"},
		{"bad word", "vectors:\n- length: 1\n  x: [\"0xzz\"]\n", "word 0"},
		{"wide word", "vectors:\n- length: 1\n  x: [\"0x100000000\"]\n", "word 0"},
		{"null entry", "vectors:\n- ~\n", "vector 0 is empty"},
		{"short operand", "vectors:\n- generator: T\n  seed: \"1\"\n  length: 2\n  x: [\"0x1\"]\n", "x has 1 words"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.doc))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errContains)
		})
	}
}
