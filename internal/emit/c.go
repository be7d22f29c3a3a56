package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/cronokirby/modexp"
	"github.com/cronokirby/modexp/internal/testvector"
	"github.com/pkg/errors"
)

const cHeader = `#include <stdio.h>
#include <stdlib.h>
#include "montgomery_array.h"
#include "bignum_uint32_t.h"
`

// C writes every vector as a C function calling mod_exp_array and
// checking its result with assertArrayEquals. Close appends
// autogenerated_tests, which calls all of them in order.
type C struct {
	w     io.Writer
	names []string
}

// NewC writes the includes and returns a C formatter.
func NewC(w io.Writer) (*C, error) {
	if _, err := io.WriteString(w, cHeader); err != nil {
		return nil, errors.Wrap(err, "writing C header")
	}
	return &C{w: w}, nil
}

// TestName returns the C function name for v.
func TestName(v *testvector.Vector) string {
	// Negative seeds would put a '-' in the identifier
	return strings.Replace("autogenerated_"+v.Generator+"_"+v.Seed, "-", "M", -1)
}

func (c *C) Format(v *testvector.Vector) error {
	name := TestName(v)
	c.names = append(c.names, name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "void %s(void) {\n", name)
	fmt.Fprintf(&sb, "  printf(\"=== %s ===\\n\");\n", name)
	writeCArray(&sb, "X", v.X)
	writeCArray(&sb, "E", v.E)
	writeCArray(&sb, "M", v.M)
	writeCArray(&sb, "expected", v.Expected)
	writeCArray(&sb, "Z", make([]modexp.Word, v.Length))
	fmt.Fprintf(&sb, "  mod_exp_array(%d, X, E, M, Z);\n", v.Length)
	fmt.Fprintf(&sb, "  assertArrayEquals(%d, expected, Z);\n", v.Length)
	sb.WriteString("}\n")

	_, err := io.WriteString(c.w, sb.String())
	return errors.Wrapf(err, "writing %s", name)
}

func writeCArray(sb *strings.Builder, name string, words []modexp.Word) {
	literals := make([]string, len(words))
	for i, w := range words {
		literals[i] = fmt.Sprintf("0x%08x", w)
	}
	fmt.Fprintf(sb, "  uint32_t %s[] = { %s };\n", name, strings.Join(literals, ", "))
}

func (c *C) Close() error {
	var sb strings.Builder
	sb.WriteString("void autogenerated_tests(void) {\n")
	for _, name := range c.names {
		fmt.Fprintf(&sb, "  %s();\n", name)
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(c.w, sb.String())
	return errors.Wrap(err, "writing C trailer")
}
