package modexp

import "github.com/pkg/errors"

var (
	// ErrAliasedOutput is returned by MontgomeryProduct when its output
	// shares memory with one of its inputs.
	ErrAliasedOutput = errors.New("modexp: montgomery product output aliases an input")

	// ErrLengthMismatch is returned when operands of a single operation
	// have different word lengths.
	ErrLengthMismatch = errors.New("modexp: operand lengths differ")

	// ErrZeroModulus is returned when the modulus is zero.
	ErrZeroModulus = errors.New("modexp: modulus is zero")

	// ErrEvenModulus is returned when the modulus is even, which leaves
	// Montgomery reduction undefined.
	ErrEvenModulus = errors.New("modexp: modulus is even")
)
