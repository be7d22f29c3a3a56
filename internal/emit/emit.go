// Package emit writes test vectors out for consumption by other test
// harnesses.
package emit

import (
	"io"

	"github.com/cronokirby/modexp/internal/testvector"
	"github.com/pkg/errors"
)

// A Formatter writes vectors to an underlying stream. Close flushes
// whatever trailer the format needs; it does not close the stream.
type Formatter interface {
	Format(v *testvector.Vector) error
	Close() error
}

// Formats lists the names accepted by New.
var Formats = []string{"c", "yaml"}

// New returns the formatter called name, writing to w.
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "c":
		c, err := NewC(w)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "yaml":
		return NewYAML(w), nil
	}
	return nil, errors.Errorf("unknown format %q", name)
}

// All formats every vector and closes f.
func All(f Formatter, vectors []*testvector.Vector) error {
	for _, v := range vectors {
		if err := f.Format(v); err != nil {
			return errors.WithMessagef(err, "formatting %s", v.Name())
		}
	}
	return f.Close()
}
