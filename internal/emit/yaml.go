package emit

import (
	"io"

	"github.com/cronokirby/modexp/internal/testvector"
)

// YAML collects vectors and writes them as one vector file on Close.
type YAML struct {
	w       io.Writer
	vectors []*testvector.Vector
}

func NewYAML(w io.Writer) *YAML {
	return &YAML{w: w}
}

func (y *YAML) Format(v *testvector.Vector) error {
	y.vectors = append(y.vectors, v)
	return nil
}

func (y *YAML) Close() error {
	return testvector.Encode(y.w, y.vectors)
}
