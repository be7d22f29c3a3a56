package testvector

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// File is the YAML document holding a list of vectors.
type File struct {
	Vectors []*Vector `yaml:"vectors"`
}

// Decode reads a vector file and validates every vector in it.
func Decode(r io.Reader) ([]*Vector, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading vectors")
	}
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, errors.Wrap(err, "decoding vectors")
	}
	for i, v := range f.Vectors {
		if v == nil {
			return nil, errors.Errorf("vector %d is empty", i)
		}
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Vectors, nil
}

// Load reads the vector file at path.
func Load(path string) ([]*Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening vector file %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes vectors as a YAML document.
func Encode(w io.Writer, vectors []*Vector) error {
	data, err := yaml.Marshal(&File{Vectors: vectors})
	if err != nil {
		return errors.Wrap(err, "encoding vectors")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing vectors")
}
