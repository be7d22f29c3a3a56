package testvector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cronokirby/modexp"
	"github.com/pkg/errors"
)

// HexWords is a word array written as 0x%08x literals, most significant
// word first, both in YAML and when printed.
type HexWords []modexp.Word

func (h HexWords) literals() []string {
	s := make([]string, len(h))
	for i, w := range h {
		s[i] = fmt.Sprintf("0x%08x", w)
	}
	return s
}

func (h HexWords) String() string {
	return "[" + strings.Join(h.literals(), ", ") + "]"
}

// MarshalYAML implements yaml.Marshaler.
func (h HexWords) MarshalYAML() (interface{}, error) {
	return h.literals(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *HexWords) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var literals []string
	if err := unmarshal(&literals); err != nil {
		return err
	}
	words := make(HexWords, len(literals))
	for i, l := range literals {
		w, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(l), "0x"), 16, 32)
		if err != nil {
			return errors.Wrapf(err, "word %d", i)
		}
		words[i] = modexp.Word(w)
	}
	*h = words
	return nil
}
