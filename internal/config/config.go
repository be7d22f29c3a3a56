// Package config loads vector generation plans.
//
// Plans are YAML documents of the form
//
//	seed: 0
//	suites:
//	  - kind: basic
//	    bits: 33
//	    words: 2
//	    count: 10
//
// decoded into a generic map first and then into typed structs, so that
// unknown keys are reported rather than ignored.
package config

import (
	"os"

	"github.com/cronokirby/modexp/internal/testvector"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Plan lists the suites to generate, in order.
type Plan struct {
	// Seed seeds the source every per-vector seed is drawn from.
	Seed   int64              `mapstructure:"seed"`
	Suites []testvector.Suite `mapstructure:"suites"`
}

// Validate checks every suite of the plan.
func (p *Plan) Validate() error {
	if len(p.Suites) == 0 {
		return errors.New("plan has no suites")
	}
	for i, s := range p.Suites {
		if err := s.Validate(); err != nil {
			return errors.WithMessagef(err, "suite %d", i)
		}
	}
	return nil
}

// Default returns the plan the hardware regression vectors are made from:
// random primes at sizes from 30 to 2046 bits, e = 65537 up to 2048 bit
// moduli, and RSA keys up to 2048 bits.
func Default() *Plan {
	p := &Plan{}
	for _, s := range []struct{ bits, words, count int }{
		{33, 2, 10},
		{30, 1, 10},
		{126, 4, 10},
		{510, 16, 2},
		{1022, 32, 1},
		{2046, 64, 1},
	} {
		p.Suites = append(p.Suites, testvector.Suite{Kind: testvector.KindBasic, Bits: s.bits, Words: s.words, Count: s.count})
	}
	// One extra word keeps the top two bits of every operand clear
	for _, bits := range []int{64, 128, 256, 512, 1024, 2048} {
		p.Suites = append(p.Suites, testvector.Suite{Kind: testvector.KindF4, Bits: bits, Words: bits/32 + 1, Count: 3})
	}
	for _, bits := range []int{64, 128, 256, 512, 1024} {
		p.Suites = append(p.Suites, testvector.Suite{Kind: testvector.KindRSA, Bits: bits, Words: 2*bits/32 + 1, Count: 1})
	}
	return p
}

// Parse decodes a plan from YAML.
func Parse(data []byte) (*Plan, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parsing plan")
	}

	var p Plan
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &p,
	})
	if err != nil {
		return nil, errors.Wrap(err, "building plan decoder")
	}
	if err := dec.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "decoding plan")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads the plan at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading plan %s", path)
	}
	return Parse(data)
}
