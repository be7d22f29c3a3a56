package main

import (
	"io"

	"github.com/cronokirby/modexp"
	"github.com/cronokirby/modexp/internal/config"
	"github.com/cronokirby/modexp/internal/emit"
	"github.com/cronokirby/modexp/internal/testvector"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type generateOptions struct {
	planPath string
	// seed overrides the plan seed when non-nil
	seed   *int64
	format string
	check  bool
}

// generateVectors writes every vector of the plan in opts to out, and
// returns how many there were.
func generateVectors(logger *zap.Logger, opts generateOptions, out io.Writer) (int, error) {
	plan := config.Default()
	if opts.planPath != "" {
		var err error
		if plan, err = config.Load(opts.planPath); err != nil {
			return 0, err
		}
	}
	if opts.seed != nil {
		plan.Seed = *opts.seed
	}

	f, err := emit.New(opts.format, out)
	if err != nil {
		return 0, err
	}

	var ex modexp.Exponentiator
	rng := testvector.NewSource(plan.Seed)
	var all []*testvector.Vector
	for _, s := range plan.Suites {
		vectors, err := testvector.Generate(rng, s)
		if err != nil {
			return 0, err
		}
		logger.Debug("generated suite",
			zap.String("kind", s.Kind),
			zap.Int("bits", s.Bits),
			zap.Int("words", s.Words),
			zap.Int("vectors", len(vectors)),
		)
		if opts.check {
			for _, v := range vectors {
				if err := testvector.Check(&ex, v); err != nil {
					return 0, err
				}
			}
		}
		all = append(all, vectors...)
	}
	if err := emit.All(f, all); err != nil {
		return 0, errors.WithMessage(err, "emitting vectors")
	}
	return len(all), nil
}

// verifyVectors checks every vector of the file at path, logging each
// outcome, and returns how many of them failed.
func verifyVectors(logger *zap.Logger, path string, trace bool) (int, error) {
	vectors, err := testvector.Load(path)
	if err != nil {
		return 0, err
	}

	var ex modexp.Exponentiator
	failed := 0
	for _, v := range vectors {
		l := logger.With(zap.String("vector", v.Name()), zap.Int("words", v.Length))
		if trace {
			ex.Tracer = modexp.NewZapTracer(l)
		}
		if err := testvector.Check(&ex, v); err != nil {
			failed++
			l.Error("FAIL", zap.Error(err))
			continue
		}
		l.Info("PASS")
	}
	logger.Info("verified vectors", zap.Int("total", len(vectors)), zap.Int("failed", failed))
	return failed, nil
}
