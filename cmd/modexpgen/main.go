package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app      = kingpin.New("modexpgen", "Modular exponentiation test vector tool")
	logLevel = app.Flag("log-level", "Log level (debug, info, warn, error).").Default("info").String()

	generate    = app.Command("generate", "Generate test vectors.")
	planPath    = generate.Flag("plan", "YAML generation plan. The built-in plan is used when empty.").Short('p').String()
	seed        = generate.Flag("seed", "Override the seed of the plan.").Action(markSeedSet).Int64()
	format      = generate.Flag("format", "Output format.").Short('f').Default("c").Enum("c", "yaml")
	outputPath  = generate.Flag("out", "Output file. Defaults to stdout.").Short('o').String()
	checkOutput = generate.Flag("check", "Run every generated vector through the engine before writing it.").Bool()

	verify     = app.Command("verify", "Run the engine against a YAML vector file.")
	vectorPath = verify.Arg("vectors", "YAML vector file.").Required().ExistingFile()
	trace      = verify.Flag("trace", "Log the duration of every stage of every exponentiation.").Bool()

	// seedSet records that --seed was given, so that --seed 0 still overrides
	seedSet bool

	args = os.Args[1:]
)

func markSeedSet(*kingpin.ParseContext) error {
	seedSet = true
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func main() {
	app.Version("0.0.1")
	command, err := app.Parse(args)
	if err != nil {
		kingpin.Fatalf("parsing arguments: %s. Try --help", err)
		return
	}

	logger, err := newLogger(*logLevel)
	if err != nil {
		kingpin.Fatalf("invalid log level %q: %s", *logLevel, err)
		return
	}

	err = run(logger, command)
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "modexpgen: %s\n", err)
		os.Exit(1)
	}
}

// run executes the parsed command.
func run(logger *zap.Logger, command string) error {
	switch command {
	case generate.FullCommand():
		return generateTo(logger, flagGenerateOptions(), *outputPath)

	case verify.FullCommand():
		failed, err := verifyVectors(logger, *vectorPath, *trace)
		if err != nil {
			return err
		}
		if failed > 0 {
			return errors.Errorf("%d vectors failed", failed)
		}
	}
	return nil
}

// flagGenerateOptions collects the generate flags.
func flagGenerateOptions() generateOptions {
	opts := generateOptions{
		planPath: *planPath,
		format:   *format,
		check:    *checkOutput,
	}
	if seedSet {
		opts.seed = seed
	}
	return opts
}

// generateTo writes the vectors of opts to the file at path, or to stdout
// when path is empty.
func generateTo(logger *zap.Logger, opts generateOptions, path string) (err error) {
	var out io.Writer = os.Stdout
	if path != "" {
		f, ferr := os.Create(path)
		if ferr != nil {
			return errors.Wrapf(ferr, "creating output file %s", path)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.Wrapf(cerr, "closing output file %s", path)
			}
		}()
		out = f
	}

	n, err := generateVectors(logger, opts, out)
	if err != nil {
		return errors.WithMessage(err, "generation failed")
	}
	logger.Info("generated vectors", zap.Int("count", n), zap.String("format", opts.format))
	return nil
}
