package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tabquiz/internal/spec"
	"tabquiz/internal/verbose"
)

// parseArgs parses flags and rejects positional arguments. It returns the
// exit code and false when the command should stop.
func parseArgs(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// overrideFlags holds command-line overrides of config options.
type overrideFlags struct {
	multiChoice  bool
	freeText     bool
	numQuestions int
	options      int
	seed         int64
	verbose      bool
	logPath      string
	noColor      bool
}

func registerOverrides(flags *flag.FlagSet) *overrideFlags {
	o := &overrideFlags{}
	flags.BoolVar(&o.multiChoice, "multi-choice", false, "Generate multiple choice questions")
	flags.BoolVar(&o.freeText, "free-text", false, "Generate free-text questions")
	flags.IntVar(&o.numQuestions, "num-questions", 0, "Number of questions (overrides config)")
	flags.IntVar(&o.options, "options", 0, "Options per multiple choice question (overrides config)")
	flags.Int64Var(&o.seed, "seed", 0, "Random seed for reproducible quizzes (0 = config or clock)")
	flags.BoolVar(&o.verbose, "verbose", false, "Print generation diagnostics to stderr")
	flags.StringVar(&o.logPath, "log", "", "Append diagnostics to a log file")
	flags.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
	return o
}

// apply copies explicit overrides onto a normalized config.
func (o *overrideFlags) apply(cfg *spec.Config) error {
	if o.multiChoice && o.freeText {
		return fmt.Errorf("--multi-choice and --free-text are mutually exclusive")
	}
	if o.multiChoice || o.freeText {
		multi := o.multiChoice
		cfg.Options.MultiChoice = &multi
	}
	if o.numQuestions < 0 || o.options < 0 {
		return fmt.Errorf("--num-questions and --options must be positive")
	}
	if o.numQuestions > 0 {
		cfg.Options.NumQuestions = o.numQuestions
	}
	if o.options > 0 {
		cfg.Options.MultiChoiceOptions = o.options
	}
	if o.seed != 0 {
		cfg.Options.Seed = o.seed
	}
	return nil
}

// logger builds the diagnostics logger; the returned closer releases the log file.
func (o *overrideFlags) logger(stderr io.Writer) (verbose.Logger, func(), error) {
	var logger verbose.Logger
	if o.verbose {
		logger = verbose.New(stderr, o.noColor)
	}
	if o.logPath == "" {
		return logger, func() {}, nil
	}
	file, err := os.OpenFile(o.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return verbose.Logger{}, func() {}, fmt.Errorf("open log file: %w", err)
	}
	return logger.Tee(file), func() { _ = file.Close() }, nil
}
