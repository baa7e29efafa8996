package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tabquiz/internal/config"
	"tabquiz/internal/question"
)

// runGenerate builds the handler for the generate command.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .tabquiz/config.yml)")
		outPath := flags.String("out", "", "Question set file (.yml, .yaml or .json; default: <output.dir>/questions.yml)")
		overrides := registerOverrides(flags)
		if code, ok := parseArgs(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		logger, closeLog, err := overrides.logger(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}
		defer closeLog()

		sess, err := openSession(*specPath, overrides, logger)
		if err != nil {
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}
		questions, err := sess.generate(context.Background())
		if err != nil {
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}

		path := sess.outputPath(*outPath, "questions.yml")
		set := question.NewSet(questions, config.SourceLabel(sess.cfg), now())
		if err := question.WriteSet(path, set); err != nil {
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Generated %d questions (seed %d)\n", len(questions), sess.seed)
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return ExitOK
	}
}
