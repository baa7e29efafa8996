package cli

import (
	"flag"
	"fmt"
	"io"

	"tabquiz/internal/config"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .tabquiz/config.yml)")
		if code, ok := parseArgs(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		resolvedSpec, err := resolveSpecPath(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		cfg, err := config.Load(resolvedSpec)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		kind := "free-text"
		if cfg.Options.IsMultiChoice() {
			kind = fmt.Sprintf("multiple choice, %d options", cfg.Options.MultiChoiceOptions)
		}
		fmt.Fprintln(stdout, "Config OK")
		fmt.Fprintf(stdout, "Source: %s\n", config.SourceLabel(cfg))
		fmt.Fprintf(stdout, "Templates: %d | Questions: %d (%s)\n", len(cfg.Templates), cfg.Options.NumQuestions, kind)
		return ExitOK
	}
}
