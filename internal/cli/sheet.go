package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tabquiz/internal/report"
)

// runSheet builds the handler for the sheet command.
func runSheet(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .tabquiz/config.yml)")
		questionsPath := flags.String("questions", "", "Render a saved question set instead of generating")
		outPath := flags.String("out", "", "HTML file (default: <output.dir>/sheet.html)")
		title := flags.String("title", report.DefaultTitle, "Worksheet title")
		overrides := registerOverrides(flags)
		if code, ok := parseArgs(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		logger, closeLog, err := overrides.logger(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Sheet failed: %v\n", err)
			return ExitError
		}
		defer closeLog()

		sess, err := openSession(*specPath, overrides, logger)
		if err != nil {
			fmt.Fprintf(stderr, "Sheet failed: %v\n", err)
			return ExitError
		}
		ctx := context.Background()
		questions, source, err := sess.questions(ctx, *questionsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Sheet failed: %v\n", err)
			return ExitError
		}

		sheet := report.BuildSheet(*title, source, now(), questions, sess.cfg.Options.FirstQuestionNum, sess.rng)
		path := sess.outputPath(*outPath, "sheet.html")
		if err := report.WriteSheet(ctx, path, sheet); err != nil {
			fmt.Fprintf(stderr, "Sheet failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return ExitOK
	}
}
