package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"tabquiz/internal/config"
	"tabquiz/internal/quiz"
	"tabquiz/internal/ui/live"
)

// runInput allows tests to override stdin for quiz answers.
var runInput io.Reader = os.Stdin

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .tabquiz/config.yml)")
		questionsPath := flags.String("questions", "", "Replay a saved question set instead of generating")
		uiMode := flags.String("ui", "auto", "UI mode: auto|live|plain")
		overrides := registerOverrides(flags)
		if code, ok := parseArgs(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		decision, err := resolveUIMode(*uiMode, overrides.verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid ui mode: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, closeLog, err := overrides.logger(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		defer closeLog()

		sess, err := openSession(*specPath, overrides, logger)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		ctx := context.Background()
		if !decision.useLive {
			fmt.Fprintln(stdout, "Generating questions...")
		}
		questions, _, err := sess.questions(ctx, *questionsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		opts := config.QuizOptions(sess.cfg)

		if decision.useLive {
			result, err := live.Run(ctx, questions, live.Options{
				Title:   "tabquiz",
				Quiz:    opts,
				NoColor: overrides.noColor,
			}, sess.rng, runInput, stdout)
			if err != nil {
				fmt.Fprintf(stderr, "Run failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Your score: %d (%d of %d correct)\n", result.Score, result.Correct(), len(questions))
			return ExitOK
		}

		fmt.Fprintln(stdout, "Ready!")
		console := quiz.NewConsole(runInput, stdout)
		if _, err := quiz.Run(ctx, questions, console, opts, sess.rng); err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
