package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

// RunWithInput runs the CLI with stdin replaced by in for prompts and answers.
func RunWithInput(args []string, in io.Reader, stdout, stderr io.Writer) int {
	previousInit, previousRun := initInput, runInput
	initInput, runInput = in, in
	defer func() { initInput, runInput = previousInit, previousRun }()
	return Run(args, stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tabquiz <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"tabquiz <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .tabquiz/config.yml", []string{
		"tabquiz init [--spec <path>]",
	}, runInit),
	command("validate", "Validate .tabquiz/config.yml", []string{
		"tabquiz validate [--spec <path>]",
	}, runValidate),
	command("generate", "Generate questions and save them as a question set", []string{
		"tabquiz generate [--spec <path>] [--out <file.yml|file.json>] [overrides]",
	}, runGenerate),
	command("run", "Generate questions and run an interactive quiz", []string{
		"tabquiz run [--spec <path>] [--questions <file>] [--ui auto|live|plain] [overrides]",
	}, runRun),
	command("sheet", "Render a printable HTML worksheet with answer key", []string{
		"tabquiz sheet [--spec <path>] [--questions <file>] [--out <file.html>] [overrides]",
	}, runSheet),
}
