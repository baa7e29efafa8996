package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tabquiz/internal/config"
	"tabquiz/internal/placeholder"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: .tabquiz/config.yml in the git root or CWD)")
		if code, ok := parseArgs(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		reader := bufio.NewReader(initInput)

		var targetSpecPath string
		var configDir string
		var projectRoot string

		specPathValue := strings.TrimSpace(*specPath)
		if specPathValue == "" {
			projectRoot = discoverGitRoot("")
			baseDir := projectRoot
			if baseDir == "" {
				wd, err := os.Getwd()
				if err != nil {
					fmt.Fprintf(stderr, "Init failed: %v\n", err)
					return ExitError
				}
				baseDir = wd
			}
			configDir = config.ConfigDir(baseDir)
			targetSpecPath = config.ConfigPath(baseDir)
		} else {
			absSpec, err := filepath.Abs(specPathValue)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			targetSpecPath = absSpec
			configDir = filepath.Dir(targetSpecPath)
			projectRoot = discoverGitRoot(config.RootFromConfigPath(targetSpecPath))
		}

		if info, err := os.Stat(configDir); err == nil && !info.IsDir() {
			fmt.Fprintf(stderr, "Init failed: config directory %q is not a directory\n", configDir)
			return ExitError
		}
		if info, err := os.Stat(targetSpecPath); err == nil {
			if info.IsDir() {
				fmt.Fprintf(stderr, "Init failed: spec path %q is a directory\n", targetSpecPath)
				return ExitError
			}
			fmt.Fprintf(stderr, "Init failed: spec file already exists at %q\n", targetSpecPath)
			return ExitError
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Init failed: stat spec file: %v\n", err)
			return ExitError
		}

		confirm, err := promptYesNo(reader, stdout, fmt.Sprintf("Initialize tabquiz config in %s?", configDir), true)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if !confirm {
			fmt.Fprintln(stderr, "Init cancelled.")
			return ExitError
		}

		opts, err := promptScaffold(reader, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		addGitignore := false
		if projectRoot != "" {
			answer, err := promptYesNo(reader, stdout, "Add output folder to .gitignore?", true)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			addGitignore = answer
		}

		if err := config.Scaffold(targetSpecPath, opts); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", targetSpecPath)

		if addGitignore {
			updated, err := addGitignoreEntry(projectRoot, opts.OutputDir)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: update .gitignore: %v\n", err)
				return ExitError
			}
			if updated {
				fmt.Fprintf(stdout, "Updated %s\n", filepath.Join(projectRoot, ".gitignore"))
			}
		}
		return ExitOK
	}
}

// promptScaffold collects the data source, first template and output folder.
func promptScaffold(reader *bufio.Reader, out io.Writer) (config.ScaffoldOptions, error) {
	opts := config.DefaultScaffoldOptions()
	var err error
	if opts.SourcePath, err = promptString(reader, out, "Data file (csv, tsv, json, parquet)", opts.SourcePath); err != nil {
		return opts, err
	}
	for {
		if opts.Question, err = promptString(reader, out, "Question template", opts.Question); err != nil {
			return opts, err
		}
		fields, parseErr := placeholder.Extract(opts.Question)
		if parseErr == nil && len(fields) > 0 {
			break
		}
		fmt.Fprintln(out, "Templates need at least one {column} placeholder.")
		opts.Question = ""
	}
	if opts.AnswerColumn, err = promptString(reader, out, "Answer column", opts.AnswerColumn); err != nil {
		return opts, err
	}
	if opts.MultiChoice, err = promptYesNo(reader, out, "Multiple choice questions?", opts.MultiChoice); err != nil {
		return opts, err
	}
	if opts.OutputDir, err = promptString(reader, out, "Output folder", opts.OutputDir); err != nil {
		return opts, err
	}
	return opts, nil
}

// initInput allows tests to override stdin for init prompts.
var initInput io.Reader = os.Stdin
