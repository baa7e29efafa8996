package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tabquiz/internal/quiz"
)

// promptString asks for a value, falling back to defaultValue on an empty line.
// Closed input with no default is an error.
func promptString(reader *bufio.Reader, out io.Writer, label, defaultValue string) (string, error) {
	for {
		if defaultValue != "" {
			fmt.Fprintf(out, "%s [%s]: ", label, defaultValue)
		} else {
			fmt.Fprintf(out, "%s: ", label)
		}
		line, err := quiz.ReadLine(reader)
		if err != nil && err != io.EOF {
			return "", err
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
		if defaultValue != "" {
			return defaultValue, nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("missing input for %s", label)
		}
	}
}

// promptYesNo asks a y/n question. An empty line picks defaultYes.
func promptYesNo(reader *bufio.Reader, out io.Writer, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", label, suffix)
		line, err := quiz.ReadLine(reader)
		if err != nil && err != io.EOF {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err == io.EOF {
			return false, fmt.Errorf("invalid response %q", line)
		}
		fmt.Fprintln(out, "Please answer yes or no.")
	}
}
