//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"strings"

	"tabquiz/internal/cli"
)

// iAnswer queues one line of quiz input.
func (s *featureState) iAnswer(answer string) error {
	s.answers = append(s.answers, answer)
	return nil
}

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "tabquiz" {
		args = args[1:]
	}
	if err := s.writeConfig(); err != nil {
		return err
	}
	input := ""
	if len(s.answers) > 0 {
		input = strings.Join(s.answers, "\n") + "\n"
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.RunWithInput(args, strings.NewReader(input), &s.stdout, &s.stderr)
	return nil
}
