//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"os"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	repoDir    string
	configPath string
	previousWD string
	header     []string
	rows       [][]string
	question   string
	answer     string
	options    map[string]string
	answers    []string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a project with this table:$`, state.aProjectWithTable)
	ctx.Step(`^the template "([^"]+)" answered by column "([^"]+)"$`, state.theTemplate)
	ctx.Step(`^the option "([^"]+)" is "([^"]*)"$`, state.theOptionIs)
	ctx.Step(`^I answer "([^"]*)"$`, state.iAnswer)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]*)"$`, state.theErrorOutputContains)
	ctx.Step(`^the question set "([^"]+)" has (\d+) questions$`, state.theQuestionSetHas)
	ctx.Step(`^every question in "([^"]+)" offers (\d+) options$`, state.everyQuestionOffers)
	ctx.Step(`^every question in "([^"]+)" uses a different row$`, state.everyQuestionUsesDifferentRow)
	ctx.Step(`^the question sets "([^"]+)" and "([^"]+)" are identical$`, state.theQuestionSetsAreIdentical)
}

// reset clears buffers and resets state before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.repoDir = ""
	s.configPath = ""
	s.header = nil
	s.rows = nil
	s.question = ""
	s.answer = ""
	s.options = map[string]string{}
	s.answers = nil
}

// cleanup restores the working directory and removes temporary files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
		s.previousWD = ""
	}
	if s.repoDir != "" {
		_ = os.RemoveAll(s.repoDir)
	}
}
