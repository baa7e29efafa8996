package testutil

import (
	"io"
	"strings"
)

// Script is a scripted interaction surface: ReadLine replays inputs in order
// and Write records everything shown.
type Script struct {
	inputs []string
	pos    int
	out    strings.Builder
}

// NewScript returns a script that answers with inputs.
func NewScript(inputs ...string) *Script {
	return &Script{inputs: append([]string(nil), inputs...)}
}

// Write records text.
func (s *Script) Write(text string) error {
	s.out.WriteString(text)
	return nil
}

// ReadLine returns the next scripted input or io.EOF when none remain.
func (s *Script) ReadLine() (string, error) {
	if s.pos >= len(s.inputs) {
		return "", io.EOF
	}
	line := s.inputs[s.pos]
	s.pos++
	return line, nil
}

// Transcript returns everything written so far.
func (s *Script) Transcript() string {
	return s.out.String()
}

// Consumed returns how many inputs were read.
func (s *Script) Consumed() int {
	return s.pos
}
