package verbose

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogfDisabledWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	Logger{Writer: &buf}.Logf(StyleStep, "hello %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
	var zero Logger
	zero.Logf(StyleDefault, "ignored")
}

// TestLogfPlainForNonTTY verifies buffers never receive ANSI codes.
func TestLogfPlainForNonTTY(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Logf(StyleError, "pool exhausted after %d questions", 3)
	got := buf.String()
	if got != "[verbose] pool exhausted after 3 questions\n" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestTeeCopiesLines(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := New(&primary, true).Tee(&extra)
	logger.Logf(StyleMetrics, "done")
	if !strings.Contains(primary.String(), "done") || !strings.Contains(extra.String(), "done") {
		t.Fatalf("expected both writers to receive the line, got %q / %q", primary.String(), extra.String())
	}

	var only bytes.Buffer
	Logger{}.Tee(&only).Logf(StyleDefault, "file only")
	if !strings.Contains(only.String(), "file only") {
		t.Fatalf("expected tee on disabled logger to write to extra, got %q", only.String())
	}
}
