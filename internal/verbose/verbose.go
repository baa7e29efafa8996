package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const linePrefix = "[verbose]"

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGray  = "\x1b[90m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[34m"
)

// Style selects how a verbose line is highlighted.
type Style int

const (
	StyleDefault Style = iota
	StyleStep
	StyleMetrics
	StyleError
)

// Logger writes opt-in diagnostic lines. The zero value discards everything.
type Logger struct {
	Enabled bool
	Writer  io.Writer
	NoColor bool
}

// New returns an enabled logger for writer.
func New(writer io.Writer, noColor bool) Logger {
	return Logger{Enabled: writer != nil, Writer: writer, NoColor: noColor}
}

// Logf writes one formatted line in the given style.
func (l Logger) Logf(style Style, format string, args ...any) {
	if !l.Enabled || l.Writer == nil {
		return
	}
	palette := paletteFor(l.Writer, l.NoColor)
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.Writer, "%s %s\n", palette.prefix(linePrefix), palette.apply(style, line))
}

// Tee returns a logger that also copies lines to extra, uncolored.
func (l Logger) Tee(extra io.Writer) Logger {
	if extra == nil {
		return l
	}
	if !l.Enabled || l.Writer == nil {
		return Logger{Enabled: true, Writer: extra, NoColor: true}
	}
	return Logger{Enabled: true, Writer: io.MultiWriter(l.Writer, extra), NoColor: true}
}

type palette struct {
	enabled bool
}

func paletteFor(writer io.Writer, noColor bool) palette {
	if noColor {
		return palette{enabled: false}
	}
	return palette{enabled: shouldUseStyling(writer)}
}

// shouldUseStyling reports whether ANSI styling should be enabled.
func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

func (p palette) prefix(text string) string {
	if !p.enabled {
		return text
	}
	return ansiDim + ansiGray + text + ansiReset
}

func (p palette) apply(style Style, text string) string {
	if !p.enabled {
		return text
	}
	switch style {
	case StyleStep:
		return ansiBold + ansiBlue + text + ansiReset
	case StyleMetrics:
		return ansiBold + ansiGreen + text + ansiReset
	case StyleError:
		return ansiBold + ansiRed + text + ansiReset
	default:
		return text
	}
}
