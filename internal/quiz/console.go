package quiz

import (
	"bufio"
	"io"
	"strings"
)

// Console is a line-oriented interaction over a reader and writer.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewConsole wraps in and out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{reader: bufio.NewReader(in), out: out}
}

// Write prints text as is.
func (c *Console) Write(text string) error {
	_, err := io.WriteString(c.out, text)
	return err
}

// ReadLine reads the next answer line.
func (c *Console) ReadLine() (string, error) {
	return ReadLine(c.reader)
}

// ReadLine reads a line from reader, trimming line endings. A final
// unterminated line is returned together with io.EOF.
func ReadLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
