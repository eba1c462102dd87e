package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console wraps the interactive terminal. Handlers prompt and print
// through it so tests can script input and capture output.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine prints the label and blocks for one line of input.
// Returns io.EOF once the input source is exhausted.
func (c *Console) ReadLine(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

// Confirm asks a yes/no question. Anything other than "yes" declines.
func (c *Console) Confirm(label string) bool {
	answer, err := c.ReadLine(label)
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(answer)) == "yes"
}

func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

// Writer exposes the output sink for table rendering.
func (c *Console) Writer() io.Writer {
	return c.out
}
