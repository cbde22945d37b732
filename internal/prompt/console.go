package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console abstracts line-oriented terminal I/O so prompts can be tested
// without a TTY.
type Console interface {
	// ReadLine shows prompt and reads one line. End-of-input surfaces as
	// an error.
	ReadLine(prompt string) (string, error)
	WriteLine(s string)
}

// StdConsole reads from stdin and writes to stdout.
type StdConsole struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdConsole() *StdConsole {
	return &StdConsole{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (c *StdConsole) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *StdConsole) WriteLine(s string) {
	fmt.Fprintln(c.out, s)
}
