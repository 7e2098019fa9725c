// Package prompt provides the line-oriented console input the generator
// collects article fields through.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks a single question and returns the line typed in response,
// without its line terminator.
type Prompter interface {
	Ask(label string) (string, error)
}

// Console reads answers from in and writes labels to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Ask prints label and reads one line. A final line without a trailing
// newline is still returned; io.EOF is reported only once nothing is left.
func (c *Console) Ask(label string) (string, error) {
	fmt.Fprint(c.out, label)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// WithDefault shows def in parentheses and returns it when the answer is empty.
func WithDefault(p Prompter, label, def string) (string, error) {
	answer, err := p.Ask(fmt.Sprintf("%s (%s): ", label, def))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm reports whether the answer is "yes", ignoring case and surrounding
// whitespace. Every other answer is a refusal.
func Confirm(p Prompter, label string) (bool, error) {
	answer, err := p.Ask(label)
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

func IsYes(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == "yes"
}
