package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Prompter collects operator input for the interactive session. Invalid
// numeric input is re-prompted until the operator enters something usable,
// matching the original console behavior.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts and
// error messages to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine prompts and returns one line with surrounding whitespace
// trimmed. A blank line is a valid answer; search filters use it to mean
// "match anything".
func (p *Prompter) ReadLine(prompt string) string {
	fmt.Fprint(p.out, prompt)
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// ReadInt keeps prompting until the operator enters an integer within
// [min, max].
func (p *Prompter) ReadInt(prompt string, min, max int) int {
	for {
		line := p.ReadLine(prompt)
		value, err := strconv.Atoi(line)
		if err != nil || value < min || value > max {
			fmt.Fprintln(p.out, errorStyle.Render("Invalid input. Please enter a valid number."))
			continue
		}
		return value
	}
}

// ReadFloat keeps prompting until the operator enters a decimal number no
// smaller than min.
func (p *Prompter) ReadFloat(prompt string, min float64) float64 {
	for {
		line := p.ReadLine(prompt)
		value, err := strconv.ParseFloat(line, 64)
		if err != nil || value < min {
			fmt.Fprintln(p.out, errorStyle.Render("Invalid input. Please enter a valid decimal number."))
			continue
		}
		return value
	}
}

// ReadPassword reads a line without echo when stdin is a terminal and
// falls back to a plain line read otherwise, so scripted and piped runs
// still work.
func (p *Prompter) ReadPassword(prompt string) string {
	fmt.Fprint(p.out, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err == nil {
			return strings.TrimSpace(string(raw))
		}
	}

	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}
