package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// Console reads prompted values from the same scanner that feeds the REPL.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	fd      int // -1 unless in is a file
}

// NewConsole returns a Console reading lines from in and printing prompts to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	fd := -1
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &Console{scanner: bufio.NewScanner(in), out: out, fd: fd}
}

// Scanner returns the line scanner shared with the REPL.
func (c *Console) Scanner() *bufio.Scanner {
	return c.scanner
}

// Text prints prompt and reads a single trimmed line.
func (c *Console) Text(prompt string) (string, error) {
	if _, err := fmt.Fprint(c.out, prompt+": "); err != nil {
		return "", err
	}
	line, err := c.readLine()
	return strings.TrimSpace(line), err
}

// Password prints prompt and reads a password without echo when the input is
// a terminal. Piped input falls back to a plain line read. The password is
// returned as typed in both cases, surrounding spaces included.
func (c *Console) Password(prompt string) (string, error) {
	if _, err := fmt.Fprint(c.out, prompt+": "); err != nil {
		return "", err
	}

	if c.fd < 0 || !isTerminal(c.fd) {
		return c.readLine()
	}

	pw, err := readPassword(c.fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// readLine returns the next line without its terminator.
func (c *Console) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.scanner.Text(), "\r\n"), nil
}
