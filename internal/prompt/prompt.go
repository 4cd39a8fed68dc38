package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Messages printed by Prompter.
const (
	Question     = "Enter your password: "
	EmptyMessage = "Password cannot be empty. Please enter a password."
	NoInput      = "No input received. Exiting."
)

// ErrNoInput is returned when input ends before a password was entered.
// Callers treat it as a normal exit.
var ErrNoInput = errors.New("no input received")

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// Prompter reads a password from in and writes prompts to out.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	hide   bool
	reader *bufio.Reader

	// isTerminal and readPassword default to golang.org/x/term.
	isTerminal   func(fd int) bool
	readPassword func(fd int) ([]byte, error)
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithHiddenInput controls whether terminal input is read without echo.
// It is on by default.
func WithHiddenInput(hide bool) Option {
	return func(p *Prompter) {
		p.hide = hide
	}
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:           in,
		out:          out,
		hide:         true,
		isTerminal:   term.IsTerminal,
		readPassword: term.ReadPassword,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ReadPassword asks until a non-empty password is entered.
// At end of input it prints a notice and returns ErrNoInput.
func (p *Prompter) ReadPassword() (string, error) {
	for {
		if _, err := io.WriteString(p.out, Question); err != nil {
			return "", err
		}

		password, err := p.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintf(p.out, "\n%s\n", NoInput)
			return "", ErrNoInput
		}
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}

		if password != "" {
			return password, nil
		}
		fmt.Fprintln(p.out, EmptyMessage)
	}
}

// readLine reads one line without its line ending. A final line without a
// newline is returned as is; io.EOF is returned only when nothing was read.
func (p *Prompter) readLine() (string, error) {
	if fd, ok := p.terminalFd(); ok {
		b, err := p.readPassword(fd)
		// Echo is off, so the user's Enter was not printed.
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// terminalFd returns the descriptor to read without echo, if any.
func (p *Prompter) terminalFd() (int, bool) {
	if !p.hide {
		return 0, false
	}
	f, ok := p.in.(fder)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd()) //nolint:gosec // file descriptors fit in int
	return fd, p.isTerminal(fd)
}
