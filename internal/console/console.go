// Package console reads passwords and yes/no answers from the terminal.
//
// Passwords are read with echo disabled when stdin is a terminal. If that
// is not possible the console warns once and reads visibly instead.
// An interrupt (Ctrl+C) while waiting for input never ends the program:
// the console prints a notice and re-issues the prompt.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"
)

// ErrInputClosed is returned when stdin reaches end of file.
var ErrInputClosed = errors.New("input closed")

const (
	fallbackNotice = "(secure input not supported here; switching to visible input)"
	notYesOrNo     = "That's not a yes or no. Try again."
)

// Notifier displays recoverable input problems to the user.
type Notifier interface {
	Warn(msg string)
	Error(msg string)
}

// Console is an interactive prompt bound to one input and one output.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	notify Notifier

	fd           int
	hidden       bool // try echo-free reads
	warnFallback bool // fallback notice still owed
	readHidden   func(fd int) ([]byte, error)

	interrupts <-chan os.Signal
	stop       func()
}

// New creates a Console reading from in and writing prompts to out.
// It takes over os.Interrupt until Close is called.
func New(in *os.File, out io.Writer, notify Notifier) *Console {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)

	fd := int(in.Fd())
	hidden := term.IsTerminal(fd)

	return &Console{
		in:           bufio.NewReader(in),
		out:          out,
		notify:       notify,
		fd:           fd,
		hidden:       hidden,
		warnFallback: !hidden,
		readHidden:   term.ReadPassword,
		interrupts:   sigs,
		stop:         func() { signal.Stop(sigs) },
	}
}

// Close releases the interrupt handler.
func (c *Console) Close() {
	if c.stop != nil {
		c.stop()
	}
}

// ReadPassword prints prompt and returns the entered line without its
// line terminator. The text is not echoed when the terminal allows it.
func (c *Console) ReadPassword(prompt string) (string, error) {
	if c.hidden {
		line, err := c.await(prompt, "Try again.", func() (string, error) {
			b, err := c.readHidden(c.fd)
			return string(b), err
		})
		// Echo is off, so the user's Enter was not printed.
		fmt.Fprintln(c.out)
		if err == nil {
			return line, nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		c.hidden = false
		c.warnFallback = true
	}

	if c.warnFallback {
		c.notify.Warn(fallbackNotice)
		c.warnFallback = false
	}
	return c.await(prompt, "Try again.", c.readLine)
}

// Confirm asks a yes/no question until it gets y, yes, n or no
// (case-insensitive).
func (c *Console) Confirm(prompt string) (bool, error) {
	for {
		line, err := c.await(prompt, "Type y/n or yes/no.", c.readLine)
		if err != nil {
			return false, err
		}

		if yes, ok := ParseYesNo(line); ok {
			return yes, nil
		}
		c.notify.Error(notYesOrNo)
	}
}

// ParseYesNo interprets a yes/no answer. ok is false for anything else.
func ParseYesNo(s string) (yes, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

type readResult struct {
	line string
	err  error
}

// await prints prompt and runs read on its own goroutine until it returns.
// Interrupts received meanwhile print a notice and re-issue the prompt;
// the pending read keeps running and answers the re-issued prompt.
func (c *Console) await(prompt, retry string, read func() (string, error)) (string, error) {
	fmt.Fprint(c.out, prompt)

	done := make(chan readResult, 1)
	go func() {
		line, err := read()
		done <- readResult{line: line, err: err}
	}()

	for {
		select {
		case r := <-done:
			return r.line, r.err
		case <-c.interrupts:
			fmt.Fprintln(c.out)
			c.notify.Error("(Interrupted) " + retry)
			fmt.Fprint(c.out, prompt)
		}
	}
}

// readLine reads one visible line. A final line without a newline is
// still returned; EOF with nothing read is ErrInputClosed.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputClosed
			}
		} else {
			return "", fmt.Errorf("read input: %w", err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
