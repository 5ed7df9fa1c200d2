// Package session drives the interactive password-check loop.
package session

import (
	"github.com/pwcheck-dev/pwcheck/internal/log"
	"github.com/pwcheck-dev/pwcheck/internal/strength"
)

// State is one step of a password-check session.
type State int

const (
	AwaitingInput State = iota // prompting for a password
	Scoring                    // checking the submitted password
	Succeeded                  // every rule met
	Failed                     // at least one rule unmet
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting_input"
	case Scoring:
		return "scoring"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Prompter supplies user input to a session.
type Prompter interface {
	ReadPassword(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
}

// Recorder stores the terminal attempt of each session.
type Recorder interface {
	Append(a log.Attempt) error
	Path() string
}

// Outcome summarizes one finished session.
type Outcome struct {
	Attempts int             // scored submissions; blank input is not counted
	Result   strength.Result // result of the last scored submission
	Passed   bool
	Logged   bool // the terminal attempt was written to the log
	Closed   bool // input ended before the session finished normally
}
