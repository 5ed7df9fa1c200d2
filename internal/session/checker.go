package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pwcheck-dev/pwcheck/internal/console"
	"github.com/pwcheck-dev/pwcheck/internal/log"
	"github.com/pwcheck-dev/pwcheck/internal/strength"
	"github.com/pwcheck-dev/pwcheck/internal/ui"
)

const (
	passwordPrompt  = "Please enter your password to continue: "
	retryQuestion   = "Password not strong enough! Would you like to try again? (y/n): "
	anotherQuestion = "Nice job! Would you like to check another password? (y/n): "
)

// Checker runs password-check sessions against a policy.
type Checker struct {
	policy strength.Policy
	in     Prompter
	view   *ui.Presenter
	rec    Recorder
	now    func() time.Time
}

// New creates a Checker.
func New(policy strength.Policy, in Prompter, view *ui.Presenter, rec Recorder) *Checker {
	return &Checker{
		policy: policy,
		in:     in,
		view:   view,
		rec:    rec,
		now:    time.Now,
	}
}

// Run shows the banner and runs sessions until the user declines to
// check another password or input ends.
func (c *Checker) Run() error {
	c.view.Banner()

	for {
		out, err := c.CheckPassword()
		if err != nil {
			return err
		}
		if out.Closed {
			c.view.Farewell()
			return nil
		}

		another, err := c.in.Confirm(c.view.Question(anotherQuestion))
		if err != nil && !errors.Is(err, console.ErrInputClosed) {
			return fmt.Errorf("read answer: %w", err)
		}
		if err != nil || !another {
			c.view.Farewell()
			return nil
		}
		c.view.Blank()
	}
}

// CheckPassword runs one session: prompt, score and report until a
// password passes or the user declines to retry. The attempt counter
// starts at zero for every session. Exactly one attempt, the terminal
// one, is logged per session that scored at least one password.
func (c *Checker) CheckPassword() (Outcome, error) {
	var (
		state    = AwaitingInput
		out      Outcome
		password string
	)

	for {
		switch state {
		case AwaitingInput:
			pw, err := c.in.ReadPassword(passwordPrompt)
			if errors.Is(err, console.ErrInputClosed) {
				return c.closeOut(out)
			}
			if err != nil {
				return out, fmt.Errorf("read password: %w", err)
			}
			if strings.TrimSpace(pw) == "" {
				c.view.EmptyInput()
				continue
			}
			out.Attempts++
			password = pw
			state = Scoring

		case Scoring:
			c.view.Analyzing()
			out.Result = c.policy.Check(password)
			password = ""
			state = Failed
			if out.Result.Passed {
				state = Succeeded
			}

		case Succeeded:
			out.Passed = true
			c.view.Passed(out.Attempts, out.Result)
			if err := c.record(&out); err != nil {
				return out, err
			}
			c.view.Done()
			return out, nil

		case Failed:
			c.view.RuleFailure(out.Result.Blocking, c.policy)
			c.view.Score(out.Result)

			retry, err := c.in.Confirm(c.view.Question(retryQuestion))
			if errors.Is(err, console.ErrInputClosed) {
				return c.closeOut(out)
			}
			if err != nil {
				return out, fmt.Errorf("read answer: %w", err)
			}
			if retry {
				c.view.Blank()
				state = AwaitingInput
				continue
			}

			c.view.GaveUp(out.Attempts)
			if err := c.record(&out); err != nil {
				return out, err
			}
			return out, nil
		}
	}
}

// closeOut ends a session whose input closed, logging the last scored
// attempt if there was one.
func (c *Checker) closeOut(out Outcome) (Outcome, error) {
	out.Closed = true
	if out.Attempts == 0 {
		return out, nil
	}
	c.view.Blank()
	if err := c.record(&out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Checker) record(out *Outcome) error {
	err := c.rec.Append(log.Attempt{
		Time:     c.now(),
		Attempts: out.Attempts,
		Score:    out.Result.Score,
		Rating:   out.Result.Rating,
	})
	if err != nil {
		return fmt.Errorf("log attempt: %w", err)
	}
	out.Logged = true
	c.view.LogSaved(c.rec.Path())
	return nil
}
