// Package ui renders the checker's color-coded terminal feedback.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/pwcheck-dev/pwcheck/internal/strength"
)

// Options configures a Presenter.
type Options struct {
	Color           string // ColorAuto, ColorAlways or ColorNever
	SpinnerDuration time.Duration
	SpinnerFPS      int
}

// Presenter writes user-facing messages to a single output.
type Presenter struct {
	out    io.Writer
	styles styles

	spinner      spinner.Spinner
	spinDuration time.Duration
	animate      bool
	sleep        func(time.Duration)
}

// NewPresenter creates a Presenter for out. The spinner only animates
// when out is a terminal.
func NewPresenter(out io.Writer, opts Options) *Presenter {
	r := withColorMode(lipgloss.NewRenderer(out), opts.Color)

	return &Presenter{
		out:          out,
		styles:       newStyles(r),
		spinner:      newSpinner(opts.SpinnerFPS),
		spinDuration: opts.SpinnerDuration,
		animate:      isTerminal(out),
		sleep:        time.Sleep,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Warn prints msg in yellow.
func (p *Presenter) Warn(msg string) {
	fmt.Fprintln(p.out, p.styles.warning.Render(msg))
}

// Error prints msg in red.
func (p *Presenter) Error(msg string) {
	fmt.Fprintln(p.out, p.styles.err.Render(msg))
}

// Success prints msg in green.
func (p *Presenter) Success(msg string) {
	fmt.Fprintln(p.out, p.styles.success.Render(msg))
}

// Blank prints an empty line.
func (p *Presenter) Blank() {
	fmt.Fprintln(p.out)
}

// Question styles a yes/no prompt, preceded by a blank line.
func (p *Presenter) Question(text string) string {
	return "\n" + p.styles.warning.Render(text)
}

// Banner prints the welcome header.
func (p *Presenter) Banner() {
	rule := strings.Repeat("=", 36)
	p.Success(rule)
	p.Success("\U0001F510  Welcome to the Password Checker!  \U0001F510")
	p.Success(rule)
	p.Blank()
}

// EmptyInput reports a blank submission.
func (p *Presenter) EmptyInput() {
	p.Error("❌ Empty input! Please type a password (not just Enter).")
}

// Analyzing announces a check and runs the spinner.
func (p *Presenter) Analyzing() {
	p.Blank()
	p.Warn("Checking password strength...")
	p.Blank()
	p.Spin("Analyzing password")
}

// RuleFailure reports the blocking rule of a failed check.
func (p *Presenter) RuleFailure(r strength.Rule, policy strength.Policy) {
	p.Error("❌ " + FailureMessage(r, policy))
}

// FailureMessage returns the feedback shown when r is the first unmet rule.
func FailureMessage(r strength.Rule, policy strength.Policy) string {
	switch r {
	case strength.RuleLength:
		return fmt.Sprintf("Oops, too short! Password must be at least %d characters.", policy.MinLength)
	case strength.RuleUppercase:
		return "Not quite strong enough! Add at least one uppercase letter."
	case strength.RuleLowercase:
		return "Try again! Your password needs at least one lowercase letter."
	case strength.RuleDigit:
		return "Drat! You forgot to add at least one number."
	case strength.RuleSymbol:
		return fmt.Sprintf("Haste makes waste! Please add at least one special character (%s).", listSymbols(policy.Symbols))
	default:
		return "Password does not meet the requirements."
	}
}

func listSymbols(symbols string) string {
	parts := make([]string, 0, len(symbols))
	for _, r := range symbols {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ", ")
}

// Score prints the score line: green with a flame for a passing check,
// yellow with a warning sign otherwise.
func (p *Presenter) Score(res strength.Result) {
	line := fmt.Sprintf("Password score: %d/%d → %s", res.Score, strength.MaxScore, res.Rating)
	if res.Passed {
		p.Success("\U0001F525 " + line)
		return
	}
	p.Warn("⚠️ " + line)
}

// Passed reports a successful check.
func (p *Presenter) Passed(attempts int, res strength.Result) {
	p.Success(fmt.Sprintf("✅ Hurray! You created a strong password in %d attempt(s)! You’re good to go.", attempts))
	p.Score(res)
}

// LogSaved confirms where the attempt was recorded.
func (p *Presenter) LogSaved(path string) {
	p.Warn(fmt.Sprintf("(Log saved to %s)", path))
}

// Done closes out a session.
func (p *Presenter) Done() {
	p.Success("✅ All done! Thanks for checking your password with me.")
}

// GaveUp thanks the user after they decline to retry.
func (p *Presenter) GaveUp(attempts int) {
	p.Done()
	p.Blank()
	p.Success(fmt.Sprintf("Thank you for using the password checker! Attempts made: %d. Have a great day!", attempts))
}

// Farewell prints the closing line of the program.
func (p *Presenter) Farewell() {
	p.Blank()
	p.Success("Thanks for using the checker! Stay secure out there \U0001F512")
}
