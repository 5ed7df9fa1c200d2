package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pwcheck-dev/pwcheck/internal/strength"
)

func newTestPresenter(opts Options) (*Presenter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPresenter(out, opts), out
}

func TestFailureMessageNamesEachRule(t *testing.T) {
	policy := strength.DefaultPolicy()
	tests := []struct {
		rule strength.Rule
		want string
	}{
		{strength.RuleLength, "too short! Password must be at least 8 characters"},
		{strength.RuleUppercase, "uppercase letter"},
		{strength.RuleLowercase, "lowercase letter"},
		{strength.RuleDigit, "at least one number"},
		{strength.RuleSymbol, "(@, $, !, %, *, ?, &)"},
	}
	for _, tt := range tests {
		if got := FailureMessage(tt.rule, policy); !strings.Contains(got, tt.want) {
			t.Errorf("FailureMessage(%s) = %q, want it to contain %q", tt.rule, got, tt.want)
		}
	}
}

func TestFailureMessageUsesPolicy(t *testing.T) {
	policy := strength.Policy{MinLength: 12, Symbols: "#~"}
	if got := FailureMessage(strength.RuleLength, policy); !strings.Contains(got, "at least 12 characters") {
		t.Errorf("length message = %q", got)
	}
	if got := FailureMessage(strength.RuleSymbol, policy); !strings.Contains(got, "(#, ~)") {
		t.Errorf("symbol message = %q", got)
	}
}

func TestNonTerminalOutputIsPlain(t *testing.T) {
	p, out := newTestPresenter(Options{Color: ColorAuto})
	p.Error("boom")
	p.Success("yay")
	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("unexpected escape codes in %q", out.String())
	}
	if out.String() != "boom\nyay\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestColorAlwaysEmitsANSI(t *testing.T) {
	p, out := newTestPresenter(Options{Color: ColorAlways})
	p.Error("boom")
	if !strings.Contains(out.String(), "\x1b[31m") {
		t.Errorf("expected red escape code in %q", out.String())
	}
}

func TestScoreLine(t *testing.T) {
	p, out := newTestPresenter(Options{Color: ColorNever})

	p.Score(strength.Result{Score: 5, Rating: strength.Strong, Passed: true})
	p.Score(strength.Result{Score: 2, Rating: strength.Weak})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "\U0001F525") || !strings.Contains(lines[0], "Password score: 5/5 → Strong") {
		t.Errorf("passing score line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "⚠️") || !strings.Contains(lines[1], "Password score: 2/5 → Weak") {
		t.Errorf("failing score line = %q", lines[1])
	}
}

func TestSpinWithoutTerminal(t *testing.T) {
	p, out := newTestPresenter(Options{SpinnerDuration: time.Second, SpinnerFPS: 10})
	p.sleep = func(time.Duration) { t.Fatal("spinner slept off a terminal") }

	p.Spin("Analyzing password")
	if out.String() != "Analyzing password... ✓\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestSpinAnimatesFixedFrameCount(t *testing.T) {
	p, out := newTestPresenter(Options{SpinnerDuration: 1400 * time.Millisecond, SpinnerFPS: 14})
	p.animate = true
	var slept []time.Duration
	p.sleep = func(d time.Duration) { slept = append(slept, d) }

	p.Spin("Analyzing password")

	if len(slept) != 19 {
		t.Errorf("slept %d times, want 19", len(slept))
	}
	for _, d := range slept {
		if d != time.Second/14 {
			t.Fatalf("frame delay = %v, want %v", d, time.Second/14)
		}
	}
	got := out.String()
	if !strings.HasPrefix(got, "Analyzing password... -\b\\\b|\b/\b-") {
		t.Errorf("unexpected frame sequence: %q", got)
	}
	if !strings.HasSuffix(got, "\b✓\n") {
		t.Errorf("expected trailing check mark, got %q", got)
	}
}

func TestFrameCount(t *testing.T) {
	s := newSpinner(10)
	if n := frameCount(s, time.Second); n != 10 {
		t.Errorf("frameCount = %d, want 10", n)
	}
	if n := frameCount(s, 0); n != 0 {
		t.Errorf("frameCount(0) = %d, want 0", n)
	}
	if s := newSpinner(0); s.FPS != time.Second {
		t.Errorf("newSpinner(0).FPS = %v, want 1s", s.FPS)
	}
}

func TestQuestionStartsOnNewLine(t *testing.T) {
	p, _ := newTestPresenter(Options{Color: ColorNever})
	if got := p.Question("Again? (y/n): "); got != "\nAgain? (y/n): " {
		t.Errorf("Question = %q", got)
	}
}

func TestGaveUpReportsAttempts(t *testing.T) {
	p, out := newTestPresenter(Options{Color: ColorNever})
	p.GaveUp(3)
	if !strings.Contains(out.String(), "Attempts made: 3.") {
		t.Errorf("output = %q", out.String())
	}
}
