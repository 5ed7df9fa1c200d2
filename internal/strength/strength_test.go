package strength

import (
	"strings"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"Str0ng!Pass", 5},
		{"short1", 2},
		{"lowercase!", 3},
		{"ALLUPPERCASE", 2},
		{"12345678", 2},
		{"@$!%*?&", 1},
		{"aB3!", 4},
		{"éééééééé", 1},
	}

	for _, tt := range tests {
		if got := Score(tt.password); got != tt.want {
			t.Errorf("Score(%q) = %d, want %d", tt.password, got, tt.want)
		}
	}
}

func TestScoreShortPasswordsNeverEarnLength(t *testing.T) {
	p := DefaultPolicy()
	for n := 0; n < DefaultMinLength; n++ {
		pw := strings.Repeat("A", n)
		if p.Satisfies(RuleLength, pw) {
			t.Errorf("length rule satisfied by %d-char password", n)
		}
		// Full composition but short: one point below max.
		short := "Aa1!" + strings.Repeat("x", n)
		if len(short) < DefaultMinLength && p.Score(short) != MaxScore-1 {
			t.Errorf("Score(%q) = %d, want %d", short, p.Score(short), MaxScore-1)
		}
	}
}

func TestScoreIsBounded(t *testing.T) {
	inputs := []string{"", " ", "\x00\xff", "日本語のパスワード", strings.Repeat("Aa1!", 100), "\t\n"}
	for _, in := range inputs {
		got := Score(in)
		if got < 0 || got > MaxScore {
			t.Errorf("Score(%q) = %d, outside [0,%d]", in, got, MaxScore)
		}
		if again := Score(in); again != got {
			t.Errorf("Score(%q) not deterministic: %d then %d", in, got, again)
		}
	}
}

func TestRatingFor(t *testing.T) {
	want := map[int]Rating{
		0: Weak,
		1: Weak,
		2: Weak,
		3: Medium,
		4: Medium,
		5: Strong,
	}
	for score, rating := range want {
		if got := RatingFor(score); got != rating {
			t.Errorf("RatingFor(%d) = %s, want %s", score, got, rating)
		}
	}
}

func TestFirstUnmetPriority(t *testing.T) {
	tests := []struct {
		password string
		want     Rule
		failed   bool
	}{
		{"lowercase!", RuleUppercase, true}, // missing uppercase and digit
		{"short1", RuleLength, true},
		{"UPPERCASE1!", RuleLowercase, true},
		{"Password!", RuleDigit, true},
		{"Password1", RuleSymbol, true},
		{"Str0ng!Pass", 0, false},
	}

	p := DefaultPolicy()
	for _, tt := range tests {
		got, failed := p.FirstUnmet(tt.password)
		if failed != tt.failed {
			t.Errorf("FirstUnmet(%q) failed = %v, want %v", tt.password, failed, tt.failed)
			continue
		}
		if failed && got != tt.want {
			t.Errorf("FirstUnmet(%q) = %s, want %s", tt.password, got, tt.want)
		}
	}
}

func TestCheck(t *testing.T) {
	p := DefaultPolicy()

	res := p.Check("Str0ng!Pass")
	if !res.Passed || res.Score != 5 || res.Rating != Strong {
		t.Errorf("Check(Str0ng!Pass) = %+v, want passed 5/5 Strong", res)
	}

	res = p.Check("short1")
	if res.Passed {
		t.Fatal("Check(short1) passed, want failure")
	}
	if res.Blocking != RuleLength || res.Score != 2 || res.Rating != Weak {
		t.Errorf("Check(short1) = %+v, want length failure 2/5 Weak", res)
	}
}

func TestPolicyCustomSymbols(t *testing.T) {
	p := Policy{MinLength: 4, Symbols: "#"}
	if p.Satisfies(RuleSymbol, "abc!") {
		t.Error("'!' accepted with symbol set \"#\"")
	}
	if !p.Satisfies(RuleSymbol, "abc#") {
		t.Error("'#' rejected with symbol set \"#\"")
	}
	if p.Satisfies(RuleSymbol, "abc") {
		t.Error("symbol rule satisfied without any symbol")
	}

	empty := Policy{MinLength: 1}
	if empty.Satisfies(RuleSymbol, "a!") {
		t.Error("empty symbol set should never be satisfied")
	}
}

func TestParseRating(t *testing.T) {
	for _, r := range []Rating{Weak, Medium, Strong} {
		got, ok := ParseRating(string(r))
		if !ok || got != r {
			t.Errorf("ParseRating(%q) = %q, %v", r, got, ok)
		}
	}
	if _, ok := ParseRating("strong"); ok {
		t.Error("ParseRating accepted lowercase label")
	}
}
