// Package strength scores passwords against the five composition rules
// and maps scores onto Weak/Medium/Strong ratings.
package strength

import (
	"strings"
	"unicode/utf8"
)

// Defaults for the composition rules.
const (
	DefaultMinLength = 8
	DefaultSymbols   = "@$!%*?&"

	// MaxScore is the score of a password satisfying every rule.
	MaxScore = 5
)

// Rule identifies one composition rule.
type Rule int

const (
	RuleLength    Rule = iota // at least MinLength characters
	RuleUppercase             // an ASCII uppercase letter
	RuleLowercase             // an ASCII lowercase letter
	RuleDigit                 // an ASCII digit
	RuleSymbol                // one of the policy's symbols
)

// Rules lists every rule in reporting priority order. When several rules
// fail, the earliest one in this list is the one reported.
var Rules = []Rule{RuleLength, RuleUppercase, RuleLowercase, RuleDigit, RuleSymbol}

// String returns the short name used in messages and tests.
func (r Rule) String() string {
	switch r {
	case RuleLength:
		return "length"
	case RuleUppercase:
		return "uppercase"
	case RuleLowercase:
		return "lowercase"
	case RuleDigit:
		return "digit"
	case RuleSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Rating is the categorical label derived from a score.
type Rating string

const (
	Weak   Rating = "Weak"
	Medium Rating = "Medium"
	Strong Rating = "Strong"
)

// RatingFor maps a score onto its rating: 5 is Strong, 3 or 4 is Medium,
// anything lower is Weak.
func RatingFor(score int) Rating {
	if score >= MaxScore {
		return Strong
	}
	if score >= 3 {
		return Medium
	}
	return Weak
}

// ParseRating converts a logged rating label back into a Rating.
func ParseRating(s string) (Rating, bool) {
	switch Rating(s) {
	case Weak, Medium, Strong:
		return Rating(s), true
	}
	return "", false
}

// Policy holds the tunable parts of the rules.
type Policy struct {
	MinLength int
	Symbols   string
}

// DefaultPolicy returns the policy with the standard length and symbol set.
func DefaultPolicy() Policy {
	return Policy{
		MinLength: DefaultMinLength,
		Symbols:   DefaultSymbols,
	}
}

// Satisfies reports whether password meets rule r.
func (p Policy) Satisfies(r Rule, password string) bool {
	switch r {
	case RuleLength:
		return utf8.RuneCountInString(password) >= p.MinLength
	case RuleUppercase:
		return containsRange(password, 'A', 'Z')
	case RuleLowercase:
		return containsRange(password, 'a', 'z')
	case RuleDigit:
		return containsRange(password, '0', '9')
	case RuleSymbol:
		return p.Symbols != "" && strings.ContainsAny(password, p.Symbols)
	default:
		return false
	}
}

// Score counts the rules password satisfies. The result is always in
// [0, MaxScore]; the empty string scores 0.
func (p Policy) Score(password string) int {
	score := 0
	for _, r := range Rules {
		if p.Satisfies(r, password) {
			score++
		}
	}
	return score
}

// FirstUnmet returns the highest-priority rule password fails, or false
// when every rule is met.
func (p Policy) FirstUnmet(password string) (Rule, bool) {
	for _, r := range Rules {
		if !p.Satisfies(r, password) {
			return r, true
		}
	}
	return 0, false
}

// Result is the outcome of checking one password.
type Result struct {
	Score  int
	Rating Rating
	Passed bool
	// Blocking is the first unmet rule. Only meaningful when Passed is false.
	Blocking Rule
}

// Check scores password and determines the blocking rule, if any.
func (p Policy) Check(password string) Result {
	score := p.Score(password)
	res := Result{
		Score:  score,
		Rating: RatingFor(score),
	}
	blocking, failed := p.FirstUnmet(password)
	res.Passed = !failed
	res.Blocking = blocking
	return res
}

// Score scores password under the default policy.
func Score(password string) int {
	return DefaultPolicy().Score(password)
}

func containsRange(s string, lo, hi byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= lo && s[i] <= hi {
			return true
		}
	}
	return false
}
