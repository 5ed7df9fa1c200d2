// Package report summarizes the password log for the history command.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pwcheck-dev/pwcheck/internal/log"
	"github.com/pwcheck-dev/pwcheck/internal/strength"
)

// Report holds aggregated statistics over a password log.
type Report struct {
	LogPath string
	Total   int
	Strong  int
	Medium  int
	Weak    int
	// AvgAttempts is the mean number of attempts per logged session.
	AvgAttempts float64
	First       time.Time
	Last        time.Time
	// Recent holds the newest entries, oldest first.
	Recent []log.Attempt
}

// Generate builds a Report from attempts in log order. limit caps
// Recent; zero or negative keeps every entry.
func Generate(logPath string, attempts []log.Attempt, limit int) *Report {
	r := &Report{
		LogPath: logPath,
		Total:   len(attempts),
	}
	if len(attempts) == 0 {
		return r
	}

	sum := 0
	for _, a := range attempts {
		sum += a.Attempts
		switch a.Rating {
		case strength.Strong:
			r.Strong++
		case strength.Medium:
			r.Medium++
		case strength.Weak:
			r.Weak++
		}
	}
	r.AvgAttempts = float64(sum) / float64(len(attempts))
	r.First = attempts[0].Time
	r.Last = attempts[len(attempts)-1].Time

	r.Recent = attempts
	if limit > 0 && len(attempts) > limit {
		r.Recent = attempts[len(attempts)-limit:]
	}

	return r
}

// FormatReport produces a terminal-friendly, human-readable summary string.
func FormatReport(r *Report) string {
	if r.Total == 0 {
		return "No attempts logged yet.\n"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Log: %s\n", r.LogPath)
	b.WriteString("\n")

	for _, a := range r.Recent {
		fmt.Fprintf(&b, "  %s  attempts=%-3d  %d/%d  %s\n",
			a.Time.Format("2006-01-02 15:04:05"), a.Attempts, a.Score, strength.MaxScore, a.Rating)
	}
	if hidden := r.Total - len(r.Recent); hidden > 0 {
		fmt.Fprintf(&b, "  ... %d older entr%s not shown\n", hidden, plural(hidden, "y", "ies"))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Total: %d check(s): %d Strong, %d Medium, %d Weak\n", r.Total, r.Strong, r.Medium, r.Weak)
	fmt.Fprintf(&b, "Average attempts per check: %.1f\n", r.AvgAttempts)
	fmt.Fprintf(&b, "Period: %s to %s\n", r.First.Format("2006-01-02"), r.Last.Format("2006-01-02"))

	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
