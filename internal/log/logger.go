// Package log provides the append-only attempt log.
// Each completed password check becomes one line of plain text; the
// password itself is never written.
package log

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pwcheck-dev/pwcheck/internal/strength"
)

// TimeLayout is the ISO-8601 layout used for the leading timestamp.
const TimeLayout = "2006-01-02T15:04:05.000000"

const fieldSep = " | "

// Attempt is one logged password check.
type Attempt struct {
	Time     time.Time
	Attempts int
	Score    int
	Rating   strength.Rating
}

// String renders the attempt in log line form, without a trailing newline:
//
//	2025-10-16T14:03:22.123456 | attempts=2 | score=5/5 | rating=Strong
func (a Attempt) String() string {
	return fmt.Sprintf("%s%sattempts=%d%sscore=%d/%d%srating=%s",
		a.Time.Format(TimeLayout), fieldSep,
		a.Attempts, fieldSep,
		a.Score, strength.MaxScore, fieldSep,
		a.Rating)
}

// ParseLine parses one log line produced by Attempt.String.
func ParseLine(line string) (Attempt, error) {
	parts := strings.Split(strings.TrimSpace(line), fieldSep)
	if len(parts) != 4 {
		return Attempt{}, fmt.Errorf("expected 4 fields, got %d", len(parts))
	}

	ts, err := time.ParseInLocation(TimeLayout, parts[0], time.Local)
	if err != nil {
		return Attempt{}, fmt.Errorf("parse timestamp: %w", err)
	}

	attempts, err := intField(parts[1], "attempts")
	if err != nil {
		return Attempt{}, err
	}

	scoreText, ok := strings.CutPrefix(parts[2], "score=")
	if !ok {
		return Attempt{}, fmt.Errorf("missing score field")
	}
	scoreText, ok = strings.CutSuffix(scoreText, "/"+strconv.Itoa(strength.MaxScore))
	if !ok {
		return Attempt{}, fmt.Errorf("score %q not out of %d", parts[2], strength.MaxScore)
	}
	score, err := strconv.Atoi(scoreText)
	if err != nil || score < 0 || score > strength.MaxScore {
		return Attempt{}, fmt.Errorf("invalid score %q", scoreText)
	}

	ratingText, ok := strings.CutPrefix(parts[3], "rating=")
	if !ok {
		return Attempt{}, fmt.Errorf("missing rating field")
	}
	rating, ok := strength.ParseRating(ratingText)
	if !ok {
		return Attempt{}, fmt.Errorf("unknown rating %q", ratingText)
	}

	return Attempt{Time: ts, Attempts: attempts, Score: score, Rating: rating}, nil
}

func intField(field, name string) (int, error) {
	v, ok := strings.CutPrefix(field, name+"=")
	if !ok {
		return 0, fmt.Errorf("missing %s field", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q", name, v)
	}
	return n, nil
}

// Logger appends attempts to a log file.
type Logger struct {
	path string
	mu   sync.Mutex
}

// NewLogger creates a Logger that writes to path. Nothing is touched on
// disk until the first Append.
func NewLogger(path string) *Logger {
	return &Logger{path: path}
}

// DefaultPath returns ~/Documents/PasswordChecker/password_log.txt.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, "Documents", "PasswordChecker", "password_log.txt"), nil
}

// Path returns the absolute path of the log file, falling back to the
// configured path if it cannot be made absolute.
func (l *Logger) Path() string {
	abs, err := filepath.Abs(l.path)
	if err != nil {
		return l.path
	}
	return abs
}

// Append writes a single attempt as one line to the log file.
// If a.Time is the zero value, it is set to time.Now().
// Parent directories are created as needed. The file is opened in append
// mode, written to, and then closed.
func (l *Logger) Append(a Attempt) error {
	if a.Time.IsZero() {
		a.Time = time.Now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(a.String() + "\n"); err != nil {
		return fmt.Errorf("write log line: %w", err)
	}

	return nil
}

// ReadAll reads and parses all attempts from the log file.
// Returns an empty slice (not an error) if the file does not exist.
func (l *Logger) ReadAll() ([]Attempt, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Attempt{}, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var attempts []Attempt
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", lineNum, err)
		}
		attempts = append(attempts, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	return attempts, nil
}
