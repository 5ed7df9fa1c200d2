// Package testutil provides test helper utilities for pwcheck tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pwcheck-dev/pwcheck/internal/console"
)

// TempHome points HOME (and USERPROFILE) at a fresh temporary directory
// for the duration of the test and returns its path.
func TempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

// WriteFile writes content to dir/relPath, creating directories as needed,
// and returns the absolute path.
func WriteFile(t *testing.T, dir, relPath, content string) string {
	t.Helper()
	absPath := filepath.Join(dir, relPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", relPath, err)
	}
	return absPath
}

// ReadLines returns the non-empty lines of the file at path.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ScriptedPrompter answers prompts from fixed queues. Once a queue is
// exhausted it reports console.ErrInputClosed, like stdin at EOF.
type ScriptedPrompter struct {
	Passwords []string
	Answers   []bool

	// Prompts records every prompt shown, in order.
	Prompts []string
}

// ReadPassword returns the next scripted password.
func (s *ScriptedPrompter) ReadPassword(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Passwords) == 0 {
		return "", console.ErrInputClosed
	}
	pw := s.Passwords[0]
	s.Passwords = s.Passwords[1:]
	return pw, nil
}

// Confirm returns the next scripted yes/no answer.
func (s *ScriptedPrompter) Confirm(prompt string) (bool, error) {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Answers) == 0 {
		return false, console.ErrInputClosed
	}
	yes := s.Answers[0]
	s.Answers = s.Answers[1:]
	return yes, nil
}
