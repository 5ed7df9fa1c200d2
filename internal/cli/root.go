// Package cli defines Cobra command definitions for the pwcheck CLI.
// This file contains the root command, which runs the interactive checker.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pwcheck-dev/pwcheck/internal/config"
	"github.com/pwcheck-dev/pwcheck/internal/console"
	"github.com/pwcheck-dev/pwcheck/internal/log"
	"github.com/pwcheck-dev/pwcheck/internal/session"
	"github.com/pwcheck-dev/pwcheck/internal/ui"
)

var (
	noColor    bool
	logFile    string
	configFile string
	version    = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "pwcheck",
	Short: "Interactive password strength checker",
	Long: `pwcheck asks for a password, scores it against five composition
rules (length, uppercase, lowercase, digit, symbol) and explains the first
rule it misses. Each finished check is appended to a local log file; the
password itself is never stored.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCheck,
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (default ~/Documents/PasswordChecker/password_log.txt)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path (default ~/Documents/PasswordChecker/config.yaml)")

	rootCmd.AddCommand(historyCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logPath, err := resolveLogPath(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	view := ui.NewPresenter(out, ui.Options{
		Color:           cfg.Color,
		SpinnerDuration: cfg.Spinner.Duration(),
		SpinnerFPS:      cfg.Spinner.FPS,
	})

	con := console.New(os.Stdin, out, view)
	defer con.Close()

	checker := session.New(cfg.Policy(), con, view, log.NewLogger(logPath))
	return checker.Run()
}

// loadConfig reads the config named by --config, or the default config
// file when present. --no-color overrides the file.
func loadConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}

	if noColor {
		cfg.Color = config.ColorNever
	}
	return cfg, nil
}

// resolveLogPath picks the log file: --log-file, then log_file from the
// config, then the default location under the home directory.
func resolveLogPath(cfg *config.Config) (string, error) {
	path := logFile
	if path == "" {
		path = cfg.LogFile
	}
	if path == "" {
		return log.DefaultPath()
	}
	return expandHome(path)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
