package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/nao1215/pwstrength/internal/model"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "pwstrength"

	// DefaultBatchSize is the number of passwords evaluated concurrently.
	// Evaluation is CPU-bound and fast, so this mostly bounds goroutines.
	DefaultBatchSize = 10

	// DefaultMinStrength accepts every non-empty password.
	DefaultMinStrength = model.LabelVeryWeak
)

// Config holds all options of a pwstrength run.
// It is built from CLI flags, optionally layered over a config file, and
// passed down explicitly rather than kept in global state.
type Config struct {
	// Passwords are the passwords given as command-line arguments.
	Passwords []string

	// InputFile is a file with one password per line. "-" reads stdin.
	// Mutually exclusive with Passwords.
	InputFile string

	// BatchSize is the number of passwords evaluated concurrently.
	BatchSize int

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output path. Empty means stdout.
	ReportFile string

	// Tee also prints the report to stdout when ReportFile is set.
	Tee bool

	// MinStrength is the weakest label that still passes. A run where any
	// password is below it exits with an error.
	MinStrength model.Label

	// ShowScore adds the numeric score and per-analyzer breakdown to the
	// simple report.
	ShowScore bool

	// HideInput disables echo when prompting on a terminal.
	HideInput bool

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is an explicit config file path. When empty the
	// standard locations are searched.
	ConfigFilePath string
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		BatchSize:   DefaultBatchSize,
		MinStrength: DefaultMinStrength,
		HideInput:   true,
	}
}

// XDGConfigDir returns the XDG config directory for pwstrength.
// On Linux: ~/.config/pwstrength
// On macOS: ~/Library/Application Support/pwstrength
// On Windows: %APPDATA%\pwstrength
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Interactive reports whether the run should prompt for a password.
func (c *Config) Interactive() bool {
	return len(c.Passwords) == 0 && c.InputFile == ""
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if len(c.Passwords) > 0 && c.InputFile != "" {
		return ErrConflictingInputs
	}

	if !c.MinStrength.Valid() || c.MinStrength == model.LabelEmpty {
		return ErrInvalidMinStrength
	}

	return nil
}
