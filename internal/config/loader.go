package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/pwstrength/internal/model"
)

const (
	// DefaultConfigFile is the config file name looked up in the current
	// and home directories.
	DefaultConfigFile = ".pwstrength"

	// XDGConfigFile is the config file name inside XDGConfigDir.
	XDGConfigFile = "config.yaml"
)

// Report formats accepted in the config file.
const (
	FormatSimple   = "simple"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Flag names that File.Apply checks before overriding a value.
const (
	FlagJSON        = "json"
	FlagMarkdown    = "markdown"
	FlagMinStrength = "min-strength"
	FlagShowScore   = "show-score"
	FlagBatch       = "batch"
	FlagNoHide      = "no-hide"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Settings are the defaults a config file may set. Pointer fields
// distinguish "unset" from the zero value.
type Settings struct {
	// Format is one of simple, json or markdown.
	Format string `yaml:"format,omitempty"`

	// MinStrength is a label name such as "Moderate" or "very-strong".
	MinStrength string `yaml:"minStrength,omitempty"`

	// ShowScore adds the score breakdown to simple output.
	ShowScore *bool `yaml:"showScore,omitempty"`

	// Batch is the number of passwords evaluated concurrently.
	Batch int `yaml:"batch,omitempty"`

	// HideInput disables echo at the interactive prompt.
	HideInput *bool `yaml:"hideInput,omitempty"`
}

// File is the structure of the .pwstrength configuration file.
type File struct {
	// Defaults apply to every run unless overridden by a flag.
	Defaults Settings `yaml:"defaults,omitempty"`
}

// LoadConfigFile loads a YAML config file.
// A missing file yields ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. .pwstrength in the current directory
// 3. config.yaml in XDGConfigDir
// 4. .pwstrength in the user's home directory
//
// It returns an empty string when nothing is found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), XDGConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Apply copies the file defaults into c, skipping every setting whose
// flag the user set explicitly. changed reports whether a flag was set;
// cobra's FlagSet.Changed fits.
func (cf *File) Apply(c *Config, changed func(flag string) bool) error {
	d := cf.Defaults

	if d.Format != "" && !changed(FlagJSON) && !changed(FlagMarkdown) {
		switch strings.ToLower(d.Format) {
		case FormatSimple:
			c.JSONReport, c.MarkdownReport = false, false
		case FormatJSON:
			c.JSONReport, c.MarkdownReport = true, false
		case FormatMarkdown:
			c.JSONReport, c.MarkdownReport = false, true
		default:
			return fmt.Errorf("%w: %q", ErrInvalidFormat, d.Format)
		}
	}

	if d.MinStrength != "" && !changed(FlagMinStrength) {
		label, err := model.ParseLabel(d.MinStrength)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidMinStrength, err)
		}
		c.MinStrength = label
	}

	if d.ShowScore != nil && !changed(FlagShowScore) {
		c.ShowScore = *d.ShowScore
	}

	if d.Batch != 0 && !changed(FlagBatch) {
		c.BatchSize = d.Batch
	}

	if d.HideInput != nil && !changed(FlagNoHide) {
		c.HideInput = *d.HideInput
	}

	return nil
}
