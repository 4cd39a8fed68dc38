package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nao1215/pwstrength/internal/model"
)

// TestNewConfig verifies the default values of NewConfig.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default BatchSize is 10", func(t *testing.T) {
		t.Parallel()
		if cfg.BatchSize != 10 {
			t.Errorf("expected BatchSize to be 10, got %d", cfg.BatchSize)
		}
	})

	t.Run("default MinStrength is Very Weak", func(t *testing.T) {
		t.Parallel()
		if cfg.MinStrength != model.LabelVeryWeak {
			t.Errorf("expected MinStrength to be Very Weak, got %v", cfg.MinStrength)
		}
	})

	t.Run("input is hidden by default", func(t *testing.T) {
		t.Parallel()
		if !cfg.HideInput {
			t.Error("expected HideInput to be true")
		}
	})

	t.Run("default config is interactive and valid", func(t *testing.T) {
		t.Parallel()
		if !cfg.Interactive() {
			t.Error("expected a config without inputs to be interactive")
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected default config to be valid, got %v", err)
		}
	})
}

// TestConfigValidate tests each validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{
			name:    "passwords as arguments are valid",
			modify:  func(c *Config) { c.Passwords = []string{"a", "b"} },
			wantErr: nil,
		},
		{
			name:    "input file alone is valid",
			modify:  func(c *Config) { c.InputFile = "passwords.txt" },
			wantErr: nil,
		},
		{
			name:    "zero batch size",
			modify:  func(c *Config) { c.BatchSize = 0 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name:    "negative batch size",
			modify:  func(c *Config) { c.BatchSize = -1 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name: "json and markdown together",
			modify: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{
			name: "arguments and file together",
			modify: func(c *Config) {
				c.Passwords = []string{"secret"}
				c.InputFile = "-"
			},
			wantErr: ErrConflictingInputs,
		},
		{
			name:    "empty label as minimum",
			modify:  func(c *Config) { c.MinStrength = model.LabelEmpty },
			wantErr: ErrInvalidMinStrength,
		},
		{
			name:    "undefined label as minimum",
			modify:  func(c *Config) { c.MinStrength = model.Label(42) },
			wantErr: ErrInvalidMinStrength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestLoadConfigFile tests loading YAML config files.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.pwstrength")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".pwstrength")
		content := `defaults:
  format: markdown
  minStrength: Strong
  showScore: true
  batch: 4
  hideInput: false
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cfg, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		d := cfg.Defaults
		if d.Format != "markdown" {
			t.Errorf("expected format markdown, got %q", d.Format)
		}
		if d.MinStrength != "Strong" {
			t.Errorf("expected minStrength Strong, got %q", d.MinStrength)
		}
		if d.ShowScore == nil || !*d.ShowScore {
			t.Error("expected showScore true")
		}
		if d.Batch != 4 {
			t.Errorf("expected batch 4, got %d", d.Batch)
		}
		if d.HideInput == nil || *d.HideInput {
			t.Error("expected hideInput false")
		}
	})

	t.Run("unset booleans stay nil", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".pwstrength")
		if err := os.WriteFile(configPath, []byte("defaults:\n  batch: 2\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cfg, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Defaults.ShowScore != nil || cfg.Defaults.HideInput != nil {
			t.Error("expected unset booleans to be nil")
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".pwstrength")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfigFile(configPath)
		if err == nil {
			t.Fatal("expected error for invalid YAML")
		}
		if !strings.Contains(err.Error(), configPath) {
			t.Errorf("expected error to name the file, got %v", err)
		}
	})
}

// TestFileApply tests layering file defaults under explicit flags.
func TestFileApply(t *testing.T) {
	t.Parallel()

	yes, no := true, false
	noneChanged := func(string) bool { return false }

	t.Run("applies every default", func(t *testing.T) {
		t.Parallel()

		cf := &File{Defaults: Settings{
			Format:      "JSON",
			MinStrength: "very-strong",
			ShowScore:   &yes,
			Batch:       3,
			HideInput:   &no,
		}}
		cfg := NewConfig()
		if err := cf.Apply(cfg, noneChanged); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.JSONReport || cfg.MarkdownReport {
			t.Error("expected JSON report format")
		}
		if cfg.MinStrength != model.LabelVeryStrong {
			t.Errorf("expected Very Strong, got %v", cfg.MinStrength)
		}
		if !cfg.ShowScore {
			t.Error("expected ShowScore")
		}
		if cfg.BatchSize != 3 {
			t.Errorf("expected batch 3, got %d", cfg.BatchSize)
		}
		if cfg.HideInput {
			t.Error("expected HideInput false")
		}
	})

	t.Run("explicit flags win", func(t *testing.T) {
		t.Parallel()

		cf := &File{Defaults: Settings{
			Format:      "markdown",
			MinStrength: "Excellent",
			Batch:       3,
		}}
		cfg := NewConfig()
		cfg.JSONReport = true
		cfg.MinStrength = model.LabelWeak
		cfg.BatchSize = 7

		changed := func(flag string) bool {
			return flag == FlagJSON || flag == FlagMinStrength || flag == FlagBatch
		}
		if err := cf.Apply(cfg, changed); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.JSONReport || cfg.MarkdownReport {
			t.Error("expected --json to override the file format")
		}
		if cfg.MinStrength != model.LabelWeak {
			t.Errorf("expected flag value Weak, got %v", cfg.MinStrength)
		}
		if cfg.BatchSize != 7 {
			t.Errorf("expected flag value 7, got %d", cfg.BatchSize)
		}
	})

	t.Run("empty defaults change nothing", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := (&File{}).Apply(cfg, noneChanged); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(cfg, NewConfig()) {
			t.Errorf("expected defaults to be untouched, got %+v", cfg)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		cf := &File{Defaults: Settings{Format: "xml"}}
		if err := cf.Apply(NewConfig(), noneChanged); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("unknown label", func(t *testing.T) {
		t.Parallel()

		cf := &File{Defaults: Settings{MinStrength: "unbreakable"}}
		if err := cf.Apply(NewConfig(), noneChanged); !errors.Is(err, ErrInvalidMinStrength) {
			t.Errorf("expected ErrInvalidMinStrength, got %v", err)
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("defaults: {}"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

// TestXDGConfigDir tests the XDG config directory.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if filepath.Base(dir) != AppName {
		t.Errorf("expected directory to end in %q, got %q", AppName, dir)
	}
}
