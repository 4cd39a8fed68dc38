package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/pwstrength/internal/config"
	"github.com/nao1215/pwstrength/internal/log"
	"github.com/nao1215/pwstrength/internal/model"
	"github.com/nao1215/pwstrength/internal/pipeline"
	"github.com/nao1215/pwstrength/internal/prompt"
	"github.com/nao1215/pwstrength/internal/report"
	"github.com/nao1215/pwstrength/internal/strength"
)

// ErrBelowMinimum is returned when a checked password is rated below
// --min-strength.
var ErrBelowMinimum = errors.New("password strength below minimum")

// promptSource is the entry source for a password typed at the prompt.
const promptSource = "prompt"

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [password...]",
		Short: "Rate the strength of one or more passwords",
		Long: `Check rates passwords from Very Weak to Excellent and prints feedback.

Without arguments or --file, check asks for a password interactively. On a
terminal the input is not echoed.

Passing passwords as arguments leaves them in your shell history and the
process list. Prefer the prompt or --file for real passwords.

Examples:
  # Prompt for a password
  pwstrength check

  # Check passwords given as arguments
  pwstrength check 'Tr0ub4dor&3' 'correct horse battery staple'

  # Check a file with one password per line, as Markdown
  pwstrength check --file passwords.txt --markdown -o report.md

  # Read from stdin and fail if anything is weaker than Strong
  cat passwords.txt | pwstrength check -f - --min-strength strong

  # Show the score breakdown
  pwstrength check --show-score`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	// Input flags
	cmd.Flags().StringP("file", "f", "",
		"Read passwords from file, one per line (\"-\" for stdin)")
	cmd.Flags().IntP(config.FlagBatch, "b", config.DefaultBatchSize,
		"Number of passwords evaluated concurrently")
	cmd.Flags().Bool(config.FlagNoHide, false,
		"Echo the password at the interactive prompt")

	// Policy flags
	cmd.Flags().StringP(config.FlagMinStrength, "s", config.DefaultMinStrength.String(),
		"Fail if any password is rated below this strength")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pwstrength in current, XDG config or home directory)")

	// Report flags
	cmd.Flags().BoolP(config.FlagJSON, "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP(config.FlagMarkdown, "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("tee", false,
		"Also print the report to stdout when --output is set")
	cmd.Flags().BoolP(config.FlagShowScore, "S", false,
		"Show the numeric score and per-check breakdown")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runCheck(ctx, cmd, cfg, logger)
}

// newLogger keeps stderr machine-readable when the report is JSON.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.JSONReport {
		return log.NewSecureJSONLogger(w, cfg.Verbose)
	}
	return log.NewSecureLogger(w, cfg.Verbose)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags, layered over the
// config file when one is found.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Passwords = args
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.InputFile, err = cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt(config.FlagBatch)
	if err != nil {
		return nil, err
	}

	noHide, err := cmd.Flags().GetBool(config.FlagNoHide)
	if err != nil {
		return nil, err
	}
	cfg.HideInput = !noHide

	minStrength, err := cmd.Flags().GetString(config.FlagMinStrength)
	if err != nil {
		return nil, err
	}
	cfg.MinStrength, err = model.ParseLabel(minStrength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidMinStrength, err)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool(config.FlagJSON)
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool(config.FlagMarkdown)
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Tee, err = cmd.Flags().GetBool("tee")
	if err != nil {
		return nil, err
	}

	cfg.ShowScore, err = cmd.Flags().GetBool(config.FlagShowScore)
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly named config file must exist; otherwise a missing file
	// just means built-in defaults.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath == "" {
		if cfg.ConfigFilePath != "" {
			return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
		}
		return cfg, nil
	}

	file, err := config.LoadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	if err := file.Apply(cfg, cmd.Flags().Changed); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// runCheck collects the passwords, evaluates them and writes the report.
func runCheck(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	candidates, err := collectCandidates(cmd, cfg)
	if errors.Is(err, prompt.ErrNoInput) {
		return nil
	}
	if err != nil {
		return err
	}

	if len(candidates) == 0 {
		logger.Warn("no passwords to check", "file", cfg.InputFile)
	}

	evaluator := strength.NewEvaluator(strength.WithLogger(logger))
	logger.Debug("evaluating passwords",
		"count", len(candidates),
		"checks", evaluator.CheckNames(),
		"concurrency", cfg.BatchSize,
	)
	bp := pipeline.NewBatchProcessor(evaluator,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	result, err := bp.ProcessBatch(ctx, candidates)
	if err != nil {
		return fmt.Errorf("evaluation interrupted: %w", err)
	}

	if err := outputReport(cmd, cfg, result); err != nil {
		return err
	}

	if below := result.BelowMinimum(cfg.MinStrength); len(below) > 0 {
		return fmt.Errorf("%w: %d of %d password(s) rated below %s",
			ErrBelowMinimum, len(below), len(result.Entries), cfg.MinStrength)
	}
	return nil
}

// collectCandidates gathers passwords from arguments, a file or the prompt.
func collectCandidates(cmd *cobra.Command, cfg *config.Config) ([]pipeline.Candidate, error) {
	switch {
	case cfg.Interactive():
		password, err := prompt.New(cmd.InOrStdin(), promptOutput(cmd, cfg),
			prompt.WithHiddenInput(cfg.HideInput),
		).ReadPassword()
		if err != nil {
			return nil, err
		}
		return []pipeline.Candidate{{Source: promptSource, Password: password}}, nil
	case cfg.InputFile == "-":
		return pipeline.ReadCandidates(cmd.InOrStdin())
	case cfg.InputFile != "":
		f, err := os.Open(cfg.InputFile) //nolint:gosec // User-provided input path is intentional
		if err != nil {
			return nil, fmt.Errorf("failed to open password file: %w", err)
		}
		defer f.Close()
		return pipeline.ReadCandidates(f)
	default:
		return pipeline.ArgumentCandidates(cfg.Passwords), nil
	}
}

// promptOutput keeps machine-readable reports on stdout free of prompts.
func promptOutput(cmd *cobra.Command, cfg *config.Config) io.Writer {
	if cfg.JSONReport || cfg.MarkdownReport {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// outputReport writes the report in the requested format to stdout, the
// output file, or both with --tee.
func outputReport(cmd *cobra.Command, cfg *config.Config, result *model.Report) error {
	var writers []report.Writer
	if cfg.ReportFile == "" || cfg.Tee {
		writers = append(writers, newReportWriter(cmd.OutOrStdout(), cfg))
	}

	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writers = append(writers, newReportWriter(f, cfg))
	}

	if _, err := report.NewMultiWriter(writers...).Write(result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// newReportWriter returns the Writer for the configured format.
func newReportWriter(output io.Writer, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithScore(cfg.ShowScore))
	}
}
