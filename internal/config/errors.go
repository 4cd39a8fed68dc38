package config

import "errors"

// Configuration validation errors returned by Config.Validate and File.Apply.
// Callers match them with errors.Is.
var (
	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrConflictingInputs is returned when passwords are given as arguments
	// and a password file is given as well.
	ErrConflictingInputs = errors.New("conflicting inputs: pass passwords as arguments or use --file, not both")

	// ErrInvalidMinStrength is returned when the minimum strength is not a
	// known label.
	ErrInvalidMinStrength = errors.New("invalid minimum strength: use one of Very Weak, Weak, Moderate, Strong, Very Strong, Excellent")

	// ErrInvalidFormat is returned when the config file names an unknown
	// report format.
	ErrInvalidFormat = errors.New("invalid report format: use simple, json or markdown")
)
