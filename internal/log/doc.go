// Package log provides slog-based logging that never writes password
// material.
//
// SecureHandler wraps any slog.Handler and masks an attribute when:
//   - its key names a secret (password, passphrase, candidate, token, ...)
//   - its string value looks like a credential (JWT, bearer token, private key)
//
// The evaluator and batch pipeline only log lengths, labels and sources,
// so the handler is a second line for anything logged by mistake.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("evaluated", "source", "line 3", "password", pw) // password=***REDACTED***
package log
