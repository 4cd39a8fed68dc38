// Package model defines the data structures shared across pwstrength.
//
// This package contains the following main types:
//   - Label: The discrete strength classification
//   - CharClasses: Which character classes a password contains
//   - Contribution: One analyzer's score delta and feedback
//   - Result: The evaluation of a single password
//   - Report: The results of a whole run, with a per-label summary
//
// The strength, report and pipeline packages all depend on these types, so
// they live in their own package to avoid import cycles. None of them ever
// holds the password being evaluated; they are safe to serialize to JSON.
package model
