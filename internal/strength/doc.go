// Package strength scores password strength.
//
// # Purpose
//
// A password is run through a fixed sequence of independent heuristics.
// Each heuristic returns a signed score delta and zero or more feedback
// messages. The deltas are summed and the total is mapped to a label.
//
// # Analyzers
//
// Analyzers run in this order, and feedback is concatenated in the same
// order:
//  1. length: tiered bonus at 8, 12, 16 and 20 characters
//  2. character_classes: reports which of upper, lower, digit and special
//     are present (no score)
//  3. character_diversity: +1 per class, bonuses for 3 and 4 classes
//  4. common_password: penalty for an exact denylist match
//  5. repetition: penalty for characters occurring more than twice
//  6. sequence: penalty for the first ascending run like "abc" or "123"
//  7. keyboard_pattern: penalty for the first keyboard row like "qwerty"
//  8. entropy: adds the Shannon entropy of the character distribution
//
// Every analyzer is also exported as a standalone function so it can be
// tested or reused without an Evaluator.
//
// # Usage
//
//	label, feedback := strength.Evaluate("Tr0ub4dor&3")
//
//	// Or, for the full breakdown:
//	ev := strength.NewEvaluator(strength.WithLogger(logger))
//	result := ev.Analyze(password)
//
// # Labels
//
// The total score maps to a label by inclusive upper bounds:
//   - <= 0: Very Weak
//   - <= 3: Weak
//   - <= 6: Moderate
//   - <= 9: Strong
//   - <= 12: Very Strong
//   - otherwise: Excellent
//
// The entropy delta is fractional, so the total is a float64 and is
// compared without rounding.
package strength
