package model

// CharClasses records which character classes occur in a password.
// It is derived once per evaluation and shared by the class feedback and
// the diversity scorer.
type CharClasses struct {
	// Upper is true if the password contains an ASCII uppercase letter.
	Upper bool `json:"upper"`

	// Lower is true if the password contains an ASCII lowercase letter.
	Lower bool `json:"lower"`

	// Digit is true if the password contains an ASCII digit.
	Digit bool `json:"digit"`

	// Special is true if the password contains anything that is not an
	// ASCII letter, an ASCII digit or whitespace.
	Special bool `json:"special"`
}

// Count returns how many of the four classes are present (0-4).
func (c CharClasses) Count() int {
	n := 0
	for _, present := range []bool{c.Upper, c.Lower, c.Digit, c.Special} {
		if present {
			n++
		}
	}
	return n
}

// Contribution is the output of a single analyzer.
type Contribution struct {
	// Analyzer is the analyzer name, e.g. "length" or "entropy".
	Analyzer string `json:"analyzer"`

	// Delta is the signed score contribution. Only the entropy analyzer
	// produces a fractional value.
	Delta float64 `json:"delta"`

	// Feedback holds the messages emitted by the analyzer, in order.
	Feedback []string `json:"feedback,omitempty"`
}

// Result is the outcome of evaluating one password.
//
// Label and Feedback are the externally observable output. The remaining
// fields explain how the label was reached and never change it.
// The password itself is deliberately absent.
type Result struct {
	// Label is the strength classification.
	Label Label `json:"label"`

	// Score is the sum of all analyzer deltas.
	Score float64 `json:"score"`

	// Feedback is the concatenated analyzer feedback in invocation order.
	Feedback []string `json:"feedback"`

	// Breakdown lists each analyzer's contribution in invocation order.
	// Empty for an empty password.
	Breakdown []Contribution `json:"breakdown,omitempty"`

	// Length is the password length in characters.
	Length int `json:"length"`

	// Entropy is the Shannon entropy of the character distribution in bits
	// per character.
	Entropy float64 `json:"entropy"`

	// GuessBits is a brute-force guessing estimate in bits. Informational.
	GuessBits float64 `json:"guess_bits"`
}

// IsEmpty reports whether the result belongs to an empty password.
func (r *Result) IsEmpty() bool {
	return r.Label == LabelEmpty
}
