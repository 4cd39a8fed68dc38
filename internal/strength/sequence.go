package strength

import "unicode"

// sequencePenalty is applied once for the first ascending run found.
const sequencePenalty = -2

// Sequence warnings.
const (
	letterSequenceFeedback = "Avoid sequential letter patterns like 'abc'."
	digitSequenceFeedback  = "Avoid sequential number patterns like '123'."
)

// SequenceScore looks for three consecutive ascending letters ("abc",
// "XYZ") or digits ("123") using a sliding window over the lowercased
// password.
//
// The scan stops at the first run of either kind, so the penalty is applied
// at most once: "abc123" is reported as a letter run only.
func SequenceScore(password string) (int, []string) {
	runes := []rune(password)
	for i := 0; i+2 < len(runes); i++ {
		a, b, c := unicode.ToLower(runes[i]), unicode.ToLower(runes[i+1]), unicode.ToLower(runes[i+2])

		if isASCIILower(a) && isASCIILower(b) && isASCIILower(c) && ascending(a, b, c) {
			return sequencePenalty, []string{letterSequenceFeedback}
		}
		if isASCIIDigit(a) && isASCIIDigit(b) && isASCIIDigit(c) && ascending(a, b, c) {
			return sequencePenalty, []string{digitSequenceFeedback}
		}
	}
	return 0, nil
}

// ascending reports whether each rune is exactly one above the previous.
func ascending(a, b, c rune) bool {
	return a+1 == b && b+1 == c
}

func isASCIILower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
