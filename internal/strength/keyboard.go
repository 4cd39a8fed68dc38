package strength

import "strings"

// keyboardPatterns are keyboard-row runs for QWERTY, QWERTZ and AZERTY
// layouts. They are checked in order and the first hit wins.
var keyboardPatterns = []string{
	// QWERTY
	"qwerty", "asdfgh", "zxcvbn",
	// QWERTZ (German)
	"qwertz", "asdfghj", "yxcvbnm",
	// AZERTY (French)
	"azerty", "qsdfgh", "wxcvbn",
}

// keyboardPenalty is applied once, however many patterns match.
const keyboardPenalty = -3

// KeyboardPatternScore returns -3 and a warning if the lowercased password
// contains any keyboard pattern as a substring.
func KeyboardPatternScore(password string) (int, []string) {
	lower := strings.ToLower(password)
	for _, pattern := range keyboardPatterns {
		if strings.Contains(lower, pattern) {
			return keyboardPenalty, []string{"Avoid common keyboard patterns."}
		}
	}
	return 0, nil
}
