package strength

import (
	"unicode"

	"github.com/nao1215/pwstrength/internal/model"
)

// DetectClasses reports which character classes occur in the password.
// Letters and digits are ASCII only. Special is anything else that is not
// whitespace, so "é" and "€" both count as special.
func DetectClasses(password string) model.CharClasses {
	var c model.CharClasses
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			c.Upper = true
		case r >= 'a' && r <= 'z':
			c.Lower = true
		case r >= '0' && r <= '9':
			c.Digit = true
		case !unicode.IsSpace(r):
			c.Special = true
		}
	}
	return c
}

// ClassFeedback returns exactly four lines, one per class, in the order
// upper, lower, digit, special.
func ClassFeedback(c model.CharClasses) []string {
	return []string{
		classLine(c.Upper, "Contains uppercase letters.", "Consider adding uppercase letters."),
		classLine(c.Lower, "Contains lowercase letters.", "Consider adding lowercase letters."),
		classLine(c.Digit, "Contains numbers.", "Consider adding numbers."),
		classLine(c.Special, "Contains special characters.", "Consider adding special characters."),
	}
}

func classLine(present bool, has, missing string) string {
	if present {
		return has
	}
	return missing
}

// DiversityScore scores the number of character classes.
// Each class is worth 1. Three or more classes add 2, and all four add a
// further 3, for a maximum of 9.
func DiversityScore(c model.CharClasses) (int, []string) {
	count := c.Count()
	score := count
	var feedback []string

	if count >= 3 {
		score += 2
		feedback = append(feedback, "Good mix of character types!")
	}
	if count == 4 {
		score += 3
		feedback = append(feedback, "Excellent mix of character types!")
	}

	return score, feedback
}
