package strength

// Length tier thresholds in characters.
const (
	goodLength      = 8
	veryGoodLength  = 12
	excellentLength = 16
	superbLength    = 20
)

// LengthScore scores a password length.
// Tiers are cumulative: a 20-character password collects all four bonuses
// (1+2+3+2 = 8). Below 8 characters the score is 0 and a suggestion is
// returned instead.
func LengthScore(length int) (int, []string) {
	score := 0
	var feedback []string

	if length < goodLength {
		feedback = append(feedback, "Consider making your password longer (at least 8 characters).")
	} else {
		score++
		feedback = append(feedback, "Good length!")
	}
	if length >= veryGoodLength {
		score += 2
		feedback = append(feedback, "Very good length!")
	}
	if length >= excellentLength {
		score += 3
		feedback = append(feedback, "Excellent length!")
	}
	if length >= superbLength {
		score += 2
		feedback = append(feedback, "Superb length!")
	}

	return score, feedback
}
