package strength

import "fmt"

// maxRepeats is how often a character may occur before it is penalized.
const maxRepeats = 2

// RepetitionScore penalizes characters that occur more than twice.
// Counting is case-sensitive. Every offending character subtracts
// (count - 2) and gets its own message; messages follow the order in which
// characters first appear in the password.
func RepetitionScore(password string) (int, []string) {
	counts := make(map[rune]int)
	var order []rune
	for _, r := range password {
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	}

	score := 0
	var feedback []string
	for _, r := range order {
		n := counts[r]
		if n > maxRepeats {
			score -= n - maxRepeats
			feedback = append(feedback, fmt.Sprintf("Avoid repeating the character '%c' %d times.", r, n))
		}
	}

	return score, feedback
}
