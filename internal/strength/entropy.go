package strength

import (
	"math"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

// Entropy classification bounds in bits per character.
const (
	moderateEntropy = 3.0
	goodEntropy     = 4.0
)

// ShannonEntropy returns -sum(p*log2(p)) over the character frequencies of
// the password. It measures how evenly characters are used, not how the
// password was generated. An empty password has entropy 0.
func ShannonEntropy(password string) float64 {
	if password == "" {
		return 0
	}

	// Sum in first-occurrence order so the float result is reproducible.
	frequency := make(map[rune]int)
	var order []rune
	total := 0
	for _, r := range password {
		if frequency[r] == 0 {
			order = append(order, r)
		}
		frequency[r]++
		total++
	}

	entropy := 0.0
	for _, r := range order {
		p := float64(frequency[r]) / float64(total)
		entropy -= p * math.Log2(p)
	}

	return entropy
}

// EntropyScore returns the Shannon entropy as the score delta together
// with one classification message. The delta is added to the total score
// as is, fraction included.
func EntropyScore(password string) (float64, []string) {
	entropy := ShannonEntropy(password)

	switch {
	case entropy < moderateEntropy:
		return entropy, []string{"Password has low entropy.  Consider using a wider variety of characters."}
	case entropy < goodEntropy:
		return entropy, []string{"Password has moderate entropy.  Adding more randomness would improve strength."}
	default:
		return entropy, []string{"Password has good entropy."}
	}
}

// GuessBits estimates how many bits a brute-force attacker would need,
// based on the character pool size and length. It is reported alongside
// the score and does not affect it.
func GuessBits(password string) float64 {
	if password == "" {
		return 0
	}
	return passwordvalidator.GetEntropy(password)
}
