package strength

import (
	_ "embed"
	"strings"
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

// commonPasswords is the lowercased denylist parsed from the embedded file.
// It is built once at init and never modified.
var commonPasswords = parseDenylist(commonPasswordsRaw)

// commonPasswordPenalty is applied on a denylist match.
const commonPasswordPenalty = -3

// parseDenylist turns one-entry-per-line text into a lookup set.
// Blank lines and lines starting with '#' are ignored.
func parseDenylist(raw string) map[string]struct{} {
	lines := strings.Split(raw, "\n")
	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		entry := strings.TrimSpace(line)
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		set[strings.ToLower(entry)] = struct{}{}
	}
	return set
}

// IsCommonPassword reports whether the whole password, lowercased, is on
// the denylist. Substrings do not match.
func IsCommonPassword(password string) bool {
	_, found := commonPasswords[strings.ToLower(password)]
	return found
}

// CommonPasswordScore returns -3 and a warning for a denylisted password,
// and 0 with no feedback otherwise.
func CommonPasswordScore(password string) (int, []string) {
	if !IsCommonPassword(password) {
		return 0, nil
	}
	return commonPasswordPenalty, []string{"Avoid common and easily guessable passwords."}
}
