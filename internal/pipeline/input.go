package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single line of a password file.
const maxLineSize = 1024 * 1024

// Candidate is a password waiting to be evaluated.
type Candidate struct {
	// Source describes where the password came from. It is copied into
	// the report entry.
	Source string

	// Password is the password itself.
	Password string
}

// ArgumentCandidates wraps command-line arguments as candidates.
// Empty arguments are kept and will be reported as empty passwords.
func ArgumentCandidates(args []string) []Candidate {
	candidates := make([]Candidate, len(args))
	for i, arg := range args {
		candidates[i] = Candidate{
			Source:   fmt.Sprintf("argument %d", i+1),
			Password: arg,
		}
	}
	return candidates
}

// ReadCandidates reads one password per line. Line endings ("\n" or
// "\r\n") are stripped and empty lines are skipped. Leading and trailing
// spaces are part of the password. Sources are 1-based line numbers.
func ReadCandidates(r io.Reader) ([]Candidate, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var candidates []Candidate
	line := 0
	for scanner.Scan() {
		line++
		password := strings.TrimSuffix(scanner.Text(), "\r")
		if password == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			Source:   fmt.Sprintf("line %d", line),
			Password: password,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read passwords at line %d: %w", line+1, err)
	}
	return candidates, nil
}
