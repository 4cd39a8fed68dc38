package model

import (
	"fmt"
	"strings"
)

// Label is the discrete strength classification of a password.
//
// The six non-empty labels are ordered from weakest to strongest, so labels
// can be compared with the usual integer operators. LabelEmpty sits below
// all of them and is only produced for an empty password.
type Label int

const (
	// LabelEmpty is returned for an empty password. No analyzer runs.
	LabelEmpty Label = iota

	// LabelVeryWeak covers a total score of 0 or less.
	LabelVeryWeak

	// LabelWeak covers a total score in (0, 3].
	LabelWeak

	// LabelModerate covers a total score in (3, 6].
	LabelModerate

	// LabelStrong covers a total score in (6, 9].
	LabelStrong

	// LabelVeryStrong covers a total score in (9, 12].
	LabelVeryStrong

	// LabelExcellent covers a total score above 12.
	LabelExcellent
)

// labelNames maps each label to its display name.
var labelNames = map[Label]string{
	LabelEmpty:      "Empty",
	LabelVeryWeak:   "Very Weak",
	LabelWeak:       "Weak",
	LabelModerate:   "Moderate",
	LabelStrong:     "Strong",
	LabelVeryStrong: "Very Strong",
	LabelExcellent:  "Excellent",
}

// String returns the display name of the label.
func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether l is one of the defined labels, including LabelEmpty.
func (l Label) Valid() bool {
	_, ok := labelNames[l]
	return ok
}

// AtLeast reports whether l is as strong as or stronger than minimum.
func (l Label) AtLeast(minimum Label) bool {
	return l >= minimum
}

// Labels returns the six strength labels from weakest to strongest.
// LabelEmpty is not included.
func Labels() []Label {
	return []Label{
		LabelVeryWeak,
		LabelWeak,
		LabelModerate,
		LabelStrong,
		LabelVeryStrong,
		LabelExcellent,
	}
}

// ParseLabel converts a display name back into a Label.
// Matching ignores case, and spaces, hyphens and underscores are treated
// alike, so "very strong", "Very-Strong" and "very_strong" all parse.
func ParseLabel(s string) (Label, error) {
	key := normalizeLabelName(s)
	for label, name := range labelNames {
		if normalizeLabelName(name) == key {
			return label, nil
		}
	}
	return LabelEmpty, fmt.Errorf("unknown strength label %q", s)
}

// normalizeLabelName folds case and separators for ParseLabel.
func normalizeLabelName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// MarshalText implements encoding.TextMarshaler.
// JSON and YAML output carry the display name instead of the integer.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
