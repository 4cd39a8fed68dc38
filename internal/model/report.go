package model

import "time"

// Entry is one evaluated password inside a Report.
type Entry struct {
	// Index is the zero-based position of the password in the input.
	Index int `json:"index"`

	// Source describes where the password came from, e.g. "argument 2",
	// "line 14" or "prompt". It never contains the password.
	Source string `json:"source"`

	// Result is the evaluation result.
	Result *Result `json:"result"`
}

// Summary counts report entries by label.
type Summary struct {
	// Total is the number of entries.
	Total int `json:"total"`

	// Empty is the number of empty passwords.
	Empty int `json:"empty"`

	// VeryWeak is the number of Very Weak passwords.
	VeryWeak int `json:"very_weak"`

	// Weak is the number of Weak passwords.
	Weak int `json:"weak"`

	// Moderate is the number of Moderate passwords.
	Moderate int `json:"moderate"`

	// Strong is the number of Strong passwords.
	Strong int `json:"strong"`

	// VeryStrong is the number of Very Strong passwords.
	VeryStrong int `json:"very_strong"`

	// Excellent is the number of Excellent passwords.
	Excellent int `json:"excellent"`
}

// Add counts one entry with the given label.
func (s *Summary) Add(label Label) {
	s.Total++
	switch label {
	case LabelEmpty:
		s.Empty++
	case LabelVeryWeak:
		s.VeryWeak++
	case LabelWeak:
		s.Weak++
	case LabelModerate:
		s.Moderate++
	case LabelStrong:
		s.Strong++
	case LabelVeryStrong:
		s.VeryStrong++
	case LabelExcellent:
		s.Excellent++
	}
}

// Count returns the number of entries with the given label.
func (s *Summary) Count(label Label) int {
	switch label {
	case LabelEmpty:
		return s.Empty
	case LabelVeryWeak:
		return s.VeryWeak
	case LabelWeak:
		return s.Weak
	case LabelModerate:
		return s.Moderate
	case LabelStrong:
		return s.Strong
	case LabelVeryStrong:
		return s.VeryStrong
	case LabelExcellent:
		return s.Excellent
	default:
		return 0
	}
}

// Report collects the results of one pwstrength run.
type Report struct {
	// DateChecked is when the run started.
	DateChecked time.Time `json:"date_checked"`

	// Entries holds the results in input order.
	Entries []Entry `json:"entries"`

	// Summary counts entries by label.
	Summary Summary `json:"summary"`
}

// NewReport creates an empty report stamped with the current time.
func NewReport() *Report {
	return &Report{
		DateChecked: time.Now(),
		Entries:     make([]Entry, 0),
	}
}

// AddEntry appends an evaluated password and updates the summary.
// The entry index is assigned from the current entry count.
func (r *Report) AddEntry(source string, result *Result) {
	r.Entries = append(r.Entries, Entry{
		Index:  len(r.Entries),
		Source: source,
		Result: result,
	})
	r.Summary.Add(result.Label)
}

// Weakest returns the lowest label in the report.
// The boolean is false if the report has no entries.
func (r *Report) Weakest() (Label, bool) {
	if len(r.Entries) == 0 {
		return LabelEmpty, false
	}
	weakest := r.Entries[0].Result.Label
	for _, e := range r.Entries[1:] {
		if e.Result.Label < weakest {
			weakest = e.Result.Label
		}
	}
	return weakest, true
}

// BelowMinimum returns the entries whose label is weaker than minimum.
func (r *Report) BelowMinimum(minimum Label) []Entry {
	var below []Entry
	for _, e := range r.Entries {
		if !e.Result.Label.AtLeast(minimum) {
			below = append(below, e)
		}
	}
	return below
}
