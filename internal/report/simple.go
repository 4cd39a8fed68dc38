package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/pwstrength/internal/model"
)

// SimpleWriter prints the strength label and feedback of each entry as
// plain text:
//
//	Password Strength: Weak
//
//	Feedback:
//	- Good length!
//	- ...
//
// When the report holds more than one entry, each block is headed by
// "[i/n] <source>" and a label summary follows the last block.
type SimpleWriter struct {
	baseWriter

	// showScore adds the numeric score, estimates and breakdown.
	showScore bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithScore adds the numeric score and the per-analyzer breakdown.
func WithScore(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showScore = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	multiple := len(report.Entries) > 1
	for _, entry := range report.Entries {
		if multiple {
			fmt.Fprintf(&sb, "\n[%d/%d] %s", entry.Index+1, len(report.Entries), entry.Source)
		}
		w.writeEntry(&sb, entry.Result)
	}

	if multiple {
		w.writeSummary(&sb, report)
	}

	return io.WriteString(w.output, sb.String())
}

// writeEntry writes the label, optional score and feedback of one result.
func (w *SimpleWriter) writeEntry(sb *strings.Builder, result *model.Result) {
	fmt.Fprintf(sb, "\nPassword Strength: %s\n", result.Label)

	if w.showScore && !result.IsEmpty() {
		w.writeScore(sb, result)
	}

	sb.WriteString("\nFeedback:\n")
	for _, msg := range result.Feedback {
		fmt.Fprintf(sb, "- %s\n", msg)
	}
}

// writeScore writes the score and the analyzer breakdown.
func (w *SimpleWriter) writeScore(sb *strings.Builder, result *model.Result) {
	fmt.Fprintf(sb, "Score: %.2f\n", result.Score)
	fmt.Fprintf(sb, "Length: %d, Entropy: %.2f bits/char, Guess estimate: %.1f bits\n",
		result.Length, result.Entropy, result.GuessBits)

	sb.WriteString("\nBreakdown:\n")
	for _, c := range result.Breakdown {
		fmt.Fprintf(sb, "  %-20s %+6.2f\n", c.Analyzer, c.Delta)
	}
}

// writeSummary writes the number of entries per label, strongest last.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.Report) {
	fmt.Fprintf(sb, "\nSummary (%d passwords):\n", report.Summary.Total)

	labels := append([]model.Label{model.LabelEmpty}, model.Labels()...)
	for _, label := range labels {
		count := report.Summary.Count(label)
		if count == 0 {
			continue
		}
		fmt.Fprintf(sb, "  %-12s %d\n", label.String()+":", count)
	}
}
