package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/pwstrength/internal/model"
)

// labelIcons mark each label in tables and headings.
var labelIcons = map[model.Label]string{
	model.LabelEmpty:      "⚫",
	model.LabelVeryWeak:   "🔴",
	model.LabelWeak:       "🟠",
	model.LabelModerate:   "🟡",
	model.LabelStrong:     "🔵",
	model.LabelVeryStrong: "🟢",
	model.LabelExcellent:  "🟣",
}

// MarkdownWriter outputs reports as GitHub Flavored Markdown, built with
// nao1215/markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeEntries(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Password Strength Report")
	md.PlainText("")

	weakest := "-"
	if label, ok := report.Weakest(); ok {
		weakest = labelCell(label)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Checked At", report.DateChecked.Format("2006-01-02 15:04:05 MST")},
			{"Passwords", strconv.Itoa(report.Summary.Total)},
			{"Weakest", weakest},
		},
	})
	md.PlainText("")
}

// writeSummary writes the label table, pie chart and an overall alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	md.H2("Strength Summary")
	md.PlainText("")

	labels := append([]model.Label{model.LabelEmpty}, model.Labels()...)
	rows := make([][]string, 0, len(labels)+1)
	for _, label := range labels {
		rows = append(rows, []string{labelCell(label), strconv.Itoa(report.Summary.Count(label))})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(report.Summary.Total) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Strength", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.Summary.Total > 0 {
		w.writePieChart(md, report, labels)
	}

	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart of the label distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.Report, labels []model.Label) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Strength Distribution"),
		piechart.WithShowData(true),
	)

	for _, label := range labels {
		if count := report.Summary.Count(label); count > 0 {
			chart.LabelAndIntValue(label.String(), uint64(count)) //nolint:gosec // count is never negative
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes one alert chosen by the weakest label in the report.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.Report) {
	weakest, ok := report.Weakest()
	if !ok {
		md.Note("No passwords were checked.")
		md.PlainText("")
		return
	}

	switch weakest {
	case model.LabelEmpty, model.LabelVeryWeak:
		md.Cautionf(
			"%d password(s) are empty or very weak and should be replaced immediately.",
			report.Summary.Empty+report.Summary.VeryWeak,
		)
	case model.LabelWeak:
		md.Warningf("%d password(s) are weak. Follow the feedback below to strengthen them.", report.Summary.Weak)
	case model.LabelModerate:
		md.Importantf("%d password(s) are only moderate. Longer passwords with more variety score higher.",
			report.Summary.Moderate)
	case model.LabelExcellent:
		md.Tip("All passwords are excellent.")
	default:
		md.Note("All passwords are strong or better.")
	}
	md.PlainText("")
}

// writeEntries writes one section per entry with its feedback and breakdown.
func (w *MarkdownWriter) writeEntries(md *markdown.Markdown, report *model.Report) {
	md.H2("Results")
	md.PlainText("")

	if len(report.Entries) == 0 {
		md.PlainText("No results.")
		md.PlainText("")
		return
	}

	caser := cases.Title(language.English)
	for _, entry := range report.Entries {
		result := entry.Result

		md.H3(fmt.Sprintf("%d. %s", entry.Index+1, entry.Source))
		md.PlainText("")

		md.Table(markdown.TableSet{
			Header: []string{"Property", "Value"},
			Rows: [][]string{
				{"Strength", labelCell(result.Label)},
				{"Score", strconv.FormatFloat(result.Score, 'f', 2, 64)},
				{"Length", strconv.Itoa(result.Length)},
				{"Entropy", strconv.FormatFloat(result.Entropy, 'f', 2, 64) + " bits/char"},
				{"Guess Estimate", strconv.FormatFloat(result.GuessBits, 'f', 1, 64) + " bits"},
			},
		})
		md.PlainText("")

		md.PlainText("**Feedback**")
		md.PlainText("")
		md.BulletList(result.Feedback...)
		md.PlainText("")

		if len(result.Breakdown) > 0 {
			w.writeBreakdown(md, caser, result.Breakdown)
		}
	}
}

// writeBreakdown writes the per-analyzer score table.
func (w *MarkdownWriter) writeBreakdown(md *markdown.Markdown, caser cases.Caser, breakdown []model.Contribution) {
	rows := make([][]string, len(breakdown))
	for i, c := range breakdown {
		rows[i] = []string{
			caser.String(strings.ReplaceAll(c.Analyzer, "_", " ")),
			strconv.FormatFloat(c.Delta, 'f', 2, 64),
			strconv.Itoa(len(c.Feedback)),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Analyzer", "Delta", "Messages"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by [pwstrength](https://github.com/nao1215/pwstrength)*")
}

// labelCell renders a label with its icon.
func labelCell(label model.Label) string {
	return labelIcons[label] + " " + label.String()
}
