// Package report renders a model.Report.
//
// Writers:
//   - SimpleWriter: plain text for the terminal
//   - JSONWriter, FullJSONWriter: JSON for scripts and CI
//   - MarkdownWriter: GitHub Flavored Markdown with tables, alerts and a
//     mermaid pie chart
//
// Writers implement the Writer interface and can be combined with
// MultiWriter. No writer ever receives or prints a password; entries are
// identified by their Source only.
package report
