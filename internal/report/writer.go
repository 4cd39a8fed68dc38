package report

import (
	"io"

	"github.com/nao1215/pwstrength/internal/model"
)

// Writer writes a report in some output format.
type Writer interface {
	// Write outputs the report and returns the number of bytes written.
	Write(report *model.Report) (int, error)
}

// MultiWriter writes the same report to several Writers, e.g. the
// terminal and a file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to every Writer in order and stops at the
// first error. It returns the total bytes written.
func (m *MultiWriter) Write(report *model.Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter holds the destination shared by all writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
