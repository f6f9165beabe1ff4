package harness

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

// ReportHeader is the first line of a text report.
const ReportHeader = "N M DATA_GENERATION_TIME REGRESSION_TIME"

// TextReporter writes samples as space-separated lines.
type TextReporter struct {
	w           io.Writer
	wroteHeader bool
}

// NewTextReporter creates a reporter that writes to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// WriteHeader writes the header line once. Later calls are no-ops.
func (r *TextReporter) WriteHeader() error {
	if r.wroteHeader {
		return nil
	}
	r.wroteHeader = true
	_, err := fmt.Fprintln(r.w, ReportHeader)
	return err
}

// Emit writes one sample line, preceded by the header on first use.
// It has the signature Harness.Run expects for its emit callback.
func (r *TextReporter) Emit(s Sample) error {
	if err := r.WriteHeader(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.w, FormatSample(s))
	return err
}

// FormatSample renders s as "n m generation_seconds solve_seconds".
func FormatSample(s Sample) string {
	return fmt.Sprintf("%d %d %s %s", s.Rows, s.Cols, formatSeconds(s.Generation), formatSeconds(s.Solve))
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
