package core

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/EmundoT/solbench/internal/types"
)

// ReportWriter writes report-mode entries: "<filename>:<True|False>", the raw
// analyzer output, then ReportSeparator.
type ReportWriter struct {
	w      *bufio.Writer
	closer io.Closer
	count  int
}

// NewReportWriter writes entries to w. Close flushes but only closes w when
// it is an io.Closer.
func NewReportWriter(w io.Writer) *ReportWriter {
	rw := &ReportWriter{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		rw.closer = c
	}
	return rw
}

// CreateReportFile truncates or creates path and returns a writer over it.
func CreateReportFile(path string) (*ReportWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create report %s: %w", path, err)
	}
	return NewReportWriter(f), nil
}

// Write appends one entry.
func (r *ReportWriter) Write(filename string, hasVulnerability bool, output string) error {
	if _, err := fmt.Fprintf(r.w, "%s:%s\n", filename, ReportBool(hasVulnerability)); err != nil {
		return err
	}
	if _, err := r.w.WriteString(output); err != nil {
		return err
	}
	if _, err := r.w.WriteString(ReportSeparator + "\n"); err != nil {
		return err
	}
	r.count++
	return nil
}

// WriteResult appends the entry for an analysis result.
func (r *ReportWriter) WriteResult(result types.AnalysisResult, hasVulnerability bool) error {
	return r.Write(result.Target.Name, hasVulnerability, result.Stdout)
}

// Count returns the number of entries written.
func (r *ReportWriter) Count() int {
	return r.count
}

// Close flushes buffered entries and closes the underlying file.
func (r *ReportWriter) Close() error {
	err := r.w.Flush()
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// ReportBool renders a boolean the way the report format spells it.
func ReportBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
