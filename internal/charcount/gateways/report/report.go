// Package report renders character-count rows as a CSV-style table.
//
// Fields are joined with commas without quoting or escaping, so a filename
// containing a comma is written verbatim.
package report

import (
	"fmt"
	"io"

	"github.com/npo-hokage/charcount/internal/charcount/domain"
)

// Header is the first line of every report.
const Header = "File Name,No Space,Body(w/Space),Total(Raw)"

// Footer lines explain the columns and close every report.
var Footer = []string{
	"No Space: Body chars without whitespace",
	"Body(w/Space): Body chars with whitespace",
	"Total(Raw): Total file chars",
}

// Writer writes report lines to an underlying io.Writer as they are produced.
type Writer struct {
	out  io.Writer
	rows int
}

// NewWriter returns a Writer targeting out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteHeader writes the column header line.
func (w *Writer) WriteHeader() error {
	return w.line(Header)
}

// WriteRow writes one file's counts as filename,no space,body,total.
func (w *Writer) WriteRow(s domain.FileStats) error {
	if _, err := fmt.Fprintf(w.out, "%s,%d,%d,%d\n", s.Filename, s.BodyNoSpace, s.Body, s.Total); err != nil {
		return fmt.Errorf("failed to write row for %s: %w", s.Filename, err)
	}
	w.rows++
	return nil
}

// WriteFooter writes the explanatory lines that end the report.
func (w *Writer) WriteFooter() error {
	for _, l := range Footer {
		if err := w.line(l); err != nil {
			return err
		}
	}
	return nil
}

// Write renders a complete report for rows.
func (w *Writer) Write(rows []domain.FileStats) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.WriteRow(r); err != nil {
			return err
		}
	}
	return w.WriteFooter()
}

// Rows returns the number of rows written so far.
func (w *Writer) Rows() int { return w.rows }

func (w *Writer) line(s string) error {
	if _, err := io.WriteString(w.out, s+"\n"); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
