package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Mansi358721/netflix-titles/internal/analytics"
	"github.com/Mansi358721/netflix-titles/pkg/contracts/domain"
)

// Printer writes the human-readable run summary. The first write error is
// kept and every later call becomes a no-op.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = io.Discard
	}
	return &Printer{w: w}
}

// Err returns the first write error, if any
func (p *Printer) Err() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Printf writes a formatted line
func (p *Printer) Printf(format string, args ...interface{}) {
	if p == nil || p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// Section writes a blank line and a "--- title ---" header
func (p *Printer) Section(title string) {
	p.Printf("\n--- %s ---", title)
}

// ColumnCounts writes a per-column table under title, one column per line
// with the counts right aligned.
func (p *Printer) ColumnCounts(title string, counts []domain.ColumnCount) {
	rows := make([][2]string, len(counts))
	for i, c := range counts {
		rows[i] = [2]string{c.Column, strconv.Itoa(c.Count)}
	}
	p.Printf("%s", title)
	p.table(rows)
}

// Counts writes a ranked frequency table headed by name
func (p *Printer) Counts(name string, counts analytics.Counts) {
	rows := make([][2]string, len(counts))
	for i, c := range counts {
		rows[i] = [2]string{c.Value, strconv.Itoa(c.Count)}
	}
	p.Printf("%s", name)
	p.table(rows)
}

// YearCounts writes a year-ordered count table headed by name
func (p *Printer) YearCounts(name string, counts []analytics.YearCount) {
	rows := make([][2]string, len(counts))
	for i, c := range counts {
		rows[i] = [2]string{strconv.Itoa(c.Year), strconv.Itoa(c.Count)}
	}
	p.Printf("%s", name)
	p.table(rows)
}

func (p *Printer) table(rows [][2]string) {
	labelWidth, valueWidth := 0, 0
	for _, r := range rows {
		labelWidth = max(labelWidth, len(r[0]))
		valueWidth = max(valueWidth, len(r[1]))
	}
	for _, r := range rows {
		p.Printf("%-*s    %*s", labelWidth, r[0], valueWidth, r[1])
	}
}
