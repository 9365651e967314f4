// Package report renders friendship rows as console lines.
package report

import (
	"fmt"
	"io"

	"github.com/srahul3/friends-graph/internal/model"
)

type Printer struct {
	w     io.Writer
	lines int
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes "<Person> is friends with <Friend>" followed by a newline.
func (p *Printer) Print(f model.Friendship) error {
	if _, err := fmt.Fprintln(p.w, f.String()); err != nil {
		return fmt.Errorf("failed to write report line: %w", err)
	}
	p.lines++
	return nil
}

// Lines returns the number of lines written so far.
func (p *Printer) Lines() int {
	return p.lines
}
