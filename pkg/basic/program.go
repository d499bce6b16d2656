package basic

import (
	"iter"
	"sort"

	"github.com/antibyte/retrobasic/pkg/logger"
)

// Line is one stored program line: a unique number and its statement text.
type Line struct {
	Num  int
	Text string
}

// Program is the ordered store of numbered lines. It is always kept sorted
// ascending by line number and is bounded by a fixed maximum line count.
type Program struct {
	lines    []Line
	maxLines int
}

// NewProgram creates an empty program store with the given capacity bound.
func NewProgram(maxLines int) *Program {
	if maxLines <= 0 {
		maxLines = DefaultMaxProgramLines
	}
	return &Program{maxLines: maxLines}
}

// InsertOrReplace stores text under the given line number, replacing any
// existing line with that number. Empty text deletes the line instead.
// Inserting past the capacity bound drops the line silently.
func (p *Program) InsertOrReplace(num int, text string) {
	if text == "" {
		p.Delete(num)
		return
	}
	if i := p.FindIndex(num); i >= 0 {
		p.lines[i].Text = text
		return
	}
	if len(p.lines) >= p.maxLines {
		logger.Debug(logger.AreaProgram, "program full (%d lines), dropping line %d", p.maxLines, num)
		return
	}
	at := sort.Search(len(p.lines), func(i int) bool { return p.lines[i].Num > num })
	p.lines = append(p.lines, Line{})
	copy(p.lines[at+1:], p.lines[at:])
	p.lines[at] = Line{Num: num, Text: text}
}

// Delete removes the line with the given number. Absent numbers are a no-op.
func (p *Program) Delete(num int) {
	if i := p.FindIndex(num); i >= 0 {
		p.lines = append(p.lines[:i], p.lines[i+1:]...)
	}
}

// FindIndex returns the index of the line with the given number, or -1.
// Line numbers are unique, so the match is unambiguous.
func (p *Program) FindIndex(num int) int {
	for i := range p.lines {
		if p.lines[i].Num == num {
			return i
		}
	}
	return -1
}

// Len returns the number of stored lines.
func (p *Program) Len() int {
	return len(p.lines)
}

// Line returns the line at the given index in ascending number order.
func (p *Program) Line(i int) Line {
	return p.lines[i]
}

// All iterates over (number, text) pairs in ascending line number order.
func (p *Program) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for _, ln := range p.lines {
			if !yield(ln.Num, ln.Text) {
				return
			}
		}
	}
}

// Clear removes all lines.
func (p *Program) Clear() {
	p.lines = p.lines[:0]
}
