package session

import (
	"github.com/samber/lo"

	"igcc/lib/classify"
)

// SourceLine is one submitted physical line. The role is computed once at
// classification time. OutputBytes and ErrorBytes record how many bytes of
// program output were attributed to this line's most recent execution, so
// an undo can roll the shown counters back precisely.
type SourceLine struct {
	Text        string
	Role        classify.Role
	OutputBytes int
	ErrorBytes  int
}

// NewLines classifies every physical line of a submitted block.
func NewLines(texts []string) []SourceLine {
	return lo.Map(texts, func(text string, _ int) SourceLine {
		return SourceLine{Text: text, Role: classify.Classify(text)}
	})
}

// History is a linear undo log: an arena of submitted lines plus a cursor.
// Entries below the cursor are active; entries at or above it exist only
// because of an undo and are discarded by the next append.
type History struct {
	entries []SourceLine
	cursor  int
}

func (h *History) Append(lines []SourceLine) {
	h.entries = append(h.entries[:h.cursor], lines...)
	h.cursor = len(h.entries)
}

func (h *History) Undo() (SourceLine, bool) {
	if h.cursor == 0 {
		return SourceLine{}, false
	}

	h.cursor--
	return h.entries[h.cursor], true
}

func (h *History) Redo() (SourceLine, bool) {
	if h.cursor == len(h.entries) {
		return SourceLine{}, false
	}

	line := h.entries[h.cursor]
	h.cursor++
	return line, true
}

// Visible returns the active entries, i.e. those that participate in the
// assembled program.
func (h *History) Visible() []SourceLine {
	return h.entries[:h.cursor]
}

func (h *History) VisibleLen() int {
	return h.cursor
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) attributeLast(outputBytes, errorBytes int) {
	if h.cursor == 0 {
		return
	}

	h.entries[h.cursor-1].OutputBytes = outputBytes
	h.entries[h.cursor-1].ErrorBytes = errorBytes
}
