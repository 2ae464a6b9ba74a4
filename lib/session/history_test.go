package session

import (
	"testing"

	"github.com/bloomberg/go-testgroup"

	"igcc/lib/classify"
)

func TestHistory(t *testing.T) {
	testgroup.RunInParallel(t, &HistoryTests{})
}

type HistoryTests struct {
}

func (g *HistoryTests) AppendAdvancesCursor(t *testgroup.T) {
	var h History

	h.Append(NewLines([]string{`int x = 5;`, `cout << x;`}))

	t.Equal(2, h.VisibleLen())
	t.Equal(2, h.Len())
	t.Equal(`int x = 5;`, h.Visible()[0].Text)
	t.Equal(classify.Statement, h.Visible()[0].Role)
}

func (g *HistoryTests) UndoReturnsEntriesInReverse(t *testgroup.T) {
	var h History
	h.Append(NewLines([]string{`a;`, `b;`}))

	line, ok := h.Undo()
	t.True(ok)
	t.Equal(`b;`, line.Text)

	line, ok = h.Undo()
	t.True(ok)
	t.Equal(`a;`, line.Text)

	_, ok = h.Undo()
	t.False(ok)
	t.Equal(0, h.VisibleLen())
	t.Equal(2, h.Len())
}

func (g *HistoryTests) RedoRestoresVisiblePrefix(t *testgroup.T) {
	var h History
	h.Append(NewLines([]string{`a;`, `b;`}))

	_, _ = h.Undo()
	line, ok := h.Redo()

	t.True(ok)
	t.Equal(`b;`, line.Text)
	t.Equal(2, h.VisibleLen())

	_, ok = h.Redo()
	t.False(ok)
}

func (g *HistoryTests) AppendAfterUndoDiscardsRedoEntries(t *testgroup.T) {
	var h History
	h.Append(NewLines([]string{`a;`}))
	h.Append(NewLines([]string{`b;`}))

	_, _ = h.Undo()
	h.Append(NewLines([]string{`c;`}))

	t.Equal(2, h.Len())
	t.Equal(`c;`, h.Visible()[1].Text)

	_, ok := h.Redo()
	t.False(ok)
}

func (g *HistoryTests) UndoRollsBackAttributedBytes(t *testgroup.T) {
	s := New()
	s.Append(NewLines([]string{`cout << 5 << "\n";`}))
	s.Tracker.TakeNew([]byte("5\n"), nil)
	s.AttributeOutput(2, 0)

	line, ok := s.Undo()

	t.True(ok)
	t.Equal(2, line.OutputBytes)
	t.Equal(0, s.Tracker.StdoutShown())
}

func (g *HistoryTests) AppendThenUndoTimesRestoresCounters(t *testgroup.T) {
	s := New()
	s.Append(NewLines([]string{`a;`}))
	s.Tracker.TakeNew([]byte("one\n"), nil)
	s.AttributeOutput(4, 0)

	before := s.Tracker.StdoutShown()
	beforeLen := s.History.VisibleLen()

	s.Append(NewLines([]string{`b;`, `c;`}))
	s.Tracker.TakeNew([]byte("one\ntwo\n"), nil)
	s.AttributeOutput(4, 0)

	_, _ = s.Undo()
	_, _ = s.Undo()

	t.Equal(beforeLen, s.History.VisibleLen())
	t.Equal(before, s.Tracker.StdoutShown())
}
