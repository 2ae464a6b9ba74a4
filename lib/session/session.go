package session

// Session is the whole mutable state of one interactive run: the submitted
// lines, the shown-output counters and the last compile diagnostics. It is
// only ever touched from the single REPL goroutine.
type Session struct {
	History History
	Tracker Tracker

	compileError string
}

func New() *Session {
	return &Session{}
}

func (s *Session) Append(lines []SourceLine) {
	s.History.Append(lines)
}

// Undo retracts the last active line and rolls its attributed output bytes
// out of the counters, so the counters always equal the sum over the
// visible prefix.
func (s *Session) Undo() (SourceLine, bool) {
	line, ok := s.History.Undo()
	if ok {
		s.Tracker.Rollback(line.OutputBytes, line.ErrorBytes)
	}
	return line, ok
}

// Redo reactivates the next undone line. It does not touch the counters:
// the caller is expected to recompile and rerun, which shows the line's
// output again and re-attributes it.
func (s *Session) Redo() (SourceLine, bool) {
	return s.History.Redo()
}

// AttributeOutput binds the byte counts just shown to the most recently
// activated line, replacing whatever was attributed to it before.
func (s *Session) AttributeOutput(outputBytes, errorBytes int) {
	s.History.attributeLast(outputBytes, errorBytes)
}

func (s *Session) SetCompileError(diagnostics string) {
	s.compileError = diagnostics
}

func (s *Session) CompileError() string {
	return s.compileError
}
