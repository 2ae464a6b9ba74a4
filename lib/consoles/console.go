package consoles

import (
	"io"
)

// Console is where all user-facing text goes. The banner helpers append a
// newline; Printf does not.
type Console interface {
	Printf(format string, a ...any)

	// Noticef prints a neutral one-line notice (undo/redo echoes, toggles).
	Noticef(format string, a ...any)
	// Errorf prints an error banner.
	Errorf(format string, a ...any)
	// Successf prints an all-clear banner.
	Successf(format string, a ...any)
	// Commandf prints one help-listing entry.
	Commandf(name, desc string)

	Clear()
	Writer() io.Writer
}
