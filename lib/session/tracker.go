package session

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"igcc/lib/utils"
)

// Tracker counts how many bytes of the program's stdout and stderr were
// already shown to the user. The binary reruns from scratch on every cycle,
// so under deterministic programs each capture extends the previous one and
// the unseen part is a suffix.
type Tracker struct {
	stdoutShown int
	stderrShown int

	lastStdout []byte
	lastStderr []byte
}

// StreamDelta is the outcome of diffing one captured stream against what
// was already shown. Diverged means the fresh capture no longer agrees with
// the previously shown bytes (nondeterministic program output); the suffix
// rule still applies, it just may not be meaningful.
type StreamDelta struct {
	New      []byte
	Diverged bool
}

func (t *Tracker) TakeNew(stdout, stderr []byte) (out, errOut StreamDelta) {
	out = takeNew(stdout, &t.stdoutShown, &t.lastStdout)
	errOut = takeNew(stderr, &t.stderrShown, &t.lastStderr)
	return out, errOut
}

func takeNew(full []byte, shown *int, last *[]byte) StreamDelta {
	var delta StreamDelta

	dmp := diffmatchpatch.New()
	common := dmp.DiffCommonPrefix(string(*last), string(full))
	delta.Diverged = common < utils.Min(*shown, len(*last))

	if len(full) > *shown {
		delta.New = full[*shown:]
		*shown = len(full)
	}

	*last = full
	return delta
}

// Rollback removes the byte counts attributed to an undone line, so that
// re-running after a redo shows that part of the output again.
func (t *Tracker) Rollback(outputBytes, errorBytes int) {
	t.stdoutShown -= outputBytes
	t.stderrShown -= errorBytes
}

func (t *Tracker) StdoutShown() int {
	return t.stdoutShown
}

func (t *Tracker) StderrShown() int {
	return t.stderrShown
}
