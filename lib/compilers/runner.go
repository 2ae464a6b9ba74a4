package compilers

import (
	"bytes"
	"os/exec"

	"github.com/pkg/errors"
)

// Runner executes the compiled binary from scratch and captures its full
// stdout and stderr streams. A non-zero exit is not an error: the captured
// streams still get diffed and shown.
type Runner struct {
}

func (r *Runner) Run(exe string) (stdout, stderr []byte, err error) {
	cmd := exec.Command(exe)

	var out, errs bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errs

	err = cmd.Run()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, nil, errors.Wrapf(err, "running '%v'", exe)
	}

	return out.Bytes(), errs.Bytes(), nil
}
