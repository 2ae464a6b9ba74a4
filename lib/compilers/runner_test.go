package compilers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeBinary(t *testing.T, body string) string {
	t.Helper()

	exe := filepath.Join(t.TempDir(), "fakebin")
	err := os.WriteFile(exe, []byte("#!/bin/sh\n"+body), 0o700)
	assert.Nil(t, err)

	return exe
}

func TestRunnerCapturesBothStreams(t *testing.T) {
	t.Parallel()

	exe := fakeBinary(t, "echo out\necho err >&2\n")

	stdout, stderr, err := (&Runner{}).Run(exe)
	assert.Nil(t, err)
	assert.Equal(t, "out\n", string(stdout))
	assert.Equal(t, "err\n", string(stderr))
}

func TestRunnerNonZeroExitIsNotAnError(t *testing.T) {
	t.Parallel()

	exe := fakeBinary(t, "echo partial\nexit 3\n")

	stdout, _, err := (&Runner{}).Run(exe)
	assert.Nil(t, err)
	assert.Equal(t, "partial\n", string(stdout))
}

func TestRunnerMissingBinaryIsAnError(t *testing.T) {
	t.Parallel()

	_, _, err := (&Runner{}).Run(filepath.Join(t.TempDir(), "missing"))
	assert.NotNil(t, err)
}
