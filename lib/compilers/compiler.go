package compilers

import (
	"bytes"
	_ "embed"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/teris-io/shortid"

	"igcc/lib/config"
)

//go:embed boilerplate.h
var boilerplateHeader []byte

const noDiagnostics = "Unknown compile error - compiler did not write any output."

// Result of one compiler invocation. Diagnostics is empty on success and
// never empty on failure.
type Result struct {
	Ok          bool
	Diagnostics string
}

// Gcc invokes the configured compiler command with the assembled program on
// stdin. It owns the temp executable path and the temp dir holding the
// boilerplate header; Close removes both.
type Gcc struct {
	args       []string
	exePath    string
	includeDir string
}

func NewGcc(cfg *config.Config) (*Gcc, error) {
	fields := strings.Fields(cfg.CompilerCommand)
	if len(fields) == 0 {
		return nil, errors.New("empty compiler command")
	}

	id, err := shortid.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "generating executable name")
	}

	includeDir, err := os.MkdirTemp("", "igcc-include-")
	if err != nil {
		return nil, errors.Wrap(err, "creating include dir")
	}

	err = os.WriteFile(filepath.Join(includeDir, "boilerplate.h"), boilerplateHeader, 0o600)
	if err != nil {
		_ = os.RemoveAll(includeDir)
		return nil, errors.Wrap(err, "writing boilerplate header")
	}

	g := &Gcc{
		exePath:    filepath.Join(os.TempDir(), "igcc-"+id),
		includeDir: includeDir,
	}

	for _, f := range fields {
		f = strings.ReplaceAll(f, "$EXE", g.exePath)
		f = strings.ReplaceAll(f, "$INCLUDE_DIR", g.includeDir)
		g.args = append(g.args, f)
	}

	return g, nil
}

// Compile blocks until the compiler exits. A non-zero exit is reported in
// the Result, not as an error; an error means the compiler could not be
// invoked at all.
func (g *Gcc) Compile(source string) (*Result, error) {
	cmd := exec.Command(g.args[0], g.args[1:]...)
	cmd.Stdin = strings.NewReader(source)

	var diagnostics bytes.Buffer
	cmd.Stdout = &diagnostics
	cmd.Stderr = &diagnostics

	err := cmd.Run()
	if err == nil {
		return &Result{Ok: true}, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return nil, errors.Wrapf(err, "running compiler '%v'", g.args[0])
	}

	text := diagnostics.String()
	if strings.TrimSpace(text) == "" {
		text = noDiagnostics
	}

	return &Result{Diagnostics: text}, nil
}

func (g *Gcc) ExePath() string {
	return g.exePath
}

func (g *Gcc) Name() string {
	return filepath.Base(g.args[0])
}

func (g *Gcc) Close() {
	_ = os.Remove(g.exePath)
	_ = os.RemoveAll(g.includeDir)
}
