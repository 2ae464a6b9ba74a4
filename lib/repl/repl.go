package repl

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"

	"igcc/lib/compilers"
	"igcc/lib/config"
	"igcc/lib/consoles"
	"igcc/lib/program"
	"igcc/lib/session"
)

type Compiler interface {
	Compile(source string) (*compilers.Result, error)
	ExePath() string
	Name() string
}

type Runner interface {
	Run(exe string) (stdout, stderr []byte, err error)
}

// REPL drives one session: read a block, mutate history, assemble, compile,
// run, show only the output not already shown. Strictly synchronous; every
// external process completes before the next step.
type REPL struct {
	cfg      *config.Config
	console  consoles.Console
	reader   Reader
	compiler Compiler
	runner   Runner
	session  *session.Session

	compilerName    string
	showLineNumbers bool
	done            bool
}

func New(cfg *config.Config, console consoles.Console, reader Reader, compiler Compiler, runner Runner) *REPL {
	return &REPL{
		cfg:          cfg,
		console:      console,
		reader:       reader,
		compiler:     compiler,
		runner:       runner,
		session:      session.New(),
		compilerName: compiler.Name(),
	}
}

func (r *REPL) Run() error {
	for !r.done {
		prompt := fmt.Sprintf(r.cfg.Prompt, r.session.History.VisibleLen()+1)

		block, ok, err := r.reader.ReadBlock(prompt)
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		r.Turn(block)
	}

	r.printSummary()
	return nil
}

// Turn handles one logical input. Dot commands decide for themselves
// whether they become history and whether a compile cycle follows; ordinary
// input always does both.
func (r *REPL) Turn(block []string) {
	if len(block) == 0 {
		return
	}

	becomesHistory, recompile := true, true

	if input := strings.TrimSpace(strings.Join(block, "\n")); strings.HasPrefix(input, ".") {
		result := r.dispatch(input)
		becomesHistory, recompile = result.becomesHistory, result.recompile
	}

	if becomesHistory {
		r.session.Append(session.NewLines(block))
	}

	if recompile {
		r.compileAndRun()
	}
}

func (r *REPL) compileAndRun() {
	src := program.Assemble(r.session.History.Visible())

	result, err := r.compiler.Compile(src)
	if err != nil {
		r.console.Errorf("%v", err)
		return
	}

	if !result.Ok {
		r.session.SetCompileError(result.Diagnostics)
		r.console.Errorf("Compile error - type .e to see it")
		return
	}
	r.session.SetCompileError("")

	stdout, stderr, err := r.runner.Run(r.compiler.ExePath())
	if err != nil {
		r.console.Errorf("%v", err)
		return
	}

	out, errOut := r.session.Tracker.TakeNew(stdout, stderr)
	if out.Diverged || errOut.Diverged {
		r.console.Noticef("Program output changed between runs; showing only appended bytes")
	}

	if len(out.New) > 0 {
		r.console.Printf("%s", out.New)
	}
	if len(errOut.New) > 0 {
		r.console.Printf("%s", errOut.New)
	}

	r.session.AttributeOutput(len(out.New), len(errOut.New))
}

func (r *REPL) printSummary() {
	count := r.session.History.VisibleLen()
	shown := r.session.Tracker.StdoutShown() + r.session.Tracker.StderrShown()

	r.console.Printf("Bye. %v %v, %v shown.\n",
		count,
		pluralize.NewClient().Pluralize("snippet", count, false),
		humanize.Bytes(uint64(shown)))
}
