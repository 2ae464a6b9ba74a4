package repl

import (
	"io"
	"strings"

	"github.com/abiosoft/lineprefix"
	"github.com/aquilax/truncate"
	"github.com/samber/lo"

	"igcc/lib/program"
	"igcc/lib/utils"
)

// commandResult says what a dot command wants from the rest of the turn.
type commandResult struct {
	becomesHistory bool
	recompile      bool
}

type dotCommand struct {
	name string
	help string
	run  func(r *REPL) commandResult
}

var dotCommands []dotCommand

// populated in init to avoid an initialization cycle with help, which
// iterates dotCommands.
func init() {
	dotCommands = []dotCommand{
		{".h", "Show this help message", (*REPL).help},
		{".c", "Clear the screen", (*REPL).clearScreen},
		{".e", "Show the last compile errors/warnings", (*REPL).showErrors},
		{".l", "List the code you have entered", (*REPL).list},
		{".L", "List the whole program as given to the compiler", (*REPL).listFull},
		{".n", "Toggle line numbers for .l and .L listings", (*REPL).toggleLineNumbers},
		{".v", "Visualize code in PythonTutor", (*REPL).visualize},
		{".r", "Redo undone command", (*REPL).redo},
		{".u", "Undo previous command", (*REPL).undo},
		{".q", "Quit", (*REPL).quit},
	}
}

func (r *REPL) dispatch(input string) commandResult {
	cmd, ok := lo.Find(dotCommands, func(c dotCommand) bool { return c.name == input })
	if !ok {
		r.console.Errorf("Unknown command `%v`. Available commands:", input)
		return r.help()
	}

	return cmd.run(r)
}

func (r *REPL) help() commandResult {
	for _, c := range dotCommands {
		r.console.Commandf(c.name, c.help)
	}
	return commandResult{}
}

func (r *REPL) clearScreen() commandResult {
	r.console.Clear()
	return commandResult{}
}

func (r *REPL) showErrors() commandResult {
	if r.session.CompileError() == "" {
		r.console.Successf("No compile errors")
		return commandResult{}
	}

	r.printDiagnostics(r.session.CompileError())
	return commandResult{}
}

// printDiagnostics echoes compiler output with a per-line prefix naming the
// compiler.
func (r *REPL) printDiagnostics(text string) {
	w := lineprefix.New(
		lineprefix.Writer(r.console.Writer()),
		lineprefix.PrefixFunc(func() string { return r.compilerName + " |" }),
	)

	_, _ = io.WriteString(w, text)
	if !strings.HasSuffix(text, "\n") {
		_, _ = io.WriteString(w, "\n")
	}
}

func (r *REPL) list() commandResult {
	code := program.UserCode(r.session.History.Visible())
	if strings.TrimSpace(code) == "" {
		r.console.Noticef("No code entered yet")
		return commandResult{}
	}

	if r.showLineNumbers {
		code = program.NumberLines(code)
	}
	r.console.Printf("%v\n", code)
	return commandResult{}
}

func (r *REPL) listFull() commandResult {
	src := program.Full(r.session.History.Visible())
	if r.showLineNumbers {
		src = program.NumberLines(src)
	}
	r.console.Printf("%v\n", src)
	return commandResult{}
}

func (r *REPL) toggleLineNumbers() commandResult {
	r.showLineNumbers = !r.showLineNumbers
	r.console.Noticef("Line numbers %v", utils.IIf(r.showLineNumbers, "on", "off"))
	return commandResult{}
}

func (r *REPL) visualize() commandResult {
	link := program.VisualizeURL(program.Full(r.session.History.Visible()))
	r.console.Successf("PythonTutor link:")
	r.console.Printf("%v\n", link)
	return commandResult{}
}

const echoLimit = 60

func (r *REPL) redo() commandResult {
	line, ok := r.session.Redo()
	if !ok {
		r.console.Noticef("Nothing to redo")
		return commandResult{}
	}

	r.console.Noticef("Redone `%v`", truncate.Truncate(line.Text, echoLimit, "...", truncate.PositionEnd))
	return commandResult{recompile: true}
}

func (r *REPL) undo() commandResult {
	line, ok := r.session.Undo()
	if !ok {
		r.console.Noticef("Nothing to undo")
		return commandResult{}
	}

	r.console.Noticef("Undone `%v`", truncate.Truncate(line.Text, echoLimit, "...", truncate.PositionEnd))
	return commandResult{}
}

func (r *REPL) quit() commandResult {
	r.done = true
	return commandResult{}
}
