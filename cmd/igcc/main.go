package main

import (
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"igcc/lib/compilers"
	"igcc/lib/config"
	"igcc/lib/consoles"
	"igcc/lib/repl"
)

var cli struct {
	Config   string `short:"c" help:"Config file to use. Default is igcc.yaml in ~/.igcc or the current directory." type:"path"`
	Compiler string `help:"Compiler command, overriding the config file. $EXE and $INCLUDE_DIR are replaced before running; the program is piped to stdin."`
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())
	ctx.FatalIfErrorf(run())
}

// run owns the session resources so they are released on every exit path:
// end-of-input, .q, Ctrl-C at the prompt, and Ctrl-C while a compile or run
// blocks (readline only reports interrupts at the prompt; anywhere else the
// signal would kill the process without running the defers).
func run() error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	if cli.Compiler != "" {
		cfg.CompilerCommand = cli.Compiler
	}

	gcc, err := compilers.NewGcc(cfg)
	if err != nil {
		return err
	}
	defer gcc.Close()

	reader, err := repl.NewReadlineReader(cfg.MultilineMarker)
	if err != nil {
		return err
	}
	defer reader.Close()

	stop := onInterrupt(func() {
		gcc.Close()
		_ = reader.Close()
	}, os.Exit)
	defer stop()

	return repl.New(cfg, consoles.NewStdOutConsole(), reader, gcc, &compilers.Runner{}).Run()
}

// onInterrupt runs cleanup and then exit(130) when an interrupt arrives.
// The returned stop releases the handler once the session ends normally.
func onInterrupt(cleanup func(), exit func(int)) (stop func()) {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)

	done := make(chan struct{})
	go func() {
		select {
		case <-interrupts:
			cleanup()
			exit(130)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(interrupts)
		close(done)
	}
}
