package consoles

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	noticeColor  = color.New(color.FgBlack, color.BgWhite)
	errorColor   = color.New(color.FgWhite, color.BgRed)
	successColor = color.New(color.FgWhite, color.BgGreen)
	commandColor = color.New(color.FgBlue, color.Bold)
)

type stdoutConsole struct {
}

func NewStdOutConsole() Console {
	return &stdoutConsole{}
}

func (c *stdoutConsole) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

func (c *stdoutConsole) Noticef(format string, a ...any) {
	_, _ = noticeColor.Printf(format, a...)
	fmt.Println()
}

func (c *stdoutConsole) Errorf(format string, a ...any) {
	_, _ = errorColor.Printf(format, a...)
	fmt.Println()
}

func (c *stdoutConsole) Successf(format string, a ...any) {
	_, _ = successColor.Printf(format, a...)
	fmt.Println()
}

func (c *stdoutConsole) Commandf(name, desc string) {
	_, _ = commandColor.Print(name)
	fmt.Printf("  %v\n", desc)
}

func (c *stdoutConsole) Clear() {
	fmt.Print("\033[H\033[2J")
}

func (c *stdoutConsole) Writer() io.Writer {
	return os.Stdout
}
