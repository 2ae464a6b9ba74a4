package consoles

import (
	"bytes"
	"fmt"
	"io"
)

// MemoryConsole collects everything printed, for tests.
type MemoryConsole struct {
	buf bytes.Buffer
}

func NewMemoryConsole() *MemoryConsole {
	return &MemoryConsole{}
}

func (c *MemoryConsole) Printf(format string, a ...any) {
	fmt.Fprintf(&c.buf, format, a...)
}

func (c *MemoryConsole) Noticef(format string, a ...any) {
	fmt.Fprintf(&c.buf, format+"\n", a...)
}

func (c *MemoryConsole) Errorf(format string, a ...any) {
	fmt.Fprintf(&c.buf, format+"\n", a...)
}

func (c *MemoryConsole) Successf(format string, a ...any) {
	fmt.Fprintf(&c.buf, format+"\n", a...)
}

func (c *MemoryConsole) Commandf(name, desc string) {
	fmt.Fprintf(&c.buf, "%v  %v\n", name, desc)
}

func (c *MemoryConsole) Clear() {
	c.buf.Reset()
}

func (c *MemoryConsole) Writer() io.Writer {
	return &c.buf
}

func (c *MemoryConsole) String() string {
	return c.buf.String()
}
