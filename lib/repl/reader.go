package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

// Reader returns one logical input: a single line, or a block collected
// while lines keep ending with the multiline marker. ok=false signals end
// of input (EOF or interrupt), which terminates the session cleanly.
type Reader interface {
	ReadBlock(prompt string) (block []string, ok bool, err error)
	Close() error
}

const continuationPrompt = "... "

type readlineReader struct {
	rl     *readline.Instance
	marker string
}

func NewReadlineReader(marker string) (Reader, error) {
	rl, err := readline.New("")
	if err != nil {
		return nil, errors.Wrap(err, "initializing readline")
	}

	return &readlineReader{rl: rl, marker: marker}, nil
}

func (r *readlineReader) ReadBlock(prompt string) ([]string, bool, error) {
	return readBlock(r.readLine, prompt, r.marker)
}

func (r *readlineReader) readLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

// readBlock collects physical lines into one logical input: a line ending
// with the marker has it stripped and extends the block; the first line
// without it ends the block.
func readBlock(readLine func(prompt string) (string, error), prompt, marker string) ([]string, bool, error) {
	var block []string
	for {
		line, err := readLine(prompt)
		switch {
		case err == io.EOF, err == readline.ErrInterrupt:
			return nil, false, nil
		case err != nil:
			return nil, false, errors.Wrap(err, "reading input")
		}

		if marker != "" && strings.HasSuffix(line, marker) {
			block = append(block, strings.TrimSuffix(line, marker))
			prompt = continuationPrompt
			continue
		}

		return append(block, line), true, nil
	}
}
