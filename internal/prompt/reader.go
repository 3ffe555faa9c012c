// Package prompt collects meeting metadata interactively before a run.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// ErrInputClosed is returned when input ends before the form is complete.
var ErrInputClosed = errors.New("input closed")

// LineReader reads one line of user input after showing a prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader returns a line-editing reader when in is a terminal and a
// plain buffered reader otherwise. Prompts go to out.
func NewLineReader(in *os.File, out io.Writer) LineReader {
	if term.IsTerminal(int(in.Fd())) {
		state := liner.NewLiner()
		state.SetCtrlCAborts(true)
		return &linerReader{state: state}
	}
	return NewBufferedReader(in, out)
}

type linerReader struct {
	state *liner.State
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		return "", fmt.Errorf("read line: %w", err)
	}
	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

func (r *linerReader) Close() error {
	return r.state.Close()
}

type bufferedReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewBufferedReader reads lines from in and writes prompts to out.
func NewBufferedReader(in io.Reader, out io.Writer) LineReader {
	return &bufferedReader{in: bufio.NewReader(in), out: out}
}

func (r *bufferedReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read line: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *bufferedReader) Close() error {
	return nil
}
