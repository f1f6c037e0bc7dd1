package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"
)

// ErrCancelled is returned when the user aborts the questionnaire.
var ErrCancelled = errors.New("plugin creation cancelled")

// LineReader reads one answer line after showing a prompt. Implementations
// return ErrCancelled when the user aborts input.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

type lineResult struct {
	line string
	err  error
}

// StreamReader reads answers from any io.Reader, such as a pipe.
type StreamReader struct {
	in  *bufio.Reader
	out io.Writer

	once     sync.Once
	lines    chan lineResult
	stopOnce sync.Once
	done     chan struct{}
}

// NewStreamReader returns a StreamReader that prints prompts to w and reads
// answers from r.
func NewStreamReader(r io.Reader, w io.Writer) *StreamReader {
	return &StreamReader{
		in:    bufio.NewReader(r),
		out:   w,
		lines: make(chan lineResult),
		done:  make(chan struct{}),
	}
}

// ReadLine prints prompt and waits for the next line. End of input and a
// cancelled context both count as cancellation; after a cancelled context the
// reader is stopped and every later call reports ErrCancelled.
func (s *StreamReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		s.stop()
		return "", ErrCancelled
	}

	fmt.Fprint(s.out, prompt)
	s.once.Do(func() { go s.pump() })

	select {
	case <-ctx.Done():
		s.stop()
		fmt.Fprintln(s.out)
		return "", ErrCancelled
	case <-s.done:
		return "", ErrCancelled
	case res, ok := <-s.lines:
		if !ok {
			fmt.Fprintln(s.out)
			return "", ErrCancelled
		}
		if res.err != nil {
			return "", fmt.Errorf("reading input: %w", res.err)
		}
		return res.line, nil
	}
}

// stop releases the pump goroutine once nobody will receive its lines.
func (s *StreamReader) stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// pump is the only goroutine touching s.in. A final line without a trailing
// newline is still delivered before the channel closes. It returns as soon as
// the reader is stopped and has a line to hand over.
func (s *StreamReader) pump() {
	defer close(s.lines)
	for {
		line, err := s.in.ReadString('\n')
		if line != "" || err == nil {
			if !s.send(lineResult{line: strings.TrimRight(line, "\r\n")}) {
				return
			}
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			s.send(lineResult{err: err})
			return
		}
	}
}

func (s *StreamReader) send(res lineResult) bool {
	select {
	case s.lines <- res:
		return true
	case <-s.done:
		return false
	}
}

// TerminalReader reads answers with line editing when stdin is a terminal.
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader sets up line editing on the given streams.
func NewTerminalReader(stdin io.ReadCloser, stdout io.Writer) (*TerminalReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:                  stdin,
		Stdout:                 stdout,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing terminal input: %w", err)
	}
	return &TerminalReader{rl: rl}, nil
}

// ReadLine shows prompt and reads a line. Ctrl-C and Ctrl-D cancel.
func (t *TerminalReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrCancelled
	}

	t.rl.SetPrompt(prompt)
	line, err := t.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return "", ErrCancelled
	case err != nil:
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

// Close restores the terminal.
func (t *TerminalReader) Close() error {
	return t.rl.Close()
}
