package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context or the
// input stream ends.
var ErrInputCancelled = errors.New("input canceled")

// LineReader provides context-aware line reading that can be interrupted
// mid-prompt.
type LineReader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewLineReader creates a new line reader over the given input stream.
func NewLineReader(reader io.Reader) *LineReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &LineReader{
		reader: bufio.NewReader(reader),
	}
}

// ReadLine reads one trimmed line, respecting context cancellation. End of
// input is reported as ErrInputCancelled so callers treat it as a clean
// exit.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := r.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		// The reading goroutine keeps running until it completes, but
		// we return to the caller immediately.
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil {
			if errors.Is(res.err, io.EOF) {
				return "", ErrInputCancelled
			}
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}
