package reflow

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultChunkSize is the number of bytes requested from the source per read.
const DefaultChunkSize = 4096

// maxEmptyReads is how many consecutive (0, nil) reads are tolerated before
// the source is considered stuck.
const maxEmptyReads = 100

// Stats describes a completed (or aborted) pass.
type Stats struct {
	BytesRead       int64
	Words           int
	Lines           int // non-blank output lines
	ParagraphBreaks int // blank lines written
	LongestWord     int
	OverlongWords   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithChunkSize sets the read chunk size. Values below 1 are ignored.
func WithChunkSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.chunkSize = n
		}
	}
}

// Engine re-flows text to a fixed width. An Engine holds no per-pass state
// and may be reused for any number of sequential or concurrent Run calls.
type Engine struct {
	width     int
	chunkSize int
}

// New creates an Engine for the given line width.
func New(width int, opts ...Option) (*Engine, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWidth, width)
	}
	e := &Engine{
		width:     width,
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Width returns the configured line width.
func (e *Engine) Width() int {
	return e.width
}

// Reflow re-wraps src to width and writes the result to dst.
// See Engine.Run for the error contract.
func Reflow(src io.Reader, width int, dst io.Writer) error {
	e, err := New(width)
	if err != nil {
		return err
	}
	_, err = e.Run(src, dst)
	return err
}

// Run reads src until EOF and writes the re-flowed text to dst.
//
// It returns ErrEmptyInput, without writing anything, when src yields no bytes.
// When some word is longer than the width, the full output is still written
// and a *WordTooLongError is returned. Read and write errors abort the pass and
// are returned wrapped. Neither src nor dst is closed.
func (e *Engine) Run(src io.Reader, dst io.Writer) (Stats, error) {
	out := bufio.NewWriter(dst)
	st := newState(e.width, out)
	chunk := make([]byte, e.chunkSize)

	stalled := 0
	for {
		n, err := src.Read(chunk)
		if n > 0 {
			stalled = 0
			st.stats.BytesRead += int64(n)
			for _, c := range chunk[:n] {
				st.feed(c)
			}
			if st.err != nil {
				return st.stats, fmt.Errorf("write output: %w", st.err)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return st.stats, fmt.Errorf("read input: %w", err)
		}
		if n == 0 {
			stalled++
			if stalled >= maxEmptyReads {
				return st.stats, fmt.Errorf("read input: %w", io.ErrNoProgress)
			}
		}
	}

	if st.stats.BytesRead == 0 {
		return st.stats, ErrEmptyInput
	}

	st.finish()
	if st.err != nil {
		return st.stats, fmt.Errorf("write output: %w", st.err)
	}
	if err := out.Flush(); err != nil {
		return st.stats, fmt.Errorf("write output: %w", err)
	}

	if st.word.overlong {
		return st.stats, &WordTooLongError{
			Width:   e.width,
			Longest: st.stats.LongestWord,
			Count:   st.stats.OverlongWords,
		}
	}
	return st.stats, nil
}
