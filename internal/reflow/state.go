package reflow

import "bufio"

var (
	space          = []byte{' '}
	newline        = []byte{'\n'}
	paragraphBreak = []byte{'\n', '\n'}
)

// isSpace classifies a byte the way the C locale does: space, \t, \n, \v, \f
// and \r. Bytes outside ASCII are never whitespace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// state is everything one pass carries from byte to byte.
type state struct {
	width int
	out   *bufio.Writer
	word  word

	cursor           int  // characters already on the current output line
	lastNewline      bool // previous byte was '\n'
	paragraphPending bool // blank line owed before the next word

	stats Stats
	err   error // first write error; later writes are skipped
}

func newState(width int, out *bufio.Writer) *state {
	return &state{
		width: width,
		out:   out,
		word:  newWord(width),
	}
}

// feed advances the state machine by one input byte.
func (s *state) feed(c byte) {
	if !isSpace(c) {
		s.lastNewline = false
		s.word.add(c)
		return
	}

	if c == '\n' {
		if s.lastNewline {
			s.paragraphPending = true
			s.cursor = 0
		} else {
			s.lastNewline = true
		}
	} else {
		s.lastNewline = false
	}

	if s.word.len() > 0 {
		s.emit()
		s.word.reset()
	}
}

// emit places the accumulated word on the output.
func (s *state) emit() {
	w := s.word.bytes()
	n := len(w)

	if s.paragraphPending {
		s.write(paragraphBreak)
		s.paragraphPending = false
		s.cursor = 0
		s.stats.ParagraphBreaks++
	}

	switch {
	case s.cursor == 0:
		s.write(w)
		s.cursor = n
		s.stats.Lines++
	case s.cursor+1+n <= s.width:
		s.write(space)
		s.write(w)
		s.cursor += 1 + n
	default:
		s.write(newline)
		s.write(w)
		s.cursor = n
		s.stats.Lines++
	}

	s.stats.Words++
	if n > s.stats.LongestWord {
		s.stats.LongestWord = n
	}
	if n > s.width {
		s.stats.OverlongWords++
	}
}

// finish flushes the trailing word and terminates the output.
func (s *state) finish() {
	if s.word.len() > 0 {
		s.emit()
	}
	s.write(newline)
}

func (s *state) write(p []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.out.Write(p)
}
