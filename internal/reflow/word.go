package reflow

// maxInitialWordCap bounds the up-front allocation for very large widths.
// Words longer than this still fit; the buffer grows on demand.
const maxInitialWordCap = 4096

// word accumulates the bytes of the word currently being read.
// It is emptied, not reallocated, after every emit, so its capacity only ever
// grows to the length of the longest word in the input.
type word struct {
	buf      []byte
	limit    int  // the line width; longer words are overlong
	overlong bool // sticky: set once any word exceeded limit
}

func newWord(width int) word {
	initial := width
	if initial > maxInitialWordCap {
		initial = maxInitialWordCap
	}
	return word{
		buf:   make([]byte, 0, initial),
		limit: width,
	}
}

// add appends c, doubling the capacity when the buffer is full.
func (w *word) add(c byte) {
	if len(w.buf) == cap(w.buf) {
		size := 2 * cap(w.buf)
		if size == 0 {
			size = 1
		}
		grown := make([]byte, len(w.buf), size)
		copy(grown, w.buf)
		w.buf = grown
	}
	w.buf = append(w.buf, c)
	if len(w.buf) > w.limit {
		w.overlong = true
	}
}

func (w *word) len() int { return len(w.buf) }

func (w *word) bytes() []byte { return w.buf }

func (w *word) reset() { w.buf = w.buf[:0] }
