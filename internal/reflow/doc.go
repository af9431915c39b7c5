// Package reflow implements the streaming re-flow engine behind the reflow
// command.
//
// The engine reads an arbitrary byte stream in fixed-size chunks and emits the
// same words re-wrapped to a target line width. It never holds the whole input
// in memory: the only state carried between chunks is the word currently being
// assembled, the number of characters already placed on the output line, and
// two flags used to tell a single newline (a word boundary) from a run of two
// or more newlines (a paragraph break).
//
// # Output rules
//
//   - Words are maximal runs of non-whitespace bytes. Whitespace is classified
//     byte by byte: space, tab, newline, vertical tab, form feed and carriage
//     return. No Unicode segmentation is attempted.
//   - Words on a line are separated by exactly one space.
//   - A word is placed on the current line only when the line plus a space plus
//     the word fits in the width. Otherwise it starts a new line.
//   - A word longer than the width is placed alone on its own line, unsplit.
//     The pass still completes and the engine reports ErrWordTooLong afterwards.
//   - Two or more consecutive newlines become exactly one blank line, written
//     only when the next word arrives. Trailing blank lines are dropped.
//   - The output always ends with exactly one newline.
//
// # Usage
//
//	if err := reflow.Reflow(os.Stdin, 72, os.Stdout); err != nil {
//	    if errors.Is(err, reflow.ErrWordTooLong) {
//	        // output was written in full; report the diagnostic
//	    }
//	}
//
// For statistics about the pass, or to tune the read chunk size, construct an
// Engine:
//
//	eng, err := reflow.New(72, reflow.WithChunkSize(16))
//	stats, err := eng.Run(src, dst)
package reflow
