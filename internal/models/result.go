package models

import (
	"errors"
	"time"

	"github.com/harrison/reflow/internal/reflow"
)

// File result status constants
const (
	StatusSucceeded   = "SUCCEEDED"     // Output written, every word fit
	StatusWordTooLong = "WORD_TOO_LONG" // Output written, some word exceeded the width
	StatusEmptyInput  = "EMPTY_INPUT"   // Source had zero bytes, nothing written
	StatusFailed      = "FAILED"        // Path, read or write failure
)

// Display names for the standard streams
const (
	StdinName  = "<stdin>"
	StdoutName = "<stdout>"
)

// FileResult represents the outcome of re-flowing one source into one sink
type FileResult struct {
	Source   string        // Source path, empty for standard input
	Output   string        // Output path, empty for standard output
	Status   string        // One of the Status constants
	Stats    reflow.Stats  // Counters from the engine pass
	Error    error         // Error if Status is not StatusSucceeded
	Duration time.Duration // Time taken by the pass
}

// SourceName returns the source path or StdinName.
func (r FileResult) SourceName() string {
	if r.Source == "" {
		return StdinName
	}
	return r.Source
}

// OutputName returns the output path or StdoutName.
func (r FileResult) OutputName() string {
	if r.Output == "" {
		return StdoutName
	}
	return r.Output
}

// Failed reports whether the result counts against the exit status.
func (r FileResult) Failed() bool {
	return r.Status != StatusSucceeded
}

// ClassifyError maps an engine or I/O error to a status constant.
func ClassifyError(err error) string {
	switch {
	case err == nil:
		return StatusSucceeded
	case errors.Is(err, reflow.ErrWordTooLong):
		return StatusWordTooLong
	case errors.Is(err, reflow.ErrEmptyInput):
		return StatusEmptyInput
	default:
		return StatusFailed
	}
}

// Summary aggregates the results of one invocation over a target
type Summary struct {
	RunID    string        // Unique identifier of the invocation
	Target   string        // Path argument, empty for standard input
	Dir      bool          // Target resolved to a directory
	Results  []FileResult  // One entry per attempted source
	Duration time.Duration // Total time for the invocation
}

// Add appends a result.
func (s *Summary) Add(r FileResult) {
	s.Results = append(s.Results, r)
}

// Total returns the number of attempted sources.
func (s *Summary) Total() int {
	return len(s.Results)
}

// Succeeded returns the number of results without failure.
func (s *Summary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if !r.Failed() {
			n++
		}
	}
	return n
}

// FailedResults returns the results that count against the exit status, in order.
func (s *Summary) FailedResults() []FileResult {
	var failed []FileResult
	for _, r := range s.Results {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Failed reports whether any result failed. A single failure poisons the whole
// invocation even though the remaining sources were still processed.
func (s *Summary) Failed() bool {
	for _, r := range s.Results {
		if r.Failed() {
			return true
		}
	}
	return false
}

// ExitCode returns 0 when every result succeeded and 1 otherwise.
func (s *Summary) ExitCode() int {
	if s.Failed() {
		return 1
	}
	return 0
}

// Err joins the errors of all failed results, or returns nil.
func (s *Summary) Err() error {
	var errs []error
	for _, r := range s.Results {
		if r.Failed() && r.Error != nil {
			errs = append(errs, r.Error)
		}
	}
	return errors.Join(errs...)
}

// LongestWord returns the longest word seen across all results.
func (s *Summary) LongestWord() int {
	longest := 0
	for _, r := range s.Results {
		if r.Stats.LongestWord > longest {
			longest = r.Stats.LongestWord
		}
	}
	return longest
}
