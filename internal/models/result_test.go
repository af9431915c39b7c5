package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/harrison/reflow/internal/reflow"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, StatusSucceeded},
		{"word too long", &reflow.WordTooLongError{Width: 5, Longest: 9, Count: 1}, StatusWordTooLong},
		{"wrapped empty input", fmt.Errorf("notes.txt: %w", reflow.ErrEmptyInput), StatusEmptyInput},
		{"other", errors.New("permission denied"), StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyError(tt.err); got != tt.want {
				t.Errorf("ClassifyError(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestFileResultNames(t *testing.T) {
	r := FileResult{}
	if r.SourceName() != StdinName {
		t.Errorf("expected %s, got %s", StdinName, r.SourceName())
	}
	if r.OutputName() != StdoutName {
		t.Errorf("expected %s, got %s", StdoutName, r.OutputName())
	}

	r = FileResult{Source: "a.txt", Output: "wrap.a.txt"}
	if r.SourceName() != "a.txt" || r.OutputName() != "wrap.a.txt" {
		t.Errorf("unexpected names: %s -> %s", r.SourceName(), r.OutputName())
	}
}

func TestSummaryAggregation(t *testing.T) {
	errEmpty := fmt.Errorf("b.txt: %w", reflow.ErrEmptyInput)
	errOpen := errors.New("open c.txt: permission denied")

	s := &Summary{}
	s.Add(FileResult{Source: "a.txt", Status: StatusSucceeded, Stats: reflow.Stats{LongestWord: 7}})
	s.Add(FileResult{Source: "b.txt", Status: StatusEmptyInput, Error: errEmpty})
	s.Add(FileResult{Source: "c.txt", Status: StatusFailed, Error: errOpen})
	s.Add(FileResult{Source: "d.txt", Status: StatusSucceeded, Stats: reflow.Stats{LongestWord: 12}})

	if s.Total() != 4 {
		t.Errorf("expected 4 results, got %d", s.Total())
	}
	if s.Succeeded() != 2 {
		t.Errorf("expected 2 succeeded, got %d", s.Succeeded())
	}
	if !s.Failed() {
		t.Error("summary with failures should report Failed")
	}
	if s.ExitCode() != 1 {
		t.Errorf("expected exit code 1, got %d", s.ExitCode())
	}
	if s.LongestWord() != 12 {
		t.Errorf("expected longest word 12, got %d", s.LongestWord())
	}

	failed := s.FailedResults()
	if len(failed) != 2 || failed[0].Source != "b.txt" || failed[1].Source != "c.txt" {
		t.Errorf("unexpected failed results: %+v", failed)
	}

	err := s.Err()
	if !errors.Is(err, reflow.ErrEmptyInput) || !errors.Is(err, errOpen) {
		t.Errorf("joined error should wrap every failure, got %v", err)
	}
}

func TestSummaryAllSucceeded(t *testing.T) {
	s := &Summary{}
	if s.Failed() || s.ExitCode() != 0 || s.Err() != nil {
		t.Error("empty summary should be a success")
	}

	s.Add(FileResult{Status: StatusSucceeded})
	if s.Failed() || s.ExitCode() != 0 || s.Err() != nil {
		t.Error("all-succeeded summary should be a success")
	}
}
