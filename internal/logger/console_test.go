package logger

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/harrison/reflow/internal/models"
	"github.com/harrison/reflow/internal/reflow"
)

// TestNewConsoleLogger verifies the constructor creates a ConsoleLogger with the provided writer.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")

		if logger == nil {
			t.Fatal("expected non-nil logger")
		}
		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.logLevel != "info" {
			t.Errorf("expected log level %q, got %q", "info", logger.logLevel)
		}
		if logger.ColorEnabled() {
			t.Error("color should be disabled for a non-terminal writer")
		}
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		if logger == nil {
			t.Fatal("expected non-nil logger even with nil writer")
		}
		// Must not panic
		logger.LogError("dropped")
		logger.LogSummary(&models.Summary{})
	})
}

// TestLogFormat verifies the "[HH:MM:SS] [LEVEL] message" format.
func TestLogFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "trace")

	logger.LogInfo("hello")

	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[INFO\] hello\n$`)
	if !pattern.MatchString(buf.String()) {
		t.Errorf("unexpected format: %q", buf.String())
	}
}

// TestColorOutput verifies ANSI codes appear only when color is enabled.
func TestColorOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.LogError("plain")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected no ANSI codes, got %q", buf.String())
	}

	buf.Reset()
	logger.SetColor(true)
	logger.LogError("colored")
	output := buf.String()
	if !strings.Contains(output, "\x1b[31m") {
		t.Errorf("expected red ERROR label, got %q", output)
	}
	if !strings.Contains(output, "colored") {
		t.Errorf("message missing from %q", output)
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(nil) {
		t.Error("nil writer is not a terminal")
	}
	if isTerminal(&bytes.Buffer{}) {
		t.Error("buffer is not a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "log")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Error("regular file is not a terminal")
	}
}

func TestLogFileResult(t *testing.T) {
	tests := []struct {
		name     string
		result   models.FileResult
		contains []string
	}{
		{
			name: "success",
			result: models.FileResult{
				Source:   "a.txt",
				Output:   "wrap.a.txt",
				Status:   models.StatusSucceeded,
				Stats:    reflow.Stats{Words: 12, Lines: 3},
				Duration: 1500 * time.Millisecond,
			},
			contains: []string{"[DEBUG]", "a.txt -> wrap.a.txt: 12 words, 3 lines (1s)"},
		},
		{
			name: "stdin success",
			result: models.FileResult{
				Status: models.StatusSucceeded,
			},
			contains: []string{"<stdin> -> <stdout>"},
		},
		{
			name: "word too long",
			result: models.FileResult{
				Source: "b.txt",
				Status: models.StatusWordTooLong,
				Error:  &reflow.WordTooLongError{Width: 10, Longest: 50, Count: 1},
			},
			contains: []string{"[ERROR]", "b.txt:", "longest is 50", "output written to <stdout>"},
		},
		{
			name: "empty input",
			result: models.FileResult{
				Source: "c.txt",
				Status: models.StatusEmptyInput,
				Error:  reflow.ErrEmptyInput,
			},
			contains: []string{"[ERROR]", "c.txt: input contains zero bytes"},
		},
		{
			name: "path failure",
			result: models.FileResult{
				Source: "d.txt",
				Status: models.StatusFailed,
				Error:  errors.New("open d.txt: permission denied"),
			},
			contains: []string{"[ERROR] open d.txt: permission denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, "debug")
			logger.LogFileResult(tt.result)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("expected %q in output %q", want, output)
				}
			}
		})
	}
}

func TestLogSummary(t *testing.T) {
	summary := &models.Summary{
		Results: []models.FileResult{
			{Source: "/docs/a.txt", Status: models.StatusSucceeded},
			{Source: "/docs/b.txt", Status: models.StatusEmptyInput},
			{Source: "/docs/c.txt", Status: models.StatusWordTooLong},
		},
		Duration: 90 * time.Second,
	}

	t.Run("plain", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")
		logger.LogSummary(summary)

		output := buf.String()
		for _, want := range []string{
			"=== Reflow Summary ===",
			"Files: 3",
			"Succeeded: 1",
			"Failed: 2",
			"Duration: 1m30s",
			"Failed files:",
			"  - /docs/b.txt: EMPTY_INPUT",
			"  - /docs/c.txt: WORD_TOO_LONG",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected %q in summary:\n%s", want, output)
			}
		}
		if strings.Contains(output, "/docs/a.txt") {
			t.Error("successful files should not be listed")
		}
	})

	t.Run("colored", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")
		logger.SetColor(true)
		logger.LogSummary(summary)

		output := buf.String()
		if !strings.Contains(output, "\x1b[") {
			t.Error("expected ANSI codes in colored summary")
		}
		if !strings.Contains(output, "Reflow Summary") || !strings.Contains(output, "/docs/c.txt") {
			t.Errorf("colored summary missing content: %q", output)
		}
	})

	t.Run("no failures", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")
		logger.LogSummary(&models.Summary{Results: []models.FileResult{{Status: models.StatusSucceeded}}})

		output := buf.String()
		if !strings.Contains(output, "Failed: 0") {
			t.Errorf("expected zero failures, got %q", output)
		}
		if strings.Contains(output, "Failed files:") {
			t.Error("failed files header should be omitted")
		}
	})
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ms"},
		{250 * time.Millisecond, "250ms"},
		{5 * time.Second, "5s"},
		{59*time.Second + 900*time.Millisecond, "59s"},
		{2 * time.Minute, "2m"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// TestConcurrentLogging verifies messages are never interleaved.
func TestConcurrentLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	const goroutines = 10
	const perGoroutine = 20

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				logger.LogInfo(fmt.Sprintf("worker %d message %d", id, j))
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != goroutines*perGoroutine {
		t.Fatalf("expected %d lines, got %d", goroutines*perGoroutine, len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "[INFO] worker ") {
			t.Errorf("malformed line: %q", line)
		}
	}
}

func TestNoOpLogger(t *testing.T) {
	n := NewNoOpLogger()
	n.LogTrace("x")
	n.LogDebug("x")
	n.LogInfo("x")
	n.LogWarn("x")
	n.LogError("x")
	n.LogFileResult(models.FileResult{})
	n.LogSummary(nil)
}
