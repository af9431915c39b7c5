// Package logger provides the diagnostic logger for reflow.
//
// Diagnostics are written to a message stream (normally standard error) and
// never mixed into the re-flowed output. Messages are prefixed with
// [HH:MM:SS] timestamps and filtered by level.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/harrison/reflow/internal/models"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs diagnostics to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// It supports log level filtering to control message verbosity.
// Color output is automatically enabled when the writer is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
	scheme      *colorScheme
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// logLevel determines the minimum log level for messages to be output.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		mutex:       sync.Mutex{},
		colorOutput: isTerminal(writer),
		scheme:      newColorScheme(),
	}
}

// SetColor forces color output on or off.
func (cl *ConsoleLogger) SetColor(enabled bool) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.colorOutput = enabled
}

// ColorEnabled reports whether messages are colorized.
func (cl *ConsoleLogger) ColorEnabled() bool {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	return cl.colorOutput
}

// isTerminal checks if the writer is a terminal that supports colors.
// Standard output is usually redirected to a file while standard error stays
// on the terminal, so each writer is checked on its own rather than relying
// on color.NoColor (which only inspects stdout).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

// shouldLog checks if a message at the given level should be logged.
// Returns true if messageLevel >= configured logLevel.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message (most verbose).
// Format: "[HH:MM:SS] [TRACE] <message>"
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
// Format: "[HH:MM:SS] [DEBUG] <message>"
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
// Format: "[HH:MM:SS] [INFO] <message>"
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
// Format: "[HH:MM:SS] [WARN] <message>"
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
// Format: "[HH:MM:SS] [ERROR] <message>"
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	label := level
	if cl.colorOutput {
		label = cl.scheme.level(level).Sprint(level)
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", timestamp(), label, message)
}

// LogFileResult logs the outcome of one source.
// Successes are logged at DEBUG level, failures at ERROR level.
func (cl *ConsoleLogger) LogFileResult(result models.FileResult) {
	switch result.Status {
	case models.StatusSucceeded:
		cl.LogDebug(fmt.Sprintf("%s -> %s: %d words, %d lines (%s)",
			result.SourceName(), result.OutputName(), result.Stats.Words, result.Stats.Lines, formatDuration(result.Duration)))
	case models.StatusWordTooLong:
		cl.LogError(fmt.Sprintf("%s: %v (output written to %s)", result.SourceName(), result.Error, result.OutputName()))
	case models.StatusEmptyInput:
		cl.LogError(fmt.Sprintf("%s: %v", result.SourceName(), result.Error))
	default:
		// Path errors already name the file
		cl.LogError(fmt.Sprintf("%v", result.Error))
	}
}

// LogSummary logs the directory summary with completion statistics at INFO level.
func (cl *ConsoleLogger) LogSummary(summary *models.Summary) {
	if cl.writer == nil || summary == nil {
		return
	}
	if !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	failed := summary.FailedResults()
	s := cl.scheme

	var b strings.Builder
	if cl.colorOutput {
		fmt.Fprintf(&b, "[%s] %s\n", ts, s.bold.Sprint("=== Reflow Summary ==="))
		fmt.Fprintf(&b, "[%s] %s\n", ts, formatColorizedMetric("Files", summary.Total(), s))
		fmt.Fprintf(&b, "[%s] %s\n", ts, s.success.Sprintf("Succeeded: %d", summary.Succeeded()))
		if len(failed) > 0 {
			fmt.Fprintf(&b, "[%s] %s\n", ts, s.fail.Sprintf("Failed: %d", len(failed)))
		} else {
			fmt.Fprintf(&b, "[%s] Failed: 0\n", ts)
		}
		fmt.Fprintf(&b, "[%s] %s\n", ts, formatColorizedMetric("Duration", formatDuration(summary.Duration), s))
		if len(failed) > 0 {
			fmt.Fprintf(&b, "[%s] %s\n", ts, s.fail.Sprint("Failed files:"))
			for _, r := range failed {
				fmt.Fprintf(&b, "[%s]   - %s: %s\n", ts, s.fail.Sprint(r.SourceName()), r.Status)
			}
		}
	} else {
		fmt.Fprintf(&b, "[%s] === Reflow Summary ===\n", ts)
		fmt.Fprintf(&b, "[%s] Files: %d\n", ts, summary.Total())
		fmt.Fprintf(&b, "[%s] Succeeded: %d\n", ts, summary.Succeeded())
		fmt.Fprintf(&b, "[%s] Failed: %d\n", ts, len(failed))
		fmt.Fprintf(&b, "[%s] Duration: %s\n", ts, formatDuration(summary.Duration))
		if len(failed) > 0 {
			fmt.Fprintf(&b, "[%s] Failed files:\n", ts)
			for _, r := range failed {
				fmt.Fprintf(&b, "[%s]   - %s: %s\n", ts, r.SourceName(), r.Status)
			}
		}
	}

	io.WriteString(cl.writer, b.String())
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a human-readable string.
// Examples: "250ms", "5s", "1m30s"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		minutes := d / time.Minute
		remainder := d % time.Minute
		if remainder < time.Second {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, remainder/time.Second)
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// NoOpLogger discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// LogTrace is a no-op implementation.
func (n *NoOpLogger) LogTrace(message string) {
}

// LogDebug is a no-op implementation.
func (n *NoOpLogger) LogDebug(message string) {
}

// LogInfo is a no-op implementation.
func (n *NoOpLogger) LogInfo(message string) {
}

// LogWarn is a no-op implementation.
func (n *NoOpLogger) LogWarn(message string) {
}

// LogError is a no-op implementation.
func (n *NoOpLogger) LogError(message string) {
}

// LogFileResult is a no-op implementation.
func (n *NoOpLogger) LogFileResult(result models.FileResult) {
}

// LogSummary is a no-op implementation.
func (n *NoOpLogger) LogSummary(summary *models.Summary) {
}
