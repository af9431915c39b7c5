package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/reflow/internal/models"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning block to out, in yellow when colored is true.
func (w Warning) Display(out io.Writer, colored bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	// Add message with 4-space indent if present
	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	// Add files with proper singular/plural and indentation
	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	// Add suggestion with 4-space indent if present
	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if !colored {
		fmt.Fprint(out, b.String())
		return
	}
	yellow := color.New(color.FgYellow)
	yellow.EnableColor()
	fmt.Fprint(out, yellow.Sprint(b.String()))
}

// OverlongWarning builds the warning shown after a run in which some word did
// not fit the line width. ok is false when no result had that problem.
func OverlongWarning(summary *models.Summary, width int) (w Warning, ok bool) {
	longest := 0
	var files []string
	for _, r := range summary.Results {
		if r.Status != models.StatusWordTooLong {
			continue
		}
		files = append(files, r.SourceName())
		if r.Stats.LongestWord > longest {
			longest = r.Stats.LongestWord
		}
	}
	if len(files) == 0 {
		return Warning{}, false
	}

	return Warning{
		Title:      fmt.Sprintf("Input contains words longer than the line width of %d", width),
		Message:    "Each overlong word was placed alone on its own line without being split",
		Files:      files,
		Suggestion: fmt.Sprintf("Use a width of at least %d to fit every word", longest),
	}, true
}
