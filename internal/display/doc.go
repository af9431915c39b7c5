// Package display renders user-facing warning blocks on the message stream.
//
// A Warning has a title and optional message, affected files and suggestion:
//
//	warning := display.Warning{
//	    Title:      "Input contains words longer than the line width of 10",
//	    Files:      []string{"notes.txt"},
//	    Suggestion: "Use a width of at least 23 to fit every word",
//	}
//	warning.Display(os.Stderr, true)
//
// Output format:
//
//	Warning: Input contains words longer than the line width of 10
//	    Affected file:
//	      1. notes.txt
//	    Suggestion:
//	    Use a width of at least 23 to fit every word
//
// OverlongWarning builds this block from a run summary.
package display
