package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// colorScheme defines consistent colors for log output.
// Green: success, Red: failure, Yellow: warning, Cyan: labels.
// Colors are forced on: the logger decides per writer whether to use them.
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	label   *color.Color
	value   *color.Color
	bold    *color.Color
	levels  map[string]*color.Color
}

// newColorScheme creates the standard color scheme.
func newColorScheme() *colorScheme {
	s := &colorScheme{
		success: enabled(color.FgGreen),
		fail:    enabled(color.FgRed),
		warn:    enabled(color.FgYellow),
		label:   enabled(color.FgCyan),
		value:   enabled(color.FgWhite),
		bold:    enabled(color.Bold),
	}
	s.levels = map[string]*color.Color{
		"TRACE": enabled(color.FgHiBlack),
		"DEBUG": enabled(color.FgCyan),
		"INFO":  enabled(color.FgBlue),
		"WARN":  s.warn,
		"ERROR": s.fail,
	}
	return s
}

func enabled(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// level returns the color for a level label; unknown levels get no color.
func (s *colorScheme) level(name string) *color.Color {
	if c, ok := s.levels[strings.ToUpper(name)]; ok {
		return c
	}
	return color.New(color.Reset)
}

// formatColorizedMetric formats a single metric with colorized label and value.
// Format: "label: value"
func formatColorizedMetric(label string, value interface{}, scheme *colorScheme) string {
	labelColored := scheme.label.Sprint(label)
	valueColored := scheme.value.Sprintf("%v", value)
	return fmt.Sprintf("%s: %s", labelColored, valueColored)
}
