package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like source
)

// Pipeline Colors
var (
	CommandNameColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	PipeFlagColor    = color.New(color.FgYellow).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// SetEnabled turns colored output on or off for the whole process.
// Output that is not a terminal stays uncolored either way.
func SetEnabled(enabled bool) {
	if !enabled {
		color.NoColor = true
	}
}

// ErrorWriter colors everything written through it with ErrorColor.
// Each Write is expected to carry whole lines.
type ErrorWriter struct {
	w io.Writer
}

// NewErrorWriter wraps w, typically os.Stderr.
func NewErrorWriter(w io.Writer) *ErrorWriter {
	return &ErrorWriter{w: w}
}

func (e *ErrorWriter) Write(p []byte) (int, error) {
	text := strings.TrimSuffix(string(p), "\n")
	suffix := ""
	if len(text) < len(p) {
		suffix = "\n"
	}
	if _, err := fmt.Fprint(e.w, ErrorColor(text), suffix); err != nil {
		return 0, err
	}
	return len(p), nil
}
