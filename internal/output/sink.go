// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
)

// Sink writes user-facing text with an optional severity tag. Two sinks are
// conventionally in play per invocation: a normal sink bound to stdout and
// an error sink bound to stderr, so the streams can be redirected
// independently. Sinks are passed to collaborators explicitly; there are no
// package-level console singletons.
type Sink struct {
	w      io.Writer
	styled bool
}

// NewSink wraps w. When styled is true, severity tags are colored with
// lipgloss; plain text otherwise.
func NewSink(w io.Writer, styled bool) *Sink {
	if w == nil {
		w = os.Stdout
	}
	return &Sink{w: w, styled: styled}
}

// Writer exposes the underlying writer for raw stream forwarding.
func (s *Sink) Writer() io.Writer {
	return s.w
}

// Printf writes untagged text.
func (s *Sink) Printf(format string, args ...any) {
	fmt.Fprintf(s.w, format, args...)
}

// Println writes an untagged line.
func (s *Sink) Println(line string) {
	fmt.Fprintln(s.w, line)
}

// Infof writes a line with no severity tag.
func (s *Sink) Infof(format string, args ...any) {
	fmt.Fprintf(s.w, format+"\n", args...)
}

// Successf writes a line tagged "Success:".
func (s *Sink) Successf(format string, args ...any) {
	s.tagged("Success:", "#22aa44", format, args...)
}

// Warnf writes a line tagged "Warning:".
func (s *Sink) Warnf(format string, args ...any) {
	s.tagged("Warning:", "#b08800", format, args...)
}

// Errorf writes a line tagged "Error:". Every error path in the application
// funnels through this so the tag is a stable grep target.
func (s *Sink) Errorf(format string, args ...any) {
	s.tagged("Error:", "#cc2222", format, args...)
}

func (s *Sink) tagged(tag, color, format string, args ...any) {
	if s.styled {
		tag = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(tag)
	}
	fmt.Fprintf(s.w, "%s %s\n", tag, fmt.Sprintf(format, args...))
}
