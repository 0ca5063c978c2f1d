// seehuhn.de/go/svgpdf - render SVG drawings into PDF files
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package diag collects non-fatal problems found while rendering a drawing.
//
// Malformed input never aborts the rendering process.  Instead, each problem
// is recorded in a [Log], so that callers can inspect what was skipped or
// substituted.  If a logger is attached, every entry is also emitted as a
// warning.
package diag

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// Components which report diagnostics.
const (
	Markup   = "markup"
	Path     = "path"
	Style    = "style"
	Color    = "color"
	Graphics = "graphics"
	Render   = "render"
)

// Entry describes a single non-fatal problem.
type Entry struct {
	Component string
	Message   string

	// Offset is the byte offset in the input where the problem was found,
	// or -1 if the problem is not tied to a location.  For problems inside
	// attribute values, such as path data, the offset is relative to the
	// start of the value.
	Offset int
}

func (e Entry) String() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %s (offset %d)", e.Component, e.Message, e.Offset)
	}
	return e.Component + ": " + e.Message
}

// Log is a list of diagnostics.
//
// A nil *Log is valid and discards all entries.
type Log struct {
	// Logger, if set, receives a warning for every entry added.
	Logger hclog.Logger

	entries []Entry
}

// New creates a Log which forwards entries to the given logger.
// The logger may be nil.
func New(logger hclog.Logger) *Log {
	return &Log{Logger: logger}
}

// Add records a diagnostic.
func (l *Log) Add(component string, offset int, msg string) {
	if l == nil {
		return
	}
	e := Entry{Component: component, Message: msg, Offset: offset}
	l.entries = append(l.entries, e)

	if l.Logger != nil {
		if offset >= 0 {
			l.Logger.Warn(msg, "component", component, "offset", offset)
		} else {
			l.Logger.Warn(msg, "component", component)
		}
	}
}

// Addf records a diagnostic, using a format string for the message.
func (l *Log) Addf(component string, offset int, format string, args ...any) {
	if l == nil {
		return
	}
	l.Add(component, offset, fmt.Sprintf(format, args...))
}

// Entries returns a copy of all diagnostics recorded so far.
func (l *Log) Entries() []Entry {
	if l == nil || len(l.entries) == 0 {
		return nil
	}
	res := make([]Entry, len(l.entries))
	copy(res, l.entries)
	return res
}

// Len returns the number of diagnostics recorded so far.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Reset discards all recorded diagnostics.
func (l *Log) Reset() {
	if l == nil {
		return
	}
	l.entries = l.entries[:0]
}
