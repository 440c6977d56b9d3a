package render

import (
	"fmt"
	"strings"
)

// Writer builds indented diagram text line by line.
type Writer struct {
	buf    strings.Builder
	unit   string
	indent int
}

// NewWriter returns a Writer that indents nested lines by unit.
func NewWriter(unit string) *Writer {
	return &Writer{unit: unit}
}

// Line writes one formatted line at the current indentation.
// Empty lines carry no indentation.
func (w *Writer) Line(format string, args ...any) {
	if format == "" {
		w.buf.WriteByte('\n')
		return
	}
	for range w.indent {
		w.buf.WriteString(w.unit)
	}
	if len(args) == 0 {
		w.buf.WriteString(format)
	} else {
		fmt.Fprintf(&w.buf, format, args...)
	}
	w.buf.WriteByte('\n')
}

// Raw writes s followed by a newline, ignoring indentation.
func (w *Writer) Raw(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

// Open writes a line and indents everything after it.
func (w *Writer) Open(format string, args ...any) {
	w.Line(format, args...)
	w.indent++
}

// Close dedents and writes a closing line.
func (w *Writer) Close(line string) {
	if w.indent > 0 {
		w.indent--
	}
	w.Line(line)
}

// Indent runs fn one level deeper.
func (w *Writer) Indent(fn func()) {
	w.indent++
	fn()
	w.indent--
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

// String returns the text written so far.
func (w *Writer) String() string { return w.buf.String() }
