package pysrc

import (
	"fmt"
	"strings"
)

const indentUnit = "    "

// Writer accumulates Python source with indentation tracking.
type Writer struct {
	buf   strings.Builder
	depth int
}

// NewWriter creates an empty writer at indentation depth zero.
func NewWriter() *Writer {
	return &Writer{}
}

// Line writes one line at the current depth. The text is written as is.
func (w *Writer) Line(line string) *Writer {
	if line == "" {
		w.buf.WriteByte('\n')
		return w
	}
	w.buf.WriteString(strings.Repeat(indentUnit, w.depth))
	w.buf.WriteString(line)
	w.buf.WriteByte('\n')
	return w
}

// Linef writes one formatted line at the current depth.
func (w *Writer) Linef(format string, args ...any) *Writer {
	return w.Line(fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (w *Writer) Blank() *Writer {
	w.buf.WriteByte('\n')
	return w
}

// Comment writes a "# ..." line.
func (w *Writer) Comment(text string) *Writer {
	return w.Line("# " + text)
}

// Commentf writes a formatted "# ..." line.
func (w *Writer) Commentf(format string, args ...any) *Writer {
	return w.Comment(fmt.Sprintf(format, args...))
}

// Raw writes a multi-line fragment, re-indenting every non-empty line.
func (w *Writer) Raw(fragment string) *Writer {
	fragment = strings.TrimRight(fragment, "\n")
	for _, line := range strings.Split(fragment, "\n") {
		if strings.TrimSpace(line) == "" {
			w.Blank()
			continue
		}
		w.buf.WriteString(strings.Repeat(indentUnit, w.depth))
		w.buf.WriteString(line)
		w.buf.WriteByte('\n')
	}
	return w
}

// Indent increases the depth by one level.
func (w *Writer) Indent() *Writer {
	w.depth++
	return w
}

// Dedent decreases the depth by one level.
func (w *Writer) Dedent() *Writer {
	if w.depth > 0 {
		w.depth--
	}
	return w
}

// Block writes header (which must end with a colon) and runs body one level deeper.
// An empty body gets a "pass" statement.
func (w *Writer) Block(header string, body func()) *Writer {
	w.Line(header)
	w.Indent()
	before := w.buf.Len()
	body()
	if w.buf.Len() == before {
		w.Line("pass")
	}
	w.Dedent()
	return w
}

// Section writes a banner comment that separates program phases.
func (w *Writer) Section(title string) *Writer {
	bar := strings.Repeat("=", 76)
	return w.Blank().Comment(bar).Comment(title).Comment(bar)
}

// Depth returns the current indentation level.
func (w *Writer) Depth() int {
	return w.depth
}

// String returns the accumulated source.
func (w *Writer) String() string {
	return w.buf.String()
}
