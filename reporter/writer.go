package reporter

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rivo/uniseg"
)

// Writer is a Consumer that renders diagnostics as text, one per line, in
// the usual compiler format:
//
//	main.c:3:7: error: [lexer] unterminated string literal
//
// With color enabled the severity word is colored by level.
type Writer struct {
	out    io.Writer
	colors bool
}

// NewWriter returns a Writer printing plain text to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WithColors enables or disables colored severity prefixes and returns w.
func (w *Writer) WithColors(enabled bool) *Writer {
	w.colors = enabled
	return w
}

var levelColors = map[Level]*color.Color{
	Note:    color.New(color.FgCyan),
	Warning: color.New(color.FgYellow),
	Error:   color.New(color.FgRed),
	Fatal:   color.New(color.FgRed, color.Bold),
}

// Consume writes d to the underlying writer.
func (w *Writer) Consume(d Diagnostic) {
	level := d.Level.String()
	if w.colors {
		if c, ok := levelColors[d.Level]; ok {
			level = c.Sprint(level)
		}
	}
	if d.Category == "" {
		fmt.Fprintf(w.out, "%s: %s: %s\n", d.Loc, level, d.Message)
		return
	}
	fmt.Fprintf(w.out, "%s: %s: [%s] %s\n", d.Loc, level, d.Category, d.Message)
}

// Snippets wraps another Consumer and follows each diagnostic that has a
// registered source buffer with the offending line and a caret under the
// offending column:
//
//	main.c:1:9: error: [lexer] invalid character '@'
//	  int x = @;
//	          ^
//
// Caret alignment is grapheme-aware, so wide characters in the line prefix
// still line the caret up in a terminal.
type Snippets struct {
	next    Consumer
	out     io.Writer
	sources map[string][]byte
}

// NewSnippets returns a Snippets consumer forwarding to next and writing
// source excerpts to out.
func NewSnippets(next Consumer, out io.Writer) *Snippets {
	return &Snippets{
		next:    next,
		out:     out,
		sources: make(map[string][]byte),
	}
}

// AddSource registers the source buffer for filename. Diagnostics whose
// location names an unregistered file are forwarded without an excerpt.
func (s *Snippets) AddSource(filename string, src []byte) {
	s.sources[filename] = src
}

// Consume forwards d and, when possible, renders its source line.
func (s *Snippets) Consume(d Diagnostic) {
	if s.next != nil {
		s.next.Consume(d)
	}
	src, ok := s.sources[d.Loc.File]
	if !ok || d.Loc.Line <= 0 || d.Loc.Column <= 0 {
		return
	}
	line, ok := extractLine(src, d.Loc.Line)
	if !ok {
		return
	}
	prefix := line
	if d.Loc.Column-1 < len(line) {
		prefix = line[:d.Loc.Column-1]
	}
	pad := uniseg.StringWidth(strings.ReplaceAll(string(prefix), "\t", "    "))
	fmt.Fprintf(s.out, "  %s\n", strings.ReplaceAll(string(line), "\t", "    "))
	fmt.Fprintf(s.out, "  %s^\n", strings.Repeat(" ", pad))
}

// extractLine returns the 1-based line'th line of src without its
// terminating newline.
func extractLine(src []byte, line int) ([]byte, bool) {
	start := 0
	for n := 1; n < line; n++ {
		i := bytes.IndexByte(src[start:], '\n')
		if i < 0 {
			return nil, false
		}
		start += i + 1
	}
	end := len(src)
	if i := bytes.IndexByte(src[start:], '\n'); i >= 0 {
		end = start + i
	}
	lineBytes := src[start:end]
	if n := len(lineBytes); n > 0 && lineBytes[n-1] == '\r' {
		lineBytes = lineBytes[:n-1]
	}
	return lineBytes, true
}
