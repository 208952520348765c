package reporter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minicc/minicc/token"
)

func loc(line, col int) token.Location {
	return token.Location{File: "main.c", Line: line, Column: col}
}

func TestEngineCounts(t *testing.T) {
	t.Parallel()
	coll := &Collector{}
	e := NewEngine(coll)

	e.Notef(loc(1, 1), "lexer", "just saying")
	e.Warningf(loc(2, 1), "lexer", "odd but fine")
	e.Errorf(loc(3, 1), "lexer", "bad input")
	e.Errorf(loc(4, 1), "lexer", "more bad input")

	assert.Equal(t, 2, e.ErrorCount())
	assert.Equal(t, 1, e.WarningCount())
	assert.True(t, e.HasErrors())
	assert.False(t, e.FatalOccurred())
	assert.Len(t, coll.Diagnostics, 4, "notes are forwarded but not counted")
}

func TestFatalLatches(t *testing.T) {
	t.Parallel()
	e := NewEngine(nil)
	e.Fatalf(loc(1, 1), "lexer", "cannot continue")

	assert.True(t, e.FatalOccurred())
	assert.True(t, e.HasErrors())
	assert.Equal(t, 1, e.ErrorCount(), "fatal counts as an error")

	e.Errorf(loc(2, 1), "lexer", "later")
	assert.True(t, e.FatalOccurred(), "the latch stays set")

	e.Reset()
	assert.False(t, e.FatalOccurred())
	assert.False(t, e.HasErrors())
	assert.Equal(t, 0, e.ErrorCount())
	assert.Equal(t, 0, e.WarningCount())
}

func TestSuppression(t *testing.T) {
	t.Parallel()
	coll := &Collector{}
	e := NewEngine(coll)

	e.SuppressWarnings(true)
	e.Warningf(loc(1, 1), "lexer", "hidden")
	assert.Equal(t, 0, e.WarningCount())
	assert.Empty(t, coll.Diagnostics, "suppressed diagnostics are not forwarded")

	e.SuppressErrors(true)
	e.Errorf(loc(2, 1), "lexer", "hidden too")
	assert.Equal(t, 0, e.ErrorCount())

	e.Fatalf(loc(3, 1), "lexer", "never suppressed")
	assert.Equal(t, 1, e.ErrorCount())
	assert.True(t, e.FatalOccurred())
	assert.Len(t, coll.Diagnostics, 1)

	e.SuppressWarnings(false)
	e.SuppressErrors(false)
	e.Warningf(loc(4, 1), "lexer", "visible again")
	e.Errorf(loc(5, 1), "lexer", "visible again")
	assert.Equal(t, 1, e.WarningCount())
	assert.Equal(t, 2, e.ErrorCount())
}

func TestCollectorByLevel(t *testing.T) {
	t.Parallel()
	coll := &Collector{}
	e := NewEngine(coll)
	e.Warningf(loc(1, 1), "lexer", "w1")
	e.Errorf(loc(2, 1), "lexer", "e1")
	e.Warningf(loc(3, 1), "lexer", "w2")

	warnings := coll.ByLevel(Warning)
	require.Len(t, warnings, 2)
	assert.Equal(t, "w1", warnings[0].Message)
	assert.Equal(t, "w2", warnings[1].Message)
	assert.Empty(t, coll.ByLevel(Fatal))
}

func TestLevelString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "note", Note.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "fatal error", Fatal.String())
}

func TestDiagnosticString(t *testing.T) {
	t.Parallel()
	d := Diagnostic{Level: Error, Loc: loc(3, 7), Category: "lexer", Message: "bad byte"}
	assert.Equal(t, "main.c:3:7: error: [lexer] bad byte", d.String())

	plain := Diagnostic{Level: Warning, Loc: loc(1, 1), Message: "hm"}
	assert.Equal(t, "main.c:1:1: warning: hm", plain.String())
}

func TestWriterPlainOutput(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	e := NewEngine(NewWriter(&buf))

	e.Errorf(loc(3, 7), "lexer", "unterminated string literal")
	e.Warningf(loc(4, 1), "", "no category")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "main.c:3:7: error: [lexer] unterminated string literal", lines[0])
	assert.Equal(t, "main.c:4:1: warning: no category", lines[1])
}

func TestSnippetsRendersCaret(t *testing.T) {
	t.Parallel()
	src := []byte("int main(void) {\n\tint x = @;\n}\n")
	var out bytes.Buffer
	coll := &Collector{}
	s := NewSnippets(coll, &out)
	s.AddSource("main.c", src)

	e := NewEngine(s)
	e.Errorf(token.Location{File: "main.c", Line: 2, Column: 10}, "lexer", "invalid character '@'")

	require.Len(t, coll.Diagnostics, 1, "the wrapped consumer still sees the diagnostic")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "      int x = @;", lines[0], "tabs are expanded for alignment")
	caret := strings.Index(lines[1], "^")
	at := strings.Index(lines[0], "@")
	assert.Equal(t, at, caret, "the caret sits under the offending column")
}

func TestSnippetsUnknownFile(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	coll := &Collector{}
	s := NewSnippets(coll, &out)

	e := NewEngine(s)
	e.Errorf(loc(1, 1), "lexer", "whatever")
	assert.Len(t, coll.Diagnostics, 1)
	assert.Empty(t, out.String(), "no excerpt without a registered source")
}

func TestErrorWithLocation(t *testing.T) {
	t.Parallel()
	underlying := errors.New("boom")
	err := WrapError(loc(2, 5), underlying)
	require.NotNil(t, err)
	assert.Equal(t, loc(2, 5), err.Location())
	assert.ErrorIs(t, err, underlying)
	assert.Equal(t, "main.c:2:5: boom", err.Error())

	assert.Nil(t, WrapError(loc(1, 1), nil))
	assert.Same(t, err, WrapError(loc(2, 5), err), "double wrapping at the same location is a no-op")

	formatted := Errorf(loc(3, 1), "unexpected %q", "@")
	assert.Contains(t, formatted.Error(), `unexpected "@"`)
	assert.Equal(t, loc(3, 1), formatted.Location())
}
