package token

import "fmt"

// Flags carries boolean properties of a token.
type Flags uint8

const (
	// FlagHasEscape marks a char or string literal whose text contained at
	// least one escape sequence.
	FlagHasEscape Flags = 1 << iota
	// FlagWide marks a char or string literal written with the L prefix.
	FlagWide
	// FlagPreprocessor marks a preprocessor directive token.
	FlagPreprocessor
)

// Has reports whether all bits of f are set in fl.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// Token is a single lexical token. Text is the raw lexeme exactly as it
// appeared in the source (escapes un-decoded, directive lines verbatim); the
// decoded value, if any, lives in the value fields selected by Kind:
// IntValue/Base for IntLit, FloatValue for FloatLit, CharValue for CharLit,
// and StrValue for StringLit. HasValue reports whether a value was decoded.
//
// EOF tokens carry empty Text and no value. Every other token produced by the
// lexer has non-empty Text.
type Token struct {
	Kind Kind
	Text string
	Loc  Location

	HasValue   bool
	IntValue   int64
	Base       int
	FloatValue float64
	CharValue  byte
	StrValue   string

	Flags Flags
}

// IsEOF reports whether the token marks the end of input.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

// String returns a debug rendering of the token.
func (t Token) String() string {
	switch {
	case t.Kind == EOF:
		return fmt.Sprintf("<eof @ %s>", t.Loc)
	case t.Kind == IntLit && t.HasValue:
		return fmt.Sprintf("<%s %q = %d (base %d) @ %s>", t.Kind, t.Text, t.IntValue, t.Base, t.Loc)
	case t.Kind == FloatLit && t.HasValue:
		return fmt.Sprintf("<%s %q = %g @ %s>", t.Kind, t.Text, t.FloatValue, t.Loc)
	case t.Kind == CharLit && t.HasValue:
		return fmt.Sprintf("<%s %q = %q @ %s>", t.Kind, t.Text, t.CharValue, t.Loc)
	case t.Kind == StringLit && t.HasValue:
		return fmt.Sprintf("<%s %q = %q @ %s>", t.Kind, t.Text, t.StrValue, t.Loc)
	default:
		return fmt.Sprintf("<%s %q @ %s>", t.Kind, t.Text, t.Loc)
	}
}
