// Package lexer implements the scanner turning C source text into a token
// stream. The lexer never fails a scan: malformed input produces diagnostics
// through the reporter engine plus a best-effort token, and Tokenize always
// terminates the stream with exactly one EOF token.
package lexer

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/minicc/minicc/reporter"
	"github.com/minicc/minicc/token"
)

const category = "lexer"

// Lexer scans a single in-memory source buffer. It is not safe for
// concurrent use.
type Lexer struct {
	src      []byte
	filename string
	engine   *reporter.Engine

	pos       int // byte offset of the next unread byte
	line      int // 1-based
	col       int // 1-based
	lineStart int // offset of the first byte of the current line
}

// New returns a lexer over src. The buffer is copied, so the caller may
// reuse it. filename is used in locations and may be empty. engine must not
// be nil.
func New(src []byte, filename string, engine *reporter.Engine) *Lexer {
	l := &Lexer{
		src:      bytes.Clone(src),
		filename: filename,
		engine:   engine,
	}
	l.Reset()
	return l
}

// NewFromFile reads path eagerly and returns a lexer over its contents.
func NewFromFile(path string, engine *reporter.Engine) (*Lexer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source file: %w", err)
	}
	return New(src, path, engine), nil
}

// Reset rewinds the lexer to the start of the buffer.
func (l *Lexer) Reset() {
	l.pos = 0
	l.line = 1
	l.col = 1
	l.lineStart = 0
}

// Pos returns the current byte offset into the buffer.
func (l *Lexer) Pos() int { return l.pos }

// Engine returns the diagnostics engine the lexer reports through.
func (l *Lexer) Engine() *reporter.Engine { return l.engine }

// Tokenize scans the whole buffer from the current position and returns the
// tokens, ending with exactly one EOF token.
func (l *Lexer) Tokenize() []token.Token {
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() token.Token {
	pos, line, col, lineStart := l.pos, l.line, l.col, l.lineStart
	tok := l.Next()
	l.pos, l.line, l.col, l.lineStart = pos, line, col, lineStart
	return tok
}

// Next scans and returns the next token. At end of input it returns an EOF
// token; repeated calls keep returning EOF.
func (l *Lexer) Next() token.Token {
	l.skipWhitespaceAndComments()

	if l.atEnd() {
		return token.Token{Kind: token.EOF, Loc: l.loc()}
	}

	switch ch := l.cur(); {
	case ch == '#':
		return l.scanDirective()
	case ch == 'L' && (l.peekAt(1) == '\'' || l.peekAt(1) == '"'):
		if l.peekAt(1) == '\'' {
			return l.scanChar()
		}
		return l.scanString()
	case isIdentStart(ch):
		return l.scanIdentifier()
	case isDigit(ch):
		return l.scanNumber()
	case ch == '\'':
		return l.scanChar()
	case ch == '"':
		return l.scanString()
	default:
		return l.scanOperator()
	}
}

// loc returns the location of the next unread byte.
func (l *Lexer) loc() token.Location {
	return token.Location{
		File:   l.filename,
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

// cur returns the next unread byte, or 0 at end of input.
func (l *Lexer) cur() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

// peekAt returns the byte n positions ahead of the next unread byte.
func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

// advance consumes one byte, tracking line and column.
func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
		l.lineStart = l.pos
	} else {
		l.col++
	}
	return ch
}

// match consumes the next byte if it equals ch.
func (l *Lexer) match(ch byte) bool {
	if l.atEnd() || l.cur() != ch {
		return false
	}
	l.advance()
	return true
}

// text returns the lexeme from start to the current position as an owned
// string.
func (l *Lexer) text(start int) string {
	return string(l.src[start:l.pos])
}

// skipWhitespaceAndComments consumes whitespace (including backslash-newline
// line continuations) and both comment forms. An unterminated block comment
// reports a fatal error at its opening delimiter and consumes the rest of
// the buffer.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch ch := l.cur(); {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f':
			l.advance()
		case ch == '\\' && l.peekAt(1) == '\n':
			l.advance()
			l.advance()
		case ch == '/' && l.peekAt(1) == '/':
			for !l.atEnd() && l.cur() != '\n' {
				l.advance()
			}
		case ch == '/' && l.peekAt(1) == '*':
			start := l.loc()
			l.advance()
			l.advance()
			terminated := false
			for !l.atEnd() {
				if l.cur() == '*' && l.peekAt(1) == '/' {
					l.advance()
					l.advance()
					terminated = true
					break
				}
				l.advance()
			}
			if !terminated {
				l.engine.Fatalf(start, category, "unterminated block comment")
			}
		default:
			return
		}
	}
}

// scanDirective scans a whole preprocessor line. The token's text is the
// line verbatim from the '#'; the kind classifies the directive name.
func (l *Lexer) scanDirective() token.Token {
	loc := l.loc()
	start := l.pos
	l.advance() // '#'

	for l.cur() == ' ' || l.cur() == '\t' {
		l.advance()
	}
	nameStart := l.pos
	for isLetter(l.cur()) {
		l.advance()
	}
	kind := token.Hash
	if name := l.text(nameStart); name != "" {
		kind = token.LookupDirective(name)
	}

	sawNewline := false
	for !l.atEnd() {
		if l.cur() == '\\' && l.peekAt(1) == '\n' {
			l.advance()
			l.advance()
			continue
		}
		if l.cur() == '\n' {
			sawNewline = true
			break
		}
		l.advance()
	}
	if !sawNewline && l.atEnd() {
		l.engine.Fatalf(loc, category, "end of file in preprocessor directive")
	}

	return token.Token{
		Kind:  kind,
		Text:  l.text(start),
		Loc:   loc,
		Flags: token.FlagPreprocessor,
	}
}

// scanIdentifier scans an identifier or keyword.
func (l *Lexer) scanIdentifier() token.Token {
	loc := l.loc()
	start := l.pos
	for isIdentPart(l.cur()) {
		l.advance()
	}
	text := l.text(start)
	return token.Token{Kind: token.LookupKeyword(text), Text: text, Loc: loc}
}

// scanNumber scans an integer or float literal. Base prefixes 0x/0X (hex),
// 0b/0B (binary), and a leading 0 before another digit (octal) are
// recognized; a radix-10 number followed by '.', 'e', or 'E' is rescanned as
// a float. Malformed numbers report a recoverable error and yield a token
// with a zero value.
func (l *Lexer) scanNumber() token.Token {
	loc := l.loc()
	start := l.pos

	base := 10
	if l.cur() == '0' {
		switch next := l.peekAt(1); {
		case next == 'x' || next == 'X':
			base = 16
			l.advance()
			l.advance()
		case next == 'b' || next == 'B':
			base = 2
			l.advance()
			l.advance()
		case isDigit(next):
			base = 8
			l.advance()
		}
	}

	if base == 10 && l.looksLikeFloat() {
		return l.scanFloat(loc, start)
	}

	digitsStart := l.pos
	for isBaseDigit(l.cur(), base) {
		l.advance()
	}
	digits := l.text(digitsStart)

	for {
		ch := l.cur()
		if ch == 'u' || ch == 'U' || ch == 'l' || ch == 'L' {
			l.advance()
			continue
		}
		break
	}

	text := l.text(start)
	tok := token.Token{Kind: token.IntLit, Text: text, Loc: loc, Base: base}
	if digits == "" {
		l.engine.Errorf(loc, category, "invalid integer literal %q", text)
		return tok
	}
	val, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		l.engine.Errorf(loc, category, "invalid integer literal %q: %v", text, err)
		return tok
	}
	tok.HasValue = true
	tok.IntValue = val
	return tok
}

// looksLikeFloat looks past the pending decimal digits for '.', 'e', or 'E'.
func (l *Lexer) looksLikeFloat() bool {
	i := l.pos
	for i < len(l.src) && isDigit(l.src[i]) {
		i++
	}
	if i >= len(l.src) {
		return false
	}
	ch := l.src[i]
	return ch == '.' || ch == 'e' || ch == 'E'
}

// scanFloat scans the fractional and exponent parts plus an optional f/F/l/L
// suffix.
func (l *Lexer) scanFloat(loc token.Location, start int) token.Token {
	for isDigit(l.cur()) {
		l.advance()
	}
	if l.cur() == '.' {
		l.advance()
		for isDigit(l.cur()) {
			l.advance()
		}
	}
	if l.cur() == 'e' || l.cur() == 'E' {
		l.advance()
		if l.cur() == '+' || l.cur() == '-' {
			l.advance()
		}
		for isDigit(l.cur()) {
			l.advance()
		}
	}
	numEnd := l.pos
	if ch := l.cur(); ch == 'f' || ch == 'F' || ch == 'l' || ch == 'L' {
		l.advance()
	}

	text := l.text(start)
	tok := token.Token{Kind: token.FloatLit, Text: text, Loc: loc, Base: 10}
	val, err := strconv.ParseFloat(string(l.src[start:numEnd]), 64)
	if err != nil {
		l.engine.Errorf(loc, category, "invalid float literal %q", text)
		return tok
	}
	tok.HasValue = true
	tok.FloatValue = val
	return tok
}

// scanChar scans a character literal, optionally L-prefixed.
func (l *Lexer) scanChar() token.Token {
	loc := l.loc()
	start := l.pos

	var flags token.Flags
	if l.cur() == 'L' {
		flags |= token.FlagWide
		l.advance()
	}
	l.advance() // opening quote

	tok := token.Token{Kind: token.CharLit, Loc: loc, Flags: flags}
	if l.atEnd() || l.cur() == '\n' {
		l.engine.Fatalf(loc, category, "unterminated character literal")
		tok.Text = l.text(start)
		return tok
	}

	var value byte
	if l.cur() == '\\' {
		escaped := false
		value, escaped = l.scanEscape()
		if escaped {
			tok.Flags |= token.FlagHasEscape
		}
	} else {
		value = l.advance()
	}

	if !l.match('\'') {
		l.engine.Fatalf(loc, category, "unterminated character literal")
		tok.Text = l.text(start)
		return tok
	}

	tok.Text = l.text(start)
	tok.HasValue = true
	tok.CharValue = value
	return tok
}

// scanString scans a string literal, optionally L-prefixed, decoding escapes
// into the token's string value. The literal cannot span lines.
func (l *Lexer) scanString() token.Token {
	loc := l.loc()
	start := l.pos

	var flags token.Flags
	if l.cur() == 'L' {
		flags |= token.FlagWide
		l.advance()
	}
	l.advance() // opening quote

	var buf bytes.Buffer
	closed := false
	for !l.atEnd() {
		ch := l.cur()
		if ch == '"' {
			l.advance()
			closed = true
			break
		}
		if ch == '\n' {
			break
		}
		if ch == '\\' {
			value, escaped := l.scanEscape()
			if escaped {
				flags |= token.FlagHasEscape
			}
			buf.WriteByte(value)
			continue
		}
		buf.WriteByte(l.advance())
	}
	if !closed {
		l.engine.Fatalf(loc, category, "unterminated string literal")
	}

	return token.Token{
		Kind:     token.StringLit,
		Text:     l.text(start),
		Loc:      loc,
		HasValue: true,
		StrValue: buf.String(),
		Flags:    flags,
	}
}

// scanEscape decodes one escape sequence after the backslash. Octal escapes
// take up to three digits, hex escapes up to two; \u and \U consume their
// hex digits but decode to a '?' placeholder. An unknown escape reports a
// recoverable error and yields the escaped byte literally. The second result
// reports whether a well-formed escape was decoded.
func (l *Lexer) scanEscape() (byte, bool) {
	loc := l.loc()
	l.advance() // backslash
	if l.atEnd() {
		l.engine.Errorf(loc, category, "incomplete escape sequence")
		return '\\', false
	}

	ch := l.advance()
	switch ch {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case 'a':
		return 7, true
	case 'b':
		return 8, true
	case 'f':
		return '\f', true
	case 'v':
		return '\v', true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	case '?':
		return '?', true
	case 'x':
		var value byte
		n := 0
		for n < 2 && isHexDigit(l.cur()) {
			value = value<<4 | hexValue(l.advance())
			n++
		}
		if n == 0 {
			l.engine.Errorf(loc, category, "\\x used with no following hex digits")
			return 'x', false
		}
		return value, true
	case 'u', 'U':
		// Universal character names are consumed but not representable in a
		// byte; they decode to a placeholder.
		digits := 4
		if ch == 'U' {
			digits = 8
		}
		for n := 0; n < digits && isHexDigit(l.cur()); n++ {
			l.advance()
		}
		return '?', true
	}

	if ch >= '0' && ch <= '7' {
		value := ch - '0'
		for n := 1; n < 3 && l.cur() >= '0' && l.cur() <= '7'; n++ {
			value = value<<3 | (l.advance() - '0')
		}
		return value, true
	}

	l.engine.Errorf(loc, category, "unknown escape sequence '\\%c'", ch)
	return ch, false
}

// scanOperator scans operators and punctuation by greedy longest match. An
// unrecognized byte yields an Unknown token and a recoverable error.
func (l *Lexer) scanOperator() token.Token {
	loc := l.loc()
	start := l.pos
	ch := l.advance()

	kind := token.Unknown
	switch ch {
	case '+':
		kind = token.Plus
		if l.match('+') {
			kind = token.Inc
		} else if l.match('=') {
			kind = token.PlusAssign
		}
	case '-':
		kind = token.Minus
		if l.match('-') {
			kind = token.Dec
		} else if l.match('=') {
			kind = token.MinusAssign
		} else if l.match('>') {
			kind = token.Arrow
		}
	case '*':
		kind = token.Star
		if l.match('=') {
			kind = token.StarAssign
		}
	case '/':
		kind = token.Slash
		if l.match('=') {
			kind = token.SlashAssign
		}
	case '%':
		kind = token.Percent
		if l.match('=') {
			kind = token.PercentAssign
		}
	case '=':
		kind = token.Assign
		if l.match('=') {
			kind = token.Eq
		}
	case '!':
		kind = token.Not
		if l.match('=') {
			kind = token.Ne
		}
	case '<':
		kind = token.Lt
		if l.match('=') {
			kind = token.Le
		} else if l.match('<') {
			kind = token.Shl
			if l.match('=') {
				kind = token.ShlAssign
			}
		}
	case '>':
		kind = token.Gt
		if l.match('=') {
			kind = token.Ge
		} else if l.match('>') {
			kind = token.Shr
			if l.match('=') {
				kind = token.ShrAssign
			}
		}
	case '&':
		kind = token.Amp
		if l.match('&') {
			kind = token.LogicalAnd
		} else if l.match('=') {
			kind = token.AndAssign
		}
	case '|':
		kind = token.Pipe
		if l.match('|') {
			kind = token.LogicalOr
		} else if l.match('=') {
			kind = token.OrAssign
		}
	case '^':
		kind = token.Caret
		if l.match('=') {
			kind = token.XorAssign
		}
	case '~':
		kind = token.Tilde
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case ':':
		kind = token.Colon
	case '?':
		kind = token.Question
	case '.':
		kind = token.Dot
		if l.cur() == '.' && l.peekAt(1) == '.' {
			l.advance()
			l.advance()
			kind = token.Ellipsis
		}
	default:
		l.engine.Errorf(loc, category, "invalid character %q", ch)
	}

	return token.Token{Kind: kind, Text: l.text(start), Loc: loc}
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

func hexValue(ch byte) byte {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	default:
		return ch - 'A' + 10
	}
}

func isBaseDigit(ch byte, base int) bool {
	switch base {
	case 2:
		return ch == '0' || ch == '1'
	case 8:
		return ch >= '0' && ch <= '7'
	case 16:
		return isHexDigit(ch)
	default:
		return isDigit(ch)
	}
}
