// Package token defines the lexical tokens of the C subset handled by this
// front end: the Kind enumeration, the Token value type, and source Locations.
package token

// Kind identifies the lexical class of a token.
type Kind uint8

const (
	// Special tokens
	Unknown Kind = iota
	EOF

	Identifier

	// Keywords
	keywordStart
	KwAuto
	KwBreak
	KwCase
	KwChar
	KwConst
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtern
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwInt
	KwLong
	KwRegister
	KwReturn
	KwShort
	KwSigned
	KwSizeof
	KwStatic
	KwStruct
	KwSwitch
	KwTypedef
	KwUnion
	KwUnsigned
	KwVoid
	KwVolatile
	KwWhile
	// C11 keywords. The underscore spellings (_Alignas etc.) map onto the
	// same kinds as their <stdalign.h>-style lowercase forms.
	KwAlignas
	KwAlignof
	KwAtomic
	KwBool
	KwComplex
	KwGeneric
	KwImaginary
	KwInline
	KwNoreturn
	KwRestrict
	KwStaticAssert
	KwThreadLocal
	keywordEnd

	// Literals
	literalStart
	IntLit
	FloatLit
	CharLit
	StringLit
	literalEnd

	// Operators
	operatorStart
	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %

	assignStart
	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	ShlAssign     // <<=
	ShrAssign     // >>=
	AndAssign     // &=
	OrAssign      // |=
	XorAssign     // ^=
	assignEnd

	Eq // ==
	Ne // !=
	Lt // <
	Le // <=
	Gt // >
	Ge // >=

	LogicalAnd // &&
	LogicalOr  // ||
	Not        // !

	Amp   // &
	Pipe  // |
	Caret // ^
	Tilde // ~
	Shl   // <<
	Shr   // >>

	Inc // ++
	Dec // --
	operatorEnd

	// Punctuation
	punctStart
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Semicolon // ;
	Comma     // ,
	Dot       // .
	Arrow     // ->
	Colon     // :
	Question  // ?
	Ellipsis  // ...
	punctEnd

	// Preprocessor directives. Each token covers the whole directive line.
	directiveStart
	Hash // # followed by an unrecognized (or absent) directive name
	HashDefine
	HashUndef
	HashInclude
	HashIf
	HashIfdef
	HashIfndef
	HashElif
	HashElse
	HashEndif
	HashLine
	HashError
	HashPragma
	HashWarning
	directiveEnd
)

// IsKeyword reports whether k is a C keyword.
func (k Kind) IsKeyword() bool {
	return k > keywordStart && k < keywordEnd
}

// IsLiteral reports whether k is an integer, float, character, or string
// literal.
func (k Kind) IsLiteral() bool {
	return k > literalStart && k < literalEnd
}

// IsOperator reports whether k is an operator.
func (k Kind) IsOperator() bool {
	return k > operatorStart && k < operatorEnd
}

// IsAssignment reports whether k is an assignment operator, simple or
// compound.
func (k Kind) IsAssignment() bool {
	return k > assignStart && k < assignEnd
}

// IsPunctuation reports whether k is a punctuator.
func (k Kind) IsPunctuation() bool {
	return k > punctStart && k < punctEnd
}

// IsDirective reports whether k is a preprocessor directive line.
func (k Kind) IsDirective() bool {
	return k > directiveStart && k < directiveEnd
}

var kindNames = map[Kind]string{
	Unknown:    "unknown",
	EOF:        "eof",
	Identifier: "identifier",

	KwAuto:         "auto",
	KwBreak:        "break",
	KwCase:         "case",
	KwChar:         "char",
	KwConst:        "const",
	KwContinue:     "continue",
	KwDefault:      "default",
	KwDo:           "do",
	KwDouble:       "double",
	KwElse:         "else",
	KwEnum:         "enum",
	KwExtern:       "extern",
	KwFloat:        "float",
	KwFor:          "for",
	KwGoto:         "goto",
	KwIf:           "if",
	KwInt:          "int",
	KwLong:         "long",
	KwRegister:     "register",
	KwReturn:       "return",
	KwShort:        "short",
	KwSigned:       "signed",
	KwSizeof:       "sizeof",
	KwStatic:       "static",
	KwStruct:       "struct",
	KwSwitch:       "switch",
	KwTypedef:      "typedef",
	KwUnion:        "union",
	KwUnsigned:     "unsigned",
	KwVoid:         "void",
	KwVolatile:     "volatile",
	KwWhile:        "while",
	KwAlignas:      "alignas",
	KwAlignof:      "alignof",
	KwAtomic:       "atomic",
	KwBool:         "bool",
	KwComplex:      "complex",
	KwGeneric:      "generic",
	KwImaginary:    "imaginary",
	KwInline:       "inline",
	KwNoreturn:     "noreturn",
	KwRestrict:     "restrict",
	KwStaticAssert: "static_assert",
	KwThreadLocal:  "thread_local",

	IntLit:    "integer literal",
	FloatLit:  "float literal",
	CharLit:   "char literal",
	StringLit: "string literal",

	Plus:    "+",
	Minus:   "-",
	Star:    "*",
	Slash:   "/",
	Percent: "%",

	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	ShlAssign:     "<<=",
	ShrAssign:     ">>=",
	AndAssign:     "&=",
	OrAssign:      "|=",
	XorAssign:     "^=",

	Eq: "==",
	Ne: "!=",
	Lt: "<",
	Le: "<=",
	Gt: ">",
	Ge: ">=",

	LogicalAnd: "&&",
	LogicalOr:  "||",
	Not:        "!",

	Amp:   "&",
	Pipe:  "|",
	Caret: "^",
	Tilde: "~",
	Shl:   "<<",
	Shr:   ">>",

	Inc: "++",
	Dec: "--",

	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	LBracket:  "[",
	RBracket:  "]",
	Semicolon: ";",
	Comma:     ",",
	Dot:       ".",
	Arrow:     "->",
	Colon:     ":",
	Question:  "?",
	Ellipsis:  "...",

	Hash:        "#",
	HashDefine:  "#define",
	HashUndef:   "#undef",
	HashInclude: "#include",
	HashIf:      "#if",
	HashIfdef:   "#ifdef",
	HashIfndef:  "#ifndef",
	HashElif:    "#elif",
	HashElse:    "#else",
	HashEndif:   "#endif",
	HashLine:    "#line",
	HashError:   "#error",
	HashPragma:  "#pragma",
	HashWarning: "#warning",
}

// String returns the canonical spelling of k: the keyword or operator text
// where one exists, a descriptive name otherwise.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// keywords maps every recognized keyword spelling to its kind. The C11
// underscore forms share a kind with their lowercase spellings.
var keywords = map[string]Kind{
	"auto":     KwAuto,
	"break":    KwBreak,
	"case":     KwCase,
	"char":     KwChar,
	"const":    KwConst,
	"continue": KwContinue,
	"default":  KwDefault,
	"do":       KwDo,
	"double":   KwDouble,
	"else":     KwElse,
	"enum":     KwEnum,
	"extern":   KwExtern,
	"float":    KwFloat,
	"for":      KwFor,
	"goto":     KwGoto,
	"if":       KwIf,
	"int":      KwInt,
	"long":     KwLong,
	"register": KwRegister,
	"return":   KwReturn,
	"short":    KwShort,
	"signed":   KwSigned,
	"sizeof":   KwSizeof,
	"static":   KwStatic,
	"struct":   KwStruct,
	"switch":   KwSwitch,
	"typedef":  KwTypedef,
	"union":    KwUnion,
	"unsigned": KwUnsigned,
	"void":     KwVoid,
	"volatile": KwVolatile,
	"while":    KwWhile,

	"inline":   KwInline,
	"restrict": KwRestrict,

	"_Alignas":       KwAlignas,
	"alignas":        KwAlignas,
	"_Alignof":       KwAlignof,
	"alignof":        KwAlignof,
	"_Atomic":        KwAtomic,
	"_Bool":          KwBool,
	"bool":           KwBool,
	"_Complex":       KwComplex,
	"complex":        KwComplex,
	"_Generic":       KwGeneric,
	"_Imaginary":     KwImaginary,
	"imaginary":      KwImaginary,
	"_Noreturn":      KwNoreturn,
	"noreturn":       KwNoreturn,
	"_Static_assert": KwStaticAssert,
	"static_assert":  KwStaticAssert,
	"_Thread_local":  KwThreadLocal,
	"thread_local":   KwThreadLocal,
}

// directives maps preprocessor directive names (without the '#') to their
// kinds.
var directives = map[string]Kind{
	"define":  HashDefine,
	"undef":   HashUndef,
	"include": HashInclude,
	"if":      HashIf,
	"ifdef":   HashIfdef,
	"ifndef":  HashIfndef,
	"elif":    HashElif,
	"else":    HashElse,
	"endif":   HashEndif,
	"line":    HashLine,
	"error":   HashError,
	"pragma":  HashPragma,
	"warning": HashWarning,
}

// LookupKeyword returns the keyword kind for name, or Identifier if name is
// not a keyword.
func LookupKeyword(name string) Kind {
	if k, ok := keywords[name]; ok {
		return k
	}
	return Identifier
}

// LookupDirective returns the directive kind for name (without the leading
// '#'), or Hash if the directive is not recognized.
func LookupDirective(name string) Kind {
	if k, ok := directives[name]; ok {
		return k
	}
	return Hash
}
