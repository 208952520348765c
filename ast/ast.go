// Package ast defines the syntax tree for the C subset handled by this
// front end: the node variants, factory constructors, a visitor protocol
// with depth-first and breadth-first drivers, tree introspection utilities,
// and a validated Builder façade.
//
// Ownership follows a single-parent discipline: every node is owned by at
// most one parent, and factories stamp the child-to-parent back-reference at
// construction. Type specifiers are the exception — a node holding a
// TypeSpec (a declaration's type, a pointer's element type, a cast's target)
// borrows it from whatever owns the type, so factories never reparent a
// TypeSpec reference and traversal never descends into one. The one owned
// edge below a TypeSpec is an ArrayType's size expression.
package ast

import "github.com/minicc/minicc/token"

// Kind identifies a node variant.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindTranslationUnit

	exprStart
	KindLiteralExpr
	KindIdentifierExpr
	KindBinaryExpr
	KindUnaryExpr
	KindAssignExpr
	KindTernaryExpr
	KindCallExpr
	KindIndexExpr
	KindMemberExpr
	KindCastExpr
	exprEnd

	stmtStart
	KindExprStmt
	KindCompoundStmt
	KindIfStmt
	KindWhileStmt
	KindDoWhileStmt
	KindForStmt
	KindReturnStmt
	KindBreakStmt
	KindContinueStmt
	KindSwitchStmt
	KindCaseStmt
	KindLabeledStmt
	KindGotoStmt
	stmtEnd

	declStart
	KindVarDecl
	KindFuncDecl
	KindStructDecl
	KindUnionDecl
	KindEnumDecl
	KindTypedefDecl
	declEnd

	typeStart
	KindBasicType
	KindPointerType
	KindArrayType
	KindFuncType
	KindStructType
	KindUnionType
	KindEnumType
	KindTypedefName
	typeEnd
)

var kindNames = [...]string{
	KindInvalid:         "Invalid",
	KindTranslationUnit: "TranslationUnit",
	KindLiteralExpr:     "LiteralExpr",
	KindIdentifierExpr:  "IdentifierExpr",
	KindBinaryExpr:      "BinaryExpr",
	KindUnaryExpr:       "UnaryExpr",
	KindAssignExpr:      "AssignExpr",
	KindTernaryExpr:     "TernaryExpr",
	KindCallExpr:        "CallExpr",
	KindIndexExpr:       "IndexExpr",
	KindMemberExpr:      "MemberExpr",
	KindCastExpr:        "CastExpr",
	KindExprStmt:        "ExprStmt",
	KindCompoundStmt:    "CompoundStmt",
	KindIfStmt:          "IfStmt",
	KindWhileStmt:       "WhileStmt",
	KindDoWhileStmt:     "DoWhileStmt",
	KindForStmt:         "ForStmt",
	KindReturnStmt:      "ReturnStmt",
	KindBreakStmt:       "BreakStmt",
	KindContinueStmt:    "ContinueStmt",
	KindSwitchStmt:      "SwitchStmt",
	KindCaseStmt:        "CaseStmt",
	KindLabeledStmt:     "LabeledStmt",
	KindGotoStmt:        "GotoStmt",
	KindVarDecl:         "VarDecl",
	KindFuncDecl:        "FuncDecl",
	KindStructDecl:      "StructDecl",
	KindUnionDecl:       "UnionDecl",
	KindEnumDecl:        "EnumDecl",
	KindTypedefDecl:     "TypedefDecl",
	KindBasicType:       "BasicType",
	KindPointerType:     "PointerType",
	KindArrayType:       "ArrayType",
	KindFuncType:        "FuncType",
	KindStructType:      "StructType",
	KindUnionType:       "UnionType",
	KindEnumType:        "EnumType",
	KindTypedefName:     "TypedefName",
}

// String returns the variant name, e.g. "BinaryExpr".
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Invalid"
}

// IsExpr reports whether k is an expression variant.
func (k Kind) IsExpr() bool { return k > exprStart && k < exprEnd }

// IsStmt reports whether k is a statement variant.
func (k Kind) IsStmt() bool { return k > stmtStart && k < stmtEnd }

// IsDecl reports whether k is a declaration variant.
func (k Kind) IsDecl() bool { return k > declStart && k < declEnd }

// IsTypeSpec reports whether k is a type specifier variant.
func (k Kind) IsTypeSpec() bool { return k > typeStart && k < typeEnd }

// Node is implemented by every syntax tree node.
type Node interface {
	// Kind returns the node's variant tag.
	Kind() Kind
	// Loc returns the node's source location.
	Loc() token.Location
	// Parent returns the owning node, or nil for a root or a node not yet
	// attached to a tree.
	Parent() Node

	setParent(Node)
}

// node is the embedded base of every variant.
type node struct {
	loc    token.Location
	parent Node
}

func (n *node) Loc() token.Location { return n.loc }
func (n *node) Parent() Node        { return n.parent }
func (n *node) setParent(p Node)    { n.parent = p }

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	// Lvalue reports whether the expression designates an object.
	Lvalue() bool
	// Constant reports whether the expression is a constant expression.
	Constant() bool
	// ResolvedType returns the type a later semantic pass assigned, or nil.
	ResolvedType() TypeSpec
	// SetResolvedType records the semantic type of the expression.
	SetResolvedType(TypeSpec)
	// SetLvalue overrides the structural lvalue default.
	SetLvalue(bool)
	// SetConstant overrides the structural constness default.
	SetConstant(bool)

	exprNode()
}

// expr is the embedded base of expression variants. Factories set the
// structural defaults (identifiers are lvalues, literals are constant); a
// semantic pass may refine them.
type expr struct {
	node
	resolvedType TypeSpec
	lvalue       bool
	constant     bool
}

func (e *expr) Lvalue() bool               { return e.lvalue }
func (e *expr) Constant() bool             { return e.constant }
func (e *expr) ResolvedType() TypeSpec     { return e.resolvedType }
func (e *expr) SetResolvedType(t TypeSpec) { e.resolvedType = t }
func (e *expr) SetLvalue(v bool)           { e.lvalue = v }
func (e *expr) SetConstant(v bool)         { e.constant = v }
func (*expr) exprNode()                    {}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

type stmt struct {
	node
}

func (*stmt) stmtNode() {}

// StorageClass is a declaration's storage class specifier.
type StorageClass uint8

const (
	StorageNone StorageClass = iota
	StorageAuto
	StorageStatic
	StorageExtern
	StorageRegister
	StorageThreadLocal
)

// String returns the C spelling of the storage class, or "" for StorageNone.
func (s StorageClass) String() string {
	switch s {
	case StorageAuto:
		return "auto"
	case StorageStatic:
		return "static"
	case StorageExtern:
		return "extern"
	case StorageRegister:
		return "register"
	case StorageThreadLocal:
		return "thread_local"
	default:
		return ""
	}
}

// Decl is implemented by all declaration nodes.
type Decl interface {
	Node
	// DeclName returns the declared name; empty for anonymous struct/union/
	// enum declarations.
	DeclName() string
	// Storage returns the declaration's storage class.
	Storage() StorageClass

	declNode()
}

type decl struct {
	node
	name    string
	storage StorageClass
}

func (d *decl) DeclName() string      { return d.name }
func (d *decl) Storage() StorageClass { return d.storage }

// SetStorage records the storage class specifier.
func (d *decl) SetStorage(s StorageClass) { d.storage = s }

func (*decl) declNode() {}

// TypeSpec is implemented by all type specifier nodes. Nodes referring to a
// TypeSpec borrow it; see the package comment.
type TypeSpec interface {
	Node
	// Const reports the const qualifier.
	Const() bool
	// Volatile reports the volatile qualifier.
	Volatile() bool
	// SetQualifiers sets the const and volatile qualifiers.
	SetQualifiers(constQ, volatileQ bool)

	typeSpecNode()
}

type typeSpec struct {
	node
	isConst    bool
	isVolatile bool
}

func (t *typeSpec) Const() bool    { return t.isConst }
func (t *typeSpec) Volatile() bool { return t.isVolatile }

func (t *typeSpec) SetQualifiers(constQ, volatileQ bool) {
	t.isConst = constQ
	t.isVolatile = volatileQ
}

func (*typeSpec) typeSpecNode() {}

// TranslationUnit is the root of a parsed file: the ordered list of
// top-level declarations.
type TranslationUnit struct {
	node
	Filename string
	Decls    []Decl
}

func (*TranslationUnit) Kind() Kind { return KindTranslationUnit }

// NewTranslationUnit returns an empty translation unit for filename.
func NewTranslationUnit(filename string, loc token.Location) *TranslationUnit {
	return &TranslationUnit{node: node{loc: loc}, Filename: filename}
}

// Append adds d to the unit's top-level declarations and claims ownership.
func (u *TranslationUnit) Append(d Decl) {
	if d != nil {
		d.setParent(u)
		u.Decls = append(u.Decls, d)
	}
}
