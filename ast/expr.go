package ast

import "github.com/minicc/minicc/token"

// BinaryOp enumerates binary operators.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpLogicalAnd
	OpLogicalOr
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpComma
)

var binaryOpNames = [...]string{
	OpAdd:        "+",
	OpSub:        "-",
	OpMul:        "*",
	OpDiv:        "/",
	OpMod:        "%",
	OpEq:         "==",
	OpNe:         "!=",
	OpLt:         "<",
	OpLe:         "<=",
	OpGt:         ">",
	OpGe:         ">=",
	OpLogicalAnd: "&&",
	OpLogicalOr:  "||",
	OpBitAnd:     "&",
	OpBitOr:      "|",
	OpBitXor:     "^",
	OpShl:        "<<",
	OpShr:        ">>",
	OpComma:      ",",
}

// String returns the C spelling of the operator.
func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

// UnaryOp enumerates unary operators. Prefix and postfix increment and
// decrement are distinct operators.
type UnaryOp uint8

const (
	UnaryPreInc UnaryOp = iota
	UnaryPreDec
	UnaryPostInc
	UnaryPostDec
	UnaryPlus
	UnaryMinus
	UnaryNot
	UnaryBitNot
	UnaryDeref
	UnaryAddrOf
	UnarySizeof
)

var unaryOpNames = [...]string{
	UnaryPreInc:  "++",
	UnaryPreDec:  "--",
	UnaryPostInc: "++",
	UnaryPostDec: "--",
	UnaryPlus:    "+",
	UnaryMinus:   "-",
	UnaryNot:     "!",
	UnaryBitNot:  "~",
	UnaryDeref:   "*",
	UnaryAddrOf:  "&",
	UnarySizeof:  "sizeof",
}

// String returns the C spelling of the operator.
func (op UnaryOp) String() string {
	if int(op) < len(unaryOpNames) {
		return unaryOpNames[op]
	}
	return "?"
}

// IsPrefix reports whether the operator is written before its operand.
func (op UnaryOp) IsPrefix() bool {
	return op != UnaryPostInc && op != UnaryPostDec
}

// AssignOp enumerates assignment operators, simple and compound.
type AssignOp uint8

const (
	AssignSimple AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignShl
	AssignShr
	AssignAnd
	AssignOr
	AssignXor
)

var assignOpNames = [...]string{
	AssignSimple: "=",
	AssignAdd:    "+=",
	AssignSub:    "-=",
	AssignMul:    "*=",
	AssignDiv:    "/=",
	AssignMod:    "%=",
	AssignShl:    "<<=",
	AssignShr:    ">>=",
	AssignAnd:    "&=",
	AssignOr:     "|=",
	AssignXor:    "^=",
}

// String returns the C spelling of the operator.
func (op AssignOp) String() string {
	if int(op) < len(assignOpNames) {
		return assignOpNames[op]
	}
	return "?"
}

// LiteralExpr is an integer, float, character, or string literal. It keeps
// the token the lexer produced, value fields included.
type LiteralExpr struct {
	expr
	Value token.Token
}

func (*LiteralExpr) Kind() Kind { return KindLiteralExpr }

// NewLiteralExpr returns a literal expression holding tok. Literals are
// constant expressions.
func NewLiteralExpr(tok token.Token, loc token.Location) *LiteralExpr {
	e := &LiteralExpr{Value: tok}
	e.loc = loc
	e.constant = true
	return e
}

// IdentifierExpr is a name reference.
type IdentifierExpr struct {
	expr
	Name string
}

func (*IdentifierExpr) Kind() Kind { return KindIdentifierExpr }

// NewIdentifierExpr returns an identifier expression. Identifiers designate
// objects, so they default to lvalue.
func NewIdentifierExpr(name string, loc token.Location) *IdentifierExpr {
	e := &IdentifierExpr{Name: name}
	e.loc = loc
	e.lvalue = true
	return e
}

// BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	expr
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*BinaryExpr) Kind() Kind { return KindBinaryExpr }

// NewBinaryExpr returns a binary expression and claims both operands.
func NewBinaryExpr(op BinaryOp, left, right Expr, loc token.Location) *BinaryExpr {
	e := &BinaryExpr{Op: op, Left: left, Right: right}
	e.loc = loc
	claim(e, left)
	claim(e, right)
	return e
}

// UnaryExpr applies a unary operator to one operand.
type UnaryExpr struct {
	expr
	Op      UnaryOp
	Operand Expr
}

func (*UnaryExpr) Kind() Kind { return KindUnaryExpr }

// NewUnaryExpr returns a unary expression and claims the operand.
// Dereference yields an lvalue.
func NewUnaryExpr(op UnaryOp, operand Expr, loc token.Location) *UnaryExpr {
	e := &UnaryExpr{Op: op, Operand: operand}
	e.loc = loc
	e.lvalue = op == UnaryDeref
	claim(e, operand)
	return e
}

// AssignExpr is a simple or compound assignment.
type AssignExpr struct {
	expr
	Op     AssignOp
	Target Expr
	Value  Expr
}

func (*AssignExpr) Kind() Kind { return KindAssignExpr }

// NewAssignExpr returns an assignment expression and claims both sides.
func NewAssignExpr(op AssignOp, target, value Expr, loc token.Location) *AssignExpr {
	e := &AssignExpr{Op: op, Target: target, Value: value}
	e.loc = loc
	claim(e, target)
	claim(e, value)
	return e
}

// TernaryExpr is the conditional operator cond ? then : else.
type TernaryExpr struct {
	expr
	Cond Expr
	Then Expr
	Else Expr
}

func (*TernaryExpr) Kind() Kind { return KindTernaryExpr }

// NewTernaryExpr returns a conditional expression and claims all three
// operands.
func NewTernaryExpr(cond, then, els Expr, loc token.Location) *TernaryExpr {
	e := &TernaryExpr{Cond: cond, Then: then, Else: els}
	e.loc = loc
	claim(e, cond)
	claim(e, then)
	claim(e, els)
	return e
}

// CallExpr is a function call.
type CallExpr struct {
	expr
	Fun  Expr
	Args []Expr
}

func (*CallExpr) Kind() Kind { return KindCallExpr }

// NewCallExpr returns a call expression and claims the callee and every
// argument.
func NewCallExpr(fun Expr, args []Expr, loc token.Location) *CallExpr {
	e := &CallExpr{Fun: fun, Args: args}
	e.loc = loc
	claim(e, fun)
	for _, a := range args {
		claim(e, a)
	}
	return e
}

// IndexExpr is an array subscript base[index].
type IndexExpr struct {
	expr
	Base  Expr
	Index Expr
}

func (*IndexExpr) Kind() Kind { return KindIndexExpr }

// NewIndexExpr returns a subscript expression and claims both operands.
// Subscripts yield lvalues.
func NewIndexExpr(base, index Expr, loc token.Location) *IndexExpr {
	e := &IndexExpr{Base: base, Index: index}
	e.loc = loc
	e.lvalue = true
	claim(e, base)
	claim(e, index)
	return e
}

// MemberExpr is a member access, base.member or base->member.
type MemberExpr struct {
	expr
	Base    Expr
	Member  string
	IsArrow bool
}

func (*MemberExpr) Kind() Kind { return KindMemberExpr }

// NewMemberExpr returns a member access expression and claims the base.
// Member accesses yield lvalues.
func NewMemberExpr(base Expr, member string, isArrow bool, loc token.Location) *MemberExpr {
	e := &MemberExpr{Base: base, Member: member, IsArrow: isArrow}
	e.loc = loc
	e.lvalue = true
	claim(e, base)
	return e
}

// CastExpr converts its operand to TargetType. TargetType is borrowed: the
// factory does not reparent it and traversal does not descend into it.
type CastExpr struct {
	expr
	TargetType TypeSpec
	Operand    Expr
}

func (*CastExpr) Kind() Kind { return KindCastExpr }

// NewCastExpr returns a cast expression, claiming only the operand.
func NewCastExpr(targetType TypeSpec, operand Expr, loc token.Location) *CastExpr {
	e := &CastExpr{TargetType: targetType, Operand: operand}
	e.loc = loc
	claim(e, operand)
	return e
}

// claim stamps e as c's parent. A nil child is tolerated so factories can be
// chained during tree construction; Validate reports the gap later.
func claim(parent Node, c Node) {
	if c != nil {
		c.setParent(parent)
	}
}
