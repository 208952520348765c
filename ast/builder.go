package ast

import (
	"github.com/minicc/minicc/reporter"
	"github.com/minicc/minicc/token"
)

const builderCategory = "ast-builder"

// Builder is a validated façade over the factory constructors. It owns the
// translation unit under construction and reports malformed requests —
// invalid names, missing required children — through its diagnostics engine,
// returning nil instead of building a broken node.
type Builder struct {
	root   *TranslationUnit
	engine *reporter.Engine
}

// NewBuilder returns a builder for a fresh translation unit. engine must
// not be nil.
func NewBuilder(filename string, engine *reporter.Engine) *Builder {
	return &Builder{
		root:   NewTranslationUnit(filename, token.Location{File: filename, Line: 1, Column: 1}),
		engine: engine,
	}
}

// Root returns the translation unit under construction.
func (b *Builder) Root() *TranslationUnit { return b.root }

// Engine returns the builder's diagnostics engine.
func (b *Builder) Engine() *reporter.Engine { return b.engine }

func (b *Builder) errorf(loc token.Location, format string, args ...any) {
	b.engine.Errorf(loc, builderCategory, format, args...)
}

func (b *Builder) checkName(what, name string, loc token.Location) bool {
	if !IsValidIdentifier(name) {
		b.errorf(loc, "invalid %s name %q", what, name)
		return false
	}
	return true
}

// AddVarDecl builds a variable declaration and appends it to the unit.
func (b *Builder) AddVarDecl(name string, typ TypeSpec, init Expr, loc token.Location) *VarDecl {
	d := b.CreateVarDecl(name, typ, init, loc)
	if d != nil {
		b.root.Append(d)
	}
	return d
}

// AddFuncDecl builds a function declaration and appends it to the unit.
func (b *Builder) AddFuncDecl(name string, returnType TypeSpec, params []*VarDecl, body *CompoundStmt, loc token.Location) *FuncDecl {
	if !b.checkName("function", name, loc) {
		return nil
	}
	if returnType == nil {
		b.errorf(loc, "function %q needs a return type", name)
		return nil
	}
	d := NewFuncDecl(name, returnType, params, body, loc)
	b.root.Append(d)
	return d
}

// AddStructDecl builds a struct declaration and appends it to the unit. An
// empty name declares an anonymous struct.
func (b *Builder) AddStructDecl(name string, members []*VarDecl, loc token.Location) *StructDecl {
	if name != "" && !b.checkName("struct", name, loc) {
		return nil
	}
	d := NewStructDecl(name, members, loc)
	b.root.Append(d)
	return d
}

// AddUnionDecl builds a union declaration and appends it to the unit.
func (b *Builder) AddUnionDecl(name string, members []*VarDecl, loc token.Location) *UnionDecl {
	if name != "" && !b.checkName("union", name, loc) {
		return nil
	}
	d := NewUnionDecl(name, members, loc)
	b.root.Append(d)
	return d
}

// AddEnumDecl builds an enum declaration and appends it to the unit.
func (b *Builder) AddEnumDecl(name string, constants []EnumConstant, loc token.Location) *EnumDecl {
	if name != "" && !b.checkName("enum", name, loc) {
		return nil
	}
	for _, c := range constants {
		if !b.checkName("enumerator", c.Name, loc) {
			return nil
		}
	}
	d := NewEnumDecl(name, constants, loc)
	b.root.Append(d)
	return d
}

// AddTypedefDecl builds a typedef declaration and appends it to the unit.
func (b *Builder) AddTypedefDecl(name string, aliased TypeSpec, loc token.Location) *TypedefDecl {
	if !b.checkName("typedef", name, loc) {
		return nil
	}
	if aliased == nil {
		b.errorf(loc, "typedef %q needs an aliased type", name)
		return nil
	}
	d := NewTypedefDecl(name, aliased, loc)
	b.root.Append(d)
	return d
}

// CreateVarDecl builds a detached variable declaration, for use as a
// parameter, member, or block-local.
func (b *Builder) CreateVarDecl(name string, typ TypeSpec, init Expr, loc token.Location) *VarDecl {
	if !b.checkName("variable", name, loc) {
		return nil
	}
	if typ == nil {
		b.errorf(loc, "variable %q needs a type", name)
		return nil
	}
	return NewVarDecl(name, typ, init, loc)
}

// CreateLiteralExpr builds a literal expression from a literal token.
func (b *Builder) CreateLiteralExpr(tok token.Token, loc token.Location) *LiteralExpr {
	if !tok.Kind.IsLiteral() {
		b.errorf(loc, "token %s is not a literal", tok.Kind)
		return nil
	}
	return NewLiteralExpr(tok, loc)
}

// CreateIdentifierExpr builds an identifier expression.
func (b *Builder) CreateIdentifierExpr(name string, loc token.Location) *IdentifierExpr {
	if !b.checkName("identifier", name, loc) {
		return nil
	}
	return NewIdentifierExpr(name, loc)
}

// CreateBinaryExpr builds a binary expression; both operands are required.
func (b *Builder) CreateBinaryExpr(op BinaryOp, left, right Expr, loc token.Location) *BinaryExpr {
	if left == nil || right == nil {
		b.errorf(loc, "binary %q needs two operands", op)
		return nil
	}
	return NewBinaryExpr(op, left, right, loc)
}

// CreateUnaryExpr builds a unary expression; the operand is required.
func (b *Builder) CreateUnaryExpr(op UnaryOp, operand Expr, loc token.Location) *UnaryExpr {
	if operand == nil {
		b.errorf(loc, "unary %q needs an operand", op)
		return nil
	}
	return NewUnaryExpr(op, operand, loc)
}

// CreateAssignExpr builds an assignment; both sides are required.
func (b *Builder) CreateAssignExpr(op AssignOp, target, value Expr, loc token.Location) *AssignExpr {
	if target == nil || value == nil {
		b.errorf(loc, "assignment %q needs a target and a value", op)
		return nil
	}
	return NewAssignExpr(op, target, value, loc)
}

// CreateTernaryExpr builds a conditional expression; all three operands are
// required.
func (b *Builder) CreateTernaryExpr(cond, then, els Expr, loc token.Location) *TernaryExpr {
	if cond == nil || then == nil || els == nil {
		b.errorf(loc, "conditional expression needs three operands")
		return nil
	}
	return NewTernaryExpr(cond, then, els, loc)
}

// CreateCallExpr builds a call; the callee is required.
func (b *Builder) CreateCallExpr(fun Expr, args []Expr, loc token.Location) *CallExpr {
	if fun == nil {
		b.errorf(loc, "call expression needs a callee")
		return nil
	}
	return NewCallExpr(fun, args, loc)
}

// CreateIndexExpr builds a subscript; both operands are required.
func (b *Builder) CreateIndexExpr(base, index Expr, loc token.Location) *IndexExpr {
	if base == nil || index == nil {
		b.errorf(loc, "subscript expression needs a base and an index")
		return nil
	}
	return NewIndexExpr(base, index, loc)
}

// CreateMemberExpr builds a member access; the base and a valid member name
// are required.
func (b *Builder) CreateMemberExpr(base Expr, member string, isArrow bool, loc token.Location) *MemberExpr {
	if base == nil {
		b.errorf(loc, "member access needs a base expression")
		return nil
	}
	if !b.checkName("member", member, loc) {
		return nil
	}
	return NewMemberExpr(base, member, isArrow, loc)
}

// CreateCastExpr builds a cast; the target type and operand are required.
// The target type stays owned by the caller.
func (b *Builder) CreateCastExpr(targetType TypeSpec, operand Expr, loc token.Location) *CastExpr {
	if targetType == nil || operand == nil {
		b.errorf(loc, "cast expression needs a target type and an operand")
		return nil
	}
	return NewCastExpr(targetType, operand, loc)
}

// CreateExprStmt builds an expression statement; the expression is required.
func (b *Builder) CreateExprStmt(x Expr, loc token.Location) *ExprStmt {
	if x == nil {
		b.errorf(loc, "expression statement needs an expression")
		return nil
	}
	return NewExprStmt(x, loc)
}

// CreateCompoundStmt builds an empty block.
func (b *Builder) CreateCompoundStmt(loc token.Location) *CompoundStmt {
	return NewCompoundStmt(loc)
}

// CreateIfStmt builds an if statement; the condition and then branch are
// required, the else branch may be nil.
func (b *Builder) CreateIfStmt(cond Expr, then, els Stmt, loc token.Location) *IfStmt {
	if cond == nil || then == nil {
		b.errorf(loc, "if statement needs a condition and a then branch")
		return nil
	}
	return NewIfStmt(cond, then, els, loc)
}

// CreateWhileStmt builds a while loop; the condition and body are required.
func (b *Builder) CreateWhileStmt(cond Expr, body Stmt, loc token.Location) *WhileStmt {
	if cond == nil || body == nil {
		b.errorf(loc, "while statement needs a condition and a body")
		return nil
	}
	return NewWhileStmt(cond, body, loc)
}

// CreateDoWhileStmt builds a do-while loop; the body and condition are
// required.
func (b *Builder) CreateDoWhileStmt(body Stmt, cond Expr, loc token.Location) *DoWhileStmt {
	if body == nil || cond == nil {
		b.errorf(loc, "do-while statement needs a body and a condition")
		return nil
	}
	return NewDoWhileStmt(body, cond, loc)
}

// CreateForStmt builds a for loop; only the body is required.
func (b *Builder) CreateForStmt(init, cond, post Expr, body Stmt, loc token.Location) *ForStmt {
	if body == nil {
		b.errorf(loc, "for statement needs a body")
		return nil
	}
	return NewForStmt(init, cond, post, body, loc)
}

// CreateReturnStmt builds a return statement; the result may be nil.
func (b *Builder) CreateReturnStmt(result Expr, loc token.Location) *ReturnStmt {
	return NewReturnStmt(result, loc)
}

// CreateBreakStmt builds a break statement.
func (b *Builder) CreateBreakStmt(loc token.Location) *BreakStmt {
	return NewBreakStmt(loc)
}

// CreateContinueStmt builds a continue statement.
func (b *Builder) CreateContinueStmt(loc token.Location) *ContinueStmt {
	return NewContinueStmt(loc)
}

// CreateSwitchStmt builds a switch; the condition is required.
func (b *Builder) CreateSwitchStmt(cond Expr, cases []*CaseStmt, loc token.Location) *SwitchStmt {
	if cond == nil {
		b.errorf(loc, "switch statement needs a condition")
		return nil
	}
	return NewSwitchStmt(cond, cases, loc)
}

// CreateCaseStmt builds a case clause; the value is required.
func (b *Builder) CreateCaseStmt(value Expr, body Stmt, loc token.Location) *CaseStmt {
	if value == nil {
		b.errorf(loc, "case clause needs a value")
		return nil
	}
	return NewCaseStmt(value, body, loc)
}

// CreateDefaultStmt builds a default clause.
func (b *Builder) CreateDefaultStmt(body Stmt, loc token.Location) *CaseStmt {
	return NewDefaultStmt(body, loc)
}

// CreateLabeledStmt builds a labeled statement; a valid label and the
// statement are required.
func (b *Builder) CreateLabeledStmt(label string, st Stmt, loc token.Location) *LabeledStmt {
	if !b.checkName("label", label, loc) {
		return nil
	}
	if st == nil {
		b.errorf(loc, "labeled statement needs a statement")
		return nil
	}
	return NewLabeledStmt(label, st, loc)
}

// CreateGotoStmt builds a goto statement; a valid label is required.
func (b *Builder) CreateGotoStmt(label string, loc token.Location) *GotoStmt {
	if !b.checkName("goto label", label, loc) {
		return nil
	}
	return NewGotoStmt(label, loc)
}

// CreateBasicType builds a basic type specifier.
func (b *Builder) CreateBasicType(basic BasicKind, loc token.Location) *BasicType {
	return NewBasicType(basic, loc)
}

// CreatePointerType builds a pointer type; the element type is required.
func (b *Builder) CreatePointerType(elem TypeSpec, loc token.Location) *PointerType {
	if elem == nil {
		b.errorf(loc, "pointer type needs an element type")
		return nil
	}
	return NewPointerType(elem, loc)
}

// CreateArrayType builds an array type; the element type is required, the
// size may be nil for an incomplete array.
func (b *Builder) CreateArrayType(elem TypeSpec, size Expr, loc token.Location) *ArrayType {
	if elem == nil {
		b.errorf(loc, "array type needs an element type")
		return nil
	}
	return NewArrayType(elem, size, loc)
}

// CreateFuncType builds a function type; the return type is required.
func (b *Builder) CreateFuncType(ret TypeSpec, params []TypeSpec, variadic bool, loc token.Location) *FuncType {
	if ret == nil {
		b.errorf(loc, "function type needs a return type")
		return nil
	}
	return NewFuncType(ret, params, variadic, loc)
}

// CreateStructType builds a struct type reference; decl may be nil for a
// forward reference.
func (b *Builder) CreateStructType(name string, decl *StructDecl, loc token.Location) *StructType {
	if !b.checkName("struct tag", name, loc) {
		return nil
	}
	return NewStructType(name, decl, loc)
}

// CreateUnionType builds a union type reference.
func (b *Builder) CreateUnionType(name string, decl *UnionDecl, loc token.Location) *UnionType {
	if !b.checkName("union tag", name, loc) {
		return nil
	}
	return NewUnionType(name, decl, loc)
}

// CreateEnumType builds an enum type reference.
func (b *Builder) CreateEnumType(name string, decl *EnumDecl, loc token.Location) *EnumType {
	if !b.checkName("enum tag", name, loc) {
		return nil
	}
	return NewEnumType(name, decl, loc)
}

// CreateTypedefName builds a typedef name reference.
func (b *Builder) CreateTypedefName(name string, loc token.Location) *TypedefName {
	if !b.checkName("typedef", name, loc) {
		return nil
	}
	return NewTypedefName(name, loc)
}

// AddDeclToCompound appends d to block and stamps the parent link.
func (b *Builder) AddDeclToCompound(block *CompoundStmt, d Decl) {
	if block == nil || d == nil {
		b.errorf(token.Location{}, "appending a declaration needs a block and a declaration")
		return
	}
	block.AppendDecl(d)
}

// AddStmtToCompound appends s to block and stamps the parent link.
func (b *Builder) AddStmtToCompound(block *CompoundStmt, s Stmt) {
	if block == nil || s == nil {
		b.errorf(token.Location{}, "appending a statement needs a block and a statement")
		return
	}
	block.AppendStmt(s)
}
