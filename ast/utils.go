package ast

import (
	"fmt"

	"github.com/minicc/minicc/reporter"
)

// HasParent reports whether n is attached to an owning node.
func HasParent(n Node) bool {
	return n != nil && n.Parent() != nil
}

// IsRoot reports whether n has no owner.
func IsRoot(n Node) bool {
	return n != nil && n.Parent() == nil
}

// ChildCount returns the number of owned children of n.
func ChildCount(n Node) int {
	if n == nil {
		return 0
	}
	return len(children(n))
}

// CountDescendants returns the number of owned nodes strictly below n.
// Borrowed type references are not descendants.
func CountDescendants(n Node) int {
	if n == nil {
		return 0
	}
	count := 0
	for _, c := range children(n) {
		count += 1 + CountDescendants(c)
	}
	return count
}

// TreeDepth returns the number of nodes on the longest path from n down to
// a leaf; a leaf has depth 1.
func TreeDepth(n Node) int {
	if n == nil {
		return 0
	}
	deepest := 0
	for _, c := range children(n) {
		if d := TreeDepth(c); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}

// FindChildrenByKind returns n's direct children with the given kind.
func FindChildrenByKind(n Node, k Kind) []Node {
	var out []Node
	for _, c := range children(n) {
		if c.Kind() == k {
			out = append(out, c)
		}
	}
	return out
}

// FindAllByKind returns every node with the given kind in the subtree rooted
// at n, n included, in preorder.
func FindAllByKind(n Node, k Kind) []Node {
	var out []Node
	Inspect(n, func(cur Node) bool {
		if cur.Kind() == k {
			out = append(out, cur)
		}
		return true
	})
	return out
}

// FindAncestorByKind walks n's parent chain and returns the nearest ancestor
// with the given kind, or nil. n itself is not considered.
func FindAncestorByKind(n Node, k Kind) Node {
	if n == nil {
		return nil
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind() == k {
			return p
		}
	}
	return nil
}

const validateCategory = "ast"

// Validate checks n's own structural invariants: required children present,
// names well-formed, and every owned child's parent link pointing back at n.
// Problems are reported through engine; Validate returns true when none were
// found. Children are not validated recursively; use ValidateTree for that.
func Validate(n Node, engine *reporter.Engine) bool {
	if n == nil {
		return false
	}
	ok := true
	fail := func(format string, args ...any) {
		if engine != nil {
			engine.Errorf(n.Loc(), validateCategory, format, args...)
		}
		ok = false
	}

	switch n := n.(type) {
	case *IdentifierExpr:
		if !IsValidIdentifier(n.Name) {
			fail("invalid identifier name %q", n.Name)
		}
	case *BinaryExpr:
		if n.Left == nil {
			fail("binary expression %q is missing its left operand", n.Op)
		}
		if n.Right == nil {
			fail("binary expression %q is missing its right operand", n.Op)
		}
	case *UnaryExpr:
		if n.Operand == nil {
			fail("unary expression %q is missing its operand", n.Op)
		}
	case *AssignExpr:
		if n.Target == nil {
			fail("assignment %q is missing its target", n.Op)
		}
		if n.Value == nil {
			fail("assignment %q is missing its value", n.Op)
		}
	case *TernaryExpr:
		if n.Cond == nil || n.Then == nil || n.Else == nil {
			fail("conditional expression is missing an operand")
		}
	case *CallExpr:
		if n.Fun == nil {
			fail("call expression is missing its callee")
		}
	case *IndexExpr:
		if n.Base == nil || n.Index == nil {
			fail("subscript expression is missing an operand")
		}
	case *MemberExpr:
		if n.Base == nil {
			fail("member access is missing its base expression")
		}
		if !IsValidIdentifier(n.Member) {
			fail("invalid member name %q", n.Member)
		}
	case *CastExpr:
		if n.TargetType == nil {
			fail("cast expression is missing its target type")
		}
		if n.Operand == nil {
			fail("cast expression is missing its operand")
		}
	case *ExprStmt:
		if n.X == nil {
			fail("expression statement is missing its expression")
		}
	case *IfStmt:
		if n.Cond == nil {
			fail("if statement is missing its condition")
		}
		if n.Then == nil {
			fail("if statement is missing its then branch")
		}
	case *WhileStmt:
		if n.Cond == nil {
			fail("while statement is missing its condition")
		}
		if n.Body == nil {
			fail("while statement is missing its body")
		}
	case *DoWhileStmt:
		if n.Cond == nil {
			fail("do-while statement is missing its condition")
		}
		if n.Body == nil {
			fail("do-while statement is missing its body")
		}
	case *ForStmt:
		if n.Body == nil {
			fail("for statement is missing its body")
		}
	case *SwitchStmt:
		if n.Cond == nil {
			fail("switch statement is missing its condition")
		}
	case *CaseStmt:
		if !n.IsDefault && n.Value == nil {
			fail("case clause is missing its value")
		}
		if n.IsDefault && n.Value != nil {
			fail("default clause must not carry a value")
		}
	case *LabeledStmt:
		if !IsValidIdentifier(n.Label) {
			fail("invalid label name %q", n.Label)
		}
		if n.Stmt == nil {
			fail("labeled statement is missing its statement")
		}
	case *GotoStmt:
		if !IsValidIdentifier(n.Label) {
			fail("invalid goto label %q", n.Label)
		}
	case *VarDecl:
		if !IsValidIdentifier(n.DeclName()) {
			fail("invalid variable name %q", n.DeclName())
		}
		if n.Type == nil {
			fail("variable %q has no type", n.DeclName())
		}
	case *FuncDecl:
		if !IsValidIdentifier(n.DeclName()) {
			fail("invalid function name %q", n.DeclName())
		}
		if n.ReturnType == nil {
			fail("function %q has no return type", n.DeclName())
		}
	case *StructDecl:
		if n.DeclName() != "" && !IsValidIdentifier(n.DeclName()) {
			fail("invalid struct tag %q", n.DeclName())
		}
	case *UnionDecl:
		if n.DeclName() != "" && !IsValidIdentifier(n.DeclName()) {
			fail("invalid union tag %q", n.DeclName())
		}
	case *EnumDecl:
		if n.DeclName() != "" && !IsValidIdentifier(n.DeclName()) {
			fail("invalid enum tag %q", n.DeclName())
		}
		for _, c := range n.Constants {
			if !IsValidIdentifier(c.Name) {
				fail("invalid enumerator name %q", c.Name)
			}
		}
	case *TypedefDecl:
		if !IsValidIdentifier(n.DeclName()) {
			fail("invalid typedef name %q", n.DeclName())
		}
		if n.Aliased == nil {
			fail("typedef %q aliases no type", n.DeclName())
		}
	case *TypedefName:
		if !IsValidIdentifier(n.Name) {
			fail("invalid typedef reference %q", n.Name)
		}
	}

	for _, c := range children(n) {
		if c.Parent() != n {
			fail("%s child %s has a stale parent link", n.Kind(), c.Kind())
		}
	}
	return ok
}

// ValidateTree validates every owned node in the subtree rooted at n.
func ValidateTree(n Node, engine *reporter.Engine) bool {
	if n == nil {
		return false
	}
	ok := true
	Inspect(n, func(cur Node) bool {
		if !Validate(cur, engine) {
			ok = false
		}
		return true
	})
	return ok
}

// IsValidIdentifier reports whether name is a well-formed C identifier.
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z':
		case i > 0 && ch >= '0' && ch <= '9':
		default:
			return false
		}
	}
	return true
}

// Equal reports deep structural equality of two subtrees. Locations and
// resolved types are ignored; borrowed type references are compared by
// identity, because a clone shares them rather than copying.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch a := a.(type) {
	case *TranslationUnit:
		b := b.(*TranslationUnit)
		if a.Filename != b.Filename || len(a.Decls) != len(b.Decls) {
			return false
		}
	case *LiteralExpr:
		b := b.(*LiteralExpr)
		av, bv := a.Value, b.Value
		if av.Kind != bv.Kind || av.Text != bv.Text {
			return false
		}
	case *IdentifierExpr:
		if a.Name != b.(*IdentifierExpr).Name {
			return false
		}
	case *BinaryExpr:
		b := b.(*BinaryExpr)
		if a.Op != b.Op || !sameNil(a.Left, b.Left) || !sameNil(a.Right, b.Right) {
			return false
		}
	case *UnaryExpr:
		if a.Op != b.(*UnaryExpr).Op {
			return false
		}
	case *AssignExpr:
		b := b.(*AssignExpr)
		if a.Op != b.Op || !sameNil(a.Target, b.Target) || !sameNil(a.Value, b.Value) {
			return false
		}
	case *TernaryExpr:
		b := b.(*TernaryExpr)
		if !sameNil(a.Cond, b.Cond) || !sameNil(a.Then, b.Then) || !sameNil(a.Else, b.Else) {
			return false
		}
	case *CallExpr:
		b := b.(*CallExpr)
		if !sameNil(a.Fun, b.Fun) || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !sameNil(a.Args[i], b.Args[i]) {
				return false
			}
		}
	case *IndexExpr:
		b := b.(*IndexExpr)
		if !sameNil(a.Base, b.Base) || !sameNil(a.Index, b.Index) {
			return false
		}
	case *MemberExpr:
		b := b.(*MemberExpr)
		if a.Member != b.Member || a.IsArrow != b.IsArrow {
			return false
		}
	case *CastExpr:
		if a.TargetType != b.(*CastExpr).TargetType {
			return false
		}
	case *CompoundStmt:
		b := b.(*CompoundStmt)
		if len(a.Decls) != len(b.Decls) || len(a.Stmts) != len(b.Stmts) {
			return false
		}
	case *IfStmt:
		b := b.(*IfStmt)
		if !sameNil(a.Cond, b.Cond) || !sameNil(a.Then, b.Then) || !sameNil(a.Else, b.Else) {
			return false
		}
	case *WhileStmt:
		b := b.(*WhileStmt)
		if !sameNil(a.Cond, b.Cond) || !sameNil(a.Body, b.Body) {
			return false
		}
	case *DoWhileStmt:
		b := b.(*DoWhileStmt)
		if !sameNil(a.Body, b.Body) || !sameNil(a.Cond, b.Cond) {
			return false
		}
	case *ForStmt:
		b := b.(*ForStmt)
		if !sameNil(a.Init, b.Init) || !sameNil(a.Cond, b.Cond) ||
			!sameNil(a.Post, b.Post) || !sameNil(a.Body, b.Body) {
			return false
		}
	case *SwitchStmt:
		if len(a.Cases) != len(b.(*SwitchStmt).Cases) {
			return false
		}
	case *CaseStmt:
		b := b.(*CaseStmt)
		if a.IsDefault != b.IsDefault || !sameNil(a.Value, b.Value) || !sameNil(a.Body, b.Body) {
			return false
		}
	case *LabeledStmt:
		if a.Label != b.(*LabeledStmt).Label {
			return false
		}
	case *GotoStmt:
		if a.Label != b.(*GotoStmt).Label {
			return false
		}
	case *VarDecl:
		b := b.(*VarDecl)
		if a.DeclName() != b.DeclName() || a.Storage() != b.Storage() || a.Type != b.Type {
			return false
		}
	case *FuncDecl:
		b := b.(*FuncDecl)
		if a.DeclName() != b.DeclName() || a.Storage() != b.Storage() ||
			a.ReturnType != b.ReturnType || a.IsVariadic != b.IsVariadic ||
			len(a.Params) != len(b.Params) {
			return false
		}
	case *StructDecl:
		b := b.(*StructDecl)
		if a.DeclName() != b.DeclName() || len(a.Members) != len(b.Members) {
			return false
		}
	case *UnionDecl:
		b := b.(*UnionDecl)
		if a.DeclName() != b.DeclName() || len(a.Members) != len(b.Members) {
			return false
		}
	case *EnumDecl:
		b := b.(*EnumDecl)
		if a.DeclName() != b.DeclName() || len(a.Constants) != len(b.Constants) {
			return false
		}
		for i := range a.Constants {
			if a.Constants[i].Name != b.Constants[i].Name {
				return false
			}
		}
	case *TypedefDecl:
		b := b.(*TypedefDecl)
		if a.DeclName() != b.DeclName() || a.Aliased != b.Aliased {
			return false
		}
	case *BasicType:
		b := b.(*BasicType)
		if a.Basic != b.Basic || a.IsSigned != b.IsSigned || a.IsUnsigned != b.IsUnsigned ||
			a.IsLong != b.IsLong || a.IsShort != b.IsShort {
			return false
		}
	case *PointerType:
		if a.Elem != b.(*PointerType).Elem {
			return false
		}
	case *ArrayType:
		if a.Elem != b.(*ArrayType).Elem {
			return false
		}
	case *FuncType:
		b := b.(*FuncType)
		if a.Return != b.Return || a.IsVariadic != b.IsVariadic || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if a.Params[i] != b.Params[i] {
				return false
			}
		}
	case *StructType:
		b := b.(*StructType)
		if a.Name != b.Name || a.Decl != b.Decl {
			return false
		}
	case *UnionType:
		b := b.(*UnionType)
		if a.Name != b.Name || a.Decl != b.Decl {
			return false
		}
	case *EnumType:
		b := b.(*EnumType)
		if a.Name != b.Name || a.Decl != b.Decl {
			return false
		}
	case *TypedefName:
		if a.Name != b.(*TypedefName).Name {
			return false
		}
	}

	ac, bc := children(a), children(b)
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !Equal(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// sameNil reports whether a and b agree on being nil. children() drops nil
// slots, so multi-child variants compare their raw slots through this to keep
// a missing child on one side from lining up with a present child on the
// other.
func sameNil(a, b Node) bool {
	return (a == nil) == (b == nil)
}

// Clone returns a deep copy of the subtree rooted at n. The copy is a
// detached root. Owned children are cloned; borrowed type references are
// shared with the original, mirroring the ownership discipline.
func Clone(n Node) Node {
	switch n := n.(type) {
	case nil:
		return nil
	case *TranslationUnit:
		c := NewTranslationUnit(n.Filename, n.Loc())
		for _, d := range n.Decls {
			c.Append(cloneDecl(d))
		}
		return c
	case *LiteralExpr:
		return NewLiteralExpr(n.Value, n.Loc())
	case *IdentifierExpr:
		return NewIdentifierExpr(n.Name, n.Loc())
	case *BinaryExpr:
		return NewBinaryExpr(n.Op, cloneExpr(n.Left), cloneExpr(n.Right), n.Loc())
	case *UnaryExpr:
		return NewUnaryExpr(n.Op, cloneExpr(n.Operand), n.Loc())
	case *AssignExpr:
		return NewAssignExpr(n.Op, cloneExpr(n.Target), cloneExpr(n.Value), n.Loc())
	case *TernaryExpr:
		return NewTernaryExpr(cloneExpr(n.Cond), cloneExpr(n.Then), cloneExpr(n.Else), n.Loc())
	case *CallExpr:
		args := make([]Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = cloneExpr(a)
		}
		return NewCallExpr(cloneExpr(n.Fun), args, n.Loc())
	case *IndexExpr:
		return NewIndexExpr(cloneExpr(n.Base), cloneExpr(n.Index), n.Loc())
	case *MemberExpr:
		return NewMemberExpr(cloneExpr(n.Base), n.Member, n.IsArrow, n.Loc())
	case *CastExpr:
		return NewCastExpr(n.TargetType, cloneExpr(n.Operand), n.Loc())
	case *ExprStmt:
		return NewExprStmt(cloneExpr(n.X), n.Loc())
	case *CompoundStmt:
		c := NewCompoundStmt(n.Loc())
		for _, d := range n.Decls {
			c.AppendDecl(cloneDecl(d))
		}
		for _, s := range n.Stmts {
			c.AppendStmt(cloneStmt(s))
		}
		return c
	case *IfStmt:
		return NewIfStmt(cloneExpr(n.Cond), cloneStmt(n.Then), cloneStmt(n.Else), n.Loc())
	case *WhileStmt:
		return NewWhileStmt(cloneExpr(n.Cond), cloneStmt(n.Body), n.Loc())
	case *DoWhileStmt:
		return NewDoWhileStmt(cloneStmt(n.Body), cloneExpr(n.Cond), n.Loc())
	case *ForStmt:
		return NewForStmt(cloneExpr(n.Init), cloneExpr(n.Cond), cloneExpr(n.Post), cloneStmt(n.Body), n.Loc())
	case *ReturnStmt:
		return NewReturnStmt(cloneExpr(n.Result), n.Loc())
	case *BreakStmt:
		return NewBreakStmt(n.Loc())
	case *ContinueStmt:
		return NewContinueStmt(n.Loc())
	case *SwitchStmt:
		cases := make([]*CaseStmt, len(n.Cases))
		for i, cs := range n.Cases {
			cases[i] = Clone(cs).(*CaseStmt)
		}
		return NewSwitchStmt(cloneExpr(n.Cond), cases, n.Loc())
	case *CaseStmt:
		c := &CaseStmt{IsDefault: n.IsDefault, Value: cloneExpr(n.Value), Body: cloneStmt(n.Body)}
		c.loc = n.Loc()
		claim(c, c.Value)
		claim(c, c.Body)
		return c
	case *LabeledStmt:
		return NewLabeledStmt(n.Label, cloneStmt(n.Stmt), n.Loc())
	case *GotoStmt:
		return NewGotoStmt(n.Label, n.Loc())
	case *VarDecl:
		c := NewVarDecl(n.DeclName(), n.Type, cloneExpr(n.Init), n.Loc())
		c.SetStorage(n.Storage())
		return c
	case *FuncDecl:
		params := make([]*VarDecl, len(n.Params))
		for i, p := range n.Params {
			params[i] = Clone(p).(*VarDecl)
		}
		var body *CompoundStmt
		if n.Body != nil {
			body = Clone(n.Body).(*CompoundStmt)
		}
		c := NewFuncDecl(n.DeclName(), n.ReturnType, params, body, n.Loc())
		c.SetStorage(n.Storage())
		c.IsVariadic = n.IsVariadic
		return c
	case *StructDecl:
		return NewStructDecl(n.DeclName(), cloneMembers(n.Members), n.Loc())
	case *UnionDecl:
		return NewUnionDecl(n.DeclName(), cloneMembers(n.Members), n.Loc())
	case *EnumDecl:
		constants := make([]EnumConstant, len(n.Constants))
		for i, ec := range n.Constants {
			constants[i] = EnumConstant{Name: ec.Name, Value: cloneExpr(ec.Value)}
		}
		return NewEnumDecl(n.DeclName(), constants, n.Loc())
	case *TypedefDecl:
		return NewTypedefDecl(n.DeclName(), n.Aliased, n.Loc())
	case *BasicType:
		c := NewBasicType(n.Basic, n.Loc())
		c.IsSigned, c.IsUnsigned, c.IsLong, c.IsShort = n.IsSigned, n.IsUnsigned, n.IsLong, n.IsShort
		c.SetQualifiers(n.Const(), n.Volatile())
		return c
	case *PointerType:
		c := NewPointerType(n.Elem, n.Loc())
		c.SetQualifiers(n.Const(), n.Volatile())
		return c
	case *ArrayType:
		c := NewArrayType(n.Elem, cloneExpr(n.Size), n.Loc())
		c.SetQualifiers(n.Const(), n.Volatile())
		return c
	case *FuncType:
		params := make([]TypeSpec, len(n.Params))
		copy(params, n.Params)
		c := NewFuncType(n.Return, params, n.IsVariadic, n.Loc())
		c.SetQualifiers(n.Const(), n.Volatile())
		return c
	case *StructType:
		c := NewStructType(n.Name, n.Decl, n.Loc())
		c.SetQualifiers(n.Const(), n.Volatile())
		return c
	case *UnionType:
		c := NewUnionType(n.Name, n.Decl, n.Loc())
		c.SetQualifiers(n.Const(), n.Volatile())
		return c
	case *EnumType:
		c := NewEnumType(n.Name, n.Decl, n.Loc())
		c.SetQualifiers(n.Const(), n.Volatile())
		return c
	case *TypedefName:
		c := NewTypedefName(n.Name, n.Loc())
		c.SetQualifiers(n.Const(), n.Volatile())
		return c
	default:
		panic(fmt.Sprintf("ast: cannot clone node of kind %s", n.Kind()))
	}
}

func cloneExpr(e Expr) Expr {
	if e == nil {
		return nil
	}
	return Clone(e).(Expr)
}

func cloneStmt(s Stmt) Stmt {
	if s == nil {
		return nil
	}
	return Clone(s).(Stmt)
}

func cloneDecl(d Decl) Decl {
	if d == nil {
		return nil
	}
	return Clone(d).(Decl)
}

func cloneMembers(members []*VarDecl) []*VarDecl {
	out := make([]*VarDecl, len(members))
	for i, m := range members {
		if m != nil {
			out[i] = Clone(m).(*VarDecl)
		}
	}
	return out
}
