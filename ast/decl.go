package ast

import "github.com/minicc/minicc/token"

// VarDecl declares a variable or a function parameter. Type is borrowed
// from the type table; Init, when present, is owned.
type VarDecl struct {
	decl
	Type TypeSpec
	Init Expr
}

func (*VarDecl) Kind() Kind { return KindVarDecl }

// NewVarDecl returns a variable declaration and claims the initializer.
func NewVarDecl(name string, typ TypeSpec, init Expr, loc token.Location) *VarDecl {
	d := &VarDecl{Type: typ, Init: init}
	d.loc = loc
	d.name = name
	claim(d, init)
	return d
}

// FuncDecl declares a function; Body is nil for a prototype. ReturnType is
// borrowed; parameters and the body are owned.
type FuncDecl struct {
	decl
	ReturnType TypeSpec
	Params     []*VarDecl
	Body       *CompoundStmt
	IsVariadic bool
}

func (*FuncDecl) Kind() Kind { return KindFuncDecl }

// NewFuncDecl returns a function declaration and claims the parameters and
// body.
func NewFuncDecl(name string, returnType TypeSpec, params []*VarDecl, body *CompoundStmt, loc token.Location) *FuncDecl {
	d := &FuncDecl{ReturnType: returnType, Params: params, Body: body}
	d.loc = loc
	d.name = name
	for _, p := range params {
		if p != nil {
			p.setParent(d)
		}
	}
	if body != nil {
		body.setParent(d)
	}
	return d
}

// StructDecl declares a struct; Name is empty for an anonymous struct.
// Members are owned.
type StructDecl struct {
	decl
	Members []*VarDecl
}

func (*StructDecl) Kind() Kind { return KindStructDecl }

// NewStructDecl returns a struct declaration and claims the members.
func NewStructDecl(name string, members []*VarDecl, loc token.Location) *StructDecl {
	d := &StructDecl{Members: members}
	d.loc = loc
	d.name = name
	for _, m := range members {
		if m != nil {
			m.setParent(d)
		}
	}
	return d
}

// UnionDecl declares a union; Name is empty for an anonymous union.
type UnionDecl struct {
	decl
	Members []*VarDecl
}

func (*UnionDecl) Kind() Kind { return KindUnionDecl }

// NewUnionDecl returns a union declaration and claims the members.
func NewUnionDecl(name string, members []*VarDecl, loc token.Location) *UnionDecl {
	d := &UnionDecl{Members: members}
	d.loc = loc
	d.name = name
	for _, m := range members {
		if m != nil {
			m.setParent(d)
		}
	}
	return d
}

// EnumConstant is one enumerator; Value is the optional explicit constant
// expression, owned by the enclosing EnumDecl.
type EnumConstant struct {
	Name  string
	Value Expr
}

// EnumDecl declares an enum with its ordered enumerators.
type EnumDecl struct {
	decl
	Constants []EnumConstant
}

func (*EnumDecl) Kind() Kind { return KindEnumDecl }

// NewEnumDecl returns an enum declaration and claims each enumerator's
// value expression.
func NewEnumDecl(name string, constants []EnumConstant, loc token.Location) *EnumDecl {
	d := &EnumDecl{Constants: constants}
	d.loc = loc
	d.name = name
	for _, c := range constants {
		claim(d, c.Value)
	}
	return d
}

// AppendConstant adds an enumerator and claims its value expression.
func (d *EnumDecl) AppendConstant(c EnumConstant) {
	claim(d, c.Value)
	d.Constants = append(d.Constants, c)
}

// TypedefDecl declares a type alias. Aliased is borrowed.
type TypedefDecl struct {
	decl
	Aliased TypeSpec
}

func (*TypedefDecl) Kind() Kind { return KindTypedefDecl }

// NewTypedefDecl returns a typedef declaration.
func NewTypedefDecl(name string, aliased TypeSpec, loc token.Location) *TypedefDecl {
	d := &TypedefDecl{Aliased: aliased}
	d.loc = loc
	d.name = name
	return d
}
