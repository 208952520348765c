package ast

import "github.com/minicc/minicc/token"

// BasicKind enumerates the built-in arithmetic and void types.
type BasicKind uint8

const (
	BasicVoid BasicKind = iota
	BasicChar
	BasicShort
	BasicInt
	BasicLong
	BasicFloat
	BasicDouble
	BasicBool
)

var basicKindNames = [...]string{
	BasicVoid:   "void",
	BasicChar:   "char",
	BasicShort:  "short",
	BasicInt:    "int",
	BasicLong:   "long",
	BasicFloat:  "float",
	BasicDouble: "double",
	BasicBool:   "bool",
}

// String returns the C spelling of the basic type.
func (k BasicKind) String() string {
	if int(k) < len(basicKindNames) {
		return basicKindNames[k]
	}
	return "?"
}

// BasicType is a built-in type with its sign and length modifiers.
type BasicType struct {
	typeSpec
	Basic      BasicKind
	IsSigned   bool
	IsUnsigned bool
	IsLong     bool
	IsShort    bool
}

func (*BasicType) Kind() Kind { return KindBasicType }

// NewBasicType returns a basic type specifier.
func NewBasicType(basic BasicKind, loc token.Location) *BasicType {
	t := &BasicType{Basic: basic}
	t.loc = loc
	return t
}

// PointerType is a pointer to Elem. Elem is borrowed.
type PointerType struct {
	typeSpec
	Elem TypeSpec
}

func (*PointerType) Kind() Kind { return KindPointerType }

// NewPointerType returns a pointer type specifier.
func NewPointerType(elem TypeSpec, loc token.Location) *PointerType {
	t := &PointerType{Elem: elem}
	t.loc = loc
	return t
}

// ArrayType is an array of Elem. Elem is borrowed; the size expression, when
// present, is owned. A nil Size means an incomplete array ([]).
type ArrayType struct {
	typeSpec
	Elem TypeSpec
	Size Expr
}

func (*ArrayType) Kind() Kind { return KindArrayType }

// NewArrayType returns an array type specifier and claims the size
// expression.
func NewArrayType(elem TypeSpec, size Expr, loc token.Location) *ArrayType {
	t := &ArrayType{Elem: elem, Size: size}
	t.loc = loc
	claim(t, size)
	return t
}

// FuncType is a function type. The return and parameter types are borrowed.
type FuncType struct {
	typeSpec
	Return     TypeSpec
	Params     []TypeSpec
	IsVariadic bool
}

func (*FuncType) Kind() Kind { return KindFuncType }

// NewFuncType returns a function type specifier.
func NewFuncType(ret TypeSpec, params []TypeSpec, variadic bool, loc token.Location) *FuncType {
	t := &FuncType{Return: ret, Params: params, IsVariadic: variadic}
	t.loc = loc
	return t
}

// StructType refers to a struct by tag. Decl links the declaration once it
// is known; the link is a borrowed reference, nil for a forward reference.
type StructType struct {
	typeSpec
	Name string
	Decl *StructDecl
}

func (*StructType) Kind() Kind { return KindStructType }

// NewStructType returns a struct type specifier.
func NewStructType(name string, decl *StructDecl, loc token.Location) *StructType {
	t := &StructType{Name: name, Decl: decl}
	t.loc = loc
	return t
}

// UnionType refers to a union by tag; Decl is a borrowed reference.
type UnionType struct {
	typeSpec
	Name string
	Decl *UnionDecl
}

func (*UnionType) Kind() Kind { return KindUnionType }

// NewUnionType returns a union type specifier.
func NewUnionType(name string, decl *UnionDecl, loc token.Location) *UnionType {
	t := &UnionType{Name: name, Decl: decl}
	t.loc = loc
	return t
}

// EnumType refers to an enum by tag; Decl is a borrowed reference.
type EnumType struct {
	typeSpec
	Name string
	Decl *EnumDecl
}

func (*EnumType) Kind() Kind { return KindEnumType }

// NewEnumType returns an enum type specifier.
func NewEnumType(name string, decl *EnumDecl, loc token.Location) *EnumType {
	t := &EnumType{Name: name, Decl: decl}
	t.loc = loc
	return t
}

// TypedefName refers to a typedef'd type by name.
type TypedefName struct {
	typeSpec
	Name string
}

func (*TypedefName) Kind() Kind { return KindTypedefName }

// NewTypedefName returns a typedef name specifier.
func NewTypedefName(name string, loc token.Location) *TypedefName {
	t := &TypedefName{Name: name}
	t.loc = loc
	return t
}
