package ast

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minicc/minicc/token"
)

func at(line, col int) token.Location {
	return token.Location{File: "t.c", Line: line, Column: col}
}

func intLit(val int64, loc token.Location) *LiteralExpr {
	return NewLiteralExpr(token.Token{
		Kind:     token.IntLit,
		Text:     strconv.FormatInt(val, 10),
		Loc:      loc,
		HasValue: true,
		IntValue: val,
		Base:     10,
	}, loc)
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()
	assert.True(t, KindBinaryExpr.IsExpr())
	assert.True(t, KindCastExpr.IsExpr())
	assert.True(t, KindIfStmt.IsStmt())
	assert.True(t, KindGotoStmt.IsStmt())
	assert.True(t, KindVarDecl.IsDecl())
	assert.True(t, KindTypedefDecl.IsDecl())
	assert.True(t, KindBasicType.IsTypeSpec())
	assert.True(t, KindTypedefName.IsTypeSpec())

	assert.False(t, KindTranslationUnit.IsExpr())
	assert.False(t, KindTranslationUnit.IsStmt())
	assert.False(t, KindVarDecl.IsExpr())
	assert.False(t, KindBinaryExpr.IsStmt())

	assert.Equal(t, "BinaryExpr", KindBinaryExpr.String())
	assert.Equal(t, "Invalid", Kind(250).String())
}

func TestFactoriesStampParents(t *testing.T) {
	t.Parallel()
	a := NewIdentifierExpr("a", at(1, 1))
	b := NewIdentifierExpr("b", at(1, 5))
	sum := NewBinaryExpr(OpAdd, a, b, at(1, 3))

	assert.Same(t, sum, a.Parent().(*BinaryExpr))
	assert.Same(t, sum, b.Parent().(*BinaryExpr))
	assert.Nil(t, sum.Parent())
	assert.True(t, IsRoot(sum))
	assert.True(t, HasParent(a))
}

func TestStructuralDefaults(t *testing.T) {
	t.Parallel()
	id := NewIdentifierExpr("x", at(1, 1))
	assert.True(t, id.Lvalue())
	assert.False(t, id.Constant())

	lit := intLit(42, at(1, 1))
	assert.True(t, lit.Constant())
	assert.False(t, lit.Lvalue())

	deref := NewUnaryExpr(UnaryDeref, id, at(1, 1))
	assert.True(t, deref.Lvalue())

	neg := NewUnaryExpr(UnaryMinus, intLit(1, at(1, 2)), at(1, 1))
	assert.False(t, neg.Lvalue())

	idx := NewIndexExpr(NewIdentifierExpr("arr", at(1, 1)), intLit(0, at(1, 5)), at(1, 4))
	assert.True(t, idx.Lvalue())

	member := NewMemberExpr(NewIdentifierExpr("s", at(1, 1)), "field", false, at(1, 2))
	assert.True(t, member.Lvalue())

	// Semantic analysis may refine the defaults.
	lit.SetConstant(false)
	assert.False(t, lit.Constant())
	assert.Nil(t, lit.ResolvedType())
	ty := NewBasicType(BasicInt, at(1, 1))
	lit.SetResolvedType(ty)
	assert.Same(t, ty, lit.ResolvedType().(*BasicType))
}

func TestCastTargetTypeIsBorrowed(t *testing.T) {
	t.Parallel()
	target := NewBasicType(BasicInt, at(1, 2))
	operand := NewIdentifierExpr("x", at(1, 6))
	cast := NewCastExpr(target, operand, at(1, 1))

	assert.Nil(t, target.Parent(), "cast must not claim its target type")
	assert.Same(t, cast, operand.Parent().(*CastExpr))

	assert.Equal(t, 1, ChildCount(cast), "the borrowed type is not a child")
	assert.Equal(t, 1, CountDescendants(cast))
}

func TestTypeReferencesAreBorrowed(t *testing.T) {
	t.Parallel()
	intType := NewBasicType(BasicInt, at(1, 1))

	v := NewVarDecl("x", intType, intLit(1, at(1, 9)), at(1, 5))
	assert.Nil(t, intType.Parent(), "declarations borrow their type")
	assert.Equal(t, 1, ChildCount(v), "only the initializer is owned")

	ptr := NewPointerType(intType, at(2, 1))
	assert.Nil(t, intType.Parent())
	assert.Equal(t, 0, ChildCount(ptr))

	size := intLit(10, at(3, 9))
	arr := NewArrayType(intType, size, at(3, 1))
	assert.Nil(t, intType.Parent())
	assert.Same(t, arr, size.Parent().(*ArrayType), "the size expression is owned")
	assert.Equal(t, 1, ChildCount(arr))
}

func TestTranslationUnitAppend(t *testing.T) {
	t.Parallel()
	tu := NewTranslationUnit("t.c", at(1, 1))
	intType := NewBasicType(BasicInt, at(1, 1))
	v := NewVarDecl("x", intType, nil, at(1, 5))
	tu.Append(v)
	tu.Append(nil)

	require.Len(t, tu.Decls, 1)
	assert.Same(t, tu, v.Parent().(*TranslationUnit))
	assert.Equal(t, "x", v.DeclName())
	assert.Equal(t, StorageNone, v.Storage())

	v.SetStorage(StorageStatic)
	assert.Equal(t, StorageStatic, v.Storage())
	assert.Equal(t, "static", StorageStatic.String())
}

func TestCompoundStmtAppend(t *testing.T) {
	t.Parallel()
	block := NewCompoundStmt(at(1, 1))
	intType := NewBasicType(BasicInt, at(2, 3))
	local := NewVarDecl("n", intType, nil, at(2, 7))
	ret := NewReturnStmt(NewIdentifierExpr("n", at(3, 10)), at(3, 3))

	block.AppendDecl(local)
	block.AppendStmt(ret)

	require.Len(t, block.Decls, 1)
	require.Len(t, block.Stmts, 1)
	assert.Same(t, block, local.Parent().(*CompoundStmt))
	assert.Same(t, block, ret.Parent().(*CompoundStmt))
	assert.Equal(t, 3, CountDescendants(block))
}

func TestEnumDeclClaimsValues(t *testing.T) {
	t.Parallel()
	one := intLit(1, at(1, 10))
	d := NewEnumDecl("color", []EnumConstant{
		{Name: "RED", Value: one},
		{Name: "GREEN"},
	}, at(1, 1))
	assert.Same(t, d, one.Parent().(*EnumDecl))
	assert.Equal(t, 1, ChildCount(d), "only explicit values are children")

	two := intLit(2, at(1, 20))
	d.AppendConstant(EnumConstant{Name: "BLUE", Value: two})
	assert.Same(t, d, two.Parent().(*EnumDecl))
	require.Len(t, d.Constants, 3)
}

func TestOpSpellings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "+", OpAdd.String())
	assert.Equal(t, "<<", OpShl.String())
	assert.Equal(t, ",", OpComma.String())
	assert.Equal(t, "sizeof", UnarySizeof.String())
	assert.Equal(t, "<<=", AssignShl.String())
	assert.Equal(t, "=", AssignSimple.String())

	assert.True(t, UnaryPreInc.IsPrefix())
	assert.False(t, UnaryPostInc.IsPrefix())
	assert.False(t, UnaryPostDec.IsPrefix())
	assert.True(t, UnarySizeof.IsPrefix())
}

func TestTypeSpecQualifiers(t *testing.T) {
	t.Parallel()
	ty := NewBasicType(BasicChar, at(1, 1))
	assert.False(t, ty.Const())
	assert.False(t, ty.Volatile())
	ty.SetQualifiers(true, true)
	assert.True(t, ty.Const())
	assert.True(t, ty.Volatile())
}
