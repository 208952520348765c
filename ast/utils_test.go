package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minicc/minicc/reporter"
)

func TestCountDescendantsAndDepth(t *testing.T) {
	t.Parallel()
	sum := buildSum() // a + b * c

	assert.Equal(t, 4, CountDescendants(sum))
	assert.Equal(t, 0, CountDescendants(NewIdentifierExpr("x", at(1, 1))))
	assert.Equal(t, 3, TreeDepth(sum))
	assert.Equal(t, 1, TreeDepth(NewIdentifierExpr("x", at(1, 1))))
	assert.Equal(t, 0, TreeDepth(nil))
	assert.Equal(t, 2, ChildCount(sum))
}

func TestFindByKind(t *testing.T) {
	t.Parallel()
	sum := buildSum()

	direct := FindChildrenByKind(sum, KindIdentifierExpr)
	require.Len(t, direct, 1)
	assert.Equal(t, "a", direct[0].(*IdentifierExpr).Name)

	all := FindAllByKind(sum, KindIdentifierExpr)
	require.Len(t, all, 3)

	binaries := FindAllByKind(sum, KindBinaryExpr)
	require.Len(t, binaries, 2, "the matching root is included")

	assert.Empty(t, FindAllByKind(sum, KindWhileStmt))
}

func TestFindAncestorByKind(t *testing.T) {
	t.Parallel()
	ret := NewReturnStmt(NewIdentifierExpr("n", at(2, 10)), at(2, 3))
	body := NewCompoundStmt(at(1, 10))
	body.AppendStmt(ret)
	fn := NewFuncDecl("f", NewBasicType(BasicInt, at(1, 1)), nil, body, at(1, 1))

	id := ret.Result.(*IdentifierExpr)
	assert.Same(t, fn, FindAncestorByKind(id, KindFuncDecl).(*FuncDecl))
	assert.Same(t, body, FindAncestorByKind(id, KindCompoundStmt).(*CompoundStmt))
	assert.Nil(t, FindAncestorByKind(id, KindWhileStmt))
	assert.Nil(t, FindAncestorByKind(fn, KindFuncDecl), "the node itself is not an ancestor")
}

func TestValidateReportsMissingChildren(t *testing.T) {
	t.Parallel()
	coll := &reporter.Collector{}
	engine := reporter.NewEngine(coll)

	broken := &BinaryExpr{Op: OpAdd}
	broken.loc = at(1, 1)
	assert.False(t, Validate(broken, engine))
	assert.Equal(t, 2, engine.ErrorCount(), "both operands are reported")
	require.NotEmpty(t, coll.Diagnostics)
	assert.Equal(t, "ast", coll.Diagnostics[0].Category)
}

func TestValidateNames(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		node Node
		ok   bool
	}{
		{"valid identifier", NewIdentifierExpr("x_1", at(1, 1)), true},
		{"empty identifier", NewIdentifierExpr("", at(1, 1)), false},
		{"digit start", NewIdentifierExpr("1x", at(1, 1)), false},
		{"bad byte", NewIdentifierExpr("a-b", at(1, 1)), false},
		{"valid goto", NewGotoStmt("done", at(1, 1)), true},
		{"bad goto", NewGotoStmt("", at(1, 1)), false},
		{"anonymous struct", NewStructDecl("", nil, at(1, 1)), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine := reporter.NewEngine(nil)
			assert.Equal(t, tc.ok, Validate(tc.node, engine))
			assert.Equal(t, !tc.ok, engine.HasErrors())
		})
	}
}

func TestValidateTree(t *testing.T) {
	t.Parallel()
	engine := reporter.NewEngine(nil)
	assert.True(t, ValidateTree(buildSum(), engine))
	assert.False(t, engine.HasErrors())

	sum := buildSum()
	sum.Right.(*BinaryExpr).Left = nil
	assert.False(t, ValidateTree(sum, engine))
	assert.True(t, engine.HasErrors())
}

func TestValidateParentLinks(t *testing.T) {
	t.Parallel()
	sum := buildSum()
	// Simulate a stolen child: reattach the left operand elsewhere.
	other := NewUnaryExpr(UnaryMinus, sum.Left, at(9, 1))
	_ = other

	engine := reporter.NewEngine(nil)
	assert.False(t, Validate(sum, engine))
	assert.True(t, engine.HasErrors())
}

func TestIsValidIdentifier(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidIdentifier("_x9"))
	assert.True(t, IsValidIdentifier("main"))
	assert.False(t, IsValidIdentifier(""))
	assert.False(t, IsValidIdentifier("9lives"))
	assert.False(t, IsValidIdentifier("no spaces"))
}

func TestEqualAndClone(t *testing.T) {
	t.Parallel()
	original := buildSum()
	cloned := Clone(original).(*BinaryExpr)

	assert.True(t, Equal(original, cloned))
	assert.NotSame(t, original, cloned)
	assert.NotSame(t, original.Left, cloned.Left)
	assert.Nil(t, cloned.Parent(), "a clone is a detached root")

	cloned.Right.(*BinaryExpr).Op = OpDiv
	assert.False(t, Equal(original, cloned))
}

func TestEqualDistinguishes(t *testing.T) {
	t.Parallel()
	a := NewIdentifierExpr("a", at(1, 1))
	alsoA := NewIdentifierExpr("a", at(7, 3))
	b := NewIdentifierExpr("b", at(1, 1))

	assert.True(t, Equal(a, alsoA), "locations are ignored")
	assert.False(t, Equal(a, b))
	assert.False(t, Equal(a, intLit(1, at(1, 1))))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a, nil))
}

func TestEqualComparesChildSlots(t *testing.T) {
	t.Parallel()
	x := func() Expr { return NewIdentifierExpr("x", at(1, 1)) }
	body := func() Stmt { return NewCompoundStmt(at(1, 5)) }

	leftOnly := &BinaryExpr{Op: OpAdd, Left: x()}
	rightOnly := &BinaryExpr{Op: OpAdd, Right: x()}
	assert.False(t, Equal(leftOnly, rightOnly),
		"a missing operand must not line up with the present one")

	initOnly := NewForStmt(x(), nil, nil, body(), at(1, 1))
	postOnly := NewForStmt(nil, nil, x(), body(), at(1, 1))
	assert.False(t, Equal(initOnly, postOnly))
	assert.True(t, Equal(initOnly, NewForStmt(x(), nil, nil, body(), at(2, 1))))

	withElse := NewIfStmt(x(), body(), body(), at(1, 1))
	withoutElse := NewIfStmt(x(), body(), nil, at(1, 1))
	assert.False(t, Equal(withElse, withoutElse))

	bare := NewCaseStmt(x(), nil, at(1, 1))
	withBody := NewCaseStmt(x(), NewBreakStmt(at(1, 5)), at(1, 1))
	assert.False(t, Equal(bare, withBody))
}

func TestCloneSharesBorrowedTypes(t *testing.T) {
	t.Parallel()
	target := NewBasicType(BasicInt, at(1, 2))
	cast := NewCastExpr(target, NewIdentifierExpr("x", at(1, 6)), at(1, 1))

	cloned := Clone(cast).(*CastExpr)
	assert.Same(t, target, cloned.TargetType.(*BasicType),
		"the borrowed target type is shared, not copied")
	assert.NotSame(t, cast.Operand, cloned.Operand)
	assert.True(t, Equal(cast, cloned))
}

func TestCloneFunctionDecl(t *testing.T) {
	t.Parallel()
	intType := NewBasicType(BasicInt, at(1, 1))
	param := NewVarDecl("n", intType, nil, at(1, 11))
	body := NewCompoundStmt(at(1, 15))
	body.AppendStmt(NewReturnStmt(NewIdentifierExpr("n", at(2, 10)), at(2, 3)))
	fn := NewFuncDecl("f", intType, []*VarDecl{param}, body, at(1, 1))
	fn.SetStorage(StorageStatic)

	cloned := Clone(fn).(*FuncDecl)
	assert.True(t, Equal(fn, cloned))
	assert.Equal(t, StorageStatic, cloned.Storage())
	assert.Same(t, intType, cloned.ReturnType.(*BasicType))
	require.Len(t, cloned.Params, 1)
	assert.NotSame(t, param, cloned.Params[0])
	assert.Same(t, cloned, cloned.Params[0].Parent().(*FuncDecl))
}
