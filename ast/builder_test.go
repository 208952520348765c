package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minicc/minicc/reporter"
	"github.com/minicc/minicc/token"
)

func newTestBuilder() (*Builder, *reporter.Collector, *reporter.Engine) {
	coll := &reporter.Collector{}
	engine := reporter.NewEngine(coll)
	return NewBuilder("t.c", engine), coll, engine
}

func TestBuilderBuildsFunction(t *testing.T) {
	t.Parallel()
	b, _, engine := newTestBuilder()

	intType := b.CreateBasicType(BasicInt, at(1, 1))
	param := b.CreateVarDecl("n", intType, nil, at(1, 11))
	require.NotNil(t, param)

	body := b.CreateCompoundStmt(at(1, 15))
	ret := b.CreateReturnStmt(
		b.CreateBinaryExpr(OpMul,
			b.CreateIdentifierExpr("n", at(2, 10)),
			b.CreateIdentifierExpr("n", at(2, 14)),
			at(2, 12)),
		at(2, 3))
	b.AddStmtToCompound(body, ret)

	fn := b.AddFuncDecl("square", intType, []*VarDecl{param}, body, at(1, 1))
	require.NotNil(t, fn)

	assert.False(t, engine.HasErrors())
	require.Len(t, b.Root().Decls, 1)
	assert.Same(t, b.Root(), fn.Parent().(*TranslationUnit))
	assert.True(t, ValidateTree(b.Root(), engine))
	assert.False(t, engine.HasErrors())
}

func TestBuilderRejectsInvalidNames(t *testing.T) {
	t.Parallel()
	b, coll, engine := newTestBuilder()
	intType := b.CreateBasicType(BasicInt, at(1, 1))

	assert.Nil(t, b.AddVarDecl("9lives", intType, nil, at(1, 5)))
	assert.Nil(t, b.AddFuncDecl("", intType, nil, nil, at(2, 1)))
	assert.Nil(t, b.CreateIdentifierExpr("no spaces", at(3, 1)))
	assert.Nil(t, b.CreateGotoStmt("", at(4, 1)))

	assert.Equal(t, 4, engine.ErrorCount())
	assert.Empty(t, b.Root().Decls, "nothing malformed is appended")
	require.NotEmpty(t, coll.Diagnostics)
	assert.Equal(t, "ast-builder", coll.Diagnostics[0].Category)
	assert.Equal(t, 1, coll.Diagnostics[0].Loc.Line)
}

func TestBuilderRejectsMissingChildren(t *testing.T) {
	t.Parallel()
	b, _, engine := newTestBuilder()

	assert.Nil(t, b.CreateBinaryExpr(OpAdd, nil, nil, at(1, 1)))
	assert.Nil(t, b.CreateUnaryExpr(UnaryMinus, nil, at(1, 1)))
	assert.Nil(t, b.CreateIfStmt(nil, nil, nil, at(1, 1)))
	assert.Nil(t, b.CreateWhileStmt(nil, nil, at(1, 1)))
	assert.Nil(t, b.CreateCastExpr(nil, nil, at(1, 1)))
	assert.Nil(t, b.CreatePointerType(nil, at(1, 1)))
	assert.Nil(t, b.AddVarDecl("x", nil, nil, at(1, 1)))
	assert.Nil(t, b.AddTypedefDecl("t", nil, at(1, 1)))

	assert.Equal(t, 8, engine.ErrorCount())
}

func TestBuilderAllowsAnonymousTags(t *testing.T) {
	t.Parallel()
	b, _, engine := newTestBuilder()

	intType := b.CreateBasicType(BasicInt, at(1, 1))
	member := b.CreateVarDecl("x", intType, nil, at(1, 10))
	s := b.AddStructDecl("", []*VarDecl{member}, at(1, 1))
	require.NotNil(t, s)
	assert.Empty(t, s.DeclName())

	e := b.AddEnumDecl("color", []EnumConstant{{Name: "RED"}}, at(2, 1))
	require.NotNil(t, e)
	assert.Nil(t, b.AddEnumDecl("bad", []EnumConstant{{Name: "not ok"}}, at(3, 1)))

	assert.Equal(t, 1, engine.ErrorCount())
}

func TestBuilderLiteralNeedsLiteralToken(t *testing.T) {
	t.Parallel()
	b, _, engine := newTestBuilder()

	lit := b.CreateLiteralExpr(token.Token{
		Kind:     token.IntLit,
		Text:     "7",
		HasValue: true,
		IntValue: 7,
		Base:     10,
	}, at(1, 1))
	require.NotNil(t, lit)
	assert.True(t, lit.Constant())

	assert.Nil(t, b.CreateLiteralExpr(token.Token{Kind: token.Identifier, Text: "x"}, at(1, 5)))
	assert.Equal(t, 1, engine.ErrorCount())
}

func TestBuilderSwitch(t *testing.T) {
	t.Parallel()
	b, _, engine := newTestBuilder()

	cond := b.CreateIdentifierExpr("v", at(1, 9))
	caseOne := b.CreateCaseStmt(
		b.CreateLiteralExpr(token.Token{Kind: token.IntLit, Text: "1", HasValue: true, IntValue: 1, Base: 10}, at(2, 8)),
		b.CreateBreakStmt(at(2, 11)),
		at(2, 3))
	dflt := b.CreateDefaultStmt(b.CreateBreakStmt(at(3, 12)), at(3, 3))

	sw := b.CreateSwitchStmt(cond, []*CaseStmt{caseOne, dflt}, at(1, 1))
	require.NotNil(t, sw)
	require.Len(t, sw.Cases, 2)
	assert.Same(t, sw, sw.Cases[0].Parent().(*SwitchStmt))
	assert.True(t, sw.Cases[1].IsDefault)
	assert.False(t, engine.HasErrors())

	assert.Nil(t, b.CreateCaseStmt(nil, nil, at(4, 1)), "a case clause needs a value")
	assert.True(t, engine.HasErrors())
}

func TestBuilderCompoundAppendGuards(t *testing.T) {
	t.Parallel()
	b, _, engine := newTestBuilder()

	block := b.CreateCompoundStmt(at(1, 1))
	b.AddStmtToCompound(nil, b.CreateBreakStmt(at(2, 1)))
	b.AddDeclToCompound(block, nil)
	assert.Equal(t, 2, engine.ErrorCount())
	assert.Empty(t, block.Stmts)
	assert.Empty(t, block.Decls)

	b.AddStmtToCompound(block, b.CreateContinueStmt(at(3, 1)))
	require.Len(t, block.Stmts, 1)
	assert.Same(t, block, block.Stmts[0].Parent().(*CompoundStmt))
}
