package ast

import (
	"bytes"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireDump(t *testing.T, n Node, want string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Dump(n, &buf))
	if got := buf.String(); got != want {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "want",
			ToFile:   "got",
			Context:  3,
		})
		t.Errorf("dump mismatch:\n%s", diff)
	}
}

func TestDumpVariable(t *testing.T) {
	t.Parallel()
	tu := NewTranslationUnit("t.c", at(1, 1))
	intType := NewBasicType(BasicInt, at(1, 1))
	tu.Append(NewVarDecl("x", intType, intLit(42, at(1, 9)), at(1, 5)))

	requireDump(t, tu, `TranslationUnit "t.c" <t.c:1:1>
  VarDecl int x <t.c:1:5>
    LiteralExpr 42 <t.c:1:9>
`)
}

func TestDumpFunction(t *testing.T) {
	t.Parallel()
	intType := NewBasicType(BasicInt, at(1, 1))
	param := NewVarDecl("n", intType, nil, at(1, 12))
	body := NewCompoundStmt(at(1, 15))
	body.AppendStmt(NewIfStmt(
		NewBinaryExpr(OpGt, NewIdentifierExpr("n", at(2, 7)), intLit(42, at(2, 11)), at(2, 9)),
		NewReturnStmt(NewIdentifierExpr("n", at(2, 22)), at(2, 15)),
		nil,
		at(2, 3),
	))
	fn := NewFuncDecl("f", intType, []*VarDecl{param}, body, at(1, 1))

	requireDump(t, fn, `FuncDecl int f, 1 params <t.c:1:1>
  VarDecl int n <t.c:1:12>
  CompoundStmt 0 decls, 1 stmts <t.c:1:15>
    IfStmt <t.c:2:3>
      BinaryExpr > <t.c:2:9>
        IdentifierExpr n <t.c:2:7>
        LiteralExpr 42 <t.c:2:11>
      ReturnStmt <t.c:2:15>
        IdentifierExpr n <t.c:2:22>
`)
}

func TestDumpCastShowsBorrowedType(t *testing.T) {
	t.Parallel()
	target := NewPointerType(NewBasicType(BasicChar, at(1, 2)), at(1, 2))
	cast := NewCastExpr(target, NewIdentifierExpr("p", at(1, 9)), at(1, 1))

	requireDump(t, cast, `CastExpr (char*) <t.c:1:1>
  IdentifierExpr p <t.c:1:9>
`)
}

func TestTypeString(t *testing.T) {
	t.Parallel()
	intType := NewBasicType(BasicInt, at(1, 1))

	longUnsigned := NewBasicType(BasicInt, at(1, 1))
	longUnsigned.IsUnsigned = true
	longUnsigned.IsLong = true

	constChar := NewBasicType(BasicChar, at(1, 1))
	constChar.SetQualifiers(true, false)

	testCases := []struct {
		name string
		typ  TypeSpec
		want string
	}{
		{"basic", intType, "int"},
		{"modifiers", longUnsigned, "unsigned long int"},
		{"qualifier", constChar, "const char"},
		{"pointer", NewPointerType(intType, at(1, 1)), "int*"},
		{"array", NewArrayType(intType, nil, at(1, 1)), "int[]"},
		{"function", NewFuncType(intType, []TypeSpec{intType}, true, at(1, 1)), "int(int, ...)"},
		{"struct", NewStructType("point", nil, at(1, 1)), "struct point"},
		{"union", NewUnionType("u", nil, at(1, 1)), "union u"},
		{"enum", NewEnumType("color", nil, at(1, 1)), "enum color"},
		{"typedef", NewTypedefName("size_t", at(1, 1)), "size_t"},
		{"nil", nil, "<nil>"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TypeString(tc.typ))
		})
	}
}

func TestDumpAnonymousStruct(t *testing.T) {
	t.Parallel()
	s := NewStructDecl("", []*VarDecl{
		NewVarDecl("x", NewBasicType(BasicInt, at(1, 10)), nil, at(1, 14)),
	}, at(1, 1))

	requireDump(t, s, `StructDecl <anonymous>, 1 members <t.c:1:1>
  VarDecl int x <t.c:1:14>
`)
}
