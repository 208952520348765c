package ast

import (
	"fmt"
	"io"
	"strings"
)

// TypeString renders a type specifier as approximate C source, for dumps
// and diagnostics.
func TypeString(t TypeSpec) string {
	switch t := t.(type) {
	case nil:
		return "<nil>"
	case *BasicType:
		var parts []string
		if t.Const() {
			parts = append(parts, "const")
		}
		if t.Volatile() {
			parts = append(parts, "volatile")
		}
		if t.IsUnsigned {
			parts = append(parts, "unsigned")
		} else if t.IsSigned {
			parts = append(parts, "signed")
		}
		if t.IsLong {
			parts = append(parts, "long")
		} else if t.IsShort {
			parts = append(parts, "short")
		}
		parts = append(parts, t.Basic.String())
		return strings.Join(parts, " ")
	case *PointerType:
		return TypeString(t.Elem) + "*"
	case *ArrayType:
		return TypeString(t.Elem) + "[]"
	case *FuncType:
		params := make([]string, 0, len(t.Params)+1)
		for _, p := range t.Params {
			params = append(params, TypeString(p))
		}
		if t.IsVariadic {
			params = append(params, "...")
		}
		return fmt.Sprintf("%s(%s)", TypeString(t.Return), strings.Join(params, ", "))
	case *StructType:
		return "struct " + t.Name
	case *UnionType:
		return "union " + t.Name
	case *EnumType:
		return "enum " + t.Name
	case *TypedefName:
		return t.Name
	default:
		return t.Kind().String()
	}
}

// Dumper writes an indented textual rendering of a tree, one node per line,
// each line carrying the variant name, a variant-specific detail, and the
// node's location.
type Dumper struct {
	w     io.Writer
	depth int
	err   error
	vis   *Visitor
}

// NewDumper returns a dumper writing to w.
func NewDumper(w io.Writer) *Dumper {
	d := &Dumper{w: w}
	d.vis = &Visitor{
		VisitTranslationUnit: func(n *TranslationUnit) { d.line(n, "%q", n.Filename) },
		VisitLiteralExpr:     func(n *LiteralExpr) { d.line(n, "%s", n.Value.Text) },
		VisitIdentifierExpr:  func(n *IdentifierExpr) { d.line(n, "%s", n.Name) },
		VisitBinaryExpr:      func(n *BinaryExpr) { d.line(n, "%s", n.Op) },
		VisitUnaryExpr: func(n *UnaryExpr) {
			if n.Op.IsPrefix() {
				d.line(n, "prefix %s", n.Op)
			} else {
				d.line(n, "postfix %s", n.Op)
			}
		},
		VisitAssignExpr:  func(n *AssignExpr) { d.line(n, "%s", n.Op) },
		VisitTernaryExpr: func(n *TernaryExpr) { d.line(n, "") },
		VisitCallExpr:    func(n *CallExpr) { d.line(n, "%d args", len(n.Args)) },
		VisitIndexExpr:   func(n *IndexExpr) { d.line(n, "") },
		VisitMemberExpr: func(n *MemberExpr) {
			if n.IsArrow {
				d.line(n, "->%s", n.Member)
			} else {
				d.line(n, ".%s", n.Member)
			}
		},
		VisitCastExpr: func(n *CastExpr) { d.line(n, "(%s)", TypeString(n.TargetType)) },

		VisitExprStmt:     func(n *ExprStmt) { d.line(n, "") },
		VisitCompoundStmt: func(n *CompoundStmt) { d.line(n, "%d decls, %d stmts", len(n.Decls), len(n.Stmts)) },
		VisitIfStmt: func(n *IfStmt) {
			if n.Else != nil {
				d.line(n, "with else")
			} else {
				d.line(n, "")
			}
		},
		VisitWhileStmt:    func(n *WhileStmt) { d.line(n, "") },
		VisitDoWhileStmt:  func(n *DoWhileStmt) { d.line(n, "") },
		VisitForStmt:      func(n *ForStmt) { d.line(n, "") },
		VisitReturnStmt:   func(n *ReturnStmt) { d.line(n, "") },
		VisitBreakStmt:    func(n *BreakStmt) { d.line(n, "") },
		VisitContinueStmt: func(n *ContinueStmt) { d.line(n, "") },
		VisitSwitchStmt:   func(n *SwitchStmt) { d.line(n, "%d cases", len(n.Cases)) },
		VisitCaseStmt: func(n *CaseStmt) {
			if n.IsDefault {
				d.line(n, "default")
			} else {
				d.line(n, "case")
			}
		},
		VisitLabeledStmt: func(n *LabeledStmt) { d.line(n, "%s:", n.Label) },
		VisitGotoStmt:    func(n *GotoStmt) { d.line(n, "goto %s", n.Label) },

		VisitVarDecl: func(n *VarDecl) { d.line(n, "%s %s", TypeString(n.Type), n.DeclName()) },
		VisitFuncDecl: func(n *FuncDecl) {
			detail := fmt.Sprintf("%s %s, %d params", TypeString(n.ReturnType), n.DeclName(), len(n.Params))
			if n.Body == nil {
				detail += ", prototype"
			}
			d.line(n, "%s", detail)
		},
		VisitStructDecl:  func(n *StructDecl) { d.line(n, "%s, %d members", tagOrAnon(n.DeclName()), len(n.Members)) },
		VisitUnionDecl:   func(n *UnionDecl) { d.line(n, "%s, %d members", tagOrAnon(n.DeclName()), len(n.Members)) },
		VisitEnumDecl:    func(n *EnumDecl) { d.line(n, "%s, %d constants", tagOrAnon(n.DeclName()), len(n.Constants)) },
		VisitTypedefDecl: func(n *TypedefDecl) { d.line(n, "%s = %s", n.DeclName(), TypeString(n.Aliased)) },

		VisitBasicType:   func(n *BasicType) { d.line(n, "%s", TypeString(n)) },
		VisitPointerType: func(n *PointerType) { d.line(n, "%s", TypeString(n)) },
		VisitArrayType:   func(n *ArrayType) { d.line(n, "%s", TypeString(n)) },
		VisitFuncType:    func(n *FuncType) { d.line(n, "%s", TypeString(n)) },
		VisitStructType:  func(n *StructType) { d.line(n, "%s", TypeString(n)) },
		VisitUnionType:   func(n *UnionType) { d.line(n, "%s", TypeString(n)) },
		VisitEnumType:    func(n *EnumType) { d.line(n, "%s", TypeString(n)) },
		VisitTypedefName: func(n *TypedefName) { d.line(n, "%s", TypeString(n)) },
	}
	return d
}

// Dump writes the subtree rooted at n and returns the first write error, if
// any.
func (d *Dumper) Dump(n Node) error {
	d.depth = 0
	d.err = nil
	d.dump(n)
	return d.err
}

func (d *Dumper) dump(n Node) {
	if n == nil || d.err != nil {
		return
	}
	Accept(n, d.vis)
	d.depth++
	for _, c := range children(n) {
		d.dump(c)
	}
	d.depth--
}

func (d *Dumper) line(n Node, format string, args ...any) {
	if d.err != nil {
		return
	}
	detail := fmt.Sprintf(format, args...)
	indent := strings.Repeat("  ", d.depth)
	var err error
	if detail == "" {
		_, err = fmt.Fprintf(d.w, "%s%s <%s>\n", indent, n.Kind(), n.Loc())
	} else {
		_, err = fmt.Fprintf(d.w, "%s%s %s <%s>\n", indent, n.Kind(), detail, n.Loc())
	}
	if err != nil {
		d.err = err
	}
}

func tagOrAnon(name string) string {
	if name == "" {
		return "<anonymous>"
	}
	return name
}

// Dump writes an indented rendering of the subtree rooted at n to w.
func Dump(n Node, w io.Writer) error {
	return NewDumper(w).Dump(n)
}
