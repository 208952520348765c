package ast

import "github.com/minicc/minicc/token"

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	stmt
	X Expr
}

func (*ExprStmt) Kind() Kind { return KindExprStmt }

// NewExprStmt returns an expression statement and claims the expression.
func NewExprStmt(x Expr, loc token.Location) *ExprStmt {
	s := &ExprStmt{X: x}
	s.loc = loc
	claim(s, x)
	return s
}

// CompoundStmt is a braced block holding local declarations followed by
// statements.
type CompoundStmt struct {
	stmt
	Decls []Decl
	Stmts []Stmt
}

func (*CompoundStmt) Kind() Kind { return KindCompoundStmt }

// NewCompoundStmt returns an empty block.
func NewCompoundStmt(loc token.Location) *CompoundStmt {
	s := &CompoundStmt{}
	s.loc = loc
	return s
}

// AppendDecl adds a local declaration to the block and claims it.
func (s *CompoundStmt) AppendDecl(d Decl) {
	if d != nil {
		d.setParent(s)
		s.Decls = append(s.Decls, d)
	}
}

// AppendStmt adds a statement to the block and claims it.
func (s *CompoundStmt) AppendStmt(st Stmt) {
	if st != nil {
		st.setParent(s)
		s.Stmts = append(s.Stmts, st)
	}
}

// IfStmt is an if statement with an optional else branch.
type IfStmt struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt
}

func (*IfStmt) Kind() Kind { return KindIfStmt }

// NewIfStmt returns an if statement and claims its children. els may be nil.
func NewIfStmt(cond Expr, then, els Stmt, loc token.Location) *IfStmt {
	s := &IfStmt{Cond: cond, Then: then, Else: els}
	s.loc = loc
	claim(s, cond)
	claim(s, then)
	claim(s, els)
	return s
}

// WhileStmt is a while loop.
type WhileStmt struct {
	stmt
	Cond Expr
	Body Stmt
}

func (*WhileStmt) Kind() Kind { return KindWhileStmt }

// NewWhileStmt returns a while loop and claims its children.
func NewWhileStmt(cond Expr, body Stmt, loc token.Location) *WhileStmt {
	s := &WhileStmt{Cond: cond, Body: body}
	s.loc = loc
	claim(s, cond)
	claim(s, body)
	return s
}

// DoWhileStmt is a do-while loop.
type DoWhileStmt struct {
	stmt
	Body Stmt
	Cond Expr
}

func (*DoWhileStmt) Kind() Kind { return KindDoWhileStmt }

// NewDoWhileStmt returns a do-while loop and claims its children.
func NewDoWhileStmt(body Stmt, cond Expr, loc token.Location) *DoWhileStmt {
	s := &DoWhileStmt{Body: body, Cond: cond}
	s.loc = loc
	claim(s, body)
	claim(s, cond)
	return s
}

// ForStmt is a for loop. Init, Cond, and Post are each optional.
type ForStmt struct {
	stmt
	Init Expr
	Cond Expr
	Post Expr
	Body Stmt
}

func (*ForStmt) Kind() Kind { return KindForStmt }

// NewForStmt returns a for loop and claims its children.
func NewForStmt(init, cond, post Expr, body Stmt, loc token.Location) *ForStmt {
	s := &ForStmt{Init: init, Cond: cond, Post: post, Body: body}
	s.loc = loc
	claim(s, init)
	claim(s, cond)
	claim(s, post)
	claim(s, body)
	return s
}

// ReturnStmt is a return statement with an optional result expression.
type ReturnStmt struct {
	stmt
	Result Expr
}

func (*ReturnStmt) Kind() Kind { return KindReturnStmt }

// NewReturnStmt returns a return statement; result may be nil.
func NewReturnStmt(result Expr, loc token.Location) *ReturnStmt {
	s := &ReturnStmt{Result: result}
	s.loc = loc
	claim(s, result)
	return s
}

// BreakStmt is a break statement.
type BreakStmt struct {
	stmt
}

func (*BreakStmt) Kind() Kind { return KindBreakStmt }

// NewBreakStmt returns a break statement.
func NewBreakStmt(loc token.Location) *BreakStmt {
	s := &BreakStmt{}
	s.loc = loc
	return s
}

// ContinueStmt is a continue statement.
type ContinueStmt struct {
	stmt
}

func (*ContinueStmt) Kind() Kind { return KindContinueStmt }

// NewContinueStmt returns a continue statement.
func NewContinueStmt(loc token.Location) *ContinueStmt {
	s := &ContinueStmt{}
	s.loc = loc
	return s
}

// SwitchStmt is a switch statement over an ordered list of case clauses.
type SwitchStmt struct {
	stmt
	Cond  Expr
	Cases []*CaseStmt
}

func (*SwitchStmt) Kind() Kind { return KindSwitchStmt }

// NewSwitchStmt returns a switch statement and claims the condition and
// every case.
func NewSwitchStmt(cond Expr, cases []*CaseStmt, loc token.Location) *SwitchStmt {
	s := &SwitchStmt{Cond: cond, Cases: cases}
	s.loc = loc
	claim(s, cond)
	for _, c := range cases {
		if c != nil {
			c.setParent(s)
		}
	}
	return s
}

// AppendCase adds a case clause and claims it.
func (s *SwitchStmt) AppendCase(c *CaseStmt) {
	if c != nil {
		c.setParent(s)
		s.Cases = append(s.Cases, c)
	}
}

// CaseStmt is one clause of a switch: a case label with its constant
// expression, or the default label (IsDefault set, Value nil).
type CaseStmt struct {
	stmt
	IsDefault bool
	Value     Expr
	Body      Stmt
}

func (*CaseStmt) Kind() Kind { return KindCaseStmt }

// NewCaseStmt returns a case clause and claims the value and body.
func NewCaseStmt(value Expr, body Stmt, loc token.Location) *CaseStmt {
	s := &CaseStmt{Value: value, Body: body}
	s.loc = loc
	claim(s, value)
	claim(s, body)
	return s
}

// NewDefaultStmt returns a default clause and claims the body.
func NewDefaultStmt(body Stmt, loc token.Location) *CaseStmt {
	s := &CaseStmt{IsDefault: true, Body: body}
	s.loc = loc
	claim(s, body)
	return s
}

// LabeledStmt is a goto target label with its statement.
type LabeledStmt struct {
	stmt
	Label string
	Stmt  Stmt
}

func (*LabeledStmt) Kind() Kind { return KindLabeledStmt }

// NewLabeledStmt returns a labeled statement and claims the statement.
func NewLabeledStmt(label string, st Stmt, loc token.Location) *LabeledStmt {
	s := &LabeledStmt{Label: label, Stmt: st}
	s.loc = loc
	claim(s, st)
	return s
}

// GotoStmt is a goto statement.
type GotoStmt struct {
	stmt
	Label string
}

func (*GotoStmt) Kind() Kind { return KindGotoStmt }

// NewGotoStmt returns a goto statement.
func NewGotoStmt(label string, loc token.Location) *GotoStmt {
	s := &GotoStmt{Label: label}
	s.loc = loc
	return s
}
