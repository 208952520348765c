package ast

// children returns n's owned children in source order. Borrowed references
// (type specifiers held by declarations, casts, pointers, and so on) are not
// children and are never returned; the one owned edge below a type specifier
// is an ArrayType's size expression.
func children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	addExpr := func(e Expr) {
		if e != nil {
			out = append(out, e)
		}
	}
	addStmt := func(s Stmt) {
		if s != nil {
			out = append(out, s)
		}
	}

	switch n := n.(type) {
	case *TranslationUnit:
		for _, d := range n.Decls {
			add(d)
		}
	case *BinaryExpr:
		addExpr(n.Left)
		addExpr(n.Right)
	case *UnaryExpr:
		addExpr(n.Operand)
	case *AssignExpr:
		addExpr(n.Target)
		addExpr(n.Value)
	case *TernaryExpr:
		addExpr(n.Cond)
		addExpr(n.Then)
		addExpr(n.Else)
	case *CallExpr:
		addExpr(n.Fun)
		for _, a := range n.Args {
			addExpr(a)
		}
	case *IndexExpr:
		addExpr(n.Base)
		addExpr(n.Index)
	case *MemberExpr:
		addExpr(n.Base)
	case *CastExpr:
		addExpr(n.Operand)
	case *ExprStmt:
		addExpr(n.X)
	case *CompoundStmt:
		for _, d := range n.Decls {
			add(d)
		}
		for _, s := range n.Stmts {
			addStmt(s)
		}
	case *IfStmt:
		addExpr(n.Cond)
		addStmt(n.Then)
		addStmt(n.Else)
	case *WhileStmt:
		addExpr(n.Cond)
		addStmt(n.Body)
	case *DoWhileStmt:
		addStmt(n.Body)
		addExpr(n.Cond)
	case *ForStmt:
		addExpr(n.Init)
		addExpr(n.Cond)
		addExpr(n.Post)
		addStmt(n.Body)
	case *ReturnStmt:
		addExpr(n.Result)
	case *SwitchStmt:
		addExpr(n.Cond)
		for _, c := range n.Cases {
			if c != nil {
				out = append(out, c)
			}
		}
	case *CaseStmt:
		addExpr(n.Value)
		addStmt(n.Body)
	case *LabeledStmt:
		addStmt(n.Stmt)
	case *VarDecl:
		addExpr(n.Init)
	case *FuncDecl:
		for _, p := range n.Params {
			if p != nil {
				out = append(out, p)
			}
		}
		if n.Body != nil {
			out = append(out, n.Body)
		}
	case *StructDecl:
		for _, m := range n.Members {
			if m != nil {
				out = append(out, m)
			}
		}
	case *UnionDecl:
		for _, m := range n.Members {
			if m != nil {
				out = append(out, m)
			}
		}
	case *EnumDecl:
		for _, c := range n.Constants {
			addExpr(c.Value)
		}
	case *ArrayType:
		addExpr(n.Size)
	}
	return out
}

// TraverseDFS walks the subtree rooted at n depth-first, dispatching every
// node to v. With preorder true a node is visited before its children,
// otherwise after.
func TraverseDFS(n Node, v *Visitor, preorder bool) {
	TraverseDFSDepth(n, v, preorder, 0)
}

// TraverseDFSDepth is TraverseDFS with a depth cap: only nodes fewer than
// maxDepth levels below n are visited, so a cap of 1 visits n alone. A
// maxDepth of 0 means no cap.
func TraverseDFSDepth(n Node, v *Visitor, preorder bool, maxDepth int) {
	if n == nil || v == nil {
		return
	}
	traverseDFS(n, v, preorder, 0, maxDepth)
}

func traverseDFS(n Node, v *Visitor, preorder bool, depth, maxDepth int) {
	if maxDepth > 0 && depth >= maxDepth {
		return
	}
	if preorder {
		Accept(n, v)
	}
	for _, c := range children(n) {
		traverseDFS(c, v, preorder, depth+1, maxDepth)
	}
	if !preorder {
		Accept(n, v)
	}
}

// TraverseBFS walks the subtree rooted at n breadth-first, visiting each
// level left to right before descending.
func TraverseBFS(n Node, v *Visitor) {
	if n == nil || v == nil {
		return
	}
	queue := []Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		Accept(cur, v)
		queue = append(queue, children(cur)...)
	}
}

// Inspect walks the subtree in preorder, calling f for every node; f
// returning false prunes the node's subtree.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || f == nil {
		return
	}
	if !f(n) {
		return
	}
	for _, c := range children(n) {
		Inspect(c, f)
	}
}
