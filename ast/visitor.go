package ast

import "errors"

// Visitor holds one optional callback per node variant plus three optional
// hooks. Every field may independently be nil; Accept only calls the slots
// that are set. Recursion into children is the callback's responsibility —
// use the Traverse drivers for whole-tree walks.
type Visitor struct {
	VisitTranslationUnit func(*TranslationUnit)

	VisitLiteralExpr    func(*LiteralExpr)
	VisitIdentifierExpr func(*IdentifierExpr)
	VisitBinaryExpr     func(*BinaryExpr)
	VisitUnaryExpr      func(*UnaryExpr)
	VisitAssignExpr     func(*AssignExpr)
	VisitTernaryExpr    func(*TernaryExpr)
	VisitCallExpr       func(*CallExpr)
	VisitIndexExpr      func(*IndexExpr)
	VisitMemberExpr     func(*MemberExpr)
	VisitCastExpr       func(*CastExpr)

	VisitExprStmt     func(*ExprStmt)
	VisitCompoundStmt func(*CompoundStmt)
	VisitIfStmt       func(*IfStmt)
	VisitWhileStmt    func(*WhileStmt)
	VisitDoWhileStmt  func(*DoWhileStmt)
	VisitForStmt      func(*ForStmt)
	VisitReturnStmt   func(*ReturnStmt)
	VisitBreakStmt    func(*BreakStmt)
	VisitContinueStmt func(*ContinueStmt)
	VisitSwitchStmt   func(*SwitchStmt)
	VisitCaseStmt     func(*CaseStmt)
	VisitLabeledStmt  func(*LabeledStmt)
	VisitGotoStmt     func(*GotoStmt)

	VisitVarDecl     func(*VarDecl)
	VisitFuncDecl    func(*FuncDecl)
	VisitStructDecl  func(*StructDecl)
	VisitUnionDecl   func(*UnionDecl)
	VisitEnumDecl    func(*EnumDecl)
	VisitTypedefDecl func(*TypedefDecl)

	VisitBasicType   func(*BasicType)
	VisitPointerType func(*PointerType)
	VisitArrayType   func(*ArrayType)
	VisitFuncType    func(*FuncType)
	VisitStructType  func(*StructType)
	VisitUnionType   func(*UnionType)
	VisitEnumType    func(*EnumType)
	VisitTypedefName func(*TypedefName)

	// Before runs ahead of the variant callback; returning false skips the
	// node (callback and After included).
	Before func(Node) bool
	// After runs once the variant callback, if any, has returned.
	After func(Node)
	// OnError receives traversal problems, such as a nil node.
	OnError func(Node, error)
}

var errNilNode = errors.New("cannot visit a nil node")

// Accept dispatches n to v's callback for n's variant, bracketed by the
// Before and After hooks. Nil callback slots are skipped silently.
func Accept(n Node, v *Visitor) {
	if v == nil {
		return
	}
	if n == nil {
		if v.OnError != nil {
			v.OnError(nil, errNilNode)
		}
		return
	}
	if v.Before != nil && !v.Before(n) {
		return
	}

	switch n := n.(type) {
	case *TranslationUnit:
		if v.VisitTranslationUnit != nil {
			v.VisitTranslationUnit(n)
		}
	case *LiteralExpr:
		if v.VisitLiteralExpr != nil {
			v.VisitLiteralExpr(n)
		}
	case *IdentifierExpr:
		if v.VisitIdentifierExpr != nil {
			v.VisitIdentifierExpr(n)
		}
	case *BinaryExpr:
		if v.VisitBinaryExpr != nil {
			v.VisitBinaryExpr(n)
		}
	case *UnaryExpr:
		if v.VisitUnaryExpr != nil {
			v.VisitUnaryExpr(n)
		}
	case *AssignExpr:
		if v.VisitAssignExpr != nil {
			v.VisitAssignExpr(n)
		}
	case *TernaryExpr:
		if v.VisitTernaryExpr != nil {
			v.VisitTernaryExpr(n)
		}
	case *CallExpr:
		if v.VisitCallExpr != nil {
			v.VisitCallExpr(n)
		}
	case *IndexExpr:
		if v.VisitIndexExpr != nil {
			v.VisitIndexExpr(n)
		}
	case *MemberExpr:
		if v.VisitMemberExpr != nil {
			v.VisitMemberExpr(n)
		}
	case *CastExpr:
		if v.VisitCastExpr != nil {
			v.VisitCastExpr(n)
		}
	case *ExprStmt:
		if v.VisitExprStmt != nil {
			v.VisitExprStmt(n)
		}
	case *CompoundStmt:
		if v.VisitCompoundStmt != nil {
			v.VisitCompoundStmt(n)
		}
	case *IfStmt:
		if v.VisitIfStmt != nil {
			v.VisitIfStmt(n)
		}
	case *WhileStmt:
		if v.VisitWhileStmt != nil {
			v.VisitWhileStmt(n)
		}
	case *DoWhileStmt:
		if v.VisitDoWhileStmt != nil {
			v.VisitDoWhileStmt(n)
		}
	case *ForStmt:
		if v.VisitForStmt != nil {
			v.VisitForStmt(n)
		}
	case *ReturnStmt:
		if v.VisitReturnStmt != nil {
			v.VisitReturnStmt(n)
		}
	case *BreakStmt:
		if v.VisitBreakStmt != nil {
			v.VisitBreakStmt(n)
		}
	case *ContinueStmt:
		if v.VisitContinueStmt != nil {
			v.VisitContinueStmt(n)
		}
	case *SwitchStmt:
		if v.VisitSwitchStmt != nil {
			v.VisitSwitchStmt(n)
		}
	case *CaseStmt:
		if v.VisitCaseStmt != nil {
			v.VisitCaseStmt(n)
		}
	case *LabeledStmt:
		if v.VisitLabeledStmt != nil {
			v.VisitLabeledStmt(n)
		}
	case *GotoStmt:
		if v.VisitGotoStmt != nil {
			v.VisitGotoStmt(n)
		}
	case *VarDecl:
		if v.VisitVarDecl != nil {
			v.VisitVarDecl(n)
		}
	case *FuncDecl:
		if v.VisitFuncDecl != nil {
			v.VisitFuncDecl(n)
		}
	case *StructDecl:
		if v.VisitStructDecl != nil {
			v.VisitStructDecl(n)
		}
	case *UnionDecl:
		if v.VisitUnionDecl != nil {
			v.VisitUnionDecl(n)
		}
	case *EnumDecl:
		if v.VisitEnumDecl != nil {
			v.VisitEnumDecl(n)
		}
	case *TypedefDecl:
		if v.VisitTypedefDecl != nil {
			v.VisitTypedefDecl(n)
		}
	case *BasicType:
		if v.VisitBasicType != nil {
			v.VisitBasicType(n)
		}
	case *PointerType:
		if v.VisitPointerType != nil {
			v.VisitPointerType(n)
		}
	case *ArrayType:
		if v.VisitArrayType != nil {
			v.VisitArrayType(n)
		}
	case *FuncType:
		if v.VisitFuncType != nil {
			v.VisitFuncType(n)
		}
	case *StructType:
		if v.VisitStructType != nil {
			v.VisitStructType(n)
		}
	case *UnionType:
		if v.VisitUnionType != nil {
			v.VisitUnionType(n)
		}
	case *EnumType:
		if v.VisitEnumType != nil {
			v.VisitEnumType(n)
		}
	case *TypedefName:
		if v.VisitTypedefName != nil {
			v.VisitTypedefName(n)
		}
	}

	if v.After != nil {
		v.After(n)
	}
}

// HasHandler reports whether v has a callback for the given variant.
func HasHandler(v *Visitor, k Kind) bool {
	if v == nil {
		return false
	}
	for i, set := range v.slotsSet() {
		if slotKinds[i] == k {
			return set
		}
	}
	return false
}

// HandlerCount returns the number of variant callbacks set on v, hooks
// excluded.
func HandlerCount(v *Visitor) int {
	if v == nil {
		return 0
	}
	count := 0
	for _, set := range v.slotsSet() {
		if set {
			count++
		}
	}
	return count
}

// slotKinds orders the variants to match slots below.
var slotKinds = [...]Kind{
	KindTranslationUnit,
	KindLiteralExpr, KindIdentifierExpr, KindBinaryExpr, KindUnaryExpr,
	KindAssignExpr, KindTernaryExpr, KindCallExpr, KindIndexExpr,
	KindMemberExpr, KindCastExpr,
	KindExprStmt, KindCompoundStmt, KindIfStmt, KindWhileStmt,
	KindDoWhileStmt, KindForStmt, KindReturnStmt, KindBreakStmt,
	KindContinueStmt, KindSwitchStmt, KindCaseStmt, KindLabeledStmt,
	KindGotoStmt,
	KindVarDecl, KindFuncDecl, KindStructDecl, KindUnionDecl, KindEnumDecl,
	KindTypedefDecl,
	KindBasicType, KindPointerType, KindArrayType, KindFuncType,
	KindStructType, KindUnionType, KindEnumType, KindTypedefName,
}

// slotsSet reports, in slotKinds order, which variant callbacks are set, so
// HasHandler and HandlerCount need no per-variant switch.
func (v *Visitor) slotsSet() []bool {
	return []bool{
		v.VisitTranslationUnit != nil,
		v.VisitLiteralExpr != nil, v.VisitIdentifierExpr != nil, v.VisitBinaryExpr != nil, v.VisitUnaryExpr != nil,
		v.VisitAssignExpr != nil, v.VisitTernaryExpr != nil, v.VisitCallExpr != nil, v.VisitIndexExpr != nil,
		v.VisitMemberExpr != nil, v.VisitCastExpr != nil,
		v.VisitExprStmt != nil, v.VisitCompoundStmt != nil, v.VisitIfStmt != nil, v.VisitWhileStmt != nil,
		v.VisitDoWhileStmt != nil, v.VisitForStmt != nil, v.VisitReturnStmt != nil, v.VisitBreakStmt != nil,
		v.VisitContinueStmt != nil, v.VisitSwitchStmt != nil, v.VisitCaseStmt != nil, v.VisitLabeledStmt != nil,
		v.VisitGotoStmt != nil,
		v.VisitVarDecl != nil, v.VisitFuncDecl != nil, v.VisitStructDecl != nil, v.VisitUnionDecl != nil, v.VisitEnumDecl != nil,
		v.VisitTypedefDecl != nil,
		v.VisitBasicType != nil, v.VisitPointerType != nil, v.VisitArrayType != nil, v.VisitFuncType != nil,
		v.VisitStructType != nil, v.VisitUnionType != nil, v.VisitEnumType != nil, v.VisitTypedefName != nil,
	}
}
