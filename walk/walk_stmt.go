package walk

import (
	"github.com/DannyBimma/gb-en-compiler/ast"
	"github.com/DannyBimma/gb-en-compiler/common"
)

// walkStmt validates a single statement.  Nodes that are not statement kinds
// are treated as expression statements.
func (w *Walker) walkStmt(node ast.Node) {
	switch n := node.(type) {
	case nil:
	case *ast.Declaration:
		w.walkDeclaration(n)
	case *ast.Block:
		for _, stmt := range n.Stmts {
			w.walkStmt(stmt)
		}
	case *ast.If:
		w.walkExpr(n.Cond)
		w.walkStmt(n.Then)
		if n.Else != nil {
			w.walkStmt(n.Else)
		}
	case *ast.While:
		w.walkExpr(n.Cond)
		w.walkStmt(n.Body)
	case *ast.DoWhile:
		w.walkStmt(n.Body)
		w.walkExpr(n.Cond)
	case *ast.For:
		if n.Init != nil {
			w.walkStmt(n.Init)
		}
		w.walkExpr(n.Cond)
		w.walkExpr(n.Post)
		w.walkStmt(n.Body)
	case *ast.Return:
		w.walkExpr(n.Value)
	case *ast.Switch:
		w.walkExpr(n.Tag)
		for _, c := range n.Cases {
			w.walkExpr(c.Value)
			for _, stmt := range c.Body {
				w.walkStmt(stmt)
			}
		}
	case *ast.Label:
		if n.Stmt != nil {
			w.walkStmt(n.Stmt)
		}
	case *ast.Break, *ast.Continue, *ast.Goto:
		// Always structurally valid; control-flow placement is not checked.
	default:
		w.walkExpr(node)
	}
}

// walkDeclaration checks duplicate declaration in the current scope only and
// records the new symbol, then validates the size and initializer
// expressions.
func (w *Walker) walkDeclaration(decl *ast.Declaration) {
	w.defineLocal(&common.Symbol{
		Name:         decl.Name,
		DeclaredType: decl.Type.String(),
		ScopeName:    w.currentScope().name,
		DeclLine:     decl.Line(),
		IsArray:      decl.IsArray,
	})

	if decl.Size != nil {
		w.walkExpr(decl.Size)
	}
	if decl.Init != nil {
		w.walkExpr(decl.Init)
	}
}

// walkExpr validates an expression subtree.
func (w *Walker) walkExpr(node ast.Node) {
	switch n := node.(type) {
	case nil:
	case *ast.Literal:
		// Literals are always valid.
	case *ast.Identifier:
		if w.lookup(n.Name) == nil {
			w.errorAt(n.Line(), "Undeclared variable '%s'", n.Name)
		}
	case *ast.BinaryOp:
		w.walkExpr(n.Left)
		w.walkExpr(n.Right)
	case *ast.UnaryOp:
		w.walkExpr(n.Operand)
	case *ast.FunctionCall:
		w.walkCall(n)
	case *ast.ArrayAccess:
		if sym := w.lookup(n.Name); sym == nil {
			w.errorAt(n.Line(), "Undeclared array '%s'", n.Name)
		} else if !sym.IsArray {
			w.errorAt(n.Line(), "'%s' is not an array", n.Name)
		}
		w.walkExpr(n.Index)
	case *ast.Assignment:
		w.walkExpr(n.Target)
		w.walkExpr(n.Value)
	case *ast.CompoundAssignment:
		w.walkExpr(n.Target)
		w.walkExpr(n.Value)
	case *ast.MemberAccess:
		// Member names are not resolved against structure definitions; only
		// the object expression is validated.
		w.walkExpr(n.Object)
	case *ast.Ternary:
		w.walkExpr(n.Cond)
		w.walkExpr(n.Then)
		w.walkExpr(n.Else)
	case *ast.SizeOf:
		w.walkExpr(n.Operand)
	case *ast.Cast:
		w.walkExpr(n.Operand)
	}
}

// walkCall validates a function call: the callee must be a global symbol or
// a recognized standard-library routine.  Arguments are validated regardless.
func (w *Walker) walkCall(call *ast.FunctionCall) {
	if _, ok := w.globalScope.symbols[call.Name]; !ok && !common.IsStdFunc(call.Name) {
		w.errorAt(call.Line(), "Undefined function '%s'", call.Name)
	}

	for _, arg := range call.Args {
		w.walkExpr(arg)
	}
}
