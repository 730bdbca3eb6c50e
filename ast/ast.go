// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the semantic checker and the translator.  The tree is a strict
// tree: every node exclusively owns its children and no node is shared.
package ast

// Node is the abstract interface for all AST nodes.
type Node interface {
	// Line returns the 1-based source line the node begins on.
	Line() int

	// Col returns the 1-based source column the node begins on.
	Col() int
}

// NodeBase is a utility base struct for all AST nodes.
type NodeBase struct {
	line, col int
}

// NewNodeBase creates a new node base at the given position.
func NewNodeBase(line, col int) NodeBase {
	return NodeBase{line: line, col: col}
}

func (nb NodeBase) Line() int {
	return nb.line
}

func (nb NodeBase) Col() int {
	return nb.col
}
