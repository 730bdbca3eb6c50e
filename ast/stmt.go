package ast

// Block is a brace-delimited sequence of statements.
type Block struct {
	NodeBase

	Stmts []Node
}

// Declaration declares a scalar variable or an array.  For arrays, Size holds
// the declared element count expression and may be nil (`int a[];`).  For
// scalars, Init holds the optional initializer expression.
type Declaration struct {
	NodeBase

	Type    PrimitiveType
	Name    string
	IsArray bool
	Size    Node
	Init    Node
}

// If is a conditional statement.  Else may be nil.  An `else if` chain is
// represented as a nested If in the else branch; there is no dedicated node.
type If struct {
	NodeBase

	Cond Node
	Then Node
	Else Node
}

// While is a pre-tested loop.
type While struct {
	NodeBase

	Cond Node
	Body Node
}

// DoWhile is a post-tested loop.
type DoWhile struct {
	NodeBase

	Body Node
	Cond Node
}

// For is a C-style three-clause loop.  Any of Init, Cond, and Post may be
// nil.  Init may itself be a Declaration.
type For struct {
	NodeBase

	Init Node
	Cond Node
	Post Node
	Body Node
}

// Return exits the enclosing function.  Value is nil for a bare `return;`.
type Return struct {
	NodeBase

	Value Node
}

// Break exits the innermost enclosing loop or switch.
type Break struct {
	NodeBase
}

// Continue skips to the next iteration of the innermost enclosing loop.
type Continue struct {
	NodeBase
}

// Switch selects among case clauses by the value of Tag.  Cases appear in
// source order; fallthrough is the default and is modeled structurally, not
// executed.
type Switch struct {
	NodeBase

	Tag   Node
	Cases []*CaseClause
}

// CaseClause is a single `case value:` or `default:` clause of a switch.
// Value is nil for the default clause.
type CaseClause struct {
	NodeBase

	Value Node
	Body  []Node
}

// Goto is an unconditional jump to a label.
type Goto struct {
	NodeBase

	Target string
}

// Label names a point in a function body.  Stmt is the labeled statement and
// may be nil when the label immediately precedes a closing brace.
type Label struct {
	NodeBase

	Name string
	Stmt Node
}
