package ast

// LiteralKind enumerates the lexical categories of literals.
type LiteralKind int

const (
	LitNumber LiteralKind = iota
	LitString
	LitChar
)

// Literal is a numeric, string, or character literal.  Value is the raw
// lexeme: string and character literals keep their surrounding quotes.
type Literal struct {
	NodeBase

	Kind  LiteralKind
	Value string
}

// Identifier is a reference to a named variable.
type Identifier struct {
	NodeBase

	Name string
}

// BinaryOp applies a binary operator to two operands.
type BinaryOp struct {
	NodeBase

	Op          BinaryOperator
	Left, Right Node
}

// UnaryOp applies a prefix or postfix unary operator to one operand.
type UnaryOp struct {
	NodeBase

	Op      UnaryOperator
	Operand Node
}

// FunctionCall invokes a named function with positional arguments.
type FunctionCall struct {
	NodeBase

	Name string
	Args []Node
}

// ArrayAccess indexes a named array.
type ArrayAccess struct {
	NodeBase

	Name  string
	Index Node
}

// Assignment stores Value into Target.  Assignment is right-associative, so
// Value may itself be an Assignment.
type Assignment struct {
	NodeBase

	Target Node
	Value  Node
}

// CompoundAssignment applies a compound operator such as `+=` to Target.
type CompoundAssignment struct {
	NodeBase

	Op     CompoundOperator
	Target Node
	Value  Node
}

// MemberAccess selects a member of a structure value (`.`) or of a structure
// referenced through a pointer (`->`).
type MemberAccess struct {
	NodeBase

	Object  Node
	Member  string
	IsArrow bool
}

// Ternary is the conditional operator `cond ? then : else`.
type Ternary struct {
	NodeBase

	Cond Node
	Then Node
	Else Node
}

// SizeOf is a `sizeof` expression.  Exactly one of TypeName and Operand is
// set: TypeName for `sizeof(int)`, Operand for `sizeof expr`.
type SizeOf struct {
	NodeBase

	TypeName string
	Operand  Node
}

// Cast converts an expression to a primitive type.
type Cast struct {
	NodeBase

	Target  PrimitiveType
	Operand Node
}
