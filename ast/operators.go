package ast

// BinaryOperator enumerates the binary operators of the source language.
// Operators are resolved from their lexemes once at parse time so that later
// stages dispatch on enum values instead of comparing strings.
type BinaryOperator int

const (
	BinAdd BinaryOperator = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinEq
	BinNeq
	BinLt
	BinLeq
	BinGt
	BinGeq
	BinLogAnd
	BinLogOr
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr
)

// String returns the C lexeme of the operator.
func (op BinaryOperator) String() string {
	return [...]string{
		"+", "-", "*", "/", "%",
		"==", "!=", "<", "<=", ">", ">=",
		"&&", "||",
		"&", "|", "^", "<<", ">>",
	}[op]
}

// UnaryOperator enumerates the unary operators, prefix and postfix.
type UnaryOperator int

const (
	UnNot UnaryOperator = iota
	UnNeg
	UnPlus
	UnPreInc
	UnPreDec
	UnPostInc
	UnPostDec
	UnCompl
	UnAddrOf
	UnDeref
)

func (op UnaryOperator) String() string {
	return [...]string{
		"!", "-", "+", "++", "--", "++", "--", "~", "&", "*",
	}[op]
}

// CompoundOperator enumerates the compound-assignment operators.
type CompoundOperator int

const (
	CompAdd CompoundOperator = iota
	CompSub
	CompMul
	CompDiv
	CompMod
	CompBitAnd
	CompBitOr
	CompBitXor
	CompShl
	CompShr
)

func (op CompoundOperator) String() string {
	return [...]string{
		"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=",
	}[op]
}

// PrimitiveType enumerates the primitive data types the parser accepts in
// declarations, parameters, casts, and sizeof expressions.
type PrimitiveType int

const (
	TypeInt PrimitiveType = iota
	TypeChar
	TypeFloat
	TypeDouble
	TypeVoid
)

func (t PrimitiveType) String() string {
	return [...]string{"int", "char", "float", "double", "void"}[t]
}
