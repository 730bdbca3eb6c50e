package trans

import (
	"fmt"
	"strings"

	"github.com/DannyBimma/gb-en-compiler/ast"
	"github.com/DannyBimma/gb-en-compiler/common"
)

// binaryPhrases maps each binary operator to its phrase template.  The left
// and right operand phrases are interpolated in order.
var binaryPhrases = map[ast.BinaryOperator]string{
	ast.BinAdd:    "the sum of %s and %s",
	ast.BinSub:    "the difference between %s and %s",
	ast.BinMul:    "the product of %s and %s",
	ast.BinDiv:    "%s divided by %s",
	ast.BinMod:    "the remainder when %s is divided by %s",
	ast.BinEq:     "%s is equal to %s",
	ast.BinNeq:    "%s is not equal to %s",
	ast.BinLt:     "%s is less than %s",
	ast.BinLeq:    "%s is less than or equal to %s",
	ast.BinGt:     "%s is greater than %s",
	ast.BinGeq:    "%s is greater than or equal to %s",
	ast.BinLogAnd: "both %s and %s",
	ast.BinLogOr:  "either %s or %s",
	ast.BinBitAnd: "the bitwise AND of %s and %s",
	ast.BinBitOr:  "the bitwise OR of %s and %s",
	ast.BinBitXor: "the bitwise XOR of %s and %s",
	ast.BinShl:    "%s left-shifted by %s bits",
	ast.BinShr:    "%s right-shifted by %s bits",
}

// unaryPhrases maps each unary operator to its phrase template.  Prefix
// increment and decrement describe the new value; the postfix forms describe
// the action.
var unaryPhrases = map[ast.UnaryOperator]string{
	ast.UnNot:     "not %s",
	ast.UnNeg:     "negative %s",
	ast.UnPlus:    "%s",
	ast.UnPreInc:  "%s incremented by 1",
	ast.UnPreDec:  "%s decremented by 1",
	ast.UnPostInc: "increment %s by 1",
	ast.UnPostDec: "decrement %s by 1",
	ast.UnCompl:   "the bitwise complement of %s",
	ast.UnAddrOf:  "the address of %s",
	ast.UnDeref:   "the value stored at the memory location referenced by %s",
}

// compoundPhrases maps each compound-assignment operator to its phrase
// template.  The target and value phrases are interpolated in order.
var compoundPhrases = map[ast.CompoundOperator]string{
	ast.CompAdd:    "increase %s by %s",
	ast.CompSub:    "decrease %s by %s",
	ast.CompMul:    "multiply %s by %s",
	ast.CompDiv:    "divide %s by %s",
	ast.CompMod:    "set %s to the remainder when divided by %s",
	ast.CompBitAnd: "bitwise AND %s with %s",
	ast.CompBitOr:  "bitwise OR %s with %s",
	ast.CompBitXor: "bitwise XOR %s with %s",
	ast.CompShl:    "left-shift %s by %s bits",
	ast.CompShr:    "right-shift %s by %s bits",
}

// translateExpr renders an expression node as a natural-language phrase.
// Absent or malformed nodes render as permissive fallback text; translation
// itself cannot fail.
func (t *Translator) translateExpr(node ast.Node) string {
	switch n := node.(type) {
	case nil:
		return "nothing"
	case *ast.Literal:
		switch n.Kind {
		case ast.LitNumber:
			return "the value " + n.Value
		case ast.LitChar:
			return "the character " + n.Value
		default:
			// String literals are already quoted by the lexeme.
			return n.Value
		}
	case *ast.Identifier:
		return "'" + n.Name + "'"
	case *ast.BinaryOp:
		return fmt.Sprintf(binaryPhrases[n.Op], t.translateExpr(n.Left), t.translateExpr(n.Right))
	case *ast.UnaryOp:
		return fmt.Sprintf(unaryPhrases[n.Op], t.translateExpr(n.Operand))
	case *ast.FunctionCall:
		return t.translateCall(n)
	case *ast.ArrayAccess:
		return fmt.Sprintf("the element at position %s in the array '%s'",
			t.translateExpr(n.Index), n.Name)
	case *ast.Assignment:
		return fmt.Sprintf("set %s to %s",
			t.translateExpr(n.Target), t.translateExpr(n.Value))
	case *ast.CompoundAssignment:
		return fmt.Sprintf(compoundPhrases[n.Op],
			t.translateExpr(n.Target), t.translateExpr(n.Value))
	case *ast.MemberAccess:
		if n.IsArrow {
			return fmt.Sprintf("the '%s' member of the structure pointed to by %s",
				n.Member, t.translateExpr(n.Object))
		}
		return fmt.Sprintf("the '%s' member of %s", n.Member, t.translateExpr(n.Object))
	case *ast.Ternary:
		return fmt.Sprintf("if %s then %s, otherwise %s",
			t.translateExpr(n.Cond), t.translateExpr(n.Then), t.translateExpr(n.Else))
	case *ast.SizeOf:
		if n.TypeName != "" {
			return fmt.Sprintf("the size in bytes of type '%s'", n.TypeName)
		}
		return fmt.Sprintf("the size in bytes of %s", t.translateExpr(n.Operand))
	case *ast.Cast:
		return fmt.Sprintf("%s converted to type '%s'",
			t.translateExpr(n.Operand), n.Target)
	default:
		return "an expression"
	}
}

// translateCall renders a function call.  printf and strlen take dedicated
// templates sensitive to their first argument; other recognized
// standard-library routines render their fixed description; anything else
// falls back to the generic call template.
func (t *Translator) translateCall(call *ast.FunctionCall) string {
	switch call.Name {
	case "printf":
		if len(call.Args) == 0 {
			return "display output to the user"
		}
		if lit, ok := call.Args[0].(*ast.Literal); ok {
			return "display the message " + lit.Value
		}
		return "display formatted output to the user"
	case "strlen":
		if len(call.Args) == 0 {
			return "determine the length of a text string"
		}
		return "determine the length of the text stored in " + t.translateExpr(call.Args[0])
	}

	if desc, ok := common.StdFuncDescriptions[call.Name]; ok {
		return desc
	}

	if len(call.Args) == 0 {
		return fmt.Sprintf("call the '%s' function", call.Name)
	}

	args := make([]string, len(call.Args))
	for i, arg := range call.Args {
		args[i] = t.translateExpr(arg)
	}

	return fmt.Sprintf("call the '%s' function with arguments %s",
		call.Name, strings.Join(args, ", "))
}
