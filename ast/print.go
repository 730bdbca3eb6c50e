package ast

import (
	"fmt"
	"strings"
)

// Dump renders the tree rooted at node as an indented textual outline.  It is
// used by the driver's --show-ast option and has no role in translation.
func Dump(node Node) string {
	var sb strings.Builder
	dumpNode(&sb, node, 0)
	return sb.String()
}

func dumpLine(sb *strings.Builder, indent int, format string, args ...interface{}) {
	sb.WriteString(strings.Repeat("  ", indent))
	fmt.Fprintf(sb, format, args...)
	sb.WriteByte('\n')
}

func dumpNode(sb *strings.Builder, node Node, indent int) {
	switch n := node.(type) {
	case nil:
		dumpLine(sb, indent, "<missing>")
	case *Program:
		dumpLine(sb, indent, "Program")
		for _, decl := range n.Decls {
			dumpNode(sb, decl, indent+1)
		}
	case *Function:
		dumpLine(sb, indent, "Function %s %s (%d params)", n.ReturnType, n.Name, len(n.Params))
		for _, param := range n.Params {
			suffix := ""
			if param.IsArray {
				suffix = "[]"
			}
			dumpLine(sb, indent+1, "Param %s %s%s", param.Type, param.Name, suffix)
		}
		dumpNode(sb, n.Body, indent+1)
	case *StructDef:
		dumpLine(sb, indent, "Struct %s", n.Name)
		for _, field := range n.Fields {
			suffix := ""
			if field.IsArray {
				suffix = "[]"
			}
			dumpLine(sb, indent+1, "Field %s %s%s", field.Type, field.Name, suffix)
		}
	case *EnumDef:
		dumpLine(sb, indent, "Enum %s {%s}", n.Name, strings.Join(n.Constants, ", "))
	case *Typedef:
		dumpLine(sb, indent, "Typedef %s = %s", n.Name, n.Underlying)
	case *Block:
		dumpLine(sb, indent, "Block")
		for _, stmt := range n.Stmts {
			dumpNode(sb, stmt, indent+1)
		}
	case *Declaration:
		if n.IsArray {
			dumpLine(sb, indent, "ArrayDecl %s %s", n.Type, n.Name)
			if n.Size != nil {
				dumpNode(sb, n.Size, indent+1)
			}
		} else {
			dumpLine(sb, indent, "Decl %s %s", n.Type, n.Name)
			if n.Init != nil {
				dumpNode(sb, n.Init, indent+1)
			}
		}
	case *If:
		dumpLine(sb, indent, "If")
		dumpNode(sb, n.Cond, indent+1)
		dumpNode(sb, n.Then, indent+1)
		if n.Else != nil {
			dumpLine(sb, indent, "Else")
			dumpNode(sb, n.Else, indent+1)
		}
	case *While:
		dumpLine(sb, indent, "While")
		dumpNode(sb, n.Cond, indent+1)
		dumpNode(sb, n.Body, indent+1)
	case *DoWhile:
		dumpLine(sb, indent, "DoWhile")
		dumpNode(sb, n.Body, indent+1)
		dumpNode(sb, n.Cond, indent+1)
	case *For:
		dumpLine(sb, indent, "For")
		dumpNode(sb, n.Init, indent+1)
		dumpNode(sb, n.Cond, indent+1)
		dumpNode(sb, n.Post, indent+1)
		dumpNode(sb, n.Body, indent+1)
	case *Return:
		dumpLine(sb, indent, "Return")
		if n.Value != nil {
			dumpNode(sb, n.Value, indent+1)
		}
	case *Break:
		dumpLine(sb, indent, "Break")
	case *Continue:
		dumpLine(sb, indent, "Continue")
	case *Switch:
		dumpLine(sb, indent, "Switch")
		dumpNode(sb, n.Tag, indent+1)
		for _, c := range n.Cases {
			dumpNode(sb, c, indent+1)
		}
	case *CaseClause:
		if n.Value != nil {
			dumpLine(sb, indent, "Case")
			dumpNode(sb, n.Value, indent+1)
		} else {
			dumpLine(sb, indent, "Default")
		}
		for _, stmt := range n.Body {
			dumpNode(sb, stmt, indent+1)
		}
	case *Goto:
		dumpLine(sb, indent, "Goto %s", n.Target)
	case *Label:
		dumpLine(sb, indent, "Label %s", n.Name)
		if n.Stmt != nil {
			dumpNode(sb, n.Stmt, indent+1)
		}
	case *Literal:
		dumpLine(sb, indent, "Literal %s", n.Value)
	case *Identifier:
		dumpLine(sb, indent, "Identifier %s", n.Name)
	case *BinaryOp:
		dumpLine(sb, indent, "BinaryOp %s", n.Op)
		dumpNode(sb, n.Left, indent+1)
		dumpNode(sb, n.Right, indent+1)
	case *UnaryOp:
		dumpLine(sb, indent, "UnaryOp %s", n.Op)
		dumpNode(sb, n.Operand, indent+1)
	case *FunctionCall:
		dumpLine(sb, indent, "Call %s", n.Name)
		for _, arg := range n.Args {
			dumpNode(sb, arg, indent+1)
		}
	case *ArrayAccess:
		dumpLine(sb, indent, "ArrayAccess %s", n.Name)
		dumpNode(sb, n.Index, indent+1)
	case *Assignment:
		dumpLine(sb, indent, "Assignment")
		dumpNode(sb, n.Target, indent+1)
		dumpNode(sb, n.Value, indent+1)
	case *CompoundAssignment:
		dumpLine(sb, indent, "CompoundAssignment %s", n.Op)
		dumpNode(sb, n.Target, indent+1)
		dumpNode(sb, n.Value, indent+1)
	case *MemberAccess:
		op := "."
		if n.IsArrow {
			op = "->"
		}
		dumpLine(sb, indent, "MemberAccess %s%s", op, n.Member)
		dumpNode(sb, n.Object, indent+1)
	case *Ternary:
		dumpLine(sb, indent, "Ternary")
		dumpNode(sb, n.Cond, indent+1)
		dumpNode(sb, n.Then, indent+1)
		dumpNode(sb, n.Else, indent+1)
	case *SizeOf:
		if n.TypeName != "" {
			dumpLine(sb, indent, "SizeOf type %s", n.TypeName)
		} else {
			dumpLine(sb, indent, "SizeOf")
			dumpNode(sb, n.Operand, indent+1)
		}
	case *Cast:
		dumpLine(sb, indent, "Cast to %s", n.Target)
		dumpNode(sb, n.Operand, indent+1)
	default:
		dumpLine(sb, indent, "<unknown node %T>", n)
	}
}
