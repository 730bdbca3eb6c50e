// Package trans renders a checked program tree into a structured
// natural-language description of its behavior.  Rendering is a pure function
// of the tree: the same tree always produces byte-identical output.
package trans

import (
	"fmt"
	"strings"

	"github.com/DannyBimma/gb-en-compiler/ast"
)

// Translator walks the tree depth-first and assembles the prose document.
// Statement rendering carries an indentation level; step numbering restarts
// at the top of each function body and is suppressed inside nested branches.
type Translator struct {
	out strings.Builder

	indentLevel int
}

// Translate renders the given program.  The tree is assumed to have passed
// checking; a tree that failed checking still renders best-effort using
// whatever information exists.
func Translate(program *ast.Program) string {
	t := &Translator{}

	t.appendLine("Programme Description")
	t.appendLine("=====================")
	t.appendLine("")

	funcs := program.Functions()
	if len(funcs) == 1 {
		t.appendLine("This programme consists of one function.")
	} else {
		t.appendLine(fmt.Sprintf("This programme consists of %d functions.", len(funcs)))
	}
	t.appendLine("")

	for _, decl := range program.Decls {
		switch d := decl.(type) {
		case *ast.Function:
			t.translateFunction(d)
		case *ast.StructDef:
			t.translateStructDef(d)
		case *ast.EnumDef:
			t.translateEnumDef(d)
		case *ast.Typedef:
			t.translateTypedef(d)
		}
	}

	return t.out.String()
}

// -----------------------------------------------------------------------------

// appendLine writes one line of output at the current indentation level.
func (t *Translator) appendLine(text string) {
	for i := 0; i < t.indentLevel; i++ {
		t.out.WriteString("  ")
	}

	t.out.WriteString(text)
	t.out.WriteByte('\n')
}

// appendHeading writes a section heading with an ASCII underline.
func (t *Translator) appendHeading(heading string) {
	t.appendLine(heading)
	t.out.WriteString(strings.Repeat("-", len(heading)))
	t.out.WriteByte('\n')
}

// -----------------------------------------------------------------------------

func (t *Translator) translateFunction(fn *ast.Function) {
	t.appendHeading("Function: " + fn.Name)

	switch len(fn.Params) {
	case 0:
		t.appendLine(fmt.Sprintf(
			"This function accepts no parameters and returns a value of type %s.",
			fn.ReturnType))
	case 1:
		param := fn.Params[0]
		t.appendLine(fmt.Sprintf(
			"This function accepts one parameter named '%s' of type %s%s, and returns a value of type %s.",
			param.Name, param.Type, arraySuffix(param.IsArray), fn.ReturnType))
	default:
		t.appendLine(fmt.Sprintf(
			"This function accepts %d parameters and returns a value of type %s.",
			len(fn.Params), fn.ReturnType))
	}
	t.appendLine("")

	if len(fn.Params) > 1 {
		t.appendLine("Parameters:")
		for _, param := range fn.Params {
			t.appendLine(fmt.Sprintf("  • '%s': %s%s",
				param.Name, param.Type, arraySuffix(param.IsArray)))
		}
		t.appendLine("")
	}

	if fn.Name == "main" {
		t.appendLine("This is the main entry point of the programme.")
		t.appendLine("")
	}

	t.appendLine("The function performs the following steps:")
	t.appendLine("")

	if fn.Body != nil {
		t.indentLevel = 1
		for i, stmt := range fn.Body.Stmts {
			t.translateStatement(stmt, i+1)
		}
		t.indentLevel = 0
	}

	t.appendLine("")
}

func arraySuffix(isArray bool) string {
	if isArray {
		return " (array)"
	}

	return ""
}

func (t *Translator) translateStructDef(def *ast.StructDef) {
	t.appendHeading("Structure: " + def.Name)

	switch len(def.Fields) {
	case 0:
		t.appendLine("This structure has no members.")
	case 1:
		t.appendLine("This structure comprises one member:")
	default:
		t.appendLine(fmt.Sprintf("This structure comprises %d members:", len(def.Fields)))
	}

	for _, field := range def.Fields {
		t.appendLine(fmt.Sprintf("  • '%s': %s%s",
			field.Name, field.Type, arraySuffix(field.IsArray)))
	}

	t.appendLine("")
}

func (t *Translator) translateEnumDef(def *ast.EnumDef) {
	t.appendHeading("Enumeration: " + def.Name)

	if len(def.Constants) == 0 {
		t.appendLine("This enumeration defines no named constants.")
	} else {
		t.appendLine("This enumeration defines the following named constants:")
		for _, constant := range def.Constants {
			t.appendLine(fmt.Sprintf("  • '%s'", constant))
		}
	}

	t.appendLine("")
}

func (t *Translator) translateTypedef(def *ast.Typedef) {
	t.appendHeading("Type Definition: " + def.Name)
	t.appendLine(fmt.Sprintf("The name '%s' is defined as an alias for the type %s.",
		def.Name, def.Underlying))
	t.appendLine("")
}
