package trans

import (
	"fmt"

	"github.com/DannyBimma/gb-en-compiler/ast"
)

// translateStatement renders one statement as a line or paragraph.  A step
// number greater than zero prefixes the line with "N. "; zero renders the
// statement unnumbered.  Branch and loop bodies recurse without renumbering.
func (t *Translator) translateStatement(node ast.Node, step int) {
	if node == nil {
		return
	}

	prefix := ""
	if step > 0 {
		prefix = fmt.Sprintf("%d. ", step)
	}

	switch n := node.(type) {
	case *ast.Declaration:
		t.translateDeclaration(n, prefix)
	case *ast.If:
		t.appendLine(fmt.Sprintf("%sIf the condition \"%s\" is true, then:",
			prefix, t.translateExpr(n.Cond)))

		t.indentLevel++
		t.translateBody(n.Then)
		t.indentLevel--

		if n.Else != nil {
			t.appendLine("  Otherwise:")
			t.indentLevel++
			t.translateBody(n.Else)
			t.indentLevel--
		}

		t.appendLine("")
	case *ast.While:
		t.appendLine(fmt.Sprintf(
			"%sWhilst the condition \"%s\" remains true, repeatedly perform the following:",
			prefix, t.translateExpr(n.Cond)))

		t.indentLevel++
		t.translateBody(n.Body)
		t.indentLevel--
		t.appendLine("")
	case *ast.DoWhile:
		t.appendLine(prefix + "Repeatedly perform the following:")

		t.indentLevel++
		t.translateBody(n.Body)
		t.indentLevel--

		t.appendLine(fmt.Sprintf("Continue whilst the condition \"%s\" remains true.",
			t.translateExpr(n.Cond)))
		t.appendLine("")
	case *ast.For:
		initStr := "nothing"
		if n.Init != nil {
			initStr = t.translateExpr(n.Init)
		}

		condStr := "true"
		if n.Cond != nil {
			condStr = t.translateExpr(n.Cond)
		}

		postStr := "nothing"
		if n.Post != nil {
			postStr = t.translateExpr(n.Post)
		}

		t.appendLine(fmt.Sprintf(
			"%sBeginning with %s, and continuing whilst the condition \"%s\" holds, "+
				"repeatedly perform the following operations, and after each iteration %s:",
			prefix, initStr, condStr, postStr))

		t.indentLevel++
		t.translateBody(n.Body)
		t.indentLevel--
		t.appendLine("")
	case *ast.Return:
		if n.Value != nil {
			t.appendLine(fmt.Sprintf("%sReturn %s.", prefix, t.translateExpr(n.Value)))
		} else {
			t.appendLine(prefix + "Return (void).")
		}
		t.appendLine("")
	case *ast.Break:
		t.appendLine("Exit the loop immediately.")
		t.appendLine("")
	case *ast.Continue:
		t.appendLine("Skip to the next iteration of the loop.")
		t.appendLine("")
	case *ast.Switch:
		t.appendLine(fmt.Sprintf("%sDepending on the value of %s:",
			prefix, t.translateExpr(n.Tag)))

		t.indentLevel++
		for _, c := range n.Cases {
			if c.Value != nil {
				t.appendLine(fmt.Sprintf("When it equals %s:", t.translateExpr(c.Value)))
			} else {
				t.appendLine("Otherwise (default):")
			}

			t.indentLevel++
			for _, stmt := range c.Body {
				t.translateStatement(stmt, 0)
			}
			t.indentLevel--
		}
		t.indentLevel--
		t.appendLine("")
	case *ast.Goto:
		t.appendLine(fmt.Sprintf("%sJump to label '%s'.", prefix, n.Target))
		t.appendLine("")
	case *ast.Label:
		t.appendLine(fmt.Sprintf("Label '%s':", n.Name))
		if n.Stmt != nil {
			t.translateStatement(n.Stmt, 0)
		}
	case *ast.Block:
		for i, stmt := range n.Stmts {
			if step > 0 {
				t.translateStatement(stmt, i+1)
			} else {
				t.translateStatement(stmt, 0)
			}
		}
	default:
		// Expression statement: render the phrase as a sentence.
		line := prefix + t.translateExpr(node) + "."
		line = capitalizeFirst(line)
		t.appendLine(line)
		t.appendLine("")
	}
}

// translateDeclaration renders a scalar or array declaration sentence.
func (t *Translator) translateDeclaration(decl *ast.Declaration, prefix string) {
	switch {
	case decl.IsArray:
		sizeStr := "nothing"
		if decl.Size != nil {
			sizeStr = t.translateExpr(decl.Size)
		}
		t.appendLine(fmt.Sprintf("%sDeclare an array named '%s' of type %s with %s elements.",
			prefix, decl.Name, decl.Type, sizeStr))
	case decl.Init != nil:
		t.appendLine(fmt.Sprintf("%sDeclare a variable named '%s' of type %s, initialised to %s.",
			prefix, decl.Name, decl.Type, t.translateExpr(decl.Init)))
	default:
		t.appendLine(fmt.Sprintf("%sDeclare a variable named '%s' of type %s.",
			prefix, decl.Name, decl.Type))
	}

	t.appendLine("")
}

// translateBody renders a control-flow body: the statements of a block, or a
// single unbraced statement, always unnumbered.
func (t *Translator) translateBody(body ast.Node) {
	if block, ok := body.(*ast.Block); ok {
		for _, stmt := range block.Stmts {
			t.translateStatement(stmt, 0)
		}
		return
	}

	t.translateStatement(body, 0)
}

// capitalizeFirst upper-cases a leading ASCII letter.  Numbered lines begin
// with the step digit and are left untouched.
func capitalizeFirst(line string) string {
	if len(line) > 0 && 'a' <= line[0] && line[0] <= 'z' {
		return string(line[0]-'a'+'A') + line[1:]
	}

	return line
}
