// Package walk performs semantic analysis: it walks the program tree
// maintaining a stack of lexical scopes and validates identifier, function,
// and array usage.
package walk

import (
	"fmt"

	"github.com/DannyBimma/gb-en-compiler/ast"
	"github.com/DannyBimma/gb-en-compiler/common"
	"github.com/DannyBimma/gb-en-compiler/report"
)

// Walker is responsible for walking a program and validating symbol usage.
// Scopes follow a strict stack discipline: the global scope holds function
// and type symbols, and each function gets a single flat scope holding its
// parameters and locals.  Blocks do not introduce nested scopes.
type Walker struct {
	fileName string

	// globalScope holds functions, type definitions, and enumeration
	// constants.
	globalScope *scope

	// scopes is the stack of active local scopes.  During the walk of a
	// function body it holds exactly that function's scope.
	scopes []*scope

	hadError bool
}

// scope is one frame of the scope chain.
type scope struct {
	name    string
	symbols map[string]*common.Symbol
}

func newScope(name string) *scope {
	return &scope{name: name, symbols: make(map[string]*common.Symbol)}
}

// Check walks the full program, accumulating every semantic diagnostic.  It
// never stops early; it returns true only if no diagnostic was recorded.
func Check(program *ast.Program, fileName string) bool {
	w := &Walker{
		fileName:    fileName,
		globalScope: newScope("global"),
	}

	for _, decl := range program.Decls {
		switch d := decl.(type) {
		case *ast.Function:
			w.walkFunction(d)
		case *ast.StructDef:
			w.defineType(d.Name, "struct", d.Line(), fmt.Sprintf("Structure '%s' already defined", d.Name))
		case *ast.EnumDef:
			w.walkEnumDef(d)
		case *ast.Typedef:
			w.defineType(d.Name, d.Underlying.String(), d.Line(), fmt.Sprintf("Type '%s' already defined", d.Name))
		}
	}

	return !w.hadError
}

// -----------------------------------------------------------------------------

// errorAt records a semantic diagnostic at the given line.
func (w *Walker) errorAt(line int, msg string, args ...interface{}) {
	w.hadError = true
	report.ReportSemanticError(w.fileName, line, fmt.Sprintf(msg, args...))
}

// pushScope pushes a fresh scope onto the scope stack.
func (w *Walker) pushScope(name string) {
	w.scopes = append(w.scopes, newScope(name))
}

// popScope removes the top scope from the scope stack.  The scope and its
// symbols are discarded; siblings are never retained.
func (w *Walker) popScope() {
	w.scopes = w.scopes[:len(w.scopes)-1]
}

// currentScope returns the innermost active scope, which is the global scope
// outside of any function.
func (w *Walker) currentScope() *scope {
	if len(w.scopes) == 0 {
		return w.globalScope
	}

	return w.scopes[len(w.scopes)-1]
}

// lookup resolves a name against the active scope chain, innermost first,
// ending at the global scope.
func (w *Walker) lookup(name string) *common.Symbol {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		if sym, ok := w.scopes[i].symbols[name]; ok {
			return sym
		}
	}

	if sym, ok := w.globalScope.symbols[name]; ok {
		return sym
	}

	return nil
}

// defineLocal inserts a symbol into the current scope.  Shadowing an outer
// scope is allowed; a duplicate in the same scope is a diagnostic and is not
// inserted, so later uses resolve against the first declaration.
func (w *Walker) defineLocal(sym *common.Symbol) {
	curr := w.currentScope()
	if _, ok := curr.symbols[sym.Name]; ok {
		w.errorAt(sym.DeclLine, "Variable '%s' already declared in this scope", sym.Name)
		return
	}

	curr.symbols[sym.Name] = sym
}

// defineType inserts a type-definition symbol into the global scope.  Type
// duplicates use their own message but the same first-wins storage as other
// symbols.
func (w *Walker) defineType(name, declaredType string, line int, dupMsg string) {
	if _, ok := w.globalScope.symbols[name]; ok {
		w.hadError = true
		report.ReportSemanticError(w.fileName, line, dupMsg)
		return
	}

	w.globalScope.symbols[name] = &common.Symbol{
		Name:         name,
		DeclaredType: declaredType,
		ScopeName:    "global",
		DeclLine:     line,
	}
}

// walkEnumDef defines the enumeration type and each of its constants as
// global symbols.
func (w *Walker) walkEnumDef(e *ast.EnumDef) {
	w.defineType(e.Name, "enum", e.Line(), fmt.Sprintf("Enumeration '%s' already defined", e.Name))

	for _, constant := range e.Constants {
		if _, ok := w.globalScope.symbols[constant]; ok {
			w.errorAt(e.Line(), "Enumeration constant '%s' already declared", constant)
			continue
		}

		w.globalScope.symbols[constant] = &common.Symbol{
			Name:         constant,
			DeclaredType: e.Name,
			ScopeName:    "global",
			DeclLine:     e.Line(),
		}
	}
}

// walkFunction validates one function definition.  Duplicate functions are
// checked on a dedicated path before the function symbol is inserted, and the
// function's scope is restored on every exit path.
func (w *Walker) walkFunction(fn *ast.Function) {
	if _, ok := w.globalScope.symbols[fn.Name]; ok {
		w.errorAt(fn.Line(), "Function '%s' already declared", fn.Name)
		return
	}

	w.globalScope.symbols[fn.Name] = &common.Symbol{
		Name:         fn.Name,
		DeclaredType: fn.ReturnType.String(),
		ScopeName:    "global",
		DeclLine:     fn.Line(),
		IsFunction:   true,
	}

	w.pushScope(fn.Name)
	defer w.popScope()

	for _, param := range fn.Params {
		w.defineLocal(&common.Symbol{
			Name:         param.Name,
			DeclaredType: param.Type.String(),
			ScopeName:    fn.Name,
			DeclLine:     fn.Line(),
			IsArray:      param.IsArray,
		})
	}

	w.walkStmt(fn.Body)
}
