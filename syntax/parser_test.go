package syntax

import (
	"testing"

	"github.com/DannyBimma/gb-en-compiler/ast"
	"github.com/DannyBimma/gb-en-compiler/report"
)

// parseSource runs the full lexer and parser over a source string, failing
// the test if parsing does not succeed.
func parseSource(t *testing.T, source string) *ast.Program {
	t.Helper()

	report.InitReporter(report.LogLevelSilent)

	program, ok := Parse(Tokenize(source, "test.c"), "test.c")
	if !ok {
		t.Fatalf("Parse failed for source:\n%s", source)
	}

	return program
}

// parseSourceExpectingErrors parses a source string that must fail, returning
// the number of reported errors.
func parseSourceExpectingErrors(t *testing.T, source string) int {
	t.Helper()

	report.InitReporter(report.LogLevelSilent)

	program, ok := Parse(Tokenize(source, "test.c"), "test.c")
	if ok {
		t.Fatalf("Parse unexpectedly succeeded for source:\n%s", source)
	}
	if program != nil {
		t.Errorf("Parse returned a non-nil tree alongside failure")
	}

	return report.ErrorCount()
}

// firstFunction returns the first function declaration of a program.
func firstFunction(t *testing.T, program *ast.Program) *ast.Function {
	t.Helper()

	fns := program.Functions()
	if len(fns) == 0 {
		t.Fatal("program contains no functions")
	}

	return fns[0]
}

func TestParseFunctionSignatures(t *testing.T) {
	tests := []struct {
		source     string
		name       string
		returnType ast.PrimitiveType
		paramCount int
	}{
		{"int main() { return 0; }", "main", ast.TypeInt, 0},
		{"void f() { }", "f", ast.TypeVoid, 0},
		{"float add(float a, float b) { return a; }", "add", ast.TypeFloat, 2},
		{"int sum(int values[], int count) { return 0; }", "sum", ast.TypeInt, 2},
	}

	for _, tc := range tests {
		fn := firstFunction(t, parseSource(t, tc.source))

		if fn.Name != tc.name {
			t.Errorf("%q: name = %q; want %q", tc.source, fn.Name, tc.name)
		}
		if fn.ReturnType != tc.returnType {
			t.Errorf("%q: return type = %s; want %s", tc.source, fn.ReturnType, tc.returnType)
		}
		if len(fn.Params) != tc.paramCount {
			t.Errorf("%q: %d params; want %d", tc.source, len(fn.Params), tc.paramCount)
		}
	}
}

func TestParseArrayParameter(t *testing.T) {
	fn := firstFunction(t, parseSource(t, "int sum(int values[], int count) { return 0; }"))

	if !fn.Params[0].IsArray {
		t.Error("first parameter should be an array")
	}
	if fn.Params[1].IsArray {
		t.Error("second parameter should not be an array")
	}
}

func TestParseDeclarations(t *testing.T) {
	program := parseSource(t, `
int main() {
    int x;
    int y = 5;
    float arr[10];
    char buf[];
    return 0;
}`)

	body := firstFunction(t, program).Body.Stmts

	decl, ok := body[0].(*ast.Declaration)
	if !ok || decl.Name != "x" || decl.Init != nil || decl.IsArray {
		t.Errorf("stmt 0 = %#v; want plain declaration of x", body[0])
	}

	decl, ok = body[1].(*ast.Declaration)
	if !ok || decl.Name != "y" || decl.Init == nil {
		t.Errorf("stmt 1 = %#v; want initialised declaration of y", body[1])
	}

	decl, ok = body[2].(*ast.Declaration)
	if !ok || !decl.IsArray || decl.Size == nil {
		t.Errorf("stmt 2 = %#v; want sized array declaration", body[2])
	}

	decl, ok = body[3].(*ast.Declaration)
	if !ok || !decl.IsArray || decl.Size != nil {
		t.Errorf("stmt 3 = %#v; want unsized array declaration", body[3])
	}
}

func TestParsePrecedence(t *testing.T) {
	program := parseSource(t, "int f() { return a + b * c; }")

	ret := firstFunction(t, program).Body.Stmts[0].(*ast.Return)

	add, ok := ret.Value.(*ast.BinaryOp)
	if !ok || add.Op != ast.BinAdd {
		t.Fatalf("root = %#v; want addition", ret.Value)
	}

	mul, ok := add.Right.(*ast.BinaryOp)
	if !ok || mul.Op != ast.BinMul {
		t.Errorf("right operand = %#v; want multiplication", add.Right)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	program := parseSource(t, "int f() { return a - b - c; }")

	ret := firstFunction(t, program).Body.Stmts[0].(*ast.Return)

	outer, ok := ret.Value.(*ast.BinaryOp)
	if !ok || outer.Op != ast.BinSub {
		t.Fatalf("root = %#v; want subtraction", ret.Value)
	}

	inner, ok := outer.Left.(*ast.BinaryOp)
	if !ok || inner.Op != ast.BinSub {
		t.Errorf("left operand = %#v; want nested subtraction", outer.Left)
	}
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	program := parseSource(t, "int f() { a = b = c; return 0; }")

	stmt := firstFunction(t, program).Body.Stmts[0]

	outer, ok := stmt.(*ast.Assignment)
	if !ok {
		t.Fatalf("stmt = %#v; want assignment", stmt)
	}
	if _, ok := outer.Value.(*ast.Assignment); !ok {
		t.Errorf("value = %#v; want nested assignment", outer.Value)
	}
}

func TestParseCastVersusGrouping(t *testing.T) {
	program := parseSource(t, "int f() { a = (int)x; b = (x); return 0; }")

	body := firstFunction(t, program).Body.Stmts

	cast, ok := body[0].(*ast.Assignment).Value.(*ast.Cast)
	if !ok {
		t.Fatalf("first value = %#v; want cast", body[0].(*ast.Assignment).Value)
	}
	if cast.Target != ast.TypeInt {
		t.Errorf("cast target = %s; want int", cast.Target)
	}

	if _, ok := body[1].(*ast.Assignment).Value.(*ast.Identifier); !ok {
		t.Errorf("second value = %#v; want plain identifier", body[1].(*ast.Assignment).Value)
	}
}

func TestParseSizeOf(t *testing.T) {
	program := parseSource(t, "int f() { a = sizeof(int); b = sizeof(x); return 0; }")

	body := firstFunction(t, program).Body.Stmts

	so := body[0].(*ast.Assignment).Value.(*ast.SizeOf)
	if so.TypeName != "int" || so.Operand != nil {
		t.Errorf("sizeof(int) = %#v; want type operand", so)
	}

	so = body[1].(*ast.Assignment).Value.(*ast.SizeOf)
	if so.TypeName != "" || so.Operand == nil {
		t.Errorf("sizeof(x) = %#v; want expression operand", so)
	}
}

func TestParseLabelLookahead(t *testing.T) {
	program := parseSource(t, `
int f() {
    retry: x = 1;
    cond ? a : b;
    goto retry;
    return 0;
}`)

	body := firstFunction(t, program).Body.Stmts

	label, ok := body[0].(*ast.Label)
	if !ok || label.Name != "retry" {
		t.Fatalf("stmt 0 = %#v; want label 'retry'", body[0])
	}
	if _, ok := label.Stmt.(*ast.Assignment); !ok {
		t.Errorf("labelled stmt = %#v; want assignment", label.Stmt)
	}

	// A ternary expression must not be misread as a label.
	if _, ok := body[1].(*ast.Ternary); !ok {
		t.Errorf("stmt 1 = %#v; want ternary", body[1])
	}

	g, ok := body[2].(*ast.Goto)
	if !ok || g.Target != "retry" {
		t.Errorf("stmt 2 = %#v; want goto retry", body[2])
	}
}

func TestParseForVariants(t *testing.T) {
	tests := []struct {
		source  string
		hasInit bool
		hasCond bool
		hasPost bool
	}{
		{"int f() { for (int i = 0; i < 10; i++) { } return 0; }", true, true, true},
		{"int f() { for (;;) { break; } return 0; }", false, false, false},
		{"int f() { for (; i < 10;) { i++; } return 0; }", false, true, false},
	}

	for _, tc := range tests {
		program := parseSource(t, tc.source)
		loop, ok := firstFunction(t, program).Body.Stmts[0].(*ast.For)
		if !ok {
			t.Fatalf("%q: stmt 0 is not a for loop", tc.source)
		}

		if (loop.Init != nil) != tc.hasInit {
			t.Errorf("%q: init presence = %v; want %v", tc.source, loop.Init != nil, tc.hasInit)
		}
		if (loop.Cond != nil) != tc.hasCond {
			t.Errorf("%q: cond presence = %v; want %v", tc.source, loop.Cond != nil, tc.hasCond)
		}
		if (loop.Post != nil) != tc.hasPost {
			t.Errorf("%q: post presence = %v; want %v", tc.source, loop.Post != nil, tc.hasPost)
		}
	}
}

func TestParseSwitch(t *testing.T) {
	program := parseSource(t, `
int f(int x) {
    switch (x) {
        case 1:
            return 1;
        case 2:
            x++;
            break;
        default:
            return 0;
    }
    return x;
}`)

	sw, ok := firstFunction(t, program).Body.Stmts[0].(*ast.Switch)
	if !ok {
		t.Fatal("stmt 0 is not a switch")
	}

	if len(sw.Cases) != 3 {
		t.Fatalf("switch has %d clauses; want 3", len(sw.Cases))
	}
	if sw.Cases[0].Value == nil || sw.Cases[1].Value == nil {
		t.Error("case clauses should carry values")
	}
	if sw.Cases[2].Value != nil {
		t.Error("default clause should carry no value")
	}
	if len(sw.Cases[1].Body) != 2 {
		t.Errorf("second clause has %d statements; want 2", len(sw.Cases[1].Body))
	}
}

func TestParseStructEnumTypedef(t *testing.T) {
	program := parseSource(t, `
struct Point {
    int x;
    int y;
    char tag[8];
};

enum Colour {
    RED,
    GREEN,
    BLUE
};

typedef int Counter;

int main() { return 0; }`)

	if len(program.Decls) != 4 {
		t.Fatalf("program has %d declarations; want 4", len(program.Decls))
	}

	st, ok := program.Decls[0].(*ast.StructDef)
	if !ok || st.Name != "Point" || len(st.Fields) != 3 {
		t.Errorf("decl 0 = %#v; want struct Point with 3 fields", program.Decls[0])
	}
	if ok && !st.Fields[2].IsArray {
		t.Error("third struct field should be an array")
	}

	en, ok := program.Decls[1].(*ast.EnumDef)
	if !ok || en.Name != "Colour" || len(en.Constants) != 3 {
		t.Errorf("decl 1 = %#v; want enum Colour with 3 constants", program.Decls[1])
	}

	td, ok := program.Decls[2].(*ast.Typedef)
	if !ok || td.Name != "Counter" || td.Underlying != ast.TypeInt {
		t.Errorf("decl 2 = %#v; want typedef int Counter", program.Decls[2])
	}

	if _, ok := program.Decls[3].(*ast.Function); !ok {
		t.Errorf("decl 3 = %#v; want function", program.Decls[3])
	}
}

func TestParseMemberAndPointerAccess(t *testing.T) {
	program := parseSource(t, "int f() { a = p.x; b = p->x; return 0; }")

	body := firstFunction(t, program).Body.Stmts

	dot := body[0].(*ast.Assignment).Value.(*ast.MemberAccess)
	if dot.Member != "x" || dot.IsArrow {
		t.Errorf("dot access = %#v; want non-arrow member x", dot)
	}

	arrow := body[1].(*ast.Assignment).Value.(*ast.MemberAccess)
	if arrow.Member != "x" || !arrow.IsArrow {
		t.Errorf("arrow access = %#v; want arrow member x", arrow)
	}
}

func TestParseErrorRecovery(t *testing.T) {
	// The first function is malformed; the parser must still scan forward and
	// diagnose independently inside the second.
	errorCount := parseSourceExpectingErrors(t, `
int broken( { return 0; }

int alsoBroken() { int x = ; }
`)

	if errorCount < 2 {
		t.Errorf("reported %d errors; want at least 2", errorCount)
	}
}

func TestParseFailureDiscardsTree(t *testing.T) {
	parseSourceExpectingErrors(t, "int f() { x = ; }")
}

func TestParseTotalityOnGarbage(t *testing.T) {
	// Inputs that can never start a statement must not hang the parser.
	sources := []string{
		"int f() { ;;; }",
		"int f() { ) ) ) }",
		"int f() { case 1: }",
		"}{",
	}

	for _, source := range sources {
		report.InitReporter(report.LogLevelSilent)
		Parse(Tokenize(source, "test.c"), "test.c")
	}
}
