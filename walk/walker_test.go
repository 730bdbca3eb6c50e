package walk

import (
	"testing"

	"github.com/DannyBimma/gb-en-compiler/report"
	"github.com/DannyBimma/gb-en-compiler/syntax"
)

// checkSource parses and checks a source string, returning whether the check
// passed and how many errors were reported in total.
func checkSource(t *testing.T, source string) (bool, int) {
	t.Helper()

	report.InitReporter(report.LogLevelSilent)

	program, ok := syntax.Parse(syntax.Tokenize(source, "test.c"), "test.c")
	if !ok {
		t.Fatalf("Parse failed for source:\n%s", source)
	}

	passed := Check(program, "test.c")
	return passed, report.ErrorCount()
}

func TestCheckValidPrograms(t *testing.T) {
	sources := []string{
		"int main() { return 0; }",
		"int add(int a, int b) { return a + b; }",
		"int f(int n) { if (n <= 1) { return 1; } return n * f(n - 1); }",
		`int total(int values[], int count) {
			int sum = 0;
			for (int i = 0; i < count; i++) {
				sum += values[i];
			}
			return sum;
		}`,
	}

	for _, source := range sources {
		if passed, n := checkSource(t, source); !passed {
			t.Errorf("check failed with %d errors for valid source:\n%s", n, source)
		}
	}
}

func TestCheckDuplicateVariableReportedOnce(t *testing.T) {
	passed, n := checkSource(t, "int main() { int x; int x; return 0; }")

	if passed {
		t.Fatal("check passed despite duplicate declaration")
	}
	if n != 1 {
		t.Errorf("reported %d errors; want exactly 1", n)
	}
}

func TestCheckDuplicateKeepsFirstDeclaration(t *testing.T) {
	// A duplicate declaration is reported but not stored, so later uses
	// resolve against the first declaration without cascading errors.
	passed, n := checkSource(t, "int main() { int a[10]; int a; a[0] = 1; return 0; }")

	if passed {
		t.Fatal("check passed despite duplicate declaration")
	}
	if n != 1 {
		t.Errorf("reported %d errors; want exactly 1 (duplicate only)", n)
	}
}

func TestCheckParameterShadowsGlobalFunction(t *testing.T) {
	// A parameter may share the name of a global symbol; the inner declaration
	// wins for the duration of the function.
	passed, n := checkSource(t, `
int x() { return 1; }
int f(int x) { return x; }`)

	if !passed {
		t.Errorf("check failed with %d errors; shadowing should be legal", n)
	}
}

func TestCheckDuplicateParameterAndLocal(t *testing.T) {
	passed, _ := checkSource(t, "int f(int x) { int x; return x; }")

	if passed {
		t.Error("check passed despite local redeclaring a parameter")
	}
}

func TestCheckBlockScopeIsFunctionScope(t *testing.T) {
	// Scoping is per function, not per block: a nested block shares the
	// enclosing function's symbol table.
	passed, _ := checkSource(t, "int g() { int x = 1; { int x = 2; } return x; }")

	if passed {
		t.Error("check passed despite redeclaration inside a nested block")
	}
}

func TestCheckDuplicateFunction(t *testing.T) {
	passed, _ := checkSource(t, `
int f() { return 0; }
int f() { return 1; }`)

	if passed {
		t.Error("check passed despite duplicate function definition")
	}
}

func TestCheckUndeclaredVariable(t *testing.T) {
	passed, n := checkSource(t, "int main() { return y; }")

	if passed {
		t.Fatal("check passed despite undeclared identifier")
	}
	if n != 1 {
		t.Errorf("reported %d errors; want exactly 1", n)
	}
}

func TestCheckUndefinedFunction(t *testing.T) {
	passed, _ := checkSource(t, "int main() { return missing(); }")

	if passed {
		t.Error("check passed despite call to undefined function")
	}
}

func TestCheckStandardFunctionsAllowed(t *testing.T) {
	passed, n := checkSource(t, `
int main() {
    printf("hello");
    malloc(10);
    strlen("abc");
    return 0;
}`)

	if !passed {
		t.Errorf("check failed with %d errors; standard routines should be known", n)
	}
}

func TestCheckArrayAccess(t *testing.T) {
	tests := []struct {
		source string
		passed bool
	}{
		{"int f() { int a[10]; return a[0]; }", true},
		{"int f(int a[]) { return a[0]; }", true},
		{"int f() { return a[0]; }", false},       // undeclared array
		{"int f() { int a; return a[0]; }", false}, // not an array
	}

	for _, tc := range tests {
		if passed, _ := checkSource(t, tc.source); passed != tc.passed {
			t.Errorf("check(%q) passed = %v; want %v", tc.source, passed, tc.passed)
		}
	}
}

func TestCheckAccumulatesAllErrors(t *testing.T) {
	// Each independent fault is reported; the walk never stops early.
	passed, n := checkSource(t, `
int main() {
    int x;
    int x;
    y = 1;
    z[0] = 2;
    missing();
    return 0;
}`)

	if passed {
		t.Fatal("check passed despite multiple faults")
	}
	if n != 4 {
		t.Errorf("reported %d errors; want 4", n)
	}
}

func TestCheckSiblingScopesIndependent(t *testing.T) {
	// Two functions may each declare the same local name.
	passed, _ := checkSource(t, `
int f() { int x = 1; return x; }
int g() { int x = 2; return x; }`)

	if !passed {
		t.Error("check failed; sibling function scopes must be independent")
	}
}

func TestCheckTypeDefinitions(t *testing.T) {
	passed, _ := checkSource(t, `
struct Point { int x; int y; };
struct Point { int z; };
int main() { return 0; }`)

	if passed {
		t.Error("check passed despite duplicate structure definition")
	}

	passed, _ = checkSource(t, `
enum Colour { RED, GREEN };
int main() { return RED; }`)

	if !passed {
		t.Error("check failed; enumeration constants should be visible as symbols")
	}
}

func TestCheckEnumConstantCollision(t *testing.T) {
	passed, _ := checkSource(t, `
enum A { RED, GREEN };
enum B { RED, BLUE };
int main() { return 0; }`)

	if passed {
		t.Error("check passed despite colliding enumeration constants")
	}
}
