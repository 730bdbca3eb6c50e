package trans

import (
	"strings"
	"testing"

	"github.com/DannyBimma/gb-en-compiler/report"
	"github.com/DannyBimma/gb-en-compiler/syntax"
)

// translateSource parses and renders a source string.
func translateSource(t *testing.T, source string) string {
	t.Helper()

	report.InitReporter(report.LogLevelSilent)

	program, ok := syntax.Parse(syntax.Tokenize(source, "test.c"), "test.c")
	if !ok {
		t.Fatalf("Parse failed for source:\n%s", source)
	}

	return Translate(program)
}

// assertContains fails unless the rendered output contains every wanted
// substring.
func assertContains(t *testing.T, output string, wanted ...string) {
	t.Helper()

	for _, want := range wanted {
		if !strings.Contains(output, want) {
			t.Errorf("output does not contain %q\noutput:\n%s", want, output)
		}
	}
}

func TestTranslateAddFunctionGolden(t *testing.T) {
	got := translateSource(t, "int add(int a,int b){return a+b;}")

	want := strings.Join([]string{
		"Programme Description",
		"=====================",
		"",
		"This programme consists of one function.",
		"",
		"Function: add",
		"-------------",
		"This function accepts 2 parameters and returns a value of type int.",
		"",
		"Parameters:",
		"  • 'a': int",
		"  • 'b': int",
		"",
		"The function performs the following steps:",
		"",
		"  1. Return the sum of 'a' and 'b'.",
		"  ", // blank step separator keeps the body indentation
		"",
	}, "\n") + "\n"

	if got != want {
		t.Errorf("rendered output differs\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestTranslateRecursiveFunction(t *testing.T) {
	got := translateSource(t, "int f(int n){if(n<=1){return 1;}return n*f(n-1);}")

	assertContains(t, got,
		`1. If the condition "'n' is less than or equal to the value 1" is true, then:`,
		"Return the value 1.",
		"2. Return the product of 'n' and call the 'f' function with arguments the difference between 'n' and the value 1.",
	)
}

func TestTranslateEmptyVoidFunction(t *testing.T) {
	got := translateSource(t, "void g(){}")

	assertContains(t, got,
		"This function accepts no parameters and returns a value of type void.",
		"The function performs the following steps:",
	)

	if strings.Contains(got, "Return") {
		t.Errorf("empty body should render no return step\noutput:\n%s", got)
	}
}

func TestTranslateMainEntryPoint(t *testing.T) {
	got := translateSource(t, "int main(){return 0;}")

	assertContains(t, got,
		"This is the main entry point of the programme.",
		"1. Return the value 0.",
	)
}

func TestTranslateSingleParameter(t *testing.T) {
	got := translateSource(t, "int square(int n){return n*n;}")

	assertContains(t, got,
		"This function accepts one parameter named 'n' of type int, and returns a value of type int.",
	)

	if strings.Contains(got, "Parameters:") {
		t.Error("single-parameter functions should not render a parameter list")
	}
}

func TestTranslateArrayParameter(t *testing.T) {
	got := translateSource(t, "int first(int values[]){return values[0];}")

	assertContains(t, got,
		"This function accepts one parameter named 'values' of type int (array), and returns a value of type int.",
		"Return the element at position the value 0 in the array 'values'.",
	)
}

func TestTranslateFunctionCount(t *testing.T) {
	got := translateSource(t, `
int f(){return 0;}
int g(){return 1;}
struct S { int x; };
`)

	assertContains(t, got, "This programme consists of 2 functions.")
}

func TestTranslateControlFlow(t *testing.T) {
	got := translateSource(t, `
int f(int n) {
    int i = 0;
    while (i < n) {
        i++;
    }
    for (int j = 0; j < n; j++) {
        continue;
    }
    do {
        n--;
    } while (n > 0);
    if (n == 0) {
        return 0;
    } else {
        return 1;
    }
}`)

	assertContains(t, got,
		"1. Declare a variable named 'i' of type int, initialised to the value 0.",
		`2. Whilst the condition "'i' is less than 'n'" remains true, repeatedly perform the following:`,
		"Increment 'i' by 1.",
		`3. Beginning with an expression, and continuing whilst the condition "'j' is less than 'n'" holds, repeatedly perform the following operations, and after each iteration increment 'j' by 1:`,
		"Skip to the next iteration of the loop.",
		"4. Repeatedly perform the following:",
		"Decrement 'n' by 1.",
		`Continue whilst the condition "'n' is greater than the value 0" remains true.`,
		`5. If the condition "'n' is equal to the value 0" is true, then:`,
		"  Otherwise:",
		"Return the value 1.",
	)
}

func TestTranslateForDefaults(t *testing.T) {
	got := translateSource(t, "int f(){for(;;){break;}return 0;}")

	assertContains(t, got,
		`1. Beginning with nothing, and continuing whilst the condition "true" holds, repeatedly perform the following operations, and after each iteration nothing:`,
		"Exit the loop immediately.",
	)
}

func TestTranslateSwitch(t *testing.T) {
	got := translateSource(t, `
int f(int x) {
    switch (x) {
        case 1:
            return 1;
        default:
            return 0;
    }
    return x;
}`)

	assertContains(t, got,
		"1. Depending on the value of 'x':",
		"When it equals the value 1:",
		"Return the value 1.",
		"Otherwise (default):",
		"Return the value 0.",
	)
}

func TestTranslateGotoAndLabel(t *testing.T) {
	got := translateSource(t, `
int f() {
    retry: x = 1;
    goto retry;
    return 0;
}`)

	assertContains(t, got,
		"Label 'retry':",
		"Set 'x' to the value 1.",
		"2. Jump to label 'retry'.",
	)
}

func TestTranslateExpressions(t *testing.T) {
	// Each statement renders as numbered step 1; its phrase keeps its
	// lowercase first letter behind the number.
	tests := []struct {
		stmt string
		want string
	}{
		{"a = b + c;", "1. set 'a' to the sum of 'b' and 'c'."},
		{"a = b % c;", "1. set 'a' to the remainder when 'b' is divided by 'c'."},
		{"a = b << 2;", "1. set 'a' to 'b' left-shifted by the value 2 bits."},
		{"a = b && c || d;", "1. set 'a' to either both 'b' and 'c' or 'd'."},
		{"a = b & c;", "1. set 'a' to the bitwise AND of 'b' and 'c'."},
		{"a += 2;", "1. increase 'a' by the value 2."},
		{"a <<= 3;", "1. left-shift 'a' by the value 3 bits."},
		{"a = -b;", "1. set 'a' to negative 'b'."},
		{"a = !b;", "1. set 'a' to not 'b'."},
		{"a = ~b;", "1. set 'a' to the bitwise complement of 'b'."},
		{"a = &b;", "1. set 'a' to the address of 'b'."},
		{"a = *p;", "1. set 'a' to the value stored at the memory location referenced by 'p'."},
		{"++a;", "1. 'a' incremented by 1."},
		{"a--;", "1. decrement 'a' by 1."},
		{"a = arr[i];", "1. set 'a' to the element at position 'i' in the array 'arr'."},
		{"a = s.len;", "1. set 'a' to the 'len' member of 's'."},
		{"a = p->next;", "1. set 'a' to the 'next' member of the structure pointed to by 'p'."},
		{"a = b ? c : d;", "1. set 'a' to if 'b' then 'c', otherwise 'd'."},
		{"a = sizeof(int);", "1. set 'a' to the size in bytes of type 'int'."},
		{"a = sizeof(b);", "1. set 'a' to the size in bytes of 'b'."},
		{"a = (float)b;", "1. set 'a' to 'b' converted to type 'float'."},
		{"a = 'x';", "1. set 'a' to the character 'x'."},
		{`printf("Hello, World!\n");`, `1. display the message "Hello, World!\n".`},
		{`printf("%d", x);`, `1. display the message "%d".`},
		{"printf(fmt);", "1. display formatted output to the user."},
		{"malloc(10);", "1. allocate memory dynamically."},
		{"strlen(s);", "1. determine the length of the text stored in 's'."},
		{"foo(a, 2);", "1. call the 'foo' function with arguments 'a', the value 2."},
		{"bar();", "1. call the 'bar' function."},
	}

	for _, tc := range tests {
		got := translateSource(t, "int f() { "+tc.stmt+" return 0; }")
		if !strings.Contains(got, tc.want) {
			t.Errorf("statement %q: output does not contain %q\noutput:\n%s", tc.stmt, tc.want, got)
		}
	}
}

func TestTranslateStructEnumTypedefSections(t *testing.T) {
	got := translateSource(t, `
struct Point { int x; int y; };
enum Colour { RED, GREEN, BLUE };
typedef int Counter;
int main() { return 0; }`)

	assertContains(t, got,
		"Structure: Point",
		"This structure comprises 2 members:",
		"  • 'x': int",
		"Enumeration: Colour",
		"This enumeration defines the following named constants:",
		"  • 'RED'",
		"Type Definition: Counter",
		"The name 'Counter' is defined as an alias for the type int.",
	)
}

func TestTranslateDeterminism(t *testing.T) {
	source := `
int f(int n) {
    int total = 0;
    for (int i = 0; i < n; i++) {
        total += i;
    }
    return total;
}`

	report.InitReporter(report.LogLevelSilent)
	program, ok := syntax.Parse(syntax.Tokenize(source, "test.c"), "test.c")
	if !ok {
		t.Fatal("Parse failed")
	}

	first := Translate(program)
	second := Translate(program)

	if first != second {
		t.Error("rendering the same tree twice produced different output")
	}
}
