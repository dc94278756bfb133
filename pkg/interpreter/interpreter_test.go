package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"minipy/pkg/ast"
	"minipy/pkg/parser"
	"minipy/pkg/runtime"
)

func runSource(t *testing.T, src string) string {
	t.Helper()
	mod, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse error: %v\nsource:\n%s", err, src)
	}
	var buf bytes.Buffer
	interp := New(&buf)
	if err := interp.Run(mod); err != nil {
		t.Fatalf("run error: %v\nsource:\n%s", err, src)
	}
	return buf.String()
}

func TestEndToEndPrintAndArithmetic(t *testing.T) {
	src := "x = 2\n" +
		"y = 3\n" +
		"print(x + y)\n" +
		"print(x * y)\n" +
		"print(x / y)\n"
	got := runSource(t, src)
	want := "5\n6\n0.666667\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEndToEndIfElifElse(t *testing.T) {
	src := "def classify(n):\n" +
		"    if n < 0:\n" +
		"        return \"negative\"\n" +
		"    elif n == 0:\n" +
		"        return \"zero\"\n" +
		"    else:\n" +
		"        return \"positive\"\n" +
		"print(classify(-5))\n" +
		"print(classify(0))\n" +
		"print(classify(5))\n"
	got := runSource(t, src)
	want := "negative\nzero\npositive\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEndToEndWhileBreakContinue(t *testing.T) {
	src := "i = 0\n" +
		"total = 0\n" +
		"while i < 10:\n" +
		"    i = i + 1\n" +
		"    if i % 2 == 0:\n" +
		"        continue\n" +
		"    if i > 7:\n" +
		"        break\n" +
		"    total = total + i\n" +
		"print(total)\n"
	got := runSource(t, src)
	// odd i in 1..7: 1+3+5+7 = 16
	if got != "16\n" {
		t.Fatalf("got %q, want %q", got, "16\n")
	}
}

func TestEndToEndFunctionDefaultsAndKeywords(t *testing.T) {
	src := "def greet(name, greeting=\"Hello\"):\n" +
		"    return greeting + \", \" + name\n" +
		"print(greet(\"Ada\"))\n" +
		"print(greet(\"Lin\", greeting=\"Hi\"))\n" +
		"print(greet(name=\"Grace\", greeting=\"Hey\"))\n"
	got := runSource(t, src)
	want := "Hello, Ada\nHi, Lin\nHey, Grace\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEndToEndFStringAndEscaping(t *testing.T) {
	src := "x = 3\n" +
		"name = \"world\"\n" +
		"print(f\"hello {name}, x={x}, sum={x + 1, x + 2}\")\n" +
		"print(f\"literal braces {{and}} stay\")\n"
	got := runSource(t, src)
	want := "hello world, x=3, sum=4, 5\nliteral braces {and} stay\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEndToEndChainedAssignmentAndUnpacking(t *testing.T) {
	src := "a = b = 5\n" +
		"print(a)\n" +
		"print(b)\n" +
		"c, d = 1, 2\n" +
		"print(c)\n" +
		"print(d)\n"
	got := runSource(t, src)
	want := "5\n5\n1\n2\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEndToEndUnknownFunctionReturnsNone(t *testing.T) {
	src := "x = mystery(1, 2, 3)\n" +
		"print(x)\n"
	got := runSource(t, src)
	if got != "None\n" {
		t.Fatalf("got %q, want %q", got, "None\n")
	}
}

// TestFunctionDefaultsEvaluatedOnce checks that a default expression runs
// exactly once, at def-time, not once per call with the parameter omitted.
func TestFunctionDefaultsEvaluatedOnce(t *testing.T) {
	var buf bytes.Buffer
	interp := New(&buf)
	// Build the function manually so the default expression is itself a
	// call whose side effect (the print in next_id) would repeat if defaults
	// were evaluated per-call rather than once at definition time.
	counterDefault := ast.Call1("next_id")
	interp.funcs.Define(&runtime.FunctionDef{
		Name:   "next_id",
		Params: nil,
		Body: ast.Blk(
			ast.ExprStmt(ast.Call1("print", ast.Str("computing default"))),
			ast.Ret(ast.Int(1)),
		),
	})
	fnDef := ast.FnDef("make", []ast.Param{ast.PDef("id", counterDefault)}, ast.Blk(ast.Ret(ast.ID("id"))))
	if err := interp.evalFunctionDef(fnDef); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, ok := interp.funcs.Lookup("make")
	if !ok {
		t.Fatalf("make was not registered")
	}
	if len(fn.Defaults) != 1 {
		t.Fatalf("expected exactly one captured default, got %d", len(fn.Defaults))
	}

	for n := 0; n < 3; n++ {
		v, err := interp.invokeFunction(fn, nil, nil)
		if err != nil {
			t.Fatalf("invokeFunction error: %v", err)
		}
		iv, ok := v.(runtime.IntValue)
		if !ok || iv.Val.Int64() != 1 {
			t.Fatalf("call %d: got %#v, want the captured default 1 every time", n, v)
		}
	}
	if got, want := buf.String(), "computing default\n"; got != want {
		t.Fatalf("default side effects = %q, want %q (evaluated once, at def time)", got, want)
	}
}

func TestBuiltinConversions(t *testing.T) {
	src := "print(int(\"42\"))\n" +
		"print(float(\"3.5\"))\n" +
		"print(str(7))\n" +
		"print(bool(0))\n" +
		"print(bool(\"\"))\n" +
		"print(bool(\"x\"))\n"
	got := runSource(t, src)
	want := "42\n3.500000\n7\nFalse\nFalse\nTrue\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMultiValueReturnProducesTuple(t *testing.T) {
	src := "def pair():\n" +
		"    return 1, 2\n" +
		"print(pair())\n"
	got := runSource(t, src)
	if strings.TrimSpace(got) != "(1, 2)" {
		t.Fatalf("got %q, want tuple display", got)
	}
}
