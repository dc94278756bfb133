package interpreter

import (
	"bytes"
	"math/big"
	"testing"

	"minipy/pkg/ast"
	"minipy/pkg/runtime"
)

func eval(t *testing.T, expr ast.Expression) runtime.Value {
	t.Helper()
	interp := New(&bytes.Buffer{})
	v, err := interp.evalExpr(expr)
	if err != nil {
		t.Fatalf("evalExpr(%v) returned error: %v", expr, err)
	}
	return v
}

func TestArithmeticCoercion(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expression
		want runtime.Value
	}{
		{"int+int", ast.Bin("+", ast.Int(2), ast.Int(3)), runtime.IntValue{Val: big.NewInt(5)}},
		{"int+float", ast.Bin("+", ast.Int(2), ast.Flt(0.5)), runtime.FloatValue{Val: 2.5}},
		{"str+str", ast.Bin("+", ast.Str("ab"), ast.Str("cd")), runtime.StringValue{Val: "abcd"}},
		{"str+int repeats", ast.Bin("+", ast.Str("ab"), ast.Int(3)), runtime.StringValue{Val: "ababab"}},
		{"int+str is None", ast.Bin("+", ast.Int(3), ast.Str("ab")), runtime.None},
		{"str*int repeats", ast.Bin("*", ast.Str("x"), ast.Int(4)), runtime.StringValue{Val: "xxxx"}},
		{"int*str repeats", ast.Bin("*", ast.Int(4), ast.Str("x")), runtime.StringValue{Val: "xxxx"}},
		{"str-str is None", ast.Bin("-", ast.Str("a"), ast.Str("b")), runtime.None},
		{"int//int floors", ast.Bin("//", ast.Int(-7), ast.Int(2)), runtime.IntValue{Val: big.NewInt(-4)}},
		{"int%int", ast.Bin("%", ast.Int(-7), ast.Int(2)), runtime.IntValue{Val: big.NewInt(1)}},
		{"div always float", ast.Bin("/", ast.Int(4), ast.Int(2)), runtime.FloatValue{Val: 2.0}},
		{"div non-numeric is None", ast.Bin("/", ast.Str("a"), ast.Int(2)), runtime.None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eval(t, tt.expr)
			if !valuesIdentical(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestStringRepeatLengthInvariant(t *testing.T) {
	for n := 0; n <= 5; n++ {
		got := eval(t, ast.Bin("*", ast.Str("ab"), ast.Int(int64(n))))
		s, ok := got.(runtime.StringValue)
		if !ok {
			t.Fatalf("expected StringValue, got %#v", got)
		}
		if len(s.Val) != 2*max(n, 0) {
			t.Errorf("len(%q) = %d, want %d", s.Val, len(s.Val), 2*n)
		}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expression
		want bool
	}{
		{"1<2", ast.Cmp([]ast.Expression{ast.Int(1), ast.Int(2)}, "<"), true},
		{"chained true", ast.Cmp([]ast.Expression{ast.Int(1), ast.Int(2), ast.Int(3)}, "<", "<"), true},
		{"chained false", ast.Cmp([]ast.Expression{ast.Int(1), ast.Int(3), ast.Int(2)}, "<", "<"), false},
		{"bool<bool always false", ast.Cmp([]ast.Expression{ast.Bool(false), ast.Bool(true)}, "<"), false},
		{"bool<=bool always true", ast.Cmp([]ast.Expression{ast.Bool(true), ast.Bool(false)}, "<="), true},
		{"int==float", ast.Cmp([]ast.Expression{ast.Int(2), ast.Flt(2.0)}, "=="), true},
		{"str==int false", ast.Cmp([]ast.Expression{ast.Str("2"), ast.Int(2)}, "=="), false},
		{"none==none", ast.Cmp([]ast.Expression{ast.NilLit(), ast.NilLit()}, "=="), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eval(t, tt.expr)
			b, ok := got.(runtime.BoolValue)
			if !ok || b.Val != tt.want {
				t.Errorf("got %#v, want Bool(%v)", got, tt.want)
			}
		})
	}
}

// TestChainedComparisonEagerEvaluation checks that every operand in a
// chained comparison is evaluated exactly once, left to right, even once
// the pairwise check has already failed partway through the chain.
func TestChainedComparisonEagerEvaluation(t *testing.T) {
	var buf bytes.Buffer
	interp := New(&buf)
	// def side(tag, val): print(tag); return val
	interp.funcs.Define(&runtime.FunctionDef{
		Name:   "side",
		Params: []string{"tag", "val"},
		Body: ast.Blk(
			ast.ExprStmt(ast.Call1("print", ast.ID("tag"))),
			ast.Ret(ast.ID("val")),
		),
	})
	cmp := ast.Cmp([]ast.Expression{
		ast.Call1("side", ast.Str("a"), ast.Int(1)),
		ast.Call1("side", ast.Str("b"), ast.Int(2)),
		ast.Call1("side", ast.Str("c"), ast.Int(1)),
	}, "<", "<")

	got, err := interp.evalExpr(cmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := got.(runtime.BoolValue); !ok || b.Val != false {
		t.Fatalf("1<2<1 = %#v, want false", got)
	}
	if want := "a\nb\nc\n"; buf.String() != want {
		t.Fatalf("evaluation order = %q, want %q (every operand evaluated once, even after the chain fails)", buf.String(), want)
	}
}

func TestBoolOpShortCircuit(t *testing.T) {
	interp := New(&bytes.Buffer{})
	// "or" should return the first truthy operand without evaluating the
	// second; an unresolved identifier as the second operand would read as
	// None (not an error), so we instead check the returned value's identity.
	orExpr := ast.Or(ast.Int(5), ast.Int(0))
	got, err := interp.evalExpr(orExpr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	iv, ok := got.(runtime.IntValue)
	if !ok || iv.Val.Int64() != 5 {
		t.Fatalf("5 or 0 = %#v, want Int(5) uncoerced", got)
	}

	andExpr := ast.And(ast.Int(0), ast.Int(9))
	got, err = interp.evalExpr(andExpr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	iv, ok = got.(runtime.IntValue)
	if !ok || iv.Val.Int64() != 0 {
		t.Fatalf("0 and 9 = %#v, want Int(0) uncoerced", got)
	}
}

func valuesIdentical(a, b runtime.Value) bool {
	switch av := a.(type) {
	case runtime.IntValue:
		bv, ok := b.(runtime.IntValue)
		return ok && av.Val.Cmp(bv.Val) == 0
	case runtime.FloatValue:
		bv, ok := b.(runtime.FloatValue)
		return ok && av.Val == bv.Val
	case runtime.StringValue:
		bv, ok := b.(runtime.StringValue)
		return ok && av.Val == bv.Val
	default:
		return a == b
	}
}
