package interpreter

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"minipy/pkg/runtime"
)

func (i *Interpreter) applyBinaryOp(op string, left, right runtime.Value) (runtime.Value, error) {
	switch op {
	case "+":
		return applyAdd(left, right), nil
	case "-":
		return applySub(left, right), nil
	case "*":
		return applyMul(left, right), nil
	case "/":
		return applyTrueDiv(left, right), nil
	case "//":
		return applyFloorDiv(left, right)
	case "%":
		return applyMod(left, right)
	default:
		return nil, fmt.Errorf("interpreter: unknown binary operator %q", op)
	}
}

func isNumeric(v runtime.Value) bool {
	switch v.(type) {
	case runtime.IntValue, runtime.FloatValue:
		return true
	default:
		return false
	}
}

func asFloat(v runtime.Value) float64 {
	switch n := v.(type) {
	case runtime.IntValue:
		f, _ := new(big.Float).SetInt(n.Val).Float64()
		return f
	case runtime.FloatValue:
		return n.Val
	default:
		return 0
	}
}

// applyAdd matches the reference evaluator's performAdd: Int+Int stays
// exact, any other numeric pairing promotes to Float, String+String
// concatenates, and -- preserved as a deliberate quirk rather than fixed --
// String+Int (in that order only) repeats the string Int times.
func applyAdd(left, right runtime.Value) runtime.Value {
	if l, ok := left.(runtime.IntValue); ok {
		if r, ok := right.(runtime.IntValue); ok {
			return runtime.IntValue{Val: new(big.Int).Add(l.Val, r.Val)}
		}
	}
	if isNumeric(left) && isNumeric(right) {
		return runtime.FloatValue{Val: asFloat(left) + asFloat(right)}
	}
	if l, ok := left.(runtime.StringValue); ok {
		if r, ok := right.(runtime.StringValue); ok {
			return runtime.StringValue{Val: l.Val + r.Val}
		}
		if r, ok := right.(runtime.IntValue); ok {
			return runtime.StringValue{Val: repeatString(l.Val, r)}
		}
	}
	return runtime.None
}

func applySub(left, right runtime.Value) runtime.Value {
	if l, ok := left.(runtime.IntValue); ok {
		if r, ok := right.(runtime.IntValue); ok {
			return runtime.IntValue{Val: new(big.Int).Sub(l.Val, r.Val)}
		}
	}
	if isNumeric(left) && isNumeric(right) {
		return runtime.FloatValue{Val: asFloat(left) - asFloat(right)}
	}
	return runtime.None
}

// applyMul repeats a string by an integer in either operand order, unlike
// applyAdd's one-directional quirk, matching performMul's explicit swap.
func applyMul(left, right runtime.Value) runtime.Value {
	if l, ok := left.(runtime.IntValue); ok {
		if r, ok := right.(runtime.IntValue); ok {
			return runtime.IntValue{Val: new(big.Int).Mul(l.Val, r.Val)}
		}
	}
	if isNumeric(left) && isNumeric(right) {
		return runtime.FloatValue{Val: asFloat(left) * asFloat(right)}
	}
	if l, ok := left.(runtime.StringValue); ok {
		if r, ok := right.(runtime.IntValue); ok {
			return runtime.StringValue{Val: repeatString(l.Val, r)}
		}
	}
	if l, ok := left.(runtime.IntValue); ok {
		if r, ok := right.(runtime.StringValue); ok {
			return runtime.StringValue{Val: repeatString(r.Val, l)}
		}
	}
	return runtime.None
}

func applyTrueDiv(left, right runtime.Value) runtime.Value {
	if !isNumeric(left) || !isNumeric(right) {
		return runtime.None
	}
	return runtime.FloatValue{Val: asFloat(left) / asFloat(right)}
}

func applyFloorDiv(left, right runtime.Value) (runtime.Value, error) {
	if l, ok := left.(runtime.IntValue); ok {
		if r, ok := right.(runtime.IntValue); ok {
			if r.Val.Sign() == 0 {
				return nil, fmt.Errorf("interpreter: integer division by zero")
			}
			quo, _ := runtime.FloorDivMod(l.Val, r.Val)
			return runtime.IntValue{Val: quo}, nil
		}
	}
	if isNumeric(left) && isNumeric(right) {
		return runtime.FloatValue{Val: math.Floor(asFloat(left) / asFloat(right))}, nil
	}
	return runtime.None, nil
}

func applyMod(left, right runtime.Value) (runtime.Value, error) {
	if l, ok := left.(runtime.IntValue); ok {
		if r, ok := right.(runtime.IntValue); ok {
			if r.Val.Sign() == 0 {
				return nil, fmt.Errorf("interpreter: integer modulo by zero")
			}
			_, rem := runtime.FloorDivMod(l.Val, r.Val)
			return runtime.IntValue{Val: rem}, nil
		}
	}
	if isNumeric(left) && isNumeric(right) {
		a, b := asFloat(left), asFloat(right)
		return runtime.FloatValue{Val: a - math.Floor(a/b)*b}, nil
	}
	return runtime.None, nil
}

func repeatString(s string, n runtime.IntValue) string {
	if n.Val.Sign() <= 0 {
		return ""
	}
	return strings.Repeat(s, int(n.Val.Int64()))
}

func compareOp(op string, a, b runtime.Value) bool {
	switch op {
	case "==":
		return valuesEqual(a, b)
	case "!=":
		return !valuesEqual(a, b)
	case "<":
		return valuesLess(a, b)
	case ">":
		return valuesLess(b, a)
	case "<=":
		return !valuesLess(b, a)
	case ">=":
		return !valuesLess(a, b)
	default:
		return false
	}
}

// valuesEqual matches the reference evaluator's performCompare for "==":
// same-kind comparisons fall through to a type-specific rule, Int/Float
// mixes compare as doubles, and every other cross-type pairing -- including
// Tuple compared with Tuple, which the reference never special-cased -- is
// simply not equal.
func valuesEqual(a, b runtime.Value) bool {
	switch av := a.(type) {
	case runtime.NoneValue:
		_, ok := b.(runtime.NoneValue)
		return ok
	case runtime.BoolValue:
		bv, ok := b.(runtime.BoolValue)
		return ok && av.Val == bv.Val
	case runtime.IntValue:
		if bv, ok := b.(runtime.IntValue); ok {
			return av.Val.Cmp(bv.Val) == 0
		}
		if bv, ok := b.(runtime.FloatValue); ok {
			return asFloat(av) == bv.Val
		}
		return false
	case runtime.FloatValue:
		if bv, ok := b.(runtime.FloatValue); ok {
			return av.Val == bv.Val
		}
		if bv, ok := b.(runtime.IntValue); ok {
			return av.Val == asFloat(bv)
		}
		return false
	case runtime.StringValue:
		bv, ok := b.(runtime.StringValue)
		return ok && av.Val == bv.Val
	default:
		return false
	}
}

// valuesLess matches performCompare's "<": numeric pairs compare natively
// or as doubles, strings compare lexicographically, and every other
// pairing -- notably Bool,Bool -- is never less, which in turn makes ">"
// never greater and "<="/">=" always true for that pairing.
func valuesLess(a, b runtime.Value) bool {
	if av, ok := a.(runtime.IntValue); ok {
		if bv, ok := b.(runtime.IntValue); ok {
			return av.Val.Cmp(bv.Val) < 0
		}
	}
	if isNumeric(a) && isNumeric(b) {
		return asFloat(a) < asFloat(b)
	}
	if av, ok := a.(runtime.StringValue); ok {
		if bv, ok := b.(runtime.StringValue); ok {
			return av.Val < bv.Val
		}
	}
	return false
}
