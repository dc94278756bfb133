package interpreter

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"minipy/pkg/runtime"
)

type builtinFunc func(*Interpreter, []runtime.Value) (runtime.Value, error)

// builtins are reserved names: they are checked before the user function
// table on every call, so a "def print(...)" never shadows the real print.
var builtins = map[string]builtinFunc{
	"print": builtinPrint,
	"int":   builtinInt,
	"float": builtinFloat,
	"str":   builtinStr,
	"bool":  builtinBool,
}

func builtinPrint(i *Interpreter, args []runtime.Value) (runtime.Value, error) {
	parts := make([]string, len(args))
	for idx, a := range args {
		parts[idx] = display(a)
	}
	fmt.Fprintln(i.out, strings.Join(parts, " "))
	return runtime.None, nil
}

// builtinInt matches convertToInt: Int passes through, Float truncates
// toward zero, Bool maps to 0/1, String parses as a base-10 integer literal
// (a malformed literal is a fatal error, mirroring the reference's uncaught
// parse exception), and anything else (None, Tuple) is 0.
func builtinInt(i *Interpreter, args []runtime.Value) (runtime.Value, error) {
	if len(args) == 0 {
		return runtime.None, nil
	}
	switch v := args[0].(type) {
	case runtime.IntValue:
		return v, nil
	case runtime.FloatValue:
		whole, _ := big.NewFloat(v.Val).Int(nil)
		return runtime.IntValue{Val: whole}, nil
	case runtime.BoolValue:
		if v.Val {
			return runtime.IntValue{Val: big.NewInt(1)}, nil
		}
		return runtime.IntValue{Val: big.NewInt(0)}, nil
	case runtime.StringValue:
		n, ok := new(big.Int).SetString(strings.TrimSpace(v.Val), 10)
		if !ok {
			return nil, fmt.Errorf("interpreter: invalid literal for int(): %q", v.Val)
		}
		return runtime.IntValue{Val: n}, nil
	default:
		return runtime.IntValue{Val: big.NewInt(0)}, nil
	}
}

// builtinFloat mirrors convertToFloat: String parsing failures are fatal,
// matching std::stod's uncaught exception in the reference evaluator.
func builtinFloat(i *Interpreter, args []runtime.Value) (runtime.Value, error) {
	if len(args) == 0 {
		return runtime.None, nil
	}
	switch v := args[0].(type) {
	case runtime.FloatValue:
		return v, nil
	case runtime.IntValue:
		return runtime.FloatValue{Val: asFloat(v)}, nil
	case runtime.BoolValue:
		if v.Val {
			return runtime.FloatValue{Val: 1}, nil
		}
		return runtime.FloatValue{Val: 0}, nil
	case runtime.StringValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Val), 64)
		if err != nil {
			return nil, fmt.Errorf("interpreter: could not convert string to float: %q", v.Val)
		}
		return runtime.FloatValue{Val: f}, nil
	default:
		return runtime.FloatValue{Val: 0}, nil
	}
}

func builtinStr(i *Interpreter, args []runtime.Value) (runtime.Value, error) {
	if len(args) == 0 {
		return runtime.None, nil
	}
	if v, ok := args[0].(runtime.StringValue); ok {
		return v, nil
	}
	return runtime.StringValue{Val: display(args[0])}, nil
}

func builtinBool(i *Interpreter, args []runtime.Value) (runtime.Value, error) {
	if len(args) == 0 {
		return runtime.None, nil
	}
	return runtime.BoolValue{Val: truthy(args[0])}, nil
}
