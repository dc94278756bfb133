package interpreter

import (
	"fmt"
	"math/big"

	"minipy/pkg/ast"
	"minipy/pkg/runtime"
)

func (i *Interpreter) evalExpr(expr ast.Expression) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return i.env.Get(e.Name), nil
	case *ast.NilLiteral:
		return runtime.None, nil
	case *ast.BoolLiteral:
		return runtime.BoolValue{Val: e.Value}, nil
	case *ast.IntLiteral:
		return runtime.NewInt(e.Value), nil
	case *ast.FloatLiteral:
		return runtime.FloatValue{Val: e.Value}, nil
	case *ast.StrLiteral:
		return runtime.StringValue{Val: e.Value}, nil
	case *ast.FormatString:
		return i.evalFormatString(e)
	case *ast.BinaryExpression:
		left, err := i.evalExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := i.evalExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return i.applyBinaryOp(e.Op, left, right)
	case *ast.UnaryExpression:
		return i.evalUnary(e)
	case *ast.NotExpression:
		v, err := i.evalExpr(e.Operand)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: !truthy(v)}, nil
	case *ast.BoolOp:
		return i.evalBoolOp(e)
	case *ast.Comparison:
		return i.evalComparison(e)
	case *ast.Call:
		return i.evalCall(e)
	default:
		return nil, fmt.Errorf("interpreter: unknown expression node %T", expr)
	}
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpression) (runtime.Value, error) {
	v, err := i.evalExpr(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case "+":
		return v, nil
	case "-":
		switch n := v.(type) {
		case runtime.IntValue:
			return runtime.IntValue{Val: new(big.Int).Neg(n.Val)}, nil
		case runtime.FloatValue:
			return runtime.FloatValue{Val: -n.Val}, nil
		default:
			return v, nil
		}
	default:
		return nil, fmt.Errorf("interpreter: unknown unary operator %q", e.Op)
	}
}

// evalBoolOp implements "or"/"and" chains: the left-to-right scan stops and
// returns the deciding operand's own value, uncoerced to bool, as soon as
// that operand's truthiness settles the result, and never evaluates the
// remaining operands.
func (i *Interpreter) evalBoolOp(e *ast.BoolOp) (runtime.Value, error) {
	result, err := i.evalExpr(e.Operands[0])
	if err != nil {
		return nil, err
	}
	for _, operand := range e.Operands[1:] {
		if e.Op == "or" && truthy(result) {
			return result, nil
		}
		if e.Op == "and" && !truthy(result) {
			return result, nil
		}
		result, err = i.evalExpr(operand)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// evalComparison evaluates every operand eagerly, left to right, before
// checking any pairwise comparison -- the pairwise checks themselves still
// stop at the first failure.
func (i *Interpreter) evalComparison(e *ast.Comparison) (runtime.Value, error) {
	values := make([]runtime.Value, len(e.Operands))
	for idx, operand := range e.Operands {
		v, err := i.evalExpr(operand)
		if err != nil {
			return nil, err
		}
		values[idx] = v
	}
	for idx, op := range e.Ops {
		if !compareOp(op, values[idx], values[idx+1]) {
			return runtime.BoolValue{Val: false}, nil
		}
	}
	return runtime.BoolValue{Val: true}, nil
}

func (i *Interpreter) evalCall(e *ast.Call) (runtime.Value, error) {
	args := make([]runtime.Value, len(e.Args))
	for idx, a := range e.Args {
		v, err := i.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	kwargs := make([]namedValue, len(e.Kwargs))
	for idx, kw := range e.Kwargs {
		v, err := i.evalExpr(kw.Value)
		if err != nil {
			return nil, err
		}
		kwargs[idx] = namedValue{Name: kw.Name, Value: v}
	}

	if builtin, ok := builtins[e.Callee]; ok {
		return builtin(i, args)
	}
	fn, ok := i.funcs.Lookup(e.Callee)
	if !ok {
		return runtime.None, nil
	}
	return i.invokeFunction(fn, args, kwargs)
}

// invokeFunction binds positional arguments by index (extras ignored), then
// lets keyword arguments overwrite any matching positional binding, then
// fills any still-unbound trailing parameters from their defaults. A
// parameter left unbound after all three steps is simply never defined in
// the call frame, so a later read of its name falls through to whatever
// that name holds at global scope.
func (i *Interpreter) invokeFunction(fn *runtime.FunctionDef, args []runtime.Value, kwargs []namedValue) (runtime.Value, error) {
	i.env.PushFrame()
	defer i.env.PopFrame()

	for idx, name := range fn.Params {
		if idx < len(args) {
			i.env.Set(name, args[idx])
		}
	}
	for _, kw := range kwargs {
		i.env.Set(kw.Name, kw.Value)
	}
	for idx, name := range fn.Params {
		if i.env.HasLocal(name) {
			continue
		}
		if def, ok := fn.DefaultFor(idx); ok {
			i.env.Set(name, def)
		}
	}

	err := i.evalBlock(fn.Body)
	if err == nil {
		return runtime.None, nil
	}
	if rs, ok := err.(returnSignal); ok {
		return rs.value, nil
	}
	return nil, err
}
