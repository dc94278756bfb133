package interpreter

import (
	"fmt"

	"minipy/pkg/ast"
	"minipy/pkg/runtime"
)

func (i *Interpreter) evalBlock(b *ast.Block) error {
	for _, stmt := range b.Statements {
		if err := i.evalStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) evalStmt(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExprStatement:
		_, err := i.evalExpr(s.X)
		return err
	case *ast.AssignStatement:
		return i.evalAssign(s)
	case *ast.AugAssignStatement:
		return i.evalAugAssign(s)
	case *ast.BreakStatement:
		return breakSignal{}
	case *ast.ContinueStatement:
		return continueSignal{}
	case *ast.ReturnStatement:
		return i.evalReturn(s)
	case *ast.IfStatement:
		return i.evalIf(s)
	case *ast.WhileStatement:
		return i.evalWhile(s)
	case *ast.FunctionDef:
		return i.evalFunctionDef(s)
	default:
		return fmt.Errorf("interpreter: unknown statement node %T", stmt)
	}
}

// evalAssign implements plain and chained assignment. The value list is
// evaluated once, then bound right-to-left across the target groups that
// preceded it, matching the reference evaluator's expr_stmt handling.
func (i *Interpreter) evalAssign(s *ast.AssignStatement) error {
	values := make([]runtime.Value, len(s.Values))
	for idx, expr := range s.Values {
		v, err := i.evalExpr(expr)
		if err != nil {
			return err
		}
		values[idx] = v
	}
	for idx := len(s.Targets) - 1; idx >= 0; idx-- {
		group := s.Targets[idx]
		for j, name := range group.Names {
			if j < len(values) {
				i.env.Set(name, values[j])
			}
		}
	}
	return nil
}

func (i *Interpreter) evalAugAssign(s *ast.AugAssignStatement) error {
	rhs, err := i.evalExpr(s.Value)
	if err != nil {
		return err
	}
	current := i.env.Get(s.Name)
	result, err := i.applyBinaryOp(s.Op, current, rhs)
	if err != nil {
		return err
	}
	i.env.Set(s.Name, result)
	return nil
}

// evalReturn collapses the returned expression list to None (no values),
// the lone value (one expression), or a Tuple (more than one).
func (i *Interpreter) evalReturn(s *ast.ReturnStatement) error {
	switch len(s.Values) {
	case 0:
		return returnSignal{value: runtime.None}
	case 1:
		v, err := i.evalExpr(s.Values[0])
		if err != nil {
			return err
		}
		return returnSignal{value: v}
	default:
		values := make([]runtime.Value, len(s.Values))
		for idx, expr := range s.Values {
			v, err := i.evalExpr(expr)
			if err != nil {
				return err
			}
			values[idx] = v
		}
		return returnSignal{value: runtime.TupleValue{Elements: values}}
	}
}

func (i *Interpreter) evalIf(s *ast.IfStatement) error {
	for _, clause := range s.Clauses {
		cond, err := i.evalExpr(clause.Cond)
		if err != nil {
			return err
		}
		if truthy(cond) {
			return i.evalBlock(clause.Body)
		}
	}
	if s.Else != nil {
		return i.evalBlock(s.Else)
	}
	return nil
}

func (i *Interpreter) evalWhile(s *ast.WhileStatement) error {
	for {
		cond, err := i.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		if !truthy(cond) {
			return nil
		}
		err = i.evalBlock(s.Body)
		if err == nil {
			continue
		}
		switch err.(type) {
		case breakSignal:
			return nil
		case continueSignal:
			continue
		default:
			return err
		}
	}
}

// evalFunctionDef evaluates default-value expressions once, at definition
// time, and registers the resulting FunctionDef in the function table,
// overwriting any prior definition with the same name.
func (i *Interpreter) evalFunctionDef(s *ast.FunctionDef) error {
	names := make([]string, len(s.Params))
	var defaults []runtime.Value
	for idx, p := range s.Params {
		names[idx] = p.Name
		if p.Default != nil {
			v, err := i.evalExpr(p.Default)
			if err != nil {
				return err
			}
			defaults = append(defaults, v)
		}
	}
	i.funcs.Define(&runtime.FunctionDef{
		Name:     s.Name,
		Params:   names,
		Defaults: defaults,
		Body:     s.Body,
	})
	return nil
}
