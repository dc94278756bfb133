// Package interpreter evaluates a parsed Module against the runtime value
// model and environment defined in minipy/pkg/runtime.
package interpreter

import (
	"io"

	"minipy/pkg/ast"
	"minipy/pkg/runtime"
)

// Interpreter is single-threaded, long-lived state: one Environment, one
// function table, and the writer that "print" sends to.
type Interpreter struct {
	env   *runtime.Environment
	funcs *runtime.FunctionTable
	out   io.Writer
}

func New(out io.Writer) *Interpreter {
	return &Interpreter{
		env:   runtime.NewEnvironment(),
		funcs: runtime.NewFunctionTable(),
		out:   out,
	}
}

// GlobalEnvironment exposes the interpreter's variable scope, primarily so
// callers (and tests) can seed globals before running a module.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment { return i.env }

// Functions exposes the interpreter's function table.
func (i *Interpreter) Functions() *runtime.FunctionTable { return i.funcs }

// namedValue pairs a keyword argument's name with its already-evaluated
// value.
type namedValue struct {
	Name  string
	Value runtime.Value
}

// Run evaluates every top-level statement in mod, in order. A bare "return"
// at the top level halts execution normally rather than erroring, matching
// the reference evaluator's top-level loop.
func (i *Interpreter) Run(mod *ast.Module) error {
	for _, stmt := range mod.Body {
		err := i.evalStmt(stmt)
		if err == nil {
			continue
		}
		if _, ok := err.(returnSignal); ok {
			return nil
		}
		return err
	}
	return nil
}
