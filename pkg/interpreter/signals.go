package interpreter

import "minipy/pkg/runtime"

// break/continue/return are implemented as error-satisfying control-flow
// signals rather than mutable interpreter flags, so they propagate up
// through whatever Go call stack is evaluating nested blocks.

type breakSignal struct{}

func (breakSignal) Error() string { return "'break' outside loop" }

type continueSignal struct{}

func (continueSignal) Error() string { return "'continue' outside loop" }

type returnSignal struct {
	value runtime.Value
}

func (returnSignal) Error() string { return "'return' outside function" }
