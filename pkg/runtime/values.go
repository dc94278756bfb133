// Package runtime holds the tagged value representation, the environment,
// and the function table used by the interpreter.
package runtime

import (
	"fmt"
	"math/big"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTuple:
		return "tuple"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

type NoneValue struct{}

func (NoneValue) Kind() Kind { return KindNone }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type IntValue struct {
	Val *big.Int
}

func (v IntValue) Kind() Kind { return KindInt }

type FloatValue struct {
	Val float64
}

func (v FloatValue) Kind() Kind { return KindFloat }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

// TupleValue is produced by a return statement carrying more than one value
// and by the CLI's "argv" global; the grammar subset implemented here has no
// tuple literal syntax.
type TupleValue struct {
	Elements []Value
}

func (v TupleValue) Kind() Kind { return KindTuple }

// None is the canonical absent value, mirroring Python's None.
var None = NoneValue{}

// NewInt wraps a *big.Int, cloning it so callers retain ownership of theirs.
func NewInt(v *big.Int) IntValue {
	return IntValue{Val: CloneBigInt(v)}
}

// CloneBigInt copies the provided big.Int pointer, tolerating nil.
func CloneBigInt(src *big.Int) *big.Int {
	if src == nil {
		return nil
	}
	return new(big.Int).Set(src)
}
