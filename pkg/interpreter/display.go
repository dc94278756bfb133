package interpreter

import (
	"fmt"
	"strings"

	"minipy/pkg/runtime"
)

func truthy(v runtime.Value) bool {
	switch n := v.(type) {
	case runtime.NoneValue:
		return false
	case runtime.BoolValue:
		return n.Val
	case runtime.IntValue:
		return n.Val.Sign() != 0
	case runtime.FloatValue:
		return n.Val != 0
	case runtime.StringValue:
		return len(n.Val) > 0
	case runtime.TupleValue:
		return len(n.Elements) > 0
	default:
		return false
	}
}

// display renders v the way print/str show it: strings come out raw, with
// no surrounding quotes.
func display(v runtime.Value) string {
	switch n := v.(type) {
	case runtime.NoneValue:
		return "None"
	case runtime.BoolValue:
		if n.Val {
			return "True"
		}
		return "False"
	case runtime.IntValue:
		return n.Val.String()
	case runtime.FloatValue:
		return fmt.Sprintf("%.6f", n.Val)
	case runtime.StringValue:
		return n.Val
	case runtime.TupleValue:
		return displayTuple(n)
	default:
		return ""
	}
}

func displayTuple(t runtime.TupleValue) string {
	if len(t.Elements) == 0 {
		return "()"
	}
	parts := make([]string, len(t.Elements))
	for idx, e := range t.Elements {
		parts[idx] = display(e)
	}
	joined := strings.Join(parts, ", ")
	if len(t.Elements) == 1 {
		return "(" + joined + ",)"
	}
	return "(" + joined + ")"
}
