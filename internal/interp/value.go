// Package interp implements the tree-walking evaluator: value semantics,
// operators, statement execution, and call dispatch over the AST produced
// by the parser and annotated by the resolver.
package interp

import (
	"fmt"
	"strconv"
)

// Value is any Lox runtime value. The dynamic type tags the value:
//   - nil            → Nil
//   - bool           → Bool
//   - float64        → Number
//   - string         → String
//   - Callable       → Callable (Function, *Class, or a native)
//   - *Instance      → Instance
type Value = any

// IsTruthy reports Lox truthiness: nil and false are falsey, everything
// else (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements Lox's `==`: values of different dynamic types are
// never equal (numbers only compare against numbers, etc.), nil equals
// only nil.
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify implements stringification rules.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return stringifyNumber(val)
	case string:
		return val
	case Callable:
		return val.String()
	case *Instance:
		return val.className() + " instance"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// stringifyNumber renders whole-number doubles without a ".0" suffix and
// everything else at the shortest round-trip precision
// strconv's shortest ('f', -1) form already omits the suffix for integral
// values, e.g. 1.0 -> "1".
func stringifyNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
