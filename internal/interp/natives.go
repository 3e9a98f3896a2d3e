package interp

import (
	"time"

	"github.com/cwbudde/golox/internal/lexer"
)

// nativeToken stands in for a call-site token when a native reports a
// runtime error: natives receive no AST position, so errors they raise
// are attributed to line 0 rather than the call expression.
var nativeToken = lexer.Token{}

// registerNatives installs every built-in global the interpreter ships
// with: clock(), plus the JSON and case-conversion extensions layered on
// top of the third-party stack (see natives_json.go, natives_string.go).
func registerNatives(in *Interpreter) {
	define := func(name string, arity int, fn func(*Interpreter, []Value) (Value, error)) {
		in.globals.Define(name, &nativeFunction{name: name, arity: arity, fn: fn}, true)
	}

	if in.enableClock {
		define("clock", 0, func(*Interpreter, []Value) (Value, error) {
			return float64(time.Now().UnixNano()) / float64(time.Second), nil
		})
	}

	if in.enableJSON {
		registerJSONNatives(define)
	}
	if in.enableStringOps {
		registerStringNatives(define)
	}
}
