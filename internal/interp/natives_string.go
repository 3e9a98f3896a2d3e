package interp

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// registerStringNatives installs upper/lower, built on golang.org/x/text's
// locale-aware case mapping rather than strings.ToUpper/ToLower.
func registerStringNatives(define func(string, int, func(*Interpreter, []Value) (Value, error))) {
	define("upper", 1, func(in *Interpreter, args []Value) (Value, error) {
		s, ok := args[0].(string)
		if !ok {
			return nil, in.runtimeErr(nativeToken, "upper: argument must be a string.")
		}
		return upperCaser.String(s), nil
	})

	define("lower", 1, func(in *Interpreter, args []Value) (Value, error) {
		s, ok := args[0].(string)
		if !ok {
			return nil, in.runtimeErr(nativeToken, "lower: argument must be a string.")
		}
		return lowerCaser.String(s), nil
	})
}
