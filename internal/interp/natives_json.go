package interp

import (
	"sort"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// registerJSONNatives installs jsonEncode/jsonDecode, converting between
// Lox values and JSON text via gjson/sjson rather than the standard
// library's encoding/json.
func registerJSONNatives(define func(string, int, func(*Interpreter, []Value) (Value, error))) {
	define("jsonEncode", 1, func(in *Interpreter, args []Value) (Value, error) {
		text, err := encodeJSON(args[0])
		if err != nil {
			return nil, in.runtimeErr(nativeToken, "jsonEncode: "+err.Error())
		}
		return text, nil
	})

	define("jsonDecode", 1, func(in *Interpreter, args []Value) (Value, error) {
		s, ok := args[0].(string)
		if !ok {
			return nil, in.runtimeErr(nativeToken, "jsonDecode: argument must be a string.")
		}
		if !gjson.Valid(s) {
			return nil, in.runtimeErr(nativeToken, "jsonDecode: invalid JSON.")
		}
		return decodeJSON(gjson.Parse(s)), nil
	})
}

// encodeJSON builds a JSON document from a Lox value by repeated
// sjson.SetRaw calls, starting from an empty root.
func encodeJSON(v Value) (string, error) {
	switch val := v.(type) {
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(val), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case string:
		return strconv.Quote(val), nil
	case *Instance:
		names := make([]string, 0, len(val.fields))
		for name := range val.fields {
			names = append(names, name)
		}
		sort.Strings(names)

		doc := "{}"
		var err error
		for _, name := range names {
			raw, ferr := encodeJSON(val.fields[name])
			if ferr != nil {
				return "", ferr
			}
			doc, err = sjson.SetRaw(doc, name, raw)
			if err != nil {
				return "", err
			}
		}
		return doc, nil
	default:
		return strconv.Quote(Stringify(val)), nil
	}
}

// decodeJSON walks a parsed gjson.Result into Lox values: objects become
// Instances of an anonymous "JsonObject" class so field access uses the
// ordinary Get expression.
func decodeJSON(r gjson.Result) Value {
	switch {
	case r.IsObject():
		instance := newInstance(jsonObjectClass)
		r.ForEach(func(key, value gjson.Result) bool {
			instance.fields[key.String()] = decodeJSON(value)
			return true
		})
		return instance
	case r.IsArray():
		// Lox has no native array literal; represent JSON arrays as a
		// JsonObject with numeric-string keys ("0", "1", ...) plus "length".
		instance := newInstance(jsonObjectClass)
		items := r.Array()
		for i, item := range items {
			instance.fields[strconv.Itoa(i)] = decodeJSON(item)
		}
		instance.fields["length"] = float64(len(items))
		return instance
	case r.Type == gjson.Null:
		return nil
	case r.Type == gjson.True, r.Type == gjson.False:
		return r.Bool()
	case r.Type == gjson.Number:
		return r.Num
	default:
		return r.String()
	}
}

// jsonObjectClass is the synthetic class backing jsonDecode's object/array
// results; it has no methods, only fields.
var jsonObjectClass = newClass("JsonObject", nil, map[string]*Function{})
