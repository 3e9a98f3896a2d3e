package interp

import (
	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/lexer"
)

// Instance is a runtime object: a class plus its own field storage.
// Fields require no pre-declaration — Set freely assigns.
type Instance struct {
	class  *Class
	fields map[string]Value
}

func newInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

func (i *Instance) className() string {
	return i.class.name
}

// get implements property read: fields shadow methods, and a found method
// is returned bound to this instance.
func (i *Instance) get(name lexer.Token) (Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}
	if m, ok := i.class.findMethod(name.Lexeme); ok {
		return m.bind(i), nil
	}
	return nil, &errors.RuntimeError{Token: name, Message: "Undefined property '" + name.Lexeme + "'."}
}

// set implements property write: no pre-declaration required.
func (i *Instance) set(name lexer.Token, value Value) {
	i.fields[name.Lexeme] = value
}
