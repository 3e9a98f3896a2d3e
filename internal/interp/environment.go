package interp

import (
	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/lexer"
)

// binding pairs a stored value with whether it has been initialized.
// `var a;` with no initializer creates an uninitialized binding: reading
// it is a runtime error, but defining and later assigning
// it is not.
type binding struct {
	value       Value
	initialized bool
}

// Environment is a mutable name→value map linked to an enclosing scope,
// Naming mirrors runtime.Environment:
// Get/Assign/Define plus NewEnclosedEnvironment for child scopes.
type Environment struct {
	store     map[string]binding
	enclosing *Environment
}

// NewEnvironment creates a root environment with no enclosing scope —
// used for a program's globals.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]binding)}
}

// NewEnclosedEnvironment creates a child scope of outer, used for block
// bodies, function calls, and class method scopes.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]binding), enclosing: outer}
}

// Define unconditionally binds name in this environment. initialized=false
// records the binding as declared-but-unreadable (`var a;`
// case); any prior value is discarded either way.
func (e *Environment) Define(name string, value Value, initialized bool) {
	e.store[name] = binding{value: value, initialized: initialized}
}

// Get resolves name by walking the enclosing chain
func (e *Environment) Get(name string, tok lexer.Token) (Value, error) {
	if b, ok := e.store[name]; ok {
		if !b.initialized {
			return nil, &errors.RuntimeError{Token: tok, Message: "Uninitialized variable '" + name + "'."}
		}
		return b.value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name, tok)
	}
	return nil, &errors.RuntimeError{Token: tok, Message: "Undefined variable '" + name + "'."}
}

// Assign writes to an existing binding found by walking the enclosing
// chain. It never creates a new binding.
func (e *Environment) Assign(name string, value Value, tok lexer.Token) error {
	if _, ok := e.store[name]; ok {
		e.store[name] = binding{value: value, initialized: true}
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value, tok)
	}
	return &errors.RuntimeError{Token: tok, Message: "Undefined variable '" + name + "'."}
}

// ancestor walks exactly d hops up the enclosing chain. The resolver's hop
// counts are trusted absolutely: a mismatch is a programmer bug, not a
// runtime error, so this panics rather than returning an
// error.
func (e *Environment) ancestor(d int) *Environment {
	env := e
	for i := 0; i < d; i++ {
		if env.enclosing == nil {
			panic("interp: resolver hop distance exceeds environment chain depth")
		}
		env = env.enclosing
	}
	return env
}

// GetAt reads name directly out of the environment exactly d hops up, with
// no fallback search.
func (e *Environment) GetAt(d int, name string) Value {
	b, ok := e.ancestor(d).store[name]
	if !ok {
		panic("interp: resolver hop distance resolved to missing binding for '" + name + "'")
	}
	return b.value
}

// AssignAt writes name directly into the environment exactly d hops up.
func (e *Environment) AssignAt(d int, name string, value Value) {
	env := e.ancestor(d)
	env.store[name] = binding{value: value, initialized: true}
}
