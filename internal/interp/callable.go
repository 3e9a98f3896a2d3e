package interp

import "github.com/cwbudde/golox/internal/ast"

// Callable is anything invokable with `callee(args...)`: a user-defined
// Function, a Class (construction), or a native.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
	String() string
}

// Function is a runtime closure: an AST function body plus the
// environment that was live at its declaration site.
type Function struct {
	decl          *ast.Function
	lambda        *ast.Lambda // set instead of decl for anonymous `fun(...)` expressions
	closure       *Environment
	isInitializer bool
}

func newFunction(decl *ast.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{decl: decl, closure: closure, isInitializer: isInitializer}
}

func newLambda(lambda *ast.Lambda, closure *Environment) *Function {
	return &Function{lambda: lambda, closure: closure}
}

func (f *Function) name() string {
	if f.decl != nil {
		return f.decl.Name.Lexeme
	}
	return ""
}

func (f *Function) Arity() int {
	if f.decl != nil {
		return len(f.decl.Params)
	}
	return len(f.lambda.Params)
}

func (f *Function) body() []ast.Stmt {
	if f.decl != nil {
		return f.decl.Body
	}
	return f.lambda.Body
}

// bind returns a copy of f whose closure is extended with "this" bound to
// instance — used for method lookup on Get.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance, true)
	return &Function{decl: f.decl, lambda: f.lambda, closure: env, isInitializer: f.isInitializer}
}

func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.closure)

	if f.decl != nil {
		for i, p := range f.decl.Params {
			env.Define(p.Lexeme, args[i], true)
		}
	} else {
		for i, p := range f.lambda.Params {
			env.Define(p.Lexeme, args[i], true)
		}
	}

	err := in.executeBlock(f.body(), env)
	if value, ok := asReturn(err); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

func (f *Function) String() string {
	if name := f.name(); name != "" {
		return "<fn " + name + ">"
	}
	return "<fn>"
}

// nativeFunction adapts a Go function to the Callable interface, for
// built-ins like clock() and the JSON/string extensions.
type nativeFunction struct {
	arity int
	name  string
	fn    func(in *Interpreter, args []Value) (Value, error)
}

func (n *nativeFunction) Arity() int { return n.arity }

func (n *nativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return n.fn(in, args)
}

func (n *nativeFunction) String() string {
	return "<native fn>"
}
