package interp

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

// evalExpr evaluates expr to a Value, or returns a *errors.RuntimeError.
func (in *Interpreter) evalExpr(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return in.evalExpr(e.Expression)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Variable:
		return in.lookupVariable(e.Name, e)

	case *ast.Assign:
		return in.evalAssign(e)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		return in.evalGet(e)

	case *ast.Set:
		return in.evalSet(e)

	case *ast.This:
		return in.lookupVariable(e.Keyword, e)

	case *ast.Super:
		return in.evalSuper(e)

	case *ast.Lambda:
		return newLambda(e, in.env), nil

	default:
		panic("interp: unhandled expression type")
	}
}

// lookupVariable implements the variable-access rule: a side-table hit
// reads the exact ancestor environment; a miss falls back to globals.
func (in *Interpreter) lookupVariable(name lexer.Token, expr ast.Expr) (Value, error) {
	if d, ok := in.locals[expr]; ok {
		if b, found := in.env.ancestor(d).store[name.Lexeme]; found && !b.initialized {
			return nil, in.runtimeErr(name, "Uninitialized variable '"+name.Lexeme+"'.")
		}
		return in.env.GetAt(d, name.Lexeme), nil
	}
	return in.globals.Get(name.Lexeme, name)
}

func (in *Interpreter) evalAssign(e *ast.Assign) (Value, error) {
	value, err := in.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}

	if d, ok := in.locals[e]; ok {
		in.env.AssignAt(d, e.Name.Lexeme, value)
		return value, nil
	}
	if err := in.globals.Assign(e.Name.Lexeme, value, e.Name); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Op.Type == lexer.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else {
		if !IsTruthy(left) {
			return left, nil
		}
	}

	return in.evalExpr(e.Right)
}

func (in *Interpreter) evalGet(e *ast.Get) (Value, error) {
	obj, err := in.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, in.runtimeErr(e.Name, "Only instances have properties.")
	}
	return instance.get(e.Name)
}

func (in *Interpreter) evalSet(e *ast.Set) (Value, error) {
	obj, err := in.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, in.runtimeErr(e.Name, "Only instances have fields.")
	}
	value, err := in.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	instance.set(e.Name, value)
	return value, nil
}

func (in *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	d := in.locals[e] // always present where legal
	superclass, _ := in.env.GetAt(d, "super").(*Class)

	instance, _ := in.env.GetAt(d-1, "this").(*Instance)

	method, ok := superclass.findMethod(e.Method.Lexeme)
	if !ok {
		return nil, in.runtimeErr(e.Method, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.bind(instance), nil
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, in.runtimeErr(e.Paren, "Can only call functions and classes.")
	}

	if len(args) != callable.Arity() {
		return nil, in.runtimeErr(e.Paren, arityMessage(callable.Arity(), len(args)))
	}

	in.pushFrame(callable.String(), e.Paren.Pos)
	defer in.popFrame()
	return callable.Call(in, args)
}

func arityMessage(want, got int) string {
	return fmt.Sprintf("Expected %d arguments but got %d.", want, got)
}
