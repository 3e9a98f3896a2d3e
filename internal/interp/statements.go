package interp

import "github.com/cwbudde/golox/internal/ast"

// execStmt executes one statement. A non-nil error is either a
// *errors.RuntimeError (genuine failure) or a returnSignal (non-local
// control flow, unwound by Function.Call).
func (in *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return in.executeBlock(s.Stmts, NewEnclosedEnvironment(in.env))

	case *ast.Var:
		if s.Initializer != nil {
			value, err := in.evalExpr(s.Initializer)
			if err != nil {
				return err
			}
			in.env.Define(s.Name.Lexeme, value, true)
			return nil
		}
		in.env.Define(s.Name.Lexeme, nil, false)
		return nil

	case *ast.Function:
		fn := newFunction(s, in.env, false)
		in.env.Define(s.Name.Lexeme, fn, true)
		return nil

	case *ast.Class:
		return in.execClass(s)

	case *ast.Expression:
		_, err := in.evalExpr(s.Expr)
		return err

	case *ast.If:
		cond, err := in.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return in.execStmt(s.Then)
		}
		if s.ElseBranch != nil {
			return in.execStmt(s.ElseBranch)
		}
		return nil

	case *ast.Print:
		value, err := in.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		_, werr := in.stdout.Write([]byte(Stringify(value) + "\n"))
		return werr

	case *ast.Return:
		var value Value
		if s.Value != nil {
			v, err := in.evalExpr(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{value: value}

	case *ast.While:
		for {
			cond, err := in.evalExpr(s.Condition)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := in.execStmt(s.Body); err != nil {
				return err
			}
		}

	default:
		panic("interp: unhandled statement type")
	}
}

// execClass implements two-step class binding: the name is
// defined as nil first so methods referencing the class by name (rare,
// but legal once resolved as a global) see a consistent environment
// shape, then reassigned once the Class value exists.
func (in *Interpreter) execClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		sc, err := in.evalExpr(s.Superclass)
		if err != nil {
			return err
		}
		class, ok := sc.(*Class)
		if !ok {
			return in.runtimeErr(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = class
	}

	in.env.Define(s.Name.Lexeme, nil, true)

	methodEnv := in.env
	if s.Superclass != nil {
		methodEnv = NewEnclosedEnvironment(in.env)
		methodEnv.Define("super", superclass, true)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		isInit := m.Name.Lexeme == "init"
		methods[m.Name.Lexeme] = newFunction(m, methodEnv, isInit)
	}

	class := newClass(s.Name.Lexeme, superclass, methods)
	return in.env.Assign(s.Name.Lexeme, class, s.Name)
}
