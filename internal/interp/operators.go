package interp

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case lexer.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, in.runtimeErr(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case lexer.BANG:
		return !IsTruthy(right), nil
	}

	panic("interp: unhandled unary operator")
}

// evalBinary implements the binary operator table. Both operands
// evaluate, left-to-right, before any type check runs.
func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case lexer.PLUS:
		return in.evalAdd(e.Op, left, right)

	case lexer.MINUS:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, in.runtimeErr(e.Op, "Operands must be numbers.")
		}
		return ln - rn, nil

	case lexer.STAR:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, in.runtimeErr(e.Op, "Operands must be numbers.")
		}
		return ln * rn, nil

	case lexer.SLASH:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, in.runtimeErr(e.Op, "Operands must be numbers.")
		}
		if rn == 0 {
			return nil, in.runtimeErr(e.Op, "Cannot divide by zero.")
		}
		return ln / rn, nil

	case lexer.GREATER:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, in.runtimeErr(e.Op, "Operands must be numbers.")
		}
		return ln > rn, nil

	case lexer.GREATER_EQUAL:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, in.runtimeErr(e.Op, "Operands must be numbers.")
		}
		return ln >= rn, nil

	case lexer.LESS:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, in.runtimeErr(e.Op, "Operands must be numbers.")
		}
		return ln < rn, nil

	case lexer.LESS_EQUAL:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, in.runtimeErr(e.Op, "Operands must be numbers.")
		}
		return ln <= rn, nil

	case lexer.BANG_EQUAL:
		return !IsEqual(left, right), nil

	case lexer.EQUAL_EQUAL:
		return IsEqual(left, right), nil
	}

	panic("interp: unhandled binary operator")
}

func (in *Interpreter) evalAdd(op lexer.Token, left, right Value) (Value, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if lok && rok {
		return ln + rn, nil
	}
	_, lstr := left.(string)
	_, rstr := right.(string)
	if lstr || rstr {
		return Stringify(left) + Stringify(right), nil
	}
	return nil, in.runtimeErr(op, "Operands must be two numbers or either operands must be a string.")
}

func bothNumbers(left, right Value) (float64, float64, bool) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	return ln, rn, lok && rok
}
