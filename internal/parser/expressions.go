package parser

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → (call ".")? IDENT "=" assignment | logic_or
//
// Parsed by first parsing the left side at logic_or precedence, then, if an
// "=" follows, rewriting that already-parsed expression into an assignment
// target rather than re-parsing: a Variable becomes an Assign, a Get
// becomes a Set. Anything else is an invalid target.
func (p *Parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.record(&ParseError{Token: equals, Message: "Invalid assignment target."})
			return expr
		}
	}

	return expr
}

// logic_or → logic_and ("or" logic_and)*
func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.logicAnd()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logic_and → lambda ("and" lambda)*
func (p *Parser) logicAnd() ast.Expr {
	expr := p.lambda()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.lambda()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// lambda → "fun" "(" params? ")" block | equality
func (p *Parser) lambda() ast.Expr {
	if p.check(lexer.FUN) && p.checkNext(lexer.LEFT_PAREN) {
		keyword := p.advance()
		p.consume(lexer.LEFT_PAREN, "Expect '(' after 'fun'.")
		params := p.parameterList()
		p.consume(lexer.LEFT_BRACE, "Expect '{' before lambda body.")
		body := p.block()
		return &ast.Lambda{Keyword: keyword, Params: params, Body: body}
	}
	return p.equality()
}

// equality → comparison (("!=" | "==") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison → term ((">" | ">=" | "<" | "<=") term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term → factor (("-" | "+") factor)*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor → unary (("/" | "*") unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary → ("!" | "-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" | "." IDENT )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAtNoPanic(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

// primary → NUMBER | STRING | "true" | "false" | "nil" | "this"
//         | IDENT | "(" expression ")" | "super" "." IDENT
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return &ast.Literal{Value: false}
	case p.match(lexer.TRUE):
		return &ast.Literal{Value: true}
	case p.match(lexer.NIL):
		return &ast.Literal{Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(lexer.SUPER):
		keyword := p.previous()
		p.consume(lexer.DOT, "Expect '.' after 'super'.")
		method := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(lexer.THIS):
		return &ast.This{Keyword: p.previous()}
	case p.match(lexer.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Expression: expr}
	default:
		p.errorAt(p.peek(), "Expect expression.")
		panic("unreachable")
	}
}
