package parser

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

// declaration → classDecl | funDecl | varDecl | statement
func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.check(lexer.CLASS):
		p.advance()
		return p.classDecl()
	case p.check(lexer.FUN) && p.checkNext(lexer.IDENTIFIER):
		// Two-token lookahead: "fun IDENT" is a named declaration; a bare
		// "fun (" is a lambda expression, handled by statement()/lambda().
		p.advance()
		return p.function("function")
	case p.check(lexer.VAR):
		p.advance()
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) checkNext(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	if p.current+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.current+1].Type == t
}

// classDecl → "class" IDENT ("<" IDENT)? "{" function* "}"
func (p *Parser) classDecl() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect class name.")

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		p.consume(lexer.IDENTIFIER, "Expect superclass name.")
		superclass = &ast.Variable{Name: p.previous()}
	}

	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.Function
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}
}

// function → IDENT "(" params? ")" block
func (p *Parser) function(kind string) *ast.Function {
	name := p.consume(lexer.IDENTIFIER, fmt.Sprintf("Expect %s name.", kind))
	p.consume(lexer.LEFT_PAREN, fmt.Sprintf("Expect '(' after %s name.", kind))
	params := p.parameterList()
	p.consume(lexer.LEFT_BRACE, fmt.Sprintf("Expect '{' before %s body.", kind))
	body := p.block()
	return &ast.Function{Name: name, Params: params, Body: body}
}

// parameterList parses the comma-separated parameter list up to (but not
// including) the closing ')'. More than 255 parameters is reported but
// parsing continues.
func (p *Parser) parameterList() []lexer.Token {
	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAtNoPanic(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")
	return params
}

// errorAtNoPanic records an error without aborting the current parse —
// used for soft limits like arg/param count, where parsing should keep
// going after the error is reported.
func (p *Parser) errorAtNoPanic(tok lexer.Token, message string) {
	p.record(&ParseError{Token: tok, Message: message})
}

// varDecl → "var" IDENT ("=" expression)? ";"
func (p *Parser) varDecl() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}

	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: initializer}
}
