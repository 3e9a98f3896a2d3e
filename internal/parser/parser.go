// Package parser implements the Lox parser: a recursive-descent parser for
// statements and a precedence-climbing parser for expressions.
//
// Key patterns:
//   - One-token lookahead (peek/check/match), two-token where funDecl needs
//     to distinguish a named function from a lambda expression.
//   - Error recovery: parse errors panic with a parseError, recovered at the
//     declaration loop, which then calls synchronize() (panic-mode
//     recovery) and continues so multiple syntax errors can be reported
//     from a single parse.
//   - Dual-mode top level: Parse first attempts a sequence of declarations;
//     if that produces nothing usable, it rewinds and retries as a single
//     expression, so REPL users can type `1 + 2` without a trailing
//     semicolon.
package parser

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

const maxArgs = 255

// ParseError describes a single syntax error, positioned at the offending
// token (or at EOF).
type ParseError struct {
	Token   lexer.Token
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// parseError is the internal panic payload used for panic-mode recovery.
// It is never allowed to escape the Parser's exported methods.
type parseError struct {
	err *ParseError
}

// ErrorReporter receives each syntax error as it is discovered.
type ErrorReporter func(tok lexer.Token, message string)

// Parser consumes a token stream and produces an ast.Program.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []*ParseError
	reportf ErrorReporter
}

// New creates a Parser over tokens (which must end in an EOF token, as
// produced by lexer.Lexer.Scan). report is called once per syntax error and
// may be nil.
func New(tokens []lexer.Token, report ErrorReporter) *Parser {
	if report == nil {
		report = func(lexer.Token, string) {}
	}
	return &Parser{tokens: tokens, reportf: report}
}

// Errors returns every syntax error accumulated during Parse.
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

// Parse implements the dual top-level mode: a sequence of declarations, or
// (on syntax error) a single bare expression. Diagnostics are reported via
// ErrorReporter exactly once, for whichever attempt's errors end up
// describing the returned Program.
func (p *Parser) Parse() *ast.Program {
	start := p.current
	errCountBefore := len(p.errors)

	stmts, ok := p.tryParseDeclarations()
	if ok {
		p.flushErrors(errCountBefore)
		return &ast.Program{Stmts: stmts}
	}
	declErrors := append([]*ParseError(nil), p.errors[errCountBefore:]...)

	// Rewind and retry as a single expression.
	p.current = start
	p.errors = p.errors[:errCountBefore]

	expr, ok := p.tryParseExpression()
	if ok {
		p.flushErrors(errCountBefore)
		return &ast.Program{Expr: expr}
	}

	// Neither attempt produced a usable program: report the statement-mode
	// diagnostics, since that is the primary parse mode and the one a file
	// full of declarations is actually attempting.
	p.errors = append(p.errors[:errCountBefore], declErrors...)
	p.flushErrors(errCountBefore)
	return &ast.Program{Stmts: nil}
}

// flushErrors reports every error recorded since index from, exactly once.
// record/errorAtNoPanic only append to p.errors; reporting is deferred
// until Parse() has settled on which attempt's errors to keep, so a
// discarded retry never reaches the caller's ErrorReporter.
func (p *Parser) flushErrors(from int) {
	for _, e := range p.errors[from:] {
		p.reportf(e.Token, e.Message)
	}
}

func (p *Parser) tryParseDeclarations() (stmts []ast.Stmt, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parseError); isParseErr {
				ok = false
				return
			}
			panic(r)
		}
	}()

	for !p.isAtEnd() {
		stmts = append(stmts, p.declarationRecovering())
	}

	// Commit to statement mode once it has actually produced a statement.
	// A result made up entirely of recovery nils (declarationRecovering
	// records nil for each declaration that panicked) falls through to the
	// bare-expression retry instead — the classic REPL case of an
	// expression typed with no trailing semicolon, which panics on the
	// very first declaration with nothing real parsed yet.
	parsedSomething := false
	for _, s := range stmts {
		if s != nil {
			parsedSomething = true
			break
		}
	}
	return stmts, parsedSomething || len(p.errors) == 0
}

// declarationRecovering parses one declaration, synchronizing and
// recording the error (rather than re-panicking) so that a single
// statement's syntax error doesn't abort the whole program in file mode.
func (p *Parser) declarationRecovering() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if pe, isParseErr := r.(parseError); isParseErr {
				p.record(pe.err)
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()
	return p.declaration()
}

func (p *Parser) tryParseExpression() (expr ast.Expr, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parseError); isParseErr {
				ok = false
				return
			}
			panic(r)
		}
	}()
	expr = p.expression()
	if !p.isAtEnd() {
		p.errorAt(p.peek(), "Expect end of expression.")
	}
	return expr, true
}

// record appends err without reporting it yet. Parse() decides, once it
// knows which attempt's result it is keeping, which recorded errors are
// ever actually flushed to the ErrorReporter.
func (p *Parser) record(err *ParseError) {
	p.errors = append(p.errors, err)
}

// ---- token stream helpers ----

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.newError(p.peek(), message))
}

func (p *Parser) newError(tok lexer.Token, message string) parseError {
	return parseError{err: &ParseError{Token: tok, Message: message}}
}

func (p *Parser) errorAt(tok lexer.Token, message string) {
	panic(p.newError(tok, message))
}

// synchronize discards tokens until it reaches a likely statement boundary,
// implementing panic-mode recovery.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}

