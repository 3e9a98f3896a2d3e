// Package resolver performs a single static pass over the AST between
// parsing and interpretation. It populates a side-table,
// keyed by expression node pointer identity, recording how many
// `enclosing` hops separate each variable reference from the environment
// that declares it, so the interpreter never needs a dynamic name search.
package resolver

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// ResolveError describes a single static error, positioned at the
// offending token.
type ResolveError struct {
	Token   lexer.Token
	Message string
}

func (e *ResolveError) Error() string {
	return e.Message
}

// ErrorReporter receives each static error as it is discovered.
type ErrorReporter func(tok lexer.Token, message string)

// Locals is the side-table: for each expression node that resolved to a
// local binding, the number of enclosing-environment hops to reach it.
// Expressions absent from the table are globals.
type Locals map[ast.Expr]int

// Resolver walks a parsed program and fills in a Locals side-table.
type Resolver struct {
	scopes          []map[string]bool
	locals          Locals
	currentFunction functionType
	currentClass    classType
	errors          []*ResolveError
	reportf         ErrorReporter
}

// New creates a Resolver. report is called once per static error and may
// be nil.
func New(report ErrorReporter) *Resolver {
	if report == nil {
		report = func(lexer.Token, string) {}
	}
	return &Resolver{locals: make(Locals), reportf: report}
}

// Errors returns every static error accumulated during Resolve.
func (r *Resolver) Errors() []*ResolveError {
	return r.errors
}

// Locals returns the populated side-table.
func (r *Resolver) Locals() Locals {
	return r.locals
}

// Resolve walks every top-level statement of prog (or its bare
// expression, in REPL dual-parse mode).
func (r *Resolver) Resolve(prog *ast.Program) {
	if prog.IsExpr() {
		r.resolveExpr(prog.Expr)
		return
	}
	r.resolveStmts(prog.Stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) error(tok lexer.Token, message string) {
	err := &ResolveError{Token: tok, Message: message}
	r.errors = append(r.errors, err)
	r.reportf(tok, message)
}

// ---- scope stack ----

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) peekScope() map[string]bool {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare adds name to the innermost scope as "not yet usable". A no-op at
// global scope, where redeclaration is legal.
func (r *Resolver) declare(name lexer.Token) {
	scope := r.peekScope()
	if scope == nil {
		return
	}
	if _, exists := scope[name.Lexeme]; exists {
		r.error(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks name usable in the innermost scope.
func (r *Resolver) define(name lexer.Token) {
	scope := r.peekScope()
	if scope == nil {
		return
	}
	scope[name.Lexeme] = true
}

// resolveLocal scans scopes from innermost outward for name, recording the
// hop distance for expr at the first match. No match leaves expr absent
// from the table, meaning "look it up in globals at runtime".
func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

// resolveFunctionBody resolves a function/method/lambda body in a fresh
// scope holding its parameters, under the given functionType context (used
// to validate `return` statements).
func (r *Resolver) resolveFunctionBody(params []lexer.Token, body []ast.Stmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(body)
	r.endScope()

	r.currentFunction = enclosingFunction
}
