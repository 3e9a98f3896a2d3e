package interp

import (
	"io"
	"os"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/resolver"
)

// Interpreter executes a resolved program. One Interpreter instance
// persists across inputs in interactive mode, so `globals` and top-level
// declarations survive between REPL lines.
type Interpreter struct {
	globals   *Environment
	env       *Environment
	locals    resolver.Locals
	stdout    io.Writer
	callStack errors.StackTrace

	enableClock     bool
	enableJSON      bool
	enableStringOps bool
}

// New creates an Interpreter with its global scope pre-populated with the
// native functions (clock, and the optional JSON/case extensions) enabled
// by default; Config toggles (pkg/lox) can disable any subset.
func New(opts ...Option) *Interpreter {
	globals := NewEnvironment()
	in := &Interpreter{
		globals:         globals,
		env:             globals,
		stdout:          os.Stdout,
		enableClock:     true,
		enableJSON:      true,
		enableStringOps: true,
	}
	for _, opt := range opts {
		opt(in)
	}
	registerNatives(in)
	return in
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithStdout redirects Print output, primarily for tests and embedding.
func WithStdout(w io.Writer) Option {
	return func(in *Interpreter) { in.stdout = w }
}

// WithNatives toggles the optional native globals; clock is available by
// default but may still be disabled for a sandboxed embedding.
func WithNatives(clock, json, stringOps bool) Option {
	return func(in *Interpreter) {
		in.enableClock = clock
		in.enableJSON = json
		in.enableStringOps = stringOps
	}
}

// SetLocals merges a Resolve pass's side-table into the interpreter's
// accumulated one. In interactive mode each line is resolved independently
// (its own fresh Resolver, scoped to that line's AST), but a closure
// created on an earlier line — and still reachable through a variable or
// return value — keeps referencing expression nodes resolved on that
// earlier line. Those entries must survive later SetLocals calls, so this
// merges rather than replaces; only node keys, which are unique per parse,
// are ever added.
func (in *Interpreter) SetLocals(locals resolver.Locals) {
	if in.locals == nil {
		in.locals = make(resolver.Locals, len(locals))
	}
	for expr, depth := range locals {
		in.locals[expr] = depth
	}
}

// Interpret runs prog to completion. In expression mode (REPL dual-parse
// fallback) the expression's value is returned so the caller can print it;
// in statement mode the returned Value is always nil.
func (in *Interpreter) Interpret(prog *ast.Program) (Value, error) {
	if prog.IsExpr() {
		return in.evalExpr(prog.Expr)
	}
	for _, stmt := range prog.Stmts {
		if err := in.execStmt(stmt); err != nil {
			if _, isReturn := asReturn(err); isReturn {
				continue // a stray top-level return; resolver already flagged it
			}
			return nil, err
		}
	}
	return nil, nil
}

// executeBlock runs stmts in child (a fresh environment built by the
// caller), restoring the
// previous environment on every exit path including errors and returns.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, child *Environment) error {
	previous := in.env
	in.env = child
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) runtimeErr(tok lexer.Token, message string) error {
	stack := make(errors.StackTrace, len(in.callStack))
	copy(stack, in.callStack)
	return &errors.RuntimeError{Token: tok, Message: message, Stack: stack}
}

// pushFrame records a call-stack entry for the duration of a function call,
// so a runtime error raised from inside it carries the call chain that led
// there. popFrame must run via defer at the call site.
func (in *Interpreter) pushFrame(name string, pos lexer.Position) {
	in.callStack = append(in.callStack, errors.NewStackFrame(name, "", &pos))
}

func (in *Interpreter) popFrame() {
	in.callStack = in.callStack[:len(in.callStack)-1]
}
