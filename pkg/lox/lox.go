// Package lox is the embeddable public API wrapping the scanner, parser,
// resolver, and interpreter into a single session, the way go-dws exposes
// pkg/dwscript.Engine around its own pipeline.
package lox

import (
	"io"
	"os"

	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
)

// Lox is a single interpretation session. Its Interpreter's globals and
// declarations persist across Run calls, so an interactive session can
// reuse one Interpreter across inputs.
type Lox struct {
	interp *interp.Interpreter
}

type settings struct {
	out    io.Writer
	config Config
}

// Option configures a Lox session at construction time.
type Option func(*settings)

// WithOutput redirects `print` statements; defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// WithConfig applies a loaded Config's native-function toggles.
func WithConfig(cfg Config) Option {
	return func(s *settings) { s.config = cfg }
}

// New creates a session. Without WithConfig, all natives are enabled
// (Defaults()).
func New(opts ...Option) *Lox {
	s := settings{out: os.Stdout, config: Defaults()}
	for _, opt := range opts {
		opt(&s)
	}
	in := interp.New(
		interp.WithStdout(s.out),
		interp.WithNatives(s.config.EnableClock, s.config.EnableJSON, s.config.EnableStringOps),
	)
	return &Lox{interp: in}
}

// Result reports the outcome of one Run call.
type Result struct {
	// StaticErrors holds every scan/parse/resolve diagnostic, one string per
	// error. Non-empty StaticErrors means execution did not happen.
	StaticErrors []string
	// RuntimeError is set when interpretation itself failed. It unwinds
	// evaluation, not the process.
	RuntimeError error
	// HasValue and Value are populated only when source parsed as a bare
	// expression (the REPL dual-parse fallback).
	HasValue bool
	Value    any
}

// Run scans, parses, resolves, and — absent static errors — interprets
// source against this session's persistent globals.
func (l *Lox) Run(source string) *Result {
	result := &Result{}

	scan := lexer.New(source, func(line int, msg string) {
		result.StaticErrors = append(result.StaticErrors, errors.NewScanError(line, msg).Error())
	})
	tokens := scan.Scan()

	p := parser.New(tokens, func(tok lexer.Token, msg string) {
		result.StaticErrors = append(result.StaticErrors, errors.NewTokenError(tok, msg).Error())
	})
	prog := p.Parse()

	if len(result.StaticErrors) > 0 {
		return result
	}

	res := resolver.New(func(tok lexer.Token, msg string) {
		result.StaticErrors = append(result.StaticErrors, errors.NewTokenError(tok, msg).Error())
	})
	res.Resolve(prog)

	if len(result.StaticErrors) > 0 {
		return result
	}

	l.interp.SetLocals(res.Locals())

	value, err := l.interp.Interpret(prog)
	if err != nil {
		result.RuntimeError = err
		return result
	}

	if prog.IsExpr() {
		result.HasValue = true
		result.Value = value
	}
	return result
}

// Stringify renders a Value using Lox's stringification rules, exposed so
// embedders can format Result.Value consistently.
func Stringify(v any) string {
	return interp.Stringify(v)
}

// Trace renders the call stack active when RuntimeError was raised, most
// recent call first. Empty when there was no runtime error, or it carried
// no frames (e.g. a top-level failure with no function call in progress).
func (r *Result) Trace() string {
	return r.TraceColored(false)
}

// TraceColored is Trace with ANSI highlighting on each frame's function
// name, for terminals that want it (wired to the loaded Config's Color
// field by callers such as `lox run --trace`).
func (r *Result) TraceColored(color bool) string {
	re, ok := r.RuntimeError.(*errors.RuntimeError)
	if !ok || len(re.Stack) == 0 {
		return ""
	}
	return re.Stack.Format(color)
}
