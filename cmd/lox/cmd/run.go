package cmd

import (
	"fmt"
	"os"

	loxerrors "github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
	"github.com/cwbudde/golox/pkg/lox"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitOK      = 0
	exitUsage   = 64
	exitStatic  = 65
	exitRuntime = 70
)

var evalExpr string
var showTrace bool
var dumpAST bool
var resolveEnabled bool

func init() {
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = runRoot

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&showTrace, "trace", false, "print the call stack alongside a runtime error")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before executing")
	runCmd.Flags().BoolVar(&resolveEnabled, "resolve", true, "run the static resolver before interpreting (--resolve=false to skip)")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a Lox script file or inline expression",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScript,
}

// runRoot implements argument dispatch for the bare `lox`
// invocation: zero args opens the REPL, one arg runs that file, more is a
// usage error.
func runRoot(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return startREPL()
	case 1:
		os.Exit(runFile(args[0]))
		return nil
	default:
		fmt.Fprintln(os.Stderr, "Usage: jlox [script]")
		os.Exit(exitUsage)
		return nil
	}
}

func runScript(cmd *cobra.Command, args []string) error {
	if evalExpr != "" {
		os.Exit(runSource(evalExpr, "<eval>"))
		return nil
	}
	if len(args) == 1 {
		os.Exit(runFile(args[0]))
		return nil
	}
	fmt.Fprintln(os.Stderr, "Usage: jlox [script]")
	os.Exit(exitUsage)
	return nil
}

// runFile reads path and interprets it once, returning the process exit
// code for the outcome (success, static errors, or a runtime error).
func runFile(path string) int {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lox: %v\n", err)
		return exitUsage
	}
	return runSource(string(content), path)
}

func runSource(source, filename string) int {
	// --dump-ast and --resolve=false both need the parsed Program and the
	// resolver as separate steps, rather than pkg/lox.Lox's all-in-one Run,
	// so they take the lower-level path check.go and parse.go already use.
	if dumpAST || !resolveEnabled {
		return runSourceDebug(source)
	}

	cfg, err := lox.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lox: reading config: %v\n", err)
	}

	session := lox.New(lox.WithConfig(cfg))
	result := session.Run(source)

	if len(result.StaticErrors) > 0 {
		for _, e := range result.StaticErrors {
			fmt.Fprintln(os.Stderr, e)
		}
		return exitStatic
	}

	if result.RuntimeError != nil {
		fmt.Fprintln(os.Stderr, result.RuntimeError.Error())
		if showTrace {
			if trace := result.TraceColored(cfg.Color); trace != "" {
				fmt.Fprintln(os.Stderr, trace)
			}
		}
		return exitRuntime
	}

	return exitOK
}

// runSourceDebug runs the same pipeline as runSource, one stage at a time,
// so it can print the AST between parsing and resolving and can skip the
// resolver pass entirely (an unresolved program still runs, falling back
// to a global lookup for every variable access).
func runSourceDebug(source string) int {
	cfg, err := lox.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lox: reading config: %v\n", err)
	}

	var staticErrs []string
	scan := lexer.New(source, func(line int, msg string) {
		staticErrs = append(staticErrs, fmt.Sprintf("[line %d] Error: %s", line, msg))
	})
	tokens := scan.Scan()

	p := parser.New(tokens, func(tok lexer.Token, msg string) {
		staticErrs = append(staticErrs, loxerrors.NewTokenError(tok, msg).Error())
	})
	prog := p.Parse()

	if len(staticErrs) > 0 {
		for _, e := range staticErrs {
			fmt.Fprintln(os.Stderr, e)
		}
		return exitStatic
	}

	if dumpAST {
		if prog.IsExpr() {
			dumpExpr(prog.Expr, 0)
		} else {
			for _, stmt := range prog.Stmts {
				dumpStmt(stmt, 0)
			}
		}
	}

	in := interp.New(
		interp.WithNatives(cfg.EnableClock, cfg.EnableJSON, cfg.EnableStringOps),
	)

	if resolveEnabled {
		res := resolver.New(func(tok lexer.Token, msg string) {
			staticErrs = append(staticErrs, loxerrors.NewTokenError(tok, msg).Error())
		})
		res.Resolve(prog)
		if len(staticErrs) > 0 {
			for _, e := range staticErrs {
				fmt.Fprintln(os.Stderr, e)
			}
			return exitStatic
		}
		in.SetLocals(res.Locals())
	}

	_, err = in.Interpret(prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		if showTrace {
			if re, ok := err.(*loxerrors.RuntimeError); ok && len(re.Stack) > 0 {
				fmt.Fprintln(os.Stderr, re.Stack.Format(cfg.Color))
			}
		}
		return exitRuntime
	}

	return exitOK
}
