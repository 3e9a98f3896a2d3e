package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/spf13/cobra"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Lox source and dump the resulting AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	var staticErrs []string
	scan := lexer.New(source, func(line int, msg string) {
		staticErrs = append(staticErrs, fmt.Sprintf("[line %d] Error: %s", line, msg))
	})
	tokens := scan.Scan()

	p := parser.New(tokens, func(tok lexer.Token, msg string) {
		staticErrs = append(staticErrs, fmt.Sprintf("[line %d] Error: %s", tok.Line, msg))
	})
	prog := p.Parse()

	if len(staticErrs) > 0 {
		for _, e := range staticErrs {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(staticErrs))
	}

	if prog.IsExpr() {
		dumpExpr(prog.Expr, 0)
		return nil
	}
	for _, stmt := range prog.Stmts {
		dumpStmt(stmt, 0)
	}
	return nil
}

func indentStr(n int) string { return strings.Repeat("  ", n) }

func dumpStmt(stmt ast.Stmt, depth int) {
	ind := indentStr(depth)
	switch s := stmt.(type) {
	case *ast.Block:
		fmt.Printf("%sBlock\n", ind)
		for _, st := range s.Stmts {
			dumpStmt(st, depth+1)
		}
	case *ast.Class:
		fmt.Printf("%sClass %s\n", ind, s.Name.Lexeme)
		for _, m := range s.Methods {
			dumpStmt(m, depth+1)
		}
	case *ast.Expression:
		fmt.Printf("%sExpression\n", ind)
		dumpExpr(s.Expr, depth+1)
	case *ast.Function:
		fmt.Printf("%sFunction %s\n", ind, s.Name.Lexeme)
		for _, st := range s.Body {
			dumpStmt(st, depth+1)
		}
	case *ast.If:
		fmt.Printf("%sIf\n", ind)
		dumpExpr(s.Condition, depth+1)
		dumpStmt(s.Then, depth+1)
		if s.ElseBranch != nil {
			dumpStmt(s.ElseBranch, depth+1)
		}
	case *ast.Print:
		fmt.Printf("%sPrint\n", ind)
		dumpExpr(s.Expr, depth+1)
	case *ast.Return:
		fmt.Printf("%sReturn\n", ind)
		if s.Value != nil {
			dumpExpr(s.Value, depth+1)
		}
	case *ast.Var:
		fmt.Printf("%sVar %s\n", ind, s.Name.Lexeme)
		if s.Initializer != nil {
			dumpExpr(s.Initializer, depth+1)
		}
	case *ast.While:
		fmt.Printf("%sWhile\n", ind)
		dumpExpr(s.Condition, depth+1)
		dumpStmt(s.Body, depth+1)
	default:
		fmt.Printf("%s%T\n", ind, stmt)
	}
}

func dumpExpr(expr ast.Expr, depth int) {
	ind := indentStr(depth)
	switch e := expr.(type) {
	case *ast.Assign:
		fmt.Printf("%sAssign %s\n", ind, e.Name.Lexeme)
		dumpExpr(e.Value, depth+1)
	case *ast.Binary:
		fmt.Printf("%sBinary %s\n", ind, e.Op.Lexeme)
		dumpExpr(e.Left, depth+1)
		dumpExpr(e.Right, depth+1)
	case *ast.Call:
		fmt.Printf("%sCall\n", ind)
		dumpExpr(e.Callee, depth+1)
		for _, a := range e.Args {
			dumpExpr(a, depth+1)
		}
	case *ast.Get:
		fmt.Printf("%sGet %s\n", ind, e.Name.Lexeme)
		dumpExpr(e.Object, depth+1)
	case *ast.Grouping:
		fmt.Printf("%sGrouping\n", ind)
		dumpExpr(e.Expression, depth+1)
	case *ast.Lambda:
		fmt.Printf("%sLambda\n", ind)
		for _, st := range e.Body {
			dumpStmt(st, depth+1)
		}
	case *ast.Literal:
		fmt.Printf("%sLiteral %v\n", ind, e.Value)
	case *ast.Logical:
		fmt.Printf("%sLogical %s\n", ind, e.Op.Lexeme)
		dumpExpr(e.Left, depth+1)
		dumpExpr(e.Right, depth+1)
	case *ast.Set:
		fmt.Printf("%sSet %s\n", ind, e.Name.Lexeme)
		dumpExpr(e.Object, depth+1)
		dumpExpr(e.Value, depth+1)
	case *ast.Super:
		fmt.Printf("%sSuper %s\n", ind, e.Method.Lexeme)
	case *ast.This:
		fmt.Printf("%sThis\n", ind)
	case *ast.Unary:
		fmt.Printf("%sUnary %s\n", ind, e.Op.Lexeme)
		dumpExpr(e.Right, depth+1)
	case *ast.Variable:
		fmt.Printf("%sVariable %s\n", ind, e.Name.Lexeme)
	default:
		fmt.Printf("%s%T\n", ind, expr)
	}
}
