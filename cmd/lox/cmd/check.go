package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
	"github.com/spf13/cobra"
)

var checkEval string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Scan, parse, and resolve a Lox file without running it",
	Long: `check reports every scan/parse/resolve diagnostic for a program
without interpreting it. There is no bytecode or compile stage here,
just front-end diagnostics.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkEval, "eval", "e", "", "check inline code instead of reading from file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	source, err := readSource(checkEval, args)
	if err != nil {
		return err
	}

	var diagnostics []string
	report := func(tok lexer.Token, msg string) {
		diagnostics = append(diagnostics, fmt.Sprintf("[line %d] Error: %s", tok.Line, msg))
	}

	scan := lexer.New(source, func(line int, msg string) {
		diagnostics = append(diagnostics, fmt.Sprintf("[line %d] Error: %s", line, msg))
	})
	tokens := scan.Scan()

	p := parser.New(tokens, report)
	prog := p.Parse()

	if len(diagnostics) == 0 {
		res := resolver.New(report)
		res.Resolve(prog)
	}

	if len(diagnostics) > 0 {
		for _, d := range diagnostics {
			fmt.Fprintln(os.Stderr, d)
		}
		return fmt.Errorf("check failed with %d error(s)", len(diagnostics))
	}

	fmt.Println("OK")
	return nil
}
