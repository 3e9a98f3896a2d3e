package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	tokensEval       string
	tokensShowPos    bool
	tokensShowType   bool
	tokensOnlyErrors bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a Lox file or expression and print the resulting tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVarP(&tokensEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	tokensCmd.Flags().BoolVar(&tokensShowPos, "show-pos", false, "show token positions (line:column)")
	tokensCmd.Flags().BoolVar(&tokensShowType, "show-type", false, "show token type names")
	tokensCmd.Flags().BoolVar(&tokensOnlyErrors, "only-errors", false, "print only lexical errors, no tokens")
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := readSource(tokensEval, args)
	if err != nil {
		return err
	}

	errCount := 0
	scan := lexer.New(source, func(line int, msg string) {
		errCount++
		fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", line, msg)
	})

	for _, tok := range scan.Scan() {
		if tokensOnlyErrors {
			continue
		}
		line := fmt.Sprintf("%q", tok.Lexeme)
		if tokensShowType {
			line = fmt.Sprintf("%-14s %s", tok.Type, line)
		}
		if tokensShowPos {
			line += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
		}
		fmt.Println(line)
	}

	if errCount > 0 {
		return fmt.Errorf("found %d lexical error(s)", errCount)
	}
	return nil
}

// readSource picks the inline expression or the named file — shared by
// tokens/parse/check.
func readSource(eval string, args []string) (string, error) {
	if eval != "" {
		return eval, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e for inline code")
}
