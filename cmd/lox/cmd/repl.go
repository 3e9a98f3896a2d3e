package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cwbudde/golox/pkg/lox"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(replCmd)
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive Lox prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startREPL()
	},
}

// startREPL runs the interactive prompt: one persistent session across
// lines, a configurable prompt, EOF on stdin terminates. Errors on a line
// are reported and the session continues with the next line.
func startREPL() error {
	cfg, err := lox.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lox: reading config: %v\n", err)
		cfg = lox.Defaults()
	}

	session := lox.New(lox.WithConfig(cfg))
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(cfg.Prompt)
		if !scanner.Scan() {
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		result := session.Run(line)

		for _, e := range result.StaticErrors {
			fmt.Fprintln(os.Stderr, e)
		}
		if result.RuntimeError != nil {
			fmt.Fprintln(os.Stderr, result.RuntimeError.Error())
		}
		if result.HasValue {
			fmt.Println(lox.Stringify(result.Value))
		}
	}
}
