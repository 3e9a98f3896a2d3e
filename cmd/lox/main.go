// Command lox is the Lox language CLI: file/eval execution, an
// interactive REPL, and scanner/parser/resolver debugging subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/cmd/lox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
