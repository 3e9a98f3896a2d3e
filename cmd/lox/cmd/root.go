package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// configPath is the --config flag shared by every subcommand that builds a
// lox.Lox session (run, repl).
var configPath string

var rootCmd = &cobra.Command{
	Use:   "lox",
	Short: "Lox language interpreter",
	Long: `lox is a tree-walking interpreter for the Lox scripting language:
dynamically typed, with closures, classes, and single inheritance.

Usage:
  lox              interactive prompt
  lox <script>     run a script file
  lox run <script> run a script file (equivalent to the bare form)`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a .loxrc.yaml config file")
}
