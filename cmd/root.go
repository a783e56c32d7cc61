package cmd

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/luthersystems/minilisp/repl"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minilisp",
	Short: "A minimal lisp interpreter",
	Long: `minilisp reads s-expressions, evaluates them, and prints their results.
Without arguments it starts an interactive session when stdin is a terminal
and otherwise evaluates expressions read from stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		if readline.DefaultIsTerminal() {
			err := repl.Run("> ")
			if err != nil {
				fatal(err)
			}
			return
		}
		env, err := repl.NewEnv()
		if err != nil {
			fatal(err)
		}
		err = repl.RunStream(env, "stdin", os.Stdin, os.Stdout)
		if err != nil {
			fatal(err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
