package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/luthersystems/minilisp/repl"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] file ...",
	Short: "Run lisp code",
	Long:  `Run lisp code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		names, exprs, err := runReadExpressions(args)
		if err != nil {
			fatal(err)
		}

		env, err := repl.NewEnv()
		if err != nil {
			fatal(err)
		}
		var w io.Writer = io.Discard
		if runPrint {
			w = os.Stdout
		}
		for i := range exprs {
			err := repl.RunStream(env, names[i], bytes.NewReader(exprs[i]), w)
			if err != nil {
				fatal(err)
			}
		}
	},
}

func runReadExpressions(args []string) ([]string, [][]byte, error) {
	names := make([]string, len(args))
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			names[i] = "argument"
			exprs[i] = []byte(args[i])
		}
		return names, exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		names[i] = path
		exprs[i] = b
	}
	return names, exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
