/*
Command zerkel is the boundary glue around the zerkel packages: a small
cobra command tree (eval, parse, enum, repl) over lang.Parse, eval.Interpret
and enum.Generator.
*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var traceLevel string

func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zerkel",
	Short: "Interpreter and enumerator for the zerkel combinator language",
	Long: `zerkel evaluates and enumerates programs in a minimal functional
language whose sole data type is the hereditarily finite pure set.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setTraceLevel(traceLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(enumCmd)
	rootCmd.AddCommand(replCmd)
}

func setTraceLevel(level string) {
	l := tracing.TraceLevelFromString(level)
	for _, key := range []string{"zerkel.hfset", "zerkel.term", "zerkel.lang", "zerkel.eval", "zerkel.enum"} {
		tracing.Select(key).SetTraceLevel(l)
	}
}

// tracer traces with key 'zerkel.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("zerkel.cmd")
}
