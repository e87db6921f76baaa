package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zerkel-lang/zerkel/eval"
	"github.com/zerkel-lang/zerkel/lang"
)

var (
	stepCount bool
	debugStep bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <program> [argument...]",
	Short: "Evaluate a program against a tuple of set arguments",
	Long: `eval parses <program> (surface syntax or a macro name), interprets
it against the given arguments, and prints the resulting set.

Each argument is either a set literal ("{}", "{{},{{}}}", ...) or a natural
number, taken as a von Neumann ordinal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().BoolVar(&stepCount, "count-steps", false, "report the number of evaluation steps taken")
	evalCmd.Flags().BoolVar(&debugStep, "debug", false, "print the evaluation stack before every step")
}

func runEval(cmd *cobra.Command, args []string) error {
	program, arguments := args[0], args[1:]
	node, err := lang.Parse(program)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", program, err)
	}
	interp, err := eval.NewInterpreter(node)
	if err != nil {
		return fmt.Errorf("%q is not a well-formed term: %w", program, err)
	}
	var counter *eval.StepCounter
	if stepCount {
		counter = &eval.StepCounter{}
		interp.AddObserver(counter)
	}
	if debugStep {
		interp.AddObserver(&eval.Debugger{})
	}
	evalArgs := make([]eval.Argument, len(arguments))
	for i, a := range arguments {
		evalArgs[i] = a
	}
	result, err := interp.Interpret(evalArgs...)
	if err != nil {
		return fmt.Errorf("evaluating %q: %w", program, err)
	}
	tracer().Debugf("evaluated %q against %v -> %s", program, arguments, result)
	pterm.Println(result.String())
	if counter != nil {
		pterm.Info.Printfln("%d evaluation steps", counter.Steps)
	}
	return nil
}
