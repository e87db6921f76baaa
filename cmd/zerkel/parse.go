package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zerkel-lang/zerkel/lang"
	"github.com/zerkel-lang/zerkel/term"
)

var parseCmd = &cobra.Command{
	Use:   "parse <program>",
	Short: "Parse a program and print its term tree and arity",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	node, err := lang.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[0], err)
	}
	tracer().Debugf("parsed %q -> %s", args[0], node)
	pterm.Printfln("%s  (arity %d, size %d)", node.String(), node.Arity, node.Size)
	if err := term.Analyze(node); err != nil {
		return fmt.Errorf("%q is not a well-formed term: %w", args[0], err)
	}
	pterm.Success.Println("well-formed")
	return nil
}
