package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zerkel-lang/zerkel/enum"
)

var (
	enumSize          int
	enumArity         int
	enumUseInOperator bool
)

var enumCmd = &cobra.Command{
	Use:   "enum",
	Short: "Enumerate the well-formed terms of a given size and arity",
	Args:  cobra.NoArgs,
	RunE:  runEnum,
}

func init() {
	enumCmd.Flags().IntVar(&enumSize, "size", 1, "term size to enumerate")
	enumCmd.Flags().IntVar(&enumArity, "arity", 0, "term arity to enumerate")
	enumCmd.Flags().BoolVar(&enumUseInOperator, "in-operator", true, "use the membership operator instead of if-then-else at arity 4")
}

func runEnum(cmd *cobra.Command, args []string) error {
	g := enum.NewGenerator(enumSize, enumArity, enumUseInOperator)
	programs := g.Generate()
	tracer().Debugf("enumerated %d programs of size %d, arity %d", len(programs), enumSize, enumArity)
	for _, p := range programs {
		pterm.Println(p.String())
	}
	pterm.Info.Printfln("%d programs", len(programs))
	return nil
}
