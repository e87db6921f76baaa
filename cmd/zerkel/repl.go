package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zerkel-lang/zerkel/eval"
	"github.com/zerkel-lang/zerkel/lang"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `repl reads a line of the form "<program> <argument...>", evaluates
it, and prints the resulting set. Quit with <ctrl>D.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

// session is the REPL's interpreter object. Unlike a language with variable
// bindings, every line supplies both the program and its arguments, so
// there is no persistent symbol environment to carry across lines.
type session struct {
	repl *readline.Instance
}

func runRepl(cmd *cobra.Command, args []string) error {
	initDisplay()
	repl, err := readline.New("zerkel> ")
	if err != nil {
		return fmt.Errorf("starting REPL: %w", err)
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to the zerkel REPL")
	tracer().Infof("quit with <ctrl>D")
	s := &session{repl: repl}
	s.run()
	return nil
}

func (s *session) run() {
	for {
		line, err := s.repl.Readline()
		if err != nil { // io.EOF or io.ErrUnexpectedEOF on <ctrl>D
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := s.eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	pterm.Println("Good bye!")
}

// eval splits line into a program and its arguments on whitespace, the way
// the standalone "eval" subcommand takes them as separate CLI arguments:
// the first field is the program and the rest are arguments. A program
// containing whitespace (a two-word macro such as "not equal", or a macro
// applied to a term such as "map successor") is therefore split apart and
// cannot be entered here.
func (s *session) eval(line string) error {
	fields := strings.Fields(line)
	program, arguments := fields[0], fields[1:]
	node, err := lang.Parse(program)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", program, err)
	}
	interp, err := eval.NewInterpreter(node)
	if err != nil {
		return fmt.Errorf("%q is not a well-formed term: %w", program, err)
	}
	evalArgs := make([]eval.Argument, len(arguments))
	for i, a := range arguments {
		evalArgs[i] = a
	}
	result, err := interp.Interpret(evalArgs...)
	if err != nil {
		return fmt.Errorf("evaluating %q: %w", program, err)
	}
	pterm.Println(result.String())
	return nil
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
