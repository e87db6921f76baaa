package eval

import "fmt"

// MismatchedNumberOfArguments reports that Interpret was called with a
// different number of arguments than the interpreted term's arity.
type MismatchedNumberOfArguments struct {
	Expected int
	Actual   int
}

func (e *MismatchedNumberOfArguments) Error() string {
	return fmt.Sprintf("mismatched number of arguments: expected %d but got %d", e.Expected, e.Actual)
}

// UnsupportedArgument reports an Argument value of a type Interpret does
// not know how to turn into a hfset.Set (only int, string and *hfset.Set
// are accepted).
type UnsupportedArgument struct {
	Value interface{}
}

func (e *UnsupportedArgument) Error() string {
	return fmt.Sprintf("unsupported argument type %T", e.Value)
}
