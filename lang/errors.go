package lang

import (
	"fmt"
	"strings"

	"github.com/zerkel-lang/zerkel"
)

// ParseError reports a malformed program, with the line/column of the
// offending token so callers can render a caret under the input.
type ParseError struct {
	Text     string
	Position zerkel.Position
	Reason   string
}

func (e *ParseError) Error() string {
	lines := strings.Split(e.Text, "\n")
	line := ""
	if e.Position.Line-1 >= 0 && e.Position.Line-1 < len(lines) {
		line = lines[e.Position.Line-1]
	}
	return fmt.Sprintf("parse error at %s: %s\n%s\n%s^",
		e.Position, e.Reason, line, strings.Repeat(" ", e.Position.Column-1))
}

func newParseError(text string, offset int, reason string) *ParseError {
	return &ParseError{Text: text, Position: zerkel.LineCol(text, offset), Reason: reason}
}
