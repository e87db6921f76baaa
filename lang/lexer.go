package lang

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// TokKind discriminates the lexical categories the scanner produces.
type TokKind int

const (
	TokEOF TokKind = iota
	TokPrimitive
	TokKeyword
	TokInt
	TokEllipsis
)

// Token is a single lexed unit: its Kind, its canonical text (for keywords,
// the normalised multi-word name; for TokInt, the decimal digits; for
// TokPrimitive, the single character), and its byte offset for error
// reporting via zerkel.LineCol.
type Token struct {
	Kind   TokKind
	Text   string
	Offset int
}

var keywords = []string{
	// two-word keywords must be listed so the scanner's maximal-munch
	// picks them over their single-word prefix (e.g. "not equal" over
	// "not").
	"not equal", "is singleton", "is pair", "is transitive", "is ordinal",
	"is limit", "is omega", "extract omega", "log omega", "get first",
	"get second",
	"successor", "singleton", "pair", "couple", "union", "inter", "not",
	"and", "or", "all", "any", "in", "subset", "equal", "discard",
	"select", "among", "for", "none", "map", "filter", "op", "iop",
	"add", "sub", "mult", "div", "power", "log", "predecessor", "rank",
}

var primitiveChars = "EI+?!<>oR"

// lexerInstance is built once: the grammar never changes at runtime.
var lexerInstance = buildLexer()

func buildLexer() *lexmachine.Lexer {
	lex := lexmachine.NewLexer()
	for _, kw := range keywords {
		pattern := regexpForKeyword(kw)
		name := kw
		lex.Add([]byte(pattern), func(scan *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return &Token{Kind: TokKeyword, Text: name, Offset: m.TC}, nil
		})
	}
	lex.Add([]byte(`&`), func(scan *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return &Token{Kind: TokKeyword, Text: "&", Offset: m.TC}, nil
	})
	lex.Add([]byte(`\.\.\.`), func(scan *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return &Token{Kind: TokEllipsis, Text: "...", Offset: m.TC}, nil
	})
	lex.Add([]byte(`-?[0-9]+`), func(scan *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return &Token{Kind: TokInt, Text: string(m.Bytes), Offset: m.TC}, nil
	})
	for _, c := range primitiveChars {
		ch := string(c)
		lex.Add([]byte(regexpEscape(ch)), func(scan *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return &Token{Kind: TokPrimitive, Text: string(m.Bytes), Offset: m.TC}, nil
		})
	}
	lex.Add([]byte(`( |\t|\n|\r)+`), func(scan *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return nil, nil
	})
	if err := lex.Compile(); err != nil {
		panic(err)
	}
	return lex
}

// regexpForKeyword turns a canonical keyword ("is singleton") into a
// lexmachine pattern matching it with arbitrary internal whitespace, so
// "is   singleton" and "is singleton" both lex to the same token. No word
// boundary is required after the keyword.
func regexpForKeyword(kw string) string {
	out := ""
	first := true
	for _, word := range splitWords(kw) {
		if !first {
			out += `( |\t)+`
		}
		out += word
		first = false
	}
	return out
}

func splitWords(s string) []string {
	var words []string
	cur := ""
	for _, r := range s {
		if r == ' ' {
			if cur != "" {
				words = append(words, cur)
				cur = ""
			}
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		words = append(words, cur)
	}
	return words
}

func regexpEscape(s string) string {
	special := "\\+*?()|[]{}^$."
	out := ""
	for _, r := range s {
		for _, sp := range special {
			if r == sp {
				out += `\`
				break
			}
		}
		out += string(r)
	}
	return out
}

// tokenize scans text into a Token slice terminated by a TokEOF token.
func tokenize(text string) ([]Token, error) {
	scanner, err := lexerInstance.Scanner([]byte(text))
	if err != nil {
		return nil, err
	}
	var toks []Token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			return nil, err
		}
		toks = append(toks, *(tok.(*Token)))
	}
	toks = append(toks, Token{Kind: TokEOF, Offset: len(text)})
	return toks, nil
}
