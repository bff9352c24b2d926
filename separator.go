package awk

import (
	"fmt"

	"github.com/SimoneBronzini/awk/internal/tokenizer"
)

type separatorKind uint8

const (
	sepWhitespace separatorKind = iota
	sepLiteral
	sepPattern
)

// Separator selects how a line is cut into fields.
// The zero value splits on runs of whitespace, equivalent to Pattern(`\s+`).
//
// All separators preserve empty fields at the boundaries: a line starting
// with a separator yields a leading empty field, and an empty line yields a
// single empty field. Use filters to discard empties when they are noise.
type Separator struct {
	kind separatorKind
	expr string
}

// Predefined separators.
var (
	// Whitespace splits on runs of whitespace. This is the default.
	Whitespace = Separator{}

	// Tab splits on every tab character.
	Tab = Literal("\t")
)

// Literal returns a Separator that splits on every occurrence of sep.
// An empty sep splits after every UTF-8 rune, so an empty line yields
// no fields rather than one empty field.
func Literal(sep string) Separator {
	return Separator{kind: sepLiteral, expr: sep}
}

// Pattern returns a Separator that splits on every match of the regular
// expression expr. The expression compiles when a reader opens; an invalid
// expression surfaces there as a ConfigError.
func Pattern(expr string) Separator {
	return Separator{kind: sepPattern, expr: expr}
}

// String returns a readable description of the separator.
func (s Separator) String() string {
	switch s.kind {
	case sepLiteral:
		return fmt.Sprintf("Literal(%q)", s.expr)
	case sepPattern:
		return fmt.Sprintf("Pattern(%q)", s.expr)
	default:
		return "Whitespace"
	}
}

// compile resolves the separator to a tokenizer.
func (s Separator) compile(posix bool) (*tokenizer.Tokenizer, error) {
	switch s.kind {
	case sepLiteral:
		return tokenizer.Literal(s.expr), nil
	case sepPattern:
		tok, err := tokenizer.Pattern(s.expr, tokenizer.RegexConfig{POSIX: posix})
		if err != nil {
			return nil, &ConfigError{
				Reason: fmt.Sprintf("separator pattern %q does not compile", s.expr),
				Err:    err,
			}
		}
		return tok, nil
	default:
		return tokenizer.Whitespace(), nil
	}
}
