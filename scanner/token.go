package scanner

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Token categories are defined by the
// languages using a scanner, except for EOF and a few defaults.
type TokType int

// Tokens represent input tokens. They are produced by a scanner and reflect
// terminals of a language.
//
// An example would be a token for a quoted string:
//
//    TokType = String          // identifier for this kind of tokens
//    Lexeme  = "\"this/Int\""  // lexeme as it appeared in the input stream
//    Value   = "this/Int"      // unquoted value
//    Span    = 12…22           // occured from byte position 12 in the input
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// DefaultToken is an unsophisticated token type, produced by the lexmachine
// scanner.
type DefaultToken struct {
	kind   TokType
	lexeme string
	Val    interface{}
	span   Span
	Line   int // line of the first character, starting at 1
	Column int // column of the first character, starting at 1
}

var _ Token = DefaultToken{}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ TokType, lexeme string, span Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// TokType is part of interface Token.
func (t DefaultToken) TokType() TokType {
	return t.kind
}

// Value is part of interface Token.
func (t DefaultToken) Value() interface{} {
	return t.Val
}

// Lexeme is part of interface Token.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of interface Token.
func (t DefaultToken) Span() Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%q@%d:%d", t.lexeme, t.Line, t.Column)
}

// --- Spans -----------------------------------------------------------------

// Span captures the extent of a token in the input. A span denotes a start
// position and the position just behind the end, both as byte offsets.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns a span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
