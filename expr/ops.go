package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"unicode"
)

// UnaryOp is an operator of a unary expression. Its string value is the
// operator's name as reported by the source tool.
type UnaryOp string

// Unary operators. NoOp is an identity wrapper introduced during type resolution.
const (
	NoOp         UnaryOp = "NOOP"
	Not          UnaryOp = "!"
	No           UnaryOp = "no"
	Some         UnaryOp = "some"
	Lone         UnaryOp = "lone"
	One          UnaryOp = "one"
	SomeOf       UnaryOp = "some of"
	LoneOf       UnaryOp = "lone of"
	OneOf        UnaryOp = "one of"
	SetOf        UnaryOp = "set of"
	Exactly      UnaryOp = "exactly of"
	Transpose    UnaryOp = "~"
	Closure      UnaryOp = "^"
	RClosure     UnaryOp = "*"
	Cardinality  UnaryOp = "#"
	CastToInt    UnaryOp = "Int->int"
	CastToSigInt UnaryOp = "int->Int"
	Always       UnaryOp = "always"
	Eventually   UnaryOp = "eventually"
	After        UnaryOp = "after"
	Before       UnaryOp = "before"
	Historically UnaryOp = "historically"
	Once         UnaryOp = "once"
	Prime        UnaryOp = "'"
)

// IsSymbol returns true if the operator is written as a symbol rather than a
// keyword.
func (op UnaryOp) IsSymbol() bool {
	for _, r := range string(op) {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Keyword returns the keyword as written in a formula, i.e. without the ' of'
// suffix of declaration multiplicities.
func (op UnaryOp) Keyword() string {
	return strings.TrimSuffix(string(op), " of")
}

// ListOp is an operator of an expression list.
type ListOp string

// List operators.
const (
	And        ListOp = "AND"
	Or         ListOp = "OR"
	Disjoint   ListOp = "DISJOINT"
	TotalOrder ListOp = "TOTALORDER"
)

// BinaryOp is an operator of a binary expression.
type BinaryOp string

// Binary operators.
const (
	Arrow     BinaryOp = "->"
	Join      BinaryOp = "."
	Domain    BinaryOp = "<:"
	Range     BinaryOp = ":>"
	Intersect BinaryOp = "&"
	Plus      BinaryOp = "+"
	Minus     BinaryOp = "-"
	Override  BinaryOp = "++"
	Equals    BinaryOp = "="
	NotEquals BinaryOp = "!="
	In        BinaryOp = "in"
	NotIn     BinaryOp = "!in"
	BoolAnd   BinaryOp = "&&"
	BoolOr    BinaryOp = "||"
	Implies   BinaryOp = "=>"
	Iff       BinaryOp = "<=>"
	Less      BinaryOp = "<"
	LessEq    BinaryOp = "<="
	Greater   BinaryOp = ">"
	GreaterEq BinaryOp = ">="
	Until     BinaryOp = "until"
	Releases  BinaryOp = "releases"
	Since     BinaryOp = "since"
	Triggered BinaryOp = "triggered"
	Sequence  BinaryOp = ";"
)

// Quantifier is the operator of a quantified expression.
type Quantifier string

// Quantifiers.
const (
	All           Quantifier = "all"
	NoQt          Quantifier = "no"
	LoneQt        Quantifier = "lone"
	OneQt         Quantifier = "one"
	SomeQt        Quantifier = "some"
	Sum           Quantifier = "sum"
	Comprehension Quantifier = "comprehension"
)
