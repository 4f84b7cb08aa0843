package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"fmt"
	"strings"
)

// Kind is a tag for the structural kind of an expression node.
type Kind string

// Kinds of expression nodes.
const (
	KindUnary     Kind = "ExprUnary"
	KindList      Kind = "ExprList"
	KindITE       Kind = "ExprITE"
	KindQt        Kind = "ExprQt"
	KindBinary    Kind = "ExprBinary"
	KindVar       Kind = "ExprVar"
	KindConstant  Kind = "ExprConstant"
	KindPrimSig   Kind = "PrimSig"
	KindSubsetSig Kind = "SubsetSig"
	KindCall      Kind = "ExprCall"
	KindField     Kind = "Field"
	KindLet       Kind = "ExprLet"
)

// Expr is a node of an expression graph.
type Expr interface {
	Kind() Kind
	String() string
	isExpr()
}

// --- Operators and declarations --------------------------------------------

// Unary is an expression with a unary operator, e.g. 'no x' or '~r'.
type Unary struct {
	Op  UnaryOp
	Sub Expr
}

// List is an expression with an operator over a list of arguments, e.g. a conjunction
// of facts.
type List struct {
	Op   ListOp
	Args []Expr
}

// ITE is a conditional expression 'Cond => Then else Else'.
type ITE struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Decl declares one or more variables, bound by the same expression, as in
//
//     disj x, y: Person
//
type Decl struct {
	Names    []string
	Disjoint bool
	Bound    Expr
}

// Quantified is a quantified expression, e.g. 'all x: A, y: B | body'.
type Quantified struct {
	Op    Quantifier
	Decls []Decl
	Body  Expr
}

// Binary is an expression with a binary operator.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Var is a reference to a variable. Type is the string form of the variable's
// resolved type, including brackets, e.g. "{this/Person}".
type Var struct {
	Name string
	Type string
}

// Constant is a constant, e.g. a number or one of 'none', 'univ', 'iden'.
type Constant struct {
	Text string
}

// PrimSig is a top-level or extending signature declaration.
type PrimSig struct {
	Name string
}

// SubsetSig is a subset signature declaration ('sig A in B').
type SubsetSig struct {
	Name string
}

// Func is a function or predicate declaration.
type Func struct {
	Name   string
	Pred   bool
	Params []Decl
	Body   Expr
}

// Call is an application of a function or predicate.
type Call struct {
	Fun  *Func
	Args []Expr
}

// Field is a field declaration of a signature. Bound is the field's declaring
// expression.
type Field struct {
	Sig   string
	Name  string
	Bound Expr
}

// Let binds a variable to a value within a body expression.
type Let struct {
	Var   string
	Value Expr
	Body  Expr
}

// Other carries an expression node of a kind unknown to this package.
type Other struct {
	Tag  string
	Text string
}

// --- Kinds -----------------------------------------------------------------

// Kind is part of interface Expr.
func (e *Unary) Kind() Kind { return KindUnary }

// Kind is part of interface Expr.
func (e *List) Kind() Kind { return KindList }

// Kind is part of interface Expr.
func (e *ITE) Kind() Kind { return KindITE }

// Kind is part of interface Expr.
func (e *Quantified) Kind() Kind { return KindQt }

// Kind is part of interface Expr.
func (e *Binary) Kind() Kind { return KindBinary }

// Kind is part of interface Expr.
func (e *Var) Kind() Kind { return KindVar }

// Kind is part of interface Expr.
func (e *Constant) Kind() Kind { return KindConstant }

// Kind is part of interface Expr.
func (e *PrimSig) Kind() Kind { return KindPrimSig }

// Kind is part of interface Expr.
func (e *SubsetSig) Kind() Kind { return KindSubsetSig }

// Kind is part of interface Expr.
func (e *Call) Kind() Kind { return KindCall }

// Kind is part of interface Expr.
func (e *Field) Kind() Kind { return KindField }

// Kind is part of interface Expr.
func (e *Let) Kind() Kind { return KindLet }

// Kind is part of interface Expr. It returns the foreign kind tag.
func (e *Other) Kind() Kind { return Kind(e.Tag) }

func (*Unary) isExpr() {}
func (*List) isExpr() {}
func (*ITE) isExpr() {}
func (*Quantified) isExpr() {}
func (*Binary) isExpr() {}
func (*Var) isExpr() {}
func (*Constant) isExpr() {}
func (*PrimSig) isExpr() {}
func (*SubsetSig) isExpr() {}
func (*Call) isExpr() {}
func (*Field) isExpr() {}
func (*Let) isExpr() {}
func (*Other) isExpr() {}

// --- String forms ----------------------------------------------------------

func (e *Unary) String() string {
	if e.Op == NoOp {
		return str(e.Sub)
	}
	if e.Op.IsSymbol() {
		return string(e.Op) + str(e.Sub)
	}
	return e.Op.Keyword() + " " + str(e.Sub)
}

func (e *List) String() string {
	return fmt.Sprintf("%s[%s]", e.Op, join(e.Args))
}

func (e *ITE) String() string {
	return fmt.Sprintf("(%s => %s else %s)", str(e.Cond), str(e.Then), str(e.Else))
}

func (d Decl) String() string {
	var b bytes.Buffer
	if d.Disjoint {
		b.WriteString("disj ")
	}
	b.WriteString(strings.Join(d.Names, ", "))
	b.WriteString(": ")
	b.WriteString(str(d.Bound))
	return b.String()
}

func (e *Quantified) String() string {
	decls := make([]string, len(e.Decls))
	for i, d := range e.Decls {
		decls[i] = d.String()
	}
	return fmt.Sprintf("(%s %s | %s)", e.Op, strings.Join(decls, ", "), str(e.Body))
}

func (e *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", str(e.Left), e.Op, str(e.Right))
}

func (e *Var) String() string { return e.Name }

func (e *Constant) String() string { return e.Text }

func (e *PrimSig) String() string { return e.Name }

func (e *SubsetSig) String() string { return e.Name }

func (f *Func) String() string {
	if f == nil {
		return "<nil>"
	}
	return f.Name
}

func (e *Call) String() string {
	return fmt.Sprintf("%s[%s]", e.Fun, join(e.Args))
}

func (e *Field) String() string {
	if e.Sig == "" {
		return e.Name
	}
	return fmt.Sprintf("field (%s <: %s)", e.Sig, e.Name)
}

func (e *Let) String() string {
	return fmt.Sprintf("(let %s = %s | %s)", e.Var, str(e.Value), str(e.Body))
}

func (e *Other) String() string { return e.Text }

func str(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}

func join(exprs []Expr) string {
	s := make([]string, len(exprs))
	for i, e := range exprs {
		s[i] = str(e)
	}
	return strings.Join(s, ", ")
}
