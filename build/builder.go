package build

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/exprtree"
	"github.com/npillmayer/exprtree/canon"
	"github.com/npillmayer/exprtree/expr"
	"github.com/npillmayer/exprtree/scope"
)

// Builder creates homogenous trees from expression graphs.
//
// Clients will first create a Builder, configured with options, and then call
// Builder.Build(…) once per root expression.
type Builder struct {
	ids       exprtree.IDSource // source for node IDs
	maxDepth  int               // maximum nesting depth
	anonymize bool              // label variables with aliases
	canonical bool              // sort operands of commutative operators
	anon      *scope.Anonymizer // aliases for the current build
	Error     func(error)       // user supplied handler for errors, may be nil
}

// NewBuilder creates a tree builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		ids:      &exprtree.Counter{},
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Tree builds a tree for an expression, using a new builder without a scope.
func Tree(e expr.Expr, opts ...Option) (*exprtree.Node, error) {
	return NewBuilder(opts...).Build(e, nil)
}

// Build converts an expression graph into a tree. sc holds the declarations
// of enclosing quantifiers or function parameters and may be nil.
//
// If the expression graph contains an expression of unsupported kind, Build
// returns an *UnsupportedNodeKindError and no tree.
func (b *Builder) Build(e expr.Expr, sc *scope.Scope) (*exprtree.Node, error) {
	if b.anonymize {
		b.anon = scope.NewAnonymizer()
		for _, d := range sc.Decls() {
			b.anon.Declare(d.Names...)
		}
	}
	tree, err := b.build(e, sc, 0)
	if err != nil {
		tracer().Errorf("%v", err)
		if b.Error != nil {
			b.Error(err)
		}
		return nil, err
	}
	if b.canonical {
		canon.Canonicalize(tree)
	}
	tracer().Debugf("tree = %s", tree.Canonical())
	return tree, nil
}

// BuildFunc converts the body of a function or predicate into a tree. The
// function's parameters are in scope for the body.
func (b *Builder) BuildFunc(f *expr.Func, sc *scope.Scope) (*exprtree.Node, error) {
	if f == nil {
		return b.Build(nil, sc)
	}
	return b.Build(f.Body, sc.Push(f.Name, f.Params...))
}

func (b *Builder) build(e expr.Expr, sc *scope.Scope, depth int) (*exprtree.Node, error) {
	if depth >= b.maxDepth {
		return nil, fmt.Errorf("%w (%d) at %s", ErrDepthExceeded, b.maxDepth, kindOf(e))
	}
	switch x := e.(type) {
	case *expr.Unary:
		if x.Op == expr.NoOp {
			b.ids.NextID() // the elided node still consumes an ID
			tracer().Debugf("eliding no-op around %s", kindOf(x.Sub))
			return b.build(x.Sub, sc, depth+1)
		}
		return b.operator(string(x.Op), sc, depth, x.Sub)
	case *expr.List:
		return b.operator(string(x.Op), sc, depth, x.Args...)
	case *expr.ITE:
		return b.operator("ite", sc, depth, x.Cond, x.Then)
	case *expr.Quantified:
		return b.quantified(x, sc, depth)
	case *expr.Binary:
		return b.operator(string(x.Op), sc, depth, x.Left, x.Right)
	case *expr.Var:
		return b.leaf(b.varLabel(x)), nil
	case *expr.Constant:
		return b.leaf(x.Text), nil
	case *expr.PrimSig:
		return b.leaf(x.String()), nil
	case *expr.SubsetSig:
		return b.leaf(x.String()), nil
	case *expr.Call:
		return b.call(x, sc, depth)
	case *expr.Field:
		return b.operator("field", sc, depth, x.Bound)
	}
	return nil, unsupported(e)
}

// operator creates a node for label with one child per operand. The node's ID
// is drawn before its children's IDs.
func (b *Builder) operator(label string, sc *scope.Scope, depth int, operands ...expr.Expr) (*exprtree.Node, error) {
	id := b.ids.NextID()
	tracer().Debugf("%*s%s", depth, "", label)
	children, err := b.children(sc, depth, operands)
	if err != nil {
		return nil, err
	}
	return &exprtree.Node{ID: id, Label: label, Children: children}, nil
}

func (b *Builder) children(sc *scope.Scope, depth int, operands []expr.Expr) ([]*exprtree.Node, error) {
	if len(operands) == 0 {
		return nil, nil
	}
	children := make([]*exprtree.Node, 0, len(operands))
	for _, op := range operands {
		ch, err := b.build(op, sc, depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, ch)
	}
	return children, nil
}

func (b *Builder) leaf(label string) *exprtree.Node {
	return exprtree.Leaf(b.ids, label)
}

// quantified creates a node with one child per declaration (the declaration's
// bound) followed by the body. Every declaration is in scope for the bounds of the
// declarations following it and for the body.
func (b *Builder) quantified(q *expr.Quantified, sc *scope.Scope, depth int) (*exprtree.Node, error) {
	id := b.ids.NextID()
	tracer().Debugf("%*s%s", depth, "", q.Op)
	children := make([]*exprtree.Node, 0, len(q.Decls)+1)
	for _, d := range q.Decls {
		if b.anon != nil {
			b.anon.Declare(d.Names...)
		}
		ch, err := b.build(d.Bound, sc, depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, ch)
		sc = sc.Push(string(q.Op), d)
	}
	body, err := b.build(q.Body, sc, depth+1)
	if err != nil {
		return nil, err
	}
	children = append(children, body)
	return &exprtree.Node{ID: id, Label: string(q.Op), Children: children}, nil
}

// call creates a node with the callee's body, rebuilt for this call site, followed
// by the arguments.
func (b *Builder) call(c *expr.Call, sc *scope.Scope, depth int) (*exprtree.Node, error) {
	id := b.ids.NextID()
	var body expr.Expr
	inner := sc
	if c.Fun != nil {
		tracer().Debugf("%*scall %s", depth, "", c.Fun.Name)
		body = c.Fun.Body
		inner = sc.Push(c.Fun.Name, c.Fun.Params...)
	}
	bodyTree, err := b.build(body, inner, depth+1)
	if err != nil {
		return nil, err
	}
	args, err := b.children(sc, depth, c.Args)
	if err != nil {
		return nil, err
	}
	children := append([]*exprtree.Node{bodyTree}, args...)
	return &exprtree.Node{ID: id, Label: "call", Children: children}, nil
}

func (b *Builder) varLabel(v *expr.Var) string {
	prefix := "var"
	if b.anon != nil {
		prefix = b.anon.Alias(v.Name)
	}
	return prefix + "/" + ElementType(v.Type)
}

// ElementType strips the enclosing brackets from the string form of a type, i.e.
// the first and the last character. Types shorter than two characters result in
// an empty string.
func ElementType(typ string) string {
	r := []rune(typ)
	if len(r) < 2 {
		return ""
	}
	return string(r[1 : len(r)-1])
}

func kindOf(e expr.Expr) expr.Kind {
	if e == nil {
		return "<nil>"
	}
	return e.Kind()
}
