/*
Package scope implements scopes of variable declarations, as encountered while
descending into quantified expressions, and a symbol table for anonymizing
variable names.

Scope Tree

Every quantified expression opens a new scope, holding the expression's
declarations in order. Scopes link back to their enclosing scope, forming a
tree. Scopes are immutable once pushed; pushing a new scope never alters the
parent, therefore scopes may be shared between sibling sub-trees.

Anonymization

Structural comparison of formulas should not depend on the names users gave
to their variables. An Anonymizer hands out aliases var0, var1, … in the order
variable names are first seen.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scope

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/exprtree/expr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exprtree.build'.
func tracer() tracing.Trace {
	return tracing.Select("exprtree.build")
}

// === Scopes ================================================================

// Scope is a named scope, which contains variable declarations. Scopes link back
// to a parent scope, forming a tree. A nil *Scope is a valid, empty scope.
type Scope struct {
	Name   string
	Parent *Scope
	decls  *arraylist.List // of expr.Decl
}

// NewScope creates a new scope with a list of declarations.
func NewScope(nm string, parent *Scope, decls ...expr.Decl) *Scope {
	sc := &Scope{
		Name:   nm,
		Parent: parent,
		decls:  arraylist.New(),
	}
	for _, d := range decls {
		sc.decls.Add(d)
	}
	return sc
}

// Push creates a new scope nested in s, holding decls.
func (s *Scope) Push(nm string, decls ...expr.Decl) *Scope {
	sc := NewScope(nm, s, decls...)
	tracer().P("scope", nm).Debugf("pushing new scope with %d declarations", len(decls))
	return sc
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	if s == nil {
		return "<scope ->"
	}
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Local returns the declarations of s, excluding those of enclosing scopes.
func (s *Scope) Local() []expr.Decl {
	if s == nil {
		return nil
	}
	decls := make([]expr.Decl, 0, s.decls.Size())
	it := s.decls.Iterator()
	for it.Next() {
		decls = append(decls, it.Value().(expr.Decl))
	}
	return decls
}

// Decls returns all declarations visible in s, outermost first.
func (s *Scope) Decls() []expr.Decl {
	if s == nil {
		return nil
	}
	return append(s.Parent.Decls(), s.Local()...)
}

// Depth returns the number of scopes on the path from s to the outermost scope.
func (s *Scope) Depth() int {
	d := 0
	for ; s != nil; s = s.Parent {
		d++
	}
	return d
}

// Resolve finds the innermost declaration binding a variable name. It returns the
// declaration and the scope it was found in, or nil if the name is free.
func (s *Scope) Resolve(varname string) (*expr.Decl, *Scope) {
	for ; s != nil; s = s.Parent {
		for i := s.decls.Size() - 1; i >= 0; i-- {
			v, _ := s.decls.Get(i)
			d := v.(expr.Decl)
			for _, n := range d.Names {
				if n == varname {
					return &d, s
				}
			}
		}
	}
	return nil, nil
}

// Names lists the variable names declared locally in s, separated by commas.
func (s *Scope) Names() string {
	var names []string
	for _, d := range s.Local() {
		names = append(names, d.Names...)
	}
	return strings.Join(names, ",")
}
