package exprlang

import (
	"github.com/npillmayer/exprtree/expr"
)

// Module holds the functions and root expressions read from input.
type Module struct {
	Funcs []*expr.Func // functions and predicates, in order of definition
	Roots []expr.Expr  // top-level expressions, in order of appearance
	funcs map[string]*expr.Func
}

// NewModule creates an empty module.
func NewModule() *Module {
	return &Module{funcs: make(map[string]*expr.Func)}
}

// Parse reads expression graphs from input.
func Parse(input string) (*Module, error) {
	m := NewModule()
	if _, err := m.Read(input); err != nil {
		return nil, err
	}
	return m, nil
}

// Read adds the definitions and root expressions from input to m. It returns
// the root expressions read. Calls in input may refer to functions defined by
// previous calls to Read.
//
// If the input is invalid, an error is returned and m is left unchanged.
func (m *Module) Read(input string) ([]expr.Expr, error) {
	return m.read(input, true)
}

// Translate converts the expressions of input, with the functions of m in
// scope, without adding anything to m. Definitions in input are visible to the
// expressions following them in input only.
func (m *Module) Translate(input string) ([]expr.Expr, error) {
	return m.read(input, false)
}

func (m *Module) read(input string, commit bool) ([]expr.Expr, error) {
	forms, err := readAll(input)
	if err != nil {
		return nil, err
	}
	t := &translator{m: m, defs: make(map[string]*expr.Func)}
	var roots []expr.Expr
	for _, s := range forms {
		switch s.head() {
		case "fun", "pred":
			if err := t.define(s); err != nil {
				return nil, err
			}
		default:
			e, err := t.form(s)
			if err != nil {
				return nil, err
			}
			roots = append(roots, e)
		}
	}
	tracer().Debugf("read %d functions and %d expressions", len(t.order), len(roots))
	if !commit {
		return roots, nil
	}
	for _, f := range t.order {
		m.funcs[f.Name] = f
		m.Funcs = append(m.Funcs, f)
	}
	m.Roots = append(m.Roots, roots...)
	return roots, nil
}

// Func returns the function or predicate with the given name, or nil.
func (m *Module) Func(name string) *expr.Func {
	if m == nil {
		return nil
	}
	return m.funcs[name]
}

// --- Translation of forms --------------------------------------------------

// translator converts s-expressions into expressions. Definitions are collected
// in defs and committed to the module only if the whole input is valid.
type translator struct {
	m     *Module
	defs  map[string]*expr.Func
	order []*expr.Func
}

func (t *translator) lookup(name string) *expr.Func {
	if f, ok := t.defs[name]; ok {
		return f
	}
	return t.m.Func(name)
}

// define handles (fun NAME (decl …)… BODY) and (pred NAME (decl …)… BODY).
func (t *translator) define(s *sexpr) error {
	if len(s.list) < 3 {
		return syntaxError(s.span, "%s needs a name and a body: %s", s.head(), s)
	}
	name, err := atom(s.list[1], "function name")
	if err != nil {
		return err
	}
	if t.lookup(name) != nil {
		return syntaxError(s.list[1].span, "function %s already defined", name)
	}
	// registered before translating the body, so the body may call f
	f := &expr.Func{Name: name, Pred: s.head() == "pred"}
	t.defs[name] = f
	t.order = append(t.order, f)
	n := len(s.list)
	if f.Params, err = t.decls(s.list[2 : n-1]); err != nil {
		return err
	}
	f.Body, err = t.form(s.list[n-1])
	return err
}

func (t *translator) form(s *sexpr) (expr.Expr, error) {
	if !s.isList {
		return nil, syntaxError(s.span, "expected a form, have atom %s", s)
	}
	switch head := s.head(); head {
	case "unary":
		if err := arity(s, 3); err != nil {
			return nil, err
		}
		op, sub, err := t.opAndOperand(s)
		return &expr.Unary{Op: expr.UnaryOp(op), Sub: sub}, err
	case "list":
		if len(s.list) < 2 {
			return nil, syntaxError(s.span, "list needs an operator: %s", s)
		}
		op, err := atom(s.list[1], "operator")
		if err != nil {
			return nil, err
		}
		args, err := t.forms(s.list[2:])
		return &expr.List{Op: expr.ListOp(op), Args: args}, err
	case "ite":
		if err := arity(s, 4); err != nil {
			return nil, err
		}
		ops, err := t.forms(s.list[1:])
		if err != nil {
			return nil, err
		}
		return &expr.ITE{Cond: ops[0], Then: ops[1], Else: ops[2]}, nil
	case "qt":
		return t.quantified(s)
	case "binary":
		if err := arity(s, 4); err != nil {
			return nil, err
		}
		op, err := atom(s.list[1], "operator")
		if err != nil {
			return nil, err
		}
		ops, err := t.forms(s.list[2:])
		if err != nil {
			return nil, err
		}
		return &expr.Binary{Op: expr.BinaryOp(op), Left: ops[0], Right: ops[1]}, nil
	case "var":
		a, err := atoms(s, "variable name", "type")
		if err != nil {
			return nil, err
		}
		return &expr.Var{Name: a[0], Type: a[1]}, nil
	case "const":
		a, err := atoms(s, "literal")
		if err != nil {
			return nil, err
		}
		return &expr.Constant{Text: a[0]}, nil
	case "sig":
		a, err := atoms(s, "signature name")
		if err != nil {
			return nil, err
		}
		return &expr.PrimSig{Name: a[0]}, nil
	case "subsig":
		a, err := atoms(s, "signature name")
		if err != nil {
			return nil, err
		}
		return &expr.SubsetSig{Name: a[0]}, nil
	case "call":
		return t.call(s)
	case "field":
		if err := arity(s, 4); err != nil {
			return nil, err
		}
		name, err := atom(s.list[1], "field name")
		if err != nil {
			return nil, err
		}
		sig, err := atom(s.list[2], "signature name")
		if err != nil {
			return nil, err
		}
		bound, err := t.form(s.list[3])
		return &expr.Field{Sig: sig, Name: name, Bound: bound}, err
	case "let":
		if err := arity(s, 4); err != nil {
			return nil, err
		}
		name, err := atom(s.list[1], "variable name")
		if err != nil {
			return nil, err
		}
		ops, err := t.forms(s.list[2:])
		if err != nil {
			return nil, err
		}
		return &expr.Let{Var: name, Value: ops[0], Body: ops[1]}, nil
	case "other":
		a, err := atoms(s, "kind tag", "text")
		if err != nil {
			return nil, err
		}
		return &expr.Other{Tag: a[0], Text: a[1]}, nil
	case "fun", "pred":
		return nil, syntaxError(s.span, "%s may only be defined at the top level", head)
	case "":
		return nil, syntaxError(s.span, "expected a form, have %s", s)
	default:
		return nil, syntaxError(s.span, "unknown form %q", head)
	}
}

func (t *translator) forms(ss []*sexpr) ([]expr.Expr, error) {
	exprs := make([]expr.Expr, 0, len(ss))
	for _, s := range ss {
		e, err := t.form(s)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func (t *translator) opAndOperand(s *sexpr) (string, expr.Expr, error) {
	op, err := atom(s.list[1], "operator")
	if err != nil {
		return "", nil, err
	}
	sub, err := t.form(s.list[2])
	return op, sub, err
}

// quantified handles (qt OP (decl …)… BODY).
func (t *translator) quantified(s *sexpr) (expr.Expr, error) {
	n := len(s.list)
	if n < 4 {
		return nil, syntaxError(s.span, "qt needs an operator, declarations and a body: %s", s)
	}
	op, err := atom(s.list[1], "quantifier")
	if err != nil {
		return nil, err
	}
	decls, err := t.decls(s.list[2 : n-1])
	if err != nil {
		return nil, err
	}
	body, err := t.form(s.list[n-1])
	if err != nil {
		return nil, err
	}
	return &expr.Quantified{Op: expr.Quantifier(op), Decls: decls, Body: body}, nil
}

// decls handles a sequence of (decl [disj] (NAME…) E). A single name may be
// given without parentheses.
func (t *translator) decls(ss []*sexpr) ([]expr.Decl, error) {
	decls := make([]expr.Decl, 0, len(ss))
	for _, s := range ss {
		if s.head() != "decl" {
			return nil, syntaxError(s.span, "expected (decl …), have %s", s)
		}
		rest := s.list[1:]
		d := expr.Decl{}
		if len(rest) > 0 && !rest[0].isList && !rest[0].quoted && rest[0].atom == "disj" {
			d.Disjoint = true
			rest = rest[1:]
		}
		if len(rest) != 2 {
			return nil, syntaxError(s.span, "declaration needs names and a bound: %s", s)
		}
		if rest[0].isList {
			for _, x := range rest[0].list {
				name, err := atom(x, "variable name")
				if err != nil {
					return nil, err
				}
				d.Names = append(d.Names, name)
			}
		} else {
			d.Names = []string{rest[0].atom}
		}
		if len(d.Names) == 0 {
			return nil, syntaxError(s.span, "declaration without names: %s", s)
		}
		bound, err := t.form(rest[1])
		if err != nil {
			return nil, err
		}
		d.Bound = bound
		decls = append(decls, d)
	}
	return decls, nil
}

// call handles (call NAME ARG…).
func (t *translator) call(s *sexpr) (expr.Expr, error) {
	if len(s.list) < 2 {
		return nil, syntaxError(s.span, "call needs a function name: %s", s)
	}
	name, err := atom(s.list[1], "function name")
	if err != nil {
		return nil, err
	}
	f := t.lookup(name)
	if f == nil {
		return nil, syntaxError(s.list[1].span, "call of undefined function %s", name)
	}
	args, err := t.forms(s.list[2:])
	if err != nil {
		return nil, err
	}
	return &expr.Call{Fun: f, Args: args}, nil
}

// --- Helpers ---------------------------------------------------------------

func arity(s *sexpr, n int) error {
	if len(s.list) != n {
		return syntaxError(s.span, "%s expects %d operands, has %d: %s",
			s.head(), n-1, len(s.list)-1, s)
	}
	return nil
}

func atom(s *sexpr, what string) (string, error) {
	if s.isList {
		return "", syntaxError(s.span, "expected %s, have %s", what, s)
	}
	return s.atom, nil
}

// atoms checks that s is a form with exactly one atom per name in what,
// and returns them.
func atoms(s *sexpr, what ...string) ([]string, error) {
	if err := arity(s, len(what)+1); err != nil {
		return nil, err
	}
	a := make([]string, len(what))
	for i, w := range what {
		x, err := atom(s.list[i+1], w)
		if err != nil {
			return nil, err
		}
		a[i] = x
	}
	return a, nil
}
