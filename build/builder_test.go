package build

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/exprtree"
	"github.com/npillmayer/exprtree/expr"
	"github.com/npillmayer/exprtree/scope"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var (
	person  = &expr.PrimSig{Name: "this/Person"}
	student = &expr.SubsetSig{Name: "this/Student"}
	tutor   = &expr.SubsetSig{Name: "this/Tutor"}
)

func noop(e expr.Expr) expr.Expr {
	return &expr.Unary{Op: expr.NoOp, Sub: e}
}

func pvar(name string) *expr.Var {
	return &expr.Var{Name: name, Type: "{this/Person}"}
}

// all p: Person | p in Student
func allInStudent() expr.Expr {
	return &expr.Quantified{
		Op: expr.All,
		Decls: []expr.Decl{
			{Names: []string{"p"}, Bound: &expr.Unary{Op: expr.OneOf, Sub: noop(person)}},
		},
		Body: &expr.Binary{Op: expr.In, Left: noop(pvar("p")), Right: noop(student)},
	}
}

func TestLabelsAndArity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.build")
	defer teardown()
	//
	a, b, c := &expr.Constant{Text: "a"}, &expr.Constant{Text: "b"}, &expr.Constant{Text: "c"}
	isLink := &expr.Func{
		Name:   "this/isLink",
		Pred:   true,
		Params: []expr.Decl{{Names: []string{"f"}, Bound: person}},
		Body:   &expr.Unary{Op: expr.Some, Sub: person},
	}
	cases := []struct {
		e     expr.Expr
		label string
		arity int
	}{
		{&expr.Unary{Op: expr.No, Sub: a}, "no", 1},
		{&expr.List{Op: expr.And, Args: []expr.Expr{a, b, c}}, "AND", 3},
		{&expr.ITE{Cond: a, Then: b, Else: c}, "ite", 2},
		{&expr.Quantified{Op: expr.SomeQt, Decls: []expr.Decl{
			{Names: []string{"x", "y"}, Bound: a}, {Names: []string{"z"}, Bound: b},
		}, Body: c}, "some", 3},
		{&expr.Binary{Op: expr.Implies, Left: a, Right: b}, "=>", 2},
		{pvar("p"), "var/this/Person", 0},
		{&expr.Constant{Text: "univ"}, "univ", 0},
		{person, "this/Person", 0},
		{student, "this/Student", 0},
		{&expr.Call{Fun: isLink, Args: []expr.Expr{a, b}}, "call", 3},
		{&expr.Field{Sig: "this/Person", Name: "Tutors", Bound: person}, "field", 1},
	}
	for _, x := range cases {
		tree, err := Tree(x.e)
		if err != nil {
			t.Errorf("unexpected error for %s: %v", x.e.Kind(), err)
			continue
		}
		if tree.Label != x.label || len(tree.Children) != x.arity {
			t.Errorf("%s: expected %q with %d children, have %q with %d",
				x.e.Kind(), x.label, x.arity, tree.Label, len(tree.Children))
		}
	}
}

func TestChildOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.build")
	defer teardown()
	//
	a, b, c := &expr.Constant{Text: "a"}, &expr.Constant{Text: "b"}, &expr.Constant{Text: "c"}
	ite, _ := Tree(&expr.ITE{Cond: a, Then: b, Else: c})
	if ite.Canonical() != "{ite{a}{b}}" {
		t.Errorf("expected condition and then-branch, have %s", ite.Canonical())
	}
	qt, _ := Tree(&expr.Quantified{Op: expr.All, Decls: []expr.Decl{
		{Names: []string{"x"}, Bound: a}, {Names: []string{"y"}, Bound: b},
	}, Body: c})
	if qt.Canonical() != "{all{a}{b}{c}}" {
		t.Errorf("expected declaration bounds before body, have %s", qt.Canonical())
	}
	list, _ := Tree(&expr.List{Op: expr.Or, Args: []expr.Expr{c, a, b}})
	if list.Canonical() != "{OR{c}{a}{b}}" {
		t.Errorf("expected argument order to be preserved, have %s", list.Canonical())
	}
	bin, _ := Tree(&expr.Binary{Op: expr.Minus, Left: b, Right: a})
	if bin.String() != "(- [ b, a ])" {
		t.Errorf("expected left before right, have %s", bin.String())
	}
}

func TestQuantifiedFormula(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.build")
	defer teardown()
	//
	tree, err := Tree(allInStudent())
	if err != nil {
		t.Fatal(err)
	}
	expected := "{all{one of{this/Person}}{in{var/this/Person}{this/Student}}}"
	if tree.Canonical() != expected {
		t.Errorf("expected %s, have %s", expected, tree.Canonical())
	}
	expected = "(all [ (one of [ this/Person ]), (in [ var/this/Person, this/Student ]) ])"
	if tree.String() != expected {
		t.Errorf("expected %s, have %s", expected, tree.String())
	}
	leaf := func(l string) *exprtree.Node { return &exprtree.Node{Label: l} }
	want := &exprtree.Node{Label: "all", Children: []*exprtree.Node{
		{Label: "one of", Children: []*exprtree.Node{leaf("this/Person")}},
		{Label: "in", Children: []*exprtree.Node{leaf("var/this/Person"), leaf("this/Student")}},
	}}
	if diff := cmp.Diff(want, tree, cmpopts.IgnoreFields(exprtree.Node{}, "ID"), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("tree mismatch (-want +have):\n%s", diff)
	}
}

func TestNoOpElision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.build")
	defer teardown()
	//
	plain, err := Tree(person)
	if err != nil {
		t.Fatal(err)
	}
	wrapped, err := Tree(noop(noop(person)))
	if err != nil {
		t.Fatal(err)
	}
	if !plain.Equal(wrapped) || plain.Canonical() != wrapped.Canonical() {
		t.Errorf("no-op wrapper should not be visible, have %s", wrapped.Canonical())
	}
	if wrapped.ID != 3 {
		t.Errorf("expected elided no-ops to consume IDs 1 and 2, leaf has ID %d", wrapped.ID)
	}
}

func TestIDsIncreasing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.build")
	defer teardown()
	//
	tree, err := Tree(allInStudent())
	if err != nil {
		t.Fatal(err)
	}
	// pre-order, with IDs 3, 6 and 8 consumed by no-ops
	expected := []exprtree.NodeID{1, 2, 4, 5, 7, 9}
	var ids []exprtree.NodeID
	tree.Walk(func(n *exprtree.Node, level int) bool {
		ids = append(ids, n.ID)
		return true
	})
	if len(ids) != len(expected) {
		t.Fatalf("expected %d nodes, have %d", len(expected), len(ids))
	}
	for i, id := range ids {
		if id != expected[i] {
			t.Errorf("node #%d: expected ID %d, have %d", i, expected[i], id)
		}
	}
}

func TestIDsNotReusedAcrossBuilds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.build")
	defer teardown()
	//
	b := NewBuilder()
	t1, _ := b.Build(allInStudent(), nil)
	t2, _ := b.Build(allInStudent(), nil)
	if t2.ID <= t1.ID || !t1.Equal(t2) {
		t.Errorf("second build should have fresh IDs and equal shape")
	}
	g1, _ := Tree(person, WithIDSource(exprtree.GlobalIDs))
	g2, _ := Tree(person, WithIDSource(exprtree.GlobalIDs))
	if g2.ID <= g1.ID {
		t.Errorf("global IDs should increase across builders, have %d after %d", g2.ID, g1.ID)
	}
}

func TestUnsupportedKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.build")
	defer teardown()
	//
	let := &expr.Let{Var: "x", Value: person, Body: pvar("x")}
	other := &expr.Other{Tag: "ExprChoice", Text: "choice"}
	for _, e := range []expr.Expr{let, other, nil} {
		var reported error
		b := NewBuilder()
		b.Error = func(err error) { reported = err }
		tree, err := b.Build(e, nil)
		if tree != nil {
			t.Errorf("expected no tree for unsupported expression")
		}
		var unsupp *UnsupportedNodeKindError
		if !errors.As(err, &unsupp) {
			t.Fatalf("expected UnsupportedNodeKindError, have %v", err)
		}
		if reported != err {
			t.Errorf("expected error to be reported to handler")
		}
		t.Logf("error = %v", err)
	}
	_, err := Tree(other)
	var unsupp *UnsupportedNodeKindError
	if errors.As(err, &unsupp) && (unsupp.Kind != "ExprChoice" || unsupp.Node != "choice") {
		t.Errorf("expected error to carry kind tag and string form, have %v", unsupp)
	}
}

func TestNestedUnsupportedYieldsNoTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.build")
	defer teardown()
	//
	e := &expr.List{Op: expr.And, Args: []expr.Expr{
		person,
		&expr.Binary{Op: expr.In, Left: pvar("p"), Right: &expr.Let{Var: "x", Value: person, Body: person}},
	}}
	tree, err := Tree(e)
	if tree != nil || err == nil {
		t.Errorf("expected failure without partial tree, have %v", tree)
	}
}

func TestCallInlinesBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.build")
	defer teardown()
	//
	f := &expr.Func{
		Name:   "this/inv",
		Params: []expr.Decl{{Names: []string{"p"}, Bound: person}},
		Body:   &expr.Binary{Op: expr.In, Left: pvar("p"), Right: tutor},
	}
	call1 := &expr.Call{Fun: f, Args: []expr.Expr{pvar("q")}}
	call2 := &expr.Call{Fun: f, Args: []expr.Expr{pvar("r")}}
	tree, err := Tree(&expr.List{Op: expr.And, Args: []expr.Expr{call1, call2}})
	if err != nil {
		t.Fatal(err)
	}
	expected := "{AND{call{in{var/this/Person}{this/Tutor}}{var/this/Person}}" +
		"{call{in{var/this/Person}{this/Tutor}}{var/this/Person}}}"
	if tree.Canonical() != expected {
		t.Errorf("expected %s, have %s", expected, tree.Canonical())
	}
	b1, b2 := tree.Children[0].Children[0], tree.Children[1].Children[0]
	if b1 == b2 || b1.ID == b2.ID {
		t.Errorf("callee body should be rebuilt for every call site")
	}
}

func TestRecursiveCallHitsDepthLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.build")
	defer teardown()
	//
	f := &expr.Func{Name: "this/loop"}
	f.Body = &expr.Unary{Op: expr.Not, Sub: &expr.Call{Fun: f}}
	tree, err := Tree(&expr.Call{Fun: f}, WithMaxDepth(50))
	if tree != nil || !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("expected depth error, have %v", err)
	}
}

func TestBuildFunc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.build")
	defer teardown()
	//
	f := &expr.Func{
		Name:   "this/inv",
		Params: []expr.Decl{{Names: []string{"p"}, Bound: person}},
		Body:   &expr.Unary{Op: expr.Some, Sub: pvar("p")},
	}
	tree, err := NewBuilder(WithAnonymizedVars()).BuildFunc(f, nil)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Canonical() != "{some{var0/this/Person}}" {
		t.Errorf("expected parameter p to be aliased var0, have %s", tree.Canonical())
	}
}

func TestAnonymizedVars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.build")
	defer teardown()
	//
	// all disj a, b: Person | a != b
	e := &expr.Quantified{
		Op: expr.All,
		Decls: []expr.Decl{
			{Names: []string{"a", "b"}, Disjoint: true, Bound: &expr.Unary{Op: expr.OneOf, Sub: person}},
		},
		Body: &expr.Binary{Op: expr.NotEquals, Left: pvar("b"), Right: pvar("a")},
	}
	tree, err := Tree(e, WithAnonymizedVars())
	if err != nil {
		t.Fatal(err)
	}
	expected := "{all{one of{this/Person}}{!={var1/this/Person}{var0/this/Person}}}"
	if tree.Canonical() != expected {
		t.Errorf("expected %s, have %s", expected, tree.Canonical())
	}
	sc := scope.NewScope("outer", nil, expr.Decl{Names: []string{"z"}, Bound: person})
	tree, _ = NewBuilder(WithAnonymizedVars()).Build(pvar("z"), sc)
	if tree.Label != "var0/this/Person" {
		t.Errorf("expected enclosing declarations to be aliased first, have %s", tree.Label)
	}
}

func TestCanonicalOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.build")
	defer teardown()
	//
	a := &expr.Binary{Op: expr.BoolOr, Left: noop(tutor), Right: noop(student)}
	b := &expr.Binary{Op: expr.BoolOr, Left: noop(student), Right: noop(tutor)}
	ta, _ := Tree(a, WithCanonicalOrder())
	tb, _ := Tree(b, WithCanonicalOrder())
	if ta.Canonical() != tb.Canonical() {
		t.Errorf("expected equal trees, have %s and %s", ta.Canonical(), tb.Canonical())
	}
	plain, _ := Tree(a)
	if plain.Canonical() == tb.Canonical() {
		t.Errorf("without option, operand order should be kept")
	}
}

func TestElementType(t *testing.T) {
	for typ, elem := range map[string]string{
		"{this/Person}":             "this/Person",
		"[Person]":                  "Person",
		"{this/Person->this/Class}": "this/Person->this/Class",
		"{}":                        "",
		"x":                         "",
		"":                          "",
	} {
		if ElementType(typ) != elem {
			t.Errorf("element type of %q should be %q, is %q", typ, elem, ElementType(typ))
		}
	}
}
