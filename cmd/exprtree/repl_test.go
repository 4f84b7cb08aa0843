package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/exprtree"
	"github.com/npillmayer/exprtree/build"
	"github.com/npillmayer/exprtree/exprlang"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type recorder struct {
	infos  []string
	errors []error
	trees  []*exprtree.Node
}

func (r *recorder) Info(msg string)          { r.infos = append(r.infos, msg) }
func (r *recorder) Error(err error)          { r.errors = append(r.errors, err) }
func (r *recorder) Tree(root *exprtree.Node) { r.trees = append(r.trees, root) }

func newIntp(t *testing.T, opts ...build.Option) (*Intp, *recorder) {
	gtrace.SyntaxTracer = gotestingadapter.New(t)
	rec := &recorder{}
	return &Intp{module: exprlang.NewModule(), opts: opts, out: rec}, rec
}

func TestEvalExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.lang")
	defer teardown()
	//
	intp, rec := newIntp(t)
	quit, err := intp.Eval(`(binary in (var p "{this/Person}") (unary NOOP (subsig this/Student)))`)
	if quit || err != nil {
		t.Fatalf("unexpected result: quit=%v, err=%v", quit, err)
	}
	if len(rec.trees) != 1 || len(rec.infos) != 3 {
		t.Fatalf("expected 1 tree and 3 lines of output, have %d and %d", len(rec.trees), len(rec.infos))
	}
	if rec.infos[0] != "(in [ var/this/Person, this/Student ])" {
		t.Errorf("unexpected readable form %s", rec.infos[0])
	}
	if rec.infos[1] != "{in{var/this/Person}{this/Student}}" {
		t.Errorf("unexpected bracket form %s", rec.infos[1])
	}
	if !strings.HasPrefix(rec.infos[2], "fingerprint ") {
		t.Errorf("expected fingerprint, have %s", rec.infos[2])
	}
}

func TestEvalKeepsFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.lang")
	defer teardown()
	//
	intp, rec := newIntp(t, build.WithAnonymizedVars())
	if _, err := intp.Eval(`(pred this/p (decl x (sig A)) (unary some (var x "{A}")))`); err != nil {
		t.Fatal(err)
	}
	if _, err := intp.Eval(`(call this/p (sig A))`); err != nil {
		t.Fatal(err)
	}
	if rec.infos[1] != "{call{some{var0/A}}{A}}" {
		t.Errorf("unexpected tree %s", rec.infos[1])
	}
	intp.Eval(":funcs")
	if last := rec.infos[len(rec.infos)-1]; last != "pred this/p" {
		t.Errorf("expected function listing, have %s", last)
	}
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.lang")
	defer teardown()
	//
	intp, rec := newIntp(t)
	if quit, _ := intp.Eval(":quit"); !quit {
		t.Errorf("expected :quit to quit")
	}
	if _, err := intp.Eval(":ted (sig A) (sig B)"); err != nil {
		t.Fatal(err)
	}
	if rec.infos[0] != "distance = 1" {
		t.Errorf("unexpected output %s", rec.infos[0])
	}
	if len(intp.module.Roots) != 0 {
		t.Errorf(":ted should not add expressions to the module")
	}
	if _, err := intp.Eval(":ted (sig A)"); err == nil {
		t.Errorf("expected error for single expression")
	}
	if _, err := intp.Eval(":nonsense"); err == nil {
		t.Errorf("expected error for unknown command")
	}
	if len(rec.errors) != 2 {
		t.Errorf("expected errors to be displayed, have %d", len(rec.errors))
	}
}

func TestEvalErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.lang")
	defer teardown()
	//
	intp, rec := newIntp(t)
	if _, err := intp.Eval(`(let x (sig A) (var x "{A}"))`); err == nil {
		t.Errorf("expected let-expression to be rejected")
	}
	if _, err := intp.Eval(`(sig A`); err == nil {
		t.Errorf("expected syntax error")
	}
	if len(rec.trees) != 0 || len(rec.errors) != 2 {
		t.Errorf("expected 2 errors and no trees, have %d and %d", len(rec.errors), len(rec.trees))
	}
}

func TestInitFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.lang")
	defer teardown()
	//
	dir, err := ioutil.TempDir("", "exprtree")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	init := filepath.Join(dir, "init.lisp")
	content := "; definitions\n(fun this/f\n  (sig A))\n(call this/f)\n"
	if err := ioutil.WriteFile(init, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	intp, rec := newIntp(t)
	intp.loadInitFile(init)
	if intp.module.Func("this/f") == nil || len(rec.trees) != 1 {
		t.Errorf("expected init file to define f and produce 1 tree")
	}
}

func TestLeveledList(t *testing.T) {
	root := &exprtree.Node{ID: 1, Label: "and", Children: []*exprtree.Node{
		{ID: 2, Label: "a"},
		{ID: 3, Label: "not", Children: []*exprtree.Node{{ID: 4, Label: "b"}}},
	}}
	ll := leveledList(root)
	levels := []int{0, 1, 1, 2}
	if len(ll) != len(levels) {
		t.Fatalf("expected %d items, have %d", len(levels), len(ll))
	}
	for i, item := range ll {
		if item.Level != levels[i] {
			t.Errorf("item %s: expected level %d, have %d", item.Text, levels[i], item.Level)
		}
	}
	if ll[3].Text != "b  #4" {
		t.Errorf("unexpected item text %q", ll[3].Text)
	}
}
