package main

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/exprtree"
	"github.com/npillmayer/exprtree/build"
	"github.com/npillmayer/exprtree/exprlang"
	"github.com/npillmayer/exprtree/ted"
	"github.com/npillmayer/schuko/gtrace"
)

// Intp is our interpreter object
type Intp struct {
	module *exprlang.Module
	opts   []build.Option
	repl   *readline.Instance
	out    display
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	content, err := ioutil.ReadFile(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	if _, err := intp.Eval(string(content)); err != nil {
		tracer().Errorf("Error in init file %s: %v", filename, err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or converts the expressions of input, which may
// include function definitions. Errors are displayed as well as returned.
func (intp *Intp) Eval(input string) (bool, error) {
	input = strings.TrimSpace(input)
	var err error
	switch {
	case input == ":quit":
		return true, nil
	case input == ":funcs":
		intp.listFuncs()
	case strings.HasPrefix(input, ":ted"):
		err = intp.distance(strings.TrimPrefix(input, ":ted"))
	case strings.HasPrefix(input, ":"):
		err = fmt.Errorf("unknown command %s", strings.Fields(input)[0])
	default:
		err = intp.convert(input)
	}
	if err != nil {
		intp.out.Error(err)
	}
	return false, err
}

func (intp *Intp) convert(input string) error {
	roots, err := intp.module.Read(input)
	if err != nil {
		gtrace.SyntaxTracer.Errorf("%v", err)
		return err
	}
	b := build.NewBuilder(intp.opts...)
	for _, root := range roots {
		tracer().Debugf("expression %s", root)
		tree, err := b.Build(root, nil)
		if err != nil {
			return err
		}
		fp, err := exprtree.Fingerprint(tree)
		if err != nil {
			return err
		}
		intp.out.Info(tree.String())
		intp.out.Info(tree.Canonical())
		intp.out.Info("fingerprint " + fp)
		intp.out.Tree(tree)
	}
	return nil
}

// distance handles ':ted E1 E2'. The expressions are not added to the module's
// roots.
func (intp *Intp) distance(args string) error {
	roots, err := intp.module.Translate(args)
	if err != nil {
		return err
	}
	if len(roots) != 2 {
		return fmt.Errorf(":ted needs exactly two expressions, have %d", len(roots))
	}
	b := build.NewBuilder(intp.opts...)
	t1, err := b.Build(roots[0], nil)
	if err != nil {
		return err
	}
	t2, err := b.Build(roots[1], nil)
	if err != nil {
		return err
	}
	intp.out.Info(fmt.Sprintf("distance = %d", ted.Distance(t1, t2)))
	return nil
}

func (intp *Intp) listFuncs() {
	if len(intp.module.Funcs) == 0 {
		intp.out.Info("no functions defined")
		return
	}
	for _, f := range intp.module.Funcs {
		kw := "fun"
		if f.Pred {
			kw = "pred"
		}
		intp.out.Info(fmt.Sprintf("%s %s", kw, f.Name))
	}
}
