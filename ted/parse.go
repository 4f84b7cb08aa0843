package ted

import (
	"fmt"
	"sync"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/exprtree"
	"github.com/npillmayer/exprtree/scanner"
	"github.com/timtadh/lexmachine"
)

const (
	tokOpen  = '{'
	tokClose = '}'
	tokLabel = int(scanner.Ident)
)

var lexer *scanner.LMAdapter
var lexerErr error
var lexerOnce sync.Once

func bracketLexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		ids := map[string]int{"{": tokOpen, "}": tokClose}
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`[^\{\}]+`), scanner.MakeToken("LABEL", tokLabel))
		}
		lexer, lexerErr = scanner.NewLMAdapter(init, []string{"{", "}"}, nil, ids)
	})
	return lexer, lexerErr
}

// Parse reads a tree in bracket notation. Node IDs are drawn from a fresh
// counter, in pre-order.
func Parse(s string) (*exprtree.Node, error) {
	lex, err := bracketLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lex.Scanner(s)
	if err != nil {
		return nil, err
	}
	ids := &exprtree.Counter{}
	stack := arraystack.New()
	var root *exprtree.Node
	for tok := scan.NextToken(); tok.TokType() != scanner.EOF; tok = scan.NextToken() {
		if root != nil {
			return nil, fmt.Errorf("trailing input at %s: %q", tok.Span(), tok.Lexeme())
		}
		switch int(tok.TokType()) {
		case tokOpen:
			stack.Push(&exprtree.Node{ID: ids.NextID()})
		case tokLabel:
			top, ok := stack.Peek()
			if !ok {
				return nil, fmt.Errorf("label outside of braces at %s: %q", tok.Span(), tok.Lexeme())
			}
			n := top.(*exprtree.Node)
			if n.Label != "" || len(n.Children) > 0 {
				return nil, fmt.Errorf("misplaced label at %s: %q", tok.Span(), tok.Lexeme())
			}
			n.Label = tok.Lexeme()
		case tokClose:
			top, ok := stack.Pop()
			if !ok {
				return nil, fmt.Errorf("unbalanced '}' at %s", tok.Span())
			}
			n := top.(*exprtree.Node)
			if parent, ok := stack.Peek(); ok {
				p := parent.(*exprtree.Node)
				p.Children = append(p.Children, n)
			} else {
				root = n
			}
		}
	}
	if !stack.Empty() {
		return nil, fmt.Errorf("unbalanced '{' in %q", s)
	}
	if root == nil {
		return nil, fmt.Errorf("no tree in %q", s)
	}
	tracer().Debugf("parsed tree %s", root)
	return root, nil
}
