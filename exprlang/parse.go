package exprlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/exprtree/scanner"
)

// --- S-expressions ---------------------------------------------------------

// Atom       ::=  atom              // this/Person
// Atom       ::=  string            // "one of"
// Atom       ::=  List
// List       ::=  '(' Sequence ')'
// Sequence   ::=  Sequence Atom
// Sequence   ::=  ε
//
// Comments starting with ';' will be filtered by the scanner.

// sexpr is either an atom or a list of s-expressions.
type sexpr struct {
	atom   string
	quoted bool // atom was a string
	list   []*sexpr
	isList bool
	span   scanner.Span
}

func (s *sexpr) String() string {
	var b bytes.Buffer
	s.write(&b)
	return b.String()
}

func (s *sexpr) write(b *bytes.Buffer) {
	if !s.isList {
		if s.quoted {
			fmt.Fprintf(b, "%q", s.atom)
		} else {
			b.WriteString(s.atom)
		}
		return
	}
	b.WriteByte('(')
	for i, x := range s.list {
		if i > 0 {
			b.WriteByte(' ')
		}
		x.write(b)
	}
	b.WriteByte(')')
}

// head returns the leading atom of a list, or an empty string.
func (s *sexpr) head() string {
	if !s.isList || len(s.list) == 0 || s.list[0].isList {
		return ""
	}
	return s.list[0].atom
}

// SyntaxError is returned for input which is not in valid expression notation.
type SyntaxError struct {
	Span scanner.Span // position in the input
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Span, e.Msg)
}

func syntaxError(span scanner.Span, format string, args ...interface{}) error {
	return &SyntaxError{Span: span, Msg: fmt.Sprintf(format, args...)}
}

// reader reads s-expressions from a token stream, with one token lookahead.
type reader struct {
	scan    scanner.Tokenizer
	tok     scanner.Token
	scanErr error // first error reported by the scanner
}

func newReader(input string) (*reader, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lex.Scanner(input)
	if err != nil {
		return nil, err
	}
	r := &reader{scan: scan}
	scan.SetErrorHandler(func(e error) {
		tracer().Errorf("%v", e)
		if r.scanErr == nil {
			r.scanErr = e
		}
	})
	r.advance()
	return r, nil
}

func (r *reader) advance() {
	r.tok = r.scan.NextToken()
}

// readAll reads all s-expressions of the input.
func readAll(input string) ([]*sexpr, error) {
	r, err := newReader(input)
	if err != nil {
		return nil, err
	}
	var exprs []*sexpr
	for r.tok.TokType() != scanner.EOF {
		s, err := r.read()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, s)
	}
	if r.scanErr != nil {
		return nil, fmt.Errorf("illegal input: %w", r.scanErr)
	}
	return exprs, nil
}

func (r *reader) read() (*sexpr, error) {
	tok := r.tok
	_, lparen := Token("(")
	_, rparen := Token(")")
	_, str := Token("STRING")
	switch tok.TokType() {
	case lparen:
		r.advance()
		list := &sexpr{isList: true, span: tok.Span()}
		for r.tok.TokType() != rparen {
			if r.tok.TokType() == scanner.EOF {
				return nil, syntaxError(tok.Span(), "unclosed '('")
			}
			s, err := r.read()
			if err != nil {
				return nil, err
			}
			list.list = append(list.list, s)
		}
		list.span = list.span.Extend(r.tok.Span())
		r.advance()
		return list, nil
	case rparen:
		return nil, syntaxError(tok.Span(), "unexpected ')'")
	case str:
		r.advance()
		lexeme := tok.Lexeme()
		return &sexpr{atom: lexeme[1 : len(lexeme)-1], quoted: true, span: tok.Span()}, nil
	}
	r.advance()
	return &sexpr{atom: tok.Lexeme(), span: tok.Span()}, nil
}
