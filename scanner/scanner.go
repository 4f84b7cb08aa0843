/*
Package scanner defines an interface for scanners and an adapter for lexmachine,
which is the scanner used by the packages exprlang and ted.

Clients configure a lexmachine lexer with patterns and actions, wrap it into an
LMAdapter, and then create one scanner per input string:

    adapter, err := scanner.NewLMAdapter(init, literals, nil, tokenIds)
    scan, err := adapter.Scanner(input)
    for tok := scan.NextToken(); tok.TokType() != scanner.EOF; tok = scan.NextToken() {
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exprtree.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("exprtree.scanner")
}

// EOF is identical to text/scanner.EOF.
// Default token types are replicated here for practical reasons.
const (
	EOF     = TokType(scanner.EOF)
	Ident   = TokType(scanner.Ident)
	String  = TokType(scanner.String)
	Comment = TokType(scanner.Comment)
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}
