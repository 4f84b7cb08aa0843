package exprlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/exprtree/scanner"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["ATOM"] = int(scanner.Ident)
		tokenIds["STRING"] = int(scanner.String)
		for _, lit := range literals {
			tokenIds[lit] = int(lit[0])
		}
	})
}

// Token returns a token name and its token type.
func Token(t string) (string, scanner.TokType) {
	initTokens()
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return t, scanner.TokType(id)
}

var lexer *scanner.LMAdapter
var lexerErr error
var lexerOnce sync.Once

// Lexer returns the lexmachine adapter for the expression notation. The DFA is
// compiled on first use.
func Lexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		initTokens()
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`;[^\n]*\n?`), scanner.Skip) // skip comments
			lexer.Add([]byte(`\"[^"]*\"`), makeToken("STRING"))
			lexer.Add([]byte(`[^ \t\n\r\(\);"]+`), makeToken("ATOM"))
			lexer.Add([]byte(`( |\t|\n|\r)+`), scanner.Skip)
		}
		tracer().Infof("Creating lexer")
		lexer, lexerErr = scanner.NewLMAdapter(init, literals, nil, tokenIds)
	})
	return lexer, lexerErr
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return scanner.MakeToken(s, id)
}
