package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/exprtree"
	"github.com/npillmayer/exprtree/build"
	"github.com/npillmayer/exprtree/exprlang"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI, where users may enter expression graphs in
// s-expr notation. Every expression will be converted into a tree, which is
// printed in different notations.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	anon := flag.Bool("anon", false, "Label variables with aliases")
	sort := flag.Bool("sort", false, "Sort operands of commutative operators")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to exprtree") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	gtrace.SyntaxTracer.SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	// set up builder options
	opts := []build.Option{build.WithIDSource(exprtree.GlobalIDs)}
	if *anon {
		opts = append(opts, build.WithAnonymizedVars())
	}
	if *sort {
		opts = append(opts, build.WithCanonicalOrder())
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	tracer().Infof("Input argument is \"%s\"", input)
	//
	// set up REPL
	repl, err := readline.New("exprtree> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{
		module: exprlang.NewModule(),
		opts:   opts,
		repl:   repl,
		out:    ptermDisplay{},
	}
	if input != "" {
		if _, err = intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands / expressions
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
