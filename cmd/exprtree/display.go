package main

import (
	"fmt"

	"github.com/npillmayer/exprtree"
	"github.com/pterm/pterm"
)

// display receives the output of the interpreter.
type display interface {
	Info(msg string)
	Error(err error)
	Tree(root *exprtree.Node)
}

// ptermDisplay prints to the terminal.
type ptermDisplay struct{}

func (ptermDisplay) Info(msg string) {
	pterm.Info.Println(msg)
}

func (ptermDisplay) Error(err error) {
	pterm.Error.Println(err.Error())
}

// Tree is a helper to display a tree on a terminal.
func (ptermDisplay) Tree(root *exprtree.Node) {
	if root == nil {
		return
	}
	ll := leveledList(root)
	tracer().Debugf("|ll| = %d", len(ll))
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

func leveledList(root *exprtree.Node) pterm.LeveledList {
	ll := pterm.LeveledList{}
	root.Walk(func(n *exprtree.Node, level int) bool {
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("%s  #%d", n.Label, n.ID),
		})
		return true
	})
	return ll
}
