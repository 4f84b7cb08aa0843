package scope

import (
	"fmt"
)

// Symbol table for variable aliases.

// --- Tags -------------------------------------------------------

// Tag is the entry type stored into symbol tables. It records a variable name and
// the alias it has been given.
type Tag struct {
	name  string
	Alias string
}

// NewTag creates a new tag without an alias.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

// String is a debug Stringer for tags.
func (t *Tag) String() string {
	return fmt.Sprintf("<tag '%s'=%s>", t.name, t.Alias)
}

// Name gets the tag's name.
func (t *Tag) Name() string {
	return t.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	Table     map[string]*Tag
	createTag func(string) *Tag
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Table:     make(map[string]*Tag),
		createTag: NewTag,
	}
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// ResolveOrDefineTag finds a tag in the table, inserts a new one if not found.
// Returns the tag and a flag, signalling wether the tag has already been present.
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	tag := t.ResolveTag(tagname)
	if tag != nil {
		return tag, true
	}
	tag = t.createTag(tagname)
	t.Table[tagname] = tag
	return tag, false
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each tag in the table, executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	for k, v := range t.Table {
		mapper(k, v)
	}
}

// --- Anonymizer ------------------------------------------------------------

// Anonymizer hands out aliases var0, var1, … for variable names, in the order the
// names are first seen. Asking twice for the same name returns the same alias.
type Anonymizer struct {
	symtab *SymbolTable
}

// NewAnonymizer creates an anonymizer without any aliases.
func NewAnonymizer() *Anonymizer {
	return &Anonymizer{symtab: NewSymbolTable()}
}

// Alias returns the alias for a variable name, defining one if necessary.
// The empty name has no alias and yields "var".
func (a *Anonymizer) Alias(varname string) string {
	tag, found := a.symtab.ResolveOrDefineTag(varname)
	if tag == nil {
		return "var"
	}
	if !found {
		tag.Alias = fmt.Sprintf("var%d", a.symtab.Size()-1)
		tracer().Debugf("variable %s is aliased as %s", varname, tag.Alias)
	}
	return tag.Alias
}

// Declare defines aliases for the names of a declaration, in order.
func (a *Anonymizer) Declare(names ...string) {
	for _, n := range names {
		a.Alias(n)
	}
}

// Size returns the number of aliases handed out.
func (a *Anonymizer) Size() int {
	return a.symtab.Size()
}
