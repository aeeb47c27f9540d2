// File: symbols.go
// Title: Symbol Table
// Description: Name to value bindings for one calculator session. Names
//              are bound once; lookups fall back to an optional parent
//              table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial symbol table

package evaluator

import (
	"fmt"
	"sort"

	mdwerror "github.com/msto63/pascal/foundation/core/error"
)

// SymbolTable maps variable names to values. It is not safe for
// concurrent use.
type SymbolTable struct {
	symbols map[string]Value
	parent  *SymbolTable
}

// NewSymbolTable creates an empty table without parent
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Value)}
}

// NewChildTable creates an empty table whose lookups fall back to parent
func NewChildTable(parent *SymbolTable) *SymbolTable {
	t := NewSymbolTable()
	t.parent = parent
	return t
}

// Parent returns the parent table or nil
func (t *SymbolTable) Parent() *SymbolTable {
	return t.parent
}

// Lookup finds name in this table or the nearest ancestor binding it
func (t *SymbolTable) Lookup(name string) (Value, bool) {
	for table := t; table != nil; table = table.parent {
		if v, ok := table.symbols[name]; ok {
			return v, true
		}
	}
	return Void, false
}

// Define binds name in this table. A name visible through Lookup cannot
// be bound again.
func (t *SymbolTable) Define(name string, value Value) error {
	if _, exists := t.Lookup(name); exists {
		return mdwerror.New(fmt.Sprintf("'%s' is already defined", name)).
			WithCode(mdwerror.CodeAlreadyDefined).
			WithDetail("name", name)
	}
	t.symbols[name] = value
	return nil
}

// Remove deletes a binding from this table only. Missing names are
// ignored.
func (t *SymbolTable) Remove(name string) {
	delete(t.symbols, name)
}

// Len returns the number of bindings in this table, parents excluded
func (t *SymbolTable) Len() int {
	return len(t.symbols)
}

// Names returns every name visible from this table in sorted order
func (t *SymbolTable) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for table := t; table != nil; table = table.parent {
		for name := range table.symbols {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
