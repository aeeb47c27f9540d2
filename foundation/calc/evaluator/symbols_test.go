// File: symbols_test.go
// Title: Symbol Table Unit Tests
// Description: Tests for insert-once bindings, parent delegation, removal
//              and name listing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package evaluator

import (
	"reflect"
	"testing"

	mdwerror "github.com/msto63/pascal/foundation/core/error"
	"github.com/msto63/pascal/foundation/utils/mathx"
)

func TestSymbolTable_DefineAndLookup(t *testing.T) {
	table := NewSymbolTable()

	if _, ok := table.Lookup("x"); ok {
		t.Fatal("Expected empty table")
	}
	if err := table.Define("x", NumberValue(mathx.NewDecimalFromInt(2))); err != nil {
		t.Fatalf("Define() error = %v", err)
	}

	v, ok := table.Lookup("x")
	if !ok || v.String() != "2" {
		t.Errorf("Lookup(x) = %s, %v; want 2, true", v, ok)
	}

	err := table.Define("x", True)
	if !mdwerror.HasCode(err, mdwerror.CodeAlreadyDefined) {
		t.Fatalf("second Define() error = %v, want ALREADY_DEFINED", err)
	}
	if name, _ := err.(*mdwerror.Error).Detail("name"); name != "x" {
		t.Errorf("name detail = %v, want x", name)
	}
	if v, _ := table.Lookup("x"); v.String() != "2" {
		t.Errorf("first binding replaced: x = %s", v)
	}
}

func TestSymbolTable_Parent(t *testing.T) {
	root := NewSymbolTable()
	_ = root.Define("pi", NumberValue(mathx.MustNewDecimal("3.14159")))

	middle := NewChildTable(root)
	_ = middle.Define("e", NumberValue(mathx.MustNewDecimal("2.71828")))

	leaf := NewChildTable(middle)
	_ = leaf.Define("answer", NumberValue(mathx.NewDecimalFromInt(42)))

	if leaf.Parent() != middle || middle.Parent() != root || root.Parent() != nil {
		t.Fatal("unexpected parent chain")
	}

	for _, name := range []string{"pi", "e", "answer"} {
		if _, ok := leaf.Lookup(name); !ok {
			t.Errorf("leaf.Lookup(%s) not found", name)
		}
	}
	if _, ok := root.Lookup("answer"); ok {
		t.Error("lookups must not see child bindings")
	}

	if err := leaf.Define("pi", True); !mdwerror.HasCode(err, mdwerror.CodeAlreadyDefined) {
		t.Errorf("Define over an ancestor binding: %v, want ALREADY_DEFINED", err)
	}

	want := []string{"answer", "e", "pi"}
	if got := leaf.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if leaf.Len() != 1 {
		t.Errorf("Len() = %d, want 1", leaf.Len())
	}
}

func TestSymbolTable_Remove(t *testing.T) {
	parent := NewSymbolTable()
	_ = parent.Define("shared", False)
	child := NewChildTable(parent)
	_ = child.Define("local", True)

	child.Remove("local")
	child.Remove("missing")
	child.Remove("shared")

	if _, ok := child.Lookup("local"); ok {
		t.Error("local still bound after Remove")
	}
	if _, ok := child.Lookup("shared"); !ok {
		t.Error("Remove must not reach into the parent")
	}
	if err := child.Define("local", False); err != nil {
		t.Errorf("Define after Remove: %v", err)
	}
}

func TestSymbolTable_NamesEmpty(t *testing.T) {
	if names := NewSymbolTable().Names(); len(names) != 0 {
		t.Errorf("Names() = %v, want empty", names)
	}
}
