// Package symbol provides a string interner that maps grammar symbol
// names to stable numeric identifiers.
//
// An ID, once assigned, refers to the same name for the lifetime of its
// Table and is never reused. Interpretation code works exclusively with
// IDs; names exist only at the boundaries (parsing scripts, printing
// diagnostics).
package symbol

import "fmt"

// ID is an opaque identifier for an interned symbol name.
type ID uint16

// Table interns symbol names and resolves them in both directions.
// The zero value is not usable; create tables with NewTable.
type Table struct {
	byName map[string]ID
	names  []string
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{byName: make(map[string]ID)}
}

// Intern returns the ID for name, assigning a new one if the name has
// not been seen before. It fails only when the ID space is exhausted.
func (t *Table) Intern(name string) (ID, error) {
	if id, ok := t.byName[name]; ok {
		return id, nil
	}
	if len(t.names) > int(^ID(0)) {
		return 0, fmt.Errorf("symbol table full: cannot intern %q", name)
	}
	id := ID(len(t.names))
	t.byName[name] = id
	t.names = append(t.names, name)
	return id, nil
}

// Resolve looks up the ID for an already-interned name.
func (t *Table) Resolve(name string) (ID, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// Name returns the name interned under id.
func (t *Table) Name(id ID) (string, bool) {
	if int(id) >= len(t.names) {
		return "", false
	}
	return t.names[id], true
}

// Len returns the number of interned symbols.
func (t *Table) Len() int {
	return len(t.names)
}
