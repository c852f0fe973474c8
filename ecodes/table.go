package ecodes

import "github.com/google/btree"

type entry struct {
	code  uint16
	names []string
}

// Less implements the btree.Item interface
func (e *entry) Less(b btree.Item) bool {
	return e.code < b.(*entry).code
}

// NameTable maps event codes to their symbolic names, kept in code
// order. A code may carry more than one name; Lookup returns the
// first registered one and Aliases returns the full set. Tables are
// read-only once built and safe for concurrent readers.
type NameTable struct {
	tree *btree.BTree
}

// NewNameTable builds a table from a code to names mapping. Alias
// order within a code is preserved; it decides which name Lookup
// returns.
func NewNameTable(names map[uint16][]string) *NameTable {
	t := &NameTable{tree: btree.New(32)}
	for code, aliases := range names {
		t.tree.ReplaceOrInsert(&entry{code: code, names: append([]string(nil), aliases...)})
	}
	return t
}

// Lookup returns the first registered name for code.
func (t *NameTable) Lookup(code uint16) (string, bool) {
	it := t.tree.Get(&entry{code: code})
	if it == nil {
		return "", false
	}
	return it.(*entry).names[0], true
}

// Aliases returns a copy of every name registered for code, in
// registration order, or nil if the code is not in the table.
func (t *NameTable) Aliases(code uint16) []string {
	it := t.tree.Get(&entry{code: code})
	if it == nil {
		return nil
	}
	return append([]string(nil), it.(*entry).names...)
}

// Has reports whether code is in the table.
func (t *NameTable) Has(code uint16) bool {
	return t.tree.Has(&entry{code: code})
}

// Len returns the number of codes in the table.
func (t *NameTable) Len() int {
	return t.tree.Len()
}

// Walk calls fn for each code in ascending order until fn returns
// false. The names slice passed to fn must not be modified.
func (t *NameTable) Walk(fn func(code uint16, names []string) bool) {
	t.tree.Ascend(func(it btree.Item) bool {
		e := it.(*entry)
		return fn(e.code, e.names)
	})
}

// WithNames returns a copy of t extended with extra names; t itself
// is never modified. For codes already present the extra names are
// put first, so they take over as the resolved name while the builtin
// ones remain as aliases.
func (t *NameTable) WithNames(extra map[uint16][]string) *NameTable {
	if len(extra) == 0 {
		return t
	}

	nt := &NameTable{tree: t.tree.Clone()}
	for code, aliases := range extra {
		names := append([]string(nil), aliases...)
		if it := nt.tree.Get(&entry{code: code}); it != nil {
			names = append(names, it.(*entry).names...)
		}
		nt.tree.ReplaceOrInsert(&entry{code: code, names: names})
	}
	return nt
}
