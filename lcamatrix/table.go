// SPDX-License-Identifier: MIT

// Package lcamatrix: the insertion-ordered, fixed-key exchange table.
//
// A Table is one of the two parallel views of a sparse matrix's non-zero
// cells: entry i of the table corresponds to the i-th captured coordinate
// pair. The key set is frozen at construction; only values mutate. Insertion
// order is the original coordinate traversal order and is what makes
// rebuild-by-position correct, so the table never reorders or resizes.
package lcamatrix

import (
	"fmt"
	"math"

	"github.com/ecoloop/wastelca/exchange"
)

// Table is an insertion-ordered mapping from composite exchange keys to
// amounts with a fixed key set.
type Table struct {
	ord []exchange.Composite       // insertion order == coordinate order
	idx map[exchange.Composite]int // key → position in ord/val
	val []float64                  // amounts, parallel to ord
}

// newTable returns an empty table with capacity for n entries.
func newTable(n int) *Table {
	return &Table{
		ord: make([]exchange.Composite, 0, n),
		idx: make(map[exchange.Composite]int, n),
		val: make([]float64, 0, n),
	}
}

// append adds one entry at build time. Build-only: callers must have checked
// key uniqueness (see the builder's collision handling).
func (t *Table) append(key exchange.Composite, amount float64) {
	t.idx[key] = len(t.ord)
	t.ord = append(t.ord, key)
	t.val = append(t.val, amount)
}

// Len returns the number of exchanges in the table.
// Complexity: O(1).
func (t *Table) Len() int { return len(t.ord) }

// Contains reports whether key is in the table's fixed key set.
// Complexity: O(1).
func (t *Table) Contains(key exchange.Composite) bool {
	_, ok := t.idx[key]

	return ok
}

// Get returns the amount for key and whether key is present.
// Complexity: O(1).
func (t *Table) Get(key exchange.Composite) (float64, bool) {
	i, ok := t.idx[key]
	if !ok {
		return 0, false
	}

	return t.val[i], true
}

// Set overwrites the amount for an existing key.
// Returns ErrUnknownExchange for keys outside the fixed set (the table never
// grows) and ErrInvalidValue for NaN amounts.
// Complexity: O(1).
func (t *Table) Set(key exchange.Composite, amount float64) error {
	if math.IsNaN(amount) {
		return fmt.Errorf("lcamatrix: exchange %s: %w", key, ErrInvalidValue)
	}
	i, ok := t.idx[key]
	if !ok {
		return fmt.Errorf("lcamatrix: exchange %s: %w", key, ErrUnknownExchange)
	}
	t.val[i] = amount

	return nil
}

// Keys returns a copy of the keys in insertion (coordinate) order.
// Complexity: O(n).
func (t *Table) Keys() []exchange.Composite {
	return append([]exchange.Composite(nil), t.ord...)
}

// Values returns a copy of the amounts in insertion (coordinate) order —
// exactly the sequence the rebuilders expect.
// Complexity: O(n).
func (t *Table) Values() []float64 {
	return append([]float64(nil), t.val...)
}

// Snapshot returns a copy of the current amounts, for callers that need
// pre-update atomicity: the appliers do not roll back on failure, so snapshot
// before applying and Restore on error.
// Complexity: O(n).
func (t *Table) Snapshot() []float64 { return t.Values() }

// Restore overwrites all amounts from a snapshot taken on this table.
// Returns ErrValueCount if the lengths differ.
// Complexity: O(n).
func (t *Table) Restore(values []float64) error {
	if len(values) != len(t.val) {
		return fmt.Errorf("lcamatrix: restore %d values into %d entries: %w",
			len(values), len(t.val), ErrValueCount)
	}
	copy(t.val, values)

	return nil
}

// clone returns a deep copy sharing the immutable key ordering.
// ord and idx are write-once after construction, so forked contexts share
// them; only the value slice is copied.
func (t *Table) clone() *Table {
	return &Table{
		ord: t.ord,
		idx: t.idx,
		val: append([]float64(nil), t.val...),
	}
}
