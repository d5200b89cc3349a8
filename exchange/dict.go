// SPDX-License-Identifier: MIT

// Package exchange: bidirectional index↔key dictionary for one matrix axis.
// A Dict is built once per solve context from the solver's axis ordering and
// never mutated afterwards, so it is safe to share read-only across forked
// contexts.
package exchange

import "fmt"

// DictOption configures dictionary construction.
type DictOption func(*dictOptions)

type dictOptions struct {
	allowDuplicates bool
}

// WithDuplicateKeys permits the same Key to appear at several indices.
// Index then resolves to the first occurrence. Needed for the biosphere-flow
// axis, where real inventories occasionally carry duplicate flow nodes; the
// product and activity axes should stay strict.
func WithDuplicateKeys() DictOption {
	return func(o *dictOptions) { o.allowDuplicates = true }
}

// Dict is a bidirectional mapping between 0-based axis indices and Keys.
// The forward direction (index → key) is total over [0, Len()); the reverse
// direction (key → index) resolves duplicates to the first occurrence when
// duplicates were allowed at construction.
type Dict struct {
	keys  []Key       // index → key, construction order
	index map[Key]int // key → first index
}

// NewDict builds a Dict from keys in axis order.
// Stage 1 (Validate): reject empty input and, unless WithDuplicateKeys was
// given, duplicate keys.
// Stage 2 (Prepare): copy the key slice and build the reverse map.
// Stage 3 (Finalize): return the immutable Dict.
// Complexity: O(n) time and memory.
func NewDict(keys []Key, opts ...DictOption) (*Dict, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyDict
	}
	var o dictOptions
	for _, opt := range opts {
		opt(&o)
	}

	d := &Dict{
		keys:  append([]Key(nil), keys...),
		index: make(map[Key]int, len(keys)),
	}
	for i, k := range d.keys {
		if _, seen := d.index[k]; seen {
			if !o.allowDuplicates {
				return nil, fmt.Errorf("exchange: key %s at index %d: %w", k, i, ErrDuplicateKey)
			}
			// first occurrence wins in the reverse direction
			continue
		}
		d.index[k] = i
	}

	return d, nil
}

// Len returns the number of axis positions.
// Complexity: O(1).
func (d *Dict) Len() int { return len(d.keys) }

// Key returns the Key at axis index i, or ErrIndexRange.
// Complexity: O(1).
func (d *Dict) Key(i int) (Key, error) {
	if i < 0 || i >= len(d.keys) {
		return Key{}, fmt.Errorf("exchange: index %d of %d: %w", i, len(d.keys), ErrIndexRange)
	}

	return d.keys[i], nil
}

// Index returns the axis index of k and whether k is present.
// For dictionaries built with WithDuplicateKeys, the first occurrence wins.
// Complexity: O(1).
func (d *Dict) Index(k Key) (int, bool) {
	i, ok := d.index[k]

	return i, ok
}

// Keys returns a copy of the axis keys in index order.
// Complexity: O(n).
func (d *Dict) Keys() []Key {
	return append([]Key(nil), d.keys...)
}
