// SPDX-License-Identifier: MIT

// Package exchange: domain value types (Key, Composite).
// This file intentionally contains ONLY the immutable identifier types; the
// dictionary lives in dict.go and the textual grammar in parse.go, per the
// global one-concern-per-file convention.
package exchange

import "fmt"

// BiosphereDB is the conventional namespace of biosphere-flow nodes.
// Keys in this namespace identify environmental exchanges (emissions,
// resource extraction) rather than human-made products.
const BiosphereDB = "biosphere3"

// Key identifies one product, activity, or biosphere-flow node by database
// namespace and code. It is an immutable value type: comparable, hashable,
// and safe to use as a map key.
type Key struct {
	// Database is the namespace the node lives in, e.g. a process database
	// name ("LF", "TS1_product") or BiosphereDB for environmental flows.
	Database string

	// Code is the node's local identifier within Database.
	Code string
}

// In reports whether the key belongs to the given database namespace.
// Complexity: O(1).
func (k Key) In(database string) bool { return k.Database == database }

// String renders the canonical tuple literal "('database', 'code')".
// The output round-trips through ParseKey.
func (k Key) String() string {
	return fmt.Sprintf("('%s', '%s')", k.Database, k.Code)
}

// Composite identifies one directed exchange: Source is the product or
// biosphere-flow key (matrix row), Target the consuming-activity key
// (matrix column). Immutable, comparable, hashable.
type Composite struct {
	Source Key // matrix row key
	Target Key // matrix column key
}

// String renders "(source, target)" using the canonical Key literals.
func (c Composite) String() string {
	return fmt.Sprintf("(%s, %s)", c.Source, c.Target)
}
