// Package lcamatrix keeps the solver's sparse exchange matrices and their
// key-addressable exchange tables in permanent agreement.
//
// The lcamatrix package provides:
//
//   - System: one solve context. At construction it decomposes the solved
//     technosphere and biosphere matrices in deterministic coordinate order,
//     captures the coordinate arrays, and builds the insertion-ordered
//     Composite→amount tables — a bijection between matrix cells and
//     semantic exchange keys.
//   - Table: the fixed-key, insertion-ordered exchange mapping. Values
//     mutate across iterations; keys never do.
//   - Rebuilders: replay table values (or any equally long value sequence)
//     against the captured coordinates into a fresh CSR matrix for the next
//     solve.
//   - Update appliers: apply a process model's report onto a table by
//     semantic key, with strict validation (unknown exchanges and NaN
//     amounts are fatal).
//
// The coordinate arrays and the tables are two views of the same data; both
// are owned by System and only exposed through rebuild-from-values and
// apply-by-key operations, so they cannot decohere.
//
// The typical Monte Carlo / optimization loop:
//
//	UpdateTechnosphere(...) → RebuildTechnosphereFromTable() → external solve → massflow
//
// Single-threaded by contract; parallel trials each take their own
// (*System).Fork().
package lcamatrix
