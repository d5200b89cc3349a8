// Package exchange defines the semantic identifiers used to address LCA
// matrix cells by meaning instead of by position.
//
// The exchange package provides:
//
//   - Key: a two-part (database namespace, code) identifier for one product,
//     activity, or biosphere-flow node. Comparable and hashable; used as a
//     map key throughout the module.
//   - Composite: an ordered (source, target) pair identifying one directed
//     exchange — source is the matrix row key, target the consuming-activity
//     column key.
//   - Dict: a bidirectional index↔key table for one matrix axis, built once
//     per solve context and immutable afterwards.
//   - ParseKey: a typed parser for the textual "('namespace', 'code')" tuple
//     form, with a restricted, explicitly validated grammar.
//
// See lcamatrix for the tables and builders that consume these types.
package exchange
