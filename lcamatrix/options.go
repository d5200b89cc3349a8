// SPDX-License-Identifier: MIT

// Package lcamatrix: functional configuration for construction and appliers.
// Follows the package-wide option conventions: Default* constants as the
// single source of truth, WithX constructors that panic only on nonsensical
// values (programmer error), and a gatherOptions resolver applied at every
// public entry point.
package lcamatrix

import (
	"log/slog"

	"github.com/ecoloop/wastelca/exchange"
)

// DefaultBiosphereNamespace is the database namespace that marks a flow key
// as a biosphere exchange when the appliers split an LCI grouping between
// the technosphere and biosphere tables.
const DefaultBiosphereNamespace = exchange.BiosphereDB

const (
	panicNilLogger      = "lcamatrix: WithCollisionLogger: logger must not be nil"
	panicEmptyNamespace = "lcamatrix: WithBiosphereNamespace: namespace must not be empty"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Unexported: public entry points accept ...Option.
type options struct {
	log   *slog.Logger // collision warnings; nil ⇒ silent
	bioNS string       // biosphere namespace for LCI filtering
}

// WithCollisionLogger surfaces biosphere-key collision disambiguation as
// warnings on l. Collisions are handled either way (no data loss); logging
// them is purely observational.
// Panics if l is nil (programmer error).
func WithCollisionLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.log = l }
}

// WithBiosphereNamespace overrides the namespace used to classify LCI flow
// keys as biosphere exchanges. Panics if ns is empty (programmer error).
func WithBiosphereNamespace(ns string) Option {
	if ns == "" {
		panic(panicEmptyNamespace)
	}

	return func(o *options) { o.bioNS = ns }
}

// gatherOptions applies user setters on top of the documented defaults.
// Last-writer-wins; stable for a given setter sequence.
// Complexity: O(k) for k options.
func gatherOptions(opts ...Option) options {
	o := options{
		log:   nil,
		bioNS: DefaultBiosphereNamespace,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
