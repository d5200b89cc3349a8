// SPDX-License-Identifier: MIT

// Package lcamatrix: in-place matrix rebuilders.
//
// Rebuilding replays an ordered value sequence against the coordinate arrays
// captured at construction: element i becomes the value of the i-th captured
// (row, col) cell, implicit zero elsewhere, same shape as the original. The
// rebuilder performs no key lookup — positional correspondence is the
// contract, and the Table's insertion order is exactly that position order.
package lcamatrix

import (
	"fmt"

	"github.com/james-bowman/sparse"
)

// RebuildTechnosphere replaces the working technosphere matrix from values in
// captured coordinate order. The length must equal the captured non-zero
// count (ErrValueCount).
// Complexity: O(nnz).
func (s *System) RebuildTechnosphere(values []float64) error {
	return s.tech.rebuild(values)
}

// RebuildBiosphere replaces the working biosphere matrix from values in
// captured coordinate order. Same length precondition as RebuildTechnosphere.
func (s *System) RebuildBiosphere(values []float64) error {
	return s.bio.rebuild(values)
}

// RebuildTechnosphereFromTable replays the technosphere table's own values —
// the usual step after the update appliers in a Monte Carlo or optimization
// iteration.
func (s *System) RebuildTechnosphereFromTable() error {
	return s.tech.rebuild(s.tech.table.val)
}

// RebuildBiosphereFromTable replays the biosphere table's own values.
func (s *System) RebuildBiosphereFromTable() error {
	return s.bio.rebuild(s.bio.table.val)
}

// rebuild constructs a fresh CSR from the captured coordinates and the given
// values and swaps it in as the working matrix.
// Stage 1 (Validate): value count against captured coordinate count.
// Stage 2 (Execute): copy coordinates and values (the COO takes ownership of
// its slices; the capture must stay pristine) and convert COO → CSR.
// Stage 3 (Finalize): replace the working matrix.
// Complexity: O(nnz) time and memory.
func (a *axis) rebuild(values []float64) error {
	if len(values) != len(a.rows) {
		return fmt.Errorf("lcamatrix: %d values for %d coordinates: %w",
			len(values), len(a.rows), ErrValueCount)
	}

	rows := append([]int(nil), a.rows...)
	cols := append([]int(nil), a.cols...)
	data := append([]float64(nil), values...)
	a.mtx = sparse.NewCOO(a.nr, a.nc, rows, cols, data).ToCSR()

	return nil
}
