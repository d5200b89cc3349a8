// SPDX-License-Identifier: MIT
// Package lcamatrix: sentinel error set (unified, consistent).
// All operations return these sentinels, wrapped with exchange context via
// fmt.Errorf("...: %w", ...) where useful; tests and callers match with
// errors.Is. No operation panics on user-triggered conditions.

package lcamatrix

import "errors"

var (
	// ErrUnknownExchange indicates an update applier derived a composite key
	// that is not in the table's fixed key set — a structural mismatch
	// between the report producer and the originally built matrix.
	ErrUnknownExchange = errors.New("lcamatrix: exchange not in table")

	// ErrInvalidValue indicates a report carried a NaN amount; an upstream
	// calculation defect in the process model.
	ErrInvalidValue = errors.New("lcamatrix: exchange amount is NaN")

	// ErrValueCount indicates a rebuild or restore received a value sequence
	// whose length differs from the captured coordinate count.
	ErrValueCount = errors.New("lcamatrix: value count does not match coordinate count")

	// ErrDuplicateExchange indicates matrix construction mapped two distinct
	// coordinates onto the same composite key on an axis where collisions
	// are not disambiguated (technosphere).
	ErrDuplicateExchange = errors.New("lcamatrix: duplicate exchange key")

	// ErrShapeMismatch indicates an axis dictionary length disagrees with
	// the matrix shape, or a supply array disagrees with the activity count.
	ErrShapeMismatch = errors.New("lcamatrix: shape mismatch")

	// ErrNoSolution indicates supply/score were requested before SetSolution.
	ErrNoSolution = errors.New("lcamatrix: no solution set")

	// ErrIndexRange indicates a supply index outside the activity axis.
	ErrIndexRange = errors.New("lcamatrix: index out of range")

	// ErrNilMatrix indicates a nil sparse matrix was passed to New.
	ErrNilMatrix = errors.New("lcamatrix: nil matrix")

	// ErrNilDict indicates a nil axis dictionary was passed to New.
	ErrNilDict = errors.New("lcamatrix: nil dictionary")

	// ErrNilTable indicates a nil table was passed to an update applier.
	ErrNilTable = errors.New("lcamatrix: nil table")

	// ErrNilReport indicates a nil report was passed to an update applier.
	ErrNilReport = errors.New("lcamatrix: nil report")
)
