// SPDX-License-Identifier: MIT
// Package report: sentinel error set for boundary validation.

package report

import "errors"

var (
	// ErrNoProcessName indicates the "process name" entry is missing or has
	// fewer than two elements (label, family tag).
	ErrNoProcessName = errors.New("report: missing or short process name")

	// ErrBadFamily indicates the second "process name" element (the process
	// family tag) is not a string.
	ErrBadFamily = errors.New("report: process family tag is not a string")

	// ErrEmptyReport indicates a decoded report carries no grouping at all —
	// no Technosphere, Waste, Biosphere, or LCI entries.
	ErrEmptyReport = errors.New("report: no exchange groupings present")
)
