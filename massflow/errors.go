// SPDX-License-Identifier: MIT
// Package massflow: sentinel error set.

package massflow

import "errors"

var (
	// ErrNilSolved indicates a nil solved context.
	ErrNilSolved = errors.New("massflow: nil solved context")

	// ErrNilUnits indicates a nil unit source.
	ErrNilUnits = errors.New("massflow: nil unit source")

	// ErrBadUnit indicates a multi-token unit string whose leading token is
	// not a numeric multiplier (e.g. "metric ton").
	ErrBadUnit = errors.New("massflow: unit has non-numeric multiplier prefix")

	// ErrUnknownActivity indicates MapUnitSource has no unit for an activity.
	ErrUnknownActivity = errors.New("massflow: no unit for activity")
)
