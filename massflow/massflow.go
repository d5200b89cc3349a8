// SPDX-License-Identifier: MIT

// Package massflow: aggregation over one solved context.
package massflow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ecoloop/wastelca/exchange"
)

// Solved is the post-solve surface the aggregators read.
// *lcamatrix.System satisfies it.
type Solved interface {
	// ActivityKeys returns the activity axis keys in index order.
	ActivityKeys() []exchange.Key

	// ActivityIndex returns the axis index of an activity key.
	ActivityIndex(k exchange.Key) (int, bool)

	// Supply returns the solved scalar flow quantity at activity index i.
	Supply(i int) (float64, error)
}

// UnitSource resolves an activity's declared unit string — the external
// metadata lookup. Implementations should be cheap and synchronous.
type UnitSource interface {
	Unit(k exchange.Key) (string, error)
}

// MapUnitSource is an in-memory UnitSource, handy for tests and for drivers
// that preload metadata. Missing activities yield ErrUnknownActivity.
type MapUnitSource map[exchange.Key]string

// Unit implements UnitSource.
func (m MapUnitSource) Unit(k exchange.Key) (string, error) {
	u, ok := m[k]
	if !ok {
		return "", fmt.Errorf("massflow: activity %s: %w", k, ErrUnknownActivity)
	}

	return u, nil
}

// Total sums the solved flow quantity over every activity whose database
// namespace equals process, normalizing each activity's unit multiplier.
// Stage 1 (Validate): nil inputs.
// Stage 2 (Execute): walk the activity axis, filter by namespace, accumulate
// supply × multiplier.
// Complexity: O(activities).
func Total(s Solved, units UnitSource, process string) (float64, error) {
	if s == nil {
		return 0, ErrNilSolved
	}
	if units == nil {
		return 0, ErrNilUnits
	}

	var mass float64
	for _, k := range s.ActivityKeys() {
		if !k.In(process) {
			continue
		}
		q, err := activityMass(s, units, k)
		if err != nil {
			return 0, err
		}
		mass += q
	}

	return mass, nil
}

// ByIndex sums the solved flow quantity per requested index key: an activity
// of the process namespace contributes to the bucket whose index key equals
// its code. Every requested key gets an accumulator, zero when nothing
// matches.
// Complexity: O(activities × index keys) with the small index sets in
// practice; the result map iteration order is up to the caller.
func ByIndex(s Solved, units UnitSource, process string, index []string) (map[string]float64, error) {
	if s == nil {
		return nil, ErrNilSolved
	}
	if units == nil {
		return nil, ErrNilUnits
	}

	out := make(map[string]float64, len(index))
	for _, code := range index {
		out[code] = 0
	}

	for _, k := range s.ActivityKeys() {
		if !k.In(process) {
			continue
		}
		if _, wanted := out[k.Code]; !wanted {
			continue
		}
		q, err := activityMass(s, units, k)
		if err != nil {
			return nil, err
		}
		out[k.Code] += q
	}

	return out, nil
}

// activityMass resolves one activity's normalized mass contribution.
func activityMass(s Solved, units UnitSource, k exchange.Key) (float64, error) {
	i, ok := s.ActivityIndex(k)
	if !ok {
		// ActivityKeys and ActivityIndex come from the same axis; a miss
		// here means the Solved implementation is inconsistent.
		return 0, fmt.Errorf("massflow: activity %s: %w", k, ErrUnknownActivity)
	}
	q, err := s.Supply(i)
	if err != nil {
		return 0, err
	}
	u, err := units.Unit(k)
	if err != nil {
		return 0, err
	}
	f, err := Multiplier(u)
	if err != nil {
		return 0, err
	}

	return q * f, nil
}

// Multiplier returns the numeric factor embedded in a unit string.
// A single-token unit ("kg") has factor 1; a unit with a space-separated
// leading number ("1000 kg") has that number as factor; any other multi-token
// unit is ErrBadUnit so the caller can distinguish malformed metadata from a
// missing multiplier.
// Complexity: O(len(unit)).
func Multiplier(unit string) (float64, error) {
	head, _, found := strings.Cut(strings.TrimSpace(unit), " ")
	if !found {
		return 1, nil
	}
	f, err := strconv.ParseFloat(head, 64)
	if err != nil {
		return 0, fmt.Errorf("massflow: unit %q: %w", unit, ErrBadUnit)
	}

	return f, nil
}
