// SPDX-License-Identifier: MIT
// Package exchange: sentinel error set.
// All public operations in this package return these sentinels (possibly
// wrapped with fmt.Errorf("...: %w", ...)); callers match via errors.Is.

package exchange

import "errors"

var (
	// ErrKeyGrammar indicates that a textual key did not match the accepted
	// "('namespace', 'code')" grammar. ParseKey never guesses: any deviation
	// (missing parentheses, unquoted components, trailing text, empty
	// components) is rejected with this sentinel.
	ErrKeyGrammar = errors.New("exchange: malformed key literal")

	// ErrDuplicateKey indicates that NewDict received the same Key at two
	// indices while duplicates were not explicitly allowed.
	ErrDuplicateKey = errors.New("exchange: duplicate key in dictionary")

	// ErrEmptyDict indicates that NewDict received no keys.
	ErrEmptyDict = errors.New("exchange: dictionary has no keys")

	// ErrIndexRange indicates that a requested axis index is outside the
	// dictionary's valid range.
	ErrIndexRange = errors.New("exchange: index out of range")
)
