// SPDX-License-Identifier: MIT

// Package exchange: textual key grammar.
//
// External producers (process-model reports, impact-method tables) carry keys
// as Python-style tuple literals: ('namespace', 'code'). ParseKey accepts
// exactly that shape — a parenthesized pair of quoted strings — and nothing
// else. This replaces runtime evaluation of arbitrary key text with a
// restricted, validated grammar.
package exchange

import (
	"fmt"
	"strings"
)

// ParseKey parses a tuple literal of the form ('namespace', 'code') into a
// Key. Both single and double quotes are accepted; surrounding whitespace is
// ignored; quote escapes are not supported (codes never contain quotes).
// Stage 1 (Validate): strip whitespace, require the outer parentheses.
// Stage 2 (Execute): scan two quoted components separated by a comma.
// Stage 3 (Finalize): require both components non-empty and no trailing text.
// Returns ErrKeyGrammar (wrapped with the offending literal) on any deviation.
// Complexity: O(len(s)).
func ParseKey(s string) (Key, error) {
	t := strings.TrimSpace(s)
	if len(t) < 2 || t[0] != '(' || t[len(t)-1] != ')' {
		return Key{}, keyGrammarError(s)
	}
	inner := t[1 : len(t)-1]

	// First quoted component.
	database, rest, ok := scanQuoted(inner)
	if !ok {
		return Key{}, keyGrammarError(s)
	}
	// Separator.
	rest = strings.TrimLeft(rest, " \t")
	if len(rest) == 0 || rest[0] != ',' {
		return Key{}, keyGrammarError(s)
	}
	// Second quoted component.
	code, rest, ok := scanQuoted(rest[1:])
	if !ok || strings.TrimSpace(rest) != "" {
		return Key{}, keyGrammarError(s)
	}
	if database == "" || code == "" {
		return Key{}, keyGrammarError(s)
	}

	return Key{Database: database, Code: code}, nil
}

// scanQuoted reads one leading quoted string (single or double quotes) from
// s, skipping leading spaces and tabs. It returns the unquoted content, the
// unconsumed remainder, and whether the scan succeeded.
// Complexity: O(len(s)).
func scanQuoted(s string) (content, rest string, ok bool) {
	s = strings.TrimLeft(s, " \t")
	if len(s) < 2 || (s[0] != '\'' && s[0] != '"') {
		return "", "", false
	}
	quote := s[0]
	end := strings.IndexByte(s[1:], quote)
	if end < 0 {
		return "", "", false
	}

	return s[1 : 1+end], s[end+2:], true
}

// keyGrammarError wraps ErrKeyGrammar with the offending literal.
func keyGrammarError(s string) error {
	return fmt.Errorf("exchange: %q: %w", s, ErrKeyGrammar)
}
