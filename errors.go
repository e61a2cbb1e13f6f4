// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fontmatch

import "fmt"

// InvalidDirectiveError is returned by Merge and ParseDirectives when a
// directive is of an unrecognized kind or shape. No font is resolved.
type InvalidDirectiveError struct {
	// Index is the directive's position in the input, or -1 if unknown.
	Index int
	// Value describes the offending directive.
	Value string
	// Reason is an optional detail.
	Reason string
}

func (e *InvalidDirectiveError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("fontmatch: invalid font specifier `%s`", e.Value)
	}
	return fmt.Sprintf("fontmatch: invalid font specifier `%s`: %s", e.Value, e.Reason)
}
