// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fontmatch

import "strings"

// Traits is a set of symbolic font traits.
// Traits values combine with bitwise OR and are themselves a Directive:
// passing Italic|Condensed to Merge adds both traits to the request.
type Traits uint32

const (
	// Italic selects slanted (italic or oblique) variants.
	Italic Traits = 1 << iota
	// Bold marks heavy variants. Variant matching scores boldness through
	// Weight rather than this flag; see Resolve.
	Bold
	// Expanded selects wide variants.
	Expanded
	// Condensed selects narrow variants.
	Condensed
	// Monospace selects fixed-pitch variants.
	Monospace

	traitsAll = Italic | Bold | Expanded | Condensed | Monospace
)

// scoredTraits are the traits that earn a point when both requested and
// present on a variant. Bold is deliberately absent.
var scoredTraits = [...]Traits{Condensed, Expanded, Italic, Monospace}

var traitNames = [...]struct {
	t    Traits
	name string
}{
	{Italic, "italic"},
	{Bold, "bold"},
	{Expanded, "expanded"},
	{Condensed, "condensed"},
	{Monospace, "monospace"},
}

// Has reports whether every trait in o is present in t.
func (t Traits) Has(o Traits) bool {
	return t&o == o
}

// Valid reports whether t only contains known traits.
func (t Traits) Valid() bool {
	return t&^traitsAll == 0
}

// String returns the traits joined by "|", or "none" for the empty set.
func (t Traits) String() string {
	if t == 0 {
		return "none"
	}
	var b strings.Builder
	for _, tn := range traitNames {
		if t&tn.t == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(tn.name)
	}
	if rest := t &^ traitsAll; rest != 0 {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(unknownStr)
	}
	return b.String()
}

func (Traits) isDirective() {}
