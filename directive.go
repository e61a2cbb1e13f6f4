// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fontmatch

import "fmt"

// unknownStr is the string used for unknown enum values.
const unknownStr = "unknown"

// Directive is one styling instruction in an ordered list passed to Merge.
//
// The set of directives is closed:
//   - ExplicitFont sets the base font
//   - Traits adds symbolic traits
//   - Weight sets the target weight
//   - Size sets an absolute point size
//   - RelativeSize scales the size resolved so far
//   - TextStyle applies a semantic text style
type Directive interface {
	isDirective()
}

// ExplicitFont sets the base font. The last ExplicitFont wins.
type ExplicitFont struct {
	Font Font
}

// Size is an absolute point size.
type Size float64

// RelativeSize multiplies the size resolved so far by Factor.
type RelativeSize struct {
	Factor float64
}

// TextStyle is a semantic text style token resolved by a TextStyleService.
type TextStyle string

// Standard text styles, sized by the default textstyle table.
const (
	StyleLargeTitle  TextStyle = "largeTitle"
	StyleTitle1      TextStyle = "title1"
	StyleTitle2      TextStyle = "title2"
	StyleTitle3      TextStyle = "title3"
	StyleHeadline    TextStyle = "headline"
	StyleSubheadline TextStyle = "subheadline"
	StyleBody        TextStyle = "body"
	StyleCallout     TextStyle = "callout"
	StyleFootnote    TextStyle = "footnote"
	StyleCaption1    TextStyle = "caption1"
	StyleCaption2    TextStyle = "caption2"
)

// TextStyles lists the standard text styles.
var TextStyles = []TextStyle{
	StyleLargeTitle, StyleTitle1, StyleTitle2, StyleTitle3,
	StyleHeadline, StyleSubheadline, StyleBody, StyleCallout,
	StyleFootnote, StyleCaption1, StyleCaption2,
}

func (ExplicitFont) isDirective() {}
func (Size) isDirective()         {}
func (RelativeSize) isDirective() {}
func (TextStyle) isDirective()    {}

func (f ExplicitFont) String() string {
	if f.Font == nil {
		return "font(nil)"
	}
	return fmt.Sprintf("font(%s)", f.Font.Descriptor().Name)
}

func (s Size) String() string {
	return fmt.Sprintf("%gpt", float64(s))
}

func (r RelativeSize) String() string {
	return fmt.Sprintf("%g%%", r.Factor*100)
}
