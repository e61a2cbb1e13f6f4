// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package textstyle maps semantic text styles to fonts.
//
// A Table implements fontmatch.TextStyleService over a fontmatch.Catalog.
// Default returns the platform table; Load reads one from YAML:
//
//	fallback: body
//	styles:
//	  body:     {size: 17}
//	  headline: {size: 17, weight: semibold}
//	  code:     {family: Go Mono, size: 13}
//
// An empty family means the catalog's standard font.
package textstyle

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/fontmatch"
)

// ErrUnknownFallback is returned when a table's fallback style is not
// one of its styles.
var ErrUnknownFallback = errors.New("textstyle: fallback style not defined")

// InvalidStyleError is returned when a style cannot be used.
type InvalidStyleError struct {
	Style  fontmatch.TextStyle
	Reason string
}

func (e *InvalidStyleError) Error() string {
	return fmt.Sprintf("textstyle: invalid style %q: %s", e.Style, e.Reason)
}

// Style describes the font of one text style.
type Style struct {
	Family string           `yaml:"family"`
	Size   float64          `yaml:"size"`
	Weight fontmatch.Weight `yaml:"weight"`
}

// document is the YAML layout read by Load.
type document struct {
	Fallback fontmatch.TextStyle          `yaml:"fallback"`
	Styles   map[fontmatch.TextStyle]Style `yaml:"styles"`
}

// Table is a fixed set of text styles. It is immutable and safe for
// concurrent use when its catalog is.
type Table struct {
	catalog  fontmatch.Catalog
	styles   map[fontmatch.TextStyle]Style
	fallback fontmatch.TextStyle
	config   fontmatch.Config
}

var _ fontmatch.TextStyleService = (*Table)(nil)

// defaultStyles are the platform's text styles at the default content size.
var defaultStyles = map[fontmatch.TextStyle]Style{
	fontmatch.StyleLargeTitle:  {Size: 34, Weight: fontmatch.WeightRegular},
	fontmatch.StyleTitle1:      {Size: 28, Weight: fontmatch.WeightRegular},
	fontmatch.StyleTitle2:      {Size: 22, Weight: fontmatch.WeightRegular},
	fontmatch.StyleTitle3:      {Size: 20, Weight: fontmatch.WeightRegular},
	fontmatch.StyleHeadline:    {Size: 17, Weight: fontmatch.WeightSemibold},
	fontmatch.StyleSubheadline: {Size: 15, Weight: fontmatch.WeightRegular},
	fontmatch.StyleBody:        {Size: 17, Weight: fontmatch.WeightRegular},
	fontmatch.StyleCallout:     {Size: 16, Weight: fontmatch.WeightRegular},
	fontmatch.StyleFootnote:    {Size: 13, Weight: fontmatch.WeightRegular},
	fontmatch.StyleCaption1:    {Size: 12, Weight: fontmatch.WeightRegular},
	fontmatch.StyleCaption2:    {Size: 11, Weight: fontmatch.WeightRegular},
}

// Default returns the platform text style table with body as fallback.
func Default(cat fontmatch.Catalog, opts ...Option) *Table {
	t, err := New(cat, defaultStyles, fontmatch.StyleBody, opts...)
	if err != nil {
		panic("textstyle: invalid default table: " + err.Error())
	}
	return t
}

// New creates a Table. fallback is used for unknown styles and must be
// one of styles, or empty to fall back to the standard font. Styles
// without a size or weight take the configured defaults.
func New(cat fontmatch.Catalog, styles map[fontmatch.TextStyle]Style, fallback fontmatch.TextStyle, opts ...Option) (*Table, error) {
	if cat == nil {
		return nil, errors.New("textstyle: nil catalog")
	}
	config := fontmatch.DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if !(config.Size > 0) || math.IsInf(config.Size, 0) {
		config.Size = fontmatch.DefaultSize
	}
	if !config.Weight.Valid() {
		config.Weight = fontmatch.WeightRegular
	}
	copied := make(map[fontmatch.TextStyle]Style, len(styles))
	for style, st := range styles {
		if st.Size < 0 || math.IsNaN(st.Size) || math.IsInf(st.Size, 0) {
			return nil, &InvalidStyleError{Style: style, Reason: "size must be positive"}
		}
		if st.Size == 0 {
			st.Size = config.Size
		}
		if st.Weight == 0 {
			st.Weight = config.Weight
		}
		if !st.Weight.Valid() {
			return nil, &InvalidStyleError{Style: style, Reason: "weight out of range"}
		}
		copied[style] = st
	}
	if _, ok := copied[fallback]; fallback != "" && !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFallback, fallback)
	}
	return &Table{catalog: cat, styles: copied, fallback: fallback, config: config}, nil
}

// Load reads a YAML table.
func Load(r io.Reader, cat fontmatch.Catalog, opts ...Option) (*Table, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("textstyle: failed to decode table: %w", err)
	}
	return New(cat, doc.Styles, doc.Fallback, opts...)
}

// LoadFile reads a YAML table from a file.
func LoadFile(path string, cat fontmatch.Catalog, opts ...Option) (*Table, error) {
	// #nosec G304 -- Table path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textstyle: failed to open table: %w", err)
	}
	defer f.Close()
	return Load(f, cat, opts...)
}

// Style returns the font style registered for style.
func (t *Table) Style(style fontmatch.TextStyle) (Style, bool) {
	s, ok := t.styles[style]
	return s, ok
}

// PreferredFont implements fontmatch.TextStyleService. Unknown styles use
// the fallback style, and a table without one uses the standard font at
// the configured size and weight.
func (t *Table) PreferredFont(style fontmatch.TextStyle) fontmatch.Font {
	st, ok := t.styles[style]
	if !ok {
		st, ok = t.styles[t.fallback]
	}
	if !ok {
		return t.catalog.StandardFont(t.config.Size, t.config.Weight)
	}
	if st.Family != "" {
		if f, ok := t.catalog.Load(st.Family, st.Size); ok {
			// Pick the family member of the style's weight.
			req := fontmatch.Request{Font: f, Size: st.Size, Weight: st.Weight}
			return fontmatch.Resolve(req, t.catalog, t.config)
		}
		fontmatch.Logger().Warn("textstyle: family not found, using standard font",
			"style", style, "family", st.Family)
	}
	return t.catalog.StandardFont(st.Size, st.Weight)
}
