// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package catalog

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontmatch"
)

// monospaceProbe are the runes compared to detect fixed-pitch fonts.
var monospaceProbe = [...]rune{'i', 'M', 'W', '.'}

// parsedFace is the result of describing one font file.
type parsedFace struct {
	desc fontmatch.Descriptor
	font *opentype.Font
}

// describe parses font data and extracts its descriptor.
// go-text supplies family and aspect; sfnt supplies names and advances.
func describe(data []byte) (parsedFace, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return parsedFace{}, fmt.Errorf("catalog: failed to parse font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return parsedFace{}, fmt.Errorf("catalog: failed to parse font: %w", err)
	}

	md := face.Describe()
	var buf sfnt.Buffer
	family := md.Family
	if family == "" {
		family = nameOf(f, &buf, sfnt.NameIDFamily)
	}
	name := nameOf(f, &buf, sfnt.NameIDPostScript, sfnt.NameIDFull)
	if name == "" {
		name = family
	}
	if name == "" {
		return parsedFace{}, ErrUnnamedFont
	}

	weight := weightOf(md.Aspect)
	if w, ok := namedWeight(nameOf(f, &buf, sfnt.NameIDFull), nameOf(f, &buf, sfnt.NameIDSubfamily)); ok {
		weight = w
	}
	traits := traitsOf(md.Aspect, weight)
	if isMonospace(f, &buf) {
		traits |= fontmatch.Monospace
	}

	return parsedFace{
		desc: fontmatch.Descriptor{
			Name:   name,
			Family: family,
			Traits: traits,
			Weight: weight,
		},
		font: f,
	}, nil
}

// nameOf returns the first non-empty name among ids.
func nameOf(f *opentype.Font, buf *sfnt.Buffer, ids ...sfnt.NameID) string {
	for _, id := range ids {
		if s, err := f.Name(buf, id); err == nil && s != "" {
			return s
		}
	}
	return ""
}

// weightOf converts the aspect weight to fontmatch's scale.
func weightOf(a font.Aspect) fontmatch.Weight {
	w := fontmatch.Weight(math.Round(float64(a.Weight)))
	if !w.Valid() {
		return fontmatch.WeightRegular
	}
	return w
}

// weightWords maps weight keywords found in font names to weights.
var weightWords = map[string]fontmatch.Weight{
	"hairline":   fontmatch.WeightUltraLight,
	"ultralight": fontmatch.WeightUltraLight,
	"extralight": fontmatch.WeightUltraLight,
	"thin":       fontmatch.WeightThin,
	"light":      fontmatch.WeightLight,
	"medium":     fontmatch.WeightMedium,
	"semibold":   fontmatch.WeightSemibold,
	"demibold":   fontmatch.WeightSemibold,
	"bold":       fontmatch.WeightBold,
	"extrabold":  fontmatch.WeightHeavy,
	"ultrabold":  fontmatch.WeightHeavy,
	"heavy":      fontmatch.WeightHeavy,
	"black":      fontmatch.WeightBlack,
}

// uprightWords mark a subfamily of regular weight.
var uprightWords = map[string]bool{
	"regular": true, "normal": true, "roman": true, "book": true,
	"italic": true, "oblique": true,
}

// namedWeight reads the weight spelled out in a face's subfamily or
// full name. A weight in the names wins over the aspect weight, which
// is 600 for Go Bold.
// A subfamily of only upright or slant words, such as "Italic", is
// regular weight.
func namedWeight(full, subfamily string) (fontmatch.Weight, bool) {
	for _, name := range []string{subfamily, full} {
		words := nameWords(name)
		for i, word := range words {
			// "Semi Bold" and "SemiBold" name the same weight.
			if i+1 < len(words) {
				if w, ok := weightWords[word+words[i+1]]; ok {
					return w, true
				}
			}
			if w, ok := weightWords[word]; ok {
				return w, true
			}
		}
	}
	words := nameWords(subfamily)
	if len(words) == 0 {
		return 0, false
	}
	for _, word := range words {
		if !uprightWords[word] {
			return 0, false
		}
	}
	return fontmatch.WeightRegular, true
}

// nameWords splits a font name into lower-case words.
func nameWords(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
}

// traitsOf derives symbolic traits from an aspect. Semibold and heavier
// faces carry the Bold trait.
func traitsOf(a font.Aspect, weight fontmatch.Weight) fontmatch.Traits {
	var t fontmatch.Traits
	if a.Style == font.StyleItalic {
		t |= fontmatch.Italic
	}
	if weight >= fontmatch.WeightSemibold {
		t |= fontmatch.Bold
	}
	switch {
	case a.Stretch == 0:
	case a.Stretch < font.StretchNormal:
		t |= fontmatch.Condensed
	case a.Stretch > font.StretchNormal:
		t |= fontmatch.Expanded
	}
	return t
}

// isMonospace reports whether the probe glyphs share one advance.
func isMonospace(f *opentype.Font, buf *sfnt.Buffer) bool {
	ppem := fixed.I(int(f.UnitsPerEm()))
	var first fixed.Int26_6
	for i, r := range monospaceProbe {
		gid, err := f.GlyphIndex(buf, r)
		if err != nil || gid == 0 {
			return false
		}
		adv, err := f.GlyphAdvance(buf, gid, ppem, xfont.HintingNone)
		if err != nil || adv == 0 {
			return false
		}
		if i == 0 {
			first = adv
		} else if adv != first {
			return false
		}
	}
	return true
}
