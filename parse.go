// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fontmatch

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// keywords maps case-folded tokens to the directives they stand for.
var keywords = buildKeywords()

func buildKeywords() map[string][]Directive {
	fold := cases.Fold()
	m := map[string][]Directive{
		"italic":     {Italic},
		"oblique":    {Italic},
		"condensed":  {Condensed},
		"expanded":   {Expanded},
		"monospace":  {Monospace},
		"monospaced": {Monospace},
		// Bold variants are matched by weight, so the keyword sets both.
		"bold": {Bold, WeightBold},
	}
	for name, w := range weightNames {
		if _, ok := m[name]; !ok {
			m[name] = []Directive{w}
		}
	}
	for _, s := range TextStyles {
		m[fold.String(string(s))] = []Directive{s}
	}
	return m
}

// ParseDirectives parses a whitespace-separated font expression.
//
// Recognized tokens, case-insensitive:
//   - traits: italic, oblique, condensed, expanded, monospace(d)
//   - bold, which sets both the Bold trait and WeightBold
//   - weights: ultralight, thin, light, regular, medium, semibold, heavy, black
//   - text styles: body, headline, title1 and the rest of TextStyles
//   - sizes: 18 or 18pt (absolute), 150% or 1.5em (relative)
//
// Any other run of words names a font: the longest leading run that cat
// can load at size becomes an ExplicitFont. A run that names no font is
// an *InvalidDirectiveError. A size that is not positive means DefaultSize.
func ParseDirectives(expr string, cat Catalog, size float64) ([]Directive, error) {
	if !positive(size) {
		size = DefaultSize
	}
	fold := cases.Fold()
	tokens := strings.Fields(expr)
	var out []Directive
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if ds, ok := keywords[fold.String(tok)]; ok {
			out = append(out, ds...)
			i++
			continue
		}
		if d, ok, err := parseSize(i, tok); ok {
			if err != nil {
				return nil, err
			}
			out = append(out, d)
			i++
			continue
		}

		// Collect the run of words up to the next recognized token.
		end := i + 1
		for end < len(tokens) && !isKeyword(fold, tokens[end]) {
			end++
		}
		next := -1
		for k := end; k > i; k-- {
			if f, ok := cat.Load(strings.Join(tokens[i:k], " "), size); ok {
				out = append(out, ExplicitFont{Font: f})
				next = k
				break
			}
		}
		if next < 0 {
			return nil, &InvalidDirectiveError{
				Index:  i,
				Value:  strings.Join(tokens[i:end], " "),
				Reason: "unknown font name",
			}
		}
		i = next
	}
	return out, nil
}

func isKeyword(fold cases.Caser, tok string) bool {
	if _, ok := keywords[fold.String(tok)]; ok {
		return true
	}
	_, ok, _ := parseSize(0, tok)
	return ok
}

// parseSize reports whether tok is a size token and parses it.
func parseSize(index int, tok string) (Directive, bool, error) {
	num, unit := tok, ""
	for _, suffix := range []string{"pt", "%", "em"} {
		if s, found := strings.CutSuffix(strings.ToLower(tok), suffix); found {
			num, unit = s, suffix
			break
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil, false, nil
	}
	if !positive(v) {
		return nil, true, &InvalidDirectiveError{Index: index, Value: tok, Reason: "size must be positive"}
	}
	switch unit {
	case "%":
		return RelativeSize{Factor: v / 100}, true, nil
	case "em":
		return RelativeSize{Factor: v}, true, nil
	default:
		return Size(v), true, nil
	}
}
