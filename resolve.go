// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fontmatch

import (
	"cmp"
	"slices"
)

// candidate is a loaded variant and its match quality.
type candidate struct {
	font  Font
	score int
}

// Resolve selects the concrete font that best approximates req.
// It never fails: every lookup that cannot be satisfied degrades to the
// base font.
//
// The base font is req.Font, or a synthesized one: cfg.MonospaceFamily when
// Monospace is requested and that family loads, else the catalog's
// standard font at req.Weight (cfg.Weight if unset).
//
// For a family without named variants the requested traits are unioned
// into the base font's own traits. Otherwise every variant is scored:
// one point per requested trait among condensed, expanded, italic and
// monospace that the variant has, minus one for an unrequested italic,
// plus one for an exact weight match. Bold counts only through weight.
// The highest strictly positive score wins, and ties go to the variant
// listed first by the catalog.
func Resolve(req Request, cat Catalog, cfg Config) Font {
	size := req.Size
	if size == 0 {
		size = req.currentSize(cfg)
	}
	base := baseFont(req, size, cat, cfg)
	desc := base.Descriptor()
	log := Logger().With("family", desc.Family, "size", size, "traits", req.Traits, "weight", req.Weight)

	names := cat.VariantNames(desc.Family)
	if len(names) == 0 {
		if f, ok := cat.WithTraits(cat.WithSize(base, size), desc.Traits|req.Traits); ok {
			log.Debug("fontmatch: resolved", "name", f.Descriptor().Name, "variants", 0)
			return f
		}
		log.Debug("fontmatch: trait union unsatisfied, using base font", "name", desc.Name)
		return cat.WithSize(base, size)
	}

	candidates := make([]candidate, 0, len(names))
	for _, name := range names {
		f, ok := cat.Load(name, size)
		if !ok {
			log.Debug("fontmatch: skipping variant that does not load", "name", name)
			continue
		}
		candidates = append(candidates, candidate{
			font:  f,
			score: matchQuality(f.Descriptor(), req.Traits, req.Weight),
		})
	}
	// Stable, so catalog order breaks ties.
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(b.score, a.score)
	})

	if len(candidates) > 0 && candidates[0].score > 0 {
		best := candidates[0]
		log.Debug("fontmatch: resolved", "name", best.font.Descriptor().Name, "score", best.score, "variants", len(names))
		return best.font
	}
	log.Debug("fontmatch: resolved", "name", desc.Name, "score", 0, "variants", len(names))
	return cat.WithSize(base, size)
}

// baseFont returns the explicit base font or synthesizes one.
func baseFont(req Request, size float64, cat Catalog, cfg Config) Font {
	if req.Font != nil {
		return req.Font
	}
	if req.Traits.Has(Monospace) && cfg.MonospaceFamily != "" {
		if f, ok := cat.Load(cfg.MonospaceFamily, size); ok {
			return f
		}
	}
	weight := req.Weight
	if weight == 0 {
		weight = cfg.Weight
	}
	return cat.StandardFont(size, weight)
}

// matchQuality scores a variant against the requested traits and weight.
// A zero weight never matches.
func matchQuality(variant Descriptor, traits Traits, weight Weight) int {
	q := 0
	for _, t := range scoredTraits {
		if traits.Has(t) && variant.Traits.Has(t) {
			q++
		}
	}
	if variant.Traits.Has(Italic) && !traits.Has(Italic) {
		q--
	}
	if weight != 0 && variant.Weight == weight {
		q++
	}
	return q
}
