// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/opentype"

	"github.com/gogpu/fontmatch"
)

// Catalog is a set of font faces grouped by family.
//
// Catalog implements fontmatch.Catalog and is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	faces    map[string]*entry
	families map[string][]*entry
	order    []*entry

	config config
}

// entry is one registered face. Its descriptor carries no size.
// A nil font marks a placeholder.
type entry struct {
	desc fontmatch.Descriptor
	font *opentype.Font
}

var _ fontmatch.Catalog = (*Catalog)(nil)

// New creates a Catalog. Unless WithoutBundledFonts is given, the Go
// fonts are registered first, in the order listed by Bundled.
func New(opts ...Option) *Catalog {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	c := &Catalog{
		faces:    make(map[string]*entry),
		families: make(map[string][]*entry),
		config:   config,
	}
	if config.bundled {
		for _, data := range Bundled() {
			if _, err := c.Add(data); err != nil {
				fontmatch.Logger().Warn("catalog: bundled font not registered", "err", err)
			}
		}
	}
	return c
}

// Add parses TTF or OTF data and registers the face.
// It returns the face's variant name.
func (c *Catalog) Add(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFontData
	}
	p, err := describe(data)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	name := p.desc.Name
	if _, ok := c.faces[name]; ok {
		return "", fmt.Errorf("%w: %s", ErrDuplicateFace, name)
	}
	e := &entry{desc: p.desc, font: p.font}
	c.faces[name] = e
	c.families[e.desc.Family] = append(c.families[e.desc.Family], e)
	c.order = append(c.order, e)

	fontmatch.Logger().Debug("catalog: registered face",
		"name", name, "family", e.desc.Family, "weight", e.desc.Weight, "traits", e.desc.Traits)
	return name, nil
}

// AddFile loads a font file and registers the face.
func (c *Catalog) AddFile(path string) (string, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("catalog: failed to read font file: %w", err)
	}
	return c.Add(data)
}

// Len returns the number of registered faces.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Families returns the registered family names in registration order.
func (c *Catalog) Families() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]bool, len(c.families))
	var out []string
	for _, e := range c.order {
		if !seen[e.desc.Family] {
			seen[e.desc.Family] = true
			out = append(out, e.desc.Family)
		}
	}
	return out
}

// VariantNames implements fontmatch.Catalog.
func (c *Catalog) VariantNames(family string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entries := c.families[family]
	if len(entries) == 0 {
		return nil
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.desc.Name
	}
	return names
}

// Load implements fontmatch.Catalog. name is a variant name or, failing
// that, a family name, in which case the upright face closest to regular
// weight is returned.
func (c *Catalog) Load(name string, size float64) (fontmatch.Font, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.faces[name]; ok {
		return &Face{e: e, size: size}, true
	}
	if e := pickUpright(c.families[name], fontmatch.WeightRegular); e != nil {
		return &Face{e: e, size: size}, true
	}
	return nil, false
}

// WithTraits implements fontmatch.Catalog. It returns the first face of
// f's family whose traits include traits.
func (c *Catalog) WithTraits(f fontmatch.Font, traits fontmatch.Traits) (fontmatch.Font, bool) {
	d := f.Descriptor()
	if d.Traits.Has(traits) {
		return c.WithSize(f, d.Size), true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.families[d.Family] {
		if e.desc.Traits.Has(traits) {
			return &Face{e: e, size: d.Size}, true
		}
	}
	return nil, false
}

// WithSize implements fontmatch.Catalog. Fonts from other catalogs are
// matched by name; unknown fonts become placeholder faces.
func (c *Catalog) WithSize(f fontmatch.Font, size float64) fontmatch.Font {
	if face, ok := f.(*Face); ok {
		return &Face{e: face.e, size: size}
	}
	d := f.Descriptor()
	c.mu.RLock()
	e, ok := c.faces[d.Name]
	c.mu.RUnlock()
	if !ok {
		d.Size = 0
		e = &entry{desc: d}
	}
	return &Face{e: e, size: size}
}

// StandardFont implements fontmatch.Catalog. It picks the upright face of
// the standard family closest to weight, then any upright face. A catalog
// with no faces returns a placeholder face named after the standard family.
func (c *Catalog) StandardFont(size float64, weight fontmatch.Weight) fontmatch.Font {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e := pickUpright(c.families[c.config.standardFamily], weight)
	if e == nil {
		e = pickUpright(c.order, weight)
	}
	if e == nil {
		e = &entry{desc: fontmatch.Descriptor{
			Name:   c.config.standardFamily,
			Family: c.config.standardFamily,
			Weight: weight,
		}}
	}
	return &Face{e: e, size: size}
}

// pickUpright returns the face closest to weight, preferring faces that
// are neither slanted nor stretched. Ties keep the earlier face.
func pickUpright(entries []*entry, weight fontmatch.Weight) *entry {
	const slanted = fontmatch.Italic | fontmatch.Condensed | fontmatch.Expanded
	var best *entry
	bestDist := 0
	for pass := 0; pass < 2 && best == nil; pass++ {
		for _, e := range entries {
			if pass == 0 && e.desc.Traits&slanted != 0 {
				continue
			}
			dist := int(e.desc.Weight - weight)
			if dist < 0 {
				dist = -dist
			}
			if best == nil || dist < bestDist {
				best, bestDist = e, dist
			}
		}
	}
	return best
}
