// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fontmatch

// Option configures a Resolver during creation.
//
// Example:
//
//	r := fontmatch.NewResolver(cat, styles,
//	    fontmatch.WithMonospaceFamily("Go Mono"),
//	    fontmatch.WithDefaultSize(16),
//	)
type Option func(*Config)

// WithDefaultSize sets the size used when no size can be derived from the
// directives. Non-positive values are ignored.
func WithDefaultSize(size float64) Option {
	return func(c *Config) {
		if positive(size) {
			c.Size = size
		}
	}
}

// WithDefaultWeight sets the weight of the synthesized standard font.
// Invalid weights are ignored.
func WithDefaultWeight(w Weight) Option {
	return func(c *Config) {
		if w.Valid() {
			c.Weight = w
		}
	}
}

// WithMonospaceFamily sets the family tried for monospaced requests that
// carry no explicit font. An empty family disables the lookup.
func WithMonospaceFamily(family string) Option {
	return func(c *Config) {
		c.MonospaceFamily = family
	}
}
