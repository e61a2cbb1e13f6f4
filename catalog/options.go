// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package catalog

// Option configures a Catalog during creation.
type Option func(*config)

// config holds configuration for Catalog.
type config struct {
	standardFamily string
	bundled        bool
}

// defaultConfig returns the default catalog configuration.
func defaultConfig() config {
	return config{
		standardFamily: GoFamily,
		bundled:        true,
	}
}

// WithStandardFamily sets the family StandardFont picks from.
// The default is GoFamily.
func WithStandardFamily(family string) Option {
	return func(c *config) {
		c.standardFamily = family
	}
}

// WithoutBundledFonts creates the catalog without the Go fonts.
func WithoutBundledFonts() Option {
	return func(c *config) {
		c.bundled = false
	}
}
