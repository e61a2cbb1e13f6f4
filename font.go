// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fontmatch

const (
	// DefaultSize is the point size text actually renders at when no size
	// is given. It is not ReportedSystemSize.
	DefaultSize = 17.0

	// ReportedSystemSize is the system font size the platform reports.
	// Text does not render at this size by default; it is kept only so
	// callers can tell the two apart.
	ReportedSystemSize = 14.0

	// DefaultMonospaceFamily is the family tried for monospaced requests
	// that carry no explicit font.
	DefaultMonospaceFamily = "Courier"
)

// Font is an opaque, loadable font handle at a specific size.
// Fonts are treated as immutable.
type Font interface {
	// Descriptor returns the font's family, traits, weight and size.
	Descriptor() Descriptor
}

// Descriptor is a read-only view of a concrete font.
type Descriptor struct {
	// Name is the variant name (e.g. "Helvetica-BoldOblique").
	Name string
	// Family is the family name shared by all variants.
	Family string
	// Traits are the font's own symbolic traits.
	Traits Traits
	// Weight is the font's own weight.
	Weight Weight
	// Size is the point size.
	Size float64
}

// Catalog enumerates and loads concrete fonts.
// Implementations must be safe for concurrent reads if the Resolver is
// used concurrently.
type Catalog interface {
	// VariantNames returns the variant names of a family in catalog order.
	// It returns nil if family is not a named multi-variant family.
	VariantNames(family string) []string

	// Load returns the font with the given variant or family name at size.
	Load(name string, size float64) (Font, bool)

	// WithTraits returns f with traits applied, or false if the
	// combination cannot be satisfied.
	WithTraits(f Font, traits Traits) (Font, bool)

	// WithSize returns f's own descriptor at size.
	WithSize(f Font, size float64) Font

	// StandardFont returns the platform's standard font. It always succeeds.
	StandardFont(size float64, weight Weight) Font
}

// TextStyleService supplies the preferred font for a semantic text style.
type TextStyleService interface {
	// PreferredFont always returns a font, falling back to a platform
	// default for unknown styles.
	PreferredFont(style TextStyle) Font
}

// Config holds the defaults shared by Merge and Resolve.
type Config struct {
	// Size is used when no size can be derived from the directives.
	Size float64
	// Weight is used for the synthesized standard font.
	Weight Weight
	// MonospaceFamily is tried for Monospace requests without a base font.
	MonospaceFamily string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Size:            DefaultSize,
		Weight:          WeightRegular,
		MonospaceFamily: DefaultMonospaceFamily,
	}
}
