// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fontmatch

// Resolver binds a Catalog, a TextStyleService and a Config.
// It holds no mutable state and is safe for concurrent use when its
// collaborators are.
type Resolver struct {
	catalog Catalog
	styles  TextStyleService
	config  Config
}

// NewResolver creates a Resolver. styles may be nil, in which case
// TextStyle directives are rejected.
//
// Monospace requests without an explicit font try DefaultMonospaceFamily
// unless WithMonospaceFamily names another family. When cat does not
// have that family they fall back to the standard font.
//
// Panics if cat is nil.
func NewResolver(cat Catalog, styles TextStyleService, opts ...Option) *Resolver {
	if cat == nil {
		panic("fontmatch: NewResolver called with nil Catalog")
	}
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Resolver{
		catalog: cat,
		styles:  styles,
		config:  config,
	}
}

// Config returns the resolver's configuration.
func (r *Resolver) Config() Config {
	return r.config
}

// Catalog returns the resolver's catalog.
func (r *Resolver) Catalog() Catalog {
	return r.catalog
}

// Merge folds directives into a Request. See Merge.
func (r *Resolver) Merge(directives ...Directive) (Request, error) {
	return Merge(directives, r.styles, r.config)
}

// Resolve selects the best font for req. See Resolve.
func (r *Resolver) Resolve(req Request) Font {
	return Resolve(req, r.catalog, r.config)
}

// Font merges directives and resolves the result.
func (r *Resolver) Font(directives ...Directive) (Font, error) {
	req, err := r.Merge(directives...)
	if err != nil {
		return nil, err
	}
	return r.Resolve(req), nil
}

// Parse parses a font expression such as "Go bold italic 18" and
// resolves it. Named fonts load at the resolver's default size.
// See ParseDirectives for the syntax.
func (r *Resolver) Parse(expr string) (Font, error) {
	directives, err := ParseDirectives(expr, r.catalog, r.config.Size)
	if err != nil {
		return nil, err
	}
	return r.Font(directives...)
}
