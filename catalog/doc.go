// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package catalog provides a fontmatch.Catalog backed by TrueType and
// OpenType font data.
//
// A Catalog groups faces into families and hands out immutable *Face
// handles at a point size. New registers the bundled Go fonts
// (golang.org/x/image/font/gofont), so a fresh catalog can resolve
// anything out of the box:
//
//	cat := catalog.New()
//	name, err := cat.AddFile("fonts/Inter-Italic.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The bundled catalog has no Courier, fontmatch's default monospace
// family. Point the resolver at Go Mono instead:
//
//	r := fontmatch.NewResolver(cat, nil, fontmatch.WithMonospaceFamily(catalog.GoMonoFamily))
//
// Family, style and stretch come from go-text/typesetting's font
// description. Weight comes from the weight words of the face's full
// name or subfamily when there are any, and from the OS/2 class
// otherwise. Variant names are PostScript names from the sfnt name
// table. Monospace is detected from glyph advances.
//
// Catalog is safe for concurrent use.
package catalog
