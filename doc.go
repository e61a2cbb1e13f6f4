// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fontmatch resolves styling directives into one concrete font.
//
// # Overview
//
// Font systems expose discrete named variants ("Helvetica-BoldOblique")
// rather than an orthogonal weight × trait matrix. fontmatch takes a
// partially specified, possibly conflicting list of directives, merges it
// into one request, and picks the variant of the base family that best
// approximates it.
//
// Resolution runs in two steps:
//
//   - Merge folds an ordered []Directive into a Request
//   - Resolve searches the catalog for the best variant of the request
//
// # Quick Start
//
//	cat := catalog.New()
//	r := fontmatch.NewResolver(cat, textstyle.Default(cat),
//	    fontmatch.WithMonospaceFamily(catalog.GoMonoFamily))
//
//	f, err := r.Font(fontmatch.StyleHeadline, fontmatch.Italic, fontmatch.RelativeSize{Factor: 1.5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(f.Descriptor().Name)
//
//	// Or from an expression:
//	f, err = r.Parse("Go bold italic 20")
//
// # Directives
//
// Traits, Weight, Size, RelativeSize, TextStyle and ExplicitFont are the
// directive kinds. Traits accumulate; the others take the last value,
// except RelativeSize which scales the size resolved so far. When nothing
// sets a size, text renders at DefaultSize (17pt), which is not the
// ReportedSystemSize.
//
// # Collaborators
//
// The font data comes from a Catalog and semantic styles from a
// TextStyleService. The catalog package provides a Catalog backed by
// TrueType data, including the bundled Go fonts; the textstyle package
// provides a configurable TextStyleService.
package fontmatch
