// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package catalog

import "errors"

// Sentinel errors for the catalog package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("catalog: empty font data")

	// ErrDuplicateFace is returned when a face with the same name is
	// already registered.
	ErrDuplicateFace = errors.New("catalog: face already registered")

	// ErrUnnamedFont is returned when font data carries neither a
	// family nor a face name.
	ErrUnnamedFont = errors.New("catalog: font has no name")

	// ErrNoFontData is returned by Face.NewFace for placeholder faces
	// that carry no font data.
	ErrNoFontData = errors.New("catalog: face has no font data")
)
