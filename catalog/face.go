// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package catalog

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/fontmatch"
)

// Face is a catalog font at a point size. Faces are immutable and safe
// for concurrent use.
type Face struct {
	e    *entry
	size float64
}

var _ fontmatch.Font = (*Face)(nil)

// Descriptor implements fontmatch.Font.
func (f *Face) Descriptor() fontmatch.Descriptor {
	d := f.e.desc
	d.Size = f.size
	return d
}

// Size returns the face's point size.
func (f *Face) Size() float64 {
	return f.size
}

// HasData reports whether the face carries font data. Placeholder faces
// stand in for fonts the catalog does not hold.
func (f *Face) HasData() bool {
	return f.e.font != nil
}

// NewFace returns a rasterizable face at the face's size, 72 DPI and full
// hinting. The returned font.Face is not safe for concurrent use.
func (f *Face) NewFace(opts ...FaceOption) (xfont.Face, error) {
	if f.e.font == nil {
		return nil, ErrNoFontData
	}
	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return opentype.NewFace(f.e.font, &opentype.FaceOptions{
		Size:    f.size,
		DPI:     config.dpi,
		Hinting: config.hinting,
	})
}

// FaceOption configures Face.NewFace.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for NewFace.
type faceConfig struct {
	dpi     float64
	hinting xfont.Hinting
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		dpi:     72,
		hinting: xfont.HintingFull,
	}
}

// WithDPI sets the resolution NewFace rasterizes at.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		c.dpi = dpi
	}
}

// WithHinting sets the hinting mode NewFace uses.
func WithHinting(h xfont.Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}
