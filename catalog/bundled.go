// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package catalog

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// Family names of the bundled Go fonts.
const (
	GoFamily     = "Go"
	GoMonoFamily = "Go Mono"
)

// Bundled returns the TTF data of the Go fonts in registration order:
// Go Regular, Bold, Italic, Bold Italic, Medium, Medium Italic, then
// Go Mono and Go Smallcaps.
func Bundled() [][]byte {
	return [][]byte{
		goregular.TTF,
		gobold.TTF,
		goitalic.TTF,
		gobolditalic.TTF,
		gomedium.TTF,
		gomediumitalic.TTF,
		gomono.TTF,
		gomonobold.TTF,
		gomonoitalic.TTF,
		gomonobolditalic.TTF,
		gosmallcaps.TTF,
		gosmallcapsitalic.TTF,
	}
}
