// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fontmatch

import (
	"fmt"
	"strconv"
	"strings"
)

// Weight is a font stroke weight on the usual 1..1000 scale.
// The zero value means "unspecified". Weight is a Directive.
type Weight int

// Named weights.
const (
	WeightUltraLight Weight = 100
	WeightThin       Weight = 200
	WeightLight      Weight = 300
	WeightRegular    Weight = 400
	WeightMedium     Weight = 500
	WeightSemibold   Weight = 600
	WeightBold       Weight = 700
	WeightHeavy      Weight = 800
	WeightBlack      Weight = 900
)

var weightNames = map[string]Weight{
	"ultralight": WeightUltraLight,
	"thin":       WeightThin,
	"light":      WeightLight,
	"regular":    WeightRegular,
	"medium":     WeightMedium,
	"semibold":   WeightSemibold,
	"bold":       WeightBold,
	"heavy":      WeightHeavy,
	"black":      WeightBlack,
}

// Valid reports whether w is within 1..1000.
func (w Weight) Valid() bool {
	return w >= 1 && w <= 1000
}

// String returns the weight name for named weights, the number otherwise.
func (w Weight) String() string {
	for name, v := range weightNames {
		if v == w {
			return name
		}
	}
	return strconv.Itoa(int(w))
}

// ParseWeight parses a weight name (case-insensitive) or a number.
func ParseWeight(s string) (Weight, error) {
	s = strings.TrimSpace(s)
	if w, ok := weightNames[strings.ToLower(s)]; ok {
		return w, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Weight(n).Valid() {
		return 0, fmt.Errorf("fontmatch: invalid weight %q", s)
	}
	return Weight(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (w Weight) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Weight) UnmarshalText(text []byte) error {
	v, err := ParseWeight(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

func (Weight) isDirective() {}
