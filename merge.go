// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fontmatch

import (
	"fmt"
	"math"
)

// Request is the normalized result of merging directives.
// A nil Font, zero Size and zero Weight mean "unset".
type Request struct {
	Font   Font
	Size   float64
	Weight Weight
	Traits Traits
}

// Merge folds directives left to right into a Request.
//
// Traits accumulate and are never cleared. ExplicitFont, Weight and Size
// replace earlier values. RelativeSize multiplies the size resolved so far
// (the current size, else the current base font's size, else cfg.Size) and
// stores the product. TextStyle takes the preferred font's size, and its
// font only when no base font is set yet.
//
// After the fold an unset size is taken from the base font, or cfg.Size.
//
// Merge returns an *InvalidDirectiveError for the first directive it
// cannot apply. styles may be nil if no TextStyle directive is present.
func Merge(directives []Directive, styles TextStyleService, cfg Config) (Request, error) {
	var req Request
	for i, d := range directives {
		switch d := d.(type) {
		case ExplicitFont:
			if d.Font == nil {
				return Request{}, invalid(i, d, "nil font")
			}
			req.Font = d.Font
		case Traits:
			if !d.Valid() {
				return Request{}, invalid(i, d, "unknown trait bits")
			}
			req.Traits |= d
		case Weight:
			if !d.Valid() {
				return Request{}, invalid(i, int(d), "weight out of range")
			}
			req.Weight = d
		case Size:
			if !positive(float64(d)) {
				return Request{}, invalid(i, d, "size must be positive")
			}
			req.Size = float64(d)
		case RelativeSize:
			if !positive(d.Factor) {
				return Request{}, invalid(i, d, "factor must be positive")
			}
			req.Size = req.currentSize(cfg) * d.Factor
		case TextStyle:
			if d == "" {
				return Request{}, invalid(i, d, "empty text style")
			}
			if styles == nil {
				return Request{}, invalid(i, d, "no text style service")
			}
			preferred := styles.PreferredFont(d)
			req.Size = preferred.Descriptor().Size
			if req.Font == nil {
				req.Font = preferred
			}
		default:
			return Request{}, invalid(i, d, "")
		}
	}
	if req.Size == 0 {
		req.Size = req.currentSize(cfg)
	}
	return req, nil
}

// currentSize returns the size accumulated so far.
func (r *Request) currentSize(cfg Config) float64 {
	if r.Size != 0 {
		return r.Size
	}
	if r.Font != nil {
		if s := r.Font.Descriptor().Size; s > 0 {
			return s
		}
	}
	return cfg.Size
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func invalid(index int, v any, reason string) *InvalidDirectiveError {
	value := "<nil>"
	if v != nil {
		value = fmt.Sprint(v)
	}
	return &InvalidDirectiveError{Index: index, Value: value, Reason: reason}
}
