// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package textstyle

import "github.com/gogpu/fontmatch"

// Option configures a Table during creation.
type Option func(*fontmatch.Config)

// WithConfig makes the table use cfg instead of fontmatch.DefaultConfig:
// cfg.Size sizes styles without a size and the table without a fallback,
// and cfg is passed to fontmatch.Resolve for styles with a family.
// Pass the same configuration as the Resolver the table serves.
func WithConfig(cfg fontmatch.Config) Option {
	return func(c *fontmatch.Config) {
		*c = cfg
	}
}
