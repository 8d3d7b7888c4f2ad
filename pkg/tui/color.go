// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import "os"

const (
	ColorReset = "\x1b[0m"
	ColorBold  = "\x1b[1m"
	ColorGreen = "\x1b[32m"
	ColorDim   = "\x1b[90m"
)

// Colorizer wraps text in ANSI colour codes when enabled.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that is enabled only if enabled is true
// and the environment does not opt out (NO_COLOR set, TERM unset or dumb).
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Wrap(code, text string) string {
	if !c.Enabled || code == "" {
		return text
	}
	return code + text + ColorReset
}

func (c Colorizer) Dim(text string) string   { return c.Wrap(ColorDim, text) }
func (c Colorizer) Bold(text string) string  { return c.Wrap(ColorBold, text) }
func (c Colorizer) Green(text string) string { return c.Wrap(ColorGreen, text) }
