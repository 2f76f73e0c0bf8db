// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package display

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor parses a color in #rrggbb or #rgb notation.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: wrong length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 3 {
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return color.NRGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}, nil
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
