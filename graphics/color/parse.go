// seehuhn.de/go/svgpdf - render SVG drawings into PDF files
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package color

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// IsNone reports whether an SVG paint token means "no paint".
func IsNone(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "none", "transparent":
		return true
	}
	return false
}

// ParseRGB parses an SVG color token.  The supported forms are
// "#rgb", "#rrggbb", "rgb(r, g, b)" with integer or percentage
// components, and the SVG 1.1 color keywords.
func ParseRGB(token string) (RGB, bool) {
	s := strings.ToLower(strings.TrimSpace(token))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[4 : len(s)-1])
	}
	if c, ok := colornames.Map[s]; ok {
		return RGB{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}, true
	}
	return RGB{}, false
}

func parseHex(s string) (RGB, bool) {
	var v [3]uint64
	switch len(s) {
	case 3:
		for i := range v {
			x, err := strconv.ParseUint(s[i:i+1], 16, 8)
			if err != nil {
				return RGB{}, false
			}
			v[i] = x * 17
		}
	case 6:
		for i := range v {
			x, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
			if err != nil {
				return RGB{}, false
			}
			v[i] = x
		}
	default:
		return RGB{}, false
	}
	return RGB{
		R: float64(v[0]) / 255,
		G: float64(v[1]) / 255,
		B: float64(v[2]) / 255,
	}, true
}

// parseFunc parses the argument list of "rgb(...)".
func parseFunc(args string) (RGB, bool) {
	fields := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 3 {
		return RGB{}, false
	}
	var v [3]float64
	for i, f := range fields {
		scale := 255.0
		if strings.HasSuffix(f, "%") {
			f = f[:len(f)-1]
			scale = 100
		}
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return RGB{}, false
		}
		v[i] = x / scale
	}
	return NewRGB(v[0], v[1], v[2]), true
}
