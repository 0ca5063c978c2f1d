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

package svg

import (
	"strings"

	"seehuhn.de/go/svgpdf/diag"
)

// Style holds the presentation properties which affect painting.
type Style struct {
	// Fill and Stroke are the raw paint tokens, for example "none",
	// "#ff0000" or the name of a spot color.
	Fill   string
	Stroke string

	FillOpacity   float64
	StrokeOpacity float64
	StrokeWidth   float64

	// FillRule is either "nonzero" or "evenodd".
	FillRule string
}

// DefaultStyle is the style of the root element, before any attributes
// are applied.
var DefaultStyle = Style{
	Fill:          "black",
	Stroke:        "none",
	FillOpacity:   1,
	StrokeOpacity: 1,
	StrokeWidth:   1,
	FillRule:      "nonzero",
}

// styleProperties lists the recognized presentation properties.
var styleProperties = []string{
	"fill", "stroke", "fill-opacity", "stroke-opacity", "opacity",
	"stroke-width", "fill-rule",
}

// ComputeStyle returns the style of node, given the style of its parent.
//
// Presentation attributes override the inherited values, and declarations
// in the inline style attribute override presentation attributes.  The
// value "inherit" keeps the inherited value.  The opacity property is
// multiplied into both fill-opacity and stroke-opacity and is not
// inherited by itself.
func ComputeStyle(node *Node, parent Style, log *diag.Log) Style {
	props := make(map[string]string)
	for _, name := range styleProperties {
		if val, ok := node.Attrs[name]; ok {
			props[name] = strings.TrimSpace(val)
		}
	}
	if inline, ok := node.Attrs["style"]; ok {
		for name, val := range parseInlineStyle(inline) {
			props[name] = val
		}
	}

	res := parent
	opacity := 1.0
	for _, name := range styleProperties {
		val, ok := props[name]
		if !ok || val == "inherit" {
			continue
		}
		switch name {
		case "fill":
			res.Fill = val
		case "stroke":
			res.Stroke = val
		case "fill-opacity", "stroke-opacity", "opacity":
			x, ok := parseFraction(val)
			if !ok {
				log.Addf(diag.Style, node.Offset, "invalid %s %q", name, val)
				continue
			}
			switch name {
			case "fill-opacity":
				res.FillOpacity = x
			case "stroke-opacity":
				res.StrokeOpacity = x
			default:
				opacity = x
			}
		case "stroke-width":
			x, ok := ParseLength(val)
			if !ok || x < 0 {
				log.Addf(diag.Style, node.Offset, "invalid stroke-width %q", val)
				continue
			}
			res.StrokeWidth = x
		case "fill-rule":
			if val != "nonzero" && val != "evenodd" {
				log.Addf(diag.Style, node.Offset, "invalid fill-rule %q", val)
				continue
			}
			res.FillRule = val
		}
	}
	res.FillOpacity *= opacity
	res.StrokeOpacity *= opacity
	return res
}

// parseInlineStyle splits the value of a style attribute into its
// declarations.  Properties which are not recognized are ignored.
func parseInlineStyle(s string) map[string]string {
	res := make(map[string]string)
	for _, decl := range strings.Split(s, ";") {
		name, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		val = strings.TrimSpace(val)
		val = strings.TrimSpace(strings.TrimSuffix(val, "!important"))
		res[name] = val
	}
	return res
}
