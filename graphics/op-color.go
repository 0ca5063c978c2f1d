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

package graphics

import (
	"strings"

	"seehuhn.de/go/svgpdf/graphics/color"
)

// This file implements functions to set the stroke and fill colors.
// Colors are written to the content stream just before a path is painted.

// SetStrokeColor sets the color to use for stroking operations.
func (w *Writer) SetStrokeColor(c color.Color) {
	if c == nil {
		return
	}
	w.StrokeColor = c
}

// SetFillColor sets the color to use for non-stroking operations.
func (w *Writer) SetFillColor(c color.Color) {
	if c == nil {
		return
	}
	w.FillColor = c
}

// writeColor writes the operators which select a color.  Colors outside the
// device color spaces first select their color space, using "CS" or "cs".
//
// This implements the PDF graphics operators "RG", "rg", "K", "k", "CS",
// "cs", "SC", "sc", "SCN" and "scn".
func (w *Writer) writeColor(c color.Color, stroke bool) {
	if w.Err != nil {
		return
	}
	values, op := color.Operator(c)
	csOp := "CS"
	if !stroke {
		op = strings.ToLower(op)
		csOp = "cs"
	}

	if cs := c.ColorSpace(); !color.IsDevice(cs) {
		name := w.getResourceName(catColorSpace, cs)
		w.Err = name.PDF(w.Content)
		w.writeOp(w.Content, " "+csOp)
	}
	for i := range values {
		values[i] = w.num("color", values[i])
	}
	w.writeOp(w.Content, op, values...)
}
