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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgpdf/graphics/color"
)

// State holds the graphics state parameters tracked by a [Writer].
type State struct {
	// CTM is the current transformation matrix.
	CTM matrix.Matrix

	FillColor   color.Color
	StrokeColor color.Color

	// FillAlpha and StrokeAlpha are the opacities for filling and stroking,
	// in the range from 0 to 1.
	FillAlpha   float64
	StrokeAlpha float64

	LineWidth float64

	// The opacities currently in effect in the content stream.
	outFillAlpha   float64
	outStrokeAlpha float64
}

// NewState returns the initial graphics state of a page.
func NewState() State {
	return State{
		CTM:            matrix.Identity,
		FillColor:      color.RGB{},
		StrokeColor:    color.RGB{},
		FillAlpha:      1,
		StrokeAlpha:    1,
		LineWidth:      1,
		outFillAlpha:   1,
		outStrokeAlpha: 1,
	}
}
