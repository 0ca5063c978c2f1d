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
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgpdf/internal/colconv"
)

// This file implements the operators in the "General Graphics State" and
// "Special graphics state" categories.

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (w *Writer) PushGraphicsState() {
	w.stack = append(w.stack, w.State)
	w.writeOp(w.Content, "q")
}

// PopGraphicsState restores the previous graphics state.
// If there is no saved state, the call is ignored.
//
// This implements the PDF graphics operator "Q".
func (w *Writer) PopGraphicsState() {
	n := len(w.stack) - 1
	if n < 0 {
		return
	}
	w.State = w.stack[n]
	w.stack = w.stack[:n]
	w.writeOp(w.Content, "Q")
}

// Transform applies a transformation matrix to the coordinate system.
// The new transformation is applied before the existing one, i.e. in
// the local coordinate system.
//
// This implements the PDF graphics operator "cm".
func (w *Writer) Transform(extraTrfm matrix.Matrix) {
	for i := range extraTrfm {
		extraTrfm[i] = w.num("Transform", extraTrfm[i])
	}
	w.CTM = extraTrfm.Mul(w.CTM)
	w.writeOp(w.Content, "cm", extraTrfm[:]...)
}

// Translate moves the origin of the coordinate system.
func (w *Writer) Translate(dx, dy float64) {
	w.nums("Translate", &dx, &dy)
	w.Transform(matrix.Translate(dx, dy))
}

// Scale scales the coordinate system.
func (w *Writer) Scale(sx, sy float64) {
	w.nums("Scale", &sx, &sy)
	w.Transform(matrix.Scale(sx, sy))
}

// Rotate rotates the coordinate system counterclockwise by the given angle
// (in radians).
func (w *Writer) Rotate(phi float64) {
	phi = w.num("Rotate", phi)
	c, s := math.Cos(phi), math.Sin(phi)
	w.Transform(matrix.Matrix{c, s, -s, c, 0, 0})
}

// SetLineWidth sets the line width used by subsequent stroke operations.
// Negative values are replaced by 0.
func (w *Writer) SetLineWidth(width float64) {
	w.LineWidth = max(w.num("SetLineWidth", width), 0)
}

// SetFillAlpha sets the opacity used by subsequent fill operations.
// The value is clamped to the range from 0 to 1.
func (w *Writer) SetFillAlpha(alpha float64) {
	w.FillAlpha = colconv.Clamp(w.num("SetFillAlpha", alpha), 0, 1)
}

// SetStrokeAlpha sets the opacity used by subsequent stroke operations.
// The value is clamped to the range from 0 to 1.
func (w *Writer) SetStrokeAlpha(alpha float64) {
	w.StrokeAlpha = colconv.Clamp(w.num("SetStrokeAlpha", alpha), 0, 1)
}

// setAlpha makes sure that the opacities in the content stream match
// the requested ones.  Nothing is emitted if the values already in effect
// are the requested ones.
//
// This implements the PDF graphics operator "gs".
func (w *Writer) setAlpha(fill, stroke bool) {
	var gs ExtGState
	if fill && w.FillAlpha != w.outFillAlpha {
		gs.SetFill = true
		gs.FillAlpha = w.FillAlpha
	}
	if stroke && w.StrokeAlpha != w.outStrokeAlpha {
		gs.SetStroke = true
		gs.StrokeAlpha = w.StrokeAlpha
	}
	if !gs.SetFill && !gs.SetStroke {
		return
	}

	name := w.getResourceName(catExtGState, gs)
	if w.Err != nil {
		return
	}
	w.Err = name.PDF(w.Content)
	w.writeOp(w.Content, " gs")

	if gs.SetFill {
		w.outFillAlpha = gs.FillAlpha
	}
	if gs.SetStroke {
		w.outStrokeAlpha = gs.StrokeAlpha
	}
}
