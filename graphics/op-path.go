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

// This file implements the "Path Construction" and "Path Painting"
// operators.

// kappa is the distance of the Bézier control points from the end points
// when a quarter circle of radius 1 is approximated by a cubic Bézier curve.
const kappa = 0.5522847498

// FillRule selects how the inside of a path is determined.
type FillRule int

// The fill rules supported by PDF.
const (
	NonZero FillRule = iota
	EvenOdd
)

// MoveTo starts a new path at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(x, y float64) {
	w.nums("MoveTo", &x, &y)
	w.currentX, w.currentY = x, y
	w.startX, w.startY = x, y
	w.hasCurrent = true
	w.pathIsClosed = false
	w.addPath("m", x, y)
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(x, y float64) {
	w.nums("LineTo", &x, &y)
	if !w.hasCurrent {
		w.MoveTo(x, y)
		return
	}
	w.currentX, w.currentY = x, y
	w.pathIsClosed = false
	w.addPath("l", x, y)
}

// CurveTo appends a cubic Bezier curve to the current path.
//
// This implements the PDF graphics operator "c".
func (w *Writer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	w.nums("CurveTo", &x1, &y1, &x2, &y2, &x3, &y3)
	if !w.hasCurrent {
		w.MoveTo(x1, y1)
	}
	w.currentX, w.currentY = x3, y3
	w.pathIsClosed = false
	w.addPath("c", x1, y1, x2, y2, x3, y3)
}

// QuadraticCurveTo appends a quadratic Bezier curve to the current path.
// The curve is converted into the equivalent cubic Bezier curve.
func (w *Writer) QuadraticCurveTo(x1, y1, x2, y2 float64) {
	w.nums("QuadraticCurveTo", &x1, &y1, &x2, &y2)
	if !w.hasCurrent {
		w.MoveTo(x1, y1)
	}
	x0, y0 := w.currentX, w.currentY
	w.CurveTo(
		x0+2.0/3.0*(x1-x0), y0+2.0/3.0*(y1-y0),
		x2+2.0/3.0*(x1-x2), y2+2.0/3.0*(y1-y2),
		x2, y2,
	)
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (w *Writer) ClosePath() {
	if !w.hasCurrent {
		return
	}
	w.currentX, w.currentY = w.startX, w.startY
	w.pathIsClosed = true
	w.addPath("h")
}

// Rectangle appends a rectangle to the current path as a closed subpath.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	w.nums("Rectangle", &x, &y, &width, &height)
	w.currentX, w.currentY = x, y
	w.startX, w.startY = x, y
	w.hasCurrent = true
	w.pathIsClosed = true
	w.addPath("re", x, y, width, height)
}

// Circle appends a circle to the current path, as a closed subpath.
func (w *Writer) Circle(x, y, radius float64) {
	w.Ellipse(x, y, radius, radius)
}

// Ellipse appends an axis-aligned ellipse to the current path, as a closed
// subpath.  The ellipse is approximated by four cubic Bezier curves.
func (w *Writer) Ellipse(x, y, rx, ry float64) {
	w.nums("Ellipse", &x, &y, &rx, &ry)
	kx := kappa * rx
	ky := kappa * ry

	w.MoveTo(x+rx, y)
	w.CurveTo(x+rx, y+ky, x+kx, y+ry, x, y+ry)
	w.CurveTo(x-kx, y+ry, x-rx, y+ky, x-rx, y)
	w.CurveTo(x-rx, y-ky, x-kx, y-ry, x, y-ry)
	w.CurveTo(x+kx, y-ry, x+rx, y-ky, x+rx, y)
	w.ClosePath()
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (w *Writer) Stroke() {
	w.paint(false, true, "S")
}

// Fill fills the current path, using the given fill rule.  Any subpaths
// that are open are implicitly closed before being filled.
//
// This implements the PDF graphics operators "f" and "f*".
func (w *Writer) Fill(rule FillRule) {
	w.paint(true, false, ifelse(rule == EvenOdd, "f*", "f"))
}

// FillAndStroke fills and strokes the current path, using the given fill
// rule.  Any subpaths that are open are implicitly closed before being
// filled.
//
// This implements the PDF graphics operators "B" and "B*".
func (w *Writer) FillAndStroke(rule FillRule) {
	w.paint(true, true, ifelse(rule == EvenOdd, "B*", "B"))
}

// EndPath ends the path without filling or stroking it.
//
// This implements the PDF graphics operator "n".
func (w *Writer) EndPath() {
	if !w.hasPath {
		return
	}
	w.flushPath()
	w.writeOp(w.Content, "n")
}

// paint writes the color, opacity and line width operators required
// for painting, followed by the path and the painting operator.
// If no path has been constructed, nothing is written.
func (w *Writer) paint(fill, stroke bool, op string) {
	if !w.hasPath {
		return
	}

	if fill {
		w.writeColor(w.FillColor, false)
	}
	if stroke {
		w.writeColor(w.StrokeColor, true)
	}
	w.setAlpha(fill, stroke)
	if stroke {
		w.writeOp(w.Content, "w", w.LineWidth)
	}
	w.flushPath()
	w.writeOp(w.Content, op)
}

func (w *Writer) addPath(op string, args ...float64) {
	w.hasPath = true
	w.writeOp(&w.path, op, args...)
}

func (w *Writer) flushPath() {
	if w.Err == nil {
		_, w.Err = w.Content.Write(w.path.Bytes())
	}
	w.path.Reset()
	w.hasPath = false
	w.hasCurrent = false
}

func ifelse[T any](c bool, a, b T) T {
	if c {
		return a
	}
	return b
}
