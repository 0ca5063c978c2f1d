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

import "seehuhn.de/go/geom/vec"

// kappa is the distance of the Bezier control points from the end points,
// for a quarter circle of radius 1.
const kappa = 0.5522847498

// RectPath returns the outline of a rectangle with optional rounded
// corners.  A rectangle with non-positive width or height is empty.
// The corner radii are limited to half the width and half the height.
// If only one of rx and ry is positive, the other takes the same value.
func RectPath(x, y, w, h, rx, ry float64) Path {
	if !(w > 0 && h > 0) {
		return nil
	}
	switch {
	case rx > 0 && !(ry > 0):
		ry = rx
	case ry > 0 && !(rx > 0):
		rx = ry
	case !(rx > 0):
		rx, ry = 0, 0
	}
	rx = min(rx, w/2)
	ry = min(ry, h/2)

	if rx == 0 {
		return Path{
			MoveTo{X: x, Y: y},
			LineTo{X: x + w, Y: y},
			LineTo{X: x + w, Y: y + h},
			LineTo{X: x, Y: y + h},
			ClosePath{},
		}
	}

	res := Path{MoveTo{X: x + rx, Y: y}}
	corner := func(from, to vec.Vec2) {
		res = append(res, Arc(from, rx, ry, 0, false, true, to)...)
	}
	line := func(to vec.Vec2) {
		res = append(res, LineTo(to))
	}
	line(vec.Vec2{X: x + w - rx, Y: y})
	corner(vec.Vec2{X: x + w - rx, Y: y}, vec.Vec2{X: x + w, Y: y + ry})
	line(vec.Vec2{X: x + w, Y: y + h - ry})
	corner(vec.Vec2{X: x + w, Y: y + h - ry}, vec.Vec2{X: x + w - rx, Y: y + h})
	line(vec.Vec2{X: x + rx, Y: y + h})
	corner(vec.Vec2{X: x + rx, Y: y + h}, vec.Vec2{X: x, Y: y + h - ry})
	line(vec.Vec2{X: x, Y: y + ry})
	corner(vec.Vec2{X: x, Y: y + ry}, vec.Vec2{X: x + rx, Y: y})
	res = append(res, ClosePath{})
	return res
}

// EllipsePath returns the outline of an ellipse, approximated by four cubic
// Bezier curves.  An ellipse with a non-positive radius is empty.
func EllipsePath(cx, cy, rx, ry float64) Path {
	if !(rx > 0 && ry > 0) {
		return nil
	}
	kx := kappa * rx
	ky := kappa * ry
	return Path{
		MoveTo{X: cx + rx, Y: cy},
		CurveTo{{X: cx + rx, Y: cy + ky}, {X: cx + kx, Y: cy + ry}, {X: cx, Y: cy + ry}},
		CurveTo{{X: cx - kx, Y: cy + ry}, {X: cx - rx, Y: cy + ky}, {X: cx - rx, Y: cy}},
		CurveTo{{X: cx - rx, Y: cy - ky}, {X: cx - kx, Y: cy - ry}, {X: cx, Y: cy - ry}},
		CurveTo{{X: cx + kx, Y: cy - ry}, {X: cx + rx, Y: cy - ky}, {X: cx + rx, Y: cy}},
		ClosePath{},
	}
}

// LinePath returns a path consisting of a single straight line.
func LinePath(x1, y1, x2, y2 float64) Path {
	return Path{
		MoveTo{X: x1, Y: y1},
		LineTo{X: x2, Y: y2},
	}
}

// PolyPath returns the path through the given coordinate pairs.
// If the number of coordinates is odd, the last one is ignored.
// Polygons are closed, polylines are not.
func PolyPath(coords []float64, closed bool) Path {
	n := len(coords) / 2
	if n == 0 {
		return nil
	}
	res := make(Path, 0, n+1)
	res = append(res, MoveTo{X: coords[0], Y: coords[1]})
	for i := 1; i < n; i++ {
		res = append(res, LineTo{X: coords[2*i], Y: coords[2*i+1]})
	}
	if closed {
		res = append(res, ClosePath{})
	}
	return res
}
