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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Arc approximates an elliptical arc by cubic Bezier curves.
//
// The arc starts at p0 and ends at p1, on an ellipse with radii rx and ry
// whose x-axis is rotated by phi degrees.  The flags largeArc and sweep
// select one of the four candidate arcs, as for the SVG "A" command.
//
// If either radius is zero, the arc degenerates to a single straight line.
// If the end points coincide, the result is empty.  Radii which are too small
// to connect the end points are scaled up.  The arc is split into segments
// of at most 90 degrees, and the last curve ends exactly at p1.
func Arc(p0 vec.Vec2, rx, ry, phi float64, largeArc, sweep bool, p1 vec.Vec2) []Command {
	if rx == 0 || ry == 0 {
		return []Command{LineTo(p1)}
	}
	if p0 == p1 {
		return nil
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)

	// move into the coordinate system of the ellipse
	sinPhi, cosPhi := math.Sincos(phi * math.Pi / 180)
	dx2 := (p0.X - p1.X) / 2
	dy2 := (p0.Y - p1.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// enlarge the radii if needed
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// find the center
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
	den := rx2*y1p*y1p + ry2*x1p*x1p
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	// start angle and angular extent
	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	s4 := math.Sin(step / 4)
	t := 8.0 / 3.0 * s4 * s4 / math.Sin(step/2)

	// toUser maps a point on the unit circle to the ellipse
	toUser := func(x, y float64) vec.Vec2 {
		return vec.Vec2{
			X: cx + rx*cosPhi*x - ry*sinPhi*y,
			Y: cy + rx*sinPhi*x + ry*cosPhi*y,
		}
	}

	res := make([]Command, 0, n)
	a := theta
	for i := range n {
		b := a + step
		sinA, cosA := math.Sincos(a)
		sinB, cosB := math.Sincos(b)
		c1 := toUser(cosA-t*sinA, sinA+t*cosA)
		c2 := toUser(cosB+t*sinB, sinB-t*cosB)
		end := toUser(cosB, sinB)
		if i == n-1 {
			end = p1
		}
		res = append(res, CurveTo{c1, c2, end})
		a = b
	}
	return res
}
