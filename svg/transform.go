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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgpdf/diag"
)

// ParseTransform interprets the value of an SVG transform attribute.
//
// The supported transform functions are translate, scale, rotate, matrix,
// skewX and skewY.  The functions in the list are applied from right to
// left, so that the last function is closest to the object.  Malformed
// items are reported to log and ignored.
func ParseTransform(s string, log *diag.Log) matrix.Matrix {
	total := matrix.Identity
	pos := 0
	for {
		for pos < len(s) && (isSpace(s[pos]) || s[pos] == ',') {
			pos++
		}
		if pos >= len(s) {
			break
		}

		start := pos
		for pos < len(s) && isLetter(s[pos]) {
			pos++
		}
		name := s[start:pos]
		for pos < len(s) && isSpace(s[pos]) {
			pos++
		}
		if name == "" || pos >= len(s) || s[pos] != '(' {
			log.Add(diag.Markup, start, "malformed transform")
			return total
		}
		end := strings.IndexByte(s[pos:], ')')
		if end < 0 {
			log.Add(diag.Markup, start, "unterminated transform")
			return total
		}
		args := ParseNumbers(s[pos+1 : pos+end])
		pos += end + 1

		m, ok := transformItem(name, args)
		if !ok {
			log.Addf(diag.Markup, start, "invalid transform %s(%s)", name, formatArgs(args))
			continue
		}
		total = m.Mul(total)
	}
	return total
}

// transformItem returns the matrix for a single transform function.
func transformItem(name string, args []float64) (matrix.Matrix, bool) {
	switch name {
	case "matrix":
		if len(args) != 6 {
			break
		}
		return matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}, true
	case "translate":
		switch len(args) {
		case 1:
			return matrix.Translate(args[0], 0), true
		case 2:
			return matrix.Translate(args[0], args[1]), true
		}
	case "scale":
		switch len(args) {
		case 1:
			return matrix.Scale(args[0], args[0]), true
		case 2:
			return matrix.Scale(args[0], args[1]), true
		}
	case "rotate":
		if len(args) != 1 && len(args) != 3 {
			break
		}
		s, c := math.Sincos(args[0] * math.Pi / 180)
		R := matrix.Matrix{c, s, -s, c, 0, 0}
		if len(args) == 3 {
			cx, cy := args[1], args[2]
			// translate(cx,cy) rotate(a) translate(-cx,-cy)
			R = matrix.Translate(-cx, -cy).Mul(R).Mul(matrix.Translate(cx, cy))
		}
		return R, true
	case "skewX":
		if len(args) != 1 {
			break
		}
		return matrix.Matrix{1, 0, math.Tan(args[0] * math.Pi / 180), 1, 0, 0}, true
	case "skewY":
		if len(args) != 1 {
			break
		}
		return matrix.Matrix{1, math.Tan(args[0] * math.Pi / 180), 0, 1, 0, 0}, true
	}
	return matrix.Identity, false
}

func formatArgs(args []float64) string {
	parts := make([]string, len(args))
	for i, x := range args {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
