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
	"seehuhn.de/go/svgpdf/internal/colconv"
	"seehuhn.de/go/svgpdf/pdf"
)

// == Lab ====================================================================

// SpaceLab represents the CIE 1976 L*a*b* color space with the D65 white
// point and a*, b* ranges of [-128, 127].
type SpaceLab struct{}

// Embed writes the color space array as an indirect object.
// This implements the [Space] interface.
func (s SpaceLab) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	wp := colconv.WhitePointD65
	dict := pdf.Dict{
		"WhitePoint": toPDF(wp[:]),
		"Range":      toPDF([]float64{colconv.ABMin, colconv.ABMax, colconv.ABMin, colconv.ABMax}),
	}
	return rm.Out.Write(pdf.Array{FamilyLab, dict})
}

// Family returns /Lab.
// This implements the [Space] interface.
func (s SpaceLab) Family() pdf.Name {
	return FamilyLab
}

// Channels returns 3.
// This implements the [Space] interface.
func (s SpaceLab) Channels() int {
	return 3
}

// Lab is a color in the D65 L*a*b* color space.
// L is in the range from 0 to 100, A and B are in the range from -128 to 127.
type Lab struct {
	L, A, B float64
}

// NewLab returns a new Lab color.  Components outside the valid ranges
// are clamped.
func NewLab(L, a, b float64) Lab {
	return Lab{
		L: colconv.Clamp(L, colconv.LMin, colconv.LMax),
		A: colconv.Clamp(a, colconv.ABMin, colconv.ABMax),
		B: colconv.Clamp(b, colconv.ABMin, colconv.ABMax),
	}
}

// ColorSpace implements the [Color] interface.
func (c Lab) ColorSpace() Space {
	return SpaceLabD65
}

// Values implements the [Color] interface.
func (c Lab) Values() []float64 {
	return []float64{c.L, c.A, c.B}
}

func (c Lab) isColor()       {}
func (c Lab) isReplacement() {}

// RGB converts the color to sRGB.
func (c Lab) RGB() RGB {
	r, g, b := colconv.LabToRGB(c.L, c.A, c.B)
	return RGB{R: r, G: g, B: b}
}
