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

// Package colconv implements conversions between sRGB, CIE XYZ, CIE L*a*b*
// and naive device CMYK values.
//
// All conversions use the D65 reference white.
package colconv

import (
	"math"

	"golang.org/x/exp/constraints"
)

// WhitePointD65 is the CIE 1931 XYZ tristimulus value of the D65 white point,
// normalized to Y = 1.
var WhitePointD65 = [3]float64{0.95047, 1.0, 1.08883}

// Component ranges of the L*a*b* values produced by this package.
const (
	LMin  = 0.0
	LMax  = 100.0
	ABMin = -128.0
	ABMax = 127.0
)

const (
	labEpsilon    = 0.008856
	labEpsilonInv = 0.206897
	labKappa      = 7.787
	labOffset     = 16.0 / 116.0
)

// == sRGB <-> XYZ ============================================================

// RGBToXYZ converts sRGB values (0-1 range) to CIE XYZ.
func RGBToXYZ(r, g, b float64) (x, y, z float64) {
	r = decompand(r)
	g = decompand(g)
	b = decompand(b)

	x = 0.4124564*r + 0.3575761*g + 0.1804375*b
	y = 0.2126729*r + 0.7151522*g + 0.0721750*b
	z = 0.0193339*r + 0.1191920*g + 0.9503041*b
	return x, y, z
}

// XYZToRGB converts CIE XYZ values to sRGB.  The results are clamped
// to the range 0-1.
func XYZToRGB(x, y, z float64) (r, g, b float64) {
	r = 3.2404542*x - 1.5371385*y - 0.4985314*z
	g = -0.9692660*x + 1.8760108*y + 0.0415560*z
	b = 0.0556434*x - 0.2040259*y + 1.0572252*z

	r = Clamp(compand(r), 0, 1)
	g = Clamp(compand(g), 0, 1)
	b = Clamp(compand(b), 0, 1)
	return r, g, b
}

// decompand removes the sRGB transfer curve.
func decompand(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// compand applies the sRGB transfer curve.
func compand(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// == XYZ <-> L*a*b* ==========================================================

// XYZToLab converts CIE XYZ values to L*a*b*, relative to the D65 white
// point.  The results are clamped to the valid component ranges.
func XYZToLab(x, y, z float64) (L, A, B float64) {
	fx := labF(x / WhitePointD65[0])
	fy := labF(y / WhitePointD65[1])
	fz := labF(z / WhitePointD65[2])

	L = Clamp(116*fy-16, LMin, LMax)
	A = Clamp(500*(fx-fy), ABMin, ABMax)
	B = Clamp(200*(fy-fz), ABMin, ABMax)
	return L, A, B
}

// LabToXYZ converts L*a*b* values, relative to the D65 white point,
// to CIE XYZ.
func LabToXYZ(L, A, B float64) (x, y, z float64) {
	fy := (L + 16) / 116
	fx := A/500 + fy
	fz := fy - B/200

	x = labFInv(fx) * WhitePointD65[0]
	y = labFInv(fy) * WhitePointD65[1]
	z = labFInv(fz) * WhitePointD65[2]
	return x, y, z
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}

func labFInv(t float64) float64 {
	if t > labEpsilonInv {
		return t * t * t
	}
	return (t - labOffset) / labKappa
}

// == Combined ================================================================

// RGBToLab converts sRGB values (0-1 range) to L*a*b*.
func RGBToLab(r, g, b float64) (L, A, B float64) {
	return XYZToLab(RGBToXYZ(r, g, b))
}

// LabToRGB converts L*a*b* values to sRGB (0-1 range).
func LabToRGB(L, A, B float64) (r, g, b float64) {
	return XYZToRGB(LabToXYZ(L, A, B))
}

// RGBToCMYK converts RGB values (0-1 range) to CMYK, using the naive
// device formula without under color removal.
func RGBToCMYK(r, g, b float64) (c, m, y, k float64) {
	r = Clamp(r, 0, 1)
	g = Clamp(g, 0, 1)
	b = Clamp(b, 0, 1)

	k = 1 - max(r, g, b)
	if k >= 1 {
		return 0, 0, 0, 1
	}
	c = Clamp((1-r-k)/(1-k), 0, 1)
	m = Clamp((1-g-k)/(1-k), 0, 1)
	y = Clamp((1-b-k)/(1-k), 0, 1)
	return c, m, y, k
}

// CMYKToRGB converts CMYK values to RGB, using the naive device formula.
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	r = (1 - Clamp(c, 0, 1)) * (1 - Clamp(k, 0, 1))
	g = (1 - Clamp(m, 0, 1)) * (1 - Clamp(k, 0, 1))
	b = (1 - Clamp(y, 0, 1)) * (1 - Clamp(k, 0, 1))
	return r, g, b
}

// Clamp restricts x to the range [lo, hi].  NaN values are mapped to lo.
func Clamp[T constraints.Float](x, lo, hi T) T {
	if !(x >= lo) {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
