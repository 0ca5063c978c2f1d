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

// == DeviceRGB ==============================================================

// spaceDeviceRGB represents the DeviceRGB color space.
type spaceDeviceRGB struct{}

// Embed returns the name /DeviceRGB.
// This implements the [Space] interface.
func (s spaceDeviceRGB) Embed(*pdf.ResourceManager) (pdf.Object, error) {
	return FamilyDeviceRGB, nil
}

// Family returns /DeviceRGB.
// This implements the [Space] interface.
func (s spaceDeviceRGB) Family() pdf.Name {
	return FamilyDeviceRGB
}

// Channels returns 3.
// This implements the [Space] interface.
func (s spaceDeviceRGB) Channels() int {
	return 3
}

// RGB is a color in the DeviceRGB color space.
// All components are in the range from 0 to 1.
type RGB struct {
	R, G, B float64
}

// NewRGB returns a new RGB color.  Components outside the range from 0 to 1
// are clamped.
func NewRGB(r, g, b float64) RGB {
	return RGB{
		R: colconv.Clamp(r, 0, 1),
		G: colconv.Clamp(g, 0, 1),
		B: colconv.Clamp(b, 0, 1),
	}
}

// ColorSpace implements the [Color] interface.
func (c RGB) ColorSpace() Space {
	return SpaceDeviceRGB
}

// Values implements the [Color] interface.
func (c RGB) Values() []float64 {
	return []float64{c.R, c.G, c.B}
}

func (c RGB) isColor() {}

// Lab converts the color to L*a*b*, assuming sRGB components.
func (c RGB) Lab() Lab {
	L, a, b := colconv.RGBToLab(c.R, c.G, c.B)
	return Lab{L: L, A: a, B: b}
}

// CMYK converts the color to CMYK, using the naive device formula.
// White maps to the CMYK zero vector, so that no ink is used.
func (c RGB) CMYK() CMYK {
	if c.R >= 1 && c.G >= 1 && c.B >= 1 {
		return CMYK{}
	}
	cc, m, y, k := colconv.RGBToCMYK(c.R, c.G, c.B)
	return CMYK{C: cc, M: m, Y: y, K: k}
}

// == DeviceCMYK =============================================================

// spaceDeviceCMYK represents the DeviceCMYK color space.
type spaceDeviceCMYK struct{}

// Embed returns the name /DeviceCMYK.
// This implements the [Space] interface.
func (s spaceDeviceCMYK) Embed(*pdf.ResourceManager) (pdf.Object, error) {
	return FamilyDeviceCMYK, nil
}

// Family returns /DeviceCMYK.
// This implements the [Space] interface.
func (s spaceDeviceCMYK) Family() pdf.Name {
	return FamilyDeviceCMYK
}

// Channels returns 4.
// This implements the [Space] interface.
func (s spaceDeviceCMYK) Channels() int {
	return 4
}

// CMYK is a color in the DeviceCMYK color space.
// All components are in the range from 0 to 1.
type CMYK struct {
	C, M, Y, K float64
}

// NewCMYK returns a new CMYK color.  Components outside the range from 0 to 1
// are clamped.
func NewCMYK(c, m, y, k float64) CMYK {
	return CMYK{
		C: colconv.Clamp(c, 0, 1),
		M: colconv.Clamp(m, 0, 1),
		Y: colconv.Clamp(y, 0, 1),
		K: colconv.Clamp(k, 0, 1),
	}
}

// ColorSpace implements the [Color] interface.
func (c CMYK) ColorSpace() Space {
	return SpaceDeviceCMYK
}

// Values implements the [Color] interface.
func (c CMYK) Values() []float64 {
	return []float64{c.C, c.M, c.Y, c.K}
}

func (c CMYK) isColor()       {}
func (c CMYK) isReplacement() {}

// RGB converts the color to RGB, using the naive device formula.
func (c CMYK) RGB() RGB {
	r, g, b := colconv.CMYKToRGB(c.C, c.M, c.Y, c.K)
	return RGB{R: r, G: g, B: b}
}
