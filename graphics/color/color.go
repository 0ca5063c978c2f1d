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
	"fmt"

	"seehuhn.de/go/svgpdf/pdf"
)

// Space represents a PDF color space which can be embedded in a PDF file.
type Space interface {
	// Family returns the family of the color space.
	Family() pdf.Name

	// Channels returns the dimensionality of the color space.
	Channels() int

	pdf.Embedder
}

// Color space families used by this package.
const (
	FamilyDeviceRGB  pdf.Name = "DeviceRGB"
	FamilyDeviceCMYK pdf.Name = "DeviceCMYK"
	FamilyLab        pdf.Name = "Lab"
	FamilySeparation pdf.Name = "Separation"
)

// Singleton objects for the color spaces which do not require any parameters.
var (
	SpaceDeviceRGB  = spaceDeviceRGB{}
	SpaceDeviceCMYK = spaceDeviceCMYK{}
	SpaceLabD65     = SpaceLab{}
)

// The following types implement the Space interface:
var (
	_ Space = spaceDeviceRGB{}
	_ Space = spaceDeviceCMYK{}
	_ Space = SpaceLab{}
	_ Space = (*Ink)(nil)
)

// IsDevice reports whether the color space is one of the device color
// spaces, which can be selected without a resource.
func IsDevice(s Space) bool {
	switch s.(type) {
	case spaceDeviceRGB, spaceDeviceCMYK:
		return true
	}
	return false
}

// Color represents a color in one of the four supported color models.
// This is a closed set: the implementations are [RGB], [CMYK], [Lab] and
// [Spot].
type Color interface {
	// ColorSpace returns the color space of the color.
	ColorSpace() Space

	// Values returns the color values, as used in the PDF content stream.
	Values() []float64

	isColor()
}

// The following types implement the Color interface.
var (
	_ Color = RGB{}
	_ Color = CMYK{}
	_ Color = Lab{}
	_ Color = Spot{}
)

// Operator returns the color values and the name of the content stream
// operator which sets the color.  The operator name is for stroking
// operations.  The corresponding operator for filling operations is the
// operator name converted to lower case.
//
// For colors outside the device color spaces the color space must be selected
// using "CS" (or "cs") before the operator is used.
func Operator(c Color) ([]float64, string) {
	switch c := c.(type) {
	case RGB:
		return c.Values(), "RG"
	case CMYK:
		return c.Values(), "K"
	case Lab:
		return c.Values(), "SC"
	case Spot:
		return c.Values(), "SCN"
	default:
		panic(fmt.Sprintf("unknown color type %T", c))
	}
}

func toPDF(x []float64) pdf.Array {
	res := make(pdf.Array, len(x))
	for i, xi := range x {
		res[i] = pdf.Number(xi)
	}
	return res
}
