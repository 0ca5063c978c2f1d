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

	"seehuhn.de/go/svgpdf/function"
	"seehuhn.de/go/svgpdf/internal/colconv"
	"seehuhn.de/go/svgpdf/pdf"
)

// == Separation =============================================================

// Ink is a named colorant, represented in PDF by a Separation color space.
//
// Each ink has an alternate color, either [CMYK] or [Lab], which is used by
// devices which do not have the colorant available.  The tint transform
// interpolates linearly between "no ink" (tint 0) and the alternate color
// (tint 1).
//
// Inks are compared by identity, so each distinct ink must be allocated
// only once.
type Ink struct {
	Name      string
	Alternate Color
}

// NewInk creates a new ink.  The alternate color must be a [CMYK] or a
// [Lab] color; RGB colors are converted to CMYK.
func NewInk(name string, alt Color) (*Ink, error) {
	if name == "" {
		return nil, fmt.Errorf("ink name must not be empty")
	}
	switch c := alt.(type) {
	case CMYK, Lab:
		// pass
	case RGB:
		alt = c.CMYK()
	default:
		return nil, fmt.Errorf("ink %q: unsupported alternate color %T", name, alt)
	}
	return &Ink{Name: name, Alternate: alt}, nil
}

// Family returns /Separation.
// This implements the [Space] interface.
func (ink *Ink) Family() pdf.Name {
	return FamilySeparation
}

// Channels returns 1.
// This implements the [Space] interface.
func (ink *Ink) Channels() int {
	return 1
}

// Embed writes the tint transform function and the Separation color space
// array to the PDF file.  A Lab alternate shares the document-wide Lab
// color space.
// This implements the [Space] interface.
func (ink *Ink) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	altSpace, c0, c1, err := ink.alternate(rm)
	if err != nil {
		return nil, err
	}

	fnRef, err := function.Linear(c0, c1).Embed(rm.Out)
	if err != nil {
		return nil, err
	}

	return rm.Out.Write(pdf.Array{
		FamilySeparation,
		pdf.Name(ink.Name),
		altSpace,
		fnRef,
	})
}

func (ink *Ink) alternate(rm *pdf.ResourceManager) (pdf.Object, []float64, []float64, error) {
	switch alt := ink.Alternate.(type) {
	case CMYK:
		return FamilyDeviceCMYK, []float64{0, 0, 0, 0}, alt.Values(), nil
	case Lab:
		var space pdf.Object
		if rm != nil {
			var err error
			space, err = rm.Embed(SpaceLabD65)
			if err != nil {
				return nil, nil, nil, err
			}
		}
		return space, []float64{colconv.LMax, 0, 0}, alt.Values(), nil
	default:
		return nil, nil, nil, fmt.Errorf("ink %q: unsupported alternate color %T", ink.Name, ink.Alternate)
	}
}

// Tint returns a color which uses the given amount of the ink.
func (ink *Ink) Tint(t float64) Spot {
	return NewSpot(ink, t)
}

// Spot is a tint of a named ink.
type Spot struct {
	Ink  *Ink
	Tint float64
}

// NewSpot returns a new spot color.  A tint outside the range from 0 to 1
// is clamped.
func NewSpot(ink *Ink, tint float64) Spot {
	return Spot{Ink: ink, Tint: colconv.Clamp(tint, 0, 1)}
}

// ColorSpace implements the [Color] interface.
func (c Spot) ColorSpace() Space {
	return c.Ink
}

// Values implements the [Color] interface.
func (c Spot) Values() []float64 {
	return []float64{c.Tint}
}

func (c Spot) isColor() {}

// Fallback returns the color a device without the ink would use for
// this tint.
func (c Spot) Fallback() Color {
	_, c0, c1, err := c.Ink.alternate(nil)
	if err != nil {
		return c.Ink.Alternate
	}
	v := function.Linear(c0, c1).Apply(c.Tint)
	switch c.Ink.Alternate.(type) {
	case Lab:
		return Lab{L: v[0], A: v[1], B: v[2]}
	default:
		return CMYK{C: v[0], M: v[1], Y: v[2], K: v[3]}
	}
}
