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

// Package color implements the color models used for drawing.
//
// Every color belongs to one of four models:
//   - [RGB]: device RGB colors, e.g. RGB{1, 0, 0}
//   - [CMYK]: device CMYK colors, e.g. CMYK{0, 0, 0, 1}
//   - [Lab]: CIE 1976 L*a*b* colors relative to the D65 white point
//   - [Spot]: a tint of a named separation ink, see [Ink]
//
// Colors are written to a PDF file together with their color space, which
// is represented by a [Space].  Colors given as SVG paint tokens are turned
// into [Color] values by a [Resolver].
package color
