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

// Package graphics writes PDF content streams.
//
// A [Writer] keeps track of the graphics state (current transformation
// matrix, colors, opacities and line width) and of the resources referenced
// by the content stream.  Path construction operators are collected until
// the path is painted; at this point the color, opacity and line width
// operators are emitted, followed by the path and the painting operator.
//
// All numbers pass through a formatter which replaces NaN and infinite
// values by zero, so that the content stream stays valid for all inputs.
// Each such replacement is recorded as a diagnostic.
package graphics
