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

// Package svg reads the subset of SVG used for simple vector drawings.
//
// The package provides a markup parser which reconstructs the element tree
// of a drawing, an interpreter for path data which reduces all path
// commands to straight lines and cubic Bezier curves, helpers which convert
// the basic shapes into paths, a parser for the transform attribute, and the
// computation of inherited presentation styles.
//
// Only elements, attributes and path data are interpreted.  Text content,
// entities, namespaces and style sheets are not supported.  Problems in the
// input never cause an error; they are reported to a [diag.Log] and the
// offending construct is skipped.
package svg
