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

// Package svgpdf converts simple SVG drawings into PDF files for print.
//
// The conversion understands the elements svg, g, rect, circle, ellipse,
// path, line, polyline and polygon, the common presentation attributes, and
// the transform attribute.  Colors can be written as RGB, converted to
// CMYK, or mapped to named inks (Separation color spaces) with CMYK or
// CIE L*a*b* alternates.
//
// The simplest way to use the package is [Convert]:
//
//	data, diags, err := svgpdf.Convert(markup, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range diags {
//	    log.Println(d)
//	}
//	err = os.WriteFile("out.pdf", data, 0o644)
//
// For more control, use a [document.Document] directly.  The sub-packages
// contain the individual stages of the conversion: [svg] parses the markup,
// [graphics/color] resolves colors, [graphics] writes the content stream,
// and [pdf] assembles the file.
package svgpdf
