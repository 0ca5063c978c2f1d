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

package svgpdf

import (
	"seehuhn.de/go/svgpdf/diag"
	"seehuhn.de/go/svgpdf/document"
	"seehuhn.de/go/svgpdf/svg"
)

// Convert renders an SVG drawing onto a page of the same size as the
// drawing, and returns the PDF file together with all problems found in
// the markup.  If the drawing does not specify its size, an A4 page is
// used.  The options may be nil.
//
// Spot colors used through opt.Spots must be defined in opt.Inks.  To
// define inks in other ways, use [document.New] and
// [document.Document.DefineSpotColor] instead.
func Convert(markup string, opt *document.Options) ([]byte, []diag.Entry, error) {
	width, height := NaturalSize(markup)
	if width <= 0 || height <= 0 {
		width, height = document.A4.URx, document.A4.URy
	}

	doc := document.New(width, height, opt)
	err := doc.DrawSVG(markup, 0, 0, nil)
	if err != nil {
		return nil, doc.Diagnostics(), err
	}
	data, err := doc.Bytes()
	if err != nil {
		return nil, doc.Diagnostics(), err
	}
	return data, doc.Diagnostics(), nil
}

// NaturalSize returns the size of a drawing in PDF points, as given by the
// width and height attributes of the svg element.  Missing values are taken
// from the viewBox attribute.  If the size cannot be determined, zero is
// returned.
func NaturalSize(markup string) (width, height float64) {
	root := svg.Parse(markup, nil)
	if root == nil || root.Tag != "svg" {
		return 0, 0
	}

	if s, ok := root.Attr("viewBox"); ok {
		if vb := svg.ParseNumbers(s); len(vb) == 4 {
			width, height = vb[2], vb[3]
		}
	}
	if s, ok := root.Attr("width"); ok {
		if w, ok := svg.ParseLength(s); ok {
			width = w
		}
	}
	if s, ok := root.Attr("height"); ok {
		if h, ok := svg.ParseLength(s); ok {
			height = h
		}
	}
	return width, height
}
