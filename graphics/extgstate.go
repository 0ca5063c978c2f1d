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

package graphics

import (
	"seehuhn.de/go/svgpdf/pdf"
)

// ExtGState is a graphics state parameter dictionary which sets the
// constant opacity for filling and/or stroking.
//
// ExtGState values are comparable, so that each distinct combination of
// parameters is embedded only once.
type ExtGState struct {
	SetFill   bool
	FillAlpha float64

	SetStroke   bool
	StrokeAlpha float64
}

// Embed writes the graphics state parameter dictionary to the PDF file.
// This implements the [pdf.Embedder] interface.
func (s ExtGState) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	if err := pdf.CheckVersion(rm.Out, "constant opacity", pdf.V1_4); err != nil {
		return nil, err
	}
	dict := pdf.Dict{
		"Type": pdf.Name("ExtGState"),
	}
	if s.SetFill {
		dict["ca"] = pdf.Number(s.FillAlpha)
	}
	if s.SetStroke {
		dict["CA"] = pdf.Number(s.StrokeAlpha)
	}
	return rm.Out.Write(dict)
}
