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

// EmbedResources embeds all resources used by the content stream and
// returns the resource dictionary.
//
// Resources are embedded in the order in which they were first used.
func (w *Writer) EmbedResources(rm *pdf.ResourceManager) (pdf.Dict, error) {
	res := pdf.Dict{}
	for _, key := range w.resOrder {
		obj, err := rm.Embed(key.res)
		if err != nil {
			return nil, err
		}

		var field pdf.Name
		switch key.cat {
		case catColorSpace:
			field = "ColorSpace"
		case catExtGState:
			field = "ExtGState"
		}
		dict, _ := res[field].(pdf.Dict)
		if dict == nil {
			dict = pdf.Dict{}
			res[field] = dict
		}
		dict[w.resName[key]] = obj
	}
	return res, nil
}

// ResourceNames returns the names of all resources used so far, in the
// order of first use.
func (w *Writer) ResourceNames() []pdf.Name {
	res := make([]pdf.Name, len(w.resOrder))
	for i, key := range w.resOrder {
		res[i] = w.resName[key]
	}
	return res
}
