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

package function

import (
	"fmt"
	"math"

	"seehuhn.de/go/svgpdf/internal/float"
	"seehuhn.de/go/svgpdf/pdf"
)

// Type2 is an exponential interpolation function with one input.
// For x in the domain [XMin, XMax], the outputs are C0 + x^N·(C1 - C0).
type Type2 struct {
	// XMin and XMax give the domain.  Inputs outside the domain are
	// clamped.
	XMin, XMax float64

	// C0 and C1 are the outputs at x=0 and x=1.  Both slices must have
	// the same, non-zero length.
	C0, C1 []float64

	N float64
}

// Linear returns a tint transform which maps tint 0 to c0 and tint 1 to c1.
func Linear(c0, c1 []float64) *Type2 {
	return &Type2{XMax: 1, C0: c0, C1: c1, N: 1}
}

// Apply evaluates the function.  Exactly one input must be given.
func (f *Type2) Apply(inputs ...float64) []float64 {
	if len(inputs) != 1 {
		panic(fmt.Sprintf("type 2 function called with %d inputs", len(inputs)))
	}
	x := min(max(inputs[0], f.XMin), f.XMax)

	w := x
	if f.N != 1 {
		w = math.Pow(x, f.N)
	}

	res := make([]float64, len(f.C0))
	for i, c0 := range f.C0 {
		res[i] = c0 + w*(f.C1[i]-c0)
	}
	return res
}

// Embed writes the function dictionary as a new indirect object.
func (f *Type2) Embed(w *pdf.Writer) (pdf.Reference, error) {
	err := f.validate()
	if err != nil {
		return 0, err
	}
	return w.Write(pdf.Dict{
		"FunctionType": pdf.Integer(2),
		"Domain":       numbers(f.XMin, f.XMax),
		"C0":           numbers(f.C0...),
		"C1":           numbers(f.C1...),
		"N":            pdf.Number(f.N),
	})
}

func (f *Type2) validate() error {
	if !float.IsFinite(f.XMin) || !float.IsFinite(f.XMax) || f.XMin > f.XMax {
		return errType2("domain", "[%g, %g] is not an interval", f.XMin, f.XMax)
	}
	if len(f.C0) == 0 || len(f.C0) != len(f.C1) {
		return errType2("C0/C1", "lengths %d and %d", len(f.C0), len(f.C1))
	}
	for i := range f.C0 {
		if !float.IsFinite(f.C0[i]) || !float.IsFinite(f.C1[i]) {
			return errType2("C0/C1", "entry %d is not finite", i)
		}
	}
	switch {
	case !float.IsFinite(f.N):
		return errType2("N", "%g is not finite", f.N)
	case f.N != math.Trunc(f.N) && f.XMin < 0:
		// x^N is undefined for negative x
		return errType2("domain", "starts at %g, but N=%g is not an integer", f.XMin, f.N)
	case f.N < 0 && f.XMin <= 0 && f.XMax >= 0:
		return errType2("domain", "contains 0, but N=%g is negative", f.N)
	}
	return nil
}

func numbers(xx ...float64) pdf.Array {
	res := make(pdf.Array, len(xx))
	for i, x := range xx {
		res[i] = pdf.Number(x)
	}
	return res
}
