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

package float

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		prec int
		out  string
	}{
		{0, 3, "0"},
		{1, 3, "1"},
		{0.5, 3, "0.5"},
		{-0.5, 3, "-0.5"},
		{1.2344, 3, "1.234"},
		{100, 2, "100"},
		{10.10, 2, "10.1"},
		{-0.0001, 3, "0"},
		{0.0001, 3, "0"},
		{12.5000, 4, "12.5"},
		{595.28, 4, "595.28"},
		{-3, 5, "-3"},
		{1e6, 2, "1000000"},
	}
	for _, c := range cases {
		got := Format(c.in, c.prec)
		if got != c.out {
			t.Errorf("Format(%g, %d) = %q, want %q", c.in, c.prec, got, c.out)
		}
	}
}

func TestIsFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(x) {
			t.Errorf("IsFinite(%g) = true", x)
		}
	}
	if !IsFinite(1e300) {
		t.Error("IsFinite(1e300) = false")
	}
}
