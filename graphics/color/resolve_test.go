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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/svgpdf/diag"
)

func TestParseRGB(t *testing.T) {
	cases := []struct {
		in  string
		out RGB
		ok  bool
	}{
		{"#000", RGB{0, 0, 0}, true},
		{"#fff", RGB{1, 1, 1}, true},
		{"#FF0000", RGB{1, 0, 0}, true},
		{"#ff8000", RGB{1, 128.0 / 255, 0}, true},
		{"  red ", RGB{1, 0, 0}, true},
		{"Black", RGB{0, 0, 0}, true},
		{"rgb(255, 0, 0)", RGB{1, 0, 0}, true},
		{"rgb(0 128 255)", RGB{0, 128.0 / 255, 1}, true},
		{"rgb(100%,50%,0%)", RGB{1, 0.5, 0}, true},
		{"rgb(300,0,0)", RGB{1, 0, 0}, true},
		{"#12", RGB{}, false},
		{"#gggggg", RGB{}, false},
		{"rgb(1,2)", RGB{}, false},
		{"blurple", RGB{}, false},
	}
	for _, test := range cases {
		got, ok := ParseRGB(test.in)
		if ok != test.ok {
			t.Errorf("ParseRGB(%q): ok=%t, want %t", test.in, ok, test.ok)
			continue
		}
		if d := cmp.Diff(test.out, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("ParseRGB(%q) (-want +got):\n%s", test.in, d)
		}
	}
}

func TestIsNone(t *testing.T) {
	for _, s := range []string{"none", "None", "transparent", " "} {
		if !IsNone(s) {
			t.Errorf("IsNone(%q) = false", s)
		}
	}
	if IsNone("black") {
		t.Error("IsNone(black) = true")
	}
}

func TestResolvePipeline(t *testing.T) {
	brand := &Ink{Name: "Brand", Alternate: CMYK{0, 1, 1, 0}}
	half := 0.5
	inks := func(name string) *Ink {
		if name == "Brand" {
			return brand
		}
		return nil
	}

	cases := []struct {
		name  string
		r     Resolver
		token string
		col   Color
		res   Result
	}{
		{
			name:  "rgb",
			token: "#ff0000",
			col:   RGB{1, 0, 0},
		},
		{
			name:  "cmyk black",
			r:     Resolver{CMYK: true},
			token: "black",
			col:   CMYK{0, 0, 0, 1},
		},
		{
			name:  "cmyk white",
			r:     Resolver{CMYK: true},
			token: "#ffffff",
			col:   CMYK{0, 0, 0, 0},
		},
		{
			name:  "none",
			token: "none",
			res:   NoPaint,
		},
		{
			name:  "unknown",
			token: "blurple",
			res:   NoPaint,
		},
		{
			name: "remap token",
			r: Resolver{Remap: func(s string) Replacement {
				if s == "#00ff00" {
					return Token("#0000ff")
				}
				return nil
			}},
			token: "#00ff00",
			col:   RGB{0, 0, 1},
		},
		{
			name: "remap empty token",
			r: Resolver{Remap: func(string) Replacement {
				return Token("")
			}},
			token: "red",
			col:   RGB{1, 0, 0},
		},
		{
			name: "remap cmyk",
			r: Resolver{Remap: func(string) Replacement {
				return CMYK{0.1, 0.2, 0.3, 2}
			}},
			token: "red",
			col:   CMYK{0.1, 0.2, 0.3, 1},
		},
		{
			name: "remap lab",
			r: Resolver{Remap: func(string) Replacement {
				return Lab{53, 80, 67}
			}},
			token: "red",
			col:   Lab{53, 80, 67},
		},
		{
			name: "remap to spot",
			r: Resolver{
				Remap: func(string) Replacement { return Token("brand-red") },
				Spots: map[string]SpotRef{"brand-red": {Ink: "Brand", Tint: &half}},
				Inks:  inks,
			},
			token: "#ff0000",
			col:   Spot{brand, 0.5},
		},
		{
			name: "spot default tint",
			r: Resolver{
				Spots: map[string]SpotRef{"#ff0000": {Ink: "Brand"}},
				Inks:  inks,
				CMYK:  true,
			},
			token: "#FF0000",
			col:   Spot{brand, 1},
		},
		{
			name: "unknown ink",
			r: Resolver{
				Spots: map[string]SpotRef{"#ff0000": {Ink: "Missing"}},
				Inks:  inks,
			},
			token: "#ff0000",
			res:   Retain,
		},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			log := diag.New(nil)
			r := test.r
			r.Log = log
			col, res := r.Resolve(test.token)
			if res != test.res {
				t.Fatalf("result %d, want %d", res, test.res)
			}
			if d := cmp.Diff(test.col, col, cmpopts.EquateApprox(0, 1e-12)); d != "" {
				t.Errorf("color (-want +got):\n%s", d)
			}
			wantDiag := test.name == "unknown" || test.name == "unknown ink"
			if (log.Len() > 0) != wantDiag {
				t.Errorf("diagnostics: %v", log.Entries())
			}
		})
	}
}
