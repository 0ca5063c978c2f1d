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

package svg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/svgpdf/diag"
)

func TestParsePath(t *testing.T) {
	cases := []struct {
		d    string
		want Path
	}{
		{ // closed triangle
			d: "M0,0 L10,0 L10,10 Z",
			want: Path{
				MoveTo{X: 0, Y: 0},
				LineTo{X: 10, Y: 0},
				LineTo{X: 10, Y: 10},
				ClosePath{},
			},
		},
		{ // numbers without separators
			d: "M.5.5L10-5",
			want: Path{
				MoveTo{X: 0.5, Y: 0.5},
				LineTo{X: 10, Y: -5},
			},
		},
		{ // implicit lineto after moveto
			d: "M0 0 10 0 10 10",
			want: Path{
				MoveTo{X: 0, Y: 0},
				LineTo{X: 10, Y: 0},
				LineTo{X: 10, Y: 10},
			},
		},
		{
			d: "m1 1 2 2",
			want: Path{
				MoveTo{X: 1, Y: 1},
				LineTo{X: 3, Y: 3},
			},
		},
		{
			d: "M1 2 h3 v4 H0 V0",
			want: Path{
				MoveTo{X: 1, Y: 2},
				LineTo{X: 4, Y: 2},
				LineTo{X: 4, Y: 6},
				LineTo{X: 0, Y: 6},
				LineTo{X: 0, Y: 0},
			},
		},
		{ // relative commands after closepath start at the subpath start
			d: "M1 1 l1 0 z l0 1",
			want: Path{
				MoveTo{X: 1, Y: 1},
				LineTo{X: 2, Y: 1},
				ClosePath{},
				LineTo{X: 1, Y: 2},
			},
		},
		{
			d: "M0 0 Q3 3 6 0",
			want: Path{
				MoveTo{X: 0, Y: 0},
				CurveTo{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 6, Y: 0}},
			},
		},
		{ // smooth cubic reflects the previous control point
			d: "M0 0 C0 1 2 1 2 0 S4 -1 4 0",
			want: Path{
				MoveTo{X: 0, Y: 0},
				CurveTo{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0}},
				CurveTo{{X: 2, Y: -1}, {X: 4, Y: -1}, {X: 4, Y: 0}},
			},
		},
		{ // smooth cubic after a line uses the current point
			d: "M0 0 L1 0 S2 1 3 0",
			want: Path{
				MoveTo{X: 0, Y: 0},
				LineTo{X: 1, Y: 0},
				CurveTo{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 0}},
			},
		},
		{ // smooth quadratic
			d: "M0 0 Q1 1 2 0 T4 0",
			want: Path{
				MoveTo{X: 0, Y: 0},
				CurveTo{{X: 2.0 / 3, Y: 2.0 / 3}, {X: 4.0 / 3, Y: 2.0 / 3}, {X: 2, Y: 0}},
				CurveTo{{X: 8.0 / 3, Y: -2.0 / 3}, {X: 10.0 / 3, Y: -2.0 / 3}, {X: 4, Y: 0}},
			},
		},
		{ // a smooth quadratic does not reflect cubic control points
			d: "M0 0 C0 1 2 1 2 0 T4 0",
			want: Path{
				MoveTo{X: 0, Y: 0},
				CurveTo{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0}},
				CurveTo{{X: 2, Y: 0}, {X: 8.0 / 3, Y: 0}, {X: 4, Y: 0}},
			},
		},
		{ // exponents
			d: "M1e1 2E-1",
			want: Path{
				MoveTo{X: 10, Y: 0.2},
			},
		},
		{
			d: "",
		},
	}
	for _, c := range cases {
		log := diag.New(nil)
		got := ParsePath(c.d, log)
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("%q (-want +got):\n%s", c.d, d)
		}
		if log.Len() != 0 {
			t.Errorf("%q: unexpected diagnostics %v", c.d, log.Entries())
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	cases := []struct {
		d     string
		want  Path
		nDiag int
	}{
		{ // invalid command letters skip their numbers
			d: "M0 0 X 5 5 L1 1",
			want: Path{
				MoveTo{X: 0, Y: 0},
				LineTo{X: 1, Y: 1},
			},
			nDiag: 1,
		},
		{
			d: "M0 0 L1",
			want: Path{
				MoveTo{X: 0, Y: 0},
			},
			nDiag: 1,
		},
		{ // drawing without a current point starts at the origin
			d: "L5 5",
			want: Path{
				MoveTo{X: 0, Y: 0},
				LineTo{X: 5, Y: 5},
			},
		},
		{
			d:     "Z",
			nDiag: 1,
		},
		{
			d: "M0 0 L1 1 # L2 2",
			want: Path{
				MoveTo{X: 0, Y: 0},
				LineTo{X: 1, Y: 1},
				LineTo{X: 2, Y: 2},
			},
			nDiag: 1,
		},
	}
	for _, c := range cases {
		log := diag.New(nil)
		got := ParsePath(c.d, log)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%q (-want +got):\n%s", c.d, d)
		}
		if log.Len() != c.nDiag {
			t.Errorf("%q: expected %d diagnostics, got %v", c.d, c.nDiag, log.Entries())
		}
		for _, e := range log.Entries() {
			if e.Component != diag.Path {
				t.Errorf("%q: wrong component %q", c.d, e.Component)
			}
		}
	}
}

func TestPathArc(t *testing.T) {
	got := ParsePath("M0 0 A5 5 0 0 1 10 0 l1 0", nil)
	if len(got) < 4 {
		t.Fatalf("path too short: %s", got)
	}
	last, ok := got[len(got)-2].(CurveTo)
	if !ok {
		t.Fatalf("expected a curve before the final line, got %T", got[len(got)-2])
	}
	if last[2].X != 10 || last[2].Y != 0 {
		t.Errorf("arc ends at %v", last[2])
	}
	if d := cmp.Diff(LineTo{X: 11, Y: 0}, got[len(got)-1]); d != "" {
		t.Errorf("line after arc (-want +got):\n%s", d)
	}

	// arc flags may be written without separators
	compact := ParsePath("M0 0A5 5 0 0110 0", nil)
	if d := cmp.Diff(got[:len(got)-1], compact); d != "" {
		t.Errorf("compact flags (-want +got):\n%s", d)
	}
}

func TestPathString(t *testing.T) {
	p := Path{
		MoveTo{X: 0, Y: 0},
		LineTo{X: 1.5, Y: 0},
		CurveTo{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}},
		ClosePath{},
	}
	want := "M0,0 L1.5,0 C1,2 3,4 5,6 Z"
	if got := p.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if d := cmp.Diff(p, ParsePath(want, nil)); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestParseNumbers(t *testing.T) {
	got := ParseNumbers(" .5.5-3e2, 4 ,+1 x 7")
	want := []float64{0.5, 0.5, -300, 4, 1}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("numbers (-want +got):\n%s", d)
	}
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12", 12, true},
		{"12px", 12, true},
		{" 3pt ", 3, true},
		{"1pc", 12, true},
		{"1in", 72, true},
		{"2.54cm", 72, true},
		{"25.4mm", 72, true},
		{"50%", 0, false},
		{"wide", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseLength(c.in)
		if ok != c.ok || (ok && !cmp.Equal(got, c.want, cmpopts.EquateApprox(0, 1e-9))) {
			t.Errorf("%q: got %g, %t, want %g, %t", c.in, got, ok, c.want, c.ok)
		}
	}
}
