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
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/svgpdf/pdf"
)

func TestClamping(t *testing.T) {
	if d := cmp.Diff(CMYK{0, 1, 0.5, 0}, NewCMYK(-1, 2, 0.5, 0)); d != "" {
		t.Errorf("NewCMYK (-want +got):\n%s", d)
	}
	if d := cmp.Diff(Lab{100, -128, 127}, NewLab(120, -300, 200)); d != "" {
		t.Errorf("NewLab (-want +got):\n%s", d)
	}
	if d := cmp.Diff(RGB{1, 0, 0.25}, NewRGB(1.5, -0.1, 0.25)); d != "" {
		t.Errorf("NewRGB (-want +got):\n%s", d)
	}
	ink := &Ink{Name: "X", Alternate: CMYK{1, 0, 0, 0}}
	if got := NewSpot(ink, 3).Tint; got != 1 {
		t.Errorf("spot tint = %g", got)
	}
}

func TestOperator(t *testing.T) {
	ink := &Ink{Name: "X", Alternate: CMYK{1, 0, 0, 0}}
	cases := []struct {
		c    Color
		vals []float64
		op   string
	}{
		{RGB{1, 0, 0}, []float64{1, 0, 0}, "RG"},
		{CMYK{0, 0, 0, 1}, []float64{0, 0, 0, 1}, "K"},
		{Lab{53, 80, 67}, []float64{53, 80, 67}, "SC"},
		{Spot{ink, 0.5}, []float64{0.5}, "SCN"},
	}
	for _, test := range cases {
		vals, op := Operator(test.c)
		if op != test.op {
			t.Errorf("%v: got operator %q, want %q", test.c, op, test.op)
		}
		if d := cmp.Diff(test.vals, vals); d != "" {
			t.Errorf("%v: values (-want +got):\n%s", test.c, d)
		}
	}
}

func TestRGBToLab(t *testing.T) {
	got := RGB{1, 0, 0}.Lab()
	want := Lab{53.24, 80.09, 67.20}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 0.5)); d != "" {
		t.Errorf("red (-want +got):\n%s", d)
	}
}

func TestRGBToCMYK(t *testing.T) {
	cases := []struct {
		in  RGB
		out CMYK
	}{
		{RGB{0, 0, 0}, CMYK{0, 0, 0, 1}},
		{RGB{1, 1, 1}, CMYK{0, 0, 0, 0}},
		{RGB{0, 0, 1}, CMYK{1, 1, 0, 0}},
	}
	for _, test := range cases {
		if d := cmp.Diff(test.out, test.in.CMYK()); d != "" {
			t.Errorf("%v (-want +got):\n%s", test.in, d)
		}
	}
}

func TestInkEmbedCMYK(t *testing.T) {
	w, _ := pdf.NewWriter(pdf.V1_4)
	rm := pdf.NewResourceManager(w)
	ink, err := NewInk("Reflex Blue", CMYK{1, 0.72, 0, 0.06})
	if err != nil {
		t.Fatal(err)
	}

	ref1, err := rm.Embed(ink)
	if err != nil {
		t.Fatal(err)
	}
	ref2, _ := rm.Embed(ink)
	if ref1 != ref2 {
		t.Errorf("ink embedded twice: %v, %v", ref1, ref2)
	}
	if w.NumObjects() != 2 {
		t.Errorf("got %d objects, want 2 (function + color space)", w.NumObjects())
	}

	w.Root = ref1.(pdf.Reference)
	buf := &bytes.Buffer{}
	if _, err := w.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"[/Separation /Reflex#20Blue /DeviceCMYK 1 0 R]",
		"/C0 [0 0 0 0]",
		"/C1 [1 0.72 0 0.06]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("%q not found in output", want)
		}
	}
}

func TestInkEmbedLab(t *testing.T) {
	w, _ := pdf.NewWriter(pdf.V1_4)
	rm := pdf.NewResourceManager(w)
	ink1, _ := NewInk("A", Lab{53, 80, 67})
	ink2, _ := NewInk("B", Lab{30, 10, -40})

	if _, err := rm.Embed(ink1); err != nil {
		t.Fatal(err)
	}
	if _, err := rm.Embed(ink2); err != nil {
		t.Fatal(err)
	}
	labRef, _ := rm.Embed(SpaceLabD65)

	// one shared Lab space, plus a function and a separation per ink
	if w.NumObjects() != 5 {
		t.Errorf("got %d objects, want 5", w.NumObjects())
	}

	w.Root = labRef.(pdf.Reference)
	buf := &bytes.Buffer{}
	if _, err := w.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"[/Lab <<\n/Range [-128 127 -128 127]\n/WhitePoint [0.95047 1 1.08883]\n>>]",
		"/C0 [100 0 0]",
		"[/Separation /A 1 0 R 2 0 R]",
		"[/Separation /B 1 0 R 4 0 R]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("%q not found in output", want)
		}
	}
}

func TestNewInk(t *testing.T) {
	ink, err := NewInk("R", RGB{1, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Color(CMYK{0, 1, 1, 0}), ink.Alternate); d != "" {
		t.Errorf("alternate (-want +got):\n%s", d)
	}
	if _, err := NewInk("", CMYK{}); err == nil {
		t.Error("empty ink name accepted")
	}
}

func TestSpotFallback(t *testing.T) {
	ink := &Ink{Name: "X", Alternate: Lab{50, 20, -20}}
	got := ink.Tint(0.5).Fallback()
	want := Color(Lab{75, 10, -10})
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("fallback (-want +got):\n%s", d)
	}
}

func TestRGBRoundTrip(t *testing.T) {
	steps := []float64{0, 0.25, 0.5, 0.75, 1}
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				in := RGB{r, g, b}
				viaLab := in.Lab().RGB()
				if d := cmp.Diff(in, viaLab, cmpopts.EquateApprox(0, 0.005)); d != "" {
					t.Errorf("%v via Lab (-want +got):\n%s", in, d)
				}
				viaCMYK := in.CMYK().RGB()
				if d := cmp.Diff(in, viaCMYK, cmpopts.EquateApprox(0, 1e-9)); d != "" {
					t.Errorf("%v via CMYK (-want +got):\n%s", in, d)
				}
			}
		}
	}
}

func TestSpotFallbackRGB(t *testing.T) {
	cmykInk := &Ink{Name: "Red", Alternate: CMYK{0, 1, 1, 0}}
	labInk := &Ink{Name: "Blue", Alternate: RGB{0, 0, 1}.Lab()}

	cases := []struct {
		spot Spot
		want RGB
	}{
		{cmykInk.Tint(1), RGB{1, 0, 0}},
		{cmykInk.Tint(0.5), RGB{1, 0.5, 0.5}},
		{cmykInk.Tint(0), RGB{1, 1, 1}},
		{labInk.Tint(1), RGB{0, 0, 1}},
		{labInk.Tint(0), RGB{1, 1, 1}},
	}
	for _, test := range cases {
		var got RGB
		switch c := test.spot.Fallback().(type) {
		case CMYK:
			got = c.RGB()
		case Lab:
			got = c.RGB()
		default:
			t.Fatalf("unexpected fallback type %T", c)
		}
		if d := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 0.005)); d != "" {
			t.Errorf("%s at tint %g (-want +got):\n%s", test.spot.Ink.Name, test.spot.Tint, d)
		}
	}
}
