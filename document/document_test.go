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

package document

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/svgpdf/diag"
	"seehuhn.de/go/svgpdf/graphics/color"
	"seehuhn.de/go/svgpdf/metadata"
	"seehuhn.de/go/svgpdf/pdf"
)

func TestRectCMYK(t *testing.T) {
	d := New(100, 100, &Options{CMYK: true})
	markup := `<svg width="100" height="100"><rect x="10" y="10" width="80" height="40"/></svg>`
	err := d.DrawSVG(markup, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := "q\n1 0 0 -1 0 100 cm\n" +
		"0 0 0 1 k\n" +
		"10 10 m\n90 10 l\n90 50 l\n10 50 l\nh\n" +
		"f\n" +
		"Q\n"
	if d := cmp.Diff(want, d.content.String()); d != "" {
		t.Errorf("content (-want +got):\n%s", d)
	}
	if n := len(d.Diagnostics()); n != 0 {
		t.Errorf("unexpected diagnostics: %v", d.Diagnostics())
	}
}

func TestPlacement(t *testing.T) {
	cases := []struct {
		markup string
		x, y   float64
		size   *Size
		want   string
	}{
		{
			markup: `<svg width="50" height="20"></svg>`,
			x:      10, y: 30,
			want: "1 0 0 -1 10 170 cm",
		},
		{
			markup: `<svg viewBox="0 0 50 20"></svg>`,
			size:   &Size{Width: 100},
			want:   "2 0 0 -2 0 200 cm",
		},
		{
			markup: `<svg width="50" height="20" viewBox="10 10 100 40"></svg>`,
			want:   "0.5 0 0 -0.5 -5 205 cm",
		},
		{
			markup: `<svg width="50" height="20"></svg>`,
			size:   &Size{Height: 40},
			want:   "2 0 0 -2 0 200 cm",
		},
		{
			markup: `<svg width="50" height="20"></svg>`,
			size:   &Size{Width: 100, Height: 10},
			want:   "2 0 0 -0.5 0 200 cm",
		},
	}
	for i, c := range cases {
		d := New(200, 200, nil)
		err := d.DrawSVG(c.markup, c.x, c.y, c.size)
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(d.content.String(), "\n")
		if len(lines) < 2 || lines[1] != c.want {
			t.Errorf("%d: got %q, want %q", i, lines, c.want)
		}
	}
}

func TestElements(t *testing.T) {
	d := New(100, 100, nil)
	markup := `<svg width="100" height="100">
	<title>a drawing</title>
	<g fill="none" stroke="red" stroke-width="2">
		<line x1="0" y1="0" x2="10" y2="0" fill="blue"/>
		<circle cx="50" cy="50" r="10"/>
		<polygon points="0,0 10,0 10,10" fill="#0000ff" stroke="none"/>
		<text x="1" y="1">ignored</text>
	</g>
</svg>`
	err := d.DrawSVG(markup, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}

	out := d.content.String()
	for _, want := range []string{
		"1 0 0 RG\n2 w\n0 0 m\n10 0 l\nS\n",
		"60 50 m\n",
		"0 0 1 rg\n0 0 m\n10 0 l\n10 10 l\nh\nf\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}

	entries := d.Diagnostics()
	if len(entries) != 1 || entries[0].Component != diag.Render {
		t.Errorf("unexpected diagnostics %v", entries)
	}
}

func TestElementTransform(t *testing.T) {
	d := New(100, 100, nil)
	markup := `<svg width="100" height="100">
	<rect width="10" height="10" transform="translate(5,5)"/>
	<rect width="10" height="10"/>
</svg>`
	err := d.DrawSVG(markup, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	out := d.content.String()
	if n := strings.Count(out, "q\n"); n != 2 {
		t.Errorf("expected 2 saved states, got %d in\n%s", n, out)
	}
	if !strings.Contains(out, "q\n1 0 0 1 5 5 cm\n0 0 0 rg\n") {
		t.Errorf("transform not applied in\n%s", out)
	}
	if d.Depth() != 0 {
		t.Errorf("unbalanced graphics state, depth %d", d.Depth())
	}
}

func TestSpotColors(t *testing.T) {
	opt := &Options{
		Spots: map[string]color.SpotRef{
			"#ffd700": {Ink: "Gold"},
			"orange":  {Ink: "Missing"},
		},
	}
	d := New(100, 100, opt)
	_, err := d.DefineSpotColor("Gold", 0, 0.2, 0.8, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	markup := `<svg width="100" height="100">
	<rect width="10" height="10" fill="#FFD700"/>
	<rect width="10" height="10" fill="orange"/>
</svg>`
	err = d.DrawSVG(markup, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}

	out := d.content.String()
	want := "/C1 cs\n1 scn\n0 0 m\n"
	if !strings.Contains(out, want) {
		t.Errorf("missing %q in\n%s", want, out)
	}
	// the unknown ink keeps the previous fill color
	if n := strings.Count(out, "/C1 cs\n1 scn\n"); n != 2 {
		t.Errorf("expected the spot color to be used twice, got %d", n)
	}

	entries := d.Diagnostics()
	if len(entries) != 1 || entries[0].Component != diag.Color {
		t.Errorf("unexpected diagnostics %v", entries)
	}

	data, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("/Separation /Gold /DeviceCMYK")) {
		t.Error("missing Separation color space")
	}
}

func TestOptionInks(t *testing.T) {
	opt := &Options{
		Inks: map[string]color.Color{
			"Gold":  color.CMYK{C: 0, M: 0.2, Y: 0.8, K: 0.1},
			"Blue":  color.Lab{L: 30, A: 20, B: -60},
			"Green": color.RGB{R: 0, G: 1, B: 0},
			"":      color.CMYK{},
		},
		Spots: map[string]color.SpotRef{
			"#ffd700": {Ink: "Gold"},
		},
	}
	d := New(100, 100, opt)

	for _, name := range []string{"Gold", "Blue", "Green"} {
		if d.Ink(name) == nil {
			t.Errorf("ink %q not defined", name)
		}
	}
	want := color.Color(color.CMYK{C: 1, M: 0, Y: 1, K: 0})
	if diff := cmp.Diff(want, d.Ink("Green").Alternate); diff != "" {
		t.Errorf("Green alternate (-want +got):\n%s", diff)
	}

	entries := d.Diagnostics()
	if len(entries) != 1 || entries[0].Component != diag.Color {
		t.Errorf("unexpected diagnostics %v", entries)
	}

	err := d.DrawSVG(`<svg width="10" height="10"><rect width="5" height="5" fill="#ffd700"/></svg>`, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(d.content.String(), "/C1 cs\n1 scn\n") {
		t.Errorf("spot color not used:\n%s", d.content.String())
	}
}

func TestRedefineInk(t *testing.T) {
	d := New(100, 100, nil)
	ink1, err := d.DefineSpotColor("Gold", 0, 0.2, 0.8, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	ink2, err := d.DefineLabSpotColor("Gold", 80, 5, 70)
	if err != nil {
		t.Fatal(err)
	}
	if ink1 != ink2 {
		t.Error("redefinition created a new ink")
	}
	if _, ok := ink1.Alternate.(color.Lab); !ok {
		t.Errorf("alternate color not updated: %T", ink1.Alternate)
	}

	if _, err := d.DefineSpotColor("", 0, 0, 0, 1); err == nil {
		t.Error("empty ink name accepted")
	}
}

func TestSetSpot(t *testing.T) {
	d := New(100, 100, nil)
	_, err := d.DefineLabSpotColor("Blue", 30, 20, -60)
	if err != nil {
		t.Fatal(err)
	}
	d.SetFillSpot("Blue", 0.5)
	d.SetStrokeSpot("Unknown", 1)
	d.Rectangle(0, 0, 10, 10)
	d.FillAndStroke(0)

	want := "/C1 cs\n0.5 scn\n0 0 0 RG\n"
	if !strings.Contains(d.content.String(), want) {
		t.Errorf("missing %q in\n%s", want, d.content.String())
	}
	if len(d.Diagnostics()) != 1 {
		t.Errorf("unexpected diagnostics %v", d.Diagnostics())
	}

	data, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("/Lab")) {
		t.Error("missing Lab color space")
	}
}

func TestOpacityResources(t *testing.T) {
	d := New(100, 100, nil)
	markup := `<svg width="100" height="100">
	<rect width="10" height="10" fill-opacity="0.5"/>
	<rect width="10" height="10" style="fill-opacity: 50%"/>
</svg>`
	err := d.DrawSVG(markup, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]pdf.Name{"E1"}, d.ResourceNames()); d != "" {
		t.Errorf("resources (-want +got):\n%s", d)
	}
}

var xrefEntry = regexp.MustCompile(`(\d{10}) 00000 n\r\n`)

func TestFileStructure(t *testing.T) {
	info := &metadata.Info{
		Title:        "Test",
		CreationDate: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	d := New(200, 100, &Options{Info: info})
	err := d.DrawSVG(`<svg width="10" height="10"><circle r="5" fill-opacity=".5"/></svg>`, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}

	data, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n%")) {
		t.Errorf("wrong header %q", data[:12])
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Error("missing end of file marker")
	}
	for _, want := range []string{
		"/Filter /FlateDecode",
		"/MediaBox [0 0 200 100]",
		"/Root 1 0 R",
		"/Info ",
		"/Metadata ",
		"/Type /ExtGState",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("missing %q", want)
		}
	}

	// every xref entry points to the start of its object
	matches := xrefEntry.FindAllSubmatch(data, -1)
	if len(matches) < 5 {
		t.Fatalf("only %d xref entries", len(matches))
	}
	for i, m := range matches {
		offset, _ := strconv.Atoi(string(m[1]))
		want := fmt.Sprintf("%d 0 obj\n", i+1)
		if !bytes.HasPrefix(data[offset:], []byte(want)) {
			t.Errorf("xref entry %d points to %q", i+1, data[offset:offset+10])
		}
	}

	startxref := bytes.LastIndex(data, []byte("startxref\n"))
	xrefPos := bytes.LastIndex(data, []byte("xref\n0 "))
	got := strings.TrimSpace(strings.TrimSuffix(string(data[startxref+10:]), "%%EOF\n"))
	if got != strconv.Itoa(xrefPos) {
		t.Errorf("startxref %s, xref table at %d", got, xrefPos)
	}

	// serialization can be repeated
	again, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, again) {
		t.Error("second serialization differs")
	}
}

func TestOpenStatesClosed(t *testing.T) {
	d := New(100, 100, nil)
	d.PushGraphicsState()
	d.PushGraphicsState()
	_, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if d.Depth() != 2 {
		t.Errorf("serialization changed the graphics state depth to %d", d.Depth())
	}
	if got := d.content.String(); got != "q\nq\n" {
		t.Errorf("serialization changed the content to %q", got)
	}
}

func TestNoDrawing(t *testing.T) {
	d := New(100, 100, nil)
	for _, markup := range []string{"", "plain text", "<html></html>"} {
		if err := d.DrawSVG(markup, 0, 0, nil); err == nil {
			t.Errorf("%q: expected an error", markup)
		}
	}
	if d.content.Len() != 0 {
		t.Errorf("unexpected content %q", d.content.String())
	}
}
