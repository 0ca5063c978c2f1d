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

// Package document renders SVG drawings onto a single PDF page.
//
// A [Document] owns a content stream and the resources it uses.  Drawing
// calls, either through the embedded [graphics.Writer] or through
// [Document.DrawSVG], append to the content stream.  The content persists
// until the document is discarded, so that the same drawing can be
// serialized repeatedly with [Document.Bytes] or [Document.WriteTo].
package document

import (
	"bytes"
	"errors"
	"io"
	"maps"
	"slices"

	"github.com/hashicorp/go-hclog"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/svgpdf/diag"
	"seehuhn.de/go/svgpdf/graphics"
	"seehuhn.de/go/svgpdf/graphics/color"
	"seehuhn.de/go/svgpdf/metadata"
	"seehuhn.de/go/svgpdf/pdf"
)

// Options control how a drawing is converted.
type Options struct {
	// CMYK selects DeviceCMYK output for all colors which are not mapped
	// to spot or Lab colors.
	CMYK bool

	// Remap, if set, is called with every paint token found in a drawing
	// before the token is resolved.
	Remap color.RemapFunc

	// Spots maps paint tokens to tints of inks.  The inks are taken from
	// the Inks field, or are defined later with [Document.DefineSpotColor]
	// or [Document.DefineLabSpotColor].
	Spots map[string]color.SpotRef

	// Inks maps ink names to their alternate colors, which must be
	// [color.CMYK], [color.Lab] or [color.RGB] values.  The inks are
	// defined when the document is created.  Invalid entries are
	// reported as diagnostics.
	Inks map[string]color.Color

	// Info, if set, is written as the document information dictionary and
	// as an XMP metadata stream.
	Info *metadata.Info

	// Logger, if set, receives a warning for every diagnostic.
	Logger hclog.Logger
}

// Document is a single-page PDF document.
type Document struct {
	// Writer is used to draw the contents of the page.
	*graphics.Writer

	// MediaBox is the page size.
	MediaBox *rect.Rect

	opt      Options
	content  *bytes.Buffer
	inks     map[string]*color.Ink
	log      *diag.Log
	resolver *color.Resolver
}

// New creates a document with a page of the given size, in PDF points.
// The options may be nil.
func New(width, height float64, opt *Options) *Document {
	if opt == nil {
		opt = &Options{}
	}

	log := diag.New(opt.Logger)
	content := &bytes.Buffer{}
	d := &Document{
		Writer:   graphics.NewWriter(content, log),
		MediaBox: &rect.Rect{URx: width, URy: height},
		opt:      *opt,
		content:  content,
		inks:     make(map[string]*color.Ink),
		log:      log,
	}
	d.resolver = &color.Resolver{
		Remap: opt.Remap,
		Spots: opt.Spots,
		Inks:  d.Ink,
		CMYK:  opt.CMYK,
		Log:   log,
	}

	for _, name := range slices.Sorted(maps.Keys(opt.Inks)) {
		_, err := d.defineInk(name, opt.Inks[name])
		if err != nil {
			log.Add(diag.Color, -1, err.Error())
		}
	}
	return d
}

// DefineSpotColor registers an ink with a CMYK alternate color.
// If an ink of the same name exists already, its alternate color is
// replaced.
func (d *Document) DefineSpotColor(name string, c, m, y, k float64) (*color.Ink, error) {
	return d.defineInk(name, color.NewCMYK(c, m, y, k))
}

// DefineLabSpotColor registers an ink with a CIE L*a*b* alternate color.
// If an ink of the same name exists already, its alternate color is
// replaced.
func (d *Document) DefineLabSpotColor(name string, L, a, b float64) (*color.Ink, error) {
	return d.defineInk(name, color.NewLab(L, a, b))
}

func (d *Document) defineInk(name string, alt color.Color) (*color.Ink, error) {
	ink, err := color.NewInk(name, alt)
	if err != nil {
		return nil, err
	}
	if old, ok := d.inks[name]; ok {
		old.Alternate = ink.Alternate
		return old, nil
	}
	d.inks[name] = ink
	return ink, nil
}

// Ink returns the ink with the given name, or nil if no such ink has been
// defined.
func (d *Document) Ink(name string) *color.Ink {
	return d.inks[name]
}

// SetFillSpot sets the fill color to a tint of a registered ink.
// If the ink is not known, a diagnostic is recorded and the fill color
// is left unchanged.
func (d *Document) SetFillSpot(name string, tint float64) {
	if ink := d.lookupInk(name); ink != nil {
		d.SetFillColor(ink.Tint(tint))
	}
}

// SetStrokeSpot sets the stroke color to a tint of a registered ink.
// If the ink is not known, a diagnostic is recorded and the stroke color
// is left unchanged.
func (d *Document) SetStrokeSpot(name string, tint float64) {
	if ink := d.lookupInk(name); ink != nil {
		d.SetStrokeColor(ink.Tint(tint))
	}
}

func (d *Document) lookupInk(name string) *color.Ink {
	ink := d.inks[name]
	if ink == nil {
		d.log.Addf(diag.Color, -1, "unknown spot color %q", name)
	}
	return ink
}

// Diagnostics returns all problems found so far.
func (d *Document) Diagnostics() []diag.Entry {
	return d.log.Entries()
}

// Bytes returns the PDF file.
func (d *Document) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	_, err := d.WriteTo(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the PDF file to w.
// This implements the [io.WriterTo] interface.
//
// Each call assembles a new set of PDF objects from the current page
// contents.  Graphics states which are still open are closed in the
// output, without affecting the document.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if d.Writer.Err != nil {
		return 0, d.Writer.Err
	}
	if d.MediaBox == nil {
		return 0, errors.New("page size not set")
	}

	out, err := pdf.NewWriter(pdf.V1_4)
	if err != nil {
		return 0, err
	}
	rm := pdf.NewResourceManager(out)

	catalogRef := out.Alloc()
	pagesRef := out.Alloc()
	pageRef := out.Alloc()
	contentRef := out.Alloc()
	resourcesRef := out.Alloc()

	data := d.content.Bytes()
	if n := d.Depth(); n > 0 {
		data = append(bytes.Clone(data), bytes.Repeat([]byte("Q\n"), n)...)
	}
	err = out.PutStream(contentRef, nil, data, pdf.FilterFlate{})
	if err != nil {
		return 0, err
	}

	resources, err := d.EmbedResources(rm)
	if err != nil {
		return 0, err
	}
	err = out.Put(resourcesRef, resources)
	if err != nil {
		return 0, err
	}

	box := d.MediaBox
	err = out.Put(pageRef, pdf.Dict{
		"Type":   pdf.Name("Page"),
		"Parent": pagesRef,
		"MediaBox": pdf.Array{
			pdf.Number(box.LLx), pdf.Number(box.LLy),
			pdf.Number(box.URx), pdf.Number(box.URy),
		},
		"Contents":  contentRef,
		"Resources": resourcesRef,
	})
	if err != nil {
		return 0, err
	}
	err = out.Put(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  pdf.Array{pageRef},
		"Count": pdf.Integer(1),
	})
	if err != nil {
		return 0, err
	}

	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": pagesRef,
	}
	if info := d.opt.Info; info != nil {
		infoRef, err := rm.Embed(info)
		if err != nil {
			return 0, err
		}
		out.Info = infoRef.(pdf.Reference)

		packet, err := info.XMP()
		if err != nil {
			return 0, err
		}
		catalog["Metadata"], err = rm.Embed(&metadata.Stream{Data: packet})
		if err != nil {
			return 0, err
		}
	}
	err = out.Put(catalogRef, catalog)
	if err != nil {
		return 0, err
	}
	out.Root = catalogRef

	return out.WriteTo(w)
}
