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

// Package metadata describes a PDF document as a whole.
//
// The same information can be written in two forms: as a document
// information dictionary, referenced from the file trailer, and as an XMP
// metadata stream, referenced from the document catalog.
package metadata

import (
	"bytes"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/svgpdf/pdf"
)

// PDF 1.7 sections: 14.3.3

// Info contains the entries of the document information dictionary.
// Empty fields are omitted from the output.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator is the name of the application which created the original
	// drawing.
	Creator string

	// Producer is the name of the application which converted the drawing
	// to PDF.
	Producer string

	CreationDate time.Time
}

// Embed writes the document information dictionary.
// This implements the [pdf.Embedder] interface.
func (info *Info) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	dict := pdf.Dict{}
	setText := func(key pdf.Name, val string) {
		if val != "" {
			dict[key] = pdf.TextString(val)
		}
	}
	setText("Title", info.Title)
	setText("Author", info.Author)
	setText("Subject", info.Subject)
	setText("Keywords", info.Keywords)
	setText("Creator", info.Creator)
	setText("Producer", info.Producer)
	if !info.CreationDate.IsZero() {
		dict["CreationDate"] = pdf.Date(info.CreationDate)
		dict["ModDate"] = pdf.Date(info.CreationDate)
	}
	return rm.Out.Write(dict)
}

// XMP returns the information as an XMP packet.
func (info *Info) XMP() (*xmp.Packet, error) {
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(language.MustParse("x-default"), info.Title)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(language.MustParse("x-default"), info.Subject)
	}

	basic := &basicNS{}
	if !info.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(info.CreationDate)
		basic.ModifyDate = xmp.NewDate(info.CreationDate)
	}
	if info.Creator != "" {
		basic.CreatorTool = xmp.NewAgentName(info.Creator)
	}

	pdfInfo := &pdfNS{}
	if info.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(info.Keywords)
	}
	if info.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(info.Producer)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, pdfInfo)
	if err != nil {
		return nil, err
	}
	return packet, nil
}

// basicNS is the XMP basic namespace.
type basicNS struct {
	_           xmp.Namespace `xmp:"http://ns.adobe.com/xap/1.0/"`
	_           xmp.Prefix    `xmp:"xmp"`
	CreateDate  xmp.Date
	ModifyDate  xmp.Date
	CreatorTool xmp.AgentName
}

// pdfNS is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type pdfNS struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// PDF 1.7 sections: 14.3.2

// Stream represents an XMP metadata stream for the document.
type Stream struct {
	Data *xmp.Packet
}

// Embed adds the XMP metadata stream to the PDF file.
// The stream is not compressed, so that the metadata can be found by
// tools which do not understand PDF.
// This implements the [pdf.Embedder] interface.
func (s *Stream) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	w := rm.Out
	if err := pdf.CheckVersion(w, "XMP metadata stream", pdf.V1_4); err != nil {
		return nil, err
	}

	body := &bytes.Buffer{}
	err := s.Data.Write(body, nil)
	if err != nil {
		return nil, err
	}

	ref := w.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	err = w.PutStream(ref, dict, body.Bytes())
	if err != nil {
		return nil, err
	}
	return ref, nil
}
