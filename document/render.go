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
	"errors"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgpdf/diag"
	"seehuhn.de/go/svgpdf/graphics"
	"seehuhn.de/go/svgpdf/graphics/color"
	"seehuhn.de/go/svgpdf/svg"
)

// Size is the size of a drawing on the page, in PDF points.
// A zero value for either dimension means that the dimension is
// computed from the other one, preserving the aspect ratio of the drawing.
type Size struct {
	Width  float64
	Height float64
}

// errNoDrawing is returned by DrawSVG if the markup contains no svg element.
var errNoDrawing = errors.New("no <svg> element found")

// DrawSVG parses an SVG drawing and draws it onto the page.
//
// The point (x, y) is the position of the top-left corner of the drawing,
// measured in PDF points from the top-left corner of the page.  If size is
// nil, the drawing uses the size given by its width and height attributes.
//
// Problems in the markup are recorded as diagnostics and the affected
// elements are skipped.  An error is returned only if the markup contains
// no svg element, or if writing the content stream failed.
func (d *Document) DrawSVG(markup string, x, y float64, size *Size) error {
	root := svg.Parse(markup, d.log)
	if root == nil || root.Tag != "svg" {
		d.log.Add(diag.Markup, -1, errNoDrawing.Error())
		return errNoDrawing
	}

	M := d.placement(root, x, y, size)

	d.PushGraphicsState()
	d.Transform(M)
	style := svg.ComputeStyle(root, svg.DefaultStyle, d.log)
	d.renderChildren(root, style)
	d.PopGraphicsState()

	return d.Writer.Err
}

// placement computes the matrix which maps the coordinates of the drawing
// to PDF user space.
func (d *Document) placement(root *svg.Node, x, y float64, size *Size) matrix.Matrix {
	width := d.lengthAttr(root, "width")
	height := d.lengthAttr(root, "height")

	var vbX, vbY, vbW, vbH float64
	if s, ok := root.Attr("viewBox"); ok {
		vb := svg.ParseNumbers(s)
		if len(vb) == 4 && vb[2] > 0 && vb[3] > 0 {
			vbX, vbY, vbW, vbH = vb[0], vb[1], vb[2], vb[3]
		} else {
			d.log.Addf(diag.Render, root.Offset, "invalid viewBox %q", s)
		}
	}
	if vbW == 0 {
		vbW, vbH = width, height
	}
	if width <= 0 || height <= 0 {
		width, height = vbW, vbH
	}

	targetW, targetH := width, height
	if size != nil {
		switch {
		case size.Width > 0 && size.Height > 0:
			targetW, targetH = size.Width, size.Height
		case size.Width > 0 && width > 0:
			targetW, targetH = size.Width, size.Width*height/width
		case size.Height > 0 && height > 0:
			targetW, targetH = size.Height*width/height, size.Height
		}
	}

	sx, sy := 1.0, 1.0
	if vbW > 0 && vbH > 0 && targetW > 0 && targetH > 0 {
		sx = targetW / vbW
		sy = targetH / vbH
	}

	pageTop := d.MediaBox.URy
	// move the view box origin to (0,0), scale and flip, then move the
	// drawing into position
	return matrix.Translate(-vbX, -vbY).
		Mul(matrix.Scale(sx, -sy)).
		Mul(matrix.Translate(x, pageTop-y))
}

func (d *Document) renderChildren(n *svg.Node, style svg.Style) {
	for _, child := range n.Children {
		d.renderNode(child, style)
	}
}

func (d *Document) renderNode(n *svg.Node, parent svg.Style) {
	var path svg.Path
	isGroup := false
	switch n.Tag {
	case "title", "desc", "defs", "metadata":
		return
	case "g", "svg":
		isGroup = true
	case "rect":
		path = svg.RectPath(
			d.lengthAttr(n, "x"), d.lengthAttr(n, "y"),
			d.lengthAttr(n, "width"), d.lengthAttr(n, "height"),
			d.lengthAttr(n, "rx"), d.lengthAttr(n, "ry"))
	case "circle":
		r := d.lengthAttr(n, "r")
		path = svg.EllipsePath(d.lengthAttr(n, "cx"), d.lengthAttr(n, "cy"), r, r)
	case "ellipse":
		path = svg.EllipsePath(
			d.lengthAttr(n, "cx"), d.lengthAttr(n, "cy"),
			d.lengthAttr(n, "rx"), d.lengthAttr(n, "ry"))
	case "line":
		path = svg.LinePath(
			d.lengthAttr(n, "x1"), d.lengthAttr(n, "y1"),
			d.lengthAttr(n, "x2"), d.lengthAttr(n, "y2"))
	case "polyline", "polygon":
		points, _ := n.Attr("points")
		coords := svg.ParseNumbers(points)
		if len(coords)%2 != 0 {
			d.log.Addf(diag.Render, n.Offset, "odd number of coordinates in <%s>", n.Tag)
		}
		path = svg.PolyPath(coords, n.Tag == "polygon")
	case "path":
		data, _ := n.Attr("d")
		path = svg.ParsePath(data, d.log)
	default:
		d.log.Addf(diag.Render, n.Offset, "unsupported element <%s>", n.Tag)
		return
	}

	style := svg.ComputeStyle(n, parent, d.log)

	trfm, hasTransform := n.Attr("transform")
	if hasTransform {
		d.PushGraphicsState()
		d.Transform(svg.ParseTransform(trfm, d.log))
	}

	if isGroup {
		d.renderChildren(n, style)
	} else {
		d.drawPath(path, style, n.Tag == "line")
	}

	if hasTransform {
		d.PopGraphicsState()
	}
}

// drawPath paints a path using the given style.  Lines are never filled.
func (d *Document) drawPath(path svg.Path, style svg.Style, noFill bool) {
	if len(path) == 0 {
		return
	}

	fill := !noFill && d.setPaint(style.Fill, false)
	stroke := style.StrokeWidth > 0 && d.setPaint(style.Stroke, true)
	if !fill && !stroke {
		return
	}

	for _, cmd := range path {
		switch c := cmd.(type) {
		case svg.MoveTo:
			d.MoveTo(c.X, c.Y)
		case svg.LineTo:
			d.LineTo(c.X, c.Y)
		case svg.CurveTo:
			d.CurveTo(c[0].X, c[0].Y, c[1].X, c[1].Y, c[2].X, c[2].Y)
		case svg.ClosePath:
			d.ClosePath()
		}
	}

	rule := graphics.NonZero
	if style.FillRule == "evenodd" {
		rule = graphics.EvenOdd
	}
	switch {
	case fill && stroke:
		d.SetFillAlpha(style.FillOpacity)
		d.SetStrokeAlpha(style.StrokeOpacity)
		d.SetLineWidth(style.StrokeWidth)
		d.FillAndStroke(rule)
	case fill:
		d.SetFillAlpha(style.FillOpacity)
		d.Fill(rule)
	default:
		d.SetStrokeAlpha(style.StrokeOpacity)
		d.SetLineWidth(style.StrokeWidth)
		d.Stroke()
	}
}

// setPaint resolves a paint token and installs the resulting color.
// The return value indicates whether anything is to be painted.
func (d *Document) setPaint(token string, stroke bool) bool {
	c, res := d.resolver.Resolve(token)
	switch res {
	case color.Paint:
		if stroke {
			d.SetStrokeColor(c)
		} else {
			d.SetFillColor(c)
		}
		return true
	case color.Retain:
		return true
	default:
		return false
	}
}

// lengthAttr returns the value of a length attribute in user units.
// Missing attributes are taken as zero.
func (d *Document) lengthAttr(n *svg.Node, name string) float64 {
	s, ok := n.Attr(name)
	if !ok || strings.TrimSpace(s) == "" {
		return 0
	}
	x, ok := svg.ParseLength(s)
	if !ok {
		d.log.Addf(diag.Render, n.Offset, "invalid %s %q on <%s>", name, s, n.Tag)
		return 0
	}
	return x
}
