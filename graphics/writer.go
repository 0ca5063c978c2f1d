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
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/svgpdf/diag"
	"seehuhn.de/go/svgpdf/internal/float"
	"seehuhn.de/go/svgpdf/pdf"
)

// Writer writes a PDF content stream.
type Writer struct {
	Content io.Writer
	Err     error

	// Log receives a diagnostic whenever an invalid number is replaced.
	Log *diag.Log

	State
	stack []State

	// path holds the path construction operators of the path currently
	// being built.  These are written when the path is painted.
	path         bytes.Buffer
	hasPath      bool
	hasCurrent   bool
	currentX     float64
	currentY     float64
	startX       float64
	startY       float64
	pathIsClosed bool

	resName  map[catRes]pdf.Name
	resOrder []catRes
	numUsed  map[resourceCategory]int
}

type catRes struct {
	cat resourceCategory
	res pdf.Embedder
}

type resourceCategory byte

// The resource categories used by the writer.
// These corresponds to the fields in the Resources dictionary.
const (
	catExtGState resourceCategory = iota + 1
	catColorSpace
)

// NewWriter allocates a new Writer object.
func NewWriter(out io.Writer, log *diag.Log) *Writer {
	return &Writer{
		Content: out,
		Log:     log,
		State:   NewState(),
		resName: make(map[catRes]pdf.Name),
		numUsed: make(map[resourceCategory]int),
	}
}

// Depth returns the number of graphics states currently saved by
// [Writer.PushGraphicsState].
func (w *Writer) Depth() int {
	return len(w.stack)
}

// getResourceName returns the name used to refer to a resource from
// within the content stream.  Names are allocated on first use.
func (w *Writer) getResourceName(cat resourceCategory, res pdf.Embedder) pdf.Name {
	key := catRes{cat, res}
	if name, ok := w.resName[key]; ok {
		return name
	}

	w.numUsed[cat]++
	name := getCategoryPrefix(cat) + pdf.Name(strconv.Itoa(w.numUsed[cat]))
	w.resName[key] = name
	w.resOrder = append(w.resOrder, key)
	return name
}

func getCategoryPrefix(category resourceCategory) pdf.Name {
	switch category {
	case catExtGState:
		return "E"
	case catColorSpace:
		return "C"
	default:
		panic("invalid resource category")
	}
}

// num checks that x is a finite number.  Invalid values are replaced
// by zero.
func (w *Writer) num(op string, x float64) float64 {
	if float.IsFinite(x) {
		return x
	}
	w.Log.Addf(diag.Graphics, -1, "%s: invalid number %g replaced by 0", op, x)
	return 0
}

// nums applies [Writer.num] to all arguments, in place.
func (w *Writer) nums(op string, xx ...*float64) {
	for _, x := range xx {
		*x = w.num(op, *x)
	}
}

// format formats a number for use in the content stream.
func format(x float64) string {
	return float.Format(x, 5)
}

func (w *Writer) writeOp(out io.Writer, op string, args ...float64) {
	if w.Err != nil {
		return
	}
	parts := make([]string, 0, len(args)+1)
	for _, x := range args {
		parts = append(parts, format(x))
	}
	parts = append(parts, op)
	_, w.Err = fmt.Fprintln(out, strings.Join(parts, " "))
}
