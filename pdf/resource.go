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

package pdf

import (
	"fmt"
)

// Embedder is implemented by resources which are written to a PDF file on
// demand, such as color spaces, tint transforms and ExtGState
// dictionaries.
//
// Embedders are used as map keys by [ResourceManager], so implementations
// must be comparable.  They must not hold references into a particular
// file: the same value may be embedded into several files, one per
// serialization pass.
type Embedder interface {
	// Embed converts the Go representation of the object into a PDF object.
	// If the object is written as an indirect object, the returned value
	// is the corresponding reference.
	Embed(rm *ResourceManager) (Object, error)
}

// ResourceManager embeds each [Embedder] at most once per file.
// Later calls return the object produced by the first call.
type ResourceManager struct {
	Out      *Writer
	embedded map[any]Object
	order    []any
}

// NewResourceManager returns a ResourceManager which writes to w.
func NewResourceManager(w *Writer) *ResourceManager {
	rm := &ResourceManager{Out: w}
	rm.embedded = make(map[any]Object)
	return rm
}

// Embed embeds a resource into the PDF file.
func (rm *ResourceManager) Embed(r Embedder) (Object, error) {
	if existing, ok := rm.embedded[r]; ok {
		return existing, nil
	}

	val, err := r.Embed(rm)
	if err != nil {
		return nil, fmt.Errorf("failed to embed %T: %w", r, err)
	}

	rm.embedded[r] = val
	rm.order = append(rm.order, r)
	return val, nil
}

// Len returns the number of distinct resources embedded so far.
func (rm *ResourceManager) Len() int {
	return len(rm.order)
}
