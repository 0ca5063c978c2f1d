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
	"errors"
	"fmt"
	"io"
	"slices"
)

// Writer collects the indirect objects of a PDF file and serializes them.
//
// Object numbers are allocated in increasing order, starting at 1.  A
// reference can be allocated before the corresponding object body is known,
// so that earlier objects can refer to later ones.  Nothing is written
// until [Writer.WriteTo] is called; at this point every allocated object
// must have been stored.
type Writer struct {
	Version Version

	// Root is the reference to the document catalog.
	Root Reference

	// Info, if non-zero, is the reference to the document information
	// dictionary.
	Info Reference

	objects  []Object // objects[i] is object number i+1
	isSet    []bool
	isClosed bool
}

// NewWriter creates a new Writer for the given PDF version.
func NewWriter(ver Version) (*Writer, error) {
	if ver < V1_4 || ver > V1_7 {
		return nil, errUnknownVersion
	}
	return &Writer{Version: ver}, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	pdf.objects = append(pdf.objects, nil)
	pdf.isSet = append(pdf.isSet, false)
	return Reference(len(pdf.objects))
}

// NumObjects returns the number of objects allocated so far.
func (pdf *Writer) NumObjects() int {
	return len(pdf.objects)
}

// Put stores the body of a previously allocated indirect object.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	if pdf.isClosed {
		return errWriterClosed
	}
	idx := int(ref) - 1
	if idx < 0 || idx >= len(pdf.objects) {
		return &InvariantError{Ref: ref, Problem: "not allocated"}
	}
	if pdf.isSet[idx] {
		return &InvariantError{Ref: ref, Problem: "written twice"}
	}
	pdf.objects[idx] = obj
	pdf.isSet[idx] = true
	return nil
}

// Write allocates a new object number and stores obj there.
func (pdf *Writer) Write(obj Object) (Reference, error) {
	ref := pdf.Alloc()
	err := pdf.Put(ref, obj)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// PutStream stores a stream object.  The data is encoded using the given
// filters, and the /Length and /Filter entries of the stream dictionary
// are set accordingly.
func (pdf *Writer) PutStream(ref Reference, dict Dict, data []byte, filters ...Filter) error {
	enc, err := EncodeAll(pdf.Version, data, filters...)
	if err != nil {
		return err
	}

	stmDict := Dict{}
	for key, val := range dict {
		stmDict[key] = val
	}
	var names Array
	var parms Array
	needParms := false
	for _, f := range filters {
		name, p, err := f.Info(pdf.Version)
		if err != nil {
			return err
		}
		names = append(names, name)
		if p != nil {
			parms = append(parms, p)
			needParms = true
		} else {
			parms = append(parms, nil)
		}
	}
	switch len(names) {
	case 0:
		// pass
	case 1:
		stmDict["Filter"] = names[0]
		if needParms {
			stmDict["DecodeParms"] = parms[0]
		}
	default:
		stmDict["Filter"] = names
		if needParms {
			stmDict["DecodeParms"] = parms
		}
	}

	return pdf.Put(ref, &Stream{Dict: stmDict, Data: enc})
}

// WriteTo serializes all objects, followed by the cross-reference table
// and the trailer.  This implements the [io.WriterTo] interface.
//
// The object graph is validated before anything is written: every
// allocated object must have been stored, and every reference must point
// to an allocated object.  If this is not the case, an [*InvariantError]
// is returned and no output is produced.
func (pdf *Writer) WriteTo(w io.Writer) (int64, error) {
	if pdf.isClosed {
		return 0, errWriterClosed
	}
	if pdf.Root == 0 {
		return 0, errors.New("missing /Root")
	}
	err := pdf.check()
	if err != nil {
		return 0, err
	}
	pdf.isClosed = true

	out := &posWriter{w: w}
	_, err = fmt.Fprintf(out, "%%PDF-%s\n%%\x80\x80\x80\x80\n", pdf.Version)
	if err != nil {
		return out.pos, err
	}

	offsets := make([]int64, len(pdf.objects))
	for i, obj := range pdf.objects {
		offsets[i] = out.pos
		_, err = fmt.Fprintf(out, "%d 0 obj\n", i+1)
		if err != nil {
			return out.pos, err
		}
		if obj == nil {
			_, err = io.WriteString(out, "null")
		} else {
			err = obj.PDF(out)
		}
		if err != nil {
			return out.pos, err
		}
		_, err = io.WriteString(out, "\nendobj\n")
		if err != nil {
			return out.pos, err
		}
	}

	trailer := Dict{
		"Size": Integer(len(pdf.objects) + 1),
		"Root": pdf.Root,
	}
	if pdf.Info != 0 {
		trailer["Info"] = pdf.Info
	}

	xRefPos := out.pos
	err = writeXRefTable(out, offsets, trailer)
	if err != nil {
		return out.pos, err
	}

	_, err = fmt.Fprintf(out, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	return out.pos, err
}

// check verifies the consistency of the object graph.
func (pdf *Writer) check() error {
	for i, ok := range pdf.isSet {
		if !ok {
			return &InvariantError{Ref: Reference(i + 1), Problem: "allocated but never written"}
		}
	}
	n := Reference(len(pdf.objects))
	var missing Reference
	var seenIn Reference
	for i, obj := range pdf.objects {
		walkRefs(obj, func(ref Reference) bool {
			if ref < 1 || ref > n {
				missing = ref
				seenIn = Reference(i + 1)
				return false
			}
			return true
		})
		if missing != 0 {
			return &InvariantError{
				Ref:     seenIn,
				Problem: fmt.Sprintf("refers to unallocated object %d", missing),
			}
		}
	}
	if pdf.Root > n {
		return &InvariantError{Ref: pdf.Root, Problem: "/Root not allocated"}
	}
	if pdf.Info > n {
		return &InvariantError{Ref: pdf.Info, Problem: "/Info not allocated"}
	}
	return nil
}

// walkRefs calls yield for every reference contained in obj, recursively.
// Walking stops as soon as yield returns false.
func walkRefs(obj Object, yield func(Reference) bool) bool {
	switch obj := obj.(type) {
	case Reference:
		return yield(obj)
	case Array:
		for _, elem := range obj {
			if !walkRefs(elem, yield) {
				return false
			}
		}
	case Dict:
		keys := make([]Name, 0, len(obj))
		for key := range obj {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			if !walkRefs(obj[key], yield) {
				return false
			}
		}
	case *Stream:
		return walkRefs(obj.Dict, yield)
	}
	return true
}

func writeXRefTable(w io.Writer, offsets []int64, trailer Dict) error {
	_, err := fmt.Fprintf(w, "xref\n0 %d\n0000000000 65535 f\r\n", len(offsets)+1)
	if err != nil {
		return err
	}
	for _, pos := range offsets {
		_, err = fmt.Fprintf(w, "%010d 00000 n\r\n", pos)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "trailer\n")
	if err != nil {
		return err
	}
	return trailer.PDF(w)
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
