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
	"bytes"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Object represents an object in a PDF file.  The native types of PDF objects
// which implement this interface are Array, Bool, Dict, Integer, Name, Real,
// Reference, *Stream and String.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	s := "false"
	if x {
		s = "true"
	}
	_, err := io.WriteString(w, s)
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Real is a PDF real number.
type Real float64

// PDF implements the [Object] interface.
//
// PDF has no representation for infinities or NaN.  Such values are written
// as 0.
func (x Real) PDF(w io.Writer) error {
	v := float64(x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + "."
	}
	_, err := io.WriteString(w, s)
	return err
}

// Number returns an Integer if x is integral, and a Real otherwise.
// This keeps dictionaries free of trailing decimal points.
func Number(x float64) Object {
	if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
		return Integer(x)
	}
	return Real(x)
}

// String represents a raw string in a PDF file.  The character set encoding,
// if any, is determined by the context.
type String []byte

// PDF implements the [Object] interface.
//
// Strings with mostly printable ASCII content use the literal form;
// everything else is hex encoded.  In literal strings, parentheses are
// escaped only when they do not pair up.
func (x String) PDF(w io.Writer) error {
	printable := 0
	for _, c := range x {
		if c >= 32 && c < 127 || c == '\n' || c == '\r' || c == '\t' {
			printable++
		}
	}
	if 3*(len(x)-printable) > len(x) {
		_, err := fmt.Fprintf(w, "<%x>", []byte(x))
		return err
	}

	unpaired := make(map[int]bool)
	var open []int
	for i, c := range x {
		switch c {
		case '(':
			open = append(open, i)
		case ')':
			if len(open) == 0 {
				unpaired[i] = true
			} else {
				open = open[:len(open)-1]
			}
		}
	}
	for _, i := range open {
		unpaired[i] = true
	}

	buf := make([]byte, 0, len(x)+2)
	buf = append(buf, '(')
	for i, c := range x {
		switch {
		case c == '\\' || unpaired[i]:
			buf = append(buf, '\\', c)
		case c == '\b':
			buf = append(buf, `\b`...)
		case c == '\f':
			buf = append(buf, `\f`...)
		case c < 32 && c != '\n' && c != '\r' && c != '\t', c >= 127:
			buf = fmt.Appendf(buf, `\%03o`, c)
		default:
			buf = append(buf, c)
		}
	}
	buf = append(buf, ')')
	_, err := w.Write(buf)
	return err
}

// Name represents a name in a PDF file.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for _, c := range []byte(x) {
		if c < 0x21 || c > 0x7e || c == '#' || isDelimiter(c) {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// Array is a PDF array.
type Array []Object

func (x Array) String() string {
	return "<Array, " + strconv.Itoa(len(x)) + " elements>"
}

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('[')
	for i, val := range x {
		if i > 0 {
			buf.WriteByte(' ')
		}
		if err := writeObject(buf, val); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	_, err := w.Write(buf.Bytes())
	return err
}

// writeObject writes obj, using the PDF null object for nil.
func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	return obj.PDF(w)
}

// Dict is a PDF dictionary.
//
// Keys are written in sorted order, so that the output is deterministic.
// Entries with a nil value are omitted.
type Dict map[Name]Object

func (x Dict) String() string {
	tp := "Dict"
	if name, ok := x["Type"].(Name); ok {
		tp = string(name) + " Dict"
	}
	return "<" + tp + ", " + strconv.Itoa(len(x)) + " entries>"
}

// PDF implements the [Object] interface.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := io.WriteString(w, "null")
		return err
	}

	buf := &bytes.Buffer{}
	buf.WriteString("<<")
	for _, key := range slices.Sorted(maps.Keys(x)) {
		val := x[key]
		if val == nil {
			continue
		}
		buf.WriteByte('\n')
		if err := key.PDF(buf); err != nil {
			return err
		}
		buf.WriteByte(' ')
		if err := val.PDF(buf); err != nil {
			return err
		}
	}
	buf.WriteString("\n>>")
	_, err := w.Write(buf.Bytes())
	return err
}

// Stream is a PDF stream object.
//
// Data holds the already encoded stream contents.  The /Length entry
// of the dictionary is filled in automatically when the stream is written.
type Stream struct {
	Dict
	Data []byte
}

func (x *Stream) String() string {
	tp := "Stream"
	if name, ok := x.Dict["Type"].(Name); ok {
		tp = string(name) + " Stream"
	}
	return "<" + tp + ", " + strconv.Itoa(len(x.Data)) + " bytes>"
}

// PDF implements the [Object] interface.
func (x *Stream) PDF(w io.Writer) error {
	dict := make(Dict, len(x.Dict)+1)
	for key, val := range x.Dict {
		dict[key] = val
	}
	dict["Length"] = Integer(len(x.Data))

	err := dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nstream\n")
	if err != nil {
		return err
	}
	_, err = w.Write(x.Data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nendstream")
	return err
}

// Reference represents a reference to an indirect object in a PDF file.
// Generation numbers are always zero for the files written by this package.
type Reference uint32

// Number returns the object number of the reference.
func (x Reference) Number() uint32 {
	return uint32(x)
}

func (x Reference) String() string {
	return fmt.Sprintf("<%d 0 R>", uint32(x))
}

// PDF implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d 0 R", uint32(x))
	return err
}

// Format converts a PDF object into the string representation used inside a
// PDF file.
func Format(obj Object) string {
	if obj == nil {
		return "null"
	}
	buf := &bytes.Buffer{}
	if err := obj.PDF(buf); err != nil {
		return "<error: " + err.Error() + ">"
	}
	return buf.String()
}
