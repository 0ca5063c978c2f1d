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
	"compress/zlib"
	"io"
)

// A Filter is a PDF stream filter which can encode data.
type Filter interface {
	// Info returns the name and the parameters of the filter,
	// as they appear in the stream dictionary.
	Info(v Version) (Name, Dict, error)

	// Encode returns a writer which encodes the data written to it and
	// writes the result to w.  Closing the returned writer flushes all
	// pending data but does not close w.
	Encode(v Version, w io.Writer) (io.WriteCloser, error)
}

// FilterFlate is the FlateDecode filter.
//
// The filter is represented by a map of filter parameters.
// The only parameter used for encoding is the compression level.
type FilterFlate Dict

// Info implements the [Filter] interface.
func (f FilterFlate) Info(Version) (Name, Dict, error) {
	if len(f) == 0 {
		return "FlateDecode", nil, nil
	}
	parms := Dict{}
	for key, val := range f {
		if key == "Level" {
			continue
		}
		parms[key] = val
	}
	if len(parms) == 0 {
		parms = nil
	}
	return "FlateDecode", parms, nil
}

// Encode implements the [Filter] interface.
func (f FilterFlate) Encode(_ Version, w io.Writer) (io.WriteCloser, error) {
	level := zlib.BestCompression
	if l, ok := f["Level"].(Integer); ok {
		level = int(l)
	}
	return zlib.NewWriterLevel(w, level)
}

// EncodeAll applies a chain of filters to data.  The first filter in the
// list is the one a reader has to apply first when decoding.
func EncodeAll(v Version, data []byte, filters ...Filter) ([]byte, error) {
	for i := len(filters) - 1; i >= 0; i-- {
		buf := &bytes.Buffer{}
		enc, err := filters[i].Encode(v, buf)
		if err != nil {
			return nil, err
		}
		_, err = enc.Write(data)
		if err != nil {
			return nil, err
		}
		err = enc.Close()
		if err != nil {
			return nil, err
		}
		data = buf.Bytes()
	}
	return data, nil
}
