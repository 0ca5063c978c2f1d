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

package function

import "fmt"

// InvalidFunctionError reports a function which cannot be written to a PDF
// file because one of its fields is out of range.
type InvalidFunctionError struct {
	Type   int
	Field  string
	Reason string
}

func (e *InvalidFunctionError) Error() string {
	return fmt.Sprintf("function type %d: bad %s: %s", e.Type, e.Field, e.Reason)
}

func errType2(field, format string, args ...any) error {
	return &InvalidFunctionError{
		Type:   2,
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}
