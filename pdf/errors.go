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
)

// VersionError is returned when trying to use a feature in a PDF file which
// is not supported by the PDF version used.
type VersionError struct {
	Operation string
	Earliest  Version
}

func (err *VersionError) Error() string {
	return fmt.Sprintf("%s requires PDF version %s or newer",
		err.Operation, err.Earliest)
}

// InvariantError indicates that the object graph handed to a [Writer] is
// inconsistent.  This is always caused by a bug in the calling code, and no
// output is produced.
type InvariantError struct {
	Ref     Reference
	Problem string
}

func (err *InvariantError) Error() string {
	return fmt.Sprintf("object %d: %s", err.Ref.Number(), err.Problem)
}

var (
	errWriterClosed   = errors.New("PDF writer is already closed")
	errUnknownVersion = errors.New("unsupported PDF version")
)
