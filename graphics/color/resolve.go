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

package color

import (
	"strings"

	"seehuhn.de/go/svgpdf/diag"
)

// Replacement is the result of a [RemapFunc].  This is a closed set: the
// implementations are [Token], [CMYK] and [Lab].
type Replacement interface {
	isReplacement()
}

// Token is a replacement paint token.  It is resolved like the original
// token would have been.
type Token string

func (Token) isReplacement() {}

// RemapFunc is called with every paint token before it is resolved.
// A nil return value means that the token is used unchanged.  A returned
// [CMYK] or [Lab] value is used directly.
type RemapFunc func(token string) Replacement

// SpotRef maps a paint token to a tint of a named ink.
type SpotRef struct {
	// Ink is the name of a registered ink.
	Ink string

	// Tint is the amount of ink to use.  If this is nil, full strength
	// (tint 1) is used.
	Tint *float64
}

// Result describes the outcome of [Resolver.Resolve].
type Result int

// Possible results of [Resolver.Resolve].
const (
	// Paint means that a color was found.
	Paint Result = iota

	// NoPaint means that nothing is painted.  This is the result for "none",
	// "transparent" and for tokens which cannot be parsed.
	NoPaint

	// Retain means that the token referred to an unknown ink.  The
	// previously active color should be kept.
	Retain
)

// Resolver turns SVG paint tokens into colors.
//
// The resolution pipeline is tried in order, and the first match wins:
//  1. the Remap function, if set, may replace the token;
//  2. the Spots table, if set, maps the token to a tint of an ink;
//  3. in CMYK mode, the token is parsed as RGB and converted to CMYK;
//  4. otherwise the token is parsed and kept as RGB.
type Resolver struct {
	Remap RemapFunc
	Spots map[string]SpotRef

	// Inks looks up a registered ink by name.
	Inks func(name string) *Ink

	// CMYK selects CMYK output for all colors which are not remapped to
	// spot or Lab colors.
	CMYK bool

	Log *diag.Log
}

// Resolve converts a paint token into a color.  If the result is not
// [Paint], the returned color is nil.
func (r *Resolver) Resolve(token string) (Color, Result) {
	token = strings.TrimSpace(token)

	if r.Remap != nil {
		switch repl := r.Remap(token).(type) {
		case nil:
			// pass
		case Token:
			// an empty replacement leaves the token unchanged
			if t := strings.TrimSpace(string(repl)); t != "" {
				token = t
			}
		case CMYK:
			return NewCMYK(repl.C, repl.M, repl.Y, repl.K), Paint
		case Lab:
			return NewLab(repl.L, repl.A, repl.B), Paint
		}
	}

	if IsNone(token) {
		return nil, NoPaint
	}

	if ref, ok := r.lookupSpot(token); ok {
		var ink *Ink
		if r.Inks != nil {
			ink = r.Inks(ref.Ink)
		}
		if ink == nil {
			r.Log.Addf(diag.Color, -1, "unknown spot color %q for %q", ref.Ink, token)
			return nil, Retain
		}
		tint := 1.0
		if ref.Tint != nil {
			tint = *ref.Tint
		}
		return NewSpot(ink, tint), Paint
	}

	rgb, ok := ParseRGB(token)
	if !ok {
		r.Log.Addf(diag.Color, -1, "unknown color %q", token)
		return nil, NoPaint
	}
	if r.CMYK {
		return rgb.CMYK(), Paint
	}
	return rgb, Paint
}

func (r *Resolver) lookupSpot(token string) (SpotRef, bool) {
	if len(r.Spots) == 0 {
		return SpotRef{}, false
	}
	if ref, ok := r.Spots[token]; ok {
		return ref, true
	}
	ref, ok := r.Spots[strings.ToLower(token)]
	return ref, ok
}
