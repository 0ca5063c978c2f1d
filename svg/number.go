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

package svg

import (
	"strconv"
	"strings"
)

// scanNumber reads a number starting at position pos of s.  Leading
// white space and commas are skipped.  The number syntax follows the SVG path
// grammar, so that in "1.5.5" the second "." starts a new number and in
// "10-5" the minus sign does.
//
// If no number is found, ok is false and next equals the position of the
// first character which is not white space or a comma.
func scanNumber(s string, pos int) (val float64, next int, ok bool) {
	pos = skipSeparators(s, pos)
	start := pos
	i := pos
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, start, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	val, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		// only possible for out-of-range values
		return 0, start, false
	}
	return val, i, true
}

// scanFlag reads an arc flag, which is a single "0" or "1" character.
func scanFlag(s string, pos int) (flag bool, next int, ok bool) {
	pos = skipSeparators(s, pos)
	if pos < len(s) {
		switch s[pos] {
		case '0':
			return false, pos + 1, true
		case '1':
			return true, pos + 1, true
		}
	}
	return false, pos, false
}

func skipSeparators(s string, pos int) int {
	for pos < len(s) && (isSpace(s[pos]) || s[pos] == ',') {
		pos++
	}
	return pos
}

// ParseNumbers returns all numbers in a comma or white space separated
// list.  Parsing stops at the first character which does not belong to a
// number.
func ParseNumbers(s string) []float64 {
	var res []float64
	pos := 0
	for {
		val, next, ok := scanNumber(s, pos)
		if !ok {
			break
		}
		res = append(res, val)
		pos = next
	}
	return res
}

// ParseLength parses an SVG length and converts it to PDF points.
// Unitless values and pixels are taken as one point per unit.
// Percentages are not supported.
func ParseLength(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	val, next, ok := scanNumber(s, 0)
	if !ok {
		return 0, false
	}
	unit := strings.ToLower(strings.TrimSpace(s[next:]))
	switch unit {
	case "", "px", "pt":
		return val, true
	case "pc":
		return val * 12, true
	case "in":
		return val * 72, true
	case "cm":
		return val * 72 / 2.54, true
	case "mm":
		return val * 72 / 25.4, true
	}
	return 0, false
}

// parseFraction parses an opacity value, given as a number or a percentage.
// The result is clamped to the range from 0 to 1.
func parseFraction(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	val, next, ok := scanNumber(s, 0)
	if !ok {
		return 0, false
	}
	switch strings.TrimSpace(s[next:]) {
	case "":
		// pass
	case "%":
		val /= 100
	default:
		return 0, false
	}
	return min(max(val, 0), 1), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
