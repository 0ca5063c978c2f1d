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
	"fmt"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgpdf/diag"
)

// Command is a normalized path command.  This is a closed set: the
// implementations are [MoveTo], [LineTo], [CurveTo] and [ClosePath].
type Command interface {
	isCommand()
}

// MoveTo starts a new subpath at the given point.
type MoveTo vec.Vec2

// LineTo appends a straight line to the given point.
type LineTo vec.Vec2

// CurveTo appends a cubic Bezier curve with control points [0] and [1],
// ending at [2].
type CurveTo [3]vec.Vec2

// ClosePath closes the current subpath.
type ClosePath struct{}

func (MoveTo) isCommand()    {}
func (LineTo) isCommand()    {}
func (CurveTo) isCommand()   {}
func (ClosePath) isCommand() {}

// Path is a sequence of normalized path commands.
type Path []Command

// String returns the path in SVG path data notation.
func (p Path) String() string {
	parts := make([]string, 0, len(p))
	for _, cmd := range p {
		switch c := cmd.(type) {
		case MoveTo:
			parts = append(parts, fmt.Sprintf("M%g,%g", c.X, c.Y))
		case LineTo:
			parts = append(parts, fmt.Sprintf("L%g,%g", c.X, c.Y))
		case CurveTo:
			parts = append(parts, fmt.Sprintf("C%g,%g %g,%g %g,%g",
				c[0].X, c[0].Y, c[1].X, c[1].Y, c[2].X, c[2].Y))
		case ClosePath:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

// curve families for smooth curve reflection
const (
	familyNone byte = iota
	familyCubic
	familyQuad
)

// pathParser holds the state of the path data interpreter.
type pathParser struct {
	src string
	pos int
	log *diag.Log

	res Path

	cur      vec.Vec2
	start    vec.Vec2
	hasCur   bool
	lastCtrl vec.Vec2
	family   byte
}

// numArgs gives the number of arguments of each path command.
var numArgs = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
}

// ParsePath interprets SVG path data.  The result contains only
// [MoveTo], [LineTo], [CurveTo] and [ClosePath] commands: horizontal and
// vertical lines become LineTo, quadratic curves are converted into the
// equivalent cubic curves, and elliptical arcs are approximated by
// cubic Bezier curves.
//
// Invalid command letters are reported to log and skipped, together with
// any numbers following them.
func ParsePath(d string, log *diag.Log) Path {
	p := &pathParser{src: d, log: log}
	p.run()
	return p.res
}

func (p *pathParser) run() {
	var cmd byte // 0 means "skip numbers until the next valid command"
	for {
		p.pos = skipSeparators(p.src, p.pos)
		if p.pos >= len(p.src) {
			return
		}

		c := p.src[p.pos]
		if isLetter(c) {
			p.pos++
			upper := c &^ 0x20
			if _, valid := numArgs[upper]; !valid {
				p.log.Addf(diag.Path, p.pos-1, "invalid path command %q", c)
				cmd = 0
				continue
			}
			cmd = c
			if upper == 'Z' {
				p.closePath()
				cmd = 0
				continue
			}
			if !p.runCommand(cmd, true) {
				cmd = 0
			}
			continue
		}

		if cmd == 0 {
			// stray numbers after an invalid command or after "Z"
			_, next, ok := scanNumber(p.src, p.pos)
			if !ok {
				p.log.Addf(diag.Path, p.pos, "unexpected character %q", c)
				next = p.pos + 1
			}
			p.pos = next
			continue
		}

		// implicit repetition of the previous command
		if !p.runCommand(cmd, false) {
			cmd = 0
		}
	}
}

// runCommand reads the arguments for one instance of cmd and executes it.
// If first is true, the command letter was given explicitly.
// The return value indicates whether further implicit repetitions are
// possible.
func (p *pathParser) runCommand(cmd byte, first bool) bool {
	upper := cmd &^ 0x20
	n := numArgs[upper]
	args := make([]float64, n)
	startPos := p.pos
	for i := range n {
		var ok bool
		if upper == 'A' && (i == 3 || i == 4) {
			var flag bool
			flag, p.pos, ok = scanFlag(p.src, p.pos)
			if flag {
				args[i] = 1
			}
		} else {
			args[i], p.pos, ok = scanNumber(p.src, p.pos)
		}
		if !ok {
			if i > 0 || first {
				p.log.Addf(diag.Path, startPos, "missing arguments for path command %q", cmd)
			}
			return false
		}
	}

	rel := cmd != upper
	if upper == 'M' && !first {
		// subsequent coordinate pairs after a moveto are implicit lineto commands
		upper = 'L'
	}
	p.execute(upper, rel, args)
	return true
}

func (p *pathParser) execute(cmd byte, rel bool, args []float64) {
	var base vec.Vec2
	if rel {
		base = p.cur
	}
	pt := func(i int) vec.Vec2 {
		return vec.Vec2{X: base.X + args[i], Y: base.Y + args[i+1]}
	}

	if cmd != 'M' && !p.hasCur {
		p.moveTo(p.cur)
	}

	family := familyNone
	switch cmd {
	case 'M':
		p.moveTo(pt(0))
	case 'L':
		p.lineTo(pt(0))
	case 'H':
		p.lineTo(vec.Vec2{X: base.X + args[0], Y: p.cur.Y})
	case 'V':
		p.lineTo(vec.Vec2{X: p.cur.X, Y: base.Y + args[0]})
	case 'C':
		p.curveTo(pt(0), pt(2), pt(4))
		family = familyCubic
	case 'S':
		c1 := p.reflect(familyCubic)
		p.curveTo(c1, pt(0), pt(2))
		family = familyCubic
	case 'Q':
		p.quadTo(pt(0), pt(2))
		family = familyQuad
	case 'T':
		q := p.reflect(familyQuad)
		p.quadTo(q, pt(0))
		family = familyQuad
	case 'A':
		end := pt(5)
		p.res = append(p.res, Arc(p.cur, args[0], args[1], args[2], args[3] != 0, args[4] != 0, end)...)
		p.cur = end
	}
	p.family = family
}

// reflect returns the first control point of a smooth curve.  This is the
// reflection of the previous control point about the current point, if the
// previous command belonged to the same family of curves, and the current
// point otherwise.
func (p *pathParser) reflect(family byte) vec.Vec2 {
	if p.family != family {
		return p.cur
	}
	return vec.Vec2{X: 2*p.cur.X - p.lastCtrl.X, Y: 2*p.cur.Y - p.lastCtrl.Y}
}

func (p *pathParser) moveTo(a vec.Vec2) {
	p.res = append(p.res, MoveTo(a))
	p.cur = a
	p.start = a
	p.hasCur = true
	p.family = familyNone
}

func (p *pathParser) lineTo(a vec.Vec2) {
	p.res = append(p.res, LineTo(a))
	p.cur = a
}

func (p *pathParser) curveTo(c1, c2, a vec.Vec2) {
	p.res = append(p.res, CurveTo{c1, c2, a})
	p.cur = a
	p.lastCtrl = c2
}

// quadTo appends a quadratic Bezier curve with control point q, converted
// to a cubic curve by degree elevation.
func (p *pathParser) quadTo(q, a vec.Vec2) {
	p0 := p.cur
	c1 := vec.Vec2{X: p0.X + 2.0/3.0*(q.X-p0.X), Y: p0.Y + 2.0/3.0*(q.Y-p0.Y)}
	c2 := vec.Vec2{X: a.X + 2.0/3.0*(q.X-a.X), Y: a.Y + 2.0/3.0*(q.Y-a.Y)}
	p.res = append(p.res, CurveTo{c1, c2, a})
	p.cur = a
	p.lastCtrl = q
}

func (p *pathParser) closePath() {
	if !p.hasCur {
		p.log.Add(diag.Path, p.pos-1, "close path without current point")
		return
	}
	p.res = append(p.res, ClosePath{})
	p.cur = p.start
	p.family = familyNone
}
