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
	"strings"

	"seehuhn.de/go/svgpdf/diag"
)

// Node is an element of an SVG document.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node

	// Offset is the byte offset of the opening tag in the input.
	Offset int
}

// Attr returns the value of the given attribute, and whether the
// attribute is present.
func (n *Node) Attr(name string) (string, bool) {
	val, ok := n.Attrs[name]
	return val, ok
}

// Parse reads SVG markup and returns the first top-level element.
// If the input contains no element, nil is returned.
//
// Text content is discarded.  XML declarations, processing instructions,
// comments, CDATA sections and document type declarations are skipped.
// Malformed markup is reported to log, and the parser returns as much of the
// tree as it could reconstruct.
func Parse(markup string, log *diag.Log) *Node {
	p := &parser{src: markup, log: log}
	nodes := p.parseContent(0, len(markup))
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

type parser struct {
	src string
	log *diag.Log
}

// tag describes a single start, end or empty-element tag.
type tag struct {
	name        string
	attrs       map[string]string
	isClose     bool
	selfClosing bool
	start, end  int
}

// parseContent parses the elements in src[from:to].
func (p *parser) parseContent(from, to int) []*Node {
	var nodes []*Node
	pos := from
	for pos < to {
		lt := strings.IndexByte(p.src[pos:to], '<')
		if lt < 0 {
			break
		}
		pos += lt

		if next, skipped := p.skipSpecial(pos, to); skipped {
			pos = next
			continue
		}

		t, ok := p.readTag(pos, to)
		if !ok {
			p.log.Add(diag.Markup, pos, "malformed tag")
			pos++
			continue
		}
		if t.isClose {
			p.log.Addf(diag.Markup, pos, "unmatched closing tag </%s>", t.name)
			pos = t.end
			continue
		}

		node := &Node{Tag: t.name, Attrs: t.attrs, Offset: t.start}
		nodes = append(nodes, node)
		if t.selfClosing {
			pos = t.end
			continue
		}

		innerEnd, closeEnd, found := p.findClose(t.name, t.end, to)
		if !found {
			p.log.Addf(diag.Markup, t.start, "element <%s> is not closed", t.name)
			node.Children = p.parseContent(t.end, to)
			break
		}
		node.Children = p.parseContent(t.end, innerEnd)
		pos = closeEnd
	}
	return nodes
}

// findClose locates the closing tag which matches an element with the given
// name, whose content starts at position from.  Nested elements with the
// same name are taken into account.
func (p *parser) findClose(name string, from, to int) (innerEnd, closeEnd int, found bool) {
	depth := 0
	pos := from
	for pos < to {
		lt := strings.IndexByte(p.src[pos:to], '<')
		if lt < 0 {
			break
		}
		pos += lt

		if next, skipped := p.skipSpecial(pos, to); skipped {
			pos = next
			continue
		}

		t, ok := p.readTag(pos, to)
		if !ok {
			pos++
			continue
		}
		if t.name == name {
			switch {
			case t.isClose && depth == 0:
				return t.start, t.end, true
			case t.isClose:
				depth--
			case !t.selfClosing:
				depth++
			}
		}
		pos = t.end
	}
	return 0, 0, false
}

// skipSpecial skips comments, processing instructions, CDATA sections
// and declarations starting at pos.
func (p *parser) skipSpecial(pos, to int) (int, bool) {
	rest := p.src[pos:to]
	var term string
	switch {
	case strings.HasPrefix(rest, "<!--"):
		term = "-->"
	case strings.HasPrefix(rest, "<![CDATA["):
		term = "]]>"
	case strings.HasPrefix(rest, "<?"):
		term = "?>"
	case strings.HasPrefix(rest, "<!"):
		term = ">"
	default:
		return pos, false
	}
	k := strings.Index(rest[2:], term)
	if k < 0 {
		p.log.Add(diag.Markup, pos, "unterminated markup declaration")
		return to, true
	}
	return pos + 2 + k + len(term), true
}

// readTag reads the tag starting at position pos, which must hold a "<".
func (p *parser) readTag(pos, to int) (*tag, bool) {
	s := p.src[:to]
	t := &tag{start: pos}
	i := pos + 1
	if i < len(s) && s[i] == '/' {
		t.isClose = true
		i++
	}

	nameStart := i
	for i < len(s) && isNameChar(s[i]) {
		i++
	}
	if i == nameStart {
		return nil, false
	}
	t.name = s[nameStart:i]

	if t.isClose {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) || s[i] != '>' {
			return nil, false
		}
		t.end = i + 1
		return t, true
	}

	t.attrs = make(map[string]string)
	for {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			return nil, false
		}
		switch {
		case s[i] == '>':
			t.end = i + 1
			return t, true
		case strings.HasPrefix(s[i:], "/>"):
			t.selfClosing = true
			t.end = i + 2
			return t, true
		}

		attrStart := i
		for i < len(s) && isNameChar(s[i]) {
			i++
		}
		if i == attrStart {
			return nil, false
		}
		key := s[attrStart:i]

		j := i
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		if j >= len(s) || s[j] != '=' {
			t.attrs[key] = ""
			continue
		}
		j++
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		if j >= len(s) {
			return nil, false
		}

		switch q := s[j]; q {
		case '"', '\'':
			k := strings.IndexByte(s[j+1:], q)
			if k < 0 {
				return nil, false
			}
			t.attrs[key] = s[j+1 : j+1+k]
			i = j + 1 + k + 1
		default:
			k := j
			for k < len(s) && !isSpace(s[k]) && s[k] != '>' &&
				!strings.HasPrefix(s[k:], "/>") {
				k++
			}
			t.attrs[key] = s[j:k]
			i = k
		}
	}
}

func isNameChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_' || c == ':' || c == '.'
}
