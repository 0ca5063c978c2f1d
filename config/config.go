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

// Package config reads conversion settings from TOML files.
//
// A configuration file describes the page, the placement of the drawing,
// the inks available for spot colors, and how the colors found in a drawing
// map to these inks:
//
//	cmyk = true
//
//	[page]
//	width = 595.28
//	height = 841.89
//
//	[place]
//	x = 36
//	y = 36
//	width = 200
//
//	[inks.Reflex]
//	cmyk = [1, 0.72, 0, 0.06]
//
//	[inks.Brand]
//	lab = [53, 80, 67]
//
//	[spots]
//	"#ff0000" = { ink = "Brand", tint = 0.5 }
//
//	[remap]
//	"#00ff00" = { color = "#0000ff" }
//	"#123456" = { cmyk = [0, 0, 0, 0.5] }
//
//	[info]
//	title = "Logo"
package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/svgpdf/document"
	"seehuhn.de/go/svgpdf/graphics/color"
	"seehuhn.de/go/svgpdf/metadata"
)

// Config holds the settings for converting a drawing.
type Config struct {
	// CMYK selects CMYK output for all colors which are not mapped to
	// inks or Lab colors.
	CMYK bool `toml:"cmyk"`

	Page  Page  `toml:"page"`
	Place Place `toml:"place"`

	// Inks defines the available inks, by name.
	Inks map[string]Ink `toml:"inks"`

	// Spots maps paint tokens to tints of inks.
	Spots map[string]Spot `toml:"spots"`

	// Remap replaces paint tokens before they are resolved.
	Remap map[string]Remap `toml:"remap"`

	Info Info `toml:"info"`
}

// Page gives the page size in PDF points.  Zero values select A4.
type Page struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Place gives the position of the top-left corner of the drawing,
// measured from the top-left corner of the page, and the size of the
// drawing.  Zero sizes keep the natural size of the drawing.
type Place struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Ink describes the alternate color of an ink.  Exactly one of the fields
// must be set.
type Ink struct {
	CMYK []float64 `toml:"cmyk"`
	Lab  []float64 `toml:"lab"`
}

// Spot selects a tint of an ink.  If Tint is not given, the full ink is
// used.
type Spot struct {
	Ink  string   `toml:"ink"`
	Tint *float64 `toml:"tint"`
}

// Remap describes the replacement for a paint token.  Exactly one of the
// fields must be set.
type Remap struct {
	Color string    `toml:"color"`
	CMYK  []float64 `toml:"cmyk"`
	Lab   []float64 `toml:"lab"`
}

// Info holds the document information.
type Info struct {
	Title    string `toml:"title"`
	Author   string `toml:"author"`
	Subject  string `toml:"subject"`
	Keywords string `toml:"keywords"`
	Creator  string `toml:"creator"`
}

// LoadFile reads the configuration from a TOML file.  It is an error if
// the file contains keys which are not understood.
func LoadFile(fileName string) (*Config, error) {
	return load(fileName, true)
}

// Load is like LoadFile, but reads the configuration from a string.
func Load(conf string) (*Config, error) {
	return load(conf, false)
}

func load(conf string, isFileName bool) (*Config, error) {
	c := &Config{}
	var md toml.MetaData
	var err error
	if isFileName {
		md, err = toml.DecodeFile(conf, c)
	} else {
		md, err = toml.Decode(conf, c)
	}
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("undecoded fields in configuration: %v", undecoded)
	}

	err = c.check()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) check() error {
	if c.Page.Width < 0 || c.Page.Height < 0 {
		return fmt.Errorf("invalid page size %gx%g", c.Page.Width, c.Page.Height)
	}
	if c.Place.Width < 0 || c.Place.Height < 0 {
		return fmt.Errorf("invalid drawing size %gx%g", c.Place.Width, c.Place.Height)
	}
	for name, ink := range c.Inks {
		if err := checkAlternate(ink.CMYK, ink.Lab, false); err != nil {
			return fmt.Errorf("ink %q: %w", name, err)
		}
	}
	for token, spot := range c.Spots {
		if spot.Ink == "" {
			return fmt.Errorf("spot %q: missing ink name", token)
		}
	}
	for token, r := range c.Remap {
		if err := checkAlternate(r.CMYK, r.Lab, r.Color != ""); err != nil {
			return fmt.Errorf("remap %q: %w", token, err)
		}
	}
	return nil
}

// checkAlternate verifies that exactly one color is given.
func checkAlternate(cmyk, lab []float64, hasToken bool) error {
	n := 0
	if hasToken {
		n++
	}
	if cmyk != nil {
		if len(cmyk) != 4 {
			return fmt.Errorf("need 4 CMYK values, got %d", len(cmyk))
		}
		n++
	}
	if lab != nil {
		if len(lab) != 3 {
			return fmt.Errorf("need 3 Lab values, got %d", len(lab))
		}
		n++
	}
	if n != 1 {
		return fmt.Errorf("need exactly one color, got %d", n)
	}
	return nil
}

// PageSize returns the page size in PDF points.
func (c *Config) PageSize() (width, height float64) {
	width, height = c.Page.Width, c.Page.Height
	if width == 0 {
		width = document.A4.URx
	}
	if height == 0 {
		height = document.A4.URy
	}
	return width, height
}

// DocumentOptions returns the document options described by the
// configuration.
func (c *Config) DocumentOptions() *document.Options {
	opt := &document.Options{
		CMYK: c.CMYK,
	}

	if len(c.Spots) > 0 {
		opt.Spots = make(map[string]color.SpotRef, len(c.Spots))
		for token, spot := range c.Spots {
			opt.Spots[token] = color.SpotRef{Ink: spot.Ink, Tint: spot.Tint}
		}
	}

	if len(c.Remap) > 0 {
		remap := c.Remap
		opt.Remap = func(token string) color.Replacement {
			r, ok := remap[token]
			if !ok {
				r, ok = remap[strings.ToLower(token)]
			}
			switch {
			case !ok:
				return nil
			case r.Color != "":
				return color.Token(r.Color)
			case r.CMYK != nil:
				return color.CMYK{C: r.CMYK[0], M: r.CMYK[1], Y: r.CMYK[2], K: r.CMYK[3]}
			default:
				return color.Lab{L: r.Lab[0], A: r.Lab[1], B: r.Lab[2]}
			}
		}
	}

	if c.Info != (Info{}) {
		opt.Info = &metadata.Info{
			Title:    c.Info.Title,
			Author:   c.Info.Author,
			Subject:  c.Info.Subject,
			Keywords: c.Info.Keywords,
			Creator:  c.Info.Creator,
		}
	}

	return opt
}

// DefineInks registers all inks with the document.
func (c *Config) DefineInks(doc *document.Document) error {
	for _, name := range slices.Sorted(maps.Keys(c.Inks)) {
		ink := c.Inks[name]
		var err error
		if ink.CMYK != nil {
			v := ink.CMYK
			_, err = doc.DefineSpotColor(name, v[0], v[1], v[2], v[3])
		} else {
			v := ink.Lab
			_, err = doc.DefineLabSpotColor(name, v[0], v[1], v[2])
		}
		if err != nil {
			return err
		}
	}
	return nil
}
