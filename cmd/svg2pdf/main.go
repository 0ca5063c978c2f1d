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

// Svg2pdf converts an SVG drawing into a single-page PDF file.
//
// Usage:
//
//	svg2pdf [options] input.svg
//
// The PDF file is written to the file given by the -o option, or to
// standard output.  Settings can be read from a TOML file using the
// -config option; command line flags override the values from the file.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/net/html/charset"
	"golang.org/x/term"

	"seehuhn.de/go/svgpdf/config"
	"seehuhn.de/go/svgpdf/document"
	"seehuhn.de/go/svgpdf/metadata"
)

func main() {
	configFile := flag.String("config", "", "read settings from this TOML `file`")
	outFile := flag.String("o", "", "write the PDF to this `file` (default: standard output)")
	cmyk := flag.Bool("cmyk", false, "convert RGB colors to CMYK")
	x := flag.Float64("x", 0, "horizontal position of the drawing, from the left edge")
	y := flag.Float64("y", 0, "vertical position of the drawing, from the top edge")
	width := flag.Float64("width", 0, "width of the drawing (default: natural size)")
	height := flag.Float64("height", 0, "height of the drawing (default: natural size)")
	pageWidth := flag.Float64("page-width", 0, "page width in points (default: A4)")
	pageHeight := flag.Float64("page-height", 0, "page height in points (default: A4)")
	inputCharset := flag.String("charset", "", "character `encoding` of the input (default: from the XML declaration)")
	verbose := flag.Bool("v", false, "show debug output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] input.svg\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	level := hclog.Warn
	if *verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "svg2pdf",
		Level:  level,
		Output: os.Stderr,
	})

	conf := &config.Config{}
	if *configFile != "" {
		var err error
		conf, err = config.LoadFile(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading configuration: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("configuration loaded", "file", *configFile)
	}

	// command line flags override the configuration file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cmyk":
			conf.CMYK = *cmyk
		case "x":
			conf.Place.X = *x
		case "y":
			conf.Place.Y = *y
		case "width":
			conf.Place.Width = *width
		case "height":
			conf.Place.Height = *height
		case "page-width":
			conf.Page.Width = *pageWidth
		case "page-height":
			conf.Page.Height = *pageHeight
		}
	})

	if *outFile == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Refusing to write a PDF file to the terminal, use -o.")
		os.Exit(1)
	}

	inputFile := flag.Arg(0)
	raw, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}
	markup, err := decodeInput(raw, *inputCharset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding input file: %v\n", err)
		os.Exit(1)
	}

	pdfData, err := convert(markup, conf, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", inputFile, err)
		os.Exit(1)
	}

	if *outFile == "" {
		_, err = os.Stdout.Write(pdfData)
	} else {
		err = os.WriteFile(*outFile, pdfData, 0o644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("done", "input", inputFile, "bytes", len(pdfData))
}

// convert renders the drawing onto a new page and returns the PDF file.
func convert(markup string, conf *config.Config, logger hclog.Logger) ([]byte, error) {
	opt := conf.DocumentOptions()
	opt.Logger = logger
	if opt.Info == nil {
		opt.Info = &metadata.Info{}
	}
	opt.Info.Producer = "seehuhn.de/go/svgpdf/cmd/svg2pdf"
	opt.Info.CreationDate = time.Now()

	pageWidth, pageHeight := conf.PageSize()
	doc := document.New(pageWidth, pageHeight, opt)
	err := conf.DefineInks(doc)
	if err != nil {
		return nil, err
	}

	var size *document.Size
	if conf.Place.Width > 0 || conf.Place.Height > 0 {
		size = &document.Size{Width: conf.Place.Width, Height: conf.Place.Height}
	}
	err = doc.DrawSVG(markup, conf.Place.X, conf.Place.Y, size)
	if err != nil {
		return nil, err
	}
	if n := len(doc.Diagnostics()); n > 0 {
		logger.Info("drawing converted with problems", "diagnostics", n)
	}

	return doc.Bytes()
}

var xmlEncoding = regexp.MustCompile(`^\s*<\?xml[^>]*\sencoding\s*=\s*["']([A-Za-z0-9._:-]+)["']`)

// decodeInput converts the input file to UTF-8.  If label is empty, the
// encoding given in the XML declaration is used, if any.
func decodeInput(raw []byte, label string) (string, error) {
	if label == "" {
		if m := xmlEncoding.FindSubmatch(raw); m != nil {
			label = string(m[1])
		}
	}
	switch strings.ToLower(label) {
	case "", "utf-8", "utf8":
		return string(raw), nil
	}

	r, err := charset.NewReaderLabel(label, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
