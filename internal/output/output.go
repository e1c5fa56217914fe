// seehuhn.de/go/areachart - layered area charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package output renders chart documents into the supported file formats.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/areachart"
	"seehuhn.de/go/areachart/pdfout"
	"seehuhn.de/go/areachart/raster"
)

// Format is an output file format.
type Format int

const (
	PNG Format = iota
	PDF
	JSON
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case PDF:
		return "pdf"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case PDF:
		return "application/pdf"
	case JSON:
		return "application/json"
	default:
		return "image/png"
	}
}

// Binary reports whether the format should not be written to a terminal.
func (f Format) Binary() bool {
	return f != JSON
}

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a format name or file extension to a Format.
// The empty string selects PNG.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "", "png":
		return PNG, nil
	case "pdf":
		return PDF, nil
	case "json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
}

// Render draws doc on a surface of the given size and writes the result
// to w.
func Render(w io.Writer, c *areachart.Chart, doc *areachart.Document, format Format, width, height int) error {
	switch format {
	case PNG:
		canvas := raster.NewCanvas(width, height)
		if _, err := c.Render(canvas, doc); err != nil {
			return err
		}
		return canvas.WritePNG(w)

	case PDF:
		return renderPDF(w, c, doc, width, height)

	case JSON:
		f, err := c.Render(Shapes{W: float64(width), H: float64(height)}, doc)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f.Shapes)

	default:
		return fmt.Errorf("%w %d", ErrUnknownFormat, int(format))
	}
}

// renderPDF writes the PDF to a temporary file and copies it to w.
func renderPDF(w io.Writer, c *areachart.Chart, doc *areachart.Document, width, height int) (err error) {
	dir, err := os.MkdirTemp("", "areachart")
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, os.RemoveAll(dir))
	}()

	fileName := filepath.Join(dir, "chart.pdf")
	page := pdfout.NewPage(fileName, float64(width), float64(height))
	if _, err := c.Render(page, doc); err != nil {
		return err
	}

	fd, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer fd.Close()
	_, err = io.Copy(w, fd)
	return err
}

// Shapes is a surface which computes the chart layout without drawing
// anything. The shapes are available from the returned frame.
type Shapes struct {
	W, H float64
}

// Size implements the areachart.Surface interface.
func (s Shapes) Size() (float64, float64) { return s.W, s.H }

// Mount implements the areachart.Surface interface.
func (s Shapes) Mount(float64, float64) error { return nil }

// Display implements the areachart.Surface interface.
func (s Shapes) Display(*areachart.Frame) error { return nil }
