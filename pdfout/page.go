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

// Package pdfout writes charts as single page PDF files.
//
// The PDF is a static snapshot: areas and guides are drawn as vector paths,
// and markers appear only if they are highlighted in the interaction state
// at the time the frame is displayed.
package pdfout

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/areachart"
	"seehuhn.de/go/areachart/interact"
)

// LineWidth is the stroke width of layers drawn by the line variant.
const LineWidth = 2

var (
	errNotMounted = errors.New("pdfout: page not mounted")
	errWritten    = errors.New("pdfout: page already written")
)

// Page is a chart surface which writes one PDF file. Units are PDF points,
// so that one chart pixel maps to 1/72 inch.
type Page struct {
	// FileName is the name of the output file.
	FileName string

	width, height float64

	mu      sync.Mutex
	page    *document.Page
	written bool
}

// NewPage returns a surface of the given size writing to fileName.
func NewPage(fileName string, width, height float64) *Page {
	return &Page{
		FileName: fileName,
		width:    width,
		height:   height,
	}
}

// Size implements the areachart.Surface interface.
func (p *Page) Size() (float64, float64) {
	return p.width, p.height
}

// Mount implements the areachart.Surface interface.
func (p *Page) Mount(width, height float64) error {
	if !(width > 0 && height > 0) {
		return fmt.Errorf("pdfout: cannot mount a %gx%g page", width, height)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.written {
		return errWritten
	}
	if p.page != nil {
		if err := p.page.Close(); err != nil {
			return err
		}
	}

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(p.FileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	p.page = page
	p.width, p.height = width, height
	return nil
}

// Display implements the areachart.Surface interface. The frame is drawn
// and the file is closed; later frames are rejected.
func (p *Page) Display(f *areachart.Frame) error {
	st := f.State()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.written {
		return errWritten
	}
	if p.page == nil {
		return errNotMounted
	}
	page := p.page
	p.page = nil
	p.written = true

	// PDF coordinates grow upwards, chart coordinates grow downwards.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, p.height})
	draw(page, f, st, f.Origin())
	return page.Close()
}

// canvas is the subset of the page drawing operations used for charts.
type canvas interface {
	SetFillColor(pdfcolor.Color)
	SetStrokeColor(pdfcolor.Color)
	SetLineWidth(float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
	Rectangle(x, y, width, height float64)
	Fill()
	Stroke()
	ClipNonZero()
	EndPath()
	PushGraphicsState()
	PopGraphicsState()
}

// draw paints the frame with the drawing area placed at o.
// Areas and markers are clipped to the clip region of the shapes.
func draw(c canvas, f *areachart.Frame, st interact.State, o vec.Vec2) {
	clip := f.Shapes.Clip.Rect
	c.PushGraphicsState()
	c.Rectangle(clip.LLx+o.X, clip.LLy+o.Y, clip.Dx(), clip.Dy())
	c.ClipNonZero()
	c.EndPath()

	for i := range f.Shapes.Areas {
		a := &f.Shapes.Areas[i]
		alpha := a.Opacity
		if st.LayerHovered(a.Layer) {
			alpha = 1
		}
		col := rgb(blend(a.Color, alpha))
		if a.Filled {
			c.SetFillColor(col)
			emit(c, a.Outline, o)
			c.Fill()
		} else {
			c.SetStrokeColor(col)
			c.SetLineWidth(LineWidth)
			emit(c, a.Outline, o)
			c.Stroke()
		}
	}

	for _, mk := range f.Shapes.Markers {
		ms := st.Marker(mk.ID)
		if !ms.Hovered && !ms.Selected && !ms.Clicked {
			continue
		}
		c.SetStrokeColor(rgb(mk.Color))
		c.SetLineWidth(mk.StrokeWidth)
		emit(c, circle(mk.Center, mk.Radius), o)
		c.Stroke()
	}
	c.PopGraphicsState()

	// guides are not clipped, so that the base line stays visible

	for _, g := range f.Shapes.Guides {
		c.SetStrokeColor(rgb(g.Color))
		c.SetLineWidth(g.Width)
		emit(c, (&path.Data{}).MoveTo(g.From).LineTo(g.To), o)
		c.Stroke()
	}
}

// emit appends the path p, shifted by o, to the current path of c.
func emit(c canvas, p *path.Data, o vec.Vec2) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			q := pts[0].Add(o)
			c.MoveTo(q.X, q.Y)
		case path.CmdLineTo:
			q := pts[0].Add(o)
			c.LineTo(q.X, q.Y)
		case path.CmdCubeTo:
			q1, q2, q3 := pts[0].Add(o), pts[1].Add(o), pts[2].Add(o)
			c.CurveTo(q1.X, q1.Y, q2.X, q2.Y, q3.X, q3.Y)
		case path.CmdClose:
			c.ClosePath()
		}
	}
}

// kappa is the control point distance for a quarter circle of radius 1.
const kappa = 0.5522847498

func circle(c vec.Vec2, r float64) *path.Data {
	k := kappa * r
	pt := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: c.X + dx, Y: c.Y + dy}
	}
	return (&path.Data{}).MoveTo(pt(r, 0)).
		CubeTo(pt(r, k), pt(k, r), pt(0, r)).
		CubeTo(pt(-k, r), pt(-r, k), pt(-r, 0)).
		CubeTo(pt(-r, -k), pt(-k, -r), pt(0, -r)).
		CubeTo(pt(k, -r), pt(r, -k), pt(r, 0)).
		Close()
}

// blend composites col with the given opacity onto a white page.
func blend(col color.NRGBA, opacity float64) color.NRGBA {
	a := min(max(opacity*float64(col.A)/255, 0), 1)
	mix := func(v uint8) uint8 {
		return uint8(float64(v)*a + 255*(1-a) + 0.5)
	}
	return color.NRGBA{R: mix(col.R), G: mix(col.G), B: mix(col.B), A: 0xff}
}

func rgb(col color.NRGBA) pdfcolor.Color {
	return pdfcolor.DeviceRGB{float64(col.R) / 255, float64(col.G) / 255, float64(col.B) / 255}
}
