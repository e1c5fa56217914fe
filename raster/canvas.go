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

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/areachart"
	"seehuhn.de/go/areachart/interact"
)

// LineWidth is the stroke width of layers drawn by the line variant.
const LineWidth = 2

// Tooltip colours.
var (
	tooltipBorder     = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	tooltipBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xf4, A: 0xff}
	tooltipText       = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// errNotMounted is returned by Display before the first Mount.
var errNotMounted = errors.New("raster: canvas not mounted")

// Canvas is a chart surface backed by an RGBA image.
//
// Areas are filled with their colour and opacity, guides are drawn as
// one pixel lines, and markers only become visible while they are
// hovered, selected or clicked. Interaction updates repaint the image.
type Canvas struct {
	// Background is painted before every frame.
	Background color.NRGBA

	mu            sync.Mutex
	width, height int
	img           *image.RGBA
	frame         *areachart.Frame
	ras           *Rasteriser
}

// NewCanvas returns a canvas of the given size with a white background.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		width:      width,
		height:     height,
		ras:        NewRasteriser(rect.Rect{}),
	}
}

// Size implements the areachart.Surface interface.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.width), float64(c.height)
}

// Mount implements the areachart.Surface interface.
func (c *Canvas) Mount(width, height float64) error {
	if !(width >= 1 && height >= 1) {
		return fmt.Errorf("raster: cannot mount a %gx%g canvas", width, height)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.img = image.NewRGBA(image.Rect(0, 0, int(math.Ceil(width)), int(math.Ceil(height))))
	c.frame = nil
	c.clear()
	return nil
}

// Display implements the areachart.Surface interface.
func (c *Canvas) Display(f *areachart.Frame) error {
	st := f.State()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.img == nil {
		return errNotMounted
	}
	c.frame = f
	c.paint(f, st)
	return nil
}

// Refresh implements the areachart.Refresher interface.
func (c *Canvas) Refresh(f *areachart.Frame, st interact.State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f != nil && c.frame == f {
		c.paint(f, st)
	}
}

// Image returns a copy of the current canvas contents, or nil before the
// first Mount.
func (c *Canvas) Image() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.img == nil {
		return nil
	}
	res := image.NewRGBA(c.img.Rect)
	copy(res.Pix, c.img.Pix)
	return res
}

// WritePNG writes the canvas contents in PNG format.
func (c *Canvas) WritePNG(w io.Writer) error {
	img := c.Image()
	if img == nil {
		return errNotMounted
	}
	return png.Encode(w, img)
}

func (c *Canvas) clear() {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(c.Background), image.Point{}, draw.Src)
}

func (c *Canvas) paint(f *areachart.Frame, st interact.State) {
	c.clear()

	b := c.img.Rect
	full := rect.Rect{URx: float64(b.Dx()), URy: float64(b.Dy())}
	o := f.Origin()
	toCanvas := matrix.Matrix{1, 0, 0, 1, o.X, o.Y}

	clip := f.Shapes.Clip.Rect
	c.ras.Reset(intersect(rect.Rect{
		LLx: math.Floor(clip.LLx + o.X),
		LLy: math.Floor(clip.LLy + o.Y),
		URx: math.Ceil(clip.URx + o.X),
		URy: math.Ceil(clip.URy + o.Y),
	}, full))
	c.ras.CTM = toCanvas

	for i := range f.Shapes.Areas {
		a := &f.Shapes.Areas[i]
		alpha := a.Opacity
		if st.LayerHovered(a.Layer) {
			alpha = 1
		}
		if a.Filled {
			c.fill(a.Outline, NonZero, a.Color, alpha)
		} else {
			c.fill(polyline(a.Vertices(), LineWidth), NonZero, a.Color, alpha)
		}
	}
	for _, m := range f.Shapes.Markers {
		ms := st.Marker(m.ID)
		if !ms.Hovered && !ms.Selected && !ms.Clicked {
			continue
		}
		c.fill(ring(m.Center, m.Radius, m.StrokeWidth), EvenOdd, m.Color, 1)
	}

	// guides are not clipped, so that the base line stays visible
	c.ras.Reset(full)
	c.ras.CTM = toCanvas
	for _, g := range f.Shapes.Guides {
		c.fill(hline(g.From, g.To, g.Width), NonZero, g.Color, 1)
	}

	if st.Tooltip.Visible {
		c.tooltip(o.Add(st.Tooltip.At), st.Tooltip.Text)
	}
}

// fill composites p onto the image with the given colour and opacity.
func (c *Canvas) fill(p *path.Data, rule FillRule, col color.NRGBA, opacity float64) {
	a := float32(opacity) * float32(col.A) / 255
	if a <= 0 {
		return
	}
	src := [4]float32{float32(col.R), float32(col.G), float32(col.B), 255}
	c.ras.Fill(p, rule, func(y, xMin int, coverage []float32) {
		row := c.img.Pix[y*c.img.Stride+4*xMin:]
		for i, v := range coverage {
			k := v * a
			if k <= 0 {
				continue
			}
			px := row[4*i : 4*i+4]
			for j := range px {
				px[j] = uint8(src[j]*k + float32(px[j])*(1-k) + 0.5)
			}
		}
	})
}

// tooltip draws a text box above and to the right of the anchor point,
// moved inside the canvas if necessary.
func (c *Canvas) tooltip(at vec.Vec2, text string) {
	const pad, offset = 4, 8
	face := basicfont.Face7x13
	lines := strings.Split(text, "\n")

	w := 0
	for _, l := range lines {
		w = max(w, font.MeasureString(face, l).Ceil())
	}
	lh := face.Metrics().Height.Ceil()
	bw, bh := w+2*pad, len(lines)*lh+2*pad

	b := c.img.Rect
	x := min(max(int(at.X)+offset, 0), b.Dx()-bw)
	y := min(max(int(at.Y)-offset-bh, 0), b.Dy()-bh)
	box := image.Rect(x, y, x+bw, y+bh).Intersect(b)

	draw.Draw(c.img, box, image.NewUniform(tooltipBorder), image.Point{}, draw.Src)
	draw.Draw(c.img, box.Inset(1), image.NewUniform(tooltipBackground), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(tooltipText),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		d.Dot = fixed.P(x+pad, y+pad+i*lh+ascent)
		d.DrawString(l)
	}
}

func intersect(a, b rect.Rect) rect.Rect {
	r := rect.Rect{
		LLx: max(a.LLx, b.LLx),
		LLy: max(a.LLy, b.LLy),
		URx: min(a.URx, b.URx),
		URy: min(a.URy, b.URy),
	}
	if r.LLx >= r.URx || r.LLy >= r.URy {
		return rect.Rect{}
	}
	return r
}
