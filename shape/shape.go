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

// Package shape builds the declarative description of a rendered chart:
// filled areas, point markers, guide lines and a clip region.
//
// A Bundle is computed from stacked layers and a pair of scales and is never
// modified after construction. Render targets only read it.
package shape

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/areachart/palette"
	"seehuhn.de/go/areachart/scale"
	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/stack"
)

// Fixed geometry of markers, guides and the clip region.
const (
	MarkerRadius      = 12
	MarkerStrokeWidth = 1
	GuideWidth        = 1

	// ClipBuffer extends the clip region above the drawing area, so that
	// markers at the top edge are not cut off.
	ClipBuffer = 5
)

// GuideColor is the stroke colour of the zero line and the base line.
var GuideColor = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}

// Kind selects how a layer is drawn.
type Kind int

const (
	// KindArea draws each layer as a filled polygon between its baseline
	// and its top edge.
	KindArea Kind = iota

	// KindLine draws only the top edge of each layer.
	KindLine
)

func (k Kind) String() string {
	if k == KindLine {
		return "line"
	}
	return "area"
}

// Area is the outline of one layer.
type Area struct {
	Label   string
	Layer   int
	Color   color.NRGBA
	Class   string
	Opacity float64

	// Overlap is set if the area is anchored at the zero line rather than
	// at the layer baseline.
	Overlap bool

	// Filled is true for closed polygons and false for open polylines.
	Filled bool

	// Outline is the top edge from left to right, followed (for filled
	// areas) by the bottom edge from right to left.
	Outline *path.Data
}

// Vertices returns the vertices of the outline in drawing order.
func (a *Area) Vertices() []vec.Vec2 {
	return a.Outline.Coords
}

// MarkerID identifies a marker by layer index and point index.
type MarkerID struct {
	Layer, Index int
}

// Marker is a circle drawn at a non-zero data point.
type Marker struct {
	ID          MarkerID
	Label       string
	X           series.Key
	Y           float64
	Center      vec.Vec2
	Radius      float64
	StrokeWidth float64
	Color       color.NRGBA
	Class       string
}

// Guide is a horizontal reference line.
type Guide struct {
	Class    string
	From, To vec.Vec2
	Color    color.NRGBA
	Width    float64
}

// Clip is the clip region of the chart.
type Clip struct {
	ID   string
	Rect rect.Rect
}

// Bundle is the complete shape description of one render.
type Bundle struct {
	Width, Height float64
	Areas         []Area
	Markers       []Marker
	Guides        []Guide
	Clip          Clip
}

// Marker returns the marker with the given id.
func (b *Bundle) Marker(id MarkerID) (*Marker, bool) {
	for i := range b.Markers {
		if b.Markers[i].ID == id {
			return &b.Markers[i], true
		}
	}
	return nil, false
}

// Guide returns the guide with the given class.
func (b *Bundle) Guide(class string) (*Guide, bool) {
	for i := range b.Guides {
		if b.Guides[i].Class == class {
			return &b.Guides[i], true
		}
	}
	return nil, false
}

// ColorFunc maps a series label to its colour.
type ColorFunc func(label string) color.NRGBA

// Options control shape emission.
type Options struct {
	Mode stack.Mode
	Kind Kind

	// TimeSeries anchors areas and markers at the start of their x band
	// instead of the band centre.
	TimeSeries bool

	// Width and Height are the size of the drawing area.
	Width, Height float64

	// Colors maps a series label to its colour. If nil, colours are taken
	// from a fresh palette.
	Colors ColorFunc

	// Opacity is the fill opacity of the areas.
	Opacity float64

	ClipID string
}

// Emit builds the shapes for the given layers.
func Emit(layers []stack.Layer, x scale.X, y *scale.Linear, opts Options) *Bundle {
	colors := opts.Colors
	if colors == nil {
		p := &palette.Palette{}
		colors = p.Color
	}
	overlap := opts.Mode == stack.ModeOverlap
	shift := x.Bandwidth() / 2
	if opts.TimeSeries {
		shift = 0
	}

	b := &Bundle{
		Width:  opts.Width,
		Height: opts.Height,
		Clip: Clip{
			ID: opts.ClipID,
			Rect: rect.Rect{
				LLx: 0,
				LLy: -ClipBuffer,
				URx: opts.Width,
				URy: opts.Height,
			},
		},
	}

	for i, l := range layers {
		if len(l.Points) == 0 {
			continue
		}
		c := colors(l.Label)
		class := palette.Class(c)

		top := make([]vec.Vec2, len(l.Points))
		bottom := make([]vec.Vec2, len(l.Points))
		for j, p := range l.Points {
			px := x.Map(p.X) + shift
			if overlap {
				top[j] = vec.Vec2{X: px, Y: y.Map(p.Y)}
				bottom[j] = vec.Vec2{X: px, Y: y.Map(0)}
			} else {
				top[j] = vec.Vec2{X: px, Y: y.Map(p.Top())}
				bottom[j] = vec.Vec2{X: px, Y: y.Map(p.Y0)}
			}
		}

		outline := (&path.Data{}).MoveTo(top[0])
		for _, v := range top[1:] {
			outline = outline.LineTo(v)
		}
		filled := opts.Kind == KindArea
		if filled {
			for j := len(bottom) - 1; j >= 0; j-- {
				outline = outline.LineTo(bottom[j])
			}
			outline = outline.Close()
		}
		b.Areas = append(b.Areas, Area{
			Label:   l.Label,
			Layer:   i,
			Color:   c,
			Class:   "color " + class,
			Opacity: opts.Opacity,
			Overlap: overlap,
			Filled:  filled,
			Outline: outline,
		})

		for j, p := range l.Points {
			if p.Y == 0 {
				continue
			}
			cy := y.Map(p.Top())
			if overlap {
				cy = y.Map(p.Y)
			}
			b.Markers = append(b.Markers, Marker{
				ID:          MarkerID{Layer: i, Index: j},
				Label:       l.Label,
				X:           p.X,
				Y:           p.Y,
				Center:      vec.Vec2{X: x.Map(p.X) + shift, Y: cy},
				Radius:      MarkerRadius,
				StrokeWidth: MarkerStrokeWidth,
				Color:       c,
				Class:       l.Label + " " + class,
			})
		}
	}

	if scale.ZeroLine(y, opts.Mode) {
		zero := y.Map(0)
		b.Guides = append(b.Guides, Guide{
			Class: "zero-line",
			From:  vec.Vec2{X: 0, Y: zero},
			To:    vec.Vec2{X: opts.Width, Y: zero},
			Color: GuideColor,
			Width: GuideWidth,
		})
	}
	b.Guides = append(b.Guides, Guide{
		Class: "base-line",
		From:  vec.Vec2{X: 0, Y: opts.Height},
		To:    vec.Vec2{X: opts.Width, Y: opts.Height},
		Color: GuideColor,
		Width: GuideWidth,
	})

	return b
}

// Bounds returns the smallest rectangle containing all areas and markers.
// The result is empty if the bundle contains no shapes.
func (b *Bundle) Bounds() rect.Rect {
	r := rect.Rect{LLx: math.Inf(1), LLy: math.Inf(1), URx: math.Inf(-1), URy: math.Inf(-1)}
	add := func(v vec.Vec2, pad float64) {
		r.LLx = min(r.LLx, v.X-pad)
		r.LLy = min(r.LLy, v.Y-pad)
		r.URx = max(r.URx, v.X+pad)
		r.URy = max(r.URy, v.Y+pad)
	}
	for i := range b.Areas {
		for _, v := range b.Areas[i].Vertices() {
			add(v, 0)
		}
	}
	for _, m := range b.Markers {
		add(m.Center, m.Radius+m.StrokeWidth/2)
	}
	if r.LLx > r.URx {
		return rect.Rect{}
	}
	return r
}
