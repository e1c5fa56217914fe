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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule selects which points are inside a path.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// edge is a non-horizontal line segment in device space.
type edge struct {
	x0, y0   float64 // start point
	dxdy     float64
	yLo, yHi float64 // vertical extent
	dir      float64 // +1 if the edge runs downwards, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

func (e *edge) yAt(x float64) float64 {
	return e.y0 + (x-e.x0)/e.dxdy
}

// Rasteriser computes anti-aliased pixel coverage of filled paths.
// Coverage values range from 0 (outside) to 1 (inside).
//
// A Rasteriser can be reused for many paths; its buffers are kept between
// calls. It is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip limits the output to a device space rectangle with integer
	// coordinates.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments replacing it.
	Flatness float64

	edges  []edge
	active []int
	cover  []float32 // signed vertical extent per column, reused for output
	area   []float32 // cover weighted by the distance to the right pixel edge

	box    rect.Rect
	hasBox bool
}

// NewRasteriser returns a Rasteriser with the given clip rectangle and an
// identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the defaults and sets a new clip rectangle. Buffer
// capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// Fill computes the coverage of p under the given fill rule. The emit
// callback is called once per pixel row with non-zero coverage, in order
// of increasing y. The coverage slice is only valid during the call.
func (r *Rasteriser) Fill(p *path.Data, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collect(p)
	if !ok {
		return
	}

	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yLo, b.yLo)
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].yLo < bot {
			r.active = append(r.active, next)
			next++
		}
		live := r.active[:0]
		for _, i := range r.active {
			if r.edges[i].yHi > top {
				live = append(live, i)
			}
		}
		r.active = live
		if len(r.active) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], y, xMin, xMax)
		}
		integrate(r.cover, r.area, rule)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// collect converts p to device space edges. It returns the pixel bounding
// box of the edges, clamped to the clip rectangle.
func (r *Rasteriser) collect(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.hasBox = false

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			// open subpaths are closed implicitly
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			// raise to a cubic with the same shape
			c := p.Coords[k]
			end := p.Coords[k+1]
			c1 := cur.Add(c.Sub(cur).Mul(2.0 / 3))
			c2 := end.Add(c.Sub(end).Mul(2.0 / 3))
			r.flattenCubic(cur, c1, c2, end)
			cur = end
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		r.addEdge(cur, start)
	}

	if !r.hasBox {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.box.LLx)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.box.URx))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.box.LLy)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.box.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// flattenCubic replaces a cubic Bézier curve by line segments. The number
// of segments follows from Wang's formula, measured in device space.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3))
	dev := max(d1.Length(), d2.Length())

	n := 1
	if dev > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*dev/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// linear applies the linear part of the CTM to v.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}
}

func (r *Rasteriser) device(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y + m[4], Y: m[1]*v.X + m[3]*v.Y + m[5]}
}

// addEdge adds the user space segment from a to b.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	a, b = r.device(a), r.device(b)
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	e := edge{x0: a.X, y0: a.Y, dxdy: (b.X - a.X) / dy, yLo: a.Y, yHi: b.Y, dir: 1}
	if dy < 0 {
		e.yLo, e.yHi, e.dir = b.Y, a.Y, -1
	}
	r.edges = append(r.edges, e)

	lo := vec.Vec2{X: min(a.X, b.X), Y: e.yLo}
	hi := vec.Vec2{X: max(a.X, b.X), Y: e.yHi}
	if !r.hasBox {
		r.box = rect.Rect{LLx: lo.X, LLy: lo.Y, URx: hi.X, URy: hi.Y}
		r.hasBox = true
		return
	}
	r.box.LLx = min(r.box.LLx, lo.X)
	r.box.LLy = min(r.box.LLy, lo.Y)
	r.box.URx = max(r.box.URx, hi.X)
	r.box.URy = max(r.box.URy, hi.Y)
}

// Coverage model: for every pixel column of a row, cover holds the signed
// height of the edge pieces crossing the column and area holds the same
// heights weighted by the fraction of the pixel to the right of the
// crossing. The coverage of pixel i is the sum of cover over all columns
// left of i, plus area[i].

// accumulate adds the part of e inside row y to the cover and area buffers.
// Columns left of xMin are folded into column 0.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) {
	top := max(float64(y), e.yLo)
	bot := min(float64(y+1), e.yHi)
	if bot <= top {
		return
	}

	xt, xb := e.xAt(top), e.xAt(bot)
	first := int(math.Floor(min(xt, xb)))
	last := int(math.Floor(max(xt, xb)))
	switch {
	case first >= xMax:
		return
	case last < xMin, first == last:
		r.deposit(e, first, top, bot, xMin, xMax)
		return
	}

	for pix := first; pix <= last; pix++ {
		ya, yb := e.yAt(float64(pix)), e.yAt(float64(pix+1))
		sTop := max(min(ya, yb), top)
		sBot := min(max(ya, yb), bot)
		if sBot > sTop {
			r.deposit(e, pix, sTop, sBot, xMin, xMax)
		}
	}
}

// deposit records the piece of e between top and bot, which lies inside
// pixel column pix.
func (r *Rasteriser) deposit(e *edge, pix int, top, bot float64, xMin, xMax int) {
	c := float32(e.dir * (bot - top))
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		frac := e.xAt((top+bot)/2) - float64(pix)
		i := pix - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-frac)
	}
}

// integrate turns the accumulated cover and area values of one row into
// coverage, stored in cover.
func integrate(cover, area []float32, rule FillRule) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		if rule == EvenOdd {
			v -= 2 * float32(int(v/2))
			if v > 1 {
				v = 2 - v
			}
		} else if v > 1 {
			v = 1
		}
		cover[i] = v
	}
}

// trimZeros returns the part of a row between the first and the last
// non-zero value, and the offset of that part. An all-zero row gives nil.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is the curve tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10
)
