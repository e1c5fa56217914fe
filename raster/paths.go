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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498

// appendCircle adds a closed circle made of four cubic arcs to p. With
// y pointing down, positive circles run from the top through the right.
func appendCircle(p *path.Data, c vec.Vec2, r float64, positive bool) *path.Data {
	k := kappa * r
	s := 1.0
	if !positive {
		s = -1
	}
	pt := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: c.X + s*dx, Y: c.Y + dy}
	}
	return p.MoveTo(pt(0, -r)).
		CubeTo(pt(k, -r), pt(r, -k), pt(r, 0)).
		CubeTo(pt(r, k), pt(k, r), pt(0, r)).
		CubeTo(pt(-k, r), pt(-r, k), pt(-r, 0)).
		CubeTo(pt(-r, -k), pt(-k, -r), pt(0, -r)).
		Close()
}

// ring returns the outline of a circle of the given radius stroked with
// the given width. The result must be filled with the even-odd rule.
func ring(c vec.Vec2, radius, width float64) *path.Data {
	p := appendCircle(&path.Data{}, c, radius+width/2, true)
	if inner := radius - width/2; inner > 0 {
		p = appendCircle(p, c, inner, true)
	}
	return p
}

// polyline returns the outline of a polyline stroked with the given width
// and round joins. The result must be filled with the nonzero rule.
func polyline(pts []vec.Vec2, width float64) *path.Data {
	p := &path.Data{}
	hw := width / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		l := d.Length()
		if l < 1e-9 {
			continue
		}
		n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(hw / l)
		p = p.MoveTo(a.Sub(n)).
			LineTo(b.Sub(n)).
			LineTo(b.Add(n)).
			LineTo(a.Add(n)).
			Close()
	}
	if len(pts) > 2 {
		for _, v := range pts[1 : len(pts)-1] {
			p = appendCircle(p, v, hw, true)
		}
	}
	return p
}

// hline returns a rectangle of the given thickness centred on the
// horizontal segment from a to b.
func hline(a, b vec.Vec2, width float64) *path.Data {
	hw := width / 2
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: a.Y - hw}).
		LineTo(vec.Vec2{X: x1, Y: a.Y - hw}).
		LineTo(vec.Vec2{X: x1, Y: a.Y + hw}).
		LineTo(vec.Vec2{X: x0, Y: a.Y + hw}).
		Close()
}
