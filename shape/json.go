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

package shape

import (
	"encoding/json"
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/path"
)

type jsonBundle struct {
	Width   float64      `json:"width"`
	Height  float64      `json:"height"`
	Clip    jsonClip     `json:"clip"`
	Areas   []jsonArea   `json:"areas"`
	Markers []jsonMarker `json:"markers"`
	Guides  []jsonGuide  `json:"guides"`
}

type jsonClip struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	W  float64 `json:"width"`
	H  float64 `json:"height"`
}

type jsonArea struct {
	Label   string        `json:"label"`
	Class   string        `json:"class"`
	Color   string        `json:"color"`
	Opacity float64       `json:"opacity"`
	Filled  bool          `json:"filled"`
	Path    []jsonSegment `json:"path"`
}

type jsonMarker struct {
	Layer  int     `json:"layer"`
	Index  int     `json:"index"`
	Label  string  `json:"label"`
	X      string  `json:"x"`
	Y      float64 `json:"y"`
	Cx     float64 `json:"cx"`
	Cy     float64 `json:"cy"`
	R      float64 `json:"r"`
	Stroke string  `json:"stroke"`
	Class  string  `json:"class"`
}

type jsonGuide struct {
	Class string  `json:"class"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color string  `json:"stroke"`
	Width float64 `json:"stroke_width"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

// MarshalJSON encodes the bundle in a flat form suitable for SVG or canvas
// front ends.
func (b *Bundle) MarshalJSON() ([]byte, error) {
	out := jsonBundle{
		Width:  b.Width,
		Height: b.Height,
		Clip: jsonClip{
			ID: b.Clip.ID,
			X:  b.Clip.Rect.LLx,
			Y:  b.Clip.Rect.LLy,
			W:  b.Clip.Rect.URx - b.Clip.Rect.LLx,
			H:  b.Clip.Rect.URy - b.Clip.Rect.LLy,
		},
		Areas:   make([]jsonArea, 0, len(b.Areas)),
		Markers: make([]jsonMarker, 0, len(b.Markers)),
		Guides:  make([]jsonGuide, 0, len(b.Guides)),
	}
	for i := range b.Areas {
		a := &b.Areas[i]
		out.Areas = append(out.Areas, jsonArea{
			Label:   a.Label,
			Class:   a.Class,
			Color:   hex(a.Color),
			Opacity: a.Opacity,
			Filled:  a.Filled,
			Path:    segments(a.Outline),
		})
	}
	for _, m := range b.Markers {
		out.Markers = append(out.Markers, jsonMarker{
			Layer:  m.ID.Layer,
			Index:  m.ID.Index,
			Label:  m.Label,
			X:      m.X.String(),
			Y:      m.Y,
			Cx:     m.Center.X,
			Cy:     m.Center.Y,
			R:      m.Radius,
			Stroke: hex(m.Color),
			Class:  m.Class,
		})
	}
	for _, g := range b.Guides {
		out.Guides = append(out.Guides, jsonGuide{
			Class: g.Class,
			X1:    g.From.X,
			Y1:    g.From.Y,
			X2:    g.To.X,
			Y2:    g.To.Y,
			Color: hex(g.Color),
			Width: g.Width,
		})
	}
	return json.Marshal(out)
}

func segments(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	k := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		n := 0
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		seg.Pts = make([][]float64, n)
		for i := range n {
			pt := p.Coords[k+i]
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		k += n
		segs = append(segs, seg)
	}
	return segs
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
