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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/areachart/palette"
	"seehuhn.de/go/areachart/scale"
	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/stack"
)

func ordinalSeries(label string, ys ...float64) series.Series {
	names := []string{"a", "b", "c", "d", "e"}
	s := series.Series{Label: label}
	for i, y := range ys {
		s.Values = append(s.Values, series.Datum{X: series.Cat(names[i]), Y: y})
	}
	return s
}

func emit(t *testing.T, mode stack.Mode, kind Kind, in ...series.Series) *Bundle {
	t.Helper()
	layers, err := stack.Stack(in, mode)
	require.NoError(t, err)
	x, y := scale.Resolve(layers, scale.Ordinal, 300, 100)
	p := &palette.Palette{}
	return Emit(layers, x, y, Options{
		Mode:    mode,
		Kind:    kind,
		Width:   300,
		Height:  100,
		Colors:  p.Color,
		Opacity: 1,
		ClipID:  "chart-area1",
	})
}

func TestAreaOutline(t *testing.T) {
	b := emit(t, stack.ModeStack, KindArea,
		ordinalSeries("s0", 1, 0, 2),
		ordinalSeries("s1", 1, 1, 1))
	require.Len(t, b.Areas, 2)

	a := b.Areas[0]
	assert.True(t, a.Filled)
	assert.Equal(t, []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo,
		path.CmdLineTo, path.CmdLineTo, path.CmdLineTo,
		path.CmdClose,
	}, a.Outline.Cmds)

	// y domain is [0, 3] on a height of 100
	v := a.Vertices()
	require.Len(t, v, 6)
	assert.InDelta(t, 50, v[0].X, 1e-9)
	assert.InDelta(t, 100-100.0/3, v[0].Y, 1e-9)
	assert.InDelta(t, 250, v[2].X, 1e-9)
	assert.InDelta(t, 100-200.0/3, v[2].Y, 1e-9)

	// bottom edge runs from right to left
	assert.InDelta(t, 250, v[3].X, 1e-9)
	assert.InDelta(t, 50, v[5].X, 1e-9)
	for _, p := range v[3:] {
		assert.InDelta(t, 100, p.Y, 1e-9)
	}

	// the second layer sits on top of the first
	v1 := b.Areas[1].Vertices()
	assert.InDelta(t, v[0].Y, v1[5].Y, 1e-9)
	assert.InDelta(t, v[2].Y, v1[3].Y, 1e-9)
}

func TestMarkersSkipZero(t *testing.T) {
	b := emit(t, stack.ModeStack, KindArea,
		ordinalSeries("s0", 1, 0, 2),
		ordinalSeries("s1", 1, 1, 1))

	require.Len(t, b.Markers, 5)
	_, ok := b.Marker(MarkerID{Layer: 0, Index: 1})
	assert.False(t, ok)

	m, ok := b.Marker(MarkerID{Layer: 1, Index: 1})
	require.True(t, ok)
	assert.Equal(t, "b", m.X.String())
	assert.Equal(t, 1.0, m.Y)
	assert.InDelta(t, 150, m.Center.X, 1e-9)
	assert.InDelta(t, 100-100.0/3, m.Center.Y, 1e-9)
	assert.Equal(t, float64(MarkerRadius), m.Radius)
	assert.Equal(t, float64(MarkerStrokeWidth), m.StrokeWidth)
	assert.Equal(t, "s1 "+palette.Class(m.Color), m.Class)
}

func TestClip(t *testing.T) {
	b := emit(t, stack.ModeStack, KindArea, ordinalSeries("s", 1, 2))
	assert.Equal(t, "chart-area1", b.Clip.ID)
	assert.Equal(t, 0.0, b.Clip.Rect.LLx)
	assert.Equal(t, -float64(ClipBuffer), b.Clip.Rect.LLy)
	assert.Equal(t, 300.0, b.Clip.Rect.URx)
	assert.Equal(t, 100.0, b.Clip.Rect.URy)
}

func TestGuides(t *testing.T) {
	b := emit(t, stack.ModeStack, KindArea, ordinalSeries("s", 1, 2))
	_, ok := b.Guide("zero-line")
	assert.False(t, ok)
	base, ok := b.Guide("base-line")
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 0, Y: 100}, base.From)
	assert.Equal(t, vec.Vec2{X: 300, Y: 100}, base.To)

	// domain [-1, 2]: zero sits one third of the way up
	b = emit(t, stack.ModeStack, KindArea, ordinalSeries("s", -1, 2))
	zero, ok := b.Guide("zero-line")
	require.True(t, ok)
	assert.InDelta(t, 100-100.0/3, zero.From.Y, 1e-9)
	assert.Equal(t, GuideColor, zero.Color)

	b = emit(t, stack.ModeSilhouette, KindArea, ordinalSeries("s", -1, 2))
	_, ok = b.Guide("zero-line")
	assert.False(t, ok)
}

func TestOverlapAnchoredAtZero(t *testing.T) {
	b := emit(t, stack.ModeOverlap, KindArea,
		ordinalSeries("s0", 1, 2),
		ordinalSeries("s1", 3, 1))
	require.Len(t, b.Areas, 2)
	for _, a := range b.Areas {
		assert.True(t, a.Overlap)
		v := a.Vertices()
		assert.InDelta(t, 100, v[2].Y, 1e-9)
		assert.InDelta(t, 100, v[3].Y, 1e-9)
	}
	// s1 is drawn from its own value, not stacked on s0
	m, ok := b.Marker(MarkerID{Layer: 1, Index: 0})
	require.True(t, ok)
	assert.InDelta(t, 0, m.Center.Y, 1e-9)
}

func TestLineKind(t *testing.T) {
	b := emit(t, stack.ModeStack, KindLine, ordinalSeries("s", 1, 2, 3))
	require.Len(t, b.Areas, 1)
	a := b.Areas[0]
	assert.False(t, a.Filled)
	assert.Len(t, a.Vertices(), 3)
	assert.NotContains(t, a.Outline.Cmds, path.CmdClose)
}

func TestEmitIdempotent(t *testing.T) {
	layers, err := stack.Stack([]series.Series{
		ordinalSeries("s0", 1, 2, 3),
		ordinalSeries("s1", 3, 0, 1),
	}, stack.ModeStack)
	require.NoError(t, err)
	x, y := scale.Resolve(layers, scale.Ordinal, 200, 80)
	p := &palette.Palette{}
	opts := Options{Width: 200, Height: 80, Colors: p.Color, Opacity: 0.6}

	b1 := Emit(layers, x, y, opts)
	b2 := Emit(layers, x, y, opts)
	assert.Equal(t, b1, b2)
}

func TestEmitEmpty(t *testing.T) {
	x, y := scale.Resolve(nil, scale.Continuous, 100, 50)
	b := Emit(nil, x, y, Options{Width: 100, Height: 50})
	assert.Empty(t, b.Areas)
	assert.Empty(t, b.Markers)
	assert.Len(t, b.Guides, 1)
	assert.Equal(t, 0.0, b.Bounds().URx)
}

func TestMarshalJSON(t *testing.T) {
	b := emit(t, stack.ModeStack, KindArea, ordinalSeries("s", 1, 2))
	data, err := json.Marshal(b)
	require.NoError(t, err)

	var out struct {
		Clip struct {
			ID string  `json:"id"`
			Y  float64 `json:"y"`
			H  float64 `json:"height"`
		} `json:"clip"`
		Areas []struct {
			Path []struct {
				Cmd string      `json:"cmd"`
				Pts [][]float64 `json:"pts"`
			} `json:"path"`
		} `json:"areas"`
		Markers []struct {
			X string `json:"x"`
		} `json:"markers"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "chart-area1", out.Clip.ID)
	assert.Equal(t, -5.0, out.Clip.Y)
	assert.Equal(t, 105.0, out.Clip.H)
	require.Len(t, out.Areas, 1)
	segs := out.Areas[0].Path
	assert.Equal(t, "M", segs[0].Cmd)
	assert.Equal(t, "Z", segs[len(segs)-1].Cmd)
	assert.Empty(t, segs[len(segs)-1].Pts)
	require.Len(t, out.Markers, 2)
	assert.Equal(t, "a", out.Markers[0].X)
}
