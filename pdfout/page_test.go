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

package pdfout

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/areachart"
	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/shape"
	"seehuhn.de/go/areachart/stack"
)

// recorder logs the drawing operations as text.
type recorder struct {
	ops []string
}

func (r *recorder) SetFillColor(pdfcolor.Color)   { r.ops = append(r.ops, "fillcolor") }
func (r *recorder) SetStrokeColor(pdfcolor.Color) { r.ops = append(r.ops, "strokecolor") }
func (r *recorder) SetLineWidth(w float64)        { r.ops = append(r.ops, fmt.Sprintf("w %g", w)) }
func (r *recorder) MoveTo(x, y float64)           { r.ops = append(r.ops, fmt.Sprintf("m %g %g", x, y)) }
func (r *recorder) LineTo(x, y float64)           { r.ops = append(r.ops, fmt.Sprintf("l %g %g", x, y)) }
func (r *recorder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	r.ops = append(r.ops, "c")
}
func (r *recorder) ClosePath() { r.ops = append(r.ops, "h") }
func (r *recorder) Rectangle(x, y, w, h float64) {
	r.ops = append(r.ops, fmt.Sprintf("re %g %g %g %g", x, y, w, h))
}
func (r *recorder) Fill()              { r.ops = append(r.ops, "f") }
func (r *recorder) Stroke()            { r.ops = append(r.ops, "S") }
func (r *recorder) ClipNonZero()       { r.ops = append(r.ops, "W") }
func (r *recorder) EndPath()           { r.ops = append(r.ops, "n") }
func (r *recorder) PushGraphicsState() { r.ops = append(r.ops, "q") }
func (r *recorder) PopGraphicsState()  { r.ops = append(r.ops, "Q") }

func (r *recorder) index(op string) int {
	for i, o := range r.ops {
		if o == op {
			return i
		}
	}
	return -1
}

func (r *recorder) count(op string) int {
	n := 0
	for _, o := range r.ops {
		if o == op {
			n++
		}
	}
	return n
}

func testDocument(kind string) *areachart.Document {
	cfg := areachart.DefaultConfig()
	cfg.Kind = kind
	return &areachart.Document{
		Series: []series.Series{
			{Label: "a", Values: []series.Datum{
				{X: series.Cat("x"), Y: 1}, {X: series.Cat("y"), Y: 3}, {X: series.Cat("z"), Y: 2},
			}},
			{Label: "b", Values: []series.Datum{
				{X: series.Cat("x"), Y: 2}, {X: series.Cat("y"), Y: 0}, {X: series.Cat("z"), Y: 1},
			}},
		},
		Mode:   stack.ModeStack,
		Config: cfg,
	}
}

// frameOnly is a surface which keeps the frame without drawing it.
type frameOnly struct{ w, h float64 }

func (s frameOnly) Size() (float64, float64)       { return s.w, s.h }
func (s frameOnly) Mount(float64, float64) error   { return nil }
func (s frameOnly) Display(*areachart.Frame) error { return nil }

func TestDrawAreas(t *testing.T) {
	f, err := areachart.New().Render(frameOnly{200, 100}, testDocument("area"))
	require.NoError(t, err)

	r := &recorder{}
	draw(r, f, f.State(), f.Origin())

	assert.Equal(t, 2, r.count("f"), "one fill per layer")
	assert.Equal(t, 2, r.count("h"), "filled outlines are closed")
	// base line only, since no value is negative
	assert.Equal(t, 1, r.count("S"))
	i := r.index("fillcolor")
	require.GreaterOrEqual(t, i, 0)
	assert.True(t, strings.HasPrefix(r.ops[i+1], "m "), r.ops[i+1])
}

func TestDrawClip(t *testing.T) {
	f, err := areachart.New().Render(frameOnly{200, 100}, testDocument("area"))
	require.NoError(t, err)
	id := shape.MarkerID{Layer: 0, Index: 1}
	require.True(t, f.Controller.Enter(id))

	r := &recorder{}
	draw(r, f, f.State(), vec.Vec2{X: 10, Y: 20})

	clip := f.Shapes.Clip.Rect
	want := fmt.Sprintf("re %g %g %g %g", clip.LLx+10, clip.LLy+20, clip.Dx(), clip.Dy())
	require.Equal(t, []string{"q", want, "W", "n"}, r.ops[:4])

	// areas and the hovered marker lie inside the clip, guides outside
	pop := r.index("Q")
	require.Greater(t, pop, 0)
	inside := &recorder{ops: r.ops[:pop]}
	outside := &recorder{ops: r.ops[pop+1:]}
	assert.Equal(t, 2, inside.count("f"))
	assert.Equal(t, 4, inside.count("c"), "marker circle")
	assert.Equal(t, 1, inside.count("S"), "marker ring")
	assert.Equal(t, 1, outside.count("S"), "base line")
	assert.Zero(t, outside.count("f"))
	assert.Equal(t, "S", r.ops[len(r.ops)-1], "the base line is stroked last")
}

func TestDrawOffset(t *testing.T) {
	f, err := areachart.New().Render(frameOnly{200, 100}, testDocument("area"))
	require.NoError(t, err)

	r := &recorder{}
	draw(r, f, f.State(), vec.Vec2{X: 100, Y: 1000})
	for _, op := range r.ops {
		if !strings.HasPrefix(op, "m ") && !strings.HasPrefix(op, "l ") {
			continue
		}
		var x, y float64
		_, err := fmt.Sscanf(op[2:], "%g %g", &x, &y)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, x, 100.0, op)
		assert.GreaterOrEqual(t, y, 1000.0-shape.ClipBuffer, op)
	}
}

func TestDrawLines(t *testing.T) {
	f, err := areachart.New().Render(frameOnly{200, 100}, testDocument("line"))
	require.NoError(t, err)

	r := &recorder{}
	draw(r, f, f.State(), f.Origin())
	assert.Zero(t, r.count("f"))
	assert.Zero(t, r.count("h"))
	assert.Equal(t, 3, r.count("S"), "two layers and the base line")
	assert.Contains(t, r.ops, fmt.Sprintf("w %g", float64(LineWidth)))
}

func TestDrawHighlightedMarkers(t *testing.T) {
	f, err := areachart.New().Render(frameOnly{200, 100}, testDocument("area"))
	require.NoError(t, err)

	r := &recorder{}
	draw(r, f, f.State(), f.Origin())
	assert.Zero(t, r.count("c"), "markers are hidden by default")

	require.True(t, f.Controller.Enter(shape.MarkerID{Layer: 0, Index: 1}))
	r = &recorder{}
	draw(r, f, f.State(), f.Origin())
	assert.Equal(t, 4, r.count("c"), "one circle of four arcs")
}

func TestBlend(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	assert.Equal(t, red, blend(red, 1))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, blend(red, 0))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x66, B: 0x66, A: 0xff}, blend(red, 0.6))
}

func TestPageWrite(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "chart.pdf")
	p := NewPage(fileName, 200, 100)

	_, err := areachart.New().Render(p, testDocument("area"))
	require.NoError(t, err)

	data, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))

	f, err := areachart.New().Render(frameOnly{200, 100}, testDocument("area"))
	require.NoError(t, err)
	assert.ErrorIs(t, p.Display(f), errWritten)
}

func TestPageNotMounted(t *testing.T) {
	f, err := areachart.New().Render(frameOnly{200, 100}, testDocument("area"))
	require.NoError(t, err)

	p := NewPage(filepath.Join(t.TempDir(), "x.pdf"), 200, 100)
	assert.ErrorIs(t, p.Display(f), errNotMounted)
	assert.Error(t, p.Mount(0, 100))
}
