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

package interact

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/areachart/scale"
	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/shape"
	"seehuhn.de/go/areachart/stack"
)

// newController builds a frame with two series over the categories a, b
// and c on a 300x100 drawing area. The point (s0, b) is zero and has no
// marker.
func newController(t *testing.T, opts Options) *Controller {
	t.Helper()
	mk := func(label string, ys ...float64) series.Series {
		s := series.Series{Label: label}
		for i, y := range ys {
			s.Values = append(s.Values, series.Datum{X: series.Cat(string(rune('a' + i))), Y: y})
		}
		return s
	}
	layers, err := stack.Stack([]series.Series{mk("s0", 1, 0, 2), mk("s1", 1, 1, 1)}, stack.ModeOverlap)
	require.NoError(t, err)
	x, y := scale.Resolve(layers, scale.Ordinal, 300, 100)
	b := shape.Emit(layers, x, y, shape.Options{
		Mode:    stack.ModeOverlap,
		Width:   300,
		Height:  100,
		Opacity: 0.6,
	})
	return New(b, layers, x, opts)
}

func TestHoverReversible(t *testing.T) {
	var events []HoverChanged
	c := newController(t, Options{
		Tooltip: true,
		Hooks:   Hooks{OnHoverChanged: func(e HoverChanged) { events = append(events, e) }},
	})
	id := shape.MarkerID{Layer: 1, Index: 2}
	before := c.State()

	require.True(t, c.Enter(id))
	st := c.State()
	assert.True(t, st.Marker(id).Hovered)
	assert.True(t, st.Tooltip.Visible)
	assert.Equal(t, "s1\nc: 1", st.Tooltip.Text)
	assert.Equal(t, 1.0, c.LayerOpacity(1))
	assert.Equal(t, 0.6, c.LayerOpacity(0))

	require.True(t, c.Leave(id))
	assert.Equal(t, before, c.State())
	assert.Equal(t, 0.6, c.LayerOpacity(1))

	require.Len(t, events, 2)
	assert.True(t, events[0].Active)
	assert.False(t, events[1].Active)
	assert.Equal(t, "s1", events[0].Label)
	assert.Equal(t, "c", events[0].X.String())
}

func TestHoverOverlapping(t *testing.T) {
	c := newController(t, Options{Tooltip: true})
	a := shape.MarkerID{Layer: 0, Index: 2}
	b := shape.MarkerID{Layer: 1, Index: 2}

	require.True(t, c.Enter(a))
	onA := c.State()
	require.True(t, c.Enter(b))
	assert.Equal(t, b, c.State().Tooltip.ID)
	require.True(t, c.Leave(b))
	assert.Equal(t, onA, c.State())
	assert.Equal(t, "s0\nc: 2", c.State().Tooltip.Text)

	// leaving the marker below keeps the tooltip of the one on top
	require.True(t, c.Enter(b))
	onB := c.State().Tooltip
	require.True(t, c.Leave(a))
	assert.Equal(t, onB, c.State().Tooltip)
	require.True(t, c.Leave(b))
	assert.False(t, c.State().Tooltip.Visible)

	// entering a hovered marker again brings its tooltip to the front
	c.Enter(a)
	c.Enter(b)
	c.Enter(a)
	assert.Equal(t, a, c.State().Tooltip.ID)
	c.Leave(a)
	assert.Equal(t, b, c.State().Tooltip.ID)
}

func TestTooltipDisabled(t *testing.T) {
	c := newController(t, Options{})
	require.True(t, c.Enter(shape.MarkerID{Layer: 0, Index: 0}))
	assert.False(t, c.State().Tooltip.Visible)
}

func TestUnknownMarker(t *testing.T) {
	c := newController(t, Options{})
	assert.False(t, c.Enter(shape.MarkerID{Layer: 0, Index: 1}))
	assert.False(t, c.Click(shape.MarkerID{Layer: 5, Index: 0}))
}

func TestClickPulse(t *testing.T) {
	var clicked []PointClicked
	var during []State
	id := shape.MarkerID{Layer: 0, Index: 2}
	c := newController(t, Options{Hooks: Hooks{
		OnPointClicked: func(e PointClicked) { clicked = append(clicked, e) },
		OnChange:       func(s State) { during = append(during, s) },
	}})

	require.True(t, c.Click(id))
	require.Len(t, clicked, 1)
	assert.Equal(t, PointClicked{ID: id, Label: "s0", X: series.Cat("c"), Y: 2}, clicked[0])
	require.Len(t, during, 2)
	assert.True(t, during[0].Marker(id).Clicked)
	assert.False(t, during[1].Marker(id).Clicked)
	assert.Equal(t, c.State(), during[1])
	assert.False(t, c.State().Marker(id).Clicked)
}

func TestBrush(t *testing.T) {
	var ranges []RangeSelected
	c := newController(t, Options{
		Brushable: true,
		Hooks:     Hooks{OnRangeSelected: func(e RangeSelected) { ranges = append(ranges, e) }},
	})

	// band centres are at 50, 150 and 250
	from, to, ok := c.Brush(200, 100)
	require.True(t, ok)
	assert.InDelta(t, 1, from, 1e-9)
	assert.InDelta(t, 2, to, 1e-9)

	require.Len(t, ranges, 2)
	assert.Equal(t, "s0", ranges[0].Label)
	assert.Equal(t, []SelectedPoint{{Index: 1, X: series.Cat("b"), Y: 0}}, ranges[0].Points)
	assert.Equal(t, "s1", ranges[1].Label)

	// the zero point has no marker, so only s1 shows a selection
	assert.Equal(t, []shape.MarkerID{{Layer: 1, Index: 1}}, c.State().Selected())

	_, _, ok = c.Brush(0, 60)
	require.True(t, ok)
	assert.Equal(t, []shape.MarkerID{{Layer: 0, Index: 0}, {Layer: 1, Index: 0}}, c.State().Selected())
}

func TestBrushDisabled(t *testing.T) {
	called := false
	c := newController(t, Options{
		Hooks: Hooks{OnRangeSelected: func(RangeSelected) { called = true }},
	})
	_, _, ok := c.Brush(0, 300)
	assert.False(t, ok)
	assert.False(t, called)
}

func TestMouseout(t *testing.T) {
	c := newController(t, Options{Tooltip: true})
	c.Enter(shape.MarkerID{Layer: 0, Index: 0})
	c.Enter(shape.MarkerID{Layer: 1, Index: 1})
	require.Len(t, c.State().Hovered(), 2)

	require.True(t, c.Mouseout())
	st := c.State()
	assert.Empty(t, st.Hovered())
	assert.False(t, st.Tooltip.Visible)
}

func TestDetachDropsEvents(t *testing.T) {
	changes := 0
	c := newController(t, Options{
		Brushable: true,
		Hooks:     Hooks{OnChange: func(State) { changes++ }},
	})
	c.Detach()
	assert.True(t, c.Detached())

	id := shape.MarkerID{Layer: 0, Index: 0}
	assert.False(t, c.Enter(id))
	assert.False(t, c.Leave(id))
	assert.False(t, c.Click(id))
	assert.False(t, c.Mouseout())
	_, _, ok := c.Brush(0, 300)
	assert.False(t, ok)
	assert.Zero(t, changes)
	assert.False(t, c.State().Marker(id).Hovered)
}

func TestSnapshotIsolated(t *testing.T) {
	c := newController(t, Options{})
	id := shape.MarkerID{Layer: 0, Index: 0}
	st := c.State()
	c.Enter(id)
	assert.False(t, st.Marker(id).Hovered)
}

func TestConcurrentEvents(t *testing.T) {
	c := newController(t, Options{Tooltip: true, Brushable: true})
	ids := []shape.MarkerID{{Layer: 0, Index: 0}, {Layer: 0, Index: 2}, {Layer: 1, Index: 1}}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := ids[i%len(ids)]
			for range 100 {
				c.Enter(id)
				c.Click(id)
				c.Brush(0, 300)
				c.Leave(id)
			}
		}()
	}
	wg.Wait()
	c.Mouseout()
	assert.Empty(t, c.State().Hovered())
}
