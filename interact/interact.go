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

// Package interact tracks pointer interaction with a rendered chart.
//
// A Controller belongs to one installed frame. It keeps per-marker hover,
// selection and click flags, the tooltip, and dispatches output events to
// the caller's hooks. Once detached it ignores all further input.
package interact

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/areachart/scale"
	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/shape"
	"seehuhn.de/go/areachart/stack"
)

// PointClicked is emitted when a marker is clicked.
type PointClicked struct {
	ID    shape.MarkerID
	Label string
	X     series.Key
	Y     float64
}

// HoverChanged is emitted when the pointer enters or leaves a marker.
type HoverChanged struct {
	ID     shape.MarkerID
	Label  string
	X      series.Key
	Y      float64
	Active bool
}

// SelectedPoint is one data point inside a brushed range.
type SelectedPoint struct {
	Index int
	X     series.Key
	Y     float64
}

// RangeSelected is emitted once per series with points inside a brushed
// range.
type RangeSelected struct {
	Label    string
	Points   []SelectedPoint
	From, To float64
}

// Hooks receive output events. Hooks are called with the controller locked
// and must not call back into the controller.
type Hooks struct {
	OnPointClicked  func(PointClicked)
	OnRangeSelected func(RangeSelected)
	OnHoverChanged  func(HoverChanged)

	// OnChange requests a refresh of the displayed frame.
	OnChange func(State)
}

// Options configure a Controller.
type Options struct {
	Tooltip   bool
	Brushable bool
	Hooks     Hooks
}

// MarkerState holds the interaction flags of one marker.
type MarkerState struct {
	Hovered  bool
	Selected bool
	Clicked  bool
}

// Tooltip describes the tooltip shown next to a hovered marker.
type Tooltip struct {
	Visible bool
	ID      shape.MarkerID
	At      vec.Vec2
	Text    string
}

// State is a snapshot of the interaction state. It is not modified after
// it has been returned.
type State struct {
	Markers map[shape.MarkerID]MarkerState
	Tooltip Tooltip
}

// Marker returns the flags of the given marker.
func (s State) Marker(id shape.MarkerID) MarkerState {
	return s.Markers[id]
}

// Hovered returns the hovered markers, ordered by layer and index.
func (s State) Hovered() []shape.MarkerID {
	var res []shape.MarkerID
	for id, m := range s.Markers {
		if m.Hovered {
			res = append(res, id)
		}
	}
	slices.SortFunc(res, compareID)
	return res
}

// Selected returns the selected markers, ordered by layer and index.
func (s State) Selected() []shape.MarkerID {
	var res []shape.MarkerID
	for id, m := range s.Markers {
		if m.Selected {
			res = append(res, id)
		}
	}
	slices.SortFunc(res, compareID)
	return res
}

// LayerHovered reports whether a marker of layer i is hovered.
func (s State) LayerHovered(i int) bool {
	for id, m := range s.Markers {
		if id.Layer == i && m.Hovered {
			return true
		}
	}
	return false
}

func compareID(a, b shape.MarkerID) int {
	if a.Layer != b.Layer {
		return a.Layer - b.Layer
	}
	return a.Index - b.Index
}

// Controller holds the interaction state of one frame.
type Controller struct {
	mu       sync.Mutex
	bundle   *shape.Bundle
	layers   []stack.Layer
	x        scale.X
	opts     Options
	markers  map[shape.MarkerID]MarkerState
	tooltip  Tooltip
	detached bool

	// hovered lists the hovered markers in the order they were entered.
	// The tooltip belongs to the last one.
	hovered []shape.MarkerID
}

// New creates a controller for the given frame geometry.
func New(bundle *shape.Bundle, layers []stack.Layer, x scale.X, opts Options) *Controller {
	c := &Controller{
		bundle:  bundle,
		layers:  layers,
		x:       x,
		opts:    opts,
		markers: make(map[shape.MarkerID]MarkerState, len(bundle.Markers)),
	}
	for _, m := range bundle.Markers {
		c.markers[m.ID] = MarkerState{}
	}
	return c
}

// Enter marks the given marker as hovered and shows its tooltip if enabled.
func (c *Controller) Enter(id shape.MarkerID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.lookup(id)
	if !ok {
		return false
	}
	st := c.markers[id]
	st.Hovered = true
	c.markers[id] = st
	c.hovered = append(slices.DeleteFunc(c.hovered, func(h shape.MarkerID) bool { return h == id }), id)
	c.updateTooltip()
	if h := c.opts.Hooks.OnHoverChanged; h != nil {
		h(HoverChanged{ID: id, Label: m.Label, X: m.X, Y: m.Y, Active: true})
	}
	c.changed()
	return true
}

// Leave clears the hovered flag of the given marker. If other markers are
// still hovered, the tooltip returns to the one entered most recently.
func (c *Controller) Leave(id shape.MarkerID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.lookup(id)
	if !ok {
		return false
	}
	st := c.markers[id]
	st.Hovered = false
	c.markers[id] = st
	c.hovered = slices.DeleteFunc(c.hovered, func(h shape.MarkerID) bool { return h == id })
	c.updateTooltip()
	if h := c.opts.Hooks.OnHoverChanged; h != nil {
		h(HoverChanged{ID: id, Label: m.Label, X: m.X, Y: m.Y, Active: false})
	}
	c.changed()
	return true
}

// Click dispatches a PointClicked event for the given marker. The Clicked
// flag is set while the hooks run and is reset afterwards; OnChange sees
// both transitions.
func (c *Controller) Click(id shape.MarkerID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.lookup(id)
	if !ok {
		return false
	}
	st := c.markers[id]
	st.Clicked = true
	c.markers[id] = st
	if h := c.opts.Hooks.OnPointClicked; h != nil {
		h(PointClicked{ID: id, Label: m.Label, X: m.X, Y: m.Y})
	}
	c.changed()
	st.Clicked = false
	c.markers[id] = st
	c.changed()
	return true
}

// Brush selects all data points whose x position lies in the pixel range
// [px0, px1] and returns the corresponding data range. The previous
// selection is replaced. Brush has no effect unless brushing is enabled.
func (c *Controller) Brush(px0, px1 float64) (from, to float64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.detached || !c.opts.Brushable {
		return 0, 0, false
	}
	if px1 < px0 {
		px0, px1 = px1, px0
	}
	from, to = c.x.Invert(px0), c.x.Invert(px1)

	for id, st := range c.markers {
		st.Selected = false
		c.markers[id] = st
	}

	half := c.x.Bandwidth() / 2
	for i, l := range c.layers {
		var hits []SelectedPoint
		for j, p := range l.Points {
			px := c.x.Map(p.X) + half
			if px < px0 || px > px1 {
				continue
			}
			hits = append(hits, SelectedPoint{Index: j, X: p.X, Y: p.Y})
			id := shape.MarkerID{Layer: i, Index: j}
			if st, isMarker := c.markers[id]; isMarker {
				st.Selected = true
				c.markers[id] = st
			}
		}
		if len(hits) == 0 {
			continue
		}
		if h := c.opts.Hooks.OnRangeSelected; h != nil {
			h(RangeSelected{Label: l.Label, Points: hits, From: from, To: to})
		}
	}
	c.changed()
	return from, to, true
}

// Mouseout clears all hovered flags and hides the tooltip.
func (c *Controller) Mouseout() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.detached {
		return false
	}
	for id, st := range c.markers {
		st.Hovered = false
		c.markers[id] = st
	}
	c.hovered = c.hovered[:0]
	c.tooltip = Tooltip{}
	c.changed()
	return true
}

// Detach disconnects the controller from its frame. Detach waits for
// running event handlers to finish; afterwards all input is ignored.
func (c *Controller) Detach() {
	c.mu.Lock()
	c.detached = true
	c.mu.Unlock()
}

// Detached reports whether Detach has been called.
func (c *Controller) Detached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.detached
}

// State returns a snapshot of the current interaction state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// LayerOpacity returns the fill opacity of layer i. A layer with a hovered
// marker is drawn fully opaque.
func (c *Controller) LayerOpacity(i int) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if (State{Markers: c.markers}).LayerHovered(i) {
		return 1
	}
	for _, a := range c.bundle.Areas {
		if a.Layer == i {
			return a.Opacity
		}
	}
	return 1
}

func (c *Controller) lookup(id shape.MarkerID) (*shape.Marker, bool) {
	if c.detached {
		return nil, false
	}
	return c.bundle.Marker(id)
}

// updateTooltip shows the tooltip of the most recently entered marker
// which is still hovered.
func (c *Controller) updateTooltip() {
	c.tooltip = Tooltip{}
	if !c.opts.Tooltip || len(c.hovered) == 0 {
		return
	}
	id := c.hovered[len(c.hovered)-1]
	m, _ := c.bundle.Marker(id)
	c.tooltip = Tooltip{
		Visible: true,
		ID:      id,
		At:      m.Center,
		Text:    fmt.Sprintf("%s\n%s: %g", m.Label, m.X, m.Y),
	}
}

func (c *Controller) snapshot() State {
	return State{
		Markers: maps.Clone(c.markers),
		Tooltip: c.tooltip,
	}
}

func (c *Controller) changed() {
	if h := c.opts.Hooks.OnChange; h != nil {
		h(c.snapshot())
	}
}
