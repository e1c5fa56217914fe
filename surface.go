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

package areachart

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/areachart/interact"
	"seehuhn.de/go/areachart/scale"
	"seehuhn.de/go/areachart/shape"
	"seehuhn.de/go/areachart/stack"
)

// Surface is a render target.
type Surface interface {
	// Size returns the size of the container in pixels.
	Size() (width, height float64)

	// Mount prepares a canvas of the given size. Anything shown by an
	// earlier render is discarded.
	Mount(width, height float64) error

	// Display shows a frame. The frame must not be modified.
	Display(f *Frame) error
}

// Refresher is implemented by surfaces which can update the interaction
// highlighting of the displayed frame without a full render.
// Refresh is called while the frame's controller is locked and must not
// call back into the controller. Surfaces ignore refreshes for frames
// other than the one they display.
type Refresher interface {
	Refresh(f *Frame, st interact.State)
}

// Frame is the result of one render: the stacked layers, the scales, the
// emitted shapes and the controller handling interaction with them.
type Frame struct {
	// Width and Height are the size of the surface.
	Width, Height float64
	Margin        Margin

	Mode   stack.Mode
	Layers []stack.Layer
	X      scale.X
	Y      *scale.Linear

	Shapes     *shape.Bundle
	Controller *interact.Controller
}

// Origin returns the position of the drawing area on the surface.
func (f *Frame) Origin() vec.Vec2 {
	return vec.Vec2{X: f.Margin.Left, Y: f.Margin.Top}
}

// State returns the current interaction state of the frame.
func (f *Frame) State() interact.State {
	return f.Controller.State()
}
