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
	"seehuhn.de/go/areachart/interact"
	"seehuhn.de/go/areachart/scale"
	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/shape"
	"seehuhn.de/go/areachart/stack"
)

// DrawRequest holds the inputs of one draw call.
type DrawRequest struct {
	Series []series.Series
	Mode   stack.Mode
	XKind  scale.Kind
	XOpts  []scale.Option

	// Width and Height are the size of the drawing area.
	Width, Height float64

	// Shape carries colours, opacity, clip id and time series flag.
	// Mode, size and kind are filled in by Draw.
	Shape    shape.Options
	Interact interact.Options
}

// Variant is a chart type sharing the area chart pipeline.
type Variant interface {
	// Draw stacks the series, resolves the scales and builds the shapes
	// and the interaction controller.
	Draw(req DrawRequest) (*Frame, error)

	// AddPath emits the shapes of the layers.
	AddPath(layers []stack.Layer, x scale.X, y *scale.Linear, opts shape.Options) *shape.Bundle

	// AddCircleEvents connects a controller to the markers of b.
	AddCircleEvents(b *shape.Bundle, layers []stack.Layer, x scale.X, opts interact.Options) *interact.Controller
}

// Area draws every layer as a filled polygon.
type Area struct{}

// Draw implements the Variant interface.
func (v Area) Draw(req DrawRequest) (*Frame, error) {
	return draw(v, req)
}

// AddPath implements the Variant interface.
func (Area) AddPath(layers []stack.Layer, x scale.X, y *scale.Linear, opts shape.Options) *shape.Bundle {
	opts.Kind = shape.KindArea
	return shape.Emit(layers, x, y, opts)
}

// AddCircleEvents implements the Variant interface.
func (Area) AddCircleEvents(b *shape.Bundle, layers []stack.Layer, x scale.X, opts interact.Options) *interact.Controller {
	return interact.New(b, layers, x, opts)
}

// Line draws the top edge of every layer.
type Line struct{}

// Draw implements the Variant interface.
func (v Line) Draw(req DrawRequest) (*Frame, error) {
	return draw(v, req)
}

// AddPath implements the Variant interface.
func (Line) AddPath(layers []stack.Layer, x scale.X, y *scale.Linear, opts shape.Options) *shape.Bundle {
	opts.Kind = shape.KindLine
	return shape.Emit(layers, x, y, opts)
}

// AddCircleEvents implements the Variant interface.
func (Line) AddCircleEvents(b *shape.Bundle, layers []stack.Layer, x scale.X, opts interact.Options) *interact.Controller {
	return interact.New(b, layers, x, opts)
}

func draw(v Variant, req DrawRequest) (*Frame, error) {
	layers, err := stack.Stack(req.Series, req.Mode)
	if err != nil {
		return nil, err
	}
	x, y := scale.Resolve(layers, req.XKind, req.Width, req.Height, req.XOpts...)

	opts := req.Shape
	opts.Mode = req.Mode
	opts.Width = req.Width
	opts.Height = req.Height
	b := v.AddPath(layers, x, y, opts)

	return &Frame{
		Mode:       req.Mode,
		Layers:     layers,
		X:          x,
		Y:          y,
		Shapes:     b,
		Controller: v.AddCircleEvents(b, layers, x, req.Interact),
	}, nil
}
