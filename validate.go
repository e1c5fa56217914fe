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
	"fmt"

	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/stack"
)

// Minimum size of the drawing area, in pixels.
const (
	MinWidth  = 20
	MinHeight = 20
)

// Validate checks whether the given series can be drawn on a surface of
// the given size. Every series needs at least two points, and the drawing
// area left after subtracting the margin must be at least MinWidth by
// MinHeight pixels.
func Validate(in []series.Series, width, height float64, m Margin) error {
	for _, s := range in {
		if len(s.Values) < 2 {
			return ErrNotEnoughData
		}
	}

	w := width - m.Left - m.Right
	h := height - m.Top - m.Bottom
	if w < MinWidth || h < MinHeight {
		return &ChartError{
			Kind: KindContainerTooSmall,
			Message: fmt.Sprintf("%s (drawing area %gx%g, need %dx%d)",
				ErrContainerTooSmall.Message, w, h, MinWidth, MinHeight),
		}
	}
	return nil
}

// Check reports whether Render would accept the document on a surface of
// the given size. Validation errors come first; series which cannot be
// stacked give an error wrapping ErrBadDocument.
func (d *Document) Check(width, height float64) error {
	if err := Validate(d.Series, width, height, d.Config.Margin); err != nil {
		return err
	}
	if err := stack.Aligned(d.Config.accessors().Apply(d.Series)); err != nil {
		return fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	return nil
}
