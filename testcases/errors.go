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

package testcases

import (
	"seehuhn.de/go/areachart"
	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/stack"
)

var errorCases = []TestCase{
	{
		Name: "single_point",
		Series: []series.Series{
			counts("a", 1, 2, 3),
			counts("b", 4),
		},
		Mode:   stack.ModeStack,
		Width:  300,
		Height: 200,
		Err:    areachart.ErrNotEnoughData,
	},
	{
		Name: "tiny_container",
		Series: []series.Series{
			counts("a", 1, 2, 3),
		},
		Mode:   stack.ModeStack,
		Width:  10,
		Height: 10,
		Err:    areachart.ErrContainerTooSmall,
	},
	{
		Name: "margins_too_large",
		Series: []series.Series{
			counts("a", 1, 2, 3),
		},
		Mode:   stack.ModeStack,
		Attrs:  map[string]any{"margin": map[string]any{"top": 100, "bottom": 90}},
		Width:  300,
		Height: 200,
		Err:    areachart.ErrContainerTooSmall,
	},
}
