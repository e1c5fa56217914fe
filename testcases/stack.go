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
	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/stack"
)

var stackCases = []TestCase{
	{
		Name: "two_series",
		Series: []series.Series{
			counts("errors", 3, 5, 2, 6, 4, 1, 2),
			counts("warnings", 7, 4, 6, 3, 5, 8, 6),
		},
		Mode:   stack.ModeStack,
		Width:  320,
		Height: 200,
	},
	{
		Name: "zeros",
		Series: []series.Series{
			counts("a", 0, 2, 0, 3, 0),
			counts("b", 1, 0, 2, 0, 1),
			counts("c", 2, 2, 0, 0, 2),
		},
		Mode:   stack.ModeStack,
		Width:  300,
		Height: 180,
	},
	{
		Name: "negative",
		Series: []series.Series{
			counts("profit", 4, 2, -3, -5, 1, 3),
			counts("bonus", 1, 1, 1, 1, 1, 1),
		},
		Mode:   stack.ModeStack,
		Width:  300,
		Height: 200,
	},
	{
		Name: "line",
		Series: []series.Series{
			counts("cpu", 20, 35, 30, 60, 45),
			counts("io", 10, 5, 15, 10, 20),
		},
		Mode:   stack.ModeStack,
		Attrs:  map[string]any{"kind": "line"},
		Width:  300,
		Height: 200,
	},
	{
		Name: "numeric_x",
		Series: []series.Series{
			numeric("latency", 0, 10, 5, 8, 6, 9, 12, 7),
			numeric("queue", 0, 10, 2, 2, 3, 1, 2, 4),
		},
		Mode:   stack.ModeStack,
		Attrs:  map[string]any{"margin": map[string]any{"left": 30, "bottom": 20}},
		Width:  320,
		Height: 200,
	},
	{
		Name: "log_x",
		Series: []series.Series{
			numeric("size", 1, 99, 3, 5, 4, 6, 5, 7, 6),
		},
		Mode:   stack.ModeStack,
		Attrs:  map[string]any{"xScale": "log"},
		Width:  320,
		Height: 200,
	},
}
