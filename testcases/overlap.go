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

var overlapCases = []TestCase{
	{
		Name: "two_series",
		Series: []series.Series{
			counts("today", 5, 9, 7, 12, 10, 4, 3),
			counts("last_week", 8, 6, 9, 7, 11, 6, 5),
		},
		Mode:   stack.ModeOverlap,
		Attrs:  map[string]any{"addTooltip": true},
		Width:  320,
		Height: 200,
	},
	{
		Name: "negative",
		Series: []series.Series{
			counts("delta", 3, -2, 4, -1, 2),
			counts("trend", 1, 1, 2, 2, 3),
		},
		Mode:   stack.ModeOverlap,
		Attrs:  map[string]any{"defaultOpacity": 0.4},
		Width:  300,
		Height: 200,
	},
}
