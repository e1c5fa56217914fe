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
	"math"

	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/stack"
)

// wave returns a smooth positive series for streamgraph fixtures.
func wave(label string, n int, phase float64) series.Series {
	return numeric(label, 0, 1, generate(n, func(i int) float64 {
		return 3 + 2*math.Sin(float64(i)/3+phase)
	})...)
}

var streamCases = []TestCase{
	{
		Name: "wiggle",
		Series: []series.Series{
			wave("a", 20, 0),
			wave("b", 20, 1),
			wave("c", 20, 2),
			wave("d", 20, 3),
		},
		Mode:   stack.ModeWiggle,
		Width:  400,
		Height: 240,
	},
	{
		Name: "silhouette",
		Series: []series.Series{
			wave("a", 20, 0),
			wave("b", 20, 1.5),
			wave("c", 20, 3),
		},
		Mode:   stack.ModeSilhouette,
		Width:  400,
		Height: 240,
	},
	{
		Name: "silhouette_categories",
		Series: []series.Series{
			counts("x", 1, 4, 2, 5, 3),
			counts("y", 2, 1, 3, 1, 2),
		},
		Mode:   stack.ModeSilhouette,
		Width:  300,
		Height: 200,
	},
}
