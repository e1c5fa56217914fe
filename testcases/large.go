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
	"fmt"
	"math"

	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/stack"
)

// many returns n series with m points each.
func many(n, m int) []series.Series {
	res := make([]series.Series, n)
	for k := range res {
		res[k] = numeric(fmt.Sprintf("series_%02d", k), 0, 1, generate(m, func(i int) float64 {
			v := 5 + 4*math.Sin(float64(i)/(7+float64(k))+float64(k))
			return math.Round(v*10) / 10
		})...)
	}
	return res
}

// largeCases exercise the rasteriser with many layers on a big surface.
var largeCases = []TestCase{
	{
		Name:   "many_series",
		Series: many(12, 200),
		Mode:   stack.ModeStack,
		Width:  1200,
		Height: 600,
	},
	{
		Name:   "many_series_wiggle",
		Series: many(12, 200),
		Mode:   stack.ModeWiggle,
		Width:  1200,
		Height: 600,
	},
}
