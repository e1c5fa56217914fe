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
	"time"

	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/stack"
)

var day = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

var timeCases = []TestCase{
	{
		Name: "hourly",
		Series: []series.Series{
			buckets("200", day, time.Hour, generate(24, func(i int) float64 {
				return 40 + 30*math.Sin(float64(i)*math.Pi/12)
			})...),
			buckets("404", day, time.Hour, generate(24, func(i int) float64 {
				return float64(i % 5)
			})...),
			buckets("500", day, time.Hour, generate(24, func(i int) float64 {
				if i%7 == 3 {
					return 6
				}
				return 0
			})...),
		},
		Mode:   stack.ModeStack,
		Date:   true,
		Attrs:  map[string]any{"addTooltip": true, "brushable": true},
		Width:  480,
		Height: 240,
	},
	{
		Name: "daily_overlap",
		Series: []series.Series{
			buckets("visits", day, 24*time.Hour, 120, 150, 90, 200, 170, 60, 80),
			buckets("signups", day, 24*time.Hour, 12, 30, 8, 45, 20, 5, 9),
		},
		Mode:   stack.ModeOverlap,
		Date:   true,
		Width:  360,
		Height: 200,
	},
}
