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

package scale

import (
	"math"
	"testing"
	"time"

	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/stack"
)

func layer(label string, pts ...stack.Point) stack.Layer {
	return stack.Layer{Label: label, Points: pts}
}

func TestLinear(t *testing.T) {
	l := &Linear{D0: -3, D1: 7, R0: 100, R1: 0}
	cases := []struct{ in, out float64 }{
		{-3, 100},
		{7, 0},
		{0, 70},
		{2, 50},
	}
	for _, tc := range cases {
		if got := l.Map(tc.in); math.Abs(got-tc.out) > 1e-9 {
			t.Errorf("Map(%g) = %g, expected %g", tc.in, got, tc.out)
		}
		if got := l.Invert(tc.out); math.Abs(got-tc.in) > 1e-9 {
			t.Errorf("Invert(%g) = %g, expected %g", tc.out, got, tc.in)
		}
	}

	flat := &Linear{D0: 2, D1: 2, R0: 0, R1: 50}
	if got := flat.Map(2); got != 25 {
		t.Errorf("degenerate domain: expected 25, got %g", got)
	}
}

func TestBand(t *testing.T) {
	keys := []series.Key{series.Cat("a"), series.Cat("b"), series.Cat("a"), series.Cat("c"), series.Cat("d")}
	b := NewBand(keys, 200)
	if got := b.Bandwidth(); got != 50 {
		t.Fatalf("expected bandwidth 50, got %g", got)
	}
	if got := b.Map(series.Cat("c")); got != 100 {
		t.Errorf("expected band start 100, got %g", got)
	}
	if !math.IsNaN(b.Map(series.Cat("zz"))) {
		t.Error("unknown key should map to NaN")
	}
	if got := b.Invert(120); got != 2.4 {
		t.Errorf("expected band index 2.4, got %g", got)
	}
	if len(b.Keys()) != 4 {
		t.Errorf("expected 4 distinct keys, got %d", len(b.Keys()))
	}
}

func TestResolveContinuous(t *testing.T) {
	layers := []stack.Layer{
		layer("a",
			stack.Point{X: series.Num(10), Y: 2},
			stack.Point{X: series.Num(20), Y: 4},
			stack.Point{X: series.Num(30), Y: 1}),
		layer("b",
			stack.Point{X: series.Num(10), Y: 1, Y0: 2},
			stack.Point{X: series.Num(20), Y: 6, Y0: 4},
			stack.Point{X: series.Num(30), Y: 1, Y0: 1}),
	}
	x, y := Resolve(layers, Continuous, 400, 100)
	if x.Bandwidth() != 0 {
		t.Error("continuous scale must have zero bandwidth")
	}
	if got := x.Map(series.Num(10)); got != 0 {
		t.Errorf("expected x(10) = 0, got %g", got)
	}
	if got := x.Map(series.Num(30)); got != 400 {
		t.Errorf("expected x(30) = 400, got %g", got)
	}
	if got := x.Invert(200); got != 20 {
		t.Errorf("expected Invert(200) = 20, got %g", got)
	}

	lo, hi := y.Domain()
	if lo != 0 || hi != 10 {
		t.Errorf("expected y domain [0, 10], got [%g, %g]", lo, hi)
	}
	if got := y.Map(0); got != 100 {
		t.Errorf("y(0) should be the bottom of the surface, got %g", got)
	}
	if got := y.Map(10); got != 0 {
		t.Errorf("y(10) should be the top of the surface, got %g", got)
	}
}

func TestResolveTime(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	layers := []stack.Layer{layer("a",
		stack.Point{X: series.Time(t0), Y: 1},
		stack.Point{X: series.Time(t0.Add(time.Hour)), Y: 1},
		stack.Point{X: series.Time(t0.Add(2 * time.Hour)), Y: 1})}
	x, _ := Resolve(layers, Time, 300, 100, WithLog())
	if x.Kind() != Time {
		t.Errorf("expected time scale, got %s", x.Kind())
	}
	if got := x.Map(series.Time(t0.Add(time.Hour))); math.Abs(got-150) > 1e-9 {
		t.Errorf("expected middle of the axis, got %g", got)
	}
}

func TestResolveLog(t *testing.T) {
	layers := []stack.Layer{layer("a",
		stack.Point{X: series.Num(1), Y: 1},
		stack.Point{X: series.Num(10), Y: 1},
		stack.Point{X: series.Num(100), Y: 1})}
	x, _ := Resolve(layers, Continuous, 200, 100, WithLog())
	if got := x.Map(series.Num(10)); math.Abs(got-100) > 1e-9 {
		t.Errorf("expected x(10) = 100 on a log axis, got %g", got)
	}
	if got := x.Invert(200); math.Abs(got-100) > 1e-9 {
		t.Errorf("expected Invert(200) = 100, got %g", got)
	}
}

func TestResolveOrdinal(t *testing.T) {
	layers := []stack.Layer{layer("a",
		stack.Point{X: series.Cat("mon"), Y: 1},
		stack.Point{X: series.Cat("tue"), Y: 2},
		stack.Point{X: series.Cat("wed"), Y: 3},
		stack.Point{X: series.Cat("thu"), Y: 4})}
	x, _ := Resolve(layers, Ordinal, 400, 100)
	if got := x.Bandwidth(); got != 100 {
		t.Errorf("expected bandwidth 100, got %g", got)
	}
	if got := x.Map(series.Cat("wed")); got != 200 {
		t.Errorf("expected band start 200, got %g", got)
	}
}

func TestResolveNegative(t *testing.T) {
	layers := []stack.Layer{layer("a",
		stack.Point{X: series.Num(0), Y: -3},
		stack.Point{X: series.Num(1), Y: 5})}
	_, y := Resolve(layers, Continuous, 100, 100)
	lo, hi := y.Domain()
	if lo != -3 || hi != 5 {
		t.Errorf("expected y domain [-3, 5], got [%g, %g]", lo, hi)
	}
}

func TestResolveEmpty(t *testing.T) {
	x, y := Resolve(nil, Continuous, 100, 50)
	if got := x.Map(series.Num(0)); got != 0 {
		t.Errorf("expected 0, got %g", got)
	}
	lo, hi := y.Domain()
	if lo != 0 || hi != 1 {
		t.Errorf("expected y domain [0, 1], got [%g, %g]", lo, hi)
	}
}

func TestZeroLine(t *testing.T) {
	negative := &Linear{D0: -3, D1: 10, R0: 100, R1: 0}
	positive := &Linear{D0: 0, D1: 10, R0: 100, R1: 0}
	cases := []struct {
		y    *Linear
		mode stack.Mode
		want bool
	}{
		{negative, stack.ModeStack, true},
		{negative, stack.ModeOverlap, true},
		{negative, stack.ModeWiggle, false},
		{negative, stack.ModeSilhouette, false},
		{positive, stack.ModeStack, false},
	}
	for _, tc := range cases {
		if got := ZeroLine(tc.y, tc.mode); got != tc.want {
			t.Errorf("%s with domain min %g: expected %t, got %t", tc.mode, tc.y.D0, tc.want, got)
		}
	}
}
