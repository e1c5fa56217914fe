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

package series

import (
	"testing"
	"time"
)

func TestKeyString(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{Num(1.5), "1.5"},
		{Cat("linux"), "linux"},
		{Time(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)), "2024-03-01T12:00:00Z"},
	}
	for _, tc := range cases {
		if got := tc.key.String(); got != tc.want {
			t.Errorf("%#v: expected %q, got %q", tc.key, tc.want, got)
		}
	}
}

func TestKeyComparable(t *testing.T) {
	if Num(3) != Num(3) {
		t.Error("equal numeric keys compare unequal")
	}
	if Cat("3") == Num(3) {
		t.Error("ordinal and numeric keys must differ")
	}
	seen := map[Key]int{Cat("a"): 1}
	if seen[Cat("a")] != 1 {
		t.Error("category key not usable as map key")
	}
}

func TestAccessorsApply(t *testing.T) {
	in := []Series{{
		Label:  "a",
		Values: []Datum{{X: Num(0), Y: 2}, {X: Num(1), Y: 3}},
	}}

	same := Accessors{}.Apply(in)
	if &same[0] != &in[0] {
		t.Error("empty accessors should return the input unchanged")
	}

	doubled := Accessors{Y: func(d Datum) float64 { return 2 * d.Y }}.Apply(in)
	if doubled[0].Values[1].Y != 6 {
		t.Errorf("expected 6, got %g", doubled[0].Values[1].Y)
	}
	if in[0].Values[1].Y != 3 {
		t.Error("input was modified")
	}
	if doubled[0].Values[1].X != Num(1) {
		t.Error("default x accessor changed the key")
	}
}
