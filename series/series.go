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

// Package series holds the input data model of an area chart: labelled
// sequences of (x, y) points.
package series

import (
	"strconv"
	"time"
)

// Key is an x value. A key is either continuous (a number or a point in
// time) or ordinal (a category name). Keys are comparable and can be used
// as map keys.
type Key struct {
	num     float64
	cat     string
	ordinal bool
	time    bool
}

// Num returns a continuous numeric key.
func Num(x float64) Key {
	return Key{num: x}
}

// Time returns a continuous key for t, stored with millisecond resolution.
func Time(t time.Time) Key {
	return Key{num: float64(t.UnixMilli()), time: true}
}

// Cat returns an ordinal key.
func Cat(name string) Key {
	return Key{cat: name, ordinal: true}
}

// Ordinal reports whether k is a category key.
func (k Key) Ordinal() bool {
	return k.ordinal
}

// IsTime reports whether k was constructed from a time value.
func (k Key) IsTime() bool {
	return k.time
}

// Float returns the position of a continuous key. For ordinal keys the
// result is 0.
func (k Key) Float() float64 {
	return k.num
}

// Name returns the category of an ordinal key.
func (k Key) Name() string {
	return k.cat
}

// String formats the key for labels and tooltips.
func (k Key) String() string {
	switch {
	case k.ordinal:
		return k.cat
	case k.time:
		return time.UnixMilli(int64(k.num)).UTC().Format(time.RFC3339)
	default:
		return strconv.FormatFloat(k.num, 'g', -1, 64)
	}
}

// Datum is one raw input point.
type Datum struct {
	X Key
	Y float64
}

// Series is a named sequence of points. All series of one chart must share
// the same ordered set of x values.
type Series struct {
	Label  string
	Values []Datum
}

// Keys returns the x values of s in order.
func (s Series) Keys() []Key {
	keys := make([]Key, len(s.Values))
	for i, d := range s.Values {
		keys[i] = d.X
	}
	return keys
}

// Accessors extract the x and y value of a datum. Nil fields fall back to
// the datum's own X and Y.
type Accessors struct {
	X func(Datum) Key
	Y func(Datum) float64
}

// Apply returns copies of the given series with the accessors applied to
// every datum. The input is not modified.
func (a Accessors) Apply(in []Series) []Series {
	if a.X == nil && a.Y == nil {
		return in
	}
	xOf := a.X
	if xOf == nil {
		xOf = func(d Datum) Key { return d.X }
	}
	yOf := a.Y
	if yOf == nil {
		yOf = func(d Datum) float64 { return d.Y }
	}

	out := make([]Series, len(in))
	for i, s := range in {
		vals := make([]Datum, len(s.Values))
		for j, d := range s.Values {
			vals[j] = Datum{X: xOf(d), Y: yOf(d)}
		}
		out[i] = Series{Label: s.Label, Values: vals}
	}
	return out
}
