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

// Package stack converts parallel series into stacked layers.
//
// Each layer point carries a baseline Y0 and a thickness Y. Four baseline
// policies are supported: plain stacking, overlapping layers, and the two
// streamgraph offsets "wiggle" and "silhouette". In every mode the total
// thickness at an x position equals the sum of the input values there.
package stack

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/areachart/series"
)

// Mode selects how layer baselines are computed.
type Mode int

const (
	ModeStack Mode = iota
	ModeOverlap
	ModeWiggle
	ModeSilhouette
)

var modeNames = [...]string{
	ModeStack:      "stack",
	ModeOverlap:    "overlap",
	ModeWiggle:     "wiggle",
	ModeSilhouette: "silhouette",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Streamgraph reports whether the mode places the stack relative to a
// moving baseline, so that y = 0 has no visual meaning.
func (m Mode) Streamgraph() bool {
	return m == ModeWiggle || m == ModeSilhouette
}

// ParseMode converts a mode name into a Mode. The empty string selects
// ModeStack.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeStack, nil
	}
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

var (
	// ErrMisaligned is returned if the series do not share the same
	// ordered set of x values.
	ErrMisaligned = errors.New("stack: series are not point-aligned")

	// ErrUnknownMode is returned for an invalid stacking mode.
	ErrUnknownMode = errors.New("stack: unknown mode")
)

// Point is a stacked data point.
type Point struct {
	X  series.Key
	Y  float64 // thickness
	Y0 float64 // baseline
}

// Top returns the upper edge of the point, Y0+Y.
func (p Point) Top() float64 {
	return p.Y0 + p.Y
}

// Layer is one series after stacking.
type Layer struct {
	Label  string
	Points []Point
}

// Stack computes the layers for the given series. The order of the input
// is the stacking order: the first series is the bottom-most layer.
//
// An empty input gives an empty result. Series of different lengths or with
// different x values give ErrMisaligned.
func Stack(in []series.Series, mode Mode) ([]Layer, error) {
	if mode < 0 || int(mode) >= len(modeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	if len(in) == 0 {
		return []Layer{}, nil
	}
	if err := Aligned(in); err != nil {
		return nil, err
	}
	n := len(in[0].Values)

	var offset []float64
	switch mode {
	case ModeWiggle:
		offset = wiggle(in)
	case ModeSilhouette:
		offset = silhouette(in)
	default:
		offset = make([]float64, n)
	}

	layers := make([]Layer, len(in))
	running := offset
	if mode != ModeOverlap {
		running = append([]float64(nil), offset...)
	}
	for i, s := range in {
		pts := make([]Point, n)
		for j, d := range s.Values {
			pts[j] = Point{X: d.X, Y: d.Y}
			if mode != ModeOverlap {
				pts[j].Y0 = running[j]
				running[j] += d.Y
			}
		}
		layers[i] = Layer{Label: s.Label, Points: pts}
	}
	return layers, nil
}

// Aligned checks that all series have the same length and the same x
// value at every index. A violation gives ErrMisaligned.
func Aligned(in []series.Series) error {
	if len(in) == 0 {
		return nil
	}
	n := len(in[0].Values)
	for i := 1; i < len(in); i++ {
		if len(in[i].Values) != n {
			return fmt.Errorf("%w: %q has %d points, %q has %d",
				ErrMisaligned, in[i].Label, len(in[i].Values), in[0].Label, n)
		}
		for j := range n {
			if in[i].Values[j].X != in[0].Values[j].X {
				return fmt.Errorf("%w: %q differs at index %d",
					ErrMisaligned, in[i].Label, j)
			}
		}
	}
	return nil
}

// silhouette centres the stack around the middle of the tallest column.
func silhouette(in []series.Series) []float64 {
	sums := columnSums(in)
	var top float64
	for _, s := range sums {
		top = max(top, s)
	}
	offset := make([]float64, len(sums))
	for j, s := range sums {
		offset[j] = (top - s) / 2
	}
	return offset
}

// wiggle implements the weighted wiggle minimisation of Byron and
// Wattenberg, "Stacked Graphs – Geometry & Aesthetics" (2008). The offsets
// are shifted so that the lowest baseline is zero.
func wiggle(in []series.Series) []float64 {
	n := len(in[0].Values)
	offset := make([]float64, n)
	if n == 0 {
		return offset
	}
	pos := positions(in[0])

	var o, lowest float64
	for j := 1; j < n; j++ {
		dx := pos[j] - pos[j-1]
		if dx == 0 || math.IsNaN(dx) || math.IsInf(dx, 0) {
			dx = 1
		}
		var s1, s2 float64
		for i := range in {
			s1 += in[i].Values[j].Y
		}
		for i := range in {
			yi := in[i].Values[j].Y
			s3 := (yi - in[i].Values[j-1].Y) / (2 * dx)
			for k := range i {
				s3 += (in[k].Values[j].Y - in[k].Values[j-1].Y) / dx
			}
			s2 += s3 * yi
		}
		if s1 != 0 {
			o -= s2 / s1 * dx
		}
		offset[j] = o
		lowest = min(lowest, o)
	}
	for j := range offset {
		offset[j] -= lowest
	}
	return offset
}

// positions returns the numeric x positions of s, or the point indices if
// s uses ordinal keys.
func positions(s series.Series) []float64 {
	pos := make([]float64, len(s.Values))
	for j, d := range s.Values {
		if d.X.Ordinal() {
			pos[j] = float64(j)
		} else {
			pos[j] = d.X.Float()
		}
	}
	return pos
}

func columnSums(in []series.Series) []float64 {
	sums := make([]float64, len(in[0].Values))
	for _, s := range in {
		for j, d := range s.Values {
			sums[j] += d.Y
		}
	}
	return sums
}
