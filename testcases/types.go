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
	"time"

	"seehuhn.de/go/areachart"
	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/stack"
)

// TestCase defines a single chart rendering test.
type TestCase struct {
	Name   string          // lowercase a-z, 0-9 and _ only
	Series []series.Series // the chart data, in stacking order
	Mode   stack.Mode      // stacking mode
	Date   bool            // x values are timestamps
	Attrs  map[string]any  // rendering attributes, as in a chart document
	Width  int             // surface width in pixels
	Height int             // surface height in pixels
	Err    error           // expected render error, nil on success
}

// Document returns the chart document for the test case.
func (tc TestCase) Document() (*areachart.Document, error) {
	cfg, err := areachart.DecodeConfig(tc.Attrs)
	if err != nil {
		return nil, err
	}
	doc := &areachart.Document{
		Series: tc.Series,
		Mode:   tc.Mode,
		Config: cfg,
	}
	if tc.Date {
		doc.Ordered = &areachart.Ordered{Date: true}
	}
	return doc, nil
}

// weekdays are the categories used by categorical fixtures.
var weekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// counts builds a categorical series over the weekdays.
func counts(label string, ys ...float64) series.Series {
	s := series.Series{Label: label, Values: make([]series.Datum, len(ys))}
	for i, y := range ys {
		s.Values[i] = series.Datum{X: series.Cat(weekdays[i%len(weekdays)]), Y: y}
	}
	return s
}

// numeric builds a series with x values x0, x0+dx, x0+2dx, ...
func numeric(label string, x0, dx float64, ys ...float64) series.Series {
	s := series.Series{Label: label, Values: make([]series.Datum, len(ys))}
	for i, y := range ys {
		s.Values[i] = series.Datum{X: series.Num(x0 + float64(i)*dx), Y: y}
	}
	return s
}

// buckets builds a time series with one value per interval.
func buckets(label string, start time.Time, step time.Duration, ys ...float64) series.Series {
	s := series.Series{Label: label, Values: make([]series.Datum, len(ys))}
	for i, y := range ys {
		s.Values[i] = series.Datum{X: series.Time(start.Add(time.Duration(i) * step)), Y: y}
	}
	return s
}

// generate returns n values of f(0), f(1), ..., f(n-1).
func generate(n int, f func(i int) float64) []float64 {
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = f(i)
	}
	return ys
}
