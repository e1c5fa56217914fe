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

package areachart

import (
	"fmt"
	"io"
	"math"
	"time"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/stack"
)

// Ordered describes the ordering of the x values.
type Ordered struct {
	// Date is set when x values are timestamps.
	Date bool `yaml:"date"`

	// Interval is the bucket width in milliseconds, if known.
	Interval float64 `yaml:"interval,omitempty"`
}

// Document is the input to a chart render.
type Document struct {
	Series  []series.Series
	Ordered *Ordered
	Mode    stack.Mode
	Config  Config
}

// TimeSeries reports whether the x values are timestamps.
func (d *Document) TimeSeries() bool {
	return d.Ordered != nil && d.Ordered.Date
}

type rawDocument struct {
	Series  []rawSeries    `yaml:"series"`
	Ordered *Ordered       `yaml:"ordered"`
	Mode    string         `yaml:"mode"`
	Attrs   map[string]any `yaml:"attrs"`
}

type rawSeries struct {
	Label  string     `yaml:"label"`
	Values []rawDatum `yaml:"values"`
}

type rawDatum struct {
	X any     `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadDocument reads a chart document in YAML or JSON form.
func LoadDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return ParseDocument(data)
}

// ParseDocument decodes a chart document in YAML or JSON form.
//
// Numeric x values are continuous keys, string x values are categories.
// If the document is ordered by date, numbers are taken as Unix
// milliseconds and strings must be RFC 3339 timestamps.
func ParseDocument(data []byte) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	mode, err := stack.ParseMode(raw.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	cfg, err := DecodeConfig(raw.Attrs)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Ordered: raw.Ordered,
		Mode:    mode,
		Config:  cfg,
		Series:  make([]series.Series, 0, len(raw.Series)),
	}
	for _, rs := range raw.Series {
		s := series.Series{Label: rs.Label, Values: make([]series.Datum, len(rs.Values))}
		for i, rd := range rs.Values {
			k, err := toKey(rd.X, doc.TimeSeries())
			if err != nil {
				return nil, fmt.Errorf("%w: series %q, point %d: %v",
					ErrBadDocument, rs.Label, i, err)
			}
			if math.IsNaN(rd.Y) || math.IsInf(rd.Y, 0) {
				return nil, fmt.Errorf("%w: series %q, point %d: y is not finite",
					ErrBadDocument, rs.Label, i)
			}
			s.Values[i] = series.Datum{X: k, Y: rd.Y}
		}
		doc.Series = append(doc.Series, s)
	}
	return doc, nil
}

func toKey(x any, date bool) (series.Key, error) {
	var f float64
	switch x := x.(type) {
	case time.Time:
		return series.Time(x), nil
	case string:
		if !date {
			return series.Cat(x), nil
		}
		t, err := time.Parse(time.RFC3339, x)
		if err != nil {
			return series.Key{}, err
		}
		return series.Time(t), nil
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint64:
		f = float64(x)
	case float64:
		f = x
	case nil:
		return series.Key{}, fmt.Errorf("missing x value")
	default:
		return series.Key{}, fmt.Errorf("unsupported x value %v (%T)", x, x)
	}
	if date {
		return series.Time(time.UnixMilli(int64(f))), nil
	}
	return series.Num(f), nil
}
