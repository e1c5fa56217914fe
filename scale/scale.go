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

// Package scale maps data values to pixel coordinates.
//
// All scales are immutable after construction and safe for concurrent
// read-only use.
package scale

import (
	"math"

	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/stack"
)

// Kind describes the x domain of a chart.
type Kind int

const (
	Ordinal Kind = iota
	Continuous
	Time
)

func (k Kind) String() string {
	switch k {
	case Ordinal:
		return "ordinal"
	case Continuous:
		return "continuous"
	case Time:
		return "time"
	default:
		return "unknown"
	}
}

// X maps x keys to horizontal pixel positions.
type X interface {
	// Map returns the pixel position of k. For ordinal scales this is the
	// start of the band. Keys outside the domain of an ordinal scale map
	// to NaN.
	Map(k series.Key) float64

	// Bandwidth returns the width of one band, or 0 for continuous scales.
	Bandwidth() float64

	// Invert maps a pixel position back to the data domain. Ordinal scales
	// return the (fractional) band index.
	Invert(px float64) float64

	// Kind returns the domain kind.
	Kind() Kind
}

// Linear is a linear map from the interval [D0, D1] to [R0, R1].
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// Map returns the image of v. If the domain is degenerate, every value is
// mapped to the middle of the range.
func (l *Linear) Map(v float64) float64 {
	if l.D1 == l.D0 {
		return (l.R0 + l.R1) / 2
	}
	return l.R0 + (v-l.D0)*(l.R1-l.R0)/(l.D1-l.D0)
}

// Invert maps a range value back into the domain.
func (l *Linear) Invert(px float64) float64 {
	if l.R1 == l.R0 {
		return l.D0
	}
	return l.D0 + (px-l.R0)*(l.D1-l.D0)/(l.R1-l.R0)
}

// Domain returns the domain interval.
func (l *Linear) Domain() (lo, hi float64) {
	return l.D0, l.D1
}

// continuousX is the x scale for numeric and time domains.
type continuousX struct {
	lin  Linear
	log  bool
	kind Kind
}

func (c *continuousX) Map(k series.Key) float64 {
	v := k.Float()
	if c.log {
		v = math.Log10(max(v, minPositive(c.lin.D0)))
	}
	return c.lin.Map(v)
}

func (c *continuousX) Invert(px float64) float64 {
	v := c.lin.Invert(px)
	if c.log {
		return math.Pow(10, v)
	}
	return v
}

func (c *continuousX) Bandwidth() float64 { return 0 }

func (c *continuousX) Kind() Kind { return c.kind }

// minPositive returns the smallest value allowed on a log axis whose
// (log10) domain starts at d0.
func minPositive(d0 float64) float64 {
	return math.Pow(10, d0)
}

// Band is an ordinal x scale. Each distinct key gets a band of equal width.
type Band struct {
	keys  []series.Key
	index map[series.Key]int
	width float64
}

// NewBand returns an ordinal scale for the given keys over [0, width].
// Duplicate keys are ignored; the first occurrence fixes the band order.
func NewBand(keys []series.Key, width float64) *Band {
	b := &Band{
		index: make(map[series.Key]int, len(keys)),
		width: width,
	}
	for _, k := range keys {
		if _, seen := b.index[k]; seen {
			continue
		}
		b.index[k] = len(b.keys)
		b.keys = append(b.keys, k)
	}
	return b
}

func (b *Band) Map(k series.Key) float64 {
	i, ok := b.index[k]
	if !ok {
		return math.NaN()
	}
	return float64(i) * b.Bandwidth()
}

func (b *Band) Bandwidth() float64 {
	if len(b.keys) == 0 {
		return b.width
	}
	return b.width / float64(len(b.keys))
}

func (b *Band) Invert(px float64) float64 {
	bw := b.Bandwidth()
	if bw == 0 {
		return 0
	}
	return px / bw
}

func (b *Band) Kind() Kind { return Ordinal }

// Keys returns the keys of the scale in band order.
func (b *Band) Keys() []series.Key {
	return b.keys
}

type config struct {
	log bool
}

// Option modifies scale resolution.
type Option func(*config)

// WithLog selects a logarithmic x scale for continuous domains.
func WithLog() Option {
	return func(c *config) {
		c.log = true
	}
}

// Resolve derives the x and y scales for the given layers on a drawing area
// of the given size.
//
// The y domain is [min(0, lowest bottom edge), highest top edge] and maps to
// [height, 0], so that pixel y grows downwards.
func Resolve(layers []stack.Layer, kind Kind, width, height float64, opts ...Option) (X, *Linear) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return resolveX(layers, kind, width, cfg), resolveY(layers, height)
}

func resolveX(layers []stack.Layer, kind Kind, width float64, cfg config) X {
	if kind == Ordinal {
		var keys []series.Key
		if len(layers) > 0 {
			for _, p := range layers[0].Points {
				keys = append(keys, p.X)
			}
		}
		return NewBand(keys, width)
	}

	useLog := cfg.log && kind == Continuous
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, l := range layers {
		for _, p := range l.Points {
			v := p.X.Float()
			if useLog {
				if v <= 0 {
					continue
				}
				v = math.Log10(v)
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	if lo > hi {
		lo, hi = 0, 1
	}
	return &continuousX{
		lin:  Linear{D0: lo, D1: hi, R0: 0, R1: width},
		log:  useLog,
		kind: kind,
	}
}

func resolveY(layers []stack.Layer, height float64) *Linear {
	lo, hi := 0.0, math.Inf(-1)
	for _, l := range layers {
		for _, p := range l.Points {
			top := p.Top()
			lo = min(lo, p.Y0, top)
			hi = max(hi, p.Y0, top)
		}
	}
	if math.IsInf(hi, -1) || hi <= lo {
		hi = lo + 1
	}
	return &Linear{D0: lo, D1: hi, R0: height, R1: 0}
}

// ZeroLine reports whether a zero line should be drawn for the y scale y:
// this is the case if the y domain extends below zero and the stacking mode
// has a fixed baseline.
func ZeroLine(y *Linear, mode stack.Mode) bool {
	lo, _ := y.Domain()
	return lo < 0 && !mode.Streamgraph()
}
