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

// Package palette assigns colours to series labels.
//
// A Palette remembers every label it has seen, so that re-rendering a chart
// with the same labels gives the same colours even if the data changes.
package palette

import (
	"image/color"
	"math"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// seed lists the first colours handed out, in order.
var seed = []string{
	"#57c17b", "#6f87d8", "#663db8", "#bc52bc", "#9e3533", "#daa05d",
}

// Palette is a label to colour assignment. The zero value is ready to use.
// A Palette is safe for concurrent use.
type Palette struct {
	mu       sync.Mutex
	assigned map[string]colorful.Color
	order    []string
}

// Color returns the colour of label, assigning the next free colour if the
// label has not been seen before.
func (p *Palette) Color(label string) color.NRGBA {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.assigned[label]
	if !ok {
		if p.assigned == nil {
			p.assigned = make(map[string]colorful.Color)
		}
		c = nth(len(p.order))
		p.assigned[label] = c
		p.order = append(p.order, label)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Hex returns the colour of label in "#rrggbb" notation.
func (p *Palette) Hex(label string) string {
	c := p.Color(label)
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Labels returns the labels seen so far, in assignment order.
func (p *Palette) Labels() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.order...)
}

// nth returns the i-th colour of the palette. After the seed colours are
// used up, hues are spaced by the golden angle so that neighbouring
// assignments stay distinguishable.
func nth(i int) colorful.Color {
	if i < len(seed) {
		c, err := colorful.Hex(seed[i])
		if err == nil {
			return c
		}
	}
	hue := math.Mod(float64(i+1)*math.Phi*360, 360)
	return colorful.Hcl(hue, 0.55, 0.6).Clamped()
}

// Class converts a colour into a class name, "c" followed by the hex digits
// of the colour.
func Class(c color.NRGBA) string {
	hex := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
	return "c" + strings.TrimPrefix(hex, "#")
}
