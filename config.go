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

	"github.com/mitchellh/mapstructure"

	"seehuhn.de/go/areachart/scale"
	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/shape"
)

// Margin is the space between the surface edges and the drawing area.
type Margin struct {
	Top    float64 `mapstructure:"top"`
	Right  float64 `mapstructure:"right"`
	Bottom float64 `mapstructure:"bottom"`
	Left   float64 `mapstructure:"left"`
}

// Config holds the rendering attributes of a chart. A Config is resolved
// once per render and not modified afterwards.
type Config struct {
	Margin Margin `mapstructure:"margin"`

	// DefaultOpacity is the fill opacity of areas in overlap mode.
	// Areas in the other modes are opaque.
	DefaultOpacity float64 `mapstructure:"defaultOpacity"`

	AddTooltip bool `mapstructure:"addTooltip"`
	Brushable  bool `mapstructure:"brushable"`

	// XScale is "linear" or "log". The log scale only applies to numeric
	// x values.
	XScale string `mapstructure:"xScale"`

	// Kind selects the chart variant, "area" or "line".
	Kind string `mapstructure:"kind"`

	// XValue and YValue extract the coordinates of a data point.
	// Nil means the point's own X and Y.
	XValue func(series.Datum) series.Key `mapstructure:"-"`
	YValue func(series.Datum) float64    `mapstructure:"-"`
}

// DefaultConfig returns the attributes used for keys missing from a
// document.
func DefaultConfig() Config {
	return Config{
		Margin:         Margin{Top: 10, Right: 10, Bottom: 10, Left: 10},
		DefaultOpacity: 0.6,
		XScale:         "linear",
		Kind:           "area",
	}
}

// DecodeConfig decodes an attribute map on top of the defaults.
// Values are converted where possible, so that "0.5" is accepted for a
// number and "true" for a flag. Unknown keys are ignored.
func DecodeConfig(attrs map[string]any) (Config, error) {
	cfg := DefaultConfig()
	if len(attrs) == 0 {
		return cfg, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(attrs); err != nil {
		return Config{}, fmt.Errorf("%w: attrs: %v", ErrBadDocument, err)
	}
	if err := cfg.check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) check() error {
	if _, err := c.variant(); err != nil {
		return err
	}
	switch c.XScale {
	case "", "linear", "log":
	default:
		return fmt.Errorf("%w: unknown x scale %q", ErrBadDocument, c.XScale)
	}
	if c.DefaultOpacity < 0 || c.DefaultOpacity > 1 {
		return fmt.Errorf("%w: opacity %g out of range", ErrBadDocument, c.DefaultOpacity)
	}
	return nil
}

func (c Config) variant() (Variant, error) {
	switch c.Kind {
	case "", "area":
		return Area{}, nil
	case "line":
		return Line{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown chart kind %q", ErrBadDocument, c.Kind)
	}
}

func (c Config) scaleOptions() []scale.Option {
	if c.XScale == "log" {
		return []scale.Option{scale.WithLog()}
	}
	return nil
}

func (c Config) accessors() series.Accessors {
	return series.Accessors{X: c.XValue, Y: c.YValue}
}

func (c Config) shapeKind() shape.Kind {
	if c.Kind == "line" {
		return shape.KindLine
	}
	return shape.KindArea
}
