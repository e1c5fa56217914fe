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

// Package areachart draws multi-series data as a layered area chart.
//
// A render runs the series through a fixed pipeline: validation, stacking,
// scale resolution, shape emission and interaction wiring. The resulting
// Frame is handed to a Surface, which draws it. Frames are never modified
// after they have been displayed; interaction state lives in the frame's
// controller.
package areachart

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"seehuhn.de/go/areachart/interact"
	"seehuhn.de/go/areachart/metrics"
	"seehuhn.de/go/areachart/palette"
	"seehuhn.de/go/areachart/scale"
	"seehuhn.de/go/areachart/series"
	"seehuhn.de/go/areachart/shape"
	"seehuhn.de/go/areachart/stack"
)

// Chart is a chart instance. It owns the colour palette, the clip id
// counter and the currently displayed frame.
//
// Render may be called from several goroutines; calls are serialised.
// Interaction hooks must not call Render.
type Chart struct {
	mu      sync.Mutex
	logger  *slog.Logger
	metrics *metrics.Metrics
	palette *palette.Palette
	hooks   interact.Hooks
	clipSeq int
	frame   *Frame
}

// Option configures a Chart.
type Option func(*Chart)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chart) {
		c.logger = logger
	}
}

// WithMetrics records render and interaction statistics in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Chart) {
		c.metrics = m
	}
}

// WithPalette sets the palette. Charts sharing a palette use the same
// colour for the same series label.
func WithPalette(p *palette.Palette) Option {
	return func(c *Chart) {
		c.palette = p
	}
}

// WithHooks registers receivers for interaction events.
func WithHooks(h interact.Hooks) Option {
	return func(c *Chart) {
		c.hooks = h
	}
}

// New creates a chart.
func New(opts ...Option) *Chart {
	c := &Chart{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.palette == nil {
		c.palette = &palette.Palette{}
	}
	return c
}

// Palette returns the colour palette of the chart.
func (c *Chart) Palette() *palette.Palette {
	return c.palette
}

// Frame returns the frame installed by the last successful render,
// or nil.
func (c *Chart) Frame() *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// Render draws doc on s.
//
// Validation errors are returned as *ChartError before the surface is
// mounted. Series which cannot be stacked give an error wrapping
// ErrBadDocument. On success the controller of the previous frame is
// detached and the new frame is installed; if the surface cannot be
// mounted or the frame cannot be displayed, the previous frame stays
// installed.
func (c *Chart) Render(s Surface, doc *Document) (*Frame, error) {
	start := time.Now()
	cfg := doc.Config
	mode := doc.Mode.String()

	width, height := s.Size()
	if err := Validate(doc.Series, width, height, cfg.Margin); err != nil {
		c.logger.Warn("chart not drawn", "mode", mode, "width", width, "height", height, "error", err)
		c.metrics.ObserveRender(mode, ErrorKind(err), 0, 0)
		return nil, err
	}
	v, err := cfg.variant()
	if err != nil {
		return nil, err
	}
	in := cfg.accessors().Apply(doc.Series)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.clipSeq++
	var f *Frame
	opacity := 1.0
	if doc.Mode == stack.ModeOverlap {
		opacity = cfg.DefaultOpacity
	}
	req := DrawRequest{
		Series: in,
		Mode:   doc.Mode,
		XKind:  xKind(doc, in),
		XOpts:  cfg.scaleOptions(),
		Width:  width - cfg.Margin.Left - cfg.Margin.Right,
		Height: height - cfg.Margin.Top - cfg.Margin.Bottom,
		Shape: shape.Options{
			TimeSeries: doc.TimeSeries(),
			Colors:     c.palette.Color,
			Opacity:    opacity,
			ClipID:     fmt.Sprintf("chart-area%d", c.clipSeq),
		},
		Interact: interact.Options{
			Tooltip:   cfg.AddTooltip,
			Brushable: cfg.Brushable,
			Hooks:     c.wrapHooks(s, func() *Frame { return f }),
		},
	}
	f, err = v.Draw(req)
	if err != nil {
		if errors.Is(err, stack.ErrMisaligned) || errors.Is(err, stack.ErrUnknownMode) {
			err = fmt.Errorf("%w: %w", ErrBadDocument, err)
		}
		c.logger.Warn("chart not drawn", "mode", mode, "error", err)
		c.metrics.ObserveRender(mode, ErrorKind(err), 0, 0)
		return nil, fmt.Errorf("draw %s chart: %w", cfg.shapeKind(), err)
	}
	f.Width = width
	f.Height = height
	f.Margin = cfg.Margin

	if err := s.Mount(width, height); err != nil {
		f.Controller.Detach()
		return nil, fmt.Errorf("mount surface: %w", err)
	}
	if err := s.Display(f); err != nil {
		f.Controller.Detach()
		return nil, fmt.Errorf("display frame: %w", err)
	}
	if c.frame != nil {
		c.frame.Controller.Detach()
	}
	c.frame = f

	d := time.Since(start)
	c.metrics.ObserveRender(mode, "ok", d, len(f.Shapes.Markers))
	c.logger.Debug("chart rendered",
		"mode", mode,
		"kind", cfg.shapeKind(),
		"series", len(in),
		"markers", len(f.Shapes.Markers),
		"clip", req.Shape.ClipID,
		"duration", d)
	return f, nil
}

// wrapHooks adds metrics and surface refreshes to the user's hooks.
// Refreshes name the frame returned by owner.
func (c *Chart) wrapHooks(s Surface, owner func() *Frame) interact.Hooks {
	user := c.hooks
	m := c.metrics
	r, _ := s.(Refresher)
	return interact.Hooks{
		OnPointClicked: func(e interact.PointClicked) {
			m.ObserveEvent("click")
			if user.OnPointClicked != nil {
				user.OnPointClicked(e)
			}
		},
		OnRangeSelected: func(e interact.RangeSelected) {
			m.ObserveEvent("brush")
			if user.OnRangeSelected != nil {
				user.OnRangeSelected(e)
			}
		},
		OnHoverChanged: func(e interact.HoverChanged) {
			m.ObserveEvent("hover")
			if user.OnHoverChanged != nil {
				user.OnHoverChanged(e)
			}
		},
		OnChange: func(st interact.State) {
			if user.OnChange != nil {
				user.OnChange(st)
			}
			if r != nil {
				r.Refresh(owner(), st)
			}
		},
	}
}

func xKind(doc *Document, in []series.Series) scale.Kind {
	if doc.TimeSeries() {
		return scale.Time
	}
	for _, s := range in {
		for _, d := range s.Values {
			if d.X.Ordinal() {
				return scale.Ordinal
			}
		}
	}
	return scale.Continuous
}
