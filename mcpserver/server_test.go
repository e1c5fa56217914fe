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

package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
mode: overlap
series:
  - label: cpu
    values: [{x: 1, y: 20}, {x: 2, y: 35}, {x: 3, y: 30}]
  - label: io
    values: [{x: 1, y: 10}, {x: 2, y: 0}, {x: 3, y: 15}]
`

func newTestServer() *Server {
	return NewServer(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func call(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestRenderJSON(t *testing.T) {
	s := newTestServer()
	res, err := s.handleRender(context.Background(), call("render_area_chart", map[string]any{
		"document": document,
		"width":    300,
		"height":   200,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))

	var out struct {
		Areas []struct {
			Label   string  `json:"label"`
			Opacity float64 `json:"opacity"`
		} `json:"areas"`
		Markers []any `json:"markers"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &out))
	require.Len(t, out.Areas, 2)
	assert.Equal(t, "cpu", out.Areas[0].Label)
	assert.Equal(t, 0.6, out.Areas[0].Opacity)
	assert.Len(t, out.Markers, 5)
}

func TestRenderPNG(t *testing.T) {
	s := newTestServer()
	res, err := s.handleRender(context.Background(), call("render_area_chart", map[string]any{
		"document": document,
		"format":   "png",
		"width":    120,
		"height":   80,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var img *mcp.ImageContent
	for _, c := range res.Content {
		if ic, ok := c.(mcp.ImageContent); ok {
			img = &ic
		}
	}
	require.NotNil(t, img)
	assert.Equal(t, "image/png", img.MIMEType)

	data, err := base64.StdEncoding.DecodeString(img.Data)
	require.NoError(t, err)
	decoded, err := png.Decode(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, 120, decoded.Bounds().Dx())
}

func TestRenderErrors(t *testing.T) {
	s := newTestServer()
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing_document", map[string]any{}, "document"},
		{"bad_document", map[string]any{"document": "mode: upside-down"}, "invalid chart document"},
		{"bad_format", map[string]any{"document": document, "format": "pdf"}, "format"},
		{"too_small", map[string]any{"document": document, "width": 15}, "container_too_small"},
		{"huge", map[string]any{"document": document, "height": 100000}, "between"},
		{
			"one_point",
			map[string]any{"document": "series: [{label: a, values: [{x: 1, y: 2}]}]"},
			"not_enough_data",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := s.handleRender(context.Background(), call("render_area_chart", tc.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, text(t, res), tc.want)
		})
	}
}

func TestValidate(t *testing.T) {
	s := newTestServer()
	res, err := s.handleValidate(context.Background(), call("validate_area_chart", map[string]any{
		"document": document,
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "ok", text(t, res))

	res, err = s.handleValidate(context.Background(), call("validate_area_chart", map[string]any{
		"document": document,
		"width":    25,
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	res, err = s.handleValidate(context.Background(), call("validate_area_chart", map[string]any{
		"document": "series: [{label: a, values: [{x: 1, y: 1}, {x: 2, y: 1}]}, {label: b, values: [{x: 1, y: 1}, {x: 5, y: 1}]}]",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "not point-aligned")
}
