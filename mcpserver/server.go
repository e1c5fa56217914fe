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

// Package mcpserver exposes chart rendering as a Model Context Protocol
// tool, so that agents can turn aggregated data into charts.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"seehuhn.de/go/areachart"
	"seehuhn.de/go/areachart/internal/output"
	"seehuhn.de/go/areachart/palette"
)

// Default surface size, used when the tool call does not specify one.
const (
	DefaultWidth  = 640
	DefaultHeight = 360

	maxSize = 4096
)

// Server wraps the chart renderer as an MCP server.
type Server struct {
	logger    *slog.Logger
	palette   *palette.Palette
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the render tools registered.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger:    logger,
		palette:   &palette.Palette{},
		mcpServer: server.NewMCPServer("areachart-mcp", areachart.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio serves requests on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	renderTool := mcp.NewTool("render_area_chart",
		mcp.WithDescription("Render multi-series data as a layered area chart. "+
			"The document is YAML or JSON with the keys series, mode, ordered and attrs."),
		mcp.WithString("document", mcp.Required(), mcp.Description("The chart document")),
		mcp.WithString("format", mcp.Description("Output format: json (default) or png")),
		mcp.WithNumber("width", mcp.Description("Surface width in pixels")),
		mcp.WithNumber("height", mcp.Description("Surface height in pixels")),
	)
	s.mcpServer.AddTool(renderTool, s.handleRender)

	validateTool := mcp.NewTool("validate_area_chart",
		mcp.WithDescription("Check whether a chart document can be drawn on a surface of the given size."),
		mcp.WithString("document", mcp.Required(), mcp.Description("The chart document")),
		mcp.WithNumber("width", mcp.Description("Surface width in pixels")),
		mcp.WithNumber("height", mcp.Description("Surface height in pixels")),
	)
	s.mcpServer.AddTool(validateTool, s.handleValidate)
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, width, height, res := s.readRequest(request)
	if res != nil {
		return res, nil
	}

	format, err := output.ParseFormat(request.GetString("format", "json"))
	if err != nil || format == output.PDF {
		return mcp.NewToolResultError("format must be json or png"), nil
	}

	c := areachart.New(areachart.WithLogger(s.logger), areachart.WithPalette(s.palette))
	buf := &bytes.Buffer{}
	if err := output.Render(buf, c, doc, format, width, height); err != nil {
		return toolError(err), nil
	}

	if format == output.PNG {
		data := base64.StdEncoding.EncodeToString(buf.Bytes())
		return mcp.NewToolResultImage(
			fmt.Sprintf("%dx%d %s chart of %d series", width, height, doc.Mode, len(doc.Series)),
			data, format.ContentType()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, width, height, res := s.readRequest(request)
	if res != nil {
		return res, nil
	}
	if err := doc.Check(float64(width), float64(height)); err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText("ok"), nil
}

// readRequest decodes the tool arguments. If they are invalid, res is the
// error result for the caller.
func (s *Server) readRequest(request mcp.CallToolRequest) (doc *areachart.Document, width, height int, res *mcp.CallToolResult) {
	text, err := request.RequireString("document")
	if err != nil {
		return nil, 0, 0, mcp.NewToolResultError(err.Error())
	}
	width = request.GetInt("width", DefaultWidth)
	height = request.GetInt("height", DefaultHeight)
	if width < 1 || width > maxSize || height < 1 || height > maxSize {
		return nil, 0, 0, mcp.NewToolResultError(
			fmt.Sprintf("width and height must be between 1 and %d", maxSize))
	}

	doc, err = areachart.LoadDocument(strings.NewReader(text))
	if err != nil {
		s.logger.Warn("invalid chart document", "error", err)
		return nil, 0, 0, mcp.NewToolResultError(err.Error())
	}
	return doc, width, height, nil
}

// toolError formats err for the agent. Chart errors carry their kind, so
// that the agent can react, for example by asking for more data.
func toolError(err error) *mcp.CallToolResult {
	var ce *areachart.ChartError
	if errors.As(err, &ce) {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s", ce.Kind, ce.Message))
	}
	return mcp.NewToolResultError(err.Error())
}
