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

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"seehuhn.de/go/areachart"
	"seehuhn.de/go/areachart/internal/output"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "Summarise a chart document",
		Long: `Describe prints the series of a chart document together with their
colours and the layout the chart would get: the x scale, the y range,
the number of markers and the guide lines.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			raw, _ := cmd.Flags().GetBool("raw")

			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			md, err := describe(doc, width, height)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if raw || !isTerminal(w) {
				_, err = fmt.Fprint(w, md)
				return err
			}
			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
			if err != nil {
				return err
			}
			out, err := r.Render(md)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(w, out)
			return err
		},
	}
	cmd.Flags().Int("width", 640, "surface width in pixels")
	cmd.Flags().Int("height", 360, "surface height in pixels")
	cmd.Flags().Bool("raw", false, "print markdown without terminal styling")
	return cmd
}

// describe returns a markdown summary of doc as drawn on a surface of the
// given size.
func describe(doc *areachart.Document, width, height int) (string, error) {
	c := areachart.New()
	f, err := c.Render(output.Shapes{W: float64(width), H: float64(height)}, doc)
	if err != nil {
		return "", err
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "# %s chart, %d series\n\n", f.Mode, len(f.Layers))

	b.WriteString("| series | points | min | max | total | colour |\n")
	b.WriteString("|---|---:|---:|---:|---:|---|\n")
	for _, s := range doc.Series {
		lo, hi, sum := math.Inf(1), math.Inf(-1), 0.0
		for _, d := range s.Values {
			lo = min(lo, d.Y)
			hi = max(hi, d.Y)
			sum += d.Y
		}
		fmt.Fprintf(b, "| %s | %d | %g | %g | %g | `%s` |\n",
			s.Label, len(s.Values), lo, hi, sum, c.Palette().Hex(s.Label))
	}

	yLo, yHi := f.Y.Domain()
	fmt.Fprintf(b, "\n## Layout\n\n")
	fmt.Fprintf(b, "- drawing area: %g × %g\n", f.Shapes.Width, f.Shapes.Height)
	fmt.Fprintf(b, "- x scale: %s", f.X.Kind())
	if bw := f.X.Bandwidth(); bw > 0 {
		fmt.Fprintf(b, ", band width %.4g", bw)
	}
	fmt.Fprintf(b, "\n- y range: %.4g to %.4g\n", yLo, yHi)
	fmt.Fprintf(b, "- markers: %d\n", len(f.Shapes.Markers))

	var guides []string
	for _, g := range f.Shapes.Guides {
		guides = append(guides, g.Class)
	}
	fmt.Fprintf(b, "- guides: %s\n", strings.Join(guides, ", "))
	return b.String(), nil
}
