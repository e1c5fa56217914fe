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

	"github.com/spf13/cobra"

	"seehuhn.de/go/areachart"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check whether a chart document can be drawn",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")

			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			if err := doc.Check(float64(width), float64(height)); err != nil {
				return fmt.Errorf("%s: %w", areachart.ErrorKind(err), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d series, mode %s\n", len(doc.Series), doc.Mode)
			return nil
		},
	}
	cmd.Flags().Int("width", 640, "surface width in pixels")
	cmd.Flags().Int("height", 360, "surface height in pixels")
	return cmd
}
