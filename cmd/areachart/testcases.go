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
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/areachart"
	"seehuhn.de/go/areachart/internal/output"
	"seehuhn.de/go/areachart/testcases"
)

func newTestcasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testcases",
		Short: "Render the built-in example charts",
		Long: `Testcases renders every built-in example into the output directory,
one file per example, named <category>_<name>.<format>. Examples which
are expected to fail are checked but not written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			formatName, _ := cmd.Flags().GetString("format")
			format, err := output.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}

			logger := loggerFor(cmd)
			n := 0
			for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
				for _, tc := range testcases.All[category] {
					name := category + "_" + tc.Name
					written, err := writeTestCase(dir, name, tc, format)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					if written {
						n++
						logger.Debug("example written", "name", name)
					}
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d charts written to %s\n", n, dir)
			return nil
		},
	}
	cmd.Flags().String("dir", "testdata/charts", "output directory")
	cmd.Flags().StringP("format", "f", "png", "output format: png, pdf or json")
	return cmd
}

func writeTestCase(dir, name string, tc testcases.TestCase, format output.Format) (written bool, err error) {
	doc, err := tc.Document()
	if err != nil {
		return false, err
	}
	if tc.Err != nil {
		err := areachart.Validate(doc.Series, float64(tc.Width), float64(tc.Height), doc.Config.Margin)
		if !errors.Is(err, tc.Err) {
			return false, fmt.Errorf("expected %v, got %v", tc.Err, err)
		}
		return false, nil
	}

	f, err := os.Create(filepath.Join(dir, name+"."+format.String()))
	if err != nil {
		return false, err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := output.Render(f, areachart.New(), doc, format, tc.Width, tc.Height); err != nil {
		return false, err
	}
	return true, nil
}
