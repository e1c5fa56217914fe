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

// Command export writes the shape bundles of all test cases as JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/areachart"
	"seehuhn.de/go/areachart/testcases"
)

const outDir = "testdata/bundles"

// collector is a surface which only keeps the displayed frame.
type collector struct {
	w, h  float64
	frame *areachart.Frame
}

func (c *collector) Size() (float64, float64)     { return c.w, c.h }
func (c *collector) Mount(float64, float64) error { return nil }
func (c *collector) Display(f *areachart.Frame) error {
	c.frame = f
	return nil
}

type jsonTestCase struct {
	Name   string          `json:"name"`
	Mode   string          `json:"mode"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Error  string          `json:"error,omitempty"`
	Shapes json.RawMessage `json:"shapes,omitempty"`
}

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			out, err := export(name, tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := write(filepath.Join(outDir, name+".json"), out); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(name string, tc testcases.TestCase) (*jsonTestCase, error) {
	doc, err := tc.Document()
	if err != nil {
		return nil, err
	}
	out := &jsonTestCase{
		Name:   name,
		Mode:   tc.Mode.String(),
		Width:  tc.Width,
		Height: tc.Height,
	}

	c := &collector{w: float64(tc.Width), h: float64(tc.Height)}
	_, err = areachart.New().Render(c, doc)
	if err != nil {
		if tc.Err == nil {
			return nil, err
		}
		out.Error = areachart.ErrorKind(err)
		return out, nil
	}

	out.Shapes, err = json.Marshal(c.frame.Shapes)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func write(fileName string, v any) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
