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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"seehuhn.de/go/areachart"
	"seehuhn.de/go/areachart/internal/output"
	"seehuhn.de/go/areachart/palette"
)

var errTerminal = errors.New("refusing to write binary output to a terminal, use --out")

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chart document",
		Long: `Render reads a chart document from the named file or from stdin and
writes the chart in the selected format. With --watch the chart is
rendered again whenever the input file changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}
	cmd.Flags().StringP("format", "f", "", "output format: png, pdf or json (default from --out, else png)")
	cmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	cmd.Flags().Int("width", 640, "surface width in pixels")
	cmd.Flags().Int("height", 360, "surface height in pixels")
	cmd.Flags().BoolP("watch", "w", false, "render again when the input file changes")
	return cmd
}

type renderJob struct {
	in            string
	out           string
	format        output.Format
	width, height int
	chart         *areachart.Chart
	logger        *slog.Logger
}

func runRender(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	formatName, _ := cmd.Flags().GetString("format")
	watch, _ := cmd.Flags().GetBool("watch")
	if formatName == "" && out != "" {
		formatName = filepath.Ext(out)
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	logger := loggerFor(cmd)
	job := &renderJob{
		out:    out,
		format: format,
		logger: logger,
		chart: areachart.New(
			areachart.WithLogger(logger),
			areachart.WithPalette(&palette.Palette{}),
		),
	}
	job.width, _ = cmd.Flags().GetInt("width")
	job.height, _ = cmd.Flags().GetInt("height")
	if len(args) > 0 {
		job.in = args[0]
	}

	if !watch {
		doc, err := readDocument(cmd, args)
		if err != nil {
			return err
		}
		return job.write(cmd.OutOrStdout(), doc)
	}

	if job.in == "" || job.in == "-" || job.out == "" {
		return errors.New("--watch needs an input file and --out")
	}
	return job.watch(cmd.Context())
}

// write renders doc to the output file, or to stdout if no file is set.
func (j *renderJob) write(stdout io.Writer, doc *areachart.Document) (err error) {
	if j.out == "" {
		if j.format.Binary() && isTerminal(stdout) {
			return errTerminal
		}
		return output.Render(stdout, j.chart, doc, j.format, j.width, j.height)
	}

	// write to a temporary file first, so that watchers of the output
	// never see a partial chart
	tmp, err := os.CreateTemp(filepath.Dir(j.out), ".areachart-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()
	if err := output.Render(tmp, j.chart, doc, j.format, j.width, j.height); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), j.out)
}

func (j *renderJob) renderFile() error {
	doc, err := loadFile(j.in)
	if err != nil {
		return err
	}
	return j.write(nil, doc)
}

// watch renders the input file and then renders it again after every
// change, until ctx is cancelled. Render errors are logged, not returned.
func (j *renderJob) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files instead of writing them, so the
	// directory is watched rather than the file itself.
	if err := watcher.Add(filepath.Dir(j.in)); err != nil {
		return err
	}
	target := filepath.Clean(j.in)

	rerender := func() {
		if err := j.renderFile(); err != nil {
			j.logger.Error("render failed", "file", j.in, "error", err)
			return
		}
		j.logger.Info("chart written", "file", j.out)
	}
	rerender()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				rerender()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			j.logger.Warn("file watcher", "error", err)
		}
	}
}
