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
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/areachart"
	"seehuhn.de/go/areachart/internal/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "areachart",
		Short: "Render multi-series data as layered area charts",
		Long: `areachart turns chart documents (YAML or JSON) into PNG, PDF or JSON
shape descriptions. Documents list the series to draw, the stacking mode
(stack, overlap, wiggle or silhouette) and optional rendering attributes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newRenderCmd(),
		newValidateCmd(),
		newDescribeCmd(),
		newServeCmd(),
		newMCPCmd(),
		newTestcasesCmd(),
		newVersionCmd(),
	)
	return root
}

func loggerFor(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(logging.ParseLevel(level))
}

// readDocument loads the document named by the first argument, or stdin
// if there is no argument or the argument is "-".
func readDocument(cmd *cobra.Command, args []string) (*areachart.Document, error) {
	if len(args) == 0 || args[0] == "-" {
		return areachart.LoadDocument(cmd.InOrStdin())
	}
	return loadFile(args[0])
}

func loadFile(fileName string) (*areachart.Document, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := areachart.LoadDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return doc, nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
