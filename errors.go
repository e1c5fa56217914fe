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
	"errors"
	"fmt"
)

// Kind classifies the errors reported by Validate.
type Kind int

const (
	KindNotEnoughData Kind = iota + 1
	KindContainerTooSmall
)

func (k Kind) String() string {
	switch k {
	case KindNotEnoughData:
		return "not_enough_data"
	case KindContainerTooSmall:
		return "container_too_small"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ChartError is returned when a chart cannot be drawn for the given data
// or container. It is reported before anything is mounted.
type ChartError struct {
	Kind    Kind
	Message string
}

func (e *ChartError) Error() string {
	return e.Message
}

// Is reports whether target is a *ChartError of the same kind.
func (e *ChartError) Is(target error) bool {
	t, ok := target.(*ChartError)
	return ok && t.Kind == e.Kind
}

// Sentinel values for use with errors.Is.
var (
	ErrNotEnoughData = &ChartError{
		Kind:    KindNotEnoughData,
		Message: "Area charts require more than one data point. Try adding an X-Axis Aggregation",
	}
	ErrContainerTooSmall = &ChartError{
		Kind:    KindContainerTooSmall,
		Message: "This container is too small to render the visualization",
	}
)

// ErrBadDocument is returned when a chart document cannot be decoded.
var ErrBadDocument = errors.New("invalid chart document")

// ErrorKind returns the kind of a *ChartError in err's chain, formatted
// for use as a metric label. Other errors give "error", nil gives "ok".
func ErrorKind(err error) string {
	if err == nil {
		return "ok"
	}
	var ce *ChartError
	if errors.As(err, &ce) {
		return ce.Kind.String()
	}
	return "error"
}
