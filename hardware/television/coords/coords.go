// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package coords describes a single point in the video signal: which frame,
// which scanline within the frame, and which colour clock within the
// scanline. It is used both to report "where" the television currently is
// and to timestamp events (breakpoints, rewind snapshots) that need to be
// compared for equality later.
package coords

import "fmt"

// FrameIsUndefined is used in place of a real frame number when the caller
// wants Equal to ignore the frame field, eg. when comparing a coordinate
// that was recorded without reference to any particular frame.
const FrameIsUndefined = -1

// TelevisionCoords identifies a position in the video signal.
type TelevisionCoords struct {
	Frame    int
	Scanline int
	Clock    int
}

// String returns a human readable representation.
func (c TelevisionCoords) String() string {
	return fmt.Sprintf("fr=%d sl=%d cl=%d", c.Frame, c.Scanline, c.Clock)
}

// Equal compares two TelevisionCoords for equality. If either coordinate's
// Frame field is FrameIsUndefined, the frame field is not compared.
func Equal(a, b TelevisionCoords) bool {
	if a.Scanline != b.Scanline || a.Clock != b.Clock {
		return false
	}
	if a.Frame == FrameIsUndefined || b.Frame == FrameIsUndefined {
		return true
	}
	return a.Frame == b.Frame
}

// GreaterThan returns true if a occurred after b in frame/scanline/clock
// order.
func GreaterThan(a, b TelevisionCoords) bool {
	if a.Frame != b.Frame {
		return a.Frame > b.Frame
	}
	if a.Scanline != b.Scanline {
		return a.Scanline > b.Scanline
	}
	return a.Clock > b.Clock
}
