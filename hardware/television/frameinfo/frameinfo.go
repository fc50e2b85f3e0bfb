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

// Package frameinfo describes the state of the television at the instant a
// frame completes, passed to every registered FrameTrigger.
package frameinfo

import "github.com/bl-nero/steampunk-sub000/hardware/television/specification"

// Current describes the just-completed frame.
type Current struct {
	// FrameNum is the number of the frame that has just completed, counting
	// from zero.
	FrameNum int

	// Spec is the television timing standard in effect for that frame.
	Spec specification.Spec

	// Stable is true once the television has observed enough consecutive
	// frames of matching geometry to consider the signal synchronised,
	// rather than still settling after a spec change.
	Stable bool
}
