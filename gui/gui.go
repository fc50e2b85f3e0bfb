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

// Package gui defines the boundary a windowing front end would implement.
// No implementation lives here: go-gl/gl, veandco/go-sdl2 and
// inkyblackness/imgui-go are the excluded windowing/graphics collaborator,
// so nothing in this repository opens a window. This interface exists so
// that collaborator could be wired in later without touching the core.
package gui

import "github.com/bl-nero/steampunk-sub000/hardware/television"

// FrameRenderer is what the core's television output is written into. A
// real front end would implement this by uploading each SignalAttributes
// pixel to a texture; the core has no dependency on how that happens.
type FrameRenderer interface {
	SetPixel(sig television.SignalAttributes)
	EndFrame() error
}
