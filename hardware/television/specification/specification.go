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

// Package specification describes the handful of timing parameters that
// differ between television standards: how many scanlines make up a frame
// and the nominal refresh rate. The TIA's per-scanline colour clock count
// (228) and HBLANK/HSYNC geometry is identical on both standards and is
// owned by the tia package; what differs is purely how many scanlines
// constitute a complete field.
package specification

import (
	"path/filepath"
	"strings"
)

// Spec identifies one television timing standard.
type Spec struct {
	ID string

	// ScanlinesTotal is the number of scanlines in a complete frame,
	// including the vertical blank and overscan regions.
	ScanlinesTotal int

	// RefreshRate is the nominal field rate in Hz.
	RefreshRate float32
}

// The two real-world standards modelled, plus a fallback used until an
// actual cartridge has been fingerprinted.
var (
	SpecNTSC = Spec{ID: "NTSC", ScanlinesTotal: 262, RefreshRate: 60.0}
	SpecPAL  = Spec{ID: "PAL", ScanlinesTotal: 312, RefreshRate: 50.0}
)

// SearchSpec looks for "NTSC" or "PAL" in filename (case insensitive,
// anywhere in the base name, extension included) and returns the matching spec ID, or the
// empty string if neither is found. Used to let a ROM filename like
// "Pitfall (PAL).bin" hint at the correct television standard ahead of any
// fingerprinting.
func SearchSpec(filename string) string {
	name := strings.ToUpper(filepath.Base(filename))
	switch {
	case strings.Contains(name, "NTSC"):
		return SpecNTSC.ID
	case strings.Contains(name, "PAL"):
		return SpecPAL.ID
	}
	return ""
}

// ByID returns the Spec for id ("NTSC", "PAL" or "AUTO"/"" for NTSC), and
// whether id was recognised.
func ByID(id string) (Spec, bool) {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "", "AUTO", "NTSC":
		return SpecNTSC, true
	case "PAL":
		return SpecPAL, true
	}
	return Spec{}, false
}
