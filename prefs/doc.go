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

// Package prefs implements a small disk-backed preferences system. A Disk
// instance owns a single file; Bool, String, Float, Int and Generic values
// register themselves against keys with Disk.Add and are written out,
// sorted by key, on Disk.Save.
//
// A Disk only ever forgets keys it has never seen: any line in the file
// that doesn't correspond to a registered value at Save time is carried
// forward unchanged, so two programs (or packages) can share one
// preferences file as long as they don't register the same key.
package prefs
