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

// Package fs holds filesystem path helpers for the emulator. Abs is the only
// one; callers also use path/filepath directly.
package fs

import "path/filepath"

// Abs returns an absolute representation of path, expanding it relative to
// the current working directory if it isn't already absolute.
func Abs(path string) (string, error) {
	return filepath.Abs(path)
}
