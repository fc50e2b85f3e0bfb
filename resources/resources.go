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

// Package resources locates files the emulator reads and writes outside of
// the working directory: preferences, save states and the like all live
// under a single hidden directory in the user's home.
package resources

import (
	"os"
	"path/filepath"

	"github.com/bl-nero/steampunk-sub000/resources/fs"
)

// configDirName is the directory created in the user's home directory.
const configDirName = ".steampunk-sub000"

// JoinPath builds a path under the user's configuration directory from the
// supplied parts, creating any missing directories along the way.
func JoinPath(parts ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	all := append([]string{home, configDirName}, parts...)
	pth := filepath.Join(all...)

	pth, err = fs.Abs(pth)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(pth), 0700); err != nil {
		return "", err
	}

	return pth, nil
}
