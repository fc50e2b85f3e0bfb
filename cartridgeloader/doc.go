// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
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

// Package cartridgeloader is used to load cartridge and tape data from the
// filesystem (or HTTP) so that it can be handed to the cartridge and
// datasette packages.
//
// # File extensions
//
// ".BIN", ".ROM" and ".A26" denote raw Atari cartridge images, sized 2048 or
// 4096 bytes. ".CRT" denotes a raw C64 cartridge image, which may use the
// Ultimax memory mapping if it is exactly 16KiB. ".TAP" denotes a C64
// Datasette tape image in the "C64-TAPE-RAW" format.
//
// # Hashes
//
// A SHA1 and MD5 hash of the data is computed when the data becomes
// resident: by NewLoaderFromData() at creation, and by Open() for a loader
// created with NewLoaderFromFilename(). Open() uses them to detect
// corruption if an expected hash was supplied up front.
package cartridgeloader
