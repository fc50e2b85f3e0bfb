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

// Package memviz renders a machine's object graph (CPU, chips, the
// address decoder, all the pointers tying them together) to Graphviz dot,
// for the --graph debug flag. bradleyjkemp/memviz walks the struct via
// reflection, so this package is a thin naming wrapper rather than a
// reimplementation.
package memviz

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Dump renders machine's pointer graph as dot source to w. machine is
// typically a *hardware.VCS or *hardware.C64; passing a pointer lets
// memviz follow every field, including the chips reachable only through
// the top-level struct.
func Dump(w io.Writer, machine interface{}) {
	memviz.Map(w, machine)
}
