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

package hardware_test

import (
	"testing"

	"github.com/bl-nero/steampunk-sub000/cartridgeloader"
	"github.com/bl-nero/steampunk-sub000/hardware"
	"github.com/bl-nero/steampunk-sub000/hardware/instance"
	"github.com/bl-nero/steampunk-sub000/hardware/television"
	"github.com/bl-nero/steampunk-sub000/test"
)

func newVCS(t *testing.T) *hardware.VCS {
	t.Helper()

	tv, err := television.NewTelevision("NTSC")
	test.ExpectSuccess(t, err)

	ins, err := instance.NewInstance(tv)
	test.ExpectSuccess(t, err)

	vcs, err := hardware.NewVCS(tv, ins)
	test.ExpectSuccess(t, err)
	return vcs
}

// a minimal 4K Atari cartridge: an infinite loop at the reset vector.
func atariLoader(t *testing.T) cartridgeloader.Loader {
	t.Helper()

	data := make([]byte, 4096)
	data[0x0ffc] = 0x00 // reset vector -> $F000
	data[0x0ffd] = 0xf0
	data[0x0000] = 0x4c // JMP $F000
	data[0x0001] = 0x00
	data[0x0002] = 0xf0

	ld, err := cartridgeloader.NewLoaderFromData("test.bin", data)
	test.ExpectSuccess(t, err)
	return ld
}

func TestVCSRunsCartridgeLoop(t *testing.T) {
	vcs := newVCS(t)
	test.ExpectSuccess(t, vcs.AttachCartridge(atariLoader(t)))
	test.ExpectSuccess(t, vcs.Reset())
	test.ExpectEquality(t, vcs.CPU.ProgramCounter(), uint16(0xf000))

	for i := 0; i < hardware.ColorClocksPerCPUCycle*50; i++ {
		_, err := vcs.Tick()
		test.ExpectSuccess(t, err)
	}
}
