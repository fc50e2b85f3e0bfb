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

package cartridgeloader_test

import (
	"testing"

	"github.com/bl-nero/steampunk-sub000/cartridgeloader"
	"github.com/bl-nero/steampunk-sub000/test"
)

func TestLoadTapDecodesPulses(t *testing.T) {
	data := []byte{
		'C', '6', '4', '-', 'T', 'A', 'P', 'E', '-', 'R', 'A', 'W',
		0,       // version 0
		0, 0, 0, // reserved
		3, 0, 0, 0, // data size, little-endian
		10, 20, 30,
	}

	tap, err := cartridgeloader.LoadTap(data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tap.Version, uint8(0))
	test.ExpectEquality(t, len(tap.Pulses), 3)
	test.ExpectEquality(t, tap.Pulses[0], uint32(80))
	test.ExpectEquality(t, tap.Pulses[1], uint32(160))
	test.ExpectEquality(t, tap.Pulses[2], uint32(240))
}

func TestLoadTapVersion1LongPulse(t *testing.T) {
	data := []byte{
		'C', '6', '4', '-', 'T', 'A', 'P', 'E', '-', 'R', 'A', 'W',
		1,
		0, 0, 0,
		4, 0, 0, 0,
		0, 0x10, 0x00, 0x01, // zero byte, then little-endian 24 bit cycle count
	}

	tap, err := cartridgeloader.LoadTap(data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(tap.Pulses), 1)
	test.ExpectEquality(t, tap.Pulses[0], uint32(0x010010))
}

func TestLoadTapRejectsBadSignature(t *testing.T) {
	data := make([]byte, 20)
	copy(data, "NOT-A-TAP-FILE!!")
	_, err := cartridgeloader.LoadTap(data)
	test.ExpectFailure(t, err)
}

func TestLoadTapRejectsUnknownVersion(t *testing.T) {
	data := []byte{
		'C', '6', '4', '-', 'T', 'A', 'P', 'E', '-', 'R', 'A', 'W',
		2,
		0, 0, 0,
		0, 0, 0, 0,
	}
	_, err := cartridgeloader.LoadTap(data)
	test.ExpectFailure(t, err)
}
