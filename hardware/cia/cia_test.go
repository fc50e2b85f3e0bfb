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

package cia_test

import (
	"testing"

	"github.com/bl-nero/steampunk-sub000/hardware/cia"
	"github.com/bl-nero/steampunk-sub000/test"
)

func TestTimerCountsDownAndReloads(t *testing.T) {
	c := cia.NewCIA()

	test.ExpectSuccess(t, c.Write(0x04, 0x03)) // TALO
	test.ExpectSuccess(t, c.Write(0x05, 0x00)) // TAHI, loads counter since not started
	test.ExpectSuccess(t, c.Write(0x0e, 0x01)) // CRA: START, continuous

	for i := 0; i < 4; i++ {
		c.Step()
	}

	v, err := c.Read(0x04)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(3)) // reloaded from latch on underflow
}

func TestTimerOneShotStops(t *testing.T) {
	c := cia.NewCIA()

	test.ExpectSuccess(t, c.Write(0x04, 0x01))
	test.ExpectSuccess(t, c.Write(0x05, 0x00))
	test.ExpectSuccess(t, c.Write(0x0e, 0x01|0x08)) // START|RUNMODE (one-shot)

	c.Step() // counter 1 -> 0
	c.Step() // underflow, reload, stop

	lo, err := c.Read(0x04)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, lo, uint8(1))

	cr, err := c.Read(0x0e)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cr&0x01, uint8(0)) // START cleared
}

func TestUnsupportedControlBitIsRejected(t *testing.T) {
	c := cia.NewCIA()
	err := c.Write(0x0e, 0x20) // INMODE bit, unsupported
	test.ExpectFailure(t, err)
}

func TestICRWriteOneToSetAndClear(t *testing.T) {
	c := cia.NewCIA()

	test.ExpectSuccess(t, c.Write(0x0d, 0x80|0x01)) // SET, unmask timer A
	test.ExpectSuccess(t, c.Write(0x04, 0x01))
	test.ExpectSuccess(t, c.Write(0x05, 0x00))
	test.ExpectSuccess(t, c.Write(0x0e, 0x01))

	c.Step()
	c.Step()

	test.ExpectEquality(t, c.Interrupt(), true)

	v, err := c.Read(0x0d)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v&0x80, uint8(0x80))

	// reading ICR acknowledges the flag
	test.ExpectEquality(t, c.Interrupt(), false)

	test.ExpectSuccess(t, c.Write(0x0d, 0x01)) // clear mask (bit 7 = 0)
	v2, err := c.Read(0x0d)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v2&0x80, uint8(0))
}

func TestPortReadCombinesDirectionAndPins(t *testing.T) {
	c := cia.NewCIA()

	test.ExpectSuccess(t, c.Write(0x02, 0x0f)) // DDRA: low nibble output
	test.ExpectSuccess(t, c.Write(0x00, 0xaa)) // PRA latch

	c.PortA.Pins = 0xf0 // external source drives high nibble

	v, err := c.Read(0x00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xfa))
}
