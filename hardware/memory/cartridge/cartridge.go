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

// Package cartridge models a cartridge ROM image. Bank-switching beyond the
// 4KiB Atari format and the C64's Ultimax mapping is out of scope (see the
// design notes on why ACE/CDF/DPC+/ARM-coprocessor cartridges were dropped
// from the teacher repository this was adapted from): every supported
// cartridge is just a power-of-two sized byte vector addressed with a mask,
// the same trick the RAM type uses.
package cartridge

import (
	"fmt"

	"github.com/bl-nero/steampunk-sub000/cartridgeloader"
	"github.com/bl-nero/steampunk-sub000/errors"
)

// SizeError is returned by NewAtari and NewUltimax when the supplied data is
// not a size the real hardware could accept.
type SizeError struct {
	Size int
}

func (e SizeError) Error() string {
	return fmt.Sprintf("cartridge error: unsupported image size (%d bytes)", e.Size)
}

// Atari is an Atari 2600 cartridge: a 2048 or 4096 byte ROM image, selected
// by address bit 12 in the machine's address decoder and, when 2048 bytes,
// mirrored across the entire 4KiB cartridge window.
type Atari struct {
	Filename string
	Hash     string

	data []byte
	mask uint16
}

// NewAtari validates and wraps a raw Atari cartridge image. Valid sizes are
// 2048 and 4096 bytes.
func NewAtari(ld cartridgeloader.Loader) (*Atari, error) {
	if err := ld.Open(); err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	data := *ld.Data
	switch len(data) {
	case 2048, 4096:
	default:
		return nil, SizeError{Size: len(data)}
	}

	cp := make([]byte, len(data))
	copy(cp, data)

	return &Atari{
		Filename: ld.Filename,
		Hash:     ld.HashSHA1,
		data:     cp,
		mask:     uint16(len(cp) - 1),
	}, nil
}

// Read returns the byte at addr, normalised to the 4KiB cartridge window (ie.
// addr should already have had the $1000 select bit subtracted out by the
// caller's address decoder).
func (cart *Atari) Read(addr uint16) (uint8, error) {
	return cart.data[addr&cart.mask], nil
}

// Write is a no-op: cartridge ROM writes are silently dropped by the real
// hardware's address decoder rather than erroring.
func (cart *Atari) Write(addr uint16, data uint8) error {
	return nil
}

// Poke allows a debugger to alter cartridge memory directly, bypassing the
// read-only nature of Write.
func (cart *Atari) Poke(addr uint16, data uint8) error {
	if int(addr&cart.mask) >= len(cart.data) {
		return errors.Errorf(errors.UnpokeableAddress, addr)
	}
	cart.data[addr&cart.mask] = data
	return nil
}

// NumBanks always returns 1: Atari cartridges in scope here have no
// bank-switching.
func (cart *Atari) NumBanks() int {
	return 1
}

func (cart *Atari) String() string {
	return fmt.Sprintf("atari (%d bytes)", len(cart.data))
}

// Ultimax is a C64 cartridge using the Ultimax memory mapping: the
// cartridge claims both $8000-$9FFF (8KiB, "lo") and $E000-$FFFF (8KiB,
// "hi", including the CPU's reset and interrupt vectors), displacing KERNAL
// and BASIC entirely. Valid sizes are 8KiB and 16KiB; an 8KiB
// image occupies the hi window only and the lo window is unmapped (reads as
// open-bus 0xFF), matching how most Ultimax carts (eg. those built around a
// single 8KiB EPROM) are wired.
type Ultimax struct {
	Filename string
	Hash     string

	lo   []byte // may be nil
	hi   []byte
	mask uint16
}

// NewUltimax validates and wraps a raw C64 Ultimax cartridge image. Valid
// sizes are 8192 and 16384 bytes.
func NewUltimax(ld cartridgeloader.Loader) (*Ultimax, error) {
	if err := ld.Open(); err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	data := *ld.Data
	cart := &Ultimax{Filename: ld.Filename, Hash: ld.HashSHA1}

	switch len(data) {
	case 8192:
		cart.hi = append([]byte(nil), data...)
		cart.mask = 0x1fff
	case 16384:
		cart.lo = append([]byte(nil), data[:8192]...)
		cart.hi = append([]byte(nil), data[8192:]...)
		cart.mask = 0x1fff
	default:
		return nil, SizeError{Size: len(data)}
	}

	return cart, nil
}

// ReadLo reads from the $8000-$9FFF window. ok is false if no ROM is mapped
// there, in which case data is 0xff.
func (cart *Ultimax) ReadLo(addr uint16) (data uint8, ok bool) {
	if cart.lo == nil {
		return 0xff, false
	}
	return cart.lo[addr&cart.mask], true
}

// ReadHi reads from the $E000-$FFFF window, which is always mapped for an
// Ultimax cartridge (it carries the reset and interrupt vectors).
func (cart *Ultimax) ReadHi(addr uint16) uint8 {
	return cart.hi[addr&cart.mask]
}

func (cart *Ultimax) String() string {
	size := len(cart.hi)
	if cart.lo != nil {
		size += len(cart.lo)
	}
	return fmt.Sprintf("ultimax (%d bytes)", size)
}
