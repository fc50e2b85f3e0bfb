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

package tia

import "github.com/bl-nero/steampunk-sub000/hardware/tia/delay"

// nusizCopyOffsets returns the position-counter offsets (relative to the
// reset point, which is always offset 0) at which an additional copy of a
// player or missile starts drawing, keyed by the low three bits of NUSIZx.
// These are the "156/28/60"-style numbers referred to in spec §4.2; offset
// 0 is always present since every NUSIZ setting draws at least one copy.
func nusizCopyOffsets(nusiz uint8) []int {
	switch nusiz & 0x07 {
	case 0b001:
		return []int{0, 16}
	case 0b010:
		return []int{0, 32}
	case 0b011:
		return []int{0, 16, 32}
	case 0b100:
		return []int{0, 64}
	case 0b110:
		return []int{0, 32, 64}
	default:
		return []int{0}
	}
}

// nusizScale returns the horizontal stretch factor a player's bitmap is
// drawn at: double size (NUSIZ 0b101) or quad size (0b111), else normal.
func nusizScale(nusiz uint8) int {
	switch nusiz & 0x07 {
	case 0b101:
		return 2
	case 0b111:
		return 4
	}
	return 1
}

// missileWidth returns the width in pixels of a missile's single dot,
// selected by NUSIZx bits 4-5.
func missileWidth(nusiz uint8) int {
	return [4]int{1, 2, 4, 8}[(nusiz>>4)&0x03]
}

// resetDelayPlayer/resetDelayMissile are the number of colour clocks between
// a RESPx/RESMx strobe and the position counter actually being forced to
// zero, per spec §4.2.
const (
	resetDelayPlayer  = 5
	resetDelayMissile = 4

	// startDrawingDelay is the pipeline depth between a position counter
	// reaching a copy offset and the sprite actually beginning to draw.
	startDrawingDelay = 4

	// bitmapDelay is the pipeline depth between a GRPx write and it taking
	// effect on a copy already in flight.
	bitmapDelay = 3
)

// player is one of the TIA's two player sprite engines.
type player struct {
	nusiz uint8
	color uint8

	pos int // position counter, modulo 160

	newBitmap uint8
	oldBitmap uint8
	vdelp     bool // VDELPx: true selects oldBitmap for drawing
	reflect   bool

	resetCountdown int // >0 while a RESPx strobe is in flight

	drawing   bool
	bitCursor int // 0..(8*scale)-1 while drawing

	// startDrawing pipelines the "a copy's offset has been reached" pulse
	// by startDrawingDelay colour clocks, matching the real chip's pixel
	// pipeline latency between the position counter and the shift
	// register that actually drives the beam.
	startDrawing *delay.Buffer[bool]
	bitmapBuffer *delay.Buffer[uint8]
}

func newPlayer() *player {
	return &player{
		startDrawing: delay.New[bool](startDrawingDelay),
		bitmapBuffer: delay.New[uint8](bitmapDelay),
	}
}

func (p *player) bitmap() uint8 {
	if p.vdelp {
		return p.oldBitmap
	}
	return p.newBitmap
}

// writeGRP stores a new bitmap value. The TIA's own vertical-delay quirk
// (a write to GRP0 also shifts GRP1's old buffer, and vice versa) is
// implemented by tia.go, which has access to both players.
func (p *player) writeGRP(value uint8) {
	p.oldBitmap = p.newBitmap
	p.newBitmap = value
}

// tick advances the position counter by one colour clock and returns the
// pixel (on/off) this sprite contributes at the current clock.
func (p *player) tick() bool {
	if p.resetCountdown > 0 {
		p.resetCountdown--
		if p.resetCountdown == 0 {
			p.pos = 0
		}
	}

	atOffset := false
	for _, off := range nusizCopyOffsets(p.nusiz) {
		if p.pos == off {
			atOffset = true
		}
	}

	// shift bitmapBuffer every tick purely to keep its pipeline depth
	// aligned to startDrawing; the TIA has no independent use for the
	// value it returns here.
	p.bitmapBuffer.Shift(p.bitmap())

	if p.startDrawing.Shift(atOffset) {
		p.drawing = true
		p.bitCursor = 0
	}

	scale := nusizScale(p.nusiz)
	width := 8 * scale

	on := false
	if p.drawing {
		bit := p.bitCursor / scale
		idx := bit
		if !p.reflect {
			idx = 7 - bit
		}
		on = p.bitmap()&(1<<uint(idx)) != 0

		p.bitCursor++
		if p.bitCursor >= width {
			p.drawing = false
		}
	}

	p.pos++
	if p.pos >= 160 {
		p.pos = 0
	}

	return on
}

// strobeReset arms the position-reset countdown.
func (p *player) strobeReset() {
	p.resetCountdown = resetDelayPlayer
}

// missile is one of the TIA's two missile sprite engines.
type missile struct {
	nusiz   uint8
	color   uint8
	enabled bool

	pos int

	resetCountdown int
	drawing        bool
	bitCursor      int

	// lockedToPlayer, when set by RESMPx, slaves pos to the paired
	// player's position plus a small scale-dependent offset every tick,
	// until RESMPx is cleared.
	lockedToPlayer bool

	startDrawing *delay.Buffer[bool]
}

func newMissile() *missile {
	return &missile{startDrawing: delay.New[bool](startDrawingDelay)}
}

// resmpOffset returns the RESMPx slaving offset for a paired player drawn at
// the given NUSIZ scale: scale 2 -> 8 colour clocks, scale 4 -> 11, anything
// else (including normal size) -> 4. This is deliberately distinct from the
// flat resetDelayMissile countdown RESMx itself uses.
func resmpOffset(playerScale int) int {
	switch playerScale {
	case 2:
		return 8
	case 4:
		return 11
	}
	return 4
}

func (m *missile) tick(pairedPlayerPos, pairedPlayerScale int) bool {
	if m.lockedToPlayer {
		m.pos = (pairedPlayerPos + resmpOffset(pairedPlayerScale)) % 160
	}

	if m.resetCountdown > 0 {
		m.resetCountdown--
		if m.resetCountdown == 0 {
			m.pos = 0
		}
	}

	width := missileWidth(m.nusiz)

	atOffset := false
	for _, off := range nusizCopyOffsets(m.nusiz) {
		if m.pos == off {
			atOffset = true
		}
	}

	if m.startDrawing.Shift(atOffset) {
		m.drawing = true
		m.bitCursor = 0
	}

	on := false
	if m.drawing {
		on = m.enabled
		m.bitCursor++
		if m.bitCursor >= width {
			m.drawing = false
		}
	}

	if !m.lockedToPlayer {
		m.pos++
		if m.pos >= 160 {
			m.pos = 0
		}
	}

	return on
}

func (m *missile) strobeReset() {
	m.resetCountdown = resetDelayMissile
}
