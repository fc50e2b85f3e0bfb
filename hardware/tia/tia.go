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

// Package tia implements the Atari 2600's Television Interface Adaptor: the
// chip that is simultaneously the machine's clock master, its video
// generator, its audio generator and its sprite/playfield/collision engine.
// Nothing else in the emulation runs except in response to a TIA Tick.
package tia

import (
	"github.com/bl-nero/steampunk-sub000/errors"
	"github.com/bl-nero/steampunk-sub000/hardware/riot/ports/plugging"
)

// register offsets, as decoded by the write (6 bit) and read (4 bit) masks
// spec §4.2 describes.
const (
	wCXCLR = 0x2c
	wHMOVE = 0x2a
	wHMCLR = 0x2b

	wVSYNC  = 0x00
	wVBLANK = 0x01
	wWSYNC  = 0x02
	wRSYNC  = 0x03
	wNUSIZ0 = 0x04
	wNUSIZ1 = 0x05
	wCOLUP0 = 0x06
	wCOLUP1 = 0x07
	wCOLUPF = 0x08
	wCOLUBK = 0x09
	wCTRLPF = 0x0a
	wREFP0  = 0x0b
	wREFP1  = 0x0c
	wPF0    = 0x0d
	wPF1    = 0x0e
	wPF2    = 0x0f
	wRESP0  = 0x10
	wRESP1  = 0x11
	wRESM0  = 0x12
	wRESM1  = 0x13
	wRESBL  = 0x14
	wAUDC0  = 0x15
	wAUDC1  = 0x16
	wAUDF0  = 0x17
	wAUDF1  = 0x18
	wAUDV0  = 0x19
	wAUDV1  = 0x1a
	wGRP0   = 0x1b
	wGRP1   = 0x1c
	wENAM0  = 0x1d
	wENAM1  = 0x1e
	wENABL  = 0x1f
	wHMP0   = 0x20
	wHMP1   = 0x21
	wHMM0   = 0x22
	wHMM1   = 0x23
	wHMBL   = 0x24
	wVDELP0 = 0x25
	wVDELP1 = 0x26
	wVDELBL = 0x27
	wRESMP0 = 0x28
	wRESMP1 = 0x29

	rCXM0P  = 0x00
	rCXM1P  = 0x01
	rCXP0FB = 0x02
	rCXP1FB = 0x03
	rCXM0FB = 0x04
	rCXM1FB = 0x05
	rCXBLPF = 0x06
	rCXPPMM = 0x07
	rINPT0  = 0x08
	rINPT1  = 0x09
	rINPT2  = 0x0a
	rINPT3  = 0x0b
	rINPT4  = 0x0c
	rINPT5  = 0x0d
)

// writeAddressMask/readAddressMask implement spec §4.2's "writes decode the
// low 6 bits... reads decode the low 4 bits" rule.
const (
	writeAddressMask = 0x3f
	readAddressMask  = 0x0f
)

const (
	columnsPerScanline = 228
	hblankEnd          = 68
	hblankEndHMOVE     = 76
	hsyncStart         = 16
	hsyncEnd           = 32
)

// Video is one colour clock's worth of picture output.
type Video struct {
	HSync, VSync bool
	Pixel        *uint8 // palette index, nil when the clock produced no visible colour
}

// Audio is one colour clock's worth of sound output, present on every clock
// that completes a sample period (two samples per scanline).
type Audio struct {
	AU0, AU1 int
}

// Output is the tuple a single Tick produces, matching spec §4.2's
// `{video, audio, cpu_tick, riot_tick}` shape.
type Output struct {
	Video    Video
	Audio    *Audio
	CPUTick  bool
	RIOTTick bool
}

// Ports is the subset of riot/ports.Ports the TIA needs to resolve INPT4/5
// (the two fire-button latches) and VBLANK's dump-to-ground behaviour for
// the paddle inputs, which this implementation does not otherwise model.
type Ports interface {
	Fire(id plugging.PortID) bool
}

// TIA is the Atari 2600's video/audio/timing chip.
type TIA struct {
	ports Ports

	column int

	vsync, vblank bool
	waitForSync   bool

	hmoveLatched bool
	hmoveCounter int // counts 7 down to -8 while hmoveLatched

	// hmp0/hmp1/hmm0/hmm1 are the raw HMPx/HMMx register bytes: a signed
	// four bit value in the upper nibble, applied at HMOVE time.
	hmp0, hmp1, hmm0, hmm1 uint8

	colup0, colup1, colupf, colubk uint8

	pf playfield

	player0, player1 *player
	missile0, missile1 *missile

	nusiz0, nusiz1 uint8

	audio0, audio1 *audioChannel
	sampleDivider  int

	collisions [8]bool

	inpt4Latch, inpt5Latch   bool
	inpt4Dumped, inpt5Dumped bool
	vblankLatchBit           bool

	// writeSeen records addresses already tolerated once with a zero
	// value, per spec §4.2's startup-zeroing-pass quirk.
	writeSeen map[uint16]bool
}

// NewTIA is the preferred method of initialisation for the TIA type. ports
// may be nil, in which case INPT4/INPT5 always read as released.
func NewTIA(ports Ports) *TIA {
	t := &TIA{
		ports:     ports,
		player0:   newPlayer(),
		player1:   newPlayer(),
		missile0:  newMissile(),
		missile1:  newMissile(),
		audio0:    newAudioChannel(),
		audio1:    newAudioChannel(),
		writeSeen: make(map[uint16]bool),
	}
	return t
}

// Tick advances the TIA by one colour clock and returns this clock's output.
func (t *TIA) Tick() Output {
	out := Output{
		CPUTick:  !t.waitForSync && t.column%3 == 0,
		RIOTTick: t.column%3 == 0,
	}

	hblankLimit := hblankEnd
	if t.hmoveLatched {
		hblankLimit = hblankEndHMOVE
	}

	out.Video.VSync = t.vsync
	out.Video.HSync = t.column >= hsyncStart && t.column < hsyncEnd

	if t.column >= hblankLimit && !t.vblank {
		colour := t.resolvePixel()
		out.Video.Pixel = &colour
	} else if t.column >= hblankLimit {
		// HBLANK has ended but VBLANK is still asserted: sprites and
		// playfield keep ticking (so position counters stay in sync
		// with real hardware) but nothing is drawn.
		t.resolvePixel()
	}

	t.sampleDivider++
	if t.sampleDivider >= columnsPerScanline/2 {
		t.sampleDivider = 0
		a0 := t.audio0.tick()
		a1 := t.audio1.tick()
		out.Audio = &Audio{AU0: a0, AU1: a1}
	} else {
		t.audio0.tick()
		t.audio1.tick()
	}

	if t.waitForSync && t.column == 0 {
		t.waitForSync = false
	}

	t.column++
	if t.column >= columnsPerScanline {
		t.column = 0
		t.hmoveLatched = false
	}

	if t.hmoveLatched && t.hmoveCounter > -8 {
		t.hmoveCounter--
	}

	return out
}

// resolvePixel advances the sprite and playfield engines by one colour
// clock and returns the palette index the topmost non-background object
// contributes, recording any new collisions along the way.
func (t *TIA) resolvePixel() uint8 {
	x := t.column - hblankEnd
	if x < 0 {
		x = 0
	}
	if x > 159 {
		x = 159
	}

	p0 := t.player0.tick()
	p1 := t.player1.tick()
	m0 := t.missile0.tick(t.player0.pos, nusizScale(t.player0.nusiz))
	m1 := t.missile1.tick(t.player1.pos, nusizScale(t.player1.nusiz))
	pf := t.pf.pixel(x)

	t.recordCollision(0, m0 && p0)
	t.recordCollision(1, m1 && p1)
	t.recordCollision(2, p0 && pf)
	t.recordCollision(3, p1 && pf)
	t.recordCollision(4, m0 && pf)
	t.recordCollision(5, m1 && pf)
	t.recordCollision(6, m0 && p1)
	t.recordCollision(7, m1 && p0)
	// Index 7 is shared: besides M1-P0 above, it also latches the
	// player-player and missile-missile overlaps, and CXPPMM reports it in
	// bit 7.
	if p0 && p1 {
		t.collisions[7] = true
	}
	if m0 && m1 {
		t.collisions[7] = true
	}

	priority := t.pf.ctrl&ctrlpfPriority != 0

	switch {
	case priority && pf:
		return t.colupf
	case p0:
		return t.colup0
	case m0:
		return t.colup0
	case p1:
		return t.colup1
	case m1:
		return t.colup1
	case pf:
		return t.colupf
	}
	return t.colubk
}

func (t *TIA) recordCollision(i int, hit bool) {
	if hit {
		t.collisions[i] = true
	}
}

// Read services a CPU read at a TIA-local address, decoding only its low 4
// bits per spec §4.2.
func (t *TIA) Read(address uint16) (uint8, error) {
	offset := address & readAddressMask
	switch offset {
	case rCXM0P:
		return collisionByte(t.collisions[0], t.collisions[7]), nil
	case rCXM1P:
		return collisionByte(t.collisions[6], t.collisions[1]), nil
	case rCXP0FB:
		return collisionByte(t.collisions[2], false), nil
	case rCXP1FB:
		return collisionByte(t.collisions[3], false), nil
	case rCXM0FB:
		return collisionByte(t.collisions[4], false), nil
	case rCXM1FB:
		return collisionByte(t.collisions[5], false), nil
	case rCXBLPF:
		return 0, nil
	case rCXPPMM:
		return collisionByte(t.collisions[7], false), nil
	case rINPT0, rINPT1, rINPT2, rINPT3:
		// Paddle inputs are not modelled; they always read "centred".
		return 0x80, nil
	case rINPT4:
		return t.inpt(plugging.PortLeft, &t.inpt4Latch, &t.inpt4Dumped), nil
	case rINPT5:
		return t.inpt(plugging.PortRight, &t.inpt5Latch, &t.inpt5Dumped), nil
	}
	return 0, errors.Errorf(errors.UnknownRegister, "TIA", address)
}

func collisionByte(hi, lo bool) uint8 {
	var v uint8
	if hi {
		v |= 0x80
	}
	if lo {
		v |= 0x40
	}
	return v
}

// inpt resolves one of INPT4/INPT5: bit 7 set means released, clear means
// pressed, matching a grounded pin. When VBLANK bit 6 ("latch") is set, the
// first pressed sample is latched and held until VBLANK is cleared again.
func (t *TIA) inpt(id plugging.PortID, latch, dumped *bool) uint8 {
	pressed := t.ports != nil && t.ports.Fire(id)

	if t.vblankLatchEnabled() {
		if pressed {
			*latch = true
		}
		if !*dumped {
			*dumped = true
		}
		pressed = *latch
	} else {
		*latch = false
		*dumped = false
	}

	if pressed {
		return 0x00
	}
	return 0x80
}

func (t *TIA) vblankLatchEnabled() bool {
	return t.vblankLatchBit
}

// Peek reads address without side effects, for debugger use. Collision and
// input registers have none worth distinguishing from Read, so it simply
// delegates.
func (t *TIA) Peek(address uint16) (uint8, error) {
	return t.Read(address)
}

// Write services a CPU write at a TIA-local address, decoding its low 6
// bits per spec §4.2. A write to an address this TIA does not recognise is
// tolerated exactly once, provided its value is zero (the "startup zeroing
// pass" quirk real cartridges rely on); any later write to that same
// address, or any unrecognised write carrying a non-zero value, is an
// error.
func (t *TIA) Write(address uint16, value uint8) error {
	offset := address & writeAddressMask

	switch offset {
	case wVSYNC:
		t.vsync = value&0x02 != 0
	case wVBLANK:
		if t.vblank && value&0x02 == 0 {
			// VBLANK falling: drop the dump latches.
			t.inpt4Latch, t.inpt5Latch = false, false
			t.inpt4Dumped, t.inpt5Dumped = false, false
		}
		t.vblank = value&0x02 != 0
		t.vblankLatchBit = value&0x40 != 0
	case wWSYNC:
		t.waitForSync = true
	case wRSYNC:
		// RSYNC's exact polycounter resynchronisation quirk is not
		// reproduced; writing it simply has no further effect here.
	case wNUSIZ0:
		t.nusiz0 = value
		t.player0.nusiz = value
		t.missile0.nusiz = value
	case wNUSIZ1:
		t.nusiz1 = value
		t.player1.nusiz = value
		t.missile1.nusiz = value
	case wCOLUP0:
		t.colup0 = value
	case wCOLUP1:
		t.colup1 = value
	case wCOLUPF:
		t.colupf = value
	case wCOLUBK:
		t.colubk = value
	case wCTRLPF:
		t.pf.ctrl = value
	case wREFP0:
		t.player0.reflect = value&0x08 != 0
	case wREFP1:
		t.player1.reflect = value&0x08 != 0
	case wPF0:
		t.pf.pf0 = value
	case wPF1:
		t.pf.pf1 = value
	case wPF2:
		t.pf.pf2 = value
	case wRESP0:
		t.player0.strobeReset()
	case wRESP1:
		t.player1.strobeReset()
	case wRESM0:
		t.missile0.strobeReset()
	case wRESM1:
		t.missile1.strobeReset()
	case wRESBL:
		// Ball object is outside this implementation's sprite model.
	case wAUDC0:
		t.audio0.control = value & 0x0f
	case wAUDC1:
		t.audio1.control = value & 0x0f
	case wAUDF0:
		t.audio0.freq = value & 0x1f
	case wAUDF1:
		t.audio1.freq = value & 0x1f
	case wAUDV0:
		t.audio0.volume = value & 0x0f
	case wAUDV1:
		t.audio1.volume = value & 0x0f
	case wGRP0:
		t.player0.writeGRP(value)
		t.player1.oldBitmap = t.player1.newBitmap
	case wGRP1:
		t.player1.writeGRP(value)
		t.player0.oldBitmap = t.player0.newBitmap
	case wENAM0:
		t.missile0.enabled = value&0x02 != 0
	case wENAM1:
		t.missile1.enabled = value&0x02 != 0
	case wENABL:
		// Ball object is outside this implementation's sprite model.
	case wHMP0:
		t.hmp0 = value
	case wHMP1:
		t.hmp1 = value
	case wHMM0:
		t.hmm0 = value
	case wHMM1:
		t.hmm1 = value
	case wHMBL:
		// Ball object is outside this implementation's sprite model.
	case wVDELP0:
		t.player0.vdelp = value&0x01 != 0
	case wVDELP1:
		t.player1.vdelp = value&0x01 != 0
	case wVDELBL:
		// Ball object is outside this implementation's sprite model.
	case wRESMP0:
		t.missile0.lockedToPlayer = value&0x02 != 0
	case wRESMP1:
		t.missile1.lockedToPlayer = value&0x02 != 0
	case wHMOVE:
		t.hmove()
	case wHMCLR:
		t.hmoveLatched = false
	case wCXCLR:
		for i := range t.collisions {
			t.collisions[i] = false
		}
	default:
		if value != 0 || t.writeSeen[offset] {
			return errors.Errorf(errors.UnknownRegister, "TIA", address)
		}
		t.writeSeen[offset] = true
	}

	return nil
}

// hmove latches HBLANK-extension for the rest of this scanline and feeds
// each sprite the extra position clocks its HM register earns it, per spec
// §4.2: a counter runs 7 down to -8 (15 steps) and a sprite whose HM offset
// is greater than or equal to the counter value gets one extra advance of
// its position counter for that step. Collapsing the 15 steps into an
// up-front count (hm+8 extra ticks for hm in [-8,7]) is equivalent since
// every step below a sprite's own HM value contributes exactly one tick.
func (t *TIA) hmove() {
	t.hmoveLatched = true
	t.hmoveCounter = 7

	extraTicks := func(hm uint8) int {
		signed := int(int8(hm)) >> 4
		return signed + 8
	}

	for i := 0; i < extraTicks(t.hmp0); i++ {
		t.player0.tick()
	}
	for i := 0; i < extraTicks(t.hmp1); i++ {
		t.player1.tick()
	}
	for i := 0; i < extraTicks(t.hmm0); i++ {
		t.missile0.tick(t.player0.pos, nusizScale(t.player0.nusiz))
	}
	for i := 0; i < extraTicks(t.hmm1); i++ {
		t.missile1.tick(t.player1.pos, nusizScale(t.player1.nusiz))
	}
}

// ScanlineColumns is the number of colour clocks per Atari scanline (spec
// §4.2's `column` range), exported for the orchestration type and tests.
const ScanlineColumns = columnsPerScanline
