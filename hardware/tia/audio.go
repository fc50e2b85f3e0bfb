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

// audioChannel is one of the TIA's two AUDC/AUDF/AUDV-driven sound
// generators. The real chip selects between several tapped-shift-register
// waveforms depending on the low 4 bits of AUDC; as spec §9 notes, the
// published references disagree on several of those waveforms, so this is a
// best-effort approximation rather than a transistor-accurate model: even
// AUDC values produce a plain square wave, odd values clock a 5 bit
// linear-feedback shift register to approximate the chip's noisier settings.
// This is recorded as a known limitation rather than invented as fact.
type audioChannel struct {
	control uint8 // AUDCx, low 4 bits
	freq    uint8 // AUDFx, low 5 bits
	volume  uint8 // AUDVx, low 4 bits

	divider int
	lfsr    uint8
	bit     bool
}

func newAudioChannel() *audioChannel {
	return &audioChannel{lfsr: 0x1f}
}

// tick clocks the channel by one colour clock and returns its current
// output sample, volume already applied, in the range 0..15.
func (a *audioChannel) tick() int {
	// The frequency divider runs at 1/2 the R/W bus clock seen by the
	// rest of the TIA (the CPU's cycle, not the colour clock), which this
	// model approximates by dividing by (AUDF+1)*2 colour clocks.
	a.divider++
	if a.divider >= (int(a.freq&0x1f)+1)*2 {
		a.divider = 0
		a.clock()
	}

	if !a.bit {
		return 0
	}
	return int(a.volume & 0x0f)
}

func (a *audioChannel) clock() {
	if a.control&0x01 == 0 {
		a.bit = !a.bit
		return
	}

	feedback := ((a.lfsr >> 4) ^ (a.lfsr >> 2)) & 0x01
	a.lfsr = ((a.lfsr << 1) | feedback) & 0x1f
	a.bit = a.lfsr&0x01 != 0
}

// MixAudio mixes two channel samples (each in the range -15..15, or 0..15
// for the unsigned AU0/AU1 values TIA.Tick reports) into a single signed
// value in the range -1.0 to 1.0, the shape the audio sample stream
// describes. Exported so a sink outside this package (soundfile, the wav
// dump) can mix the raw AU0/AU1 pair without duplicating the scaling
// constant.
func MixAudio(left, right int) float32 {
	return float32(left+right) / 30.0
}
