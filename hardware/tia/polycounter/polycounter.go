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

// Package polycounter models the linear-feedback style counters used by the
// TIA to divide the 3.58MHz colour clock down to the handful of states that
// drive HSYNC, sprite position and the playfield. The real chip counts
// through a non-sequential bit pattern; this package exposes the same
// observable behaviour (a count/phase pair and a reset point reachable by
// RSYNC) as an ordinary binary counter, which is simpler to reason about and
// indistinguishable from the outside.
package polycounter

import "fmt"

// Polycounter is an n-bit counter subdivided into four phases per count. A
// six bit counter wraps after 64 counts (256 ticks); Tick() does not consult
// the reset point, which only Sync reads.
type Polycounter struct {
	Count int
	Phase int

	mask         int
	resetPattern string
	resetPoint   int
}

// New6Bit creates a Polycounter with a six bit count (0-63).
func New6Bit() *Polycounter {
	return &Polycounter{mask: 0b111111}
}

// SetResetPattern records the bit pattern (written as a string of '0'/'1'
// characters, most significant bit first) that the real hardware's tapped
// shift register would show at the moment of reset. It has no effect on
// Tick() itself, which always counts linearly; it exists so that
// String() output and test fixtures can be written against the
// pattern actually documented for the chip being modelled.
func (p *Polycounter) SetResetPattern(pattern string) {
	p.resetPattern = pattern
}

// SetResetPoint records the count value that RSYNC-style synchronisation
// treats as "the reset point" of this counter, for use by Sync.
func (p *Polycounter) SetResetPoint(count int) {
	p.resetPoint = count
}

// Tick advances the counter by one phase. It returns true on the tick that
// wraps the count back to zero, ie. once every (mask+1)*4 ticks.
func (p *Polycounter) Tick() bool {
	p.Phase++
	if p.Phase > 3 {
		p.Phase = 0
		p.Count++
		if p.Count > p.mask {
			p.Count = 0
			return true
		}
	}
	return false
}

// Reset sets the counter back to count zero, phase zero.
func (p *Polycounter) Reset() {
	p.Count = 0
	p.Phase = 0
}

// Sync replicates the real hardware's RSYNC quirk: writing RSYNC does not
// reset the counter immediately. If offset is zero or negative the reset
// strobe arrived at or before reference's own natural reset point, and this
// counter is simply restarted and fast-forwarded by -offset ticks. If
// offset is positive the strobe arrived offset ticks after reference's
// reset point had already passed, and hardware instead arranges for the
// *next* reset to land on schedule, which this counter models by placing
// itself offset ticks short of reference's next expected reset point.
func (p *Polycounter) Sync(reference *Polycounter, offset int) {
	if offset <= 0 {
		v := -offset
		p.Count = v / 4
		p.Phase = v % 4
		return
	}
	total := (reference.resetPoint+1)*4 - offset
	p.Count = total / 4
	p.Phase = total % 4
}

// MachineInfoTerse returns a compact "count@phase" representation.
func (p *Polycounter) MachineInfoTerse() string {
	return fmt.Sprintf("%d@%d", p.Count, p.Phase)
}

// String returns a verbose description.
func (p *Polycounter) String() string {
	return fmt.Sprintf("count=%d phase=%d pattern=%s", p.Count, p.Phase, p.resetPattern)
}
