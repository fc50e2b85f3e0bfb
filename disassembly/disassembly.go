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

package disassembly

import "fmt"

// Forward disassembles data from start to end, unambiguously: each entry's
// address is exactly the previous entry's address plus its byte count, so
// there is never a choice to make about where an instruction begins. origin
// is the address of data[0].
func Forward(data []byte, origin uint16) []Entry {
	entries := make([]Entry, 0, len(data)/2)

	offset := 0
	for offset < len(data) {
		e, n := decodeOne(data, offset, origin+uint16(offset))
		entries = append(entries, e)
		offset += n
	}

	return entries
}

// chainBacklog bounds how far before target SeekOrigin will look for a
// candidate chain start. 64 gives comfortable headroom over the longest
// realistic run of 3-byte instructions that could still land exactly on
// target.
const chainBacklog = 64

// SeekOrigin resolves the ambiguity inherent in disassembling backward from
// an arbitrary address: any of the chainBacklog preceding addresses might be
// a legitimate instruction start whose forward decode lands exactly on
// target. SeekOrigin tries each one, discards any chain that would need
// bytes before origin, and returns the chain (inclusive of the entry at
// target) belonging to whichever start produces the fewest IsData entries -
// ties broken in favour of the longer (further back) chain.
func SeekOrigin(data []byte, origin, target uint16) ([]Entry, error) {
	if target < origin || int(target-origin) >= len(data) {
		return nil, fmt.Errorf("disassembly: address $%04x is out of range", target)
	}

	earliest := origin
	if target-origin > chainBacklog {
		earliest = target - chainBacklog
	}

	var best []Entry
	bestUnknown := -1

	for start := earliest; start <= target; start++ {
		chain, ok := chainTo(data, origin, start, target)
		if !ok {
			continue
		}

		unknown := 0
		for _, e := range chain {
			if e.IsData {
				unknown++
			}
		}

		if bestUnknown == -1 || unknown < bestUnknown || (unknown == bestUnknown && len(chain) > len(best)) {
			best = chain
			bestUnknown = unknown
		}
	}

	if best == nil {
		// target itself is always a valid chain of one entry.
		e, _ := decodeOne(data, int(target-origin), target)
		return []Entry{e}, nil
	}

	return best, nil
}

// chainTo decodes forward from start and reports whether the resulting
// chain of instructions lands exactly on target, neither overshooting it
// nor crossing the origin boundary.
func chainTo(data []byte, origin, start, target uint16) ([]Entry, bool) {
	if start < origin {
		return nil, false
	}

	var chain []Entry
	addr := start
	for {
		e, n := decodeOne(data, int(addr-origin), addr)
		chain = append(chain, e)

		if addr == target {
			return chain, true
		}

		next := addr + uint16(n)
		if next > target {
			// this instruction's bytes straddle target: target is not a
			// valid instruction boundary under this chain.
			return nil, false
		}
		addr = next
	}
}
