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

// Package soundcompare is a regression-test harness: it decodes a
// reference .mp3 narration of expected audio for a test ROM and compares
// it sample-for-sample against the emulator's live audio stream, the
// audio analog of the teacher's video digest comparison.
package soundcompare

import (
	"encoding/binary"
	"io"

	"github.com/bl-nero/steampunk-sub000/errors"
	"github.com/hajimehoshi/go-mp3"
)

// Reference is a decoded mp3 narration, one sample per output channel,
// interleaved, at the decoder's native sample rate.
type Reference struct {
	SampleRate int
	Samples    []int16
}

// LoadReference decodes an entire mp3 stream into memory. Test ROM
// narrations are short (seconds, not minutes), so loading the whole thing
// up front keeps the comparison loop simple.
func LoadReference(r io.Reader) (Reference, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Reference{}, errors.Errorf(errors.AudioDigest, err)
	}

	var samples []int16
	buf := make([]byte, 4096)
	for {
		n, err := dec.Read(buf)
		for i := 0; i+1 < n; i += 2 {
			samples = append(samples, int16(binary.LittleEndian.Uint16(buf[i:i+2])))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Reference{}, errors.Errorf(errors.AudioDigest, err)
		}
		if n == 0 {
			break
		}
	}

	return Reference{SampleRate: dec.SampleRate(), Samples: samples}, nil
}

// Compare checks actual (mixed TIA samples in the range -1.0 to 1.0)
// against the reference's left channel, scaled to the same -1.0 to 1.0
// range, within tolerance. It returns the index of the first sample that
// differs by more than tolerance, or -1 if every sample compared matched.
// Comparison stops at the shorter of the two streams.
func Compare(reference Reference, actual []float32, tolerance float32) int {
	n := len(actual)
	// reference is interleaved stereo; take every other sample as the left
	// channel.
	refSamples := len(reference.Samples) / 2
	if refSamples < n {
		n = refSamples
	}

	for i := 0; i < n; i++ {
		ref := float32(reference.Samples[i*2]) / 32768
		if diff := ref - actual[i]; diff > tolerance || diff < -tolerance {
			return i
		}
	}

	return -1
}
