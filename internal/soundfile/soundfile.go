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

// Package soundfile dumps the TIA's audio sample stream to a .wav file.
// It is a diagnostic sink only: the live audio path a real front end would
// drive is the excluded windowing/audio collaborator, not this package.
package soundfile

import (
	"io"

	"github.com/bl-nero/steampunk-sub000/errors"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// SampleRate is the TIA's audio sample rate: two samples per scanline at
// NTSC's 262 lines/frame, ~60 frames/sec.
const SampleRate = 31440

// chunkSamples batches writes to the underlying encoder rather than
// encoding one sample at a time.
const chunkSamples = 1024

// Writer accumulates mixed TIA samples and periodically flushes them to an
// underlying wav.Encoder as 16 bit mono PCM.
type Writer struct {
	enc *wav.Encoder
	buf []int

	closer io.Closer
}

// New creates a Writer that encodes to w. w is also closed by Close if it
// implements io.Closer, matching wav.NewEncoder's own expectation of an
// io.WriteSeeker such as an *os.File.
func New(w io.WriteSeeker) *Writer {
	sw := &Writer{
		enc: wav.NewEncoder(w, SampleRate, 16, 1, 1),
		buf: make([]int, 0, chunkSamples),
	}
	if c, ok := w.(io.Closer); ok {
		sw.closer = c
	}
	return sw
}

// WriteSample appends one mixed sample, in the range -1.0 to 1.0 as
// produced by tia.MixAudio, converting it to a signed 16 bit PCM value.
func (s *Writer) WriteSample(sample float32) error {
	if sample > 1 {
		sample = 1
	} else if sample < -1 {
		sample = -1
	}

	s.buf = append(s.buf, int(sample*32767))
	if len(s.buf) < chunkSamples {
		return nil
	}
	return s.flush()
}

func (s *Writer) flush() error {
	if len(s.buf) == 0 {
		return nil
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: SampleRate},
		Data:           s.buf,
		SourceBitDepth: 16,
	}
	if err := s.enc.Write(buf); err != nil {
		return errors.Errorf(errors.WavWriter, err)
	}

	s.buf = s.buf[:0]
	return nil
}

// Close flushes any buffered samples and finalises the wav file's header.
func (s *Writer) Close() error {
	if err := s.flush(); err != nil {
		return err
	}
	if err := s.enc.Close(); err != nil {
		return errors.Errorf(errors.WavWriter, err)
	}
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
