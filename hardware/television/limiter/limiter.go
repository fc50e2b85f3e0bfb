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

// Package limiter paces the driver loop to the host's wall clock so that
// emulation doesn't run faster than the real machine's refresh rate, and
// reports the rate actually being achieved so the UI can show it.
package limiter

import (
	"sync/atomic"
	"time"
)

// measureWindow is how often Measured is refreshed.
const measureWindow = 250 * time.Millisecond

// Limiter throttles CheckFrame() calls to a target frames-per-second and
// tracks the frame rate actually achieved.
type Limiter struct {
	// Measured holds the most recently measured frame rate, as a float32.
	Measured atomic.Value

	refreshRate   float32
	frameDuration time.Duration

	nextFrame time.Time

	windowStart time.Time
	windowCount int
}

// NewLimiter creates a Limiter with no rate limiting until SetRefreshRate is
// called.
func NewLimiter() *Limiter {
	l := &Limiter{}
	l.Measured.Store(float32(0))
	now := time.Now()
	l.nextFrame = now
	l.windowStart = now
	return l
}

// SetRefreshRate changes the target frame rate and resets measurement.
func (l *Limiter) SetRefreshRate(hz float32) {
	l.refreshRate = hz
	if hz > 0 {
		l.frameDuration = time.Duration(float64(time.Second) / float64(hz))
	} else {
		l.frameDuration = 0
	}
	now := time.Now()
	l.nextFrame = now.Add(l.frameDuration)
	l.windowStart = now
	l.windowCount = 0
}

// CheckFrame blocks, if necessary, until it is time for the next frame.
func (l *Limiter) CheckFrame() {
	if l.frameDuration <= 0 {
		return
	}
	now := time.Now()
	if wait := l.nextFrame.Sub(now); wait > 0 {
		time.Sleep(wait)
		l.nextFrame = l.nextFrame.Add(l.frameDuration)
	} else {
		// running behind; don't try to catch up indefinitely
		l.nextFrame = now.Add(l.frameDuration)
	}
}

// MeasureActual records that a frame has completed and periodically
// refreshes Measured with the frame rate achieved over the last window.
func (l *Limiter) MeasureActual() {
	l.windowCount++
	now := time.Now()
	elapsed := now.Sub(l.windowStart)
	if elapsed >= measureWindow {
		rate := float32(float64(l.windowCount) / elapsed.Seconds())
		l.Measured.Store(rate)
		l.windowStart = now
		l.windowCount = 0
	}
}
