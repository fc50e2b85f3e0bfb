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

// Package television turns the raw colour-clock/scanline stream produced by
// the TIA or the VIC-II into a fixed-size RGBA frame image, and tells the
// rest of the emulation when a frame has completed.
//
// The chip doesn't know where the visible picture starts and ends; it just
// reports every (x, y, colour) triple it produces, blanking included. The
// television clips that stream to a Viewport and fires once per frame, at
// the transition from inside the viewport to outside it (vertical
// blanking) - there is no separate vsync signal to watch for.
package television

import (
	"fmt"
	"image"
	"sync"

	"github.com/bl-nero/steampunk-sub000/hardware/television/coords"
	"github.com/bl-nero/steampunk-sub000/hardware/television/frameinfo"
	"github.com/bl-nero/steampunk-sub000/hardware/television/specification"
)

// Viewport is a rectangle in the chip's raw coordinate space. Left and Top
// are inclusive, Right and Bottom are exclusive.
type Viewport struct {
	Left, Top, Right, Bottom int
}

// Width and Height of the viewport in pixels.
func (v Viewport) Width() int  { return v.Right - v.Left }
func (v Viewport) Height() int { return v.Bottom - v.Top }

func (v Viewport) contains(x, y int) bool {
	return x >= v.Left && x < v.Right && y >= v.Top && y < v.Bottom
}

// SignalAttributes is one (x, y, colour) sample produced by a chip tick.
type SignalAttributes struct {
	X, Y             int
	Red, Green, Blue uint8
}

// FrameTrigger is notified once a frame has completed.
type FrameTrigger interface {
	NewFrame(frameinfo.Current) error
}

// PixelRenderer additionally wants every pixel as it's produced, not just
// the end-of-frame notification. The television itself satisfies this so
// that tests can read back the frame image directly.
type PixelRenderer interface {
	FrameTrigger
	SetPixel(x, y int, red, green, blue uint8) error
}

// Television accumulates the chip's raw signal into a frame image and
// reports completed frames to whoever is watching.
type Television struct {
	mu sync.Mutex

	spec     specification.Spec
	viewport Viewport
	coords   coords.TelevisionCoords

	image     *image.RGBA
	wasInside bool
	stable    int

	triggers []FrameTrigger
}

// stableAfter is the number of consecutive frames a fixed viewport is
// assumed to need before frameinfo.Current.Stable is reported true.
const stableAfter = 1

// NewTelevision is the preferred method of initialisation for the
// Television type. specID is "NTSC", "PAL", "AUTO" or "" (same as "AUTO").
func NewTelevision(specID string) (*Television, error) {
	spec, ok := specification.ByID(specID)
	if !ok {
		return nil, fmt.Errorf("television: unrecognised specification %q", specID)
	}

	tv := &Television{spec: spec}
	tv.coords.Frame = 0

	return tv, nil
}

// SetViewport defines the rectangle of the raw coordinate space that
// constitutes the visible picture, (re)allocating the frame image to
// match.
func (tv *Television) SetViewport(v Viewport) {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	tv.viewport = v
	tv.image = image.NewRGBA(image.Rect(0, 0, v.Width(), v.Height()))
	tv.stable = 0
}

// Spec returns the television timing standard currently in effect.
func (tv *Television) Spec() specification.Spec {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return tv.spec
}

// GetCoords implements random.TelevisionCoords and input.TV.
func (tv *Television) GetCoords() coords.TelevisionCoords {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return tv.coords
}

// AddFrameTrigger registers t to be notified at the end of every frame.
func (tv *Television) AddFrameTrigger(t FrameTrigger) {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	tv.triggers = append(tv.triggers, t)
}

// RemoveFrameTrigger unregisters t, if present.
func (tv *Television) RemoveFrameTrigger(t FrameTrigger) {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	for i, o := range tv.triggers {
		if o == t {
			tv.triggers = append(tv.triggers[:i], tv.triggers[i+1:]...)
			return
		}
	}
}

// SetPixel implements PixelRenderer by writing directly into the frame
// image, ignoring the viewport test Consume otherwise performs. Used by
// tests that want to inspect the image without driving a full signal
// stream.
func (tv *Television) SetPixel(x, y int, red, green, blue uint8) error {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	if tv.image == nil {
		return fmt.Errorf("television: no viewport set")
	}
	tv.image.Set(x-tv.viewport.Left, y-tv.viewport.Top, rgba{red, green, blue})
	return nil
}

// Consume accepts one raw signal sample from the chip. It returns true
// exactly once per frame, at the transition from inside the viewport to
// outside it.
func (tv *Television) Consume(sig SignalAttributes) (bool, error) {
	tv.mu.Lock()

	tv.coords.Scanline = sig.Y
	tv.coords.Clock = sig.X

	inside := tv.viewport.contains(sig.X, sig.Y)
	if inside && tv.image != nil {
		tv.image.Set(sig.X-tv.viewport.Left, sig.Y-tv.viewport.Top, rgba{sig.Red, sig.Green, sig.Blue})
	}

	endOfFrame := tv.wasInside && !inside
	tv.wasInside = inside

	if !endOfFrame {
		tv.mu.Unlock()
		return false, nil
	}

	tv.coords.Frame++
	tv.coords.Scanline = 0
	tv.coords.Clock = 0
	if tv.stable < stableAfter {
		tv.stable++
	}

	info := frameinfo.Current{
		FrameNum: tv.coords.Frame - 1,
		Spec:     tv.spec,
		Stable:   tv.stable >= stableAfter,
	}
	triggers := make([]FrameTrigger, len(tv.triggers))
	copy(triggers, tv.triggers)
	tv.mu.Unlock()

	for _, t := range triggers {
		if err := t.NewFrame(info); err != nil {
			return true, err
		}
	}

	return true, nil
}

// Image returns the current frame image. The caller must not mutate it.
func (tv *Television) Image() *image.RGBA {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return tv.image
}

// rgba satisfies color.Color with no alpha premultiplication surprises,
// used instead of color.RGBA directly so a zero value is fully opaque
// black rather than fully transparent.
type rgba struct {
	r, g, b uint8
}

func (c rgba) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r) * 0x101
	g = uint32(c.g) * 0x101
	b = uint32(c.b) * 0x101
	a = 0xffff
	return
}
