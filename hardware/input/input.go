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

package input

import (
	"github.com/bl-nero/steampunk-sub000/hardware/riot/ports"
	"github.com/bl-nero/steampunk-sub000/hardware/riot/ports/plugging"
	"github.com/bl-nero/steampunk-sub000/hardware/television"
	"github.com/bl-nero/steampunk-sub000/hardware/television/coords"
	"github.com/bl-nero/steampunk-sub000/hardware/television/frameinfo"
)

// TV defines the television functions required by the Input system.
type TV interface {
	GetCoords() coords.TelevisionCoords
	AddFrameTrigger(television.FrameTrigger)
	RemoveFrameTrigger(television.FrameTrigger)
}

// Input handles input into the VCS: events handled immediately and events
// pushed from outside the emulation goroutine, both forwarded to the RIOT
// ports.
type Input struct {
	tv    TV
	ports *ports.Ports

	// events pushed onto the input queue, drained once per frame
	pushed chan ports.InputEvent
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(tv TV, p *ports.Ports) *Input {
	inp := &Input{
		tv:     tv,
		ports:  p,
		pushed: make(chan ports.InputEvent, 64),
	}
	inp.tv.AddFrameTrigger(inp)
	return inp
}

// Plumb a new ports instance into the Input.
func (inp *Input) Plumb(tv TV, ports *ports.Ports) {
	inp.tv = tv
	inp.ports = ports
	inp.tv.AddFrameTrigger(inp)
}

// PeripheralID forwards a request of the PeripheralID of the PortID to VCS Ports.
func (inp *Input) PeripheralID(id plugging.PortID) plugging.PeripheralID {
	return inp.ports.PeripheralID(id)
}

// HandleInputEvent forwards an input event to the VCS Ports.
func (inp *Input) HandleInputEvent(ev ports.InputEvent) (bool, error) {
	return inp.ports.HandleInputEvent(ev)
}

// NewFrame implements television.FrameTrigger. See pushed.go for the queue
// it drains.
func (inp *Input) NewFrame(_ frameinfo.Current) error {
	return inp.handlePushed()
}
