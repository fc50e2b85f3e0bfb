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

// Package preferences collects the disk-backed preference groups used by
// both emulated machines, built on top of the generic prefs package.
package preferences

import (
	"github.com/bl-nero/steampunk-sub000/hardware/television/specification"
	"github.com/bl-nero/steampunk-sub000/prefs"
	"github.com/bl-nero/steampunk-sub000/resources"
)

// RandomPrefs groups the startup entropy source preference shared by both
// machines (see the design note on "abstract startup entropy source").
type RandomPrefs struct {
	ZeroSeed prefs.Bool
}

func (p *RandomPrefs) SetDefaults() {
	_ = p.ZeroSeed.Set(false)
}

// AtariPrefs groups Atari 2600 specific preferences.
type AtariPrefs struct {
	TVSpec prefs.String
}

func (p *AtariPrefs) SetDefaults() {
	_ = p.TVSpec.Set(specification.SpecNTSC.ID)
}

// C64Prefs groups Commodore 64 specific preferences.
type C64Prefs struct {
	TVSpec prefs.String
}

func (p *C64Prefs) SetDefaults() {
	_ = p.TVSpec.Set(specification.SpecPAL.ID)
}

// Preferences is the root of the preferences tree, backed by a single file
// on disk.
type Preferences struct {
	dsk *prefs.Disk

	Random RandomPrefs
	Atari  AtariPrefs
	C64    C64Prefs
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Existing preference values are loaded from disk if a
// preferences file already exists.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath("prefs")
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("random.zeroseed", &p.Random.ZeroSeed); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("atari.tv.spec", &p.Atari.TVSpec); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("c64.tv.spec", &p.C64.TVSpec); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults resets every preference group to its default value.
func (p *Preferences) SetDefaults() {
	p.Random.SetDefaults()
	p.Atari.SetDefaults()
	p.C64.SetDefaults()
}

// Save writes the current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Load re-reads preference values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}
