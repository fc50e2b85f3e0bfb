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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// WarningBoilerPlate is written as a comment block at the top of every
// saved preferences file.
const WarningBoilerPlate = "; This is an automatically generated file. Don't edit by hand.\n;\n; Any changes made to this file will be overwritten next time it is saved\n; by the main program."

const keyValueSep = " :: "

// Disk associates named Preference values with a single file on disk.
type Disk struct {
	path string

	mu         sync.Mutex
	registered map[string]Preference

	// raw values for keys this Disk instance doesn't manage itself, kept so
	// that Save doesn't lose them.
	other map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file at path need not already exist.
func NewDisk(path string) (*Disk, error) {
	d := &Disk{
		path:       path,
		registered: make(map[string]Preference),
		other:      make(map[string]string),
	}

	if err := d.readFile(d.other, nil); err != nil {
		return nil, err
	}

	return d, nil
}

// Add registers a Preference under key. It is an error to add the same key
// twice to the same Disk.
func (d *Disk) Add(key string, v Preference) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.registered[key]; ok {
		return fmt.Errorf("prefs: preference %q already added", key)
	}
	d.registered[key] = v
	return nil
}

// Save writes every registered Preference, plus any unrecognised raw
// entries carried over from the file, to disk sorted by key.
func (d *Disk) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	merged := make(map[string]string, len(d.registered)+len(d.other))
	for k, v := range d.other {
		merged[k] = v
	}
	for k, v := range d.registered {
		merged[k] = v.String()
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(d.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keyValueSep, merged[k])
	}

	return w.Flush()
}

// Load re-reads the file from disk, applying any value found for a
// registered key and keeping anything else as a raw entry.
func (d *Disk) Load() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readFile(d.other, d.registered)
}

// readFile parses the preferences file, sending matched keys to registered
// (if non-nil and the key is found there) and everything else to other. A
// missing file is not an error.
func (d *Disk) readFile(other map[string]string, registered map[string]Preference) error {
	f, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}

		idx := strings.Index(line, keyValueSep)
		if idx == -1 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := line[idx+len(keyValueSep):]

		if registered != nil {
			if pref, ok := registered[key]; ok {
				if err := pref.Set(value); err != nil {
					return fmt.Errorf("prefs: %w", err)
				}
				continue
			}
		}
		other[key] = value
	}

	return scanner.Err()
}
