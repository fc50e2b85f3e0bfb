// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
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

package cartridgeloader

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/bl-nero/steampunk-sub000/hardware/television/specification"
	"github.com/bl-nero/steampunk-sub000/resources/fs"
)

// Loader abstracts all the ways data can be loaded into the emulation.
type Loader struct {
	io.ReadSeeker

	// the name to use for the cartridge represented by Loader
	Name string

	// filename of cartridge being loaded. In the case of embedded data, this
	// field will contain the name of the data provided to
	// NewLoaderFromData().
	Filename string

	// any detected TV spec in the filename. will be the empty string if
	// nothing is found. note that the empty string is treated like "AUTO" by
	// television.NewTelevision().
	TelevisionSpec string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. the value of HashSHA1 will
	// be checked on a call to Loader.Open(). if the string is empty then
	// that check passes.
	HashSHA1 string

	// HashMD5 is an alternative to HashSHA1.
	HashMD5 string

	// cartridge data. empty until Open() is called unless the loader was
	// created by NewLoaderFromData().
	//
	// the pointer-to-a-slice construct allows the cartridge to be
	// loaded/changed by a Loader instance that has been passed by value.
	Data *[]byte

	data *bytes.Buffer

	// whether the Loader was created with NewLoaderFromData()
	embedded bool
}

// NoFilename is the sentinel error returned when an empty filename is given.
var NoFilename = errors.New("no filename")

// NewLoaderFromFilename is the preferred method of initialisation for the
// Loader type when loading data from a filename.
//
// Filenames can contain whitespace, including leading and trailing
// whitespace, but cannot consist only of whitespace.
func NewLoaderFromFilename(filename string) (Loader, error) {
	if strings.TrimSpace(filename) == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", NoFilename)
	}

	filename, err := fs.Abs(filename)
	if err != nil {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", err)
	}

	ld := Loader{Filename: filename}

	data := make([]byte, 0)
	ld.Data = &data

	ld.TelevisionSpec = specification.SearchSpec(filename)
	ld.Name = decideOnName(ld)

	return ld, nil
}

// NewLoaderFromData is the preferred method of initialisation for the Loader
// type when loading data from a byte array. It's a great way of loading
// embedded data (using go:embed) into the emulator, or data received from a
// test fixture.
func NewLoaderFromData(name string, data []byte) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, fmt.Errorf("cartridgeloader: data is empty")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: no name for embedded data")
	}

	ld := Loader{
		Filename: name,
		Data:     &data,
		data:     bytes.NewBuffer(data),
		embedded: true,
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
		HashMD5:  fmt.Sprintf("%x", md5.Sum(data)),
	}

	ld.Name = decideOnName(ld)

	return ld, nil
}

// Close is a no-op, retained to satisfy io.Closer for callers that range
// over a list of loaders and defer Close() unconditionally.
func (ld Loader) Close() error {
	return nil
}

// Read implements io.Reader.
func (ld Loader) Read(p []byte) (int, error) {
	return ld.data.Read(p)
}

// Seek implements io.Seeker as a no-op for every loader: it always returns
// offset 0 and a nil error, and the read position does not move.
func (ld Loader) Seek(offset int64, whence int) (int64, error) {
	return 0, nil
}

// Open loads the cartridge data, either from the local filesystem or over
// HTTP(S), and verifies it against any expected hash.
func (ld *Loader) Open() error {
	if ld.embedded {
		return nil
	}

	if ld.Data != nil && len(*ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		defer resp.Body.Close()

		var err2 error
		*ld.Data, err2 = io.ReadAll(resp.Body)
		if err2 != nil {
			return fmt.Errorf("cartridgeloader: %w", err2)
		}

	default:
		f, err := os.Open(ld.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		defer f.Close()

		var err2 error
		*ld.Data, err2 = io.ReadAll(f)
		if err2 != nil {
			return fmt.Errorf("cartridgeloader: %w", err2)
		}
	}

	ld.data = bytes.NewBuffer(*ld.Data)

	hash := fmt.Sprintf("%x", sha1.Sum(*ld.Data))
	if ld.HashSHA1 != "" && ld.HashSHA1 != hash {
		return fmt.Errorf("cartridgeloader: unexpected SHA1 hash value")
	}
	ld.HashSHA1 = hash

	hash = fmt.Sprintf("%x", md5.Sum(*ld.Data))
	if ld.HashMD5 != "" && ld.HashMD5 != hash {
		return fmt.Errorf("cartridgeloader: unexpected MD5 hash value")
	}
	ld.HashMD5 = hash

	return nil
}
