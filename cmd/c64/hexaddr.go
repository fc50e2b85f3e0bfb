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

package main

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// parseHexAddress accepts DAP's "0x1234" memory reference form.
func parseHexAddress(ref string) (uint16, error) {
	var addr uint16
	ref = strings.TrimPrefix(ref, "0x")
	ref = strings.TrimPrefix(ref, "$")
	_, err := fmt.Sscanf(ref, "%x", &addr)
	return addr, err
}

func base64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
