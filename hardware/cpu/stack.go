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

package cpu

// pushStack writes value to the address the stack pointer currently points
// at and then decrements it, wrapping within page one.
func (c *CPU) pushStack(value uint8) error {
	if err := c.write(c.SP.Address(), value); err != nil {
		return err
	}
	c.SP.Load(c.SP.Value() - 1)
	return nil
}

// pullStack increments the stack pointer, wrapping within page one, and
// reads the value it now points at.
func (c *CPU) pullStack() (uint8, error) {
	c.SP.Load(c.SP.Value() + 1)
	return c.read(c.SP.Address())
}
