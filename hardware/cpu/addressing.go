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

import (
	"github.com/bl-nero/steampunk-sub000/hardware/cpu/execution"
	"github.com/bl-nero/steampunk-sub000/hardware/cpu/instructions"
)

func (c *CPU) effectiveAddress() uint16 {
	return uint16(c.adh)<<8 | uint16(c.adl)
}

// buildSteps decodes defn's addressing mode and category into the queue of
// micro-steps that complete the instruction, not including the opcode fetch
// cycle that has already happened.
func (c *CPU) buildSteps(defn instructions.Definition) []microstep {
	switch defn.AddressingMode {
	case instructions.Implied:
		return c.buildImplied(defn)
	case instructions.Accumulator:
		return []microstep{
			func(c *CPU) error {
				_, err := c.read(c.PC.Value())
				if err != nil {
					return err
				}
				c.executeAccumulatorRMW(defn.Operator)
				return nil
			},
		}
	case instructions.Immediate:
		return []microstep{
			func(c *CPU) error {
				v, err := c.read(c.PC.Value())
				if err != nil {
					return err
				}
				c.PC.Add(1)
				c.executeRead(defn.Operator, v)
				return nil
			},
		}
	case instructions.Relative:
		return c.buildBranch(defn)
	case instructions.ZeroPage:
		return c.buildZeroPage(defn)
	case instructions.ZeroPageIndexedX:
		return c.buildZeroPageIndexed(defn, &c.X)
	case instructions.ZeroPageIndexedY:
		return c.buildZeroPageIndexed(defn, &c.Y)
	case instructions.Absolute:
		return c.buildAbsolute(defn)
	case instructions.AbsoluteIndexedX:
		return c.buildAbsoluteIndexed(defn, &c.X)
	case instructions.AbsoluteIndexedY:
		return c.buildAbsoluteIndexed(defn, &c.Y)
	case instructions.Indirect:
		return c.buildIndirectJMP(defn)
	case instructions.IndexedIndirect:
		return c.buildIndexedIndirect(defn)
	case instructions.IndirectIndexed:
		return c.buildIndirectIndexed(defn)
	}
	return nil
}

func (c *CPU) buildImplied(defn instructions.Definition) []microstep {
	dummyFetch := func(c *CPU) error {
		_, err := c.read(c.PC.Value())
		return err
	}

	switch defn.Category {
	case instructions.Implicit:
		return []microstep{
			func(c *CPU) error {
				if err := dummyFetch(c); err != nil {
					return err
				}
				c.executeImplicit(defn.Operator)
				return nil
			},
		}
	case instructions.Stack:
		switch defn.Operator {
		case instructions.PHA, instructions.PHP:
			return []microstep{
				dummyFetch,
				func(c *CPU) error {
					if defn.Operator == instructions.PHA {
						return c.pushStack(c.A.Value())
					}
					sr := c.Status
					sr.Break = true
					return c.pushStack(sr.Value())
				},
			}
		default: // PLA, PLP
			return []microstep{
				dummyFetch,
				func(c *CPU) error {
					_, err := c.read(c.SP.Address())
					return err
				},
				func(c *CPU) error {
					v, err := c.pullStack()
					if err != nil {
						return err
					}
					if defn.Operator == instructions.PLA {
						c.A.Load(v)
						c.setNZ(v)
					} else {
						c.Status.Load(v)
					}
					return nil
				},
			}
		}
	case instructions.Return:
		if defn.Operator == instructions.RTS {
			return []microstep{
				dummyFetch,
				func(c *CPU) error { _, err := c.read(c.SP.Address()); return err },
				func(c *CPU) error {
					v, err := c.pullStack()
					c.bal = v
					return err
				},
				func(c *CPU) error {
					v, err := c.pullStack()
					if err != nil {
						return err
					}
					c.PC.Load(uint16(v)<<8 | uint16(c.bal))
					return nil
				},
				func(c *CPU) error {
					_, err := c.read(c.PC.Value())
					c.PC.Add(1)
					return err
				},
			}
		}
		// RTI
		return []microstep{
			dummyFetch,
			func(c *CPU) error { _, err := c.read(c.SP.Address()); return err },
			func(c *CPU) error {
				v, err := c.pullStack()
				if err != nil {
					return err
				}
				c.Status.Load(v)
				return nil
			},
			func(c *CPU) error {
				v, err := c.pullStack()
				c.bal = v
				return err
			},
			func(c *CPU) error {
				v, err := c.pullStack()
				if err != nil {
					return err
				}
				c.PC.Load(uint16(v)<<8 | uint16(c.bal))
				return nil
			},
		}
	}
	return nil
}

// buildBranch implements the 2/3/4 cycle relative branch timing: taken-ness
// is resolved on the first cycle, the page-crossing fixup (if needed) on the
// third, both via dynamic truncation of the step queue.
func (c *CPU) buildBranch(defn instructions.Definition) []microstep {
	return []microstep{
		func(c *CPU) error {
			offset, err := c.read(c.PC.Value())
			if err != nil {
				return err
			}
			c.PC.Add(1)
			c.bal = offset
			c.branchSuccess = c.branchTaken(defn.Operator)
			if !c.branchSuccess {
				c.steps = c.steps[:c.step]
			}
			return nil
		},
		func(c *CPU) error {
			if _, err := c.read(c.PC.Value()); err != nil {
				return err
			}

			base := c.PC.Value()
			low := uint16(uint8(base)) + uint16(c.bal)
			c.pageCrossed = low > 0xff
			c.adh = uint8(base >> 8)
			c.adl = uint8(low)
			c.PC.Load(uint16(c.adh)<<8 | uint16(c.adl))

			if !c.pageCrossed {
				c.steps = c.steps[:c.step]
			}
			return nil
		},
		func(c *CPU) error {
			hi := c.adh
			if int8(c.bal) < 0 {
				hi--
			} else {
				hi++
			}
			c.PC.Load(uint16(hi)<<8 | uint16(c.adl))
			return nil
		},
	}
}

func (c *CPU) buildZeroPage(defn instructions.Definition) []microstep {
	fetchAddr := func(c *CPU) error {
		addr, err := c.read(c.PC.Value())
		if err != nil {
			return err
		}
		c.PC.Add(1)
		c.adl = addr
		c.adh = 0
		return nil
	}

	switch defn.Category {
	case instructions.Write:
		return []microstep{
			fetchAddr,
			func(c *CPU) error { return c.write(c.effectiveAddress(), c.writeValue(defn.Operator)) },
		}
	case instructions.ReadModifyWrite:
		return []microstep{
			fetchAddr,
			func(c *CPU) error {
				v, err := c.read(c.effectiveAddress())
				c.bal = v
				return err
			},
			func(c *CPU) error { return c.write(c.effectiveAddress(), c.bal) },
			func(c *CPU) error {
				nv := c.executeRMW(defn.Operator, c.bal)
				return c.write(c.effectiveAddress(), nv)
			},
		}
	default: // Read
		return []microstep{
			fetchAddr,
			func(c *CPU) error {
				v, err := c.read(c.effectiveAddress())
				if err != nil {
					return err
				}
				c.executeRead(defn.Operator, v)
				return nil
			},
		}
	}
}

type indexReg interface {
	Value() uint8
}

func (c *CPU) buildZeroPageIndexed(defn instructions.Definition, idx indexReg) []microstep {
	fetchBase := func(c *CPU) error {
		addr, err := c.read(c.PC.Value())
		if err != nil {
			return err
		}
		c.PC.Add(1)
		c.bal = addr
		return nil
	}
	applyIndex := func(c *CPU) error {
		_, err := c.read(uint16(c.bal))
		c.adl = c.bal + idx.Value()
		c.adh = 0
		return err
	}

	switch defn.Category {
	case instructions.Write:
		return []microstep{
			fetchBase,
			applyIndex,
			func(c *CPU) error { return c.write(c.effectiveAddress(), c.writeValue(defn.Operator)) },
		}
	case instructions.ReadModifyWrite:
		return []microstep{
			fetchBase,
			applyIndex,
			func(c *CPU) error {
				v, err := c.read(c.effectiveAddress())
				c.bah = v // reuse bah as data scratch here
				return err
			},
			func(c *CPU) error { return c.write(c.effectiveAddress(), c.bah) },
			func(c *CPU) error {
				nv := c.executeRMW(defn.Operator, c.bah)
				return c.write(c.effectiveAddress(), nv)
			},
		}
	default:
		return []microstep{
			fetchBase,
			applyIndex,
			func(c *CPU) error {
				v, err := c.read(c.effectiveAddress())
				if err != nil {
					return err
				}
				c.executeRead(defn.Operator, v)
				return nil
			},
		}
	}
}

func (c *CPU) buildAbsolute(defn instructions.Definition) []microstep {
	fetchAddr := []microstep{
		func(c *CPU) error {
			v, err := c.read(c.PC.Value())
			if err != nil {
				return err
			}
			c.PC.Add(1)
			c.adl = v
			return nil
		},
		func(c *CPU) error {
			v, err := c.read(c.PC.Value())
			if err != nil {
				return err
			}
			c.PC.Add(1)
			c.adh = v
			return nil
		},
	}

	switch defn.Category {
	case instructions.Jump:
		fetchAddr[1] = func(c *CPU) error {
			v, err := c.read(c.PC.Value())
			if err != nil {
				return err
			}
			c.adh = v
			c.PC.Load(c.effectiveAddress())
			return nil
		}
		return fetchAddr
	case instructions.Subroutine:
		return []microstep{
			fetchAddr[0],
			func(c *CPU) error { _, err := c.read(c.SP.Address()); return err },
			func(c *CPU) error { return c.pushStack(uint8(c.PC.Value() >> 8)) },
			func(c *CPU) error { return c.pushStack(uint8(c.PC.Value() & 0xff)) },
			func(c *CPU) error {
				v, err := c.read(c.PC.Value())
				if err != nil {
					return err
				}
				c.adh = v
				c.PC.Load(c.effectiveAddress())
				return nil
			},
		}
	case instructions.Write:
		return append(fetchAddr, func(c *CPU) error {
			return c.write(c.effectiveAddress(), c.writeValue(defn.Operator))
		})
	case instructions.ReadModifyWrite:
		return append(fetchAddr,
			func(c *CPU) error {
				v, err := c.read(c.effectiveAddress())
				c.bal = v
				return err
			},
			func(c *CPU) error { return c.write(c.effectiveAddress(), c.bal) },
			func(c *CPU) error {
				nv := c.executeRMW(defn.Operator, c.bal)
				return c.write(c.effectiveAddress(), nv)
			},
		)
	default: // Read
		return append(fetchAddr, func(c *CPU) error {
			v, err := c.read(c.effectiveAddress())
			if err != nil {
				return err
			}
			c.executeRead(defn.Operator, v)
			return nil
		})
	}
}

// buildIndirectJMP implements JMP (ind), including the famous page-wrap
// bug: if the pointer's low byte is $FF, the high byte is fetched from the
// start of the same page rather than the start of the next one.
func (c *CPU) buildIndirectJMP(defn instructions.Definition) []microstep {
	return []microstep{
		func(c *CPU) error {
			v, err := c.read(c.PC.Value())
			if err != nil {
				return err
			}
			c.PC.Add(1)
			c.bal = v
			return nil
		},
		func(c *CPU) error {
			v, err := c.read(c.PC.Value())
			if err != nil {
				return err
			}
			c.PC.Add(1)
			c.bah = v
			return nil
		},
		func(c *CPU) error {
			v, err := c.read(uint16(c.bah)<<8 | uint16(c.bal))
			if err != nil {
				return err
			}
			c.adl = v
			return nil
		},
		func(c *CPU) error {
			hiAddr := uint16(c.bah)<<8 | uint16(c.bal+1) // wraps within the page on purpose
			v, err := c.read(hiAddr)
			if err != nil {
				return err
			}
			if c.bal == 0xff {
				c.LastResult.CPUBug = string(execution.JmpIndirectAddressingBug)
			}
			c.adh = v
			c.PC.Load(c.effectiveAddress())
			return nil
		},
	}
}

func (c *CPU) buildAbsoluteIndexed(defn instructions.Definition, idx indexReg) []microstep {
	computeUncorrected := func(c *CPU) error {
		v, err := c.read(c.PC.Value())
		if err != nil {
			return err
		}
		c.PC.Add(1)
		c.bal = v
		return nil
	}
	computeHigh := func(c *CPU) error {
		v, err := c.read(c.PC.Value())
		if err != nil {
			return err
		}
		c.PC.Add(1)
		c.bah = v
		low := uint16(c.bal) + uint16(idx.Value())
		c.pageCrossed = low > 0xff
		c.adl = uint8(low)
		c.adh = c.bah
		return nil
	}
	correct := func(c *CPU) {
		if c.pageCrossed {
			c.adh++
		}
	}

	switch defn.Category {
	case instructions.Write:
		return []microstep{
			computeUncorrected,
			computeHigh,
			func(c *CPU) error { _, err := c.read(c.effectiveAddress()); return err },
			func(c *CPU) error {
				correct(c)
				return c.write(c.effectiveAddress(), c.writeValue(defn.Operator))
			},
		}
	case instructions.ReadModifyWrite:
		return []microstep{
			computeUncorrected,
			computeHigh,
			func(c *CPU) error { _, err := c.read(c.effectiveAddress()); return err },
			func(c *CPU) error {
				correct(c)
				v, err := c.read(c.effectiveAddress())
				c.bal = v
				return err
			},
			func(c *CPU) error { return c.write(c.effectiveAddress(), c.bal) },
			func(c *CPU) error {
				nv := c.executeRMW(defn.Operator, c.bal)
				return c.write(c.effectiveAddress(), nv)
			},
		}
	default: // Read, page-sensitive
		return []microstep{
			computeUncorrected,
			computeHigh,
			func(c *CPU) error {
				v, err := c.read(c.effectiveAddress())
				if err != nil {
					return err
				}
				if !c.pageCrossed {
					c.executeRead(defn.Operator, v)
					c.steps = c.steps[:c.step]
				}
				return nil
			},
			func(c *CPU) error {
				correct(c)
				v, err := c.read(c.effectiveAddress())
				if err != nil {
					return err
				}
				c.executeRead(defn.Operator, v)
				return nil
			},
		}
	}
}

func (c *CPU) buildIndexedIndirect(defn instructions.Definition) []microstep {
	steps := []microstep{
		func(c *CPU) error {
			v, err := c.read(c.PC.Value())
			if err != nil {
				return err
			}
			c.PC.Add(1)
			c.bal = v
			return nil
		},
		func(c *CPU) error {
			_, err := c.read(uint16(c.bal))
			c.bal += c.X.Value()
			return err
		},
		func(c *CPU) error {
			v, err := c.read(uint16(c.bal))
			if err != nil {
				return err
			}
			c.adl = v
			return nil
		},
		func(c *CPU) error {
			v, err := c.read(uint16(c.bal + 1))
			if err != nil {
				return err
			}
			c.adh = v
			return nil
		},
	}

	switch defn.Category {
	case instructions.Write:
		return append(steps, func(c *CPU) error {
			return c.write(c.effectiveAddress(), c.writeValue(defn.Operator))
		})
	default: // Read
		return append(steps, func(c *CPU) error {
			v, err := c.read(c.effectiveAddress())
			if err != nil {
				return err
			}
			c.executeRead(defn.Operator, v)
			return nil
		})
	}
}

func (c *CPU) buildIndirectIndexed(defn instructions.Definition) []microstep {
	fetchPointer := []microstep{
		func(c *CPU) error {
			v, err := c.read(c.PC.Value())
			if err != nil {
				return err
			}
			c.PC.Add(1)
			c.bal = v
			return nil
		},
		func(c *CPU) error {
			v, err := c.read(uint16(c.bal))
			if err != nil {
				return err
			}
			c.adl = v // pointer low byte, temporarily
			return nil
		},
		func(c *CPU) error {
			v, err := c.read(uint16(c.bal + 1))
			if err != nil {
				return err
			}
			c.bah = v // pointer high byte
			low := uint16(c.adl) + uint16(c.Y.Value())
			c.pageCrossed = low > 0xff
			c.adl = uint8(low)
			c.adh = c.bah
			return nil
		},
	}
	correct := func(c *CPU) {
		if c.pageCrossed {
			c.adh++
		}
	}

	switch defn.Category {
	case instructions.Write:
		return append(fetchPointer,
			func(c *CPU) error { _, err := c.read(c.effectiveAddress()); return err },
			func(c *CPU) error {
				correct(c)
				return c.write(c.effectiveAddress(), c.writeValue(defn.Operator))
			},
		)
	default: // Read, page-sensitive
		return append(fetchPointer,
			func(c *CPU) error {
				v, err := c.read(c.effectiveAddress())
				if err != nil {
					return err
				}
				if !c.pageCrossed {
					c.executeRead(defn.Operator, v)
					c.steps = c.steps[:c.step]
				}
				return nil
			},
			func(c *CPU) error {
				correct(c)
				v, err := c.read(c.effectiveAddress())
				if err != nil {
					return err
				}
				c.executeRead(defn.Operator, v)
				return nil
			},
		)
	}
}
