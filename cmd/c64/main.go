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

// Command c64 runs the Commodore 64 emulation core against an optional
// cartridge image and/or datasette tape, optionally serving a Debug
// Adapter Protocol session over TCP.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/bl-nero/steampunk-sub000/cartridgeloader"
	"github.com/bl-nero/steampunk-sub000/debugger"
	"github.com/bl-nero/steampunk-sub000/debugger/dap"
	"github.com/bl-nero/steampunk-sub000/disassembly"
	"github.com/bl-nero/steampunk-sub000/hardware"
	"github.com/bl-nero/steampunk-sub000/hardware/instance"
	"github.com/bl-nero/steampunk-sub000/hardware/television"
	"github.com/bl-nero/steampunk-sub000/internal/memviz"
	"github.com/bl-nero/steampunk-sub000/internal/statsview"
)

func main() {
	os.Exit(run())
}

func run() int {
	debuggerOn := flag.Bool("debugger", false, "enable the DAP debugger bridge")
	debuggerPort := flag.String("debugger-port", "127.0.0.1:25566", "DAP bridge listen address")
	cartridge := flag.String("cartridge", "", "Ultimax-mapped cartridge image to attach")
	tape := flag.String("tape", "", "TAP format datasette image to attach")
	graph := flag.String("graph", "", "write the machine's object graph as Graphviz dot to this file")
	statsAddr := flag.String("stats-addr", "", "serve a live runtime diagnostics page at this address")
	frames := flag.Int("frames", 0, "stop after this many frames (0: run until interrupted)")
	flag.Parse()

	tv, err := television.NewTelevision("PAL")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ins, err := instance.NewInstance(tv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	c64, err := hardware.NewC64(tv, ins)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *cartridge != "" {
		ld, err := cartridgeloader.NewLoaderFromFilename(*cartridge)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer ld.Close()
		if err := c64.AttachCartridge(ld); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if *tape != "" {
		data, err := os.ReadFile(*tape)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		tap, err := cartridgeloader.LoadTap(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		c64.AttachTape(tap)
	}

	if err := c64.Reset(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		memviz.Dump(f, c64)
		f.Close()
	}

	if *statsAddr != "" {
		srv := statsview.Start(*statsAddr)
		defer srv.Stop()
	}

	var core *debugger.Core
	var bridge *dap.Bridge
	if *debuggerOn {
		core = debugger.NewCore(c64)
		bridge = dap.NewBridge(core, c64.Log, c64Disassemble(c64), c64ReadMemory(c64))
		if err := bridge.Listen(*debuggerPort); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer bridge.Close()
		core.Resume()
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)

	frameCount := 0
	for {
		select {
		case <-interrupted:
			return 0
		default:
		}

		sig, err := c64.Tick()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		endOfFrame, err := tv.Consume(sig)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if endOfFrame {
			frameCount++
			if *frames > 0 && frameCount >= *frames {
				return 0
			}
		}

		if bridge != nil {
			bridge.Poll()
		}
	}
}

func c64Disassemble(c *hardware.C64) func(string, int, int) (dap.DisassembleBody, error) {
	return func(memRef string, instructionOffset, instructionCount int) (dap.DisassembleBody, error) {
		target, err := parseHexAddress(memRef)
		if err != nil {
			return dap.DisassembleBody{}, err
		}

		const window = 0x1000
		origin := target - window/2
		data := make([]byte, window)
		for i := range data {
			b, err := c.Peek(origin + uint16(i))
			if err != nil {
				return dap.DisassembleBody{}, err
			}
			data[i] = b
		}

		entries, err := disassembly.SeekOrigin(data, origin, target)
		if err != nil {
			return dap.DisassembleBody{}, err
		}

		start := instructionOffset
		if start < 0 {
			start = 0
		}
		end := start + instructionCount
		if end > len(entries) {
			end = len(entries)
		}
		if start > end {
			start = end
		}

		body := dap.DisassembleBody{}
		for _, e := range entries[start:end] {
			hex := ""
			for _, b := range e.Bytes {
				hex += fmt.Sprintf("%02x ", b)
			}
			body.Instructions = append(body.Instructions, dap.DisassembledInstruction{
				Address:          fmt.Sprintf("0x%04x", e.Address),
				InstructionBytes: hex,
				Instruction:      e.String(),
			})
		}
		return body, nil
	}
}

func c64ReadMemory(c *hardware.C64) func(string, int, int) (dap.ReadMemoryBody, error) {
	return func(memRef string, offset, count int) (dap.ReadMemoryBody, error) {
		base, err := parseHexAddress(memRef)
		if err != nil {
			return dap.ReadMemoryBody{}, err
		}

		data := make([]byte, 0, count)
		unreadable := 0
		for i := 0; i < count; i++ {
			b, err := c.Peek(base + uint16(offset+i))
			if err != nil {
				unreadable++
				continue
			}
			data = append(data, b)
		}

		return dap.ReadMemoryBody{
			Address:         fmt.Sprintf("0x%04x", base),
			UnreadableBytes: unreadable,
			Data:            base64Encode(data),
		}, nil
	}
}
