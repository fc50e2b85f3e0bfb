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

// Command atari2600 runs the Atari 2600 emulation core against a
// cartridge image, optionally serving a Debug Adapter Protocol session
// over TCP.
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
	"github.com/bl-nero/steampunk-sub000/hardware/tia"
	"github.com/bl-nero/steampunk-sub000/internal/memviz"
	"github.com/bl-nero/steampunk-sub000/internal/soundfile"
	"github.com/bl-nero/steampunk-sub000/internal/statsview"
)

func main() {
	os.Exit(run())
}

func run() int {
	debuggerOn := flag.Bool("debugger", false, "enable the DAP debugger bridge")
	debuggerPort := flag.String("debugger-port", "127.0.0.1:25565", "DAP bridge listen address")
	tvSpec := flag.String("tv", "AUTO", "television specification: NTSC, PAL or AUTO")
	dumpAudio := flag.String("dump-audio", "", "write the audio stream to this .wav file")
	graph := flag.String("graph", "", "write the machine's object graph as Graphviz dot to this file")
	statsAddr := flag.String("stats-addr", "", "serve a live runtime diagnostics page at this address")
	frames := flag.Int("frames", 0, "stop after this many frames (0: run until interrupted)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: atari2600 [flags] <rom-path>")
		return 1
	}

	ld, err := cartridgeloader.NewLoaderFromFilename(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer ld.Close()

	tv, err := television.NewTelevision(*tvSpec)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ins, err := instance.NewInstance(tv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	vcs, err := hardware.NewVCS(tv, ins)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := vcs.AttachCartridge(ld); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := vcs.Reset(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		memviz.Dump(f, vcs)
		f.Close()
	}

	if *statsAddr != "" {
		srv := statsview.Start(*statsAddr)
		defer srv.Stop()
	}

	var audioOut *soundfile.Writer
	if *dumpAudio != "" {
		f, err := os.Create(*dumpAudio)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		audioOut = soundfile.New(f)
		defer audioOut.Close()
	}

	var core *debugger.Core
	var bridge *dap.Bridge
	if *debuggerOn {
		core = debugger.NewCore(vcs)
		bridge = dap.NewBridge(core, vcs.Log, atariDisassemble(vcs), atariReadMemory(vcs))
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

		sig, err := vcs.Tick()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		if audioOut != nil {
			if a := vcs.LastAudio(); a != nil {
				if err := audioOut.WriteSample(tia.MixAudio(a.AU0, a.AU1)); err != nil {
					fmt.Fprintln(os.Stderr, err)
					return 1
				}
			}
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

// atariDisassemble builds a disassemble-request handler by reading the
// requested window of cartridge-mapped memory through Peek and running it
// through disassembly.SeekOrigin, so the returned addresses line up with
// the instruction actually at memoryReference even when it isn't at the
// very start of the decoded window.
func atariDisassemble(vcs *hardware.VCS) func(string, int, int) (dap.DisassembleBody, error) {
	return func(memRef string, instructionOffset, instructionCount int) (dap.DisassembleBody, error) {
		target, err := parseHexAddress(memRef)
		if err != nil {
			return dap.DisassembleBody{}, err
		}

		const window = 0x1000
		origin := target - window/2
		data := make([]byte, window)
		for i := range data {
			b, err := vcs.Peek(origin + uint16(i))
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

func atariReadMemory(vcs *hardware.VCS) func(string, int, int) (dap.ReadMemoryBody, error) {
	return func(memRef string, offset, count int) (dap.ReadMemoryBody, error) {
		base, err := parseHexAddress(memRef)
		if err != nil {
			return dap.ReadMemoryBody{}, err
		}

		data := make([]byte, 0, count)
		unreadable := 0
		for i := 0; i < count; i++ {
			b, err := vcs.Peek(base + uint16(offset+i))
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
