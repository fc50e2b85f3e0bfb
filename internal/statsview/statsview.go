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

// Package statsview exposes a live goroutine/heap/GC profile page while
// the emulator runs, for the --stats-addr dev flag.
// It is a thin wrapper over go-echarts/statsview: a dev-only HTTP
// diagnostics endpoint, never started unless explicitly requested.
package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Server owns the background statsview goroutine.
type Server struct {
	mgr *viewer.Viewer
}

// Start launches the statsview HTTP endpoint on addr (e.g. "localhost:18066")
// and returns immediately; the server runs until the process exits.
func Start(addr string) *Server {
	mgr := statsview.New(viewer.WithAddr(addr))
	go mgr.Start()
	return &Server{mgr: mgr}
}

// Stop shuts the endpoint down.
func (s *Server) Stop() {
	s.mgr.Stop()
}
