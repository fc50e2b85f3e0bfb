// Package cartridge models cartridge ROM images for both machines: fixed
// 2048/4096 byte Atari cartridges (mirrored into the 4KiB cartridge window
// when 2048 bytes) and C64 Ultimax-mapped cartridges of up to 16KiB.
// Bank-switching schemes beyond those are out of scope.
package cartridge
