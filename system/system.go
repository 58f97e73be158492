// Package system assembles the emulated machine: CPU register file,
// system bus with RAM and the text display, and the monitor operations
// the front panel drives it with.
package system

import (
	"log"
	"os"

	"github.com/pkg/errors"

	"i8086/bus"
	"i8086/console"
	"i8086/cpu"
	"i8086/display"
)

// System definition.
type System struct {
	CPU     *cpu.CPU
	Bus     *bus.SystemBus
	Display *display.MDA

	console console.Console
	log     *log.Logger
}

// InitializeSystem initializes the emulated hardware: RAM, the video
// window, and a CPU in reset state.
func InitializeSystem(c console.Console, width bus.Width, logger *log.Logger) *System {
	sys := new(System)
	sys.console = c
	sys.log = logger

	sys.Bus = bus.NewSystemBus(bus.DefaultRAMSize, width)
	sys.Display = display.New()
	sys.Bus.Attach(sys.Display)

	sys.CPU = cpu.NewCPU()

	_ = sys.console.WriteConsole("Initializing 8086 CPU.\n")
	return sys
}

// Reset puts the CPU back into its power-on state and clears the
// display. RAM contents survive, like on the real front panel.
func (sys *System) Reset() {
	sys.CPU.Reset()
	sys.Display.Clear()
	sys.log.Printf("system reset")
}

// LoadImage copies a raw binary image into memory at segment:offset,
// byte by byte through the bus.
func (sys *System) LoadImage(path string, segment, offset uint16) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "loading image %s", path)
	}

	for i, b := range image {
		addr := bus.PhysicalAddress(segment, offset+uint16(i))
		if _, err := sys.Bus.WriteByte(addr, b); err != nil {
			return errors.Wrapf(err, "loading image %s at byte %d", path, i)
		}
	}

	sys.log.Printf("loaded %d bytes from %s at %04x:%04x", len(image), path, segment, offset)
	return nil
}
