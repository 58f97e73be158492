package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jroimartin/gocui"

	"i8086/bus"
	"i8086/console"
	"i8086/logger"
	"i8086/system"
)

var (
	logPath  = flag.String("logfile", "", "log file path, empty for stdout")
	busWidth = flag.Int("width", 16, "data bus width: 8 (8088) or 16 (8086)")
	image    = flag.String("image", "", "raw binary image to load at startup")
	loadAddr = flag.String("load", "0000:0100", "image load address as seg:off")
)

var sys *system.System

func main() {
	flag.Parse()

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln("Couldn't create gui!")
	}
	defer g.Close()

	g.SetManagerFunc(layout)
	g.Cursor = true

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}
	if err := g.SetKeybinding("command", gocui.KeyEnter, gocui.ModNone, runCommand); err != nil {
		log.Panicln(err)
	}

	// start emulation
	g.Update(startSystem)

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

// startSystem wires the machine to the views once the layout exists.
func startSystem(g *gocui.Gui) error {
	statusView, err := g.View("status")
	if err != nil {
		return err
	}
	statusView.Clear()

	width := bus.Width16
	if *busWidth == 8 {
		width = bus.Width8
	}

	fmt.Fprintf(statusView, "Starting 8086 monitor (bus width %d)..\n", *busWidth)
	sys = system.InitializeSystem(console.NewGui(g), width, logger.New(*logPath))

	if *image != "" {
		segment, offset, err := parseSegOff(*loadAddr)
		if err != nil {
			fmt.Fprintf(statusView, "Bad load address: %v\n", err)
		} else if err := sys.LoadImage(*image, segment, offset); err != nil {
			fmt.Fprintf(statusView, "Load failed: %v\n", err)
		}
	}

	updateViews(sys, g)

	if _, err := g.SetCurrentView("command"); err != nil {
		return err
	}
	return nil
}

// updateViews refreshes the register and display views once a second.
// Has to go through g.Update -> gocui allows view changes only there.
func updateViews(sys *system.System, g *gocui.Gui) {
	ticker := time.NewTicker(time.Second * 1)

	go func() {
		for range ticker.C {
			g.Update(func(g *gocui.Gui) error {
				v, err := g.View("registers")
				if err != nil {
					return err
				}
				v.Clear()
				fmt.Fprintf(v, "%s", sys.CPU.DumpRegisters())

				if sys.Display.Dirty() {
					d, err := g.View("display")
					if err != nil {
						return err
					}
					d.Clear()
					fmt.Fprintf(d, "%s", sys.Display.Render())
				}
				return nil
			})
		}
	}()
}

// gocui layout
func layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	// up -> memory mapped display
	if v, err := g.SetView("display", 0, 0, maxX-1, maxY-12); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Display"
	}

	// middle -> register values
	if v, err := g.SetView("registers", 0, maxY-11, maxX-1, maxY-7); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Registers"
	}

	// status / monitor output
	if v, err := g.SetView("status", 0, maxY-6, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Autoscroll = true
	}

	// down -> command input
	if v, err := g.SetView("command", 0, maxY-2, maxX-1, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Monitor"
		v.Editable = true
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
