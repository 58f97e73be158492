package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jroimartin/gocui"

	"i8086/cpu"
)

/*
Monitor command handling.

Supported commands, front-panel style:
  - e SEG:OFF [COUNT]   examine COUNT bytes of memory (default 1)
  - d SEG:OFF BYTE...   deposit bytes into memory
  - r [NAME [VALUE]]    show all registers / one register / set a register
  - load PATH SEG:OFF   load a raw binary image
  - reset               reset CPU and display, memory survives
  - q                   quit

All numbers are hex. Memory access goes through the system bus, so the
status line also shows the bus cycle cost of each command.
*/

// runCommand reads a line from the command view and dispatches it.
func runCommand(g *gocui.Gui, v *gocui.View) error {
	line := strings.TrimSpace(v.Buffer())
	v.Clear()
	if err := v.SetCursor(0, 0); err != nil {
		return err
	}
	if line == "" || sys == nil {
		return nil
	}

	status, err := g.View("status")
	if err != nil {
		return err
	}
	return dispatch(status, line)
}

// dispatch executes a single monitor command. A cpu.InvariantViolation
// raised below marks a bug in this program, not in the emulated one:
// log the diagnostic and end the session.
func dispatch(status *gocui.View, line string) (fatal error) {
	defer func() {
		if t := recover(); t != nil {
			iv, ok := t.(cpu.InvariantViolation)
			if !ok {
				panic(t)
			}
			fmt.Fprintf(status, "FATAL: %v\n", iv)
			fatal = fmt.Errorf("aborting session: %v", iv)
		}
	}()

	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "e":
		return cmdExamine(status, args)
	case "d":
		return cmdDeposit(status, args)
	case "r":
		return cmdRegister(status, args)
	case "load":
		return cmdLoad(status, args)
	case "reset":
		sys.Reset()
		fmt.Fprintf(status, "reset\n")
	case "q":
		return gocui.ErrQuit
	default:
		fmt.Fprintf(status, "unknown command %q\n", cmd)
	}
	return nil
}

func cmdExamine(status *gocui.View, args []string) error {
	if len(args) < 1 {
		fmt.Fprintf(status, "usage: e SEG:OFF [COUNT]\n")
		return nil
	}
	segment, offset, err := parseSegOff(args[0])
	if err != nil {
		fmt.Fprintf(status, "%v\n", err)
		return nil
	}
	count := 1
	if len(args) > 1 {
		if count, err = strconv.Atoi(args[1]); err != nil || count < 1 {
			fmt.Fprintf(status, "bad count %q\n", args[1])
			return nil
		}
	}

	data, cost, err := sys.Examine(segment, offset, count)
	if err != nil {
		fmt.Fprintf(status, "bus error: %v\n", err)
		return nil
	}
	var sb strings.Builder
	for _, b := range data {
		fmt.Fprintf(&sb, "%02x ", b)
	}
	fmt.Fprintf(status, "%04x:%04x  %s (%d cycles)\n", segment, offset, strings.TrimSpace(sb.String()), cost)
	return nil
}

func cmdDeposit(status *gocui.View, args []string) error {
	if len(args) < 2 {
		fmt.Fprintf(status, "usage: d SEG:OFF BYTE...\n")
		return nil
	}
	segment, offset, err := parseSegOff(args[0])
	if err != nil {
		fmt.Fprintf(status, "%v\n", err)
		return nil
	}

	data := make([]byte, 0, len(args)-1)
	for _, a := range args[1:] {
		b, err := strconv.ParseUint(a, 16, 8)
		if err != nil {
			fmt.Fprintf(status, "bad byte %q\n", a)
			return nil
		}
		data = append(data, byte(b))
	}

	cost, err := sys.Deposit(segment, offset, data)
	if err != nil {
		fmt.Fprintf(status, "bus error: %v\n", err)
		return nil
	}
	fmt.Fprintf(status, "deposited %d bytes at %04x:%04x (%d cycles)\n", len(data), segment, offset, cost)
	return nil
}

func cmdRegister(status *gocui.View, args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintf(status, "%s\n", sys.CPU.DumpRegisters())
	case 1:
		v, err := sys.Register(args[0])
		if err != nil {
			fmt.Fprintf(status, "%v\n", err)
			return nil
		}
		fmt.Fprintf(status, "%s = %04x\n", strings.ToLower(args[0]), v)
	default:
		v, err := strconv.ParseUint(args[1], 16, 16)
		if err != nil {
			fmt.Fprintf(status, "bad value %q\n", args[1])
			return nil
		}
		if err := sys.SetRegister(args[0], uint16(v)); err != nil {
			fmt.Fprintf(status, "%v\n", err)
			return nil
		}
		fmt.Fprintf(status, "%s = %04x\n", strings.ToLower(args[0]), uint16(v))
	}
	return nil
}

func cmdLoad(status *gocui.View, args []string) error {
	if len(args) != 2 {
		fmt.Fprintf(status, "usage: load PATH SEG:OFF\n")
		return nil
	}
	segment, offset, err := parseSegOff(args[1])
	if err != nil {
		fmt.Fprintf(status, "%v\n", err)
		return nil
	}
	if err := sys.LoadImage(args[0], segment, offset); err != nil {
		fmt.Fprintf(status, "load failed: %v\n", err)
		return nil
	}
	fmt.Fprintf(status, "loaded %s at %04x:%04x\n", args[0], segment, offset)
	return nil
}

// parseSegOff parses a "SEG:OFF" hex pair.
func parseSegOff(s string) (segment, offset uint16, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad address %q, want SEG:OFF", s)
	}
	seg, err := strconv.ParseUint(parts[0], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("bad segment %q", parts[0])
	}
	off, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("bad offset %q", parts[1])
	}
	return uint16(seg), uint16(off), nil
}
