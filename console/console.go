package console

/*
Status console abstraction for the monitor front-end.

The rest of the emulator logs human-readable status through this
interface; the gocui implementation routes it to the status view, the
simple implementation to stdout (useful for tests and headless runs).
*/

// Console is where the machine prints status output.
type Console interface {
	WriteConsole(msg string) error
}
