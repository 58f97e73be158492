// Package display implements the memory-mapped text display: an
// MDA-style 80x25 character buffer sitting in the physical address
// space, written through ordinary bus writes.
package display

import (
	"strings"

	"i8086/bus"
)

// Geometry of the text page. Each cell is a character byte followed by
// an attribute byte.
const (
	Columns = 80
	Rows    = 25

	// WindowBase is the physical address of the video window.
	WindowBase bus.Physical = 0xB0000

	cellBytes = Columns * Rows * 2
)

// MDA is the text display device. It implements bus.MappedDevice.
type MDA struct {
	cells [cellBytes]byte
	dirty bool
}

// New returns a cleared display.
func New() *MDA {
	m := new(MDA)
	m.Clear()
	return m
}

// Base returns the start of the video window.
func (m *MDA) Base() bus.Physical {
	return WindowBase
}

// Size returns the window size in bytes.
func (m *MDA) Size() uint32 {
	return cellBytes
}

// ReadByte returns the stored character or attribute byte. The video
// buffer reads back exactly what was written.
func (m *MDA) ReadByte(off uint32) (byte, error) {
	return m.cells[off], nil
}

// WriteByte stores a character or attribute byte.
func (m *MDA) WriteByte(off uint32, v byte) error {
	m.cells[off] = v
	m.dirty = true
	return nil
}

// Clear blanks the page to spaces with the normal attribute.
func (m *MDA) Clear() {
	for i := 0; i < cellBytes; i += 2 {
		m.cells[i] = ' '
		m.cells[i+1] = 0x07
	}
	m.dirty = true
}

// Dirty reports whether the page changed since the last Render call.
func (m *MDA) Dirty() bool {
	return m.dirty
}

// Render returns the visible page as Rows lines of Columns characters.
// Non-printable cells render as spaces. Attributes are ignored; the
// terminal front-end has no use for them.
func (m *MDA) Render() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			ch := m.cells[(row*Columns+col)*2]
			if ch < 0x20 || ch > 0x7E {
				ch = ' '
			}
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}
	m.dirty = false
	return sb.String()
}
