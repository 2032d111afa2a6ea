package saorom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"periph.io/x/conn/v3"
)

var errEmitterRead = errors.New("emitter cannot perform reads")

// Emitter is a conn.Conn that prints every write transaction as a
// MicroPython statement instead of performing it. [MicroPython-I2C]
type Emitter struct {
	w    io.Writer
	bus  int
	addr uint16
}

var _ conn.Conn = (*Emitter)(nil)

// NewEmitter returns an Emitter for bus 0 at Address.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w, addr: Address}
}

func (e *Emitter) String() string {
	return fmt.Sprintf("emitter(I2C%d, %#02x)", e.bus, e.addr)
}

func (e *Emitter) Duplex() conn.Duplex { return conn.Half }

// Header prints the import the emitted statements depend on.
func (e *Emitter) Header() error {
	_, err := io.WriteString(e.w, "import machine\n")
	return err
}

// Tx prints w as a writeto statement. Reads are rejected: the emitted
// script has nothing to compare a readback with.
func (e *Emitter) Tx(w, r []byte) error {
	if len(r) != 0 {
		return errEmitterRead
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "machine.I2C(%d).writeto(%#02x, bytes([", e.bus, e.addr)
	for i, b := range w {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0x%02x", b)
	}
	sb.WriteString("]))\n")
	_, err := io.WriteString(e.w, sb.String())
	return err
}

// EmitCommands prints the statements that program rom, one per chunk.
func EmitCommands(w io.Writer, rom []byte) error {
	e := NewEmitter(w)
	if err := e.Header(); err != nil {
		return err
	}
	return NewWriter(e, WithPageDelay(0), WithOutput(io.Discard)).WriteChunks(rom)
}
