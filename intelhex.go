package saorom

import (
	"io"

	"github.com/marcinbor85/gohex"
)

// hexLineLength is the number of data bytes per Intel HEX record.
const hexLineLength = 16

// WriteIntelHex writes rom as Intel HEX starting at address 0, for use
// with stand-alone EEPROM programmers.
func WriteIntelHex(w io.Writer, rom []byte) error {
	mem := gohex.NewMemory()
	if err := mem.AddBinary(0, rom); err != nil {
		return err
	}
	return mem.DumpIntelHex(w, hexLineLength)
}
