package saorom

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// template is the Firefly descriptor up to, but not including, the serial
// number stored in the last two bytes of the "firefly" driver data.
//
//	Offset | Bytes                | Field
//	-------+----------------------+------------------------------------------
//	0      | "LIFE"               | magic [BadgeTeam-SAO]
//	4      | 0e 07 06 02          | name len, driver name len, driver data len, extra drivers
//	8      | "Firefly friend"     | name
//	22     | "storage"            | driver name
//	29     | 00 50 0e 06 01 00    | flags, addr 0x50, 16KB, 64B pages, data at page 1, reserved
//	35     | 03 08 "app"          | extra driver name/data len, name
//	40     | "firefly\0"          | app slug
//	48     | 07 04 "firefly"      | extra driver name/data len, name
//	57     | 01 01                | batch, hardware revision
var template = [...]byte{
	0x4c, 0x49, 0x46, 0x45, 0x0e, 0x07, 0x06, 0x02,
	0x46, 0x69, 0x72, 0x65, 0x66, 0x6c, 0x79, 0x20,
	0x66, 0x72, 0x69, 0x65, 0x6e, 0x64, 0x73, 0x74,
	0x6f, 0x72, 0x61, 0x67, 0x65, 0x00, 0x50, 0x0e,
	0x06, 0x01, 0x00, 0x03, 0x08, 0x61, 0x70, 0x70,
	0x66, 0x69, 0x72, 0x65, 0x66, 0x6c, 0x79, 0x00,
	0x07, 0x04, 0x66, 0x69, 0x72, 0x65, 0x66, 0x6c,
	0x79, 0x01, 0x01,
}

const (
	// TemplateSize is the length of the fixed descriptor template.
	TemplateSize = len(template)
	// ROMSize is the length of a formatted ROM image.
	ROMSize = TemplateSize + 2
)

// Template returns a copy of the descriptor template.
func Template() []byte {
	t := template
	return t[:]
}

// FormatROM returns the template followed by serial, low byte first.
func FormatROM(serial uint16) []byte {
	rom := make([]byte, 0, ROMSize)
	rom = append(rom, template[:]...)
	return append(rom, le16(serial)...)
}

// Serial wraps n to 16 bits. Negative values wrap the same way as positive
// ones, so Serial(-1) == 0xFFFF.
func Serial(n int64) uint16 {
	return uint16(n)
}

func le16(v uint16) []byte {
	return []byte{byte(v), byte(v >> 8)}
}

// SerialError reports a serial number argument that is not an integer.
type SerialError struct {
	Input string
	Err   error
}

func (e *SerialError) Error() string {
	return fmt.Sprintf("invalid serial number %q: %v", e.Input, e.Err)
}

func (e *SerialError) Unwrap() error { return e.Err }

// ParseSerial parses a decimal serial number and wraps it to 16 bits.
// Values of any magnitude and sign are accepted.
func ParseSerial(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return Serial(n), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		// out of int64 range, still a valid integer
		if b, ok := new(big.Int).SetString(s, 10); ok {
			b.Mod(b, big.NewInt(1<<16)) // Euclidean, result in [0, 65535]
			return uint16(b.Uint64()), nil
		}
	}
	return 0, &SerialError{Input: s, Err: err}
}
