package saorom

import "fmt"

// PageSize is the EEPROM page write buffer size. A write transaction must
// not carry more data than this or it wraps around within the page.
// [24C128|6.2 Page Write]
const PageSize = 64

// Chunk is a slice of the ROM image written in a single bus transaction.
type Chunk struct {
	Offset uint16
	Data   []byte
}

// Bytes returns the wire layout of the chunk: 16-bit offset, low byte
// first, followed by the data.
func (c Chunk) Bytes() []byte {
	buf := make([]byte, 2+len(c.Data))
	buf[0] = byte(c.Offset)
	buf[1] = byte(c.Offset >> 8)
	copy(buf[2:], c.Data)
	return buf
}

func (c Chunk) String() string {
	return fmt.Sprintf("0x%04X+%d", c.Offset, len(c.Data))
}

// Chunks splits rom into page sized chunks. The chunks share memory with rom.
func Chunks(rom []byte) []Chunk {
	chunks := make([]Chunk, 0, (len(rom)+PageSize-1)/PageSize)
	for off := 0; off < len(rom); off += PageSize {
		end := min(off+PageSize, len(rom))
		chunks = append(chunks, Chunk{
			Offset: uint16(off),
			Data:   rom[off:end],
		})
	}
	return chunks
}
