package saorom

import (
	"bytes"
	"errors"
	"fmt"
)

// Magic identifies a binary SAO descriptor. [BadgeTeam-SAO]
var Magic = [4]byte{'L', 'I', 'F', 'E'}

var (
	ErrBadMagic  = errors.New("not a binary SAO descriptor")
	ErrTruncated = errors.New("descriptor truncated")
)

// Descriptor is a decoded binary SAO descriptor.
type Descriptor struct {
	Name    string
	Drivers []Driver // main driver first
}

// Driver is a named blob of driver specific data.
type Driver struct {
	Name string
	Data []byte
}

// Driver returns the first driver called name.
func (d *Descriptor) Driver(name string) (Driver, bool) {
	for _, drv := range d.Drivers {
		if drv.Name == name {
			return drv, true
		}
	}
	return Driver{}, false
}

// Firefly is the data of the "firefly" driver.
type Firefly struct {
	Batch    uint8
	Hardware uint8
	Serial   uint16 // printed on the package
}

// Firefly decodes the "firefly" driver data.
func (d *Descriptor) Firefly() (Firefly, error) {
	drv, ok := d.Driver("firefly")
	if !ok {
		return Firefly{}, errors.New("no firefly driver")
	}
	if len(drv.Data) < 4 {
		return Firefly{}, fmt.Errorf("firefly driver data: %w", ErrTruncated)
	}
	return Firefly{
		Batch:    drv.Data[0],
		Hardware: drv.Data[1],
		Serial:   uint16(drv.Data[2]) | uint16(drv.Data[3])<<8,
	}, nil
}

// Storage is the data of the "storage" driver.
type Storage struct {
	Address    uint8 // I2C address of the data EEPROM
	Size       int   // bytes
	PageSize   int   // bytes
	DataOffset int   // bytes, first page after the descriptor
}

// Storage decodes the "storage" driver data.
func (d *Descriptor) Storage() (Storage, error) {
	drv, ok := d.Driver("storage")
	if !ok {
		return Storage{}, errors.New("no storage driver")
	}
	if len(drv.Data) < 5 {
		return Storage{}, fmt.Errorf("storage driver data: %w", ErrTruncated)
	}
	// flags, address, size_exp, page_size_exp, data_offset (pages), reserved
	page := 1 << drv.Data[3]
	return Storage{
		Address:    drv.Data[1],
		Size:       1 << drv.Data[2],
		PageSize:   page,
		DataOffset: int(drv.Data[4]) * page,
	}, nil
}

// ParseDescriptor decodes a descriptor from the start of b. Trailing bytes
// are ignored, so a whole EEPROM dump can be passed.
//
//	magic[4] name_len driver_name_len driver_data_len extra_drivers
//	name driver_name driver_data
//	{ driver_name_len driver_data_len driver_name driver_data } * extra_drivers
func ParseDescriptor(b []byte) (*Descriptor, error) {
	if len(b) < len(Magic) || !bytes.Equal(b[:len(Magic)], Magic[:]) {
		return nil, ErrBadMagic
	}
	r := descReader{b: b, off: len(Magic)}
	hdr := r.next(4)
	if hdr == nil {
		return nil, ErrTruncated
	}
	nameLen, drvNameLen, drvDataLen, extra := int(hdr[0]), int(hdr[1]), int(hdr[2]), int(hdr[3])

	d := &Descriptor{}
	name := r.next(nameLen)
	first, err := r.driver(drvNameLen, drvDataLen)
	if name == nil || err != nil {
		return nil, ErrTruncated
	}
	d.Name = string(name)
	d.Drivers = append(d.Drivers, first)

	for i := range extra {
		lens := r.next(2)
		if lens == nil {
			return nil, fmt.Errorf("extra driver %d: %w", i, ErrTruncated)
		}
		drv, err := r.driver(int(lens[0]), int(lens[1]))
		if err != nil {
			return nil, fmt.Errorf("extra driver %d: %w", i, err)
		}
		d.Drivers = append(d.Drivers, drv)
	}
	return d, nil
}

type descReader struct {
	b   []byte
	off int
}

// next returns the following n bytes, or nil if fewer remain.
func (r *descReader) next(n int) []byte {
	if r.off+n > len(r.b) {
		return nil
	}
	s := r.b[r.off : r.off+n : r.off+n]
	r.off += n
	return s
}

func (r *descReader) driver(nameLen, dataLen int) (Driver, error) {
	name := r.next(nameLen)
	data := r.next(dataLen)
	if name == nil || data == nil {
		return Driver{}, ErrTruncated
	}
	return Driver{Name: string(name), Data: bytes.Clone(data)}, nil
}
