package saorom

import (
	"errors"
	"fmt"
	"sync/atomic"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/ftdi"
)

// BusFTDI selects the MPSSE I2C port of the first FT232H/FT2232H instead of
// a host bus. [FTDI-AN_255]
const BusFTDI = "ftdi"

// BusConfig selects the bus and device the SAO is attached to.
type BusConfig struct {
	// Bus is an i2creg name, alias or number, BusFTDI, or "" for the
	// first registered bus.
	Bus string
	// Addr defaults to Address.
	Addr uint16
	// Speed is left unchanged when 0.
	Speed physic.Frequency
}

// Device is an open I2C bus with the SAO EEPROM on it.
type Device struct {
	Bus i2c.BusCloser
	Dev *i2c.Dev
}

var hostInitialized atomic.Bool

// InitHost loads the periph host drivers. Only the first call has an
// effect.
func InitHost() error {
	if hostInitialized.CompareAndSwap(false, true) {
		if _, err := host.Init(); err != nil {
			return fmt.Errorf("host initialization failed: %w", err)
		}
	}
	return nil
}

// Open initializes the host drivers and opens the configured bus.
func Open(cfg BusConfig) (*Device, error) {
	if err := InitHost(); err != nil {
		return nil, err
	}

	var (
		bus i2c.BusCloser
		err error
	)
	if cfg.Bus == BusFTDI {
		bus, err = openFTDI()
	} else {
		bus, err = i2creg.Open(cfg.Bus)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus %q: %w", cfg.Bus, err)
	}

	if cfg.Speed != 0 {
		if err := bus.SetSpeed(cfg.Speed); err != nil {
			bus.Close()
			return nil, fmt.Errorf("failed to set bus speed %s: %w", cfg.Speed, err)
		}
	}

	return NewDevice(bus, cfg.Addr), nil
}

// NewDevice wraps an already open bus.
func NewDevice(bus i2c.BusCloser, addr uint16) *Device {
	if addr == 0 {
		addr = Address
	}
	return &Device{
		Bus: bus,
		Dev: &i2c.Dev{Bus: bus, Addr: addr},
	}
}

func (d *Device) Close() error {
	return d.Bus.Close()
}

func (d *Device) String() string {
	return fmt.Sprintf("%s@%#02x", d.Bus, d.Dev.Addr)
}

func openFTDI() (i2c.BusCloser, error) {
	const (
		vendorID = 0x0403 // FTDI
		ft232H   = 0x6014
		ft2232H  = 0x6010
	)

	info := ftdi.Info{}
	for _, dev := range ftdi.All() {
		dev.Info(&info)
		if info.VenID != vendorID || (info.DevID != ft232H && info.DevID != ft2232H) {
			continue
		}
		if ft, ok := dev.(*ftdi.FT232H); ok {
			// SAO boards carry no pull-ups of their own [SAO-1.69bis]
			return ft.I2C(gpio.PullUp)
		}
	}

	return nil, errors.New("FT232H/FT2232H device not found")
}
