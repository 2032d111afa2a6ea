package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/gentam/saorom"
	"github.com/gentam/saorom/internal/config"
	"periph.io/x/conn/v3/physic"
)

func writeCommand(args []string) {
	fs := flag.NewFlagSet("write", flag.ExitOnError)
	var (
		profile string
		bus     string
		addr    uint
		tries   int
		verbose bool
	)
	fs.StringVar(&profile, "c", "", "station profile (YAML)")
	fs.StringVar(&bus, "bus", "", `I2C bus name or number, or "ftdi" (default: first bus)`)
	fs.UintVar(&addr, "addr", saorom.Address, "EEPROM address")
	fs.IntVar(&tries, "tries", saorom.DefaultTries, "write attempts before giving up")
	fs.BoolVar(&verbose, "v", false, "trace bus transactions")
	fs.Parse(args)

	serial, err := serialArg(fs.Args())
	if errors.Is(err, errUsage) {
		fatalUsage("usage: saorom write [-c profile] [-bus name] [-addr n] [-tries n] [-v] <serial>")
	}
	if err != nil {
		fatalf("%v", err)
	}

	prof, err := loadProfile(profile)
	if err != nil {
		fatalf("%v", err)
	}
	// flags given on the command line win over the profile
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bus":
			prof.Bus.Name = bus
		case "addr":
			prof.Bus.Address = uint16(addr)
		case "tries":
			prof.Program.Tries = tries
		}
	})
	if err := config.Validate(prof); err != nil {
		fatalUsage("invalid configuration: %v", err)
	}

	d, err := saorom.Open(saorom.BusConfig{
		Bus:   prof.Bus.Name,
		Addr:  prof.Bus.Address,
		Speed: physic.Frequency(prof.Bus.SpeedHz) * physic.Hertz,
	})
	if err != nil {
		fatalf("%v", err)
	}
	defer d.Close()

	opts := []saorom.Option{
		saorom.WithPageDelay(prof.Program.PageDelay()),
		saorom.WithRetryDelay(prof.Program.RetryDelay()),
	}
	if verbose {
		opts = append(opts, saorom.WithLogger(verboseLogger()))
	}

	fmt.Printf("Writing serial %d to %s\n", serial, d)
	if err := saorom.NewWriter(d.Dev, opts...).FormatAndWrite(serial, prof.Program.Tries); err != nil {
		d.Close()
		fatalf("%v", err)
	}
}

func loadProfile(path string) (*config.Profile, error) {
	if path == "" {
		return config.Default(), nil
	}
	prof, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return prof, nil
}
