package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/gentam/saorom"
)

func readCommand(args []string) {
	fs := flag.NewFlagSet("read", flag.ExitOnError)
	var (
		nread   int
		bus     string
		addr    uint
		outFile string
	)
	fs.IntVar(&nread, "n", saorom.PageSize, "number of bytes to read")
	fs.StringVar(&bus, "bus", "", `I2C bus name or number, or "ftdi" (default: first bus)`)
	fs.UintVar(&addr, "addr", saorom.Address, "EEPROM address")
	fs.StringVar(&outFile, "o", "", "output file (default: hexdump)")
	fs.Parse(args)

	if nread <= 0 {
		fatalUsage("-n must be positive")
	}

	d, err := saorom.Open(saorom.BusConfig{Bus: bus, Addr: uint16(addr)})
	if err != nil {
		fatalf("%v", err)
	}
	defer d.Close()

	data, err := saorom.ReadROM(d.Dev, nread)
	if err != nil {
		d.Close()
		fatalf("read EEPROM failed: %v", err)
	}
	if outFile != "" {
		if err := os.WriteFile(outFile, data, 0644); err != nil {
			fmt.Fprintln(os.Stderr, "write file failed:", err)
		}
		return
	}

	fmt.Println(hex.Dump(data))
	printDescriptor(data)
}

func printDescriptor(data []byte) {
	desc, err := saorom.ParseDescriptor(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "no descriptor: %v\n", err)
		return
	}
	fmt.Printf("Name:            %s\n", desc.Name)
	for i, drv := range desc.Drivers {
		fmt.Printf("Driver %d:        %-8s % X\n", i, drv.Name, drv.Data)
	}
	if st, err := desc.Storage(); err == nil {
		fmt.Printf("Storage:         %#02x, %d bytes, %d byte pages, data at %d\n",
			st.Address, st.Size, st.PageSize, st.DataOffset)
	}
	if ff, err := desc.Firefly(); err == nil {
		fmt.Printf("Firefly:         batch %d, hardware %d, serial %d\n",
			ff.Batch, ff.Hardware, ff.Serial)
	}
}
