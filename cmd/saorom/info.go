package main

import (
	"fmt"

	"github.com/gentam/saorom"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3/ftdi"
)

func infoCommand() {
	if err := saorom.InitHost(); err != nil {
		fatalf("%v", err)
	}

	fmt.Println("I2C buses:")
	for _, ref := range i2creg.All() {
		fmt.Printf("  %-12s number=%d aliases=%v\n", ref.Name, ref.Number, ref.Aliases)
	}

	// Reference: https://github.com/periph/cmd/tree/main/ftdi-list
	fmt.Println("FTDI adapters:")
	i := ftdi.Info{}
	for _, dev := range ftdi.All() {
		dev.Info(&i)
		fmt.Printf("  %-12s type=%s vendor=%#04x device=%#04x opened=%t\n",
			dev, i.Type, i.VenID, i.DevID, i.Opened)
	}
}
