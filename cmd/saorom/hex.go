package main

import (
	"errors"
	"flag"
	"os"

	"github.com/gentam/saorom"
)

func hexCommand(args []string) {
	fs := flag.NewFlagSet("hex", flag.ExitOnError)
	var outFile string
	fs.StringVar(&outFile, "o", "", "output file (default: stdout)")
	fs.Parse(args)

	serial, err := serialArg(fs.Args())
	if errors.Is(err, errUsage) {
		fatalUsage("usage: saorom hex [-o file] <serial>")
	}
	if err != nil {
		fatalf("%v", err)
	}

	out := os.Stdout
	if outFile != "" {
		out, err = os.Create(outFile)
		if err != nil {
			fatalf("failed to create file: %v", err)
		}
		defer out.Close()
	}

	if err := saorom.WriteIntelHex(out, saorom.FormatROM(serial)); err != nil {
		fatalf("write Intel HEX failed: %v", err)
	}
}
