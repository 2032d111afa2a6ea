package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gentam/saorom"
)

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func fatalUsage(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(2)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
	saorom <command> [arguments]

Commands:
	write	 format and program the SAO EEPROM, then verify it
	emit	 print MicroPython statements that program the EEPROM
	hex	 print the ROM image as Intel HEX
	read	 dump and decode the SAO EEPROM
	info	 list I2C buses and FTDI adapters
`)
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
	}

	switch cmd := flag.Arg(0); cmd {
	case "write":
		writeCommand(flag.Args()[1:])
	case "emit":
		emitCommand(flag.Args()[1:])
	case "hex":
		hexCommand(flag.Args()[1:])
	case "read":
		readCommand(flag.Args()[1:])
	case "info":
		infoCommand()
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n", cmd)
		usage()
	}
}

// verboseLogger traces bus transactions on stderr.
func verboseLogger() saorom.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
