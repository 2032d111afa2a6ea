package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gentam/saorom"
)

var errUsage = errors.New("usage")

const emitUsage = `Usage: saorom emit <serial>
	serial: decimal unit number printed on the package, wrapped to 16 bits
`

func emitCommand(args []string) {
	err := emit(os.Stdout, args)
	if errors.Is(err, errUsage) {
		fmt.Fprint(os.Stderr, emitUsage)
		os.Exit(2)
	}
	if err != nil {
		fatalf("%v", err)
	}
}

func emit(w io.Writer, args []string) error {
	serial, err := serialArg(args)
	if err != nil {
		return err
	}
	return saorom.EmitCommands(w, saorom.FormatROM(serial))
}

// serialArg parses the single positional serial number. A missing, extra or
// non-integer argument is a usage error.
func serialArg(args []string) (uint16, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	serial, err := saorom.ParseSerial(args[0])
	var numErr *strconv.NumError
	switch {
	case err == nil:
		return serial, nil
	case errors.As(err, &numErr):
		return 0, fmt.Errorf("%w: %v", errUsage, err)
	default:
		return 0, err
	}
}
