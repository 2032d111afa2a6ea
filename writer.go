package saorom

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
)

// Address is the 7-bit I2C address of the SAO descriptor EEPROM.
const Address = 0x50

var (
	// ErrVerifyFailed matches an *ExhaustedError.
	ErrVerifyFailed = errors.New("ROM verification failed")

	errEmptyROM = errors.New("empty ROM image")
)

// ExhaustedError is returned by FormatAndWrite when no attempt produced a
// matching readback.
type ExhaustedError struct {
	Tries int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("ROM verification failed after %d attempts", e.Tries)
}

func (e *ExhaustedError) Is(target error) bool { return target == ErrVerifyFailed }

// Writer programs and verifies a ROM image through a transaction sink. On
// hardware the sink is an *i2c.Dev at Address; an *Emitter records the
// transactions instead.
type Writer struct {
	conn conn.Conn
	cfg  Config
}

// NewWriter returns a Writer sending transactions to c.
func NewWriter(c conn.Conn, opts ...Option) *Writer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Writer{conn: c, cfg: cfg}
}

// WriteROM writes rom page by page, resets the EEPROM address pointer and
// reads the image back. It reports true when the readback matches. A
// mismatch is not an error; bus failures are.
func (w *Writer) WriteROM(rom []byte) (bool, error) {
	if len(rom) == 0 {
		return false, errEmptyROM
	}

	if err := w.WriteChunks(rom); err != nil {
		return false, err
	}

	w.report(Progress{State: StateVerifying})
	got, err := ReadROM(w.conn, len(rom))
	if err != nil {
		return false, err
	}
	if !bytes.Equal(got, rom) {
		w.cfg.Logger.Error("readback mismatch", "offset", firstDiff(got, rom))
		fmt.Fprintln(w.cfg.Output, "ROM mismatch!")
		return false, nil
	}
	fmt.Fprintln(w.cfg.Output, "ROM validated!")
	return true, nil
}

// WriteChunks sends rom as offset-prefixed page writes, pausing after each
// one, without verifying.
func (w *Writer) WriteChunks(rom []byte) error {
	chunks := Chunks(rom)
	for i, c := range chunks {
		w.report(Progress{State: StateWriting, Chunk: i, Chunks: len(chunks)})
		if err := w.conn.Tx(c.Bytes(), nil); err != nil {
			return fmt.Errorf("write chunk %s: %w", c, err)
		}
		w.cfg.Logger.Debug("chunk written", "offset", c.Offset, "len", len(c.Data))
		time.Sleep(w.cfg.PageDelay)
	}
	return nil
}

// FormatAndWrite formats the ROM for serial and writes it up to tries
// times, stopping at the first verified write. It returns an
// *ExhaustedError if every attempt failed verification.
func (w *Writer) FormatAndWrite(serial uint16, tries int) error {
	if tries < 1 {
		return fmt.Errorf("tries must be positive, got %d", tries)
	}

	w.report(Progress{State: StateFormatting, Tries: tries})
	rom := FormatROM(serial)
	w.cfg.Logger.Info("formatted ROM", "serial", serial, "len", len(rom))

	for attempt := 1; attempt <= tries; attempt++ {
		ok, err := w.WriteROM(rom)
		if err != nil {
			return err
		}
		if ok {
			w.report(Progress{State: StateSucceeded, Attempt: attempt, Tries: tries})
			return nil
		}
		fmt.Fprintf(w.cfg.Output, "Attempt %d/%d failed\n", attempt, tries)
		w.report(Progress{State: StateRetrying, Attempt: attempt, Tries: tries})
		time.Sleep(w.cfg.RetryDelay)
	}

	w.report(Progress{State: StateExhausted, Attempt: tries, Tries: tries})
	return &ExhaustedError{Tries: tries}
}

// ReadROM resets the EEPROM address pointer to 0 and reads n bytes.
func ReadROM(c conn.Conn, n int) ([]byte, error) {
	// A write of the address alone sets the pointer without programming.
	// [24C128|8.3 Random Read]
	if err := c.Tx([]byte{0x00, 0x00}, nil); err != nil {
		return nil, fmt.Errorf("reset read pointer: %w", err)
	}
	buf := make([]byte, n)
	if err := c.Tx(nil, buf); err != nil {
		return nil, fmt.Errorf("read back %d bytes: %w", n, err)
	}
	return buf, nil
}

func (w *Writer) report(p Progress) {
	if w.cfg.Progress != nil {
		w.cfg.Progress(p)
	}
}

func firstDiff(a, b []byte) int {
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			return i
		}
	}
	return min(len(a), len(b))
}
