package saorom

import (
	"bytes"
	"errors"
	"strconv"
	"testing"
)

func TestFormatROM(t *testing.T) {
	tests := []struct {
		serial uint16
		tail   []byte
	}{
		{0, []byte{0x00, 0x00}},
		{5, []byte{0x05, 0x00}},
		{300, []byte{0x2C, 0x01}},
		{0x1234, []byte{0x34, 0x12}},
		{65535, []byte{0xFF, 0xFF}},
	}

	for _, tt := range tests {
		rom := FormatROM(tt.serial)
		if len(rom) != TemplateSize+2 {
			t.Fatalf("FormatROM(%d): len = %d, want %d", tt.serial, len(rom), TemplateSize+2)
		}
		if !bytes.Equal(rom[:TemplateSize], Template()) {
			t.Errorf("FormatROM(%d): template prefix altered", tt.serial)
		}
		if got := rom[TemplateSize:]; !bytes.Equal(got, tt.tail) {
			t.Errorf("FormatROM(%d): tail = % X, want % X", tt.serial, got, tt.tail)
		}
	}
}

func TestFormatROM_AllSerials(t *testing.T) {
	for s := 0; s <= 0xFFFF; s++ {
		rom := FormatROM(uint16(s))
		if rom[TemplateSize] != byte(s&0xFF) || rom[TemplateSize+1] != byte(s>>8&0xFF) {
			t.Fatalf("FormatROM(%d) tail = % X", s, rom[TemplateSize:])
		}
	}
}

func TestTemplate_Immutable(t *testing.T) {
	tmpl := Template()
	tmpl[0] = 'X'
	rom := FormatROM(1)
	rom[1] = 'X'

	if Template()[0] != 'L' || FormatROM(1)[1] != 'I' {
		t.Fatal("template was mutated through a returned slice")
	}
}

func TestTemplate_Size(t *testing.T) {
	if TemplateSize != 59 || ROMSize != 61 {
		t.Fatalf("TemplateSize = %d, ROMSize = %d", TemplateSize, ROMSize)
	}
}

func TestSerial_Wraps(t *testing.T) {
	tests := []struct {
		in   int64
		want uint16
	}{
		{0, 0},
		{65535, 65535},
		{65536, 0},
		{65536 + 300, 300},
		{-1, 0xFFFF},
		{-65536, 0},
		{1 << 40, 0},
	}
	for _, tt := range tests {
		if got := Serial(tt.in); got != tt.want {
			t.Errorf("Serial(%d) = %d, want %d", tt.in, got, tt.want)
		}
		// wrapping is idempotent
		if !bytes.Equal(FormatROM(Serial(tt.in)), FormatROM(Serial(int64(Serial(tt.in))))) {
			t.Errorf("FormatROM(Serial(%d)) differs from its mod 65536 encoding", tt.in)
		}
	}
}

func TestParseSerial(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
	}{
		{"5", 5},
		{"300", 300},
		{" 42\n", 42},
		{"+7", 7},
		{"65536", 0},
		{"70000", 70000 - 65536},
		{"-1", 0xFFFF},
		{"-65537", 0xFFFF},
		{"18446744073709551617", 1},       // 2^64 + 1
		{"-18446744073709551617", 0xFFFF}, // -(2^64 + 1)
	}
	for _, tt := range tests {
		got, err := ParseSerial(tt.in)
		if err != nil {
			t.Errorf("ParseSerial(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSerial(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseSerial_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.5", "0x10", "12a", "1e3"} {
		_, err := ParseSerial(in)
		if err == nil {
			t.Errorf("ParseSerial(%q): expected error", in)
			continue
		}

		var serr *SerialError
		if !errors.As(err, &serr) {
			t.Errorf("ParseSerial(%q): error %T is not *SerialError", in, err)
		}
		var nerr *strconv.NumError
		if !errors.As(err, &nerr) {
			t.Errorf("ParseSerial(%q): error does not wrap *strconv.NumError", in)
		}
	}
}
