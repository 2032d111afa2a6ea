// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile describes a programming station: which bus the SAO is attached
// to and how writes are paced.
type Profile struct {
	Bus     BusConfig     `yaml:"bus"`
	Program ProgramConfig `yaml:"program"`
}

// ---- BUS ----

type BusConfig struct {
	Name    string `yaml:"name"`     // i2creg name/number, "ftdi", "" = first bus
	Address uint16 `yaml:"address"`  // 7-bit
	SpeedHz int64  `yaml:"speed_hz"` // 0 = leave unchanged
}

// ---- PROGRAM ----

type ProgramConfig struct {
	Tries        int `yaml:"tries"`
	PageDelayMs  int `yaml:"page_delay_ms"`
	RetryDelayMs int `yaml:"retry_delay_ms"`
}

func (p ProgramConfig) PageDelay() time.Duration {
	return time.Duration(p.PageDelayMs) * time.Millisecond
}

func (p ProgramConfig) RetryDelay() time.Duration {
	return time.Duration(p.RetryDelayMs) * time.Millisecond
}

// Default returns the profile used when no file is given.
func Default() *Profile {
	return &Profile{
		Bus: BusConfig{
			Address: 0x50,
		},
		Program: ProgramConfig{
			Tries:        3,
			PageDelayMs:  100,
			RetryDelayMs: 500,
		},
	}
}

// Load reads a YAML profile. Keys missing from the file keep their
// Default values.
func Load(path string) (*Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes a YAML profile over Default. Unknown keys are rejected; an
// empty document yields Default.
func Parse(b []byte) (*Profile, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}
