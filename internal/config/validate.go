// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks profile correctness.
// It performs declarative validation only and does not mutate the profile.
func Validate(p *Profile) error {
	// 7-bit addressing; 0x00-0x07 and 0x78-0x7F are reserved
	if a := p.Bus.Address; a < 0x08 || a > 0x77 {
		return fmt.Errorf("bus.address %#02x outside the 7-bit range 0x08-0x77", a)
	}
	if p.Bus.SpeedHz < 0 {
		return fmt.Errorf("bus.speed_hz must not be negative (got %d)", p.Bus.SpeedHz)
	}

	if p.Program.Tries < 1 {
		return fmt.Errorf("program.tries must be at least 1 (got %d)", p.Program.Tries)
	}
	if p.Program.PageDelayMs < 0 {
		return fmt.Errorf("program.page_delay_ms must not be negative (got %d)", p.Program.PageDelayMs)
	}
	if p.Program.RetryDelayMs < 0 {
		return fmt.Errorf("program.retry_delay_ms must not be negative (got %d)", p.Program.RetryDelayMs)
	}
	return nil
}
