// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParse_OverridesDefaults(t *testing.T) {
	p, err := Parse([]byte(`
bus:
  name: ftdi
  address: 0x51
  speed_hz: 400000
program:
  tries: 5
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Bus.Name != "ftdi" || p.Bus.Address != 0x51 || p.Bus.SpeedHz != 400000 {
		t.Fatalf("bus = %+v", p.Bus)
	}
	if p.Program.Tries != 5 {
		t.Fatalf("tries = %d, want 5", p.Program.Tries)
	}
	// untouched keys keep their defaults
	if p.Program.PageDelay() != 100*time.Millisecond {
		t.Fatalf("page delay = %v, want 100ms", p.Program.PageDelay())
	}
	if p.Program.RetryDelay() != 500*time.Millisecond {
		t.Fatalf("retry delay = %v, want 500ms", p.Program.RetryDelay())
	}
}

func TestParse_Empty(t *testing.T) {
	p, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *p != *Default() {
		t.Fatalf("got %+v, want defaults", p)
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("bus:\n  adress: 0x50\n"))
	if err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "station.yaml")
	if err := os.WriteFile(path, []byte("program:\n  page_delay_ms: 20\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Program.PageDelay() != 20*time.Millisecond {
		t.Fatalf("page delay = %v, want 20ms", p.Program.PageDelay())
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

// ---- validation ----

func TestValidate_Default(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantMsg string
	}{
		{"reserved address", func(p *Profile) { p.Bus.Address = 0x03 }, "bus.address"},
		{"10-bit address", func(p *Profile) { p.Bus.Address = 0x150 }, "bus.address"},
		{"negative speed", func(p *Profile) { p.Bus.SpeedHz = -1 }, "bus.speed_hz"},
		{"zero tries", func(p *Profile) { p.Program.Tries = 0 }, "program.tries"},
		{"negative page delay", func(p *Profile) { p.Program.PageDelayMs = -5 }, "program.page_delay_ms"},
		{"negative retry delay", func(p *Profile) { p.Program.RetryDelayMs = -5 }, "program.retry_delay_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(p)
			err := Validate(p)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error %q should mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	p := Default()
	p.Bus.Name = "1"
	before := *p
	_ = Validate(p)
	if *p != before {
		t.Fatalf("Validate mutated profile: %+v -> %+v", before, *p)
	}
}
