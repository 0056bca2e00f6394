package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileWritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HourlyRate != DefaultHourlyRate {
		t.Fatalf("HourlyRate = %v, want %v", cfg.HourlyRate, DefaultHourlyRate)
	}
	if cfg.Currency != DefaultCurrency {
		t.Fatalf("Currency = %q, want %q", cfg.Currency, DefaultCurrency)
	}

	// First run should leave an annotated template behind.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("template not written: %v", err)
	}

	// The template itself must parse back to the defaults.
	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if again != cfg {
		t.Fatalf("template round trip mismatch: %+v vs %+v", again, cfg)
	}
}

func TestLoadCustomValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "hourly_rate: 22.25\ncurrency: \"€\"\ndatabase_path: /tmp/x.db\nexport_dir: /tmp/exports\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HourlyRate != 22.25 || cfg.Currency != "€" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.DatabasePath != "/tmp/x.db" || cfg.ExportDir != "/tmp/exports" {
		t.Fatalf("paths not loaded: %+v", cfg)
	}
}

func TestLoadFillsZeroFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("export_dir: /tmp/e\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HourlyRate != DefaultHourlyRate || cfg.Currency != DefaultCurrency {
		t.Fatalf("defaults not filled: %+v", cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t bad"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	// Even on error the returned config is usable.
	if cfg.HourlyRate != DefaultHourlyRate {
		t.Fatalf("fallback config not returned: %+v", cfg)
	}
}
