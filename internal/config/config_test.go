package config

import (
	"testing"
)

func TestDefaults(t *testing.T) {
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if got := GetString("database-url"); got != DefaultDatabaseURL {
		t.Errorf("database-url = %q, want default", got)
	}
	if got := GetString("pe-file"); got != DefaultPEFile {
		t.Errorf("pe-file = %q, want default", got)
	}
	if got := GetString("ib-file"); got != DefaultIBFile {
		t.Errorf("ib-file = %q, want default", got)
	}
	if got := GetString("cutoff-date"); got != "2024-12-20" {
		t.Errorf("cutoff-date = %q, want 2024-12-20", got)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PROBSYNC_DATABASE_URL", "postgres://example/test")
	t.Setenv("PROBSYNC_PE_FILE", "/tmp/pe.xlsx")

	if err := Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if got := GetString("database-url"); got != "postgres://example/test" {
		t.Errorf("database-url = %q, want env override", got)
	}
	if got := GetString("pe-file"); got != "/tmp/pe.xlsx" {
		t.Errorf("pe-file = %q, want env override", got)
	}
	if got := GetString("ib-file"); got != DefaultIBFile {
		t.Errorf("ib-file = %q, want default", got)
	}
}

func TestSetOverride(t *testing.T) {
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	Set("database-url", "postgres://other/db")
	if got := GetString("database-url"); got != "postgres://other/db" {
		t.Errorf("database-url = %q, want explicit Set value", got)
	}
}
