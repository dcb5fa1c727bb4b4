package i2cid

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupBuiltin(t *testing.T) {
	db := New()
	db.Load()

	if got := db.Lookup(0x50); got != "AT24 EEPROM" {
		t.Errorf("Lookup(0x50) = %q, want AT24 EEPROM", got)
	}
	if got := db.Lookup(0x7F); got != "" {
		t.Errorf("Lookup(0x7F) = %q, want empty", got)
	}
	if !db.Known(0x68) {
		t.Error("Known(0x68) = false, want true")
	}
}

func TestLoadMissingFileKeepsBuiltins(t *testing.T) {
	db := NewWithPaths([]string{"/nonexistent/i2c.ids"})
	if db.Load() {
		t.Error("Load() = true with no readable file")
	}
	if !db.Known(0x76) {
		t.Error("built-in entries missing after failed file load")
	}
}

func TestUserFileOverridesBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "i2c.ids")
	content := "# test entries\n" +
		"0x50 FRAM module\n" +
		"42 custom controller\n" +
		"bogus line without address\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	db := NewWithPaths([]string{path})
	if !db.Load() {
		t.Fatal("Load() = false, want true")
	}
	if got := db.Lookup(0x50); got != "FRAM module" {
		t.Errorf("Lookup(0x50) = %q, want user override", got)
	}
	if got := db.Lookup(0x42); got != "custom controller" {
		t.Errorf("Lookup(0x42) = %q, want custom controller", got)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	db := New()
	db.Load()
	db.Load()
	if got := db.Lookup(0x68); got != "DS3231 RTC" {
		t.Errorf("Lookup(0x68) = %q after reload, want DS3231 RTC", got)
	}
}
