package i2cid

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"sync"
)

// DefaultPaths lists the locations searched for a user-supplied address
// database.
var DefaultPaths = []string{
	"/etc/i2c.ids",
	"/usr/local/share/misc/i2c.ids",
}

// builtin maps well-known 7-bit addresses to the device family usually
// found there. Many addresses are shared across vendors; the names here
// are the most common occupants.
var builtin = map[uint16]string{
	0x0C: "AK8963 magnetometer",
	0x1C: "LIS3DH accelerometer",
	0x1D: "ADXL345 accelerometer",
	0x20: "PCF8574 I/O expander",
	0x23: "BH1750 light sensor",
	0x27: "HD44780 LCD backpack",
	0x29: "VL53L0X time-of-flight",
	0x38: "AHT20 humidity sensor",
	0x39: "APDS-9960 gesture sensor",
	0x3C: "SSD1306 OLED display",
	0x40: "INA219 current monitor",
	0x48: "ADS1115 ADC",
	0x50: "AT24 EEPROM",
	0x53: "ADXL345 accelerometer",
	0x57: "MAX30102 pulse oximeter",
	0x5A: "MLX90614 IR thermometer",
	0x60: "MCP4725 DAC",
	0x68: "DS3231 RTC",
	0x69: "MPU-6050 IMU",
	0x6B: "LSM6DS3 IMU",
	0x76: "BME280 environment sensor",
	0x77: "BMP180 pressure sensor",
}

// Database caches device names keyed by 7-bit target address.
type Database struct {
	devices map[uint16]string
	loaded  bool
	mu      sync.RWMutex
	paths   []string
}

// New creates a database that searches the default file paths.
func New() *Database {
	return &Database{
		devices: make(map[uint16]string),
		paths:   DefaultPaths,
	}
}

// NewWithPaths creates a database that searches the specified paths.
func NewWithPaths(paths []string) *Database {
	return &Database{
		devices: make(map[uint16]string),
		paths:   paths,
	}
}

// Load populates the database from the built-in table and the first
// readable user file. Idempotent; subsequent calls do nothing.
//
// Returns true when a user file contributed entries.
func (db *Database) Load() bool {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.loaded {
		return true
	}

	for addr, name := range builtin {
		db.devices[addr] = name
	}
	db.loaded = true

	for _, path := range db.paths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		db.parse(f)
		f.Close()
		return true
	}
	return false
}

// parse merges entries from r into the database. Caller holds the
// write lock.
func (db *Database) parse(f *os.File) {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		addr, err := strconv.ParseUint(strings.TrimPrefix(fields[0], "0x"), 16, 16)
		if err != nil {
			continue
		}
		db.devices[uint16(addr)] = strings.Join(fields[1:], " ")
	}
}

// Lookup returns the device name registered for addr, or an empty
// string when the address is unknown.
func (db *Database) Lookup(addr uint16) string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.devices[addr]
}

// Known reports whether addr has a registered device name.
func (db *Database) Known(addr uint16) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	_, ok := db.devices[addr]
	return ok
}
