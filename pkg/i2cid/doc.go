// Package i2cid maps I2C target addresses to human-readable device
// names.
//
// The I2C address space has no registry file shipped with the OS, so
// the package carries a built-in table of devices commonly
// found on 7-bit addresses and optionally merges user-supplied entries
// from a file.
//
// # Usage
//
// Load the database once at startup:
//
//	db := i2cid.New()
//	db.Load()
//
// Then look up device names by address:
//
//	name := db.Lookup(0x68)
//
// # Database File Format
//
// User files contain one entry per line: a hexadecimal address followed
// by whitespace and the device name. Lines starting with '#' are
// comments. User entries override built-in ones.
//
// # Thread Safety
//
// All methods are safe for concurrent use. The database uses a
// read-write lock to allow concurrent lookups while protecting against
// concurrent loads.
package i2cid
