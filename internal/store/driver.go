package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Supported values for Options.Driver.
const (
	DriverModernc = "sqlite"  // modernc.org/sqlite, pure Go
	DriverMattn   = "sqlite3" // github.com/mattn/go-sqlite3, needs cgo
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown sqlite driver")

// driverName maps an empty driver to the default.
func driverName(driver string) string {
	if driver == "" {
		return DriverModernc
	}
	return driver
}

// dsn builds the connection string for driver. Both open the file in WAL
// mode with a busy timeout so a second process (the CLI while the UI runs)
// waits instead of failing.
func dsn(driver, path string) (string, error) {
	switch driverName(driver) {
	case DriverModernc:
		return path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
	case DriverMattn:
		return path + "?_busy_timeout=5000&_journal_mode=WAL", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

func openDB(driver, path string) (*sql.DB, error) {
	source, err := dsn(driver, path)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driverName(driver), source)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}
