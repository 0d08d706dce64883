package seed

import (
	"errors"
	"time"

	"bookstore/internal/book"
)

// Config describes one seeding run.
type Config struct {
	URI        string
	Database   string
	Collection string
	Records    []book.Book

	// Timeout bounds connect through read-back. The close gets a window of
	// its own of the same length so it still runs after a timeout.
	// Zero means no bound.
	Timeout time.Duration
}

// Validate checks that the target is fully addressed.
func (c Config) Validate() error {
	switch {
	case c.URI == "":
		return errors.New("seed: uri is required")
	case c.Database == "":
		return errors.New("seed: database is required")
	case c.Collection == "":
		return errors.New("seed: collection is required")
	case c.Timeout < 0:
		return errors.New("seed: timeout must not be negative")
	}
	return nil
}
