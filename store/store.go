package store

import (
	"time"

	"github.com/oarlock/rowflow/internal/models"
)

// DB is the session log storage interface.
type DB interface {
	// AddRecord appends a session record to the log. A missing ID or
	// created_at timestamp is filled in before the record is stored.
	AddRecord(r *models.Record) error
	// GetRecords returns records whose date falls within the given bounds
	// (zero times mean unbounded), optionally restricted to the given
	// session types. Results come back in insertion order.
	GetRecords(start, end time.Time, types []string) ([]models.Record, error)
	// DeleteRecords removes one or more saved records
	DeleteRecords(records []models.Record) error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
