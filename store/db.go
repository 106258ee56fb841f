// Package store connects to the data store and manages the session log.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"slices"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/oarlock/rowflow/internal/models"
)

const recordsBucket = "records"

var pathToDB string

var errRowflowRunning = errors.New(
	"is rowflow already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// recordKey orders the records bucket by insertion time. The uuid suffix
// keeps same-instant inserts from clobbering each other.
func recordKey(r *models.Record) []byte {
	return []byte(r.CreatedAt.Format(time.RFC3339Nano) + "-" + r.ID)
}

func (c *Client) AddRecord(r *models.Record) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	value, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).Put(recordKey(r), value)
	})
}

func (c *Client) GetRecords(
	start, end time.Time,
	types []string,
) ([]models.Record, error) {
	var records []models.Record

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(recordsBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var r models.Record

			err := json.Unmarshal(v, &r)
			if err != nil {
				return err
			}

			if !start.IsZero() && r.Date.Before(start) {
				continue
			}

			if !end.IsZero() && r.Date.After(end) {
				continue
			}

			if len(types) != 0 && !slices.Contains(types, string(r.Type)) {
				continue
			}

			records = append(records, r)
		}

		return nil
	})

	return records, err
}

func (c *Client) DeleteRecords(records []models.Record) error {
	return c.Update(func(tx *bolt.Tx) error {
		for i := range records {
			r := records[i]

			err := tx.Bucket([]byte(recordsBucket)).Delete(recordKey(&r))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errRowflowRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}

	// Create the records bucket if it does not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(recordsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
