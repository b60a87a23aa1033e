// Package store connects to the data store and manages the game record and
// the history of completed sessions
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/ayoisaiah/focusquest/internal/models"
	"github.com/ayoisaiah/focusquest/internal/osutil"
	"github.com/ayoisaiah/focusquest/internal/timeutil"
)

const (
	stateBucket   = "state"
	sessionBucket = "sessions"
	// StateKey is the fixed key under which the game record is stored.
	StateKey = "focusquest-data"
)

// DB is the database storage interface.
type DB interface {
	// LoadRecord returns the saved game record, or the default record if
	// nothing has been saved yet
	LoadRecord() (models.Record, error)
	// SaveRecord overwrites the saved game record
	SaveRecord(r models.Record) error
	// AddSession stores a completed focus session
	AddSession(sess *models.Session) error
	// GetSessions returns the sessions started within the given bounds
	GetSessions(startTime, endTime time.Time) ([]*models.Session, error)
	// Close ends the database connection
	Close() error
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// LoadRecord implements DB.
func (c *Client) LoadRecord() (models.Record, error) {
	r := models.DefaultRecord()

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(stateBucket)).Get([]byte(StateKey))
		if len(b) == 0 {
			return nil
		}

		r = models.DecodeRecord(b)

		return nil
	})
	if err != nil {
		return models.DefaultRecord(), errReadState.Wrap(err)
	}

	return r, nil
}

// SaveRecord implements DB.
func (c *Client) SaveRecord(r models.Record) error {
	value, err := r.Encode()
	if err != nil {
		return errWriteState.Wrap(err)
	}

	err = c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Put([]byte(StateKey), value)
	})
	if err != nil {
		return errWriteState.Wrap(err)
	}

	return nil
}

// AddSession implements DB.
func (c *Client) AddSession(sess *models.Session) error {
	key := timeutil.ToKey(sess.StartTime.UTC())

	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put(key, value)
	})
}

// GetSessions implements DB.
func (c *Client) GetSessions(
	startTime, endTime time.Time,
) ([]*models.Session, error) {
	var sessions []*models.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		minKey := timeutil.ToKey(startTime.UTC())
		maxKey := timeutil.ToKey(endTime.UTC())

		for k, v := cur.Seek(minKey); k != nil && bytes.Compare(k, maxKey) <= 0; k, v = cur.Next() {
			sess := &models.Session{}

			err := json.Unmarshal(v, sess)
			if err != nil {
				return err
			}

			sessions = append(sessions, sess)
		}

		return nil
	})

	return sessions, err
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, berrors.ErrTimeout) {
			return nil, errFocusRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(stateBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))

		return err
	})
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Client{
		db,
	}, nil
}
