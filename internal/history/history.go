// Package history tracks subtitle files the CLI has already downloaded so a
// repeated download does not re-spend the account's daily quota.
package history

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketDownloads = []byte("downloads")

// Entry records a completed download of a subtitle file.
type Entry struct {
	FileID  int       `json:"file_id"`
	Path    string    `json:"path"`
	SavedAt time.Time `json:"saved_at"`
}

// Store is a bbolt-backed download history.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening history database %q: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDownloads)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history database %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores e, replacing any previous entry for the same file ID.
func (s *Store) Record(e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDownloads).Put(key(e.FileID), data)
	})
}

// Lookup returns the entry for fileID, or nil when it was never downloaded.
func (s *Store) Lookup(fileID int) (*Entry, error) {
	var entry *Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketDownloads).Get(key(fileID))
		if data == nil {
			return nil
		}
		entry = &Entry{}
		return json.Unmarshal(data, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("reading history entry %d: %w", fileID, err)
	}
	return entry, nil
}

func key(fileID int) []byte {
	return []byte(strconv.Itoa(fileID))
}
