package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zoobzio/securevar"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	IndexBucket = []byte("index") // Entry per name, readable without a password
	BlobsBucket = []byte("blobs") // Envelope buffers
)

// ErrNotFound indicates no envelope is stored under a name.
var ErrNotFound = errors.New("variable not found")

// Entry describes a stored envelope.
type Entry struct {
	Name      string    `json:"name"`
	Size      int       `json:"size"`
	Algorithm string    `json:"algorithm"`
	Codec     string    `json:"codec"`
	Encrypted bool      `json:"encrypted"`
	Modified  time.Time `json:"modified"`
}

// Store provides bbolt-backed storage for envelope buffers.
type Store struct {
	db *bolt.DB
}

// Open opens or creates a vault file and its buckets.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{IndexBucket, BlobsBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores data under name, replacing any previous envelope. algorithm and
// codec are recorded so the envelope can be imported with the same settings.
func (s *Store) Put(name string, data []byte, algorithm, codec string) error {
	if name == "" {
		return errors.New("name is required")
	}

	entry := Entry{
		Name:      name,
		Size:      len(data),
		Algorithm: algorithm,
		Codec:     codec,
		Modified:  time.Now().UTC(),
	}
	if header, err := securevar.ParseHeader(data, 0); err == nil {
		entry.Encrypted = header.Encrypted
	}

	index, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(BlobsBucket).Put([]byte(name), data); err != nil {
			return err
		}
		return tx.Bucket(IndexBucket).Put([]byte(name), index)
	})
}

// Get returns the envelope and its entry stored under name.
func (s *Store) Get(name string) ([]byte, *Entry, error) {
	var data []byte
	var entry Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		blob := tx.Bucket(BlobsBucket).Get([]byte(name))
		if blob == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		// Make a copy since the slice is only valid during the transaction
		data = append([]byte{}, blob...)

		raw := tx.Bucket(IndexBucket).Get([]byte(name))
		if raw == nil {
			entry = Entry{Name: name, Size: len(data)}
			return nil
		}
		return json.Unmarshal(raw, &entry)
	})
	if err != nil {
		return nil, nil, err
	}
	return data, &entry, nil
}

// List returns every entry in name order.
func (s *Store) List() ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(IndexBucket).ForEach(func(_, v []byte) error {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}
			entries = append(entries, entry)
			return nil
		})
	})
	return entries, err
}

// Delete removes the envelope stored under name.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		blobs := tx.Bucket(BlobsBucket)
		if blobs.Get([]byte(name)) == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		if err := blobs.Delete([]byte(name)); err != nil {
			return err
		}
		return tx.Bucket(IndexBucket).Delete([]byte(name))
	})
}
