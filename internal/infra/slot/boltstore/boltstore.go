// Package boltstore keeps the active-round slot as a key in a bbolt database.
package boltstore

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/aalvaropc/forecounter/internal/domain"
	"github.com/aalvaropc/forecounter/internal/ports"
)

// DefaultFileName is the database created under the data home.
const DefaultFileName = "forecounter.db"

const roundsBucket = "rounds"

// Store provides a BoltDB-backed slot.
type Store struct {
	db   *bbolt.DB
	path string
	key  []byte
}

// Open opens (or creates) the database at path and addresses the slot by key.
func Open(path, key string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &domain.OpError{
			Op:   "boltstore.open",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("storage path is required: %w", domain.ErrInvalidConfig),
		}
	}
	if strings.TrimSpace(key) == "" {
		key = domain.ActiveRoundSlot
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, &domain.OpError{
			Op:   "boltstore.open",
			Kind: domain.KindStorage,
			Path: cleanPath,
			Err:  err,
		}
	}

	s := &Store{db: db, path: cleanPath, key: []byte(key)}
	if err := s.ensureBucket(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

var _ ports.Slot = (*Store)(nil)

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Read() ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(roundsBucket))
		if bucket == nil {
			return fmt.Errorf("rounds bucket is missing")
		}
		payload := bucket.Get(s.key)
		if payload == nil {
			return nil
		}
		// Values are only valid for the life of the transaction.
		out = make([]byte, len(payload))
		copy(out, payload)
		return nil
	})
	if err != nil {
		return nil, s.opErr("boltstore.read", err)
	}
	if out == nil {
		return nil, &domain.OpError{
			Op:   "boltstore.read",
			Kind: domain.KindNotFound,
			Path: s.path,
			Err:  domain.ErrNotFound,
		}
	}
	return out, nil
}

func (s *Store) Write(payload []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(roundsBucket))
		if bucket == nil {
			return fmt.Errorf("rounds bucket is missing")
		}
		// bbolt treats a nil value as missing.
		if payload == nil {
			payload = []byte{}
		}
		return bucket.Put(s.key, payload)
	})
	if err != nil {
		return s.opErr("boltstore.write", err)
	}
	return nil
}

func (s *Store) Delete() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(roundsBucket))
		if bucket == nil {
			return nil
		}
		return bucket.Delete(s.key)
	})
	if err != nil {
		return s.opErr("boltstore.delete", err)
	}
	return nil
}

func (s *Store) ensureBucket() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(roundsBucket)); err != nil {
			return fmt.Errorf("create rounds bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		return s.opErr("boltstore.ensure_bucket", err)
	}
	return nil
}

func (s *Store) opErr(op string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindStorage,
		Path: s.path,
		Err:  err,
	}
}
