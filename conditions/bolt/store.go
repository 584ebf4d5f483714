// Package bolt provides a bbolt file backed conditions.Store.
package bolt

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/hazeltet845/cmssw/conditions"
	"github.com/hazeltet845/cmssw/errors"
)

const simBeamSpotBucket = "simBeamSpot"

// Store keeps one JSON encoded record per interval, keyed by run and
// luminosity block in big endian order so keys sort like intervals.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(simBeamSpotBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket %s: %w", simBeamSpotBucket, err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put persists a beam spot record.
func (s *Store) Put(ctx context.Context, iov conditions.IOV, record conditions.SimBeamSpot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal beam spot: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(simBeamSpotBucket)).Put(encodeKey(iov), payload)
	})
}

// Lookup ...
func (s *Store) Lookup(ctx context.Context, at conditions.IOV) (conditions.IOV, error) {
	if err := ctx.Err(); err != nil {
		return conditions.IOV{}, err
	}
	var found []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		target := encodeKey(at)
		c := tx.Bucket([]byte(simBeamSpotBucket)).Cursor()
		k, _ := c.Seek(target)
		switch {
		case k == nil:
			k, _ = c.Last()
		case !bytes.Equal(k, target):
			k, _ = c.Prev()
		}
		if k != nil {
			found = append([]byte(nil), k...)
		}
		return nil
	})
	if err != nil {
		return conditions.IOV{}, err
	}
	if found == nil {
		return conditions.IOV{}, fmt.Errorf("%w: no beam spot interval covers %s", errors.ErrNotFound, at)
	}
	return decodeKey(found), nil
}

// Get ...
func (s *Store) Get(ctx context.Context, iov conditions.IOV) (conditions.SimBeamSpot, error) {
	if err := ctx.Err(); err != nil {
		return conditions.SimBeamSpot{}, err
	}
	var record conditions.SimBeamSpot
	err := s.db.View(func(tx *bbolt.Tx) error {
		payload := tx.Bucket([]byte(simBeamSpotBucket)).Get(encodeKey(iov))
		if payload == nil {
			return fmt.Errorf("%w: no beam spot stored for %s", errors.ErrNotFound, iov)
		}
		if err := json.Unmarshal(payload, &record); err != nil {
			return fmt.Errorf("unmarshal beam spot %s: %w", iov, err)
		}
		return nil
	})
	if err != nil {
		return conditions.SimBeamSpot{}, err
	}
	return record, nil
}

func encodeKey(iov conditions.IOV) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint32(key[:4], iov.Run)
	binary.BigEndian.PutUint32(key[4:], iov.LumiBlock)
	return key
}

func decodeKey(key []byte) conditions.IOV {
	return conditions.IOV{
		Run:       binary.BigEndian.Uint32(key[:4]),
		LumiBlock: binary.BigEndian.Uint32(key[4:]),
	}
}
