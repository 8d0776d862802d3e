package storage

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"

	"recipebox/internal/common"
)

// maxTxnRetries bounds how often an Update is retried after a badger
// transaction conflict before giving up.
const maxTxnRetries = 10

// BadgerStore is a KeyValueStore backed by an embedded BadgerDB instance.
// It is the production backend: durable, single-process, no external server.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens a persistent BadgerDB at path, creating the directory
// if it does not exist. Badger's internal logging is disabled; the request
// logger is noisy enough.
func NewBadgerStore(path string) (*BadgerStore, error) {
	if path == "" {
		return nil, errors.New("path is required for a persistent store")
	}
	if err := os.MkdirAll(path, 0o750); err != nil {
		return nil, fmt.Errorf("create store directory %s: %w", path, err)
	}

	opts := badger.DefaultOptions(path).WithSyncWrites(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// NewInMemoryBadgerStore opens an in-memory BadgerDB, used in tests. Data is
// lost when the store is closed.
func NewInMemoryBadgerStore() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the underlying database. The store is unusable afterwards.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, if any.
func (s *BadgerStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var value string
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			found = true
			return nil
		})
	})
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %v", common.ErrStoreUnavailable, key, err)
	}
	return value, found, nil
}

// Set stores value under key, overwriting any prior value.
func (s *BadgerStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("%w: set %s: %v", common.ErrStoreUnavailable, key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *BadgerStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("%w: delete %s: %v", common.ErrStoreUnavailable, key, err)
	}
	return nil
}

// Update runs fn inside a read-write transaction. Badger's snapshot
// isolation rejects a commit when another transaction wrote the same key in
// the meantime; such conflicts are retried with a fresh read, so concurrent
// whole-collection rewrites never lose each other's writes.
func (s *BadgerStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		var fnErr error
		err := s.db.Update(func(txn *badger.Txn) error {
			current := ""
			found := false
			item, err := txn.Get([]byte(key))
			switch {
			case errors.Is(err, badger.ErrKeyNotFound):
				// First write to this key.
			case err != nil:
				return err
			default:
				if err := item.Value(func(val []byte) error {
					current = string(val)
					found = true
					return nil
				}); err != nil {
					return err
				}
			}

			next, err := fn(current, found)
			if err != nil {
				fnErr = err
				return err
			}
			return txn.Set([]byte(key), []byte(next))
		})
		if err == nil {
			return nil
		}
		if fnErr != nil {
			return fnErr
		}
		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		return fmt.Errorf("%w: update %s: %v", common.ErrStoreUnavailable, key, err)
	}
	return fmt.Errorf("%w: update %s: retries exhausted after repeated conflicts", common.ErrStoreUnavailable, key)
}
