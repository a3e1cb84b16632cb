// Package localstore persists per-scope snapshot blobs in an embedded
// BadgerDB, serving as the durable cache for anonymous sessions.
package localstore

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Config holds the BadgerDB settings.
type Config struct {
	// Path is the directory for database files. Ignored when InMemory is set.
	Path string

	// InMemory disables disk persistence; used by tests.
	InMemory bool

	// SyncWrites forces fsync on every write.
	SyncWrites bool

	// Logger receives badger's internal messages. Nil disables them.
	Logger *slog.Logger
}

// Store is a key-value blob store: Get returns absence via ok=false and
// Set overwrites unconditionally.
type Store struct {
	db *badger.DB
}

func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithSyncWrites(cfg.SyncWrites)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&slogAdapter{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	var blob []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		blob, err = item.ValueCopy(nil)

		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("reading %q: %w", key, err)
	}

	return blob, true, nil
}

func (s *Store) Set(key string, blob []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), blob)
	})
	if err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// slogAdapter bridges badger's printf-style logger onto slog.
type slogAdapter struct {
	logger *slog.Logger
}

func (l *slogAdapter) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *slogAdapter) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *slogAdapter) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *slogAdapter) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
