// SPDX-License-Identifier: MIT
// Package: cliquespec/archive
//
// store.go — BadgerDB-backed counterexample store.

package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/katalvlaran/cliquespec/graphio"
)

var (
	// ErrNotFound indicates that no record exists under the requested ID.
	ErrNotFound = errors.New("archive: record not found")

	// ErrNoPath indicates a persistent store was requested without a directory.
	ErrNoPath = errors.New("archive: path is required for a persistent store")
)

const keyPrefix = "cx/"

// Record is one archived counterexample: the graph pair, their clique counts,
// transition matrices and spectral radii, plus the run that produced it.
type Record struct {
	ID        string           `json:"id" yaml:"id"`
	RunID     string           `json:"run_id" yaml:"run_id"`
	CreatedAt time.Time        `json:"created_at" yaml:"created_at"`
	Seed      int64            `json:"seed" yaml:"seed"`
	Trial     int64            `json:"trial" yaml:"trial"`
	Graph1    graphio.Document `json:"graph1" yaml:"graph1"`
	Graph2    graphio.Document `json:"graph2" yaml:"graph2"`
	Cliques1  int              `json:"cliques1" yaml:"cliques1"`
	Cliques2  int              `json:"cliques2" yaml:"cliques2"`
	Matrix1   [][]float64      `json:"matrix1" yaml:"matrix1"`
	Matrix2   [][]float64      `json:"matrix2" yaml:"matrix2"`
	Rho1      float64          `json:"rho1" yaml:"rho1"`
	Rho2      float64          `json:"rho2" yaml:"rho2"`
}

// Config configures Open.
type Config struct {
	// Dir is the database directory. Ignored when InMemory is true.
	Dir string

	// InMemory keeps everything in memory (tests).
	InMemory bool

	// Logger receives Badger's internal log lines. Nil disables them.
	Logger *slog.Logger
}

// Store is a counterexample archive. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Open opens (or creates) the store described by cfg.
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Dir == "" {
			return nil, fmt.Errorf("archive.Open: %w", ErrNoPath)
		}
		if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
			return nil, fmt.Errorf("archive.Open: create %s: %w", cfg.Dir, err)
		}
		opts = badger.DefaultOptions(cfg.Dir).WithSyncWrites(true)
	}
	opts = opts.WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("archive.Open: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores rec. A missing ID is filled with a new UUID and a zero
// CreatedAt with the current time; the stored record is returned.
func (s *Store) Put(rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return Record{}, fmt.Errorf("archive.Put: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+rec.ID), data)
	})
	if err != nil {
		return Record{}, fmt.Errorf("archive.Put(%s): %w", rec.ID, err)
	}

	return rec, nil
}

// Get returns the record stored under id.
func (s *Store) Get(id string) (Record, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return Record{}, fmt.Errorf("archive.Get(%s): %w", id, err)
	}

	return rec, nil
}

// Delete removes the record stored under id.
func (s *Store) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + id))
	})
	if err != nil {
		return fmt.Errorf("archive.Delete(%s): %w", id, err)
	}

	return nil
}

// List returns every record, oldest first.
func (s *Store) List() ([]Record, error) {
	var out []Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(opts.Prefix); it.Next() {
			var rec Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("archive.List: %w", err)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out, nil
}
