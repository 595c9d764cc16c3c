// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"errors"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils"
	"github.com/ava-labs/avalanchego/utils/units"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/greetlabs/greetvm/state"
)

var (
	errUnknownBatchOp = errors.New("unknown batch operation")

	_ state.Database = (*Database)(nil)
	_ database.Batch = (*batch)(nil)
)

// Database wraps a pebble store behind the account-state interface the
// simulator commits to.
type Database struct {
	db      *pebble.DB
	metrics *metrics

	closed  utils.Atomic[bool]
	closing chan struct{}

	writeOptions *pebble.WriteOptions
}

type Config struct {
	CacheSize                   int64
	BytesPerSync                int
	MemTableStopWritesThreshold int
	MemTableSize                uint64
	MaxOpenFiles                int

	// Sync flushes the WAL on every write. Slower but survives process
	// crashes without losing committed invocations.
	Sync bool
}

func NewDefaultConfig() *Config {
	return &Config{
		CacheSize:                   512 * units.MiB,
		BytesPerSync:                units.MiB,
		MemTableStopWritesThreshold: 8,
		MemTableSize:                16 * units.MiB,
		MaxOpenFiles:                4096,
		Sync:                        false,
	}
}

func New(file string, cfg *Config) (*Database, *prometheus.Registry, error) {
	registry, m, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}
	db := &Database{
		metrics: m,
		closing: make(chan struct{}),
	}
	opts := &pebble.Options{
		Cache:                       pebble.NewCache(cfg.CacheSize),
		BytesPerSync:                cfg.BytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MemTableSize:                cfg.MemTableSize,
		MaxOpenFiles:                cfg.MaxOpenFiles,
		EventListener: &pebble.EventListener{
			CompactionBegin: db.onCompactionBegin,
			CompactionEnd:   db.onCompactionEnd,
			WriteStallBegin: db.onWriteStallBegin,
			WriteStallEnd:   db.onWriteStallEnd,
		},
	}
	opts.Experimental.ReadSamplingMultiplier = -1 // explicitly disable seek compaction

	if cfg.Sync {
		db.writeOptions = pebble.Sync
	} else {
		db.writeOptions = pebble.NoSync
	}

	db.db, err = pebble.Open(file, opts)
	if err != nil {
		return nil, nil, err
	}
	go db.collectMetrics()
	return db, registry, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	if db.closed.Get() {
		return false, database.ErrClosed
	}
	_, closer, err := db.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, closer.Close()
}

func (db *Database) Get(key []byte) ([]byte, error) {
	if db.closed.Get() {
		return nil, database.ErrClosed
	}
	start := time.Now()
	data, closer, err := db.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// The slice is only valid until closer is closed, so it must be copied
	// out.
	ret := make([]byte, len(data))
	copy(ret, data)
	if err := closer.Close(); err != nil {
		return nil, err
	}
	db.metrics.getLatency.Observe(float64(time.Since(start)))
	return ret, nil
}

func (db *Database) Put(key []byte, value []byte) error {
	if db.closed.Get() {
		return database.ErrClosed
	}
	return db.db.Set(key, value, db.writeOptions)
}

func (db *Database) Delete(key []byte) error {
	if db.closed.Get() {
		return database.ErrClosed
	}
	return db.db.Delete(key, db.writeOptions)
}

func (db *Database) NewBatch() database.Batch {
	return &batch{db: db, b: db.db.NewBatch()}
}

func (db *Database) Close() error {
	if db.closed.Get() {
		return database.ErrClosed
	}
	db.closed.Set(true)
	close(db.closing)
	return db.db.Close()
}

type batch struct {
	db   *Database
	b    *pebble.Batch
	size int

	written bool
}

func (b *batch) Put(key, value []byte) error {
	b.size += len(key) + len(value)
	return b.b.Set(key, value, nil)
}

func (b *batch) Delete(key []byte) error {
	b.size += len(key)
	return b.b.Delete(key, nil)
}

func (b *batch) Size() int {
	return b.size
}

func (b *batch) Write() error {
	if b.db.closed.Get() {
		return database.ErrClosed
	}
	if b.written {
		// pebble batches are not reusable after commit; mirror the
		// database.Batch contract by replaying into a fresh batch.
		reset := b.db.db.NewBatch()
		if err := reset.SetRepr(b.b.Repr()); err != nil {
			return err
		}
		b.b = reset
	}
	b.written = true
	return b.b.Commit(b.db.writeOptions)
}

func (b *batch) Reset() {
	b.b = b.db.db.NewBatch()
	b.size = 0
	b.written = false
}

func (b *batch) Replay(w database.KeyValueWriterDeleter) error {
	reader := b.b.Reader()
	for {
		kind, k, v, ok := reader.Next()
		if !ok {
			return nil
		}
		switch kind {
		case pebble.InternalKeyKindSet:
			if err := w.Put(k, v); err != nil {
				return err
			}
		case pebble.InternalKeyKindDelete:
			if err := w.Delete(k); err != nil {
				return err
			}
		default:
			return errUnknownBatchOp
		}
	}
}

func (b *batch) Inner() database.Batch {
	return b
}
