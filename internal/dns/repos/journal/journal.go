// Package journal persists fingerprints of record sets that were already
// applied to the control-plane, so repeated imports of the same zone files
// skip work instead of resubmitting identical changes. Lookups go through a
// Bloom filter first: a definitive negative answers without touching disk,
// a positive falls through to the Bolt store for the exact answer.
package journal

import (
	"fmt"
	"sync"
	"time"

	bitsbloom "github.com/bits-and-blooms/bloom/v3"
	bbolt "go.etcd.io/bbolt"
)

var bucketApplied = []byte("applied")

const (
	// minBloomCapacity keeps the filter useful for journals that start empty.
	minBloomCapacity = 1024
	bloomFPRate      = 0.01
)

// Journal is a Bolt-backed record of applied record-set fingerprints with a
// Bloom filter front. Reads are safe concurrently; writes are serialized.
type Journal struct {
	mu    sync.RWMutex
	db    *bbolt.DB
	bloom *bitsbloom.BloomFilter
}

// Open opens (or creates) the journal database at path, ensures the bucket
// exists, and seeds the Bloom filter from the stored fingerprints.
func Open(path string) (*Journal, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}

	var count uint64
	if err := db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketApplied)
		if err != nil {
			return err
		}
		count = uint64(b.Stats().KeyN)
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init journal bucket: %w", err)
	}

	capacity := count * 2
	if capacity < minBloomCapacity {
		capacity = minBloomCapacity
	}
	filter := bitsbloom.NewWithEstimates(uint(capacity), bloomFPRate)

	if err := db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketApplied).ForEach(func(k, _ []byte) error {
			filter.Add(k)
			return nil
		})
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed journal bloom filter: %w", err)
	}

	return &Journal{db: db, bloom: filter}, nil
}

// Close releases the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Seen reports whether a fingerprint was recorded before. The Bloom filter
// answers definite negatives; positives are confirmed against the store, so
// false positives never surface to the caller.
func (j *Journal) Seen(fingerprint string) (bool, error) {
	key := []byte(fingerprint)

	j.mu.RLock()
	maybe := j.bloom.Test(key)
	j.mu.RUnlock()
	if !maybe {
		return false, nil
	}

	var present bool
	err := j.db.View(func(tx *bbolt.Tx) error {
		present = tx.Bucket(bucketApplied).Get(key) != nil
		return nil
	})
	return present, err
}

// ChangeID returns the change that applied a fingerprint, if recorded.
func (j *Journal) ChangeID(fingerprint string) (string, bool, error) {
	var id string
	var found bool
	err := j.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketApplied).Get([]byte(fingerprint))
		if v != nil {
			id = string(v)
			found = true
		}
		return nil
	})
	return id, found, err
}

// Record stores fingerprints applied by a change. The store is written
// first; the Bloom filter is updated only after the transaction commits, so
// a failed write never poisons the filter.
func (j *Journal) Record(fingerprints []string, changeID string) error {
	if len(fingerprints) == 0 {
		return nil
	}
	err := j.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketApplied)
		for _, fp := range fingerprints {
			if err := b.Put([]byte(fp), []byte(changeID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("record fingerprints: %w", err)
	}

	j.mu.Lock()
	for _, fp := range fingerprints {
		j.bloom.Add([]byte(fp))
	}
	j.mu.Unlock()
	return nil
}

// Len returns the number of recorded fingerprints.
func (j *Journal) Len() (int, error) {
	var n int
	err := j.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketApplied).Stats().KeyN
		return nil
	})
	return n, err
}
