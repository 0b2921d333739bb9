// Package memory implements the repository contracts on top of go-cache, for running
// without a database and for tests.
package memory

import (
	"sync"
	"sync/atomic"

	"github.com/patrickmn/go-cache"
)

// Store holds one cache per table. Entries never expire.
type Store struct {
	characters *cache.Cache
	sessions   *cache.Cache
	messages   *cache.Cache

	// serialises read-modify-write cycles of UpdateWhere and parent checks on insert
	mu       sync.Mutex
	sequence atomic.Int64
}

func NewStore() *Store {
	return &Store{
		characters: cache.New(cache.NoExpiration, 0),
		sessions:   cache.New(cache.NoExpiration, 0),
		messages:   cache.New(cache.NoExpiration, 0),
	}
}

type entry[M any] struct {
	seq   int64
	value M
}

// Journal records undo actions for writes made inside a transaction.
type Journal struct {
	mu   sync.Mutex
	undo []func()
}

func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) record(fn func()) {
	if j == nil {
		return
	}
	j.mu.Lock()
	j.undo = append(j.undo, fn)
	j.mu.Unlock()
}

// Rollback reverts every recorded write, newest first.
func (j *Journal) Rollback() {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

// Discard forgets recorded writes, making them permanent.
func (j *Journal) Discard() {
	j.mu.Lock()
	j.undo = nil
	j.mu.Unlock()
}
