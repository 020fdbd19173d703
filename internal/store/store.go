package store

import (
	"errors"
	"sync"

	"task-bidding-api/internal/apperrors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Store is the repository over the relational schema. All mutations of a
// task and its bids are serialized per task via taskLocks so that a bid
// acceptance racing another acceptance (or a new submission) observes a
// consistent task status.
type Store struct {
	db      *gorm.DB
	feeRate decimal.Decimal

	mu        sync.Mutex
	taskLocks map[string]*sync.Mutex
}

// New creates a Store. feeRate is the platform's cut of an accepted bid
// amount, e.g. 0.10 for 10%.
func New(db *gorm.DB, feeRate decimal.Decimal) *Store {
	return &Store{
		db:        db,
		feeRate:   feeRate,
		taskLocks: make(map[string]*sync.Mutex),
	}
}

// lockTask returns the mutex serializing mutations for one task.
func (s *Store) lockTask(taskID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.taskLocks[taskID]
	if !ok {
		l = &sync.Mutex{}
		s.taskLocks[taskID] = l
	}
	return l
}

// dbErr maps a gorm error to the application taxonomy. Record-not-found
// becomes NotFound with the given message; anything else is surfaced as
// Unavailable so callers may retry with backoff.
func dbErr(err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(notFoundMsg)
	}
	return apperrors.Unavailable(err.Error())
}
