package jobs

import (
	"sort"
	"sync"
	"time"

	"github.com/jonathan/career-agent/internal/types"
)

// Store holds the posting catalog in memory. Postings are sorted once at
// load time, featured first and then by descending match score; every
// listing and filter result preserves that order.
type Store struct {
	mu   sync.RWMutex
	jobs []types.Job
	now  func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreClock overrides the store's time source.
func WithStoreClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithJobs replaces the default catalog. Mostly useful in tests.
func WithJobs(jobs []types.Job) StoreOption {
	return func(s *Store) {
		s.jobs = jobs
	}
}

// NewStore loads the catalog and applies the load-time ordering.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.jobs == nil {
		s.jobs = Catalog(s.now())
	}
	sortPostings(s.jobs)
	return s
}

// sortPostings applies the display order: featured postings first, then by
// descending match score. The sort is stable so equal postings keep their
// catalog order.
func sortPostings(jobs []types.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].IsFeatured != jobs[j].IsFeatured {
			return jobs[i].IsFeatured
		}
		return jobs[i].MatchScore > jobs[j].MatchScore
	})
}

// List returns a copy of every posting in display order.
func (s *Store) List() []types.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// Get returns the posting with the given ID.
func (s *Store) Get(id string) (*types.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.jobs {
		if s.jobs[i].ID == id {
			job := s.jobs[i]
			return &job, true
		}
	}
	return nil, false
}

// Search applies the filter specification to the catalog. The user location
// may be nil; radius filtering is skipped without one.
func (s *Store) Search(filters *types.JobFilters, loc *types.UserLocation) []types.Job {
	return Filter(s.List(), filters, loc, s.now())
}

// PruneExpired removes postings whose expiry has passed and returns how many
// were dropped. Catalog postings carry no expiry and survive every sweep.
func (s *Store) PruneExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	kept := s.jobs[:0]
	for _, job := range s.jobs {
		if job.ExpiresAt != nil && job.ExpiresAt.Before(now) {
			continue
		}
		kept = append(kept, job)
	}
	dropped := len(s.jobs) - len(kept)
	s.jobs = kept
	return dropped
}
