package jobs

import (
	"testing"
	"time"

	"github.com/jonathan/career-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loadTime = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func testStore() *Store {
	return NewStore(WithStoreClock(func() time.Time { return loadTime }))
}

func ids(jobs []types.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestStoreDisplayOrder(t *testing.T) {
	// Featured postings first, then descending match score; the stable sort
	// breaks ties by catalog position.
	assert.Equal(t,
		[]string{"1", "3", "5", "4", "2", "6", "7", "8"},
		ids(testStore().List()))
}

func TestStoreListReturnsCopy(t *testing.T) {
	s := testStore()
	first := s.List()
	first[0].Title = "mutated"

	assert.NotEqual(t, "mutated", s.List()[0].Title)
}

func TestStoreGet(t *testing.T) {
	s := testStore()

	job, ok := s.Get("5")
	require.True(t, ok)
	assert.Equal(t, "DevOps Engineer", job.Title)
	assert.Equal(t, "Infosys", job.Company.Name)

	_, ok = s.Get("nope")
	assert.False(t, ok)
}

func TestStorePruneExpired(t *testing.T) {
	expired := loadTime.Add(-time.Hour)
	future := loadTime.Add(time.Hour)
	jobs := []types.Job{
		{ID: "a", ExpiresAt: &expired},
		{ID: "b", ExpiresAt: &future},
		{ID: "c"},
	}

	s := NewStore(WithStoreClock(func() time.Time { return loadTime }), WithJobs(jobs))
	assert.Equal(t, 1, s.PruneExpired())
	assert.Equal(t, []string{"b", "c"}, ids(s.List()))

	// Catalog postings carry no expiry and survive every sweep.
	s = testStore()
	assert.Equal(t, 0, s.PruneExpired())
	assert.Len(t, s.List(), 8)
}
