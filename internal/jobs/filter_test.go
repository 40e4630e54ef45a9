package jobs

import (
	"testing"

	"github.com/jonathan/career-agent/internal/types"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func bangaloreUser() *types.UserLocation {
	return &types.UserLocation{Latitude: 12.9716, Longitude: 77.5946, City: "Bangalore"}
}

func TestFilterEmptySpecificationIsIdentity(t *testing.T) {
	jobs := testStore().List()

	assert.Equal(t, jobs, Filter(jobs, nil, nil, loadTime))
	assert.Equal(t, jobs, Filter(jobs, &types.JobFilters{}, nil, loadTime))
}

func TestFilterRemoteOnly(t *testing.T) {
	jobs := testStore().List()

	got := Filter(jobs, &types.JobFilters{IsRemote: ptr(true)}, nil, loadTime)

	// Five of the eight catalog postings are remote; their relative display
	// order is preserved.
	assert.Equal(t, []string{"1", "3", "4", "6", "8"}, ids(got))

	onsite := Filter(jobs, &types.JobFilters{IsRemote: ptr(false)}, nil, loadTime)
	assert.Equal(t, []string{"5", "2", "7"}, ids(onsite))
}

func TestFilterRadiusSkippedWithoutUserCoordinate(t *testing.T) {
	jobs := testStore().List()

	got := Filter(jobs, &types.JobFilters{RadiusKm: ptr(10.0)}, nil, loadTime)
	assert.Equal(t, jobs, got)
}

func TestFilterRadiusFromBangalore(t *testing.T) {
	jobs := testStore().List()

	// 50km around Bangalore keeps only the Bangalore postings; Chennai,
	// Noida, Pune and Hyderabad are all hundreds of kilometres away.
	got := Filter(jobs, &types.JobFilters{RadiusKm: ptr(50.0)}, bangaloreUser(), loadTime)
	assert.Equal(t, []string{"1", "6", "8"}, ids(got))
}

func TestFilterRadiusRemoteShortcut(t *testing.T) {
	jobs := testStore().List()

	// A remote posting outside the radius still matches when the filter
	// asks for remote work.
	got := Filter(jobs, &types.JobFilters{
		RadiusKm: ptr(50.0),
		IsRemote: ptr(true),
	}, bangaloreUser(), loadTime)
	assert.Equal(t, []string{"1", "3", "4", "6", "8"}, ids(got))
}

func TestFilterRadiusFailsPostingWithoutCoordinates(t *testing.T) {
	jobs := []types.Job{{ID: "x", Location: types.JobLocation{City: "Somewhere"}}}

	got := Filter(jobs, &types.JobFilters{RadiusKm: ptr(500.0)}, bangaloreUser(), loadTime)
	assert.Empty(t, got)
}

func TestFilterQuery(t *testing.T) {
	jobs := testStore().List()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title match", "devops", []string{"5"}},
		{"company match", "flipkart", []string{"1"}},
		{"description match", "fintech", []string{"3"}},
		{"skill match", "react", []string{"1", "4", "2", "6", "8"}},
		{"no match", "blockchain", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(jobs, &types.JobFilters{Query: tt.query}, nil, loadTime)
			assert.Equal(t, tt.want, idsOrNil(got))
		})
	}
}

func TestFilterEmploymentAndExperience(t *testing.T) {
	jobs := testStore().List()

	entry := Filter(jobs, &types.JobFilters{
		ExperienceLevels: []types.ExperienceLevel{types.ExperienceEntry},
	}, nil, loadTime)
	assert.Equal(t, []string{"7"}, ids(entry))

	// Every catalog posting is full-time.
	fullTime := Filter(jobs, &types.JobFilters{
		EmploymentTypes: []types.EmploymentType{types.EmploymentFullTime},
	}, nil, loadTime)
	assert.Len(t, fullTime, 8)

	contract := Filter(jobs, &types.JobFilters{
		EmploymentTypes: []types.EmploymentType{types.EmploymentContract},
	}, nil, loadTime)
	assert.Empty(t, contract)
}

func TestFilterSalaryRange(t *testing.T) {
	jobs := testStore().List()

	// Floor: posting max must reach it.
	floor := Filter(jobs, &types.JobFilters{SalaryMin: ptr(2000000)}, nil, loadTime)
	assert.Equal(t, []string{"1", "3", "2", "6", "8"}, ids(floor))

	// Ceiling: posting min must not exceed it.
	ceiling := Filter(jobs, &types.JobFilters{SalaryMax: ptr(900000)}, nil, loadTime)
	assert.Equal(t, []string{"5", "7"}, ids(ceiling))
}

func TestFilterSkillsSubstringOverlap(t *testing.T) {
	jobs := testStore().List()

	got := Filter(jobs, &types.JobFilters{Skills: []string{"kafka"}}, nil, loadTime)
	assert.Equal(t, []string{"3"}, ids(got))

	// "react" also matches "React Native" by substring.
	got = Filter(jobs, &types.JobFilters{Skills: []string{"react"}}, nil, loadTime)
	assert.Equal(t, []string{"1", "4", "2", "6", "8"}, ids(got))
}

func TestFilterPostedWithin(t *testing.T) {
	jobs := testStore().List()

	got := Filter(jobs, &types.JobFilters{PostedWithin: types.Posted3d}, nil, loadTime)
	assert.Equal(t, []string{"1", "3", "5"}, ids(got))

	got = Filter(jobs, &types.JobFilters{PostedWithin: types.Posted30d}, nil, loadTime)
	assert.Len(t, got, 8)
}

func TestFilterConjunction(t *testing.T) {
	jobs := testStore().List()

	got := Filter(jobs, &types.JobFilters{
		IsRemote:         ptr(true),
		ExperienceLevels: []types.ExperienceLevel{types.ExperienceSenior},
		SalaryMin:        ptr(4000000),
	}, nil, loadTime)
	assert.Equal(t, []string{"1", "6"}, ids(got))
}

func idsOrNil(jobs []types.Job) []string {
	if len(jobs) == 0 {
		return nil
	}
	return ids(jobs)
}

func TestStoreSearchUsesLoadClock(t *testing.T) {
	s := testStore()

	got := s.Search(&types.JobFilters{PostedWithin: types.Posted24h}, nil)
	assert.Equal(t, []string{"3"}, ids(got))
}
