package listing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-be/internal/entity"
)

func makeJob(title, company, policy string, locations []entity.Location, tech []string, createdAt time.Time) *entity.Job {
	return &entity.Job{
		Id:           uuid.New(),
		Title:        title,
		RemotePolicy: policy,
		Locations:    locations,
		TechStack:    tech,
		CreatedAt:    createdAt,
		Company:      &entity.Company{Id: uuid.New(), Name: company},
	}
}

func sampleJobs() []*entity.Job {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []*entity.Job{
		makeJob("Backend Engineer", "FinServe", entity.RemotePolicyInOffice,
			[]entity.Location{{City: "Charlotte", State: "NC"}},
			[]string{"Go", "PostgreSQL"}, base),
		makeJob("ML Engineer", "TechFlow", entity.RemotePolicyRemote,
			[]entity.Location{{City: "Austin", State: "TX"}},
			[]string{"Python", "PyTorch"}, base.Add(24*time.Hour)),
		makeJob("Frontend Developer", "GreenCode", entity.RemotePolicyHybrid,
			[]entity.Location{{City: "Portland", State: "OR"}},
			[]string{"React", "TypeScript"}, base.Add(48*time.Hour)),
		makeJob("Data Engineer", "DataForge", entity.RemotePolicyHybrid,
			[]entity.Location{{City: "New York", State: "NY"}, {City: "Boston", State: "MA"}},
			[]string{"Python", "Apache Spark"}, base.Add(72*time.Hour)),
	}
}

func TestDeriveFacets(t *testing.T) {
	facets := DeriveFacets(sampleJobs())

	assert.Equal(t, []string{
		"Austin, TX", "Boston, MA", "Charlotte, NC", "New York, NY", "Portland, OR",
	}, facets.Locations)
	assert.Equal(t, []string{
		"Apache Spark", "Go", "PostgreSQL", "PyTorch", "Python", "React", "TypeScript",
	}, facets.TechStack)
	assert.Equal(t, []string{"Remote", "Hybrid", "On-Site"}, facets.RemotePolicies)
}

func TestDeriveFacetsEmpty(t *testing.T) {
	facets := DeriveFacets(nil)
	assert.Empty(t, facets.Locations)
	assert.Empty(t, facets.TechStack)
	assert.Equal(t, []string{"Remote", "Hybrid", "On-Site"}, facets.RemotePolicies)
}

func TestSuggest(t *testing.T) {
	facets := DeriveFacets(sampleJobs())

	t.Run("case insensitive substring", func(t *testing.T) {
		got := Suggest(facets, nil, "york")
		require.Len(t, got, 1)
		assert.Equal(t, FilterLocation, got[0].Type)
		assert.Equal(t, "New York, NY", got[0].Value)
	})

	t.Run("matches across facet groups", func(t *testing.T) {
		got := Suggest(facets, nil, "re")
		var types []FilterType
		for _, s := range got {
			types = append(types, s.Type)
		}
		// "Remote" synthetic location, React, and the Remote policy all
		// contain "re".
		assert.Contains(t, types, FilterLocation)
		assert.Contains(t, types, FilterTech)
		assert.Contains(t, types, FilterRemotePolicy)
	})

	t.Run("excludes active filters by type and value", func(t *testing.T) {
		active := AddFilter(nil, FilterTech, "Python", "Python")
		got := Suggest(facets, active, "python")
		assert.Empty(t, got)

		// The same value under a different type still appears.
		active = AddFilter(nil, FilterLocation, "Python", "Python")
		got = Suggest(facets, active, "python")
		require.Len(t, got, 1)
		assert.Equal(t, FilterTech, got[0].Type)
	})

	t.Run("caps at ten", func(t *testing.T) {
		got := Suggest(facets, nil, "")
		assert.Len(t, got, 10)
	})

	t.Run("synthetic remote location first", func(t *testing.T) {
		got := Suggest(facets, nil, "")
		require.NotEmpty(t, got)
		assert.Equal(t, FilterLocation, got[0].Type)
		assert.Equal(t, "Remote", got[0].Value)
	})
}

func TestAddFilter(t *testing.T) {
	active := AddFilter(nil, FilterTech, "Go", "Go")
	require.Len(t, active, 1)
	assert.NotEmpty(t, active[0].Id)

	t.Run("duplicate type and value is a no-op", func(t *testing.T) {
		next := AddFilter(active, FilterTech, "Go", "Go")
		assert.Len(t, next, 1)
	})

	t.Run("same value different type is distinct", func(t *testing.T) {
		next := AddFilter(active, FilterLocation, "Go", "Go")
		assert.Len(t, next, 2)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		_ = AddFilter(active, FilterTech, "Python", "Python")
		assert.Len(t, active, 1)
	})
}

func TestRemoveFilter(t *testing.T) {
	active := AddFilter(nil, FilterTech, "Go", "Go")
	active = AddFilter(active, FilterTech, "Python", "Python")

	next := RemoveFilter(active, active[0].Id)
	require.Len(t, next, 1)
	assert.Equal(t, "Python", next[0].Value)

	t.Run("unknown id is a no-op", func(t *testing.T) {
		assert.Len(t, RemoveFilter(active, "nope"), 2)
	})
}

func TestApplyFilters(t *testing.T) {
	jobs := sampleJobs()

	t.Run("empty set imposes no constraint", func(t *testing.T) {
		assert.Len(t, ApplyFilters(jobs, nil), len(jobs))
	})

	t.Run("or within a group", func(t *testing.T) {
		active := AddFilter(nil, FilterTech, "Go", "Go")
		active = AddFilter(active, FilterTech, "React", "React")
		got := ApplyFilters(jobs, active)
		require.Len(t, got, 2)
		assert.Equal(t, "Backend Engineer", got[0].Title)
		assert.Equal(t, "Frontend Developer", got[1].Title)
	})

	t.Run("and across groups", func(t *testing.T) {
		active := AddFilter(nil, FilterTech, "Python", "Python")
		active = AddFilter(active, FilterRemotePolicy, "Hybrid", "Hybrid")
		got := ApplyFilters(jobs, active)
		require.Len(t, got, 1)
		assert.Equal(t, "Data Engineer", got[0].Title)
	})

	t.Run("remote location matches policy not locations", func(t *testing.T) {
		active := AddFilter(nil, FilterLocation, "Remote", "Remote")
		got := ApplyFilters(jobs, active)
		require.Len(t, got, 1)
		assert.Equal(t, "ML Engineer", got[0].Title)
	})

	t.Run("location matches any job location", func(t *testing.T) {
		active := AddFilter(nil, FilterLocation, "Boston, MA", "Boston, MA")
		got := ApplyFilters(jobs, active)
		require.Len(t, got, 1)
		assert.Equal(t, "Data Engineer", got[0].Title)
	})

	t.Run("unknown policy label matches nothing", func(t *testing.T) {
		active := AddFilter(nil, FilterRemotePolicy, "remote", "remote")
		assert.Empty(t, ApplyFilters(jobs, active))
	})

	t.Run("idempotent", func(t *testing.T) {
		active := AddFilter(nil, FilterTech, "Python", "Python")
		once := ApplyFilters(jobs, active)
		twice := ApplyFilters(once, active)
		assert.Equal(t, once, twice)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := make([]*entity.Job, len(jobs))
		copy(before, jobs)
		active := AddFilter(nil, FilterTech, "Go", "Go")
		_ = ApplyFilters(jobs, active)
		assert.Equal(t, before, jobs)
	})
}

func TestFilterThenSort(t *testing.T) {
	jobs := sampleJobs()

	active := AddFilter(nil, FilterTech, "Python", "Python")
	active = AddFilter(active, FilterTech, "Go", "Go")

	filtered := ApplyFilters(jobs, active)
	require.Len(t, filtered, 3)

	sorted := SortJobs(filtered, SortByTitle, SortAsc)
	var titles []string
	for _, j := range sorted {
		titles = append(titles, j.Title)
	}
	assert.Equal(t, []string{"Backend Engineer", "Data Engineer", "ML Engineer"}, titles)
}
