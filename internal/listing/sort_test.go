package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-be/internal/entity"
)

func titlesOf(jobs []*entity.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Title)
	}
	return out
}

func TestSortJobs(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	jobs := []*entity.Job{
		makeJob("delta", "Zenith", entity.RemotePolicyRemote, nil, nil, base.Add(3*time.Hour)),
		makeJob("Alpha", "acme", entity.RemotePolicyInOffice,
			[]entity.Location{{City: "Austin", State: "TX"}}, nil, base.Add(1*time.Hour)),
		makeJob("charlie", "Beta Corp", entity.RemotePolicyHybrid,
			[]entity.Location{{City: "Boston", State: "MA"}}, nil, base.Add(2*time.Hour)),
	}

	t.Run("title is case insensitive", func(t *testing.T) {
		got := SortJobs(jobs, SortByTitle, SortAsc)
		assert.Equal(t, []string{"Alpha", "charlie", "delta"}, titlesOf(got))
	})

	t.Run("company is case insensitive", func(t *testing.T) {
		got := SortJobs(jobs, SortByCompany, SortAsc)
		assert.Equal(t, []string{"Alpha", "charlie", "delta"}, titlesOf(got))
	})

	t.Run("remote policy sorts raw values", func(t *testing.T) {
		// hybrid < in_office < remote lexicographically.
		got := SortJobs(jobs, SortByRemotePolicy, SortAsc)
		assert.Equal(t, []string{"charlie", "Alpha", "delta"}, titlesOf(got))
	})

	t.Run("location sorts formatted strings with TBD for none", func(t *testing.T) {
		got := SortJobs(jobs, SortByLocation, SortAsc)
		// "Austin, TX" < "Boston, MA" < "TBD"
		assert.Equal(t, []string{"Alpha", "charlie", "delta"}, titlesOf(got))
	})

	t.Run("created at chronological", func(t *testing.T) {
		got := SortJobs(jobs, SortByCreatedAt, SortAsc)
		assert.Equal(t, []string{"Alpha", "charlie", "delta"}, titlesOf(got))

		got = SortJobs(jobs, SortByCreatedAt, SortDesc)
		assert.Equal(t, []string{"delta", "charlie", "Alpha"}, titlesOf(got))
	})

	t.Run("unknown field leaves order untouched", func(t *testing.T) {
		got := SortJobs(jobs, SortField("salary"), SortAsc)
		assert.Equal(t, titlesOf(jobs), titlesOf(got))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := titlesOf(jobs)
		_ = SortJobs(jobs, SortByTitle, SortDesc)
		assert.Equal(t, before, titlesOf(jobs))
	})
}

func TestSortJobsStability(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	jobs := []*entity.Job{
		makeJob("Engineer", "One", entity.RemotePolicyRemote, nil, nil, base),
		makeJob("Engineer", "Two", entity.RemotePolicyRemote, nil, nil, base),
		makeJob("Engineer", "Three", entity.RemotePolicyRemote, nil, nil, base),
		makeJob("Analyst", "Four", entity.RemotePolicyRemote, nil, nil, base),
	}
	companyOf := func(js []*entity.Job) []string {
		out := make([]string, 0, len(js))
		for _, j := range js {
			out = append(out, j.Company.Name)
		}
		return out
	}

	t.Run("equal keys keep input order ascending", func(t *testing.T) {
		got := SortJobs(jobs, SortByTitle, SortAsc)
		require.Equal(t, []string{"Analyst", "Engineer", "Engineer", "Engineer"}, titlesOf(got))
		assert.Equal(t, []string{"Four", "One", "Two", "Three"}, companyOf(got))
	})

	t.Run("equal keys keep input order descending", func(t *testing.T) {
		got := SortJobs(jobs, SortByTitle, SortDesc)
		require.Equal(t, []string{"Engineer", "Engineer", "Engineer", "Analyst"}, titlesOf(got))
		assert.Equal(t, []string{"One", "Two", "Three", "Four"}, companyOf(got))
	})
}
