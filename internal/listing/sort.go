package listing

import (
	"sort"
	"strings"

	"jobboard-be/internal/entity"
)

type SortField string

const (
	SortByTitle        SortField = "title"
	SortByCompany      SortField = "company"
	SortByRemotePolicy SortField = "remotePolicy"
	SortByLocation     SortField = "location"
	SortByCreatedAt    SortField = "createdAt"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortJobs returns a new slice ordered by the given field and direction.
// The sort is stable: jobs sharing a key keep their relative input order.
// Unknown fields leave the order untouched.
func SortJobs(jobs []*entity.Job, field SortField, direction SortDirection) []*entity.Job {
	sorted := make([]*entity.Job, len(jobs))
	copy(sorted, jobs)

	var less func(a, b *entity.Job) bool
	switch field {
	case SortByTitle:
		less = func(a, b *entity.Job) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortByCompany:
		less = func(a, b *entity.Job) bool {
			return strings.ToLower(a.CompanyName()) < strings.ToLower(b.CompanyName())
		}
	case SortByRemotePolicy:
		// Raw enumerated value, not the display label.
		less = func(a, b *entity.Job) bool {
			return a.RemotePolicy < b.RemotePolicy
		}
	case SortByLocation:
		less = func(a, b *entity.Job) bool {
			return FormatLocation(a.Locations) < FormatLocation(b.Locations)
		}
	case SortByCreatedAt:
		less = func(a, b *entity.Job) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == SortDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}
