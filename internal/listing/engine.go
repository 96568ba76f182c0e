// Package listing implements the job listing filter/sort engine: facet
// derivation, typeahead suggestions, filter set manipulation, and the
// combination rules for applying filters (OR within a facet group, AND
// across groups). All operations are pure: inputs are never mutated and
// every function is total over well-formed and malformed values alike.
package listing

import (
	"sort"
	"strings"

	"jobboard-be/internal/entity"

	"github.com/google/uuid"
)

type FilterType string

const (
	FilterLocation     FilterType = "location"
	FilterTech         FilterType = "tech"
	FilterRemotePolicy FilterType = "remotePolicy"
)

// Filter is one active facet constraint. Id addresses the filter for
// removal and is assigned by AddFilter.
type Filter struct {
	Id    string
	Type  FilterType
	Value string
	Label string
}

// Facets are the filterable dimensions derived from a job collection.
type Facets struct {
	Locations      []string // sorted unique "City, State" strings
	TechStack      []string // sorted unique tech tags
	RemotePolicies []string // fixed display labels
}

// Suggestion is one typeahead entry, tagged with the facet it belongs to.
type Suggestion struct {
	Type         FilterType
	Value        string
	Label        string
	DisplayLabel string
}

// remotePolicyLabels maps display labels to stored policy values. Labels
// outside this table match nothing.
var remotePolicyLabels = map[string]string{
	"Remote":  entity.RemotePolicyRemote,
	"Hybrid":  entity.RemotePolicyHybrid,
	"On-Site": entity.RemotePolicyInOffice,
}

// RemotePolicyOptions is the fixed, ordered remote-policy facet.
var RemotePolicyOptions = []string{"Remote", "Hybrid", "On-Site"}

const maxSuggestions = 10

// DeriveFacets extracts the filterable dimensions from the full job
// collection. Location and tech facets are sorted lexicographically.
func DeriveFacets(jobs []*entity.Job) Facets {
	locationSet := make(map[string]struct{})
	techSet := make(map[string]struct{})

	for _, job := range jobs {
		for _, loc := range job.Locations {
			locationSet[loc.City+", "+loc.State] = struct{}{}
		}
		for _, tag := range job.TechStack {
			techSet[tag] = struct{}{}
		}
	}

	locations := make([]string, 0, len(locationSet))
	for loc := range locationSet {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	tech := make([]string, 0, len(techSet))
	for tag := range techSet {
		tech = append(tech, tag)
	}
	sort.Strings(tech)

	policies := make([]string, len(RemotePolicyOptions))
	copy(policies, RemotePolicyOptions)

	return Facets{
		Locations:      locations,
		TechStack:      tech,
		RemotePolicies: policies,
	}
}

// Suggest returns up to 10 typeahead entries matching the query. Matching
// is a case-insensitive substring test against the label. Suggestions
// whose (type, value) pair is already an active filter are excluded.
// Order is facet-group order: the synthetic "Remote" location, derived
// locations, tech tags, then remote-policy labels.
func Suggest(facets Facets, active []Filter, query string) []Suggestion {
	candidates := make([]Suggestion, 0, 1+len(facets.Locations)+len(facets.TechStack)+len(facets.RemotePolicies))

	candidates = append(candidates, Suggestion{
		Type:         FilterLocation,
		Value:        "Remote",
		Label:        "Remote",
		DisplayLabel: "Location: Remote",
	})
	for _, loc := range facets.Locations {
		candidates = append(candidates, Suggestion{
			Type:         FilterLocation,
			Value:        loc,
			Label:        loc,
			DisplayLabel: "Location: " + loc,
		})
	}
	for _, tag := range facets.TechStack {
		candidates = append(candidates, Suggestion{
			Type:         FilterTech,
			Value:        tag,
			Label:        tag,
			DisplayLabel: "Tech: " + tag,
		})
	}
	for _, policy := range facets.RemotePolicies {
		candidates = append(candidates, Suggestion{
			Type:         FilterRemotePolicy,
			Value:        policy,
			Label:        policy,
			DisplayLabel: "Type: " + policy,
		})
	}

	needle := strings.ToLower(query)
	result := make([]Suggestion, 0, maxSuggestions)
	for _, s := range candidates {
		if !strings.Contains(strings.ToLower(s.Label), needle) {
			continue
		}
		if hasFilter(active, s.Type, s.Value) {
			continue
		}
		result = append(result, s)
		if len(result) == maxSuggestions {
			break
		}
	}
	return result
}

// AddFilter appends a filter with a fresh id. Adding an identical
// (type, value) pair is a no-op returning the input set.
func AddFilter(active []Filter, filterType FilterType, value, label string) []Filter {
	if hasFilter(active, filterType, value) {
		return active
	}

	next := make([]Filter, len(active), len(active)+1)
	copy(next, active)
	return append(next, Filter{
		Id:    uuid.NewString(),
		Type:  filterType,
		Value: value,
		Label: label,
	})
}

// RemoveFilter drops the filter with the given id; unknown ids are a no-op.
func RemoveFilter(active []Filter, id string) []Filter {
	next := make([]Filter, 0, len(active))
	for _, f := range active {
		if f.Id != id {
			next = append(next, f)
		}
	}
	return next
}

// ApplyFilters returns the jobs satisfying the active filter set. Filters
// are partitioned by facet type; a job must match at least one filter in
// every non-empty group (OR within a group, AND across groups). An empty
// filter set imposes no constraint.
func ApplyFilters(jobs []*entity.Job, active []Filter) []*entity.Job {
	if len(active) == 0 {
		return jobs
	}

	var locationFilters, techFilters, policyFilters []Filter
	for _, f := range active {
		switch f.Type {
		case FilterLocation:
			locationFilters = append(locationFilters, f)
		case FilterTech:
			techFilters = append(techFilters, f)
		case FilterRemotePolicy:
			policyFilters = append(policyFilters, f)
		}
	}

	result := make([]*entity.Job, 0, len(jobs))
	for _, job := range jobs {
		if len(locationFilters) > 0 && !matchesAnyLocation(job, locationFilters) {
			continue
		}
		if len(techFilters) > 0 && !matchesAnyTech(job, techFilters) {
			continue
		}
		if len(policyFilters) > 0 && !matchesAnyPolicy(job, policyFilters) {
			continue
		}
		result = append(result, job)
	}
	return result
}

func matchesAnyLocation(job *entity.Job, filters []Filter) bool {
	for _, f := range filters {
		// "Remote" is a synthetic location backed by the remote policy.
		if f.Value == "Remote" {
			if job.RemotePolicy == entity.RemotePolicyRemote {
				return true
			}
			continue
		}
		for _, loc := range job.Locations {
			if loc.City+", "+loc.State == f.Value {
				return true
			}
		}
	}
	return false
}

func matchesAnyTech(job *entity.Job, filters []Filter) bool {
	for _, f := range filters {
		for _, tag := range job.TechStack {
			if tag == f.Value {
				return true
			}
		}
	}
	return false
}

func matchesAnyPolicy(job *entity.Job, filters []Filter) bool {
	for _, f := range filters {
		if policy, ok := remotePolicyLabels[f.Value]; ok && job.RemotePolicy == policy {
			return true
		}
	}
	return false
}

func hasFilter(active []Filter, filterType FilterType, value string) bool {
	for _, f := range active {
		if f.Type == filterType && f.Value == value {
			return true
		}
	}
	return false
}
