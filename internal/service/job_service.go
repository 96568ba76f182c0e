package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"jobboard-be/internal/dto"
	"jobboard-be/internal/entity"
	"jobboard-be/internal/listing"
	"jobboard-be/internal/pkg/apperror"
	"jobboard-be/internal/pkg/logger"
	"jobboard-be/internal/repository/specification"
	"jobboard-be/internal/repository/unitofwork"
)

// ListJobsQuery carries the parsed listing query params. Repeatable facet
// params OR within their group and AND across groups.
type ListJobsQuery struct {
	Locations      []string
	Tech           []string
	RemotePolicies []string
	Sort           string
	Order          string
}

type IJobService interface {
	GetAll(ctx context.Context, query ListJobsQuery) ([]dto.JobResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.JobDetailResponse, error)
	GetFacets(ctx context.Context) (*dto.FacetsResponse, error)
	GetSuggestions(ctx context.Context, q string) ([]dto.SuggestionResponse, error)
}

const (
	jobListingCacheKey = "jobs:listing:v1"
	jobListingCacheTTL = 60 * time.Second
)

type jobService struct {
	uowFactory unitofwork.RepositoryFactory
	rdb        *redis.Client
	log        logger.ILogger
}

// NewJobService builds the job read service. rdb may be nil; the listing
// cache is then skipped entirely.
func NewJobService(uowFactory unitofwork.RepositoryFactory, rdb *redis.Client, log logger.ILogger) IJobService {
	return &jobService{
		uowFactory: uowFactory,
		rdb:        rdb,
		log:        log,
	}
}

func (s *jobService) GetAll(ctx context.Context, query ListJobsQuery) ([]dto.JobResponse, error) {
	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}

	jobs = listing.ApplyFilters(jobs, buildFilters(query))

	if field := listing.SortField(query.Sort); query.Sort != "" {
		direction := listing.SortAsc
		if query.Order == string(listing.SortDesc) {
			direction = listing.SortDesc
		}
		jobs = listing.SortJobs(jobs, field, direction)
	}

	return dto.NewJobResponses(jobs), nil
}

func (s *jobService) Show(ctx context.Context, id uuid.UUID) (*dto.JobDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.JobRepository().FindOne(ctx, specification.ByID{ID: id}, specification.WithCompany{})
	if err != nil {
		return nil, apperror.Internal("failed to load job", err)
	}
	if job == nil {
		return nil, apperror.NotFound("job not found")
	}

	resp := dto.NewJobDetailResponse(job)
	return &resp, nil
}

func (s *jobService) GetFacets(ctx context.Context) (*dto.FacetsResponse, error) {
	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}

	facets := listing.DeriveFacets(jobs)
	return &dto.FacetsResponse{
		Locations:      facets.Locations,
		TechStack:      facets.TechStack,
		RemotePolicies: facets.RemotePolicies,
	}, nil
}

func (s *jobService) GetSuggestions(ctx context.Context, q string) ([]dto.SuggestionResponse, error) {
	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}

	facets := listing.DeriveFacets(jobs)
	suggestions := listing.Suggest(facets, nil, q)

	out := make([]dto.SuggestionResponse, 0, len(suggestions))
	for _, sg := range suggestions {
		out = append(out, dto.SuggestionResponse{
			Type:  string(sg.Type),
			Value: sg.Value,
			Label: sg.DisplayLabel,
		})
	}
	return out, nil
}

// loadJobs returns the full listing, newest first, read through the redis
// cache when one is configured. Jobs are immutable after seeding so a short
// TTL is only there to pick up reseeds.
func (s *jobService) loadJobs(ctx context.Context) ([]*entity.Job, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, jobListingCacheKey).Bytes(); err == nil {
			var cached []*entity.Job
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			// Corrupt payload: fall through to the database.
			s.log.Warn("job_service", "dropping unreadable listing cache entry", nil)
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	jobs, err := uow.JobRepository().FindAll(ctx,
		specification.WithCompany{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Internal("failed to list jobs", err)
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(jobs); err == nil {
			if err := s.rdb.Set(ctx, jobListingCacheKey, raw, jobListingCacheTTL).Err(); err != nil {
				s.log.Warn("job_service", "failed to cache job listing", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	return jobs, nil
}

func buildFilters(query ListJobsQuery) []listing.Filter {
	var active []listing.Filter
	for _, v := range query.Locations {
		active = listing.AddFilter(active, listing.FilterLocation, v, v)
	}
	for _, v := range query.Tech {
		active = listing.AddFilter(active, listing.FilterTech, v, v)
	}
	for _, v := range query.RemotePolicies {
		active = listing.AddFilter(active, listing.FilterRemotePolicy, v, v)
	}
	return active
}
