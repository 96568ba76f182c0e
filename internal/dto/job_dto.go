package dto

import (
	"time"

	"jobboard-be/internal/entity"
)

// JobResponse is a listing row: the embedded company carries only the
// fields the table renders.
type JobResponse struct {
	Id               string                  `json:"id"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description"`
	Requirements     []string                `json:"requirements"`
	Responsibilities []string                `json:"responsibilities"`
	Perks            []string                `json:"perks"`
	Benefits         []string                `json:"benefits"`
	CompanyId        string                  `json:"companyId"`
	Company          *CompanySummaryResponse `json:"company,omitempty"`
	Locations        []LocationResponse      `json:"locations"`
	Url              string                  `json:"url"`
	RemotePolicy     string                  `json:"remotePolicy"`
	EmploymentType   string                  `json:"employmentType"`
	DaysPerWeek      *int                    `json:"daysPerWeek"`
	SalaryMin        *int                    `json:"salaryMin"`
	SalaryMax        *int                    `json:"salaryMax"`
	TechStack        []string                `json:"techStack"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        *time.Time              `json:"updatedAt"`
}

// JobDetailResponse is the single-job view with the full company record.
type JobDetailResponse struct {
	JobResponse
	Company CompanyResponse `json:"company"`
}

func NewJobResponse(j *entity.Job) JobResponse {
	resp := JobResponse{
		Id:               j.Id.String(),
		Title:            j.Title,
		Description:      j.Description,
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		Perks:            j.Perks,
		Benefits:         j.Benefits,
		CompanyId:        j.CompanyId.String(),
		Locations:        NewLocationResponses(j.Locations),
		Url:              j.Url,
		RemotePolicy:     j.RemotePolicy,
		EmploymentType:   j.EmploymentType,
		DaysPerWeek:      j.DaysPerWeek,
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		TechStack:        j.TechStack,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
	if j.Company != nil {
		resp.Company = &CompanySummaryResponse{Name: j.Company.Name, Logo: j.Company.Logo}
	}
	return resp
}

func NewJobResponses(jobs []*entity.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

func NewJobDetailResponse(j *entity.Job) JobDetailResponse {
	detail := JobDetailResponse{JobResponse: NewJobResponse(j)}
	detail.JobResponse.Company = nil
	if j.Company != nil {
		detail.Company = NewCompanyResponse(j.Company)
	}
	return detail
}

// FacetsResponse mirrors listing.Facets for the facets endpoint.
type FacetsResponse struct {
	Locations      []string `json:"locations"`
	TechStack      []string `json:"techStack"`
	RemotePolicies []string `json:"remotePolicies"`
}

type SuggestionResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Label string `json:"label"`
}
