package mapper

import (
	"time"

	"jobboard-be/internal/entity"
	"jobboard-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type JobMapper struct {
	companyMapper *CompanyMapper
}

func NewJobMapper() *JobMapper {
	return &JobMapper{
		companyMapper: NewCompanyMapper(),
	}
}

func (m *JobMapper) ToEntity(j *model.Job) *entity.Job {
	if j == nil {
		return nil
	}

	var updatedAt *time.Time
	if !j.UpdatedAt.IsZero() {
		t := j.UpdatedAt
		updatedAt = &t
	}

	e := &entity.Job{
		Id:               j.Id,
		Title:            j.Title,
		Description:      j.Description,
		Requirements:     []string(j.Requirements),
		Responsibilities: []string(j.Responsibilities),
		Perks:            orEmpty(j.Perks),
		Benefits:         orEmpty(j.Benefits),
		CompanyId:        j.CompanyId,
		Locations:        locationsToEntity(j.Locations),
		Url:              j.Url,
		RemotePolicy:     j.RemotePolicy,
		EmploymentType:   j.EmploymentType,
		DaysPerWeek:      j.DaysPerWeek,
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		TechStack:        []string(j.TechStack),
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        updatedAt,
	}

	// Only carry the company over when it was actually preloaded.
	if j.Company.Id != uuid.Nil {
		e.Company = m.companyMapper.ToEntity(&j.Company)
	}

	return e
}

func (m *JobMapper) ToModel(j *entity.Job) *model.Job {
	if j == nil {
		return nil
	}

	var updatedAt time.Time
	if j.UpdatedAt != nil {
		updatedAt = *j.UpdatedAt
	}

	return &model.Job{
		Id:               j.Id,
		Title:            j.Title,
		Description:      j.Description,
		Requirements:     datatypes.NewJSONSlice(j.Requirements),
		Responsibilities: datatypes.NewJSONSlice(j.Responsibilities),
		Perks:            datatypes.NewJSONSlice(j.Perks),
		Benefits:         datatypes.NewJSONSlice(j.Benefits),
		CompanyId:        j.CompanyId,
		Locations:        locationsToModel(j.Locations),
		Url:              j.Url,
		RemotePolicy:     j.RemotePolicy,
		EmploymentType:   j.EmploymentType,
		DaysPerWeek:      j.DaysPerWeek,
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		TechStack:        datatypes.NewJSONSlice(j.TechStack),
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

// orEmpty normalizes a nullable JSON array column to an empty slice.
func orEmpty(s datatypes.JSONSlice[string]) []string {
	if s == nil {
		return []string{}
	}
	return []string(s)
}
