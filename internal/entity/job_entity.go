package entity

import (
	"time"

	"github.com/google/uuid"
)

// Remote policy values as stored.
const (
	RemotePolicyRemote   = "remote"
	RemotePolicyHybrid   = "hybrid"
	RemotePolicyInOffice = "in_office"
)

// Employment type values as stored.
const (
	EmploymentFullTime   = "full_time"
	EmploymentPartTime   = "part_time"
	EmploymentContract   = "contract"
	EmploymentTemporary  = "temporary"
	EmploymentInternship = "internship"
)

type Job struct {
	Id               uuid.UUID
	Title            string
	Description      string
	Requirements     []string
	Responsibilities []string
	Perks            []string
	Benefits         []string
	CompanyId        uuid.UUID
	Locations        []Location
	Url              string
	RemotePolicy     string
	EmploymentType   string
	DaysPerWeek      *int // non-nil only when RemotePolicy == hybrid
	SalaryMin        *int
	SalaryMax        *int
	TechStack        []string
	CreatedAt        time.Time
	UpdatedAt        *time.Time

	// Populated when the repository preloads the owning company.
	Company *Company
}

// CompanyName returns the owning company's name, or "" when not preloaded.
func (j *Job) CompanyName() string {
	if j.Company == nil {
		return ""
	}
	return j.Company.Name
}
