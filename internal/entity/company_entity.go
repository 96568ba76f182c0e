package entity

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	Id              uuid.UUID
	Name            string
	Description     string
	Locations       []Location
	Url             string
	Logo            *string
	CompanySize     string
	OwnershipType   string
	FundingType     string
	AmountRaised    *int64
	LastRoundLetter *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// CompanySummary is the slice of company data embedded in job listings.
type CompanySummary struct {
	Name string
	Logo *string
}
