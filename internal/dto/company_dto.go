package dto

import (
	"time"

	"jobboard-be/internal/entity"
)

type LocationResponse struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type CompanyResponse struct {
	Id              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Locations       []LocationResponse `json:"locations"`
	Url             string             `json:"url"`
	Logo            *string            `json:"logo"`
	CompanySize     string             `json:"companySize"`
	OwnershipType   string             `json:"ownershipType"`
	FundingType     string             `json:"fundingType"`
	AmountRaised    *int64             `json:"amountRaised"`
	LastRoundLetter *string            `json:"lastRoundLetter"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       *time.Time         `json:"updatedAt"`
}

// CompanySummaryResponse is the slim company embedded in job listings.
type CompanySummaryResponse struct {
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

func NewLocationResponses(locs []entity.Location) []LocationResponse {
	out := make([]LocationResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, LocationResponse{City: l.City, State: l.State})
	}
	return out
}

func NewCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		Id:              c.Id.String(),
		Name:            c.Name,
		Description:     c.Description,
		Locations:       NewLocationResponses(c.Locations),
		Url:             c.Url,
		Logo:            c.Logo,
		CompanySize:     c.CompanySize,
		OwnershipType:   c.OwnershipType,
		FundingType:     c.FundingType,
		AmountRaised:    c.AmountRaised,
		LastRoundLetter: c.LastRoundLetter,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func NewCompanyResponses(companies []*entity.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, NewCompanyResponse(c))
	}
	return out
}
