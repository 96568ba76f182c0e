package mapper

import (
	"time"

	"jobboard-be/internal/entity"
	"jobboard-be/internal/model"

	"gorm.io/datatypes"
)

type CompanyMapper struct{}

func NewCompanyMapper() *CompanyMapper {
	return &CompanyMapper{}
}

func locationsToEntity(locs datatypes.JSONSlice[model.Location]) []entity.Location {
	out := make([]entity.Location, len(locs))
	for i, l := range locs {
		out[i] = entity.Location{City: l.City, State: l.State}
	}
	return out
}

func locationsToModel(locs []entity.Location) datatypes.JSONSlice[model.Location] {
	out := make([]model.Location, len(locs))
	for i, l := range locs {
		out[i] = model.Location{City: l.City, State: l.State}
	}
	return datatypes.NewJSONSlice(out)
}

func (m *CompanyMapper) ToEntity(c *model.Company) *entity.Company {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Company{
		Id:              c.Id,
		Name:            c.Name,
		Description:     c.Description,
		Locations:       locationsToEntity(c.Locations),
		Url:             c.Url,
		Logo:            c.Logo,
		CompanySize:     c.CompanySize,
		OwnershipType:   c.OwnershipType,
		FundingType:     c.FundingType,
		AmountRaised:    c.AmountRaised,
		LastRoundLetter: c.LastRoundLetter,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *CompanyMapper) ToModel(c *entity.Company) *model.Company {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Company{
		Id:              c.Id,
		Name:            c.Name,
		Description:     c.Description,
		Locations:       locationsToModel(c.Locations),
		Url:             c.Url,
		Logo:            c.Logo,
		CompanySize:     c.CompanySize,
		OwnershipType:   c.OwnershipType,
		FundingType:     c.FundingType,
		AmountRaised:    c.AmountRaised,
		LastRoundLetter: c.LastRoundLetter,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}
