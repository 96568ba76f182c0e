package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByCompanyID filters jobs owned by a company
type ByCompanyID struct {
	CompanyID uuid.UUID
}

func (s ByCompanyID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("company_id = ?", s.CompanyID)
}

// WithCompany preloads the owning company relation
type WithCompany struct{}

func (s WithCompany) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Company")
}
