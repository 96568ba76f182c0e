package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type Company struct {
	Id              uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string                         `gorm:"type:text;not null"`
	Description     string                         `gorm:"type:text;not null"`
	Locations       datatypes.JSONSlice[Location]  `gorm:"not null"`
	Url             string                         `gorm:"type:text;not null"`
	Logo            *string                        `gorm:"type:text"`
	CompanySize     string                         `gorm:"type:varchar(50);not null"`
	OwnershipType   string                         `gorm:"type:varchar(50);not null"`
	FundingType     string                         `gorm:"type:varchar(50);not null"`
	AmountRaised    *int64                         `gorm:"type:bigint"`
	LastRoundLetter *string                        `gorm:"type:varchar(10)"`
	CreatedAt       time.Time                      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time                      `gorm:"autoUpdateTime"`
}

func (Company) TableName() string {
	return "companies"
}
