package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Job struct {
	Id               uuid.UUID                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title            string                        `gorm:"type:text;not null"`
	Description      string                        `gorm:"type:text;not null"`
	Requirements     datatypes.JSONSlice[string]   `gorm:"not null"`
	Responsibilities datatypes.JSONSlice[string]   `gorm:"not null"`
	Perks            datatypes.JSONSlice[string]   ``
	Benefits         datatypes.JSONSlice[string]   ``
	CompanyId        uuid.UUID                     `gorm:"type:uuid;not null;index"`
	Company          Company                       `gorm:"foreignKey:CompanyId"`
	Locations        datatypes.JSONSlice[Location] `gorm:"not null"`
	Url              string                        `gorm:"type:text;not null"`
	RemotePolicy     string                        `gorm:"type:varchar(20);not null"`
	EmploymentType   string                        `gorm:"type:varchar(20);not null"`
	DaysPerWeek      *int                          `gorm:"type:int"`
	SalaryMin        *int                          `gorm:"type:int"`
	SalaryMax        *int                          `gorm:"type:int"`
	TechStack        datatypes.JSONSlice[string]   `gorm:"not null"`
	CreatedAt        time.Time                     `gorm:"autoCreateTime"`
	UpdatedAt        time.Time                     `gorm:"autoUpdateTime"`
}

func (Job) TableName() string {
	return "jobs"
}
