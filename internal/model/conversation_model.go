package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JobId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_job_session"`
	SessionId string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_conversations_job_session"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}
