package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID `gorm:"type:uuid;not null;index"`
	// Seq is a monotonic insertion sequence. History ordering is
	// (created_at ASC, seq ASC); the sequence makes ordering well-defined
	// when two rows share a timestamp.
	Seq       int64     `gorm:"autoIncrement;uniqueIndex"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
