package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the message thread uniquely keyed by (job, session).
type Conversation struct {
	Id        uuid.UUID
	JobId     uuid.UUID
	SessionId string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
