package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Seq            int64 // insertion sequence, tie-break for identical timestamps
	Role           string
	Content        string
	CreatedAt      time.Time
}
