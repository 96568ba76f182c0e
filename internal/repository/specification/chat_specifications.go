package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByConversationID filters messages belonging to a conversation
type ByConversationID struct {
	ConversationID uuid.UUID
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

// ByJobAndSession identifies the one conversation for a (job, session) pair
type ByJobAndSession struct {
	JobID     uuid.UUID
	SessionID string
}

func (s ByJobAndSession) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("job_id = ? AND session_id = ?", s.JobID, s.SessionID)
}

// HistoryOrder is the canonical message ordering: creation time ascending,
// insertion sequence as the deterministic tie-break.
type HistoryOrder struct{}

func (s HistoryOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, seq ASC")
}
