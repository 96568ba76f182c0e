package dto

import (
	"time"

	"github.com/google/uuid"

	"jobboard-be/internal/entity"
)

// ChatTurnRecordedMessage is the in-process bus payload published after an
// assistant reply is persisted.
type ChatTurnRecordedMessage struct {
	ConversationId uuid.UUID `json:"conversationId"`
	MessageId      uuid.UUID `json:"messageId"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type MessageResponse struct {
	Id        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type ChatHistoryResponse struct {
	Messages []MessageResponse `json:"messages"`
}

type SendMessageResponse struct {
	Message MessageResponse `json:"message"`
}

func NewMessageResponse(m *entity.Message) MessageResponse {
	return MessageResponse{
		Id:        m.Id.String(),
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func NewMessageResponses(messages []*entity.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, NewMessageResponse(m))
	}
	return out
}
