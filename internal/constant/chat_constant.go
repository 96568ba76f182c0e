package constant

// Message roles stored in chat history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TopicChatTurnRecorded is the in-process bus topic fired after an
// assistant reply is persisted.
const TopicChatTurnRecorded = "CHAT_TURN_RECORDED"

// EventChatTurnRecorded names the external event; NATS subjects derive
// from it ("events.chat.turn_recorded").
const EventChatTurnRecorded = "chat.turn_recorded"
