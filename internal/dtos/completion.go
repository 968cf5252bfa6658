// File: internal/dtos/completion.go
package dtos

// HistoryTurnDTO is one earlier exchange in the conversation history sent
// along with a completion request.
type HistoryTurnDTO struct {
	Text   string `json:"text"`
	IsUser bool   `json:"isUser"`
}

// CompletionRequestDTO represents the payload for answering a question.
type CompletionRequestDTO struct {
	Text                string           `json:"text"`
	ConversationHistory []HistoryTurnDTO `json:"conversationHistory"`
}

// CompletionResponseDTO carries the full generated answer.
type CompletionResponseDTO struct {
	Summary string `json:"summary"`
}

// StreamCompletionRequestDTO represents the payload for the streaming
// variant. ChatID is optional; when set, the exchange is persisted to
// that chat after the reveal finishes.
type StreamCompletionRequestDTO struct {
	Text                string           `json:"text"`
	ConversationHistory []HistoryTurnDTO `json:"conversationHistory"`
	ChatID              uint             `json:"chatId,omitempty"`
}
