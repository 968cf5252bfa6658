// File: internal/dtos/chat.go
package dtos

import (
	"time"

	"github.com/nordsted/juridisk-ai/internal/domain"
)

// ChatResponseDTO is one chat in list and detail responses.
type ChatResponseDTO struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ChatWithMessagesDTO is the chat detail response, messages in order.
type ChatWithMessagesDTO struct {
	ChatResponseDTO
	Messages []MessageDTO `json:"messages"`
}

// MessageDTO is one stored message in API responses.
type MessageDTO struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	IsUser    bool   `json:"isUser"`
	Order     int    `json:"order"`
	CreatedAt string `json:"createdAt"`
}

// CreateChatRequestDTO represents the payload to create a chat. The title
// is optional; a missing title falls back to the default.
type CreateChatRequestDTO struct {
	Title string `json:"title"`
}

// MessageInputDTO is one message in a replace-all save request.
type MessageInputDTO struct {
	Text   string `json:"text"`
	IsUser bool   `json:"isUser"`
}

// SaveMessagesRequestDTO carries the full message set of a chat. The stored
// set is replaced, not appended to.
type SaveMessagesRequestDTO struct {
	Messages []MessageInputDTO `json:"messages"`
}

// FromChatDomain converts a domain chat to its API representation.
func FromChatDomain(chat domain.Chat) ChatResponseDTO {
	return ChatResponseDTO{
		ID:        chat.ID,
		Title:     chat.Title,
		CreatedAt: chat.CreatedAt.Format(time.RFC3339),
		UpdatedAt: chat.UpdatedAt.Format(time.RFC3339),
	}
}

// FromChatDomainSlice converts a list of chats, preserving order.
func FromChatDomainSlice(chats []domain.Chat) []ChatResponseDTO {
	out := make([]ChatResponseDTO, len(chats))
	for i, chat := range chats {
		out[i] = FromChatDomain(chat)
	}
	return out
}

// FromMessageDomain converts a stored message to its API representation.
func FromMessageDomain(msg domain.ChatMessage) MessageDTO {
	return MessageDTO{
		ID:        msg.ID,
		Content:   msg.Content,
		IsUser:    msg.IsUser,
		Order:     msg.Order,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	}
}

// FromMessageDomainSlice converts a list of messages, preserving order.
func FromMessageDomainSlice(msgs []domain.ChatMessage) []MessageDTO {
	out := make([]MessageDTO, len(msgs))
	for i, msg := range msgs {
		out[i] = FromMessageDomain(msg)
	}
	return out
}
